package types

import (
	"time"
)

type SectionType string

const (
	SectionTermination     SectionType = "termination"
	SectionPayment         SectionType = "payment"
	SectionLiability       SectionType = "liability"
	SectionConfidentiality SectionType = "confidentiality"
	SectionWarranty        SectionType = "warranty"
	SectionIP              SectionType = "intellectual_property"
	SectionLegal           SectionType = "legal"
	SectionForceMajeure    SectionType = "force_majeure"
	SectionGeneral         SectionType = "general"
)

// Chunk is a labeled, bounded substring of a source document used as a
// retrieval unit. Chunks are created once by the chunker and never mutated.
type Chunk struct {
	ID          string      `json:"id"`
	Text        string      `json:"text"`
	SectionType SectionType `json:"sectionType"`
	Confidence  float64     `json:"confidence"`
	StartIndex  int         `json:"startIndex"`
	EndIndex    int         `json:"endIndex"`
	WordCount   int         `json:"wordCount"`
}

// DocumentContext is the durable per-document bundle of full text, chunks
// and derived summary/entities used to ground chat turns.
type DocumentContext struct {
	DocumentID   string    `json:"documentId"`
	DocumentName string    `json:"documentName"`
	FullText     string    `json:"fullText"`
	Chunks       []Chunk   `json:"chunks"`
	Summary      string    `json:"summary"`
	KeyEntities  []string  `json:"keyEntities"`
	RiskFactors  []string  `json:"riskFactors"`
	CreatedAt    time.Time `json:"createdAt"`
	LastUpdated  time.Time `json:"lastUpdated"`
}

type MessageMetadata struct {
	ResponseTimeMs int64 `json:"responseTimeMs,omitempty"`
	TokensUsed     int   `json:"tokensUsed,omitempty"`
}

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// ChatMessage is append-only: once part of a session it is never edited
// or removed individually.
type ChatMessage struct {
	ID              string           `json:"id"`
	Role            string           `json:"role"`
	Content         string           `json:"content"`
	Timestamp       time.Time        `json:"timestamp"`
	ContextChunkIDs []string         `json:"contextChunkIds,omitempty"`
	Metadata        *MessageMetadata `json:"metadata,omitempty"`
}

type SessionContext struct {
	DocumentSummary string    `json:"documentSummary"`
	KeyEntities     []string  `json:"keyEntities"`
	LastUpdated     time.Time `json:"lastUpdated"`
}

// ChatSession is one-to-one with a DocumentContext by DocumentID. It is
// created at document-analysis time and deleted only alongside the document.
type ChatSession struct {
	SessionID    string         `json:"sessionId"`
	DocumentID   string         `json:"documentId"`
	DocumentName string         `json:"documentName"`
	Messages     []ChatMessage  `json:"messages"`
	Context      SessionContext `json:"context"`
}
