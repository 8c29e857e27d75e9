// Package ingest turns extracted document text into a stored knowledge
// context: multi-facet analysis, chunking, and chat session creation in
// one step. Both the upload API and the batch loader go through it.
package ingest

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"legalmind/chunker"
	"legalmind/store"
	"legalmind/types"
)

// Analyzer is the orchestrator surface the ingestor needs.
type Analyzer interface {
	Analyze(ctx context.Context, text, documentName string) (*types.AnalysisReport, error)
}

type Ingestor struct {
	contextStore *store.ContextStore
	analyzer     Analyzer
	chunker      *chunker.Chunker
	logger       *slog.Logger
}

func NewIngestor(contextStore *store.ContextStore, analyzer Analyzer, ch *chunker.Chunker) *Ingestor {
	return &Ingestor{
		contextStore: contextStore,
		analyzer:     analyzer,
		chunker:      ch,
		logger:       slog.Default(),
	}
}

// Result is what a completed ingestion produced.
type Result struct {
	DocumentID string                `json:"documentId"`
	Report     *types.AnalysisReport `json:"report"`
}

// Ingest analyzes text, stores the document context, and creates the chat
// session. The analysis is all-or-nothing: when it fails, nothing is
// stored and no session exists.
func (i *Ingestor) Ingest(ctx context.Context, text, documentName string) (*Result, error) {
	report, err := i.analyzer.Analyze(ctx, text, documentName)
	if err != nil {
		return nil, err
	}

	documentID := uuid.NewString()
	now := time.Now()
	documentContext := &types.DocumentContext{
		DocumentID:   documentID,
		DocumentName: documentName,
		FullText:     text,
		Chunks:       i.chunker.Chunk(text, documentName),
		Summary:      report.HumanExplanation.PlainLanguageSummary,
		KeyEntities:  report.ExecutiveSummary.PartiesInvolved,
		RiskFactors:  report.HumanExplanation.RedFlags,
		CreatedAt:    now,
		LastUpdated:  now,
	}
	if err := i.contextStore.StoreContext(ctx, documentContext); err != nil {
		return nil, err
	}

	sessionContext := types.SessionContext{
		DocumentSummary: documentContext.Summary,
		KeyEntities:     documentContext.KeyEntities,
		LastUpdated:     now,
	}
	if _, err := i.contextStore.CreateSession(ctx, documentID, documentName, sessionContext); err != nil {
		return nil, err
	}

	i.logger.Info("document ingested",
		"documentId", documentID,
		"document", documentName,
		"chunks", len(documentContext.Chunks),
		"truncated", report.Metadata.Truncated,
	)

	return &Result{DocumentID: documentID, Report: report}, nil
}
