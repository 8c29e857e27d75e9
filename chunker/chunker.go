// Package chunker splits raw document text into overlapping, labeled
// segments used as retrieval units for grounded chat.
package chunker

import (
	"fmt"
	"regexp"
	"strings"

	"legalmind/types"
)

const (
	DefaultMaxChunkSize = 800
	DefaultOverlap      = 100

	// Heuristic segmenter, so every chunk carries the same fixed confidence.
	chunkConfidence = 0.9
)

var whitespaceRe = regexp.MustCompile(`\s+`)

// Chunker accumulates sentences into bounded chunks, seeding each new
// chunk with the tail of the previous one so context survives boundaries.
type Chunker struct {
	maxChunkSize int
	overlap      int
}

func New(maxChunkSize, overlap int) *Chunker {
	if maxChunkSize <= 0 {
		maxChunkSize = DefaultMaxChunkSize
	}
	if overlap < 0 {
		overlap = 0
	}
	return &Chunker{
		maxChunkSize: maxChunkSize,
		overlap:      overlap,
	}
}

// Chunk splits text into ordered chunks. Identical input always yields an
// identical chunk sequence: ids are <documentName>_chunk_<ordinal> and all
// labeling is deterministic. Empty input yields no chunks and no error.
func (c *Chunker) Chunk(text, documentName string) []types.Chunk {
	cleanText := strings.TrimSpace(whitespaceRe.ReplaceAllString(text, " "))
	if cleanText == "" {
		return nil
	}

	sentences := splitSentences(cleanText)

	var chunks []types.Chunk
	var current string
	chunkIndex := 0
	startIndex := 0

	for _, sentence := range sentences {
		if len(current)+len(sentence) > c.maxChunkSize && len(current) > 0 {
			chunks = append(chunks, c.buildChunk(documentName, chunkIndex, current, startIndex))

			// Seed the next chunk with the tail of the one just emitted.
			overlapText := tail(current, c.overlap)
			startIndex += len(current) - len(overlapText)
			current = overlapText + " " + sentence
			chunkIndex++
		} else {
			if current == "" {
				current = sentence
			} else {
				current += " " + sentence
			}
		}
	}

	// A trailing partial buffer is still a chunk.
	if strings.TrimSpace(current) != "" {
		chunks = append(chunks, c.buildChunk(documentName, chunkIndex, current, startIndex))
	}

	return chunks
}

func (c *Chunker) buildChunk(documentName string, ordinal int, text string, start int) types.Chunk {
	text = strings.TrimSpace(text)
	return types.Chunk{
		ID:          fmt.Sprintf("%s_chunk_%d", documentName, ordinal),
		Text:        text,
		SectionType: DetermineSectionType(text),
		Confidence:  chunkConfidence,
		StartIndex:  start,
		EndIndex:    start + len(text),
		WordCount:   len(strings.Fields(text)),
	}
}

// splitSentences breaks normalized text on sentence terminators, restoring
// a trailing period on each piece.
func splitSentences(text string) []string {
	parts := strings.FieldsFunc(text, func(r rune) bool {
		return r == '.' || r == '!' || r == '?'
	})
	sentences := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		sentences = append(sentences, p+".")
	}
	return sentences
}

// tail returns the last n characters of s, keeping at least one leading
// character out of the window so chunk start offsets stay increasing.
func tail(s string, n int) string {
	if n >= len(s) {
		n = len(s) - 1
	}
	if n <= 0 {
		return ""
	}
	return s[len(s)-n:]
}
