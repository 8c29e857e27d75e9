// Package search ranks document chunks against a chat query using lexical
// keyword scoring. It is intentionally not semantic search: no embeddings,
// and no normalization by chunk length.
package search

import (
	"sort"
	"strings"

	"legalmind/types"
)

const (
	phraseScore      = 10
	wordScore        = 2
	sectionScore     = 5
	minQueryWordLen  = 3
	DefaultMaxChunks = 5
)

// Section keywords that boost a chunk whose label matches the query intent.
var sectionHints = map[string]types.SectionType{
	"termination": types.SectionTermination,
	"payment":     types.SectionPayment,
	"liability":   types.SectionLiability,
}

type scoredChunk struct {
	chunk types.Chunk
	score int
}

// FindRelevant returns up to limit chunks ordered by descending relevance.
// Ties keep the original chunk order.
func FindRelevant(query string, chunks []types.Chunk, limit int) []types.Chunk {
	if limit <= 0 {
		limit = DefaultMaxChunks
	}
	queryLower := strings.ToLower(query)
	queryWords := tokenize(queryLower)

	scored := make([]scoredChunk, 0, len(chunks))
	for _, chunk := range chunks {
		chunkText := strings.ToLower(chunk.Text)
		score := 0

		// Exact phrase matches dominate.
		if strings.Contains(chunkText, queryLower) {
			score += phraseScore
		}

		for _, word := range queryWords {
			score += strings.Count(chunkText, word) * wordScore
		}

		for hint, section := range sectionHints {
			if strings.Contains(queryLower, hint) && chunk.SectionType == section {
				score += sectionScore
			}
		}

		scored = append(scored, scoredChunk{chunk: chunk, score: score})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].score > scored[j].score
	})

	if len(scored) > limit {
		scored = scored[:limit]
	}
	result := make([]types.Chunk, len(scored))
	for i, sc := range scored {
		result[i] = sc.chunk
	}
	return result
}

func tokenize(query string) []string {
	fields := strings.Fields(query)
	words := make([]string, 0, len(fields))
	for _, f := range fields {
		if len(f) >= minQueryWordLen {
			words = append(words, f)
		}
	}
	return words
}
