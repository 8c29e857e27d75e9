package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"legalmind/types"
)

func chunk(id, text string, section types.SectionType) types.Chunk {
	return types.Chunk{ID: id, Text: text, SectionType: section}
}

func TestFindRelevantRespectsLimit(t *testing.T) {
	chunks := []types.Chunk{
		chunk("a", "payment terms apply", types.SectionPayment),
		chunk("b", "payment schedule", types.SectionPayment),
		chunk("c", "payment obligations", types.SectionPayment),
	}

	result := FindRelevant("payment", chunks, 2)

	assert.Len(t, result, 2)
}

func TestFindRelevantPhraseBeatsSingleWord(t *testing.T) {
	chunks := []types.Chunk{
		chunk("word-only", "the termination of this agreement requires cause", types.SectionTermination),
		chunk("phrase", "a termination notice must be delivered in writing", types.SectionTermination),
	}

	result := FindRelevant("termination notice", chunks, 5)

	require.Len(t, result, 2)
	assert.Equal(t, "phrase", result[0].ID)
	assert.Equal(t, "word-only", result[1].ID)
}

func TestFindRelevantSectionBoost(t *testing.T) {
	chunks := []types.Chunk{
		chunk("general", "liability is mentioned once here", types.SectionGeneral),
		chunk("labeled", "liability is mentioned once here", types.SectionLiability),
	}

	result := FindRelevant("liability cap", chunks, 5)

	require.Len(t, result, 2)
	assert.Equal(t, "labeled", result[0].ID)
}

func TestFindRelevantStableOnTies(t *testing.T) {
	chunks := []types.Chunk{
		chunk("first", "nothing relevant here", types.SectionGeneral),
		chunk("second", "nothing relevant here", types.SectionGeneral),
		chunk("third", "nothing relevant here", types.SectionGeneral),
	}

	result := FindRelevant("warranty", chunks, 3)

	require.Len(t, result, 3)
	assert.Equal(t, "first", result[0].ID)
	assert.Equal(t, "second", result[1].ID)
	assert.Equal(t, "third", result[2].ID)
}

func TestFindRelevantShortWordsIgnored(t *testing.T) {
	chunks := []types.Chunk{
		chunk("noise", "it is an od to be at", types.SectionGeneral),
		chunk("signal", "the warranty covers defects", types.SectionWarranty),
	}

	// Every word of length <= 2 is dropped from the query.
	result := FindRelevant("is warranty at it", chunks, 1)

	require.Len(t, result, 1)
	assert.Equal(t, "signal", result[0].ID)
}

func TestFindRelevantEmptyChunks(t *testing.T) {
	assert.Empty(t, FindRelevant("anything", nil, 5))
}
