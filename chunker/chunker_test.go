package chunker

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"legalmind/types"
)

func TestChunkEmptyInput(t *testing.T) {
	c := New(DefaultMaxChunkSize, DefaultOverlap)

	assert.Empty(t, c.Chunk("", "empty.pdf"))
	assert.Empty(t, c.Chunk("   \n\t  ", "blank.pdf"))
}

func TestChunkSingleChunkTerminationWins(t *testing.T) {
	c := New(DefaultMaxChunkSize, DefaultOverlap)
	text := "This agreement may be terminated by either party. Payment is due within 30 days."

	chunks := c.Chunk(text, "contract.pdf")

	require.Len(t, chunks, 1)
	assert.Equal(t, "contract.pdf_chunk_0", chunks[0].ID)
	assert.Equal(t, types.SectionTermination, chunks[0].SectionType)
	assert.Equal(t, 0.9, chunks[0].Confidence)
}

func TestChunkInvariants(t *testing.T) {
	c := New(200, 50)
	var sb strings.Builder
	for i := 0; i < 40; i++ {
		sb.WriteString("The contractor shall deliver the services described in the schedule. ")
	}

	chunks := c.Chunk(sb.String(), "long.pdf")

	require.NotEmpty(t, chunks)
	prevStart := -1
	for _, chunk := range chunks {
		assert.NotEmpty(t, chunk.Text)
		assert.Less(t, chunk.StartIndex, chunk.EndIndex)
		assert.Greater(t, chunk.StartIndex, prevStart)
		assert.Equal(t, len(strings.Fields(chunk.Text)), chunk.WordCount)
		prevStart = chunk.StartIndex
	}
}

func TestChunkOverlapSeedsNextChunk(t *testing.T) {
	c := New(120, 30)
	text := "The first clause covers general obligations of the supplier in detail. " +
		"The second clause covers delivery timelines and acceptance criteria. " +
		"The third clause covers remedies available to the customer."

	chunks := c.Chunk(text, "doc.txt")

	require.GreaterOrEqual(t, len(chunks), 2)
	for i := 1; i < len(chunks); i++ {
		prevTail := chunks[i-1].Text[len(chunks[i-1].Text)-10:]
		assert.Contains(t, chunks[i].Text, prevTail)
	}
}

func TestChunkIdempotent(t *testing.T) {
	c := New(DefaultMaxChunkSize, DefaultOverlap)
	text := "Confidential information must not be disclosed. The warranty period is twelve months. " +
		"Fees are payable within thirty days of invoice. Liability is capped at the contract value."

	first := c.Chunk(text, "nda.pdf")
	second := c.Chunk(text, "nda.pdf")

	assert.Equal(t, first, second)
}

func TestChunkNormalizesWhitespace(t *testing.T) {
	c := New(DefaultMaxChunkSize, DefaultOverlap)

	chunks := c.Chunk("One   clause\n\nhere.  Another\tclause there.", "ws.txt")

	require.Len(t, chunks, 1)
	assert.Equal(t, "One clause here. Another clause there.", chunks[0].Text)
}

func TestDetermineSectionType(t *testing.T) {
	cases := []struct {
		text string
		want types.SectionType
	}{
		{"This agreement may be terminated with notice.", types.SectionTermination},
		{"The license expires after one year.", types.SectionTermination},
		{"All fees are due on receipt.", types.SectionPayment},
		{"The supplier shall indemnify the customer.", types.SectionLiability},
		{"All proprietary information stays secret.", types.SectionConfidentiality},
		{"The goods carry a two year guarantee.", types.SectionWarranty},
		{"Copyright remains with the author.", types.SectionIP},
		{"Disputes fall under the jurisdiction of the courts of England.", types.SectionLegal},
		{"Neither party is liable for an act of god.", types.SectionForceMajeure},
		{"The parties agree to cooperate.", types.SectionGeneral},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, DetermineSectionType(tc.text), "text: %s", tc.text)
	}
}

func TestDetermineSectionTypePrecedence(t *testing.T) {
	// Termination outranks payment when both keyword sets match.
	text := "Upon termination all outstanding fees become payable."
	assert.Equal(t, types.SectionTermination, DetermineSectionType(text))
}
