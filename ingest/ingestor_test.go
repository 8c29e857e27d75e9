package ingest

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"legalmind/chunker"
	"legalmind/store"
	"legalmind/types"
)

type stubAnalyzer struct {
	err error
}

func (s *stubAnalyzer) Analyze(context.Context, string, string) (*types.AnalysisReport, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &types.AnalysisReport{
		ExecutiveSummary: types.ExecutiveSummary{PartiesInvolved: []string{"Acme Corp", "Widget LLC"}},
		HumanExplanation: types.HumanExplanation{
			PlainLanguageSummary: "A two year service deal.",
			RedFlags:             []string{"auto-renewal"},
		},
	}, nil
}

func TestIngest(t *testing.T) {
	contextStore := store.NewContextStore(store.NewMemoryStore())
	ingestor := NewIngestor(contextStore, &stubAnalyzer{}, chunker.New(chunker.DefaultMaxChunkSize, chunker.DefaultOverlap))
	ctx := context.Background()

	result, err := ingestor.Ingest(ctx, "This agreement may be terminated with notice. Payment is due monthly.", "msa.pdf")

	require.NoError(t, err)
	require.NotNil(t, result.Report)

	dc, err := contextStore.GetContext(ctx, result.DocumentID)
	require.NoError(t, err)
	assert.Equal(t, "msa.pdf", dc.DocumentName)
	assert.NotEmpty(t, dc.Chunks)
	assert.Equal(t, "A two year service deal.", dc.Summary)
	assert.Equal(t, []string{"Acme Corp", "Widget LLC"}, dc.KeyEntities)
	assert.Equal(t, []string{"auto-renewal"}, dc.RiskFactors)

	session, err := contextStore.GetSession(ctx, result.DocumentID)
	require.NoError(t, err)
	assert.Empty(t, session.Messages)
	assert.Equal(t, dc.Summary, session.Context.DocumentSummary)
}

func TestIngestAnalysisFailureStoresNothing(t *testing.T) {
	contextStore := store.NewContextStore(store.NewMemoryStore())
	boom := errors.New("model unavailable")
	ingestor := NewIngestor(contextStore, &stubAnalyzer{err: boom}, chunker.New(chunker.DefaultMaxChunkSize, chunker.DefaultOverlap))
	ctx := context.Background()

	result, err := ingestor.Ingest(ctx, "Some text.", "msa.pdf")

	require.ErrorIs(t, err, boom)
	assert.Nil(t, result)

	sessions, err := contextStore.ListSessions(ctx)
	require.NoError(t, err)
	assert.Empty(t, sessions)
}
