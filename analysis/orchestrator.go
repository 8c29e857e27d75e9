// Package analysis runs the multi-facet document analysis: six independent
// structured model calls issued concurrently and merged into one report.
// The merge is all-or-nothing — if any sub-analysis fails, the whole run
// fails and no partial report is produced.
package analysis

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"legalmind/types"
)

// MaxAnalysisChars bounds how much document text each sub-analysis sees.
// Longer documents are analyzed on this prefix only; the report's metadata
// carries a Truncated flag so consumers can tell.
const MaxAnalysisChars = 8000

// StructuredCaller is the model-client surface the orchestrator needs.
type StructuredCaller interface {
	CallStructured(ctx context.Context, prompt string, out any) error
}

type Orchestrator struct {
	client   StructuredCaller
	maxChars int
	logger   *slog.Logger
}

func NewOrchestrator(client StructuredCaller) *Orchestrator {
	return &Orchestrator{
		client:   client,
		maxChars: MaxAnalysisChars,
		logger:   slog.Default(),
	}
}

// Analyze builds the six sub-analysis prompts from the document prefix and
// issues them concurrently. The first failing sub-call cancels the rest
// and its error is surfaced; sibling results are discarded.
func (o *Orchestrator) Analyze(ctx context.Context, text, documentName string) (*types.AnalysisReport, error) {
	start := time.Now()

	prefix := text
	truncated := false
	if len(prefix) > o.maxChars {
		prefix = prefix[:o.maxChars]
		truncated = true
		o.logger.Warn("document truncated for analysis", "document", documentName, "chars", len(text), "limit", o.maxChars)
	}

	var (
		summary     types.ExecutiveSummary
		terms       types.ContractTerms
		risks       types.RiskAssessment
		compliance  types.ComplianceCheck
		financials  types.FinancialAnalysis
		explanation types.HumanExplanation
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return o.client.CallStructured(gctx, executiveSummaryPrompt(prefix, documentName), &summary)
	})
	g.Go(func() error {
		return o.client.CallStructured(gctx, contractTermsPrompt(prefix), &terms)
	})
	g.Go(func() error {
		return o.client.CallStructured(gctx, riskAssessmentPrompt(prefix), &risks)
	})
	g.Go(func() error {
		return o.client.CallStructured(gctx, complianceCheckPrompt(prefix), &compliance)
	})
	g.Go(func() error {
		return o.client.CallStructured(gctx, financialAnalysisPrompt(prefix), &financials)
	})
	g.Go(func() error {
		return o.client.CallStructured(gctx, humanExplanationPrompt(prefix), &explanation)
	})

	if err := g.Wait(); err != nil {
		o.logger.Error("document analysis failed", "document", documentName, "error", err)
		return nil, err
	}

	return &types.AnalysisReport{
		ExecutiveSummary: summary,
		DetailedAnalysis: types.DetailedAnalysis{
			ContractTerms:     terms,
			RiskAssessment:    risks,
			ComplianceCheck:   compliance,
			FinancialAnalysis: financials,
		},
		HumanExplanation: explanation,
		Metadata: types.AnalysisMetadata{
			AnalysisDate:     time.Now(),
			ProcessingTimeMs: time.Since(start).Milliseconds(),
			Confidence:       overallConfidence(text),
			WordCount:        countWords(text),
			Complexity:       assessComplexity(text),
			Truncated:        truncated,
		},
	}, nil
}
