package compare

import (
	"context"

	"github.com/ysaito/uracheck"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"
)

// DefaultConcurrency bounds the relevance fan-out when none is configured.
const DefaultConcurrency = 4

// RelevanceRunner scores a batch of sections concurrently. Each section is
// analyzed in isolation: a failed lookup degrades that section to the error
// tier without affecting its siblings.
type RelevanceRunner struct {
	Analyzer uracheck.RelevanceAnalyzer

	// Limiter, when non-nil, throttles calls to the analyzer.
	Limiter *rate.Limiter

	// Concurrency caps in-flight analyzer calls. Zero means
	// DefaultConcurrency.
	Concurrency int
}

// Run analyzes all sections and returns one SectionAnalysis per section, in
// input order.
func (r *RelevanceRunner) Run(ctx context.Context, sections []uracheck.Section) ([]uracheck.SectionAnalysis, error) {
	concurrency := r.Concurrency
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	results := make([]uracheck.SectionAnalysis, len(sections))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)
	for i, section := range sections {
		g.Go(func() error {
			results[i] = r.analyzeOne(ctx, section)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}

func (r *RelevanceRunner) analyzeOne(ctx context.Context, section uracheck.Section) uracheck.SectionAnalysis {
	analysis := uracheck.SectionAnalysis{
		SmallMenu:   section.Title,
		Content:     section.Content,
		Duplication: section.Duplication,
		ClientName:  section.ClientName,
		PartnerName: section.PartnerName,
	}

	if r.Limiter != nil {
		if err := r.Limiter.Wait(ctx); err != nil {
			analysis.Relevance = uracheck.TierError
			analysis.RelevanceReason = uracheck.ErrorReason
			return analysis
		}
	}

	result, err := r.Analyzer.Analyze(ctx, uracheck.RelevanceRequest{
		Title:       section.Title,
		Content:     section.Content,
		ClientName:  section.ClientName,
		PartnerName: section.PartnerName,
	})
	if err != nil {
		analysis.Relevance = uracheck.TierError
		analysis.RelevanceReason = uracheck.ErrorReason
		return analysis
	}

	analysis.Relevance = result.Tier
	analysis.RelevanceReason = result.Reason
	return analysis
}
