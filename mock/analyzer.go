package mock

import (
	"context"

	"github.com/ysaito/uracheck"
)

var _ uracheck.RelevanceAnalyzer = (*RelevanceAnalyzer)(nil)

// RelevanceAnalyzer is a mock implementation of uracheck.RelevanceAnalyzer.
type RelevanceAnalyzer struct {
	AnalyzeFn func(ctx context.Context, req uracheck.RelevanceRequest) (uracheck.RelevanceResult, error)
}

func (a *RelevanceAnalyzer) Analyze(ctx context.Context, req uracheck.RelevanceRequest) (uracheck.RelevanceResult, error) {
	return a.AnalyzeFn(ctx, req)
}
