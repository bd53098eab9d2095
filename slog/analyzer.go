package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/ysaito/uracheck"
)

// Ensure LoggingAnalyzer implements uracheck.RelevanceAnalyzer.
var _ uracheck.RelevanceAnalyzer = (*LoggingAnalyzer)(nil)

// LoggingAnalyzer wraps a RelevanceAnalyzer with per-lookup logging. It logs
// the verdict and timing, never the prompt or content.
type LoggingAnalyzer struct {
	next   uracheck.RelevanceAnalyzer
	logger *slog.Logger
}

// NewLoggingAnalyzer creates a new LoggingAnalyzer.
func NewLoggingAnalyzer(next uracheck.RelevanceAnalyzer, logger *slog.Logger) *LoggingAnalyzer {
	return &LoggingAnalyzer{next: next, logger: logger}
}

// Analyze delegates to the wrapped analyzer and logs the outcome.
func (a *LoggingAnalyzer) Analyze(ctx context.Context, req uracheck.RelevanceRequest) (uracheck.RelevanceResult, error) {
	begin := time.Now()
	result, err := a.next.Analyze(ctx, req)
	if err != nil {
		a.logger.Error("relevance analysis failed",
			"error", err,
			"duration", time.Since(begin),
		)
		return result, err
	}
	a.logger.Info("relevance analysis",
		"tier", string(result.Tier),
		"duration", time.Since(begin),
	)
	return result, nil
}
