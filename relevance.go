package uracheck

import "context"

// RelevanceTier categorizes how well a section title matches its content.
type RelevanceTier string

// Relevance tiers assigned by the external collaborator. TierError is
// assigned locally when a lookup fails or returns malformed output.
const (
	TierHigh   RelevanceTier = "high"
	TierMedium RelevanceTier = "medium"
	TierLow    RelevanceTier = "low"
	TierError  RelevanceTier = "error"
)

// ErrorReason is the fixed reason string attached to TierError results.
const ErrorReason = "Failed to analyze relevance"

// RelevanceRequest identifies one title/content pair to score.
type RelevanceRequest struct {
	Title       string
	Content     string
	ClientName  string
	PartnerName string
}

// RelevanceResult is the collaborator's verdict for one request.
type RelevanceResult struct {
	Tier   RelevanceTier `json:"title_content_relevance"`
	Reason string        `json:"reason"`
}

// RelevanceAnalyzer scores the relevance of a title to its content.
//
// Implementations return EEXTERNAL when the external service responds with
// unparseable or structurally incomplete output.
type RelevanceAnalyzer interface {
	Analyze(ctx context.Context, req RelevanceRequest) (RelevanceResult, error)
}

// RelevanceCache caches relevance results by a content-derived key.
// Implementations bound the entry count and expire entries after a TTL.
type RelevanceCache interface {
	Get(key string) (RelevanceResult, bool)
	Add(key string, result RelevanceResult)
}
