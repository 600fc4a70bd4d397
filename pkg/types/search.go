// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// ConfidenceTier is a banded label derived purely from the numeric
// relevance score.
type ConfidenceTier string

const (
	TierStrong    ConfidenceTier = "strong"
	TierGood      ConfidenceTier = "good"
	TierPotential ConfidenceTier = "potential"
	TierWeak      ConfidenceTier = "weak"
)

// MinRelevanceScore is the admission gate: results scoring below it are
// dropped before assembly, never shown.
const MinRelevanceScore = 50

// TierForScore maps a relevance score to its confidence tier. The
// thresholds are fixed: >=90 strong, 70-89 good, 50-69 potential, <50 weak.
func TierForScore(score int) ConfidenceTier {
	switch {
	case score >= 90:
		return TierStrong
	case score >= 70:
		return TierGood
	case score >= MinRelevanceScore:
		return TierPotential
	default:
		return TierWeak
	}
}

// ScoredResult wraps a candidate with its relevance evaluation.
type ScoredResult struct {
	Candidate Candidate `json:"candidate" yaml:"candidate"`

	// RelevanceScore is in [0,100]. Every surfaced result has score >= 50.
	RelevanceScore int `json:"relevance_score" yaml:"relevance_score"`

	// ConfidenceTier is always TierForScore(RelevanceScore).
	ConfidenceTier ConfidenceTier `json:"confidence_tier" yaml:"confidence_tier"`

	// IsGrounded reports that the relevance is backed by explicit evidence:
	// a metadata citation from the AI evaluator, or trusted-catalog
	// provenance on the keyword fallback path.
	IsGrounded bool `json:"is_grounded" yaml:"is_grounded"`

	// MatchedTopics lists the query subjects the evaluator matched.
	MatchedTopics []string `json:"matched_topics,omitempty" yaml:"matched_topics,omitempty"`

	// CitationSnippet is the metadata excerpt cited as evidence.
	CitationSnippet string `json:"citation_snippet,omitempty" yaml:"citation_snippet,omitempty"`

	// CitationLocation names the metadata field the snippet came from
	// (e.g. "title", "key_topics", "table_of_contents").
	CitationLocation string `json:"citation_location,omitempty" yaml:"citation_location,omitempty"`

	// MatchReason is a short human-readable explanation of the score.
	MatchReason string `json:"match_reason,omitempty" yaml:"match_reason,omitempty"`
}

// SearchResponse is the final contract returned to callers. It is
// constructed once per request and immutable after assembly.
type SearchResponse struct {
	// Results is ordered descending by relevance score; ties keep the
	// original candidate discovery order.
	Results []ScoredResult `json:"results" yaml:"results"`

	// Query echoes the raw query string.
	Query string `json:"query" yaml:"query"`

	// TotalResults equals len(Results) after filtering.
	TotalResults int `json:"total_results" yaml:"total_results"`

	// SearchTime is the wall-clock duration from request start to assembly.
	SearchTime time.Duration `json:"search_time" yaml:"search_time"`
}
