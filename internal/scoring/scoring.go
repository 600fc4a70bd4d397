// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package scoring ranks normalized candidates against the query. Two
// interchangeable strategies implement one contract: an AI-grounded
// evaluator and a deterministic keyword fallback. Per request the scorer
// attempts the AI path once; any failure (transport, malformed output)
// transitions permanently to the fallback for that request. There is no
// retry loop.
package scoring

import (
	"context"
	"fmt"
	"io"

	"github.com/pdiddy/bookfinder/pkg/types"
)

// Strategy scores a candidate pool for relevance to a query. Each strategy
// (grounded AI evaluator, keyword fallback) implements this interface per
// the Strategy pattern.
type Strategy interface {
	Name() string
	Score(ctx context.Context, query string, intent types.Intent, candidates []types.Candidate) ([]types.ScoredResult, error)
}

// Ranker runs the grounded strategy with one-shot degradation to the
// fallback. The fallback must be infallible.
type Ranker struct {
	Grounded Strategy
	Fallback Strategy
}

// Score applies the strategy state machine and enforces the admission
// invariants on whatever the winning strategy produced: every surfaced
// result is grounded, scores at least the minimum, and carries the tier
// derived from its score. The strategies' own claims are not trusted.
func (r *Ranker) Score(ctx context.Context, query string, intent types.Intent, candidates []types.Candidate, w io.Writer) []types.ScoredResult {
	if len(candidates) == 0 {
		return nil
	}

	var results []types.ScoredResult
	if r.Grounded != nil {
		scored, err := r.Grounded.Score(ctx, query, intent, candidates)
		if err == nil {
			return admit(scored)
		}
		fmt.Fprintf(w, "warning: %s scoring failed, using %s: %v\n", r.Grounded.Name(), r.Fallback.Name(), err)
	}

	scored, err := r.Fallback.Score(ctx, query, intent, candidates)
	if err != nil {
		// The keyword fallback has no failure modes; guard anyway.
		fmt.Fprintf(w, "warning: %s scoring failed: %v\n", r.Fallback.Name(), err)
		return nil
	}
	results = admit(scored)
	return results
}

// admit drops ungrounded and below-threshold results and recomputes tiers.
// The groundedness flag is a necessary, not sufficient, admission gate.
func admit(scored []types.ScoredResult) []types.ScoredResult {
	var out []types.ScoredResult
	for _, s := range scored {
		if !s.IsGrounded || s.RelevanceScore < types.MinRelevanceScore {
			continue
		}
		if s.RelevanceScore > 100 {
			s.RelevanceScore = 100
		}
		s.ConfidenceTier = types.TierForScore(s.RelevanceScore)
		out = append(out, s)
	}
	return out
}
