// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package scoring

import (
	"context"
	"fmt"
	"strings"

	"github.com/pdiddy/bookfinder/pkg/types"
)

// Keyword scoring weights. Fixed: a query word found anywhere in the
// candidate's searchable text earns the base weight, with bonuses when it
// hits the title or the category specifically.
const (
	keywordBaseWeight    = 15
	keywordTitleBonus    = 25
	keywordCategoryBonus = 10

	// keywordScoreCeiling caps fallback scores below the "strong" ceiling
	// of 100: a non-semantic method never claims top confidence.
	keywordScoreCeiling = 95

	// minKeywordLen drops short noise words from the query.
	minKeywordLen = 3
)

// KeywordScorer is the deterministic fallback strategy: pure word-overlap
// scoring over the candidate's own metadata. Results it admits are grounded
// by provenance — the metadata matched is the provider's verified record,
// not an inference.
type KeywordScorer struct{}

// Name returns the strategy identifier.
func (s *KeywordScorer) Name() string { return "keyword" }

// Score sums fixed weights for query-word hits per candidate. Candidates
// with no hits at all are dropped here; the admission gate above this
// strategy applies the surfacing threshold.
func (s *KeywordScorer) Score(_ context.Context, query string, intent types.Intent, candidates []types.Candidate) ([]types.ScoredResult, error) {
	words := queryWords(query, intent)
	if len(words) == 0 {
		return nil, nil
	}

	var out []types.ScoredResult
	for _, c := range candidates {
		score, matched := scoreCandidate(c, words)
		if score == 0 {
			continue
		}
		if score > keywordScoreCeiling {
			score = keywordScoreCeiling
		}

		out = append(out, types.ScoredResult{
			Candidate:      c,
			RelevanceScore: score,
			ConfidenceTier: types.TierForScore(score),
			IsGrounded:     true,
			MatchedTopics:  matched,
			MatchReason:    fmt.Sprintf("keyword overlap: %s", strings.Join(matched, ", ")),
		})
	}
	return out, nil
}

// queryWords splits the query into scoring words, dropping short noise
// tokens, and appends detected intent topics not already present.
func queryWords(query string, intent types.Intent) []string {
	seen := make(map[string]bool)
	var words []string
	add := func(w string) {
		w = strings.ToLower(strings.Trim(w, ".,!?\"'"))
		if len(w) < minKeywordLen || seen[w] {
			return
		}
		seen[w] = true
		words = append(words, w)
	}
	for _, w := range strings.Fields(query) {
		add(w)
	}
	for _, t := range intent.Topics {
		add(t)
	}
	return words
}

// scoreCandidate returns the summed weight and the words that hit.
func scoreCandidate(c types.Candidate, words []string) (int, []string) {
	searchable := strings.ToLower(strings.Join(append([]string{
		c.Title, c.Author, c.Description, c.Category,
	}, c.KeyTopics...), " "))
	title := strings.ToLower(c.Title)
	category := strings.ToLower(c.Category)

	score := 0
	var matched []string
	for _, w := range words {
		if !strings.Contains(searchable, w) {
			continue
		}
		score += keywordBaseWeight
		if strings.Contains(title, w) {
			score += keywordTitleBonus
		}
		if category != "" && strings.Contains(category, w) {
			score += keywordCategoryBonus
		}
		matched = append(matched, w)
	}
	return score, matched
}
