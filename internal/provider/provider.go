// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package provider implements the discovery adapters, one per external
// source. Each adapter maps its provider's raw payload into canonical
// Candidate records at the boundary; raw provider shapes never escape this
// package. Adapters return errors for the orchestrator to log, but a failed
// adapter only ever degrades its own contribution to zero candidates.
package provider

import (
	"context"
	"strings"

	"github.com/pdiddy/bookfinder/pkg/types"
)

// Provider searches a single literature source. Each source (curated
// catalog, Open Library, Gutendex, retail scrape) implements this interface
// per the Strategy pattern.
type Provider interface {
	Name() types.ProviderID

	// Fetch returns up to maxResults candidates for the query. rawQuery is
	// the user's original text; intent is the heuristic interpretation.
	// Adapters must treat the intent as best-effort: a structured search
	// that returns nothing may be a wrong parse, not an empty corpus.
	Fetch(ctx context.Context, rawQuery string, intent types.Intent, maxResults int) ([]types.Candidate, error)
}

// theologicalVocabulary is the fixed list of spiritual and philosophical
// terms scanned against title text to derive TheologicalTags.
var theologicalVocabulary = []string{
	"vedanta", "advaita", "tantra", "zen", "sufi", "bhakti",
	"dhyana", "moksha", "nirvana", "samadhi", "kundalini",
	"chakra", "mantra", "karma", "dharma", "yoga", "meditation",
	"mysticism", "enlightenment", "consciousness", "gita",
	"upanishad", "sutra", "tao", "buddha",
}

// ScanTheologicalTags returns the vocabulary terms present in the text.
func ScanTheologicalTags(text string) []string {
	lower := strings.ToLower(text)
	var tags []string
	for _, term := range theologicalVocabulary {
		if strings.Contains(lower, term) {
			tags = append(tags, term)
		}
	}
	return tags
}
