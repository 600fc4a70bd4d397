// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package aggregate

import (
	"strings"

	"github.com/pdiddy/bookfinder/internal/provider"
	"github.com/pdiddy/bookfinder/pkg/types"
)

// Normalize applies field normalization and removes cross-provider
// duplicates. The dedup key is the case-insensitive (title, author) pair;
// the first-seen candidate for a key wins and later duplicates are dropped
// silently with no field merge. Once emitted, candidates are immutable.
func Normalize(pool []types.Candidate) []types.Candidate {
	seen := make(map[string]bool, len(pool))
	out := make([]types.Candidate, 0, len(pool))

	for _, c := range pool {
		key := dedupKey(c)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, normalizeFields(c))
	}
	return out
}

// dedupKey builds the case-insensitive (title, author) identity.
func dedupKey(c types.Candidate) string {
	return strings.ToLower(strings.TrimSpace(c.Title)) + "\x00" + strings.ToLower(strings.TrimSpace(c.Author))
}

// normalizeFields applies the cross-provider field rules: short language
// codes map through the fixed table, plain-HTTP image URLs upgrade to
// HTTPS. Price is left untouched: nil means unknown, 0 means confirmed
// free, and the two are never conflated.
func normalizeFields(c types.Candidate) types.Candidate {
	if c.Language != "" && provider.IsLanguageCode(c.Language) {
		c.Language = provider.LanguageName(c.Language)
	}
	if rest, ok := strings.CutPrefix(c.ImageURL, "http://"); ok {
		c.ImageURL = "https://" + rest
	}
	return c
}
