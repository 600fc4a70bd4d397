// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package catalog holds the curated in-memory seed of literature records and
// serves read-only filtered views of it. The seed is loaded once at process
// start and never mutated, so it is safely shared across concurrent
// searches without locking.
package catalog

import (
	"strings"

	"github.com/pdiddy/bookfinder/pkg/types"
)

// Store serves read-only views over an immutable candidate seed.
type Store struct {
	books []types.Candidate
}

// NewStore wraps a seed. The caller must not modify the slice afterwards.
func NewStore(seed []types.Candidate) *Store {
	return &Store{books: seed}
}

// NewSeededStore returns a Store over the built-in curated seed.
func NewSeededStore() *Store {
	return NewStore(Seed())
}

// List returns the catalog entries, optionally restricted to one source
// platform. The returned slice is a copy; entries are shared.
func (s *Store) List(platform string) []types.Candidate {
	out := make([]types.Candidate, 0, len(s.books))
	for _, b := range s.books {
		if platform != "" && !strings.EqualFold(b.Category, platform) && !strings.EqualFold(string(b.SourceProvider), platform) {
			continue
		}
		out = append(out, b)
	}
	return out
}

// Filter returns entries whose title, author, description, or category
// contains the term, case-insensitively. An empty term matches everything.
func (s *Store) Filter(term string, max int) []types.Candidate {
	term = strings.ToLower(strings.TrimSpace(term))
	var out []types.Candidate
	for _, b := range s.books {
		if term != "" && !matches(b, term) {
			continue
		}
		out = append(out, b)
		if max > 0 && len(out) >= max {
			break
		}
	}
	return out
}

func matches(b types.Candidate, term string) bool {
	haystacks := []string{b.Title, b.Author, b.Description, b.Category}
	haystacks = append(haystacks, b.KeyTopics...)
	for _, h := range haystacks {
		if strings.Contains(strings.ToLower(h), term) {
			return true
		}
	}
	// A multi-word term matches if every word matches some field.
	words := strings.Fields(term)
	if len(words) < 2 {
		return false
	}
	for _, w := range words {
		if !matches(b, w) {
			return false
		}
	}
	return true
}
