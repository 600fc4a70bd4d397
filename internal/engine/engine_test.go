// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package engine

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/pdiddy/bookfinder/internal/aggregate"
	"github.com/pdiddy/bookfinder/internal/catalog"
	"github.com/pdiddy/bookfinder/internal/provider"
	"github.com/pdiddy/bookfinder/internal/scoring"
	"github.com/pdiddy/bookfinder/pkg/types"
)

type stubProvider struct {
	name       types.ProviderID
	candidates []types.Candidate
	err        error
}

func (p *stubProvider) Name() types.ProviderID { return p.name }

func (p *stubProvider) Fetch(_ context.Context, _ string, _ types.Intent, max int) ([]types.Candidate, error) {
	if p.err != nil {
		return nil, p.err
	}
	if len(p.candidates) > max {
		return p.candidates[:max], nil
	}
	return p.candidates, nil
}

func newTestEngine(providers []provider.Provider, w *bytes.Buffer) *Engine {
	orch := aggregate.NewOrchestrator(providers, types.ProviderConfig{}, w)
	ranker := &scoring.Ranker{Fallback: &scoring.KeywordScorer{}}
	return New(orch, ranker, catalog.NewSeededStore(), 0, w)
}

func TestSearchValidation(t *testing.T) {
	var w bytes.Buffer
	e := newTestEngine(nil, &w)

	tests := []struct {
		name  string
		query string
	}{
		{"empty", ""},
		{"oversized", strings.Repeat("x", 501)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := e.Search(context.Background(), tt.query, nil)
			var ve *ValidationError
			if !errors.As(err, &ve) {
				t.Fatalf("Search(%q) error = %v, want ValidationError", tt.query, err)
			}
		})
	}

	// A 500-character query is still valid.
	if _, err := e.Search(context.Background(), strings.Repeat("x", 500), nil); err != nil {
		t.Fatalf("Search at max length returned error: %v", err)
	}
}

func TestSearchEndToEnd(t *testing.T) {
	seed := catalog.NewSeededStore()
	providers := []provider.Provider{
		&provider.CatalogProvider{Store: seed},
		&stubProvider{
			name: types.ProviderOpenLibrary,
			candidates: []types.Candidate{
				{
					ID:             "openlibrary:OL123W",
					Title:          "Light on Yoga",
					Author:         "B.K.S. Iyengar",
					SourceProvider: types.ProviderOpenLibrary,
					KeyTopics:      []string{"Yoga"},
					Category:       "Yoga",
				},
			},
		},
	}
	var w bytes.Buffer
	orch := aggregate.NewOrchestrator(providers, types.ProviderConfig{}, &w)
	ranker := &scoring.Ranker{Fallback: &scoring.KeywordScorer{}}
	e := New(orch, ranker, seed, 0, &w)

	resp, err := e.Search(context.Background(), "yoga sutras", nil)
	if err != nil {
		t.Fatalf("Search returned error: %v", err)
	}
	if resp.Query != "yoga sutras" {
		t.Errorf("Query = %q, want %q", resp.Query, "yoga sutras")
	}
	if resp.TotalResults != len(resp.Results) {
		t.Errorf("TotalResults = %d, want %d", resp.TotalResults, len(resp.Results))
	}
	if len(resp.Results) == 0 {
		t.Fatal("expected results for a seeded catalog query")
	}
	for i, r := range resp.Results {
		if r.RelevanceScore < types.MinRelevanceScore {
			t.Errorf("result %d score %d below admission threshold", i, r.RelevanceScore)
		}
		if !r.IsGrounded {
			t.Errorf("result %d surfaced ungrounded", i)
		}
		if r.ConfidenceTier != types.TierForScore(r.RelevanceScore) {
			t.Errorf("result %d tier %q does not match score %d", i, r.ConfidenceTier, r.RelevanceScore)
		}
		if i > 0 && resp.Results[i-1].RelevanceScore < r.RelevanceScore {
			t.Errorf("results not sorted descending at index %d", i)
		}
	}
}

func TestSearchIdempotent(t *testing.T) {
	seed := catalog.NewSeededStore()
	providers := []provider.Provider{&provider.CatalogProvider{Store: seed}}
	var w bytes.Buffer
	e := New(
		aggregate.NewOrchestrator(providers, types.ProviderConfig{}, &w),
		&scoring.Ranker{Fallback: &scoring.KeywordScorer{}},
		seed, 0, &w,
	)

	first, err := e.Search(context.Background(), "bhagavad gita", nil)
	if err != nil {
		t.Fatalf("first search: %v", err)
	}
	second, err := e.Search(context.Background(), "bhagavad gita", nil)
	if err != nil {
		t.Fatalf("second search: %v", err)
	}
	if !reflect.DeepEqual(first.Results, second.Results) {
		t.Error("identical searches produced different results")
	}
}

func TestSearchNoMatches(t *testing.T) {
	var w bytes.Buffer
	e := newTestEngine([]provider.Provider{&provider.CatalogProvider{Store: catalog.NewSeededStore()}}, &w)

	resp, err := e.Search(context.Background(), "xyzzy-nonexistent-topic-42", nil)
	if err != nil {
		t.Fatalf("Search returned error: %v", err)
	}
	if resp.TotalResults != 0 {
		t.Errorf("TotalResults = %d, want 0", resp.TotalResults)
	}
	if resp.Results == nil {
		t.Error("Results is nil, want empty slice")
	}
}

func TestSearchAllProvidersFail(t *testing.T) {
	providers := []provider.Provider{
		&stubProvider{name: types.ProviderOpenLibrary, err: errors.New("boom")},
		&stubProvider{name: types.ProviderGutendex, err: errors.New("boom")},
	}
	var w bytes.Buffer
	e := newTestEngine(providers, &w)

	resp, err := e.Search(context.Background(), "anything at all", nil)
	if err != nil {
		t.Fatalf("Search returned error: %v", err)
	}
	if resp.TotalResults != 0 || len(resp.Results) != 0 {
		t.Errorf("expected empty response, got %d results", resp.TotalResults)
	}
	if !strings.Contains(w.String(), "warning:") {
		t.Error("expected warning lines for failed providers")
	}
}

func TestSearchMaxResultsCap(t *testing.T) {
	seed := catalog.NewSeededStore()
	providers := []provider.Provider{&provider.CatalogProvider{Store: seed}}
	var w bytes.Buffer
	e := New(
		aggregate.NewOrchestrator(providers, types.ProviderConfig{}, &w),
		&scoring.Ranker{Fallback: &scoring.KeywordScorer{}},
		seed, 1, &w,
	)

	resp, err := e.Search(context.Background(), "yoga", nil)
	if err != nil {
		t.Fatalf("Search returned error: %v", err)
	}
	if len(resp.Results) > 1 {
		t.Errorf("got %d results, want at most 1", len(resp.Results))
	}
}

func TestListCandidates(t *testing.T) {
	var w bytes.Buffer
	e := newTestEngine(nil, &w)

	all := e.ListCandidates("")
	if len(all) == 0 {
		t.Fatal("seeded catalog listing is empty")
	}
	filtered := e.ListCandidates("catalog")
	if len(filtered) != len(all) {
		t.Errorf("filter %q returned %d of %d seeded entries", "catalog", len(filtered), len(all))
	}
}

func TestQueryFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "search.yaml")
	resp := types.SearchResponse{
		Query:        "yoga sutras",
		TotalResults: 1,
		Results: []types.ScoredResult{
			{
				Candidate: types.Candidate{
					ID:             "catalog:yoga-sutras-patanjali",
					Title:          "Yoga Sutras of Patanjali",
					SourceProvider: types.ProviderCatalog,
				},
				RelevanceScore:   95,
				ConfidenceTier:   types.TierStrong,
				IsGrounded:       true,
				CitationLocation: "key_topics",
			},
		},
	}

	sources := []types.ProviderID{types.ProviderCatalog}
	if err := WriteQueryFile(path, resp, sources); err != nil {
		t.Fatalf("WriteQueryFile: %v", err)
	}
	qf, err := ReadQueryFile(path)
	if err != nil {
		t.Fatalf("ReadQueryFile: %v", err)
	}
	if qf.Query != resp.Query {
		t.Errorf("Query = %q, want %q", qf.Query, resp.Query)
	}
	if qf.Summary.Total != resp.TotalResults {
		t.Errorf("Summary.Total = %d, want %d", qf.Summary.Total, resp.TotalResults)
	}
	if !reflect.DeepEqual(qf.Results, resp.Results) {
		t.Error("results changed across the round trip")
	}
	if !reflect.DeepEqual(qf.Sources, sources) {
		t.Errorf("Sources = %v, want %v", qf.Sources, sources)
	}
}
