// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package provider

import (
	"context"
	"testing"

	"github.com/pdiddy/bookfinder/internal/catalog"
	"github.com/pdiddy/bookfinder/pkg/types"
)

func TestCatalogProviderFetch(t *testing.T) {
	p := &CatalogProvider{Store: catalog.NewSeededStore()}

	candidates, err := p.Fetch(context.Background(), "Patanjali Yoga Sutras", types.Intent{
		Author: "patanjali", Title: "yoga sutras",
	}, 10)
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if len(candidates) == 0 {
		t.Fatal("expected catalog hit for Patanjali Yoga Sutras")
	}
	if candidates[0].ID != "catalog:yoga-sutras-patanjali" {
		t.Errorf("first hit = %q", candidates[0].ID)
	}
}

func TestCatalogProviderRawQueryFallback(t *testing.T) {
	seed := []types.Candidate{{
		ID: "catalog:x", Title: "Stillness Speaks", Author: "Eckhart Tolle",
		SourceProvider: types.ProviderCatalog,
	}}
	p := &CatalogProvider{Store: catalog.NewStore(seed)}

	// Wrong parse: the structured term misses, the raw query still hits.
	intent := types.Intent{Author: "stillness", Title: "talks"}
	candidates, err := p.Fetch(context.Background(), "stillness speaks", intent, 10)
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if len(candidates) != 1 {
		t.Errorf("len(candidates) = %d, want 1 via raw-query fallback", len(candidates))
	}
}

func TestCatalogProviderRespectsCap(t *testing.T) {
	p := &CatalogProvider{Store: catalog.NewSeededStore()}

	candidates, err := p.Fetch(context.Background(), "book", types.Intent{Title: ""}, 3)
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if len(candidates) > 3 {
		t.Errorf("len(candidates) = %d, want <= 3", len(candidates))
	}
}

func TestLanguageName(t *testing.T) {
	tests := []struct {
		code string
		want string
	}{
		{"eng", "English"},
		{"en", "English"},
		{"san", "Sanskrit"},
		{"xx", "XX"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := LanguageName(tt.code); got != tt.want {
			t.Errorf("LanguageName(%q) = %q, want %q", tt.code, got, tt.want)
		}
	}
}

func TestScanTheologicalTags(t *testing.T) {
	tags := ScanTheologicalTags("Kundalini Tantra: The Path of Yoga")
	want := map[string]bool{"tantra": true, "kundalini": true, "yoga": true}
	if len(tags) != len(want) {
		t.Fatalf("tags = %v", tags)
	}
	for _, tag := range tags {
		if !want[tag] {
			t.Errorf("unexpected tag %q", tag)
		}
	}
}
