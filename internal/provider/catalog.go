// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package provider

import (
	"context"
	"strings"

	"github.com/pdiddy/bookfinder/internal/catalog"
	"github.com/pdiddy/bookfinder/pkg/types"
)

// CatalogProvider searches the curated in-memory seed. It is synchronous
// and cannot fail.
type CatalogProvider struct {
	Store *catalog.Store
}

// Name returns the provider identifier.
func (p *CatalogProvider) Name() types.ProviderID { return types.ProviderCatalog }

// Fetch filters the seed by substring match over title, author, description,
// and category. When a structured title search finds nothing, the raw query
// is retried: a heuristic parse must never hide catalog entries the raw text
// would have found.
func (p *CatalogProvider) Fetch(_ context.Context, rawQuery string, intent types.Intent, maxResults int) ([]types.Candidate, error) {
	term := intent.Title
	if intent.Author != "" {
		term = strings.TrimSpace(intent.Author + " " + intent.Title)
	}
	if term == "" {
		term = rawQuery
	}

	found := p.Store.Filter(term, maxResults)
	if len(found) == 0 && !strings.EqualFold(term, rawQuery) {
		found = p.Store.Filter(rawQuery, maxResults)
	}
	return found, nil
}
