// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package aggregate fans a query out to every enabled provider adapter
// concurrently, then normalizes and deduplicates the combined candidate
// pool. Provider failures are isolated: a failed adapter contributes zero
// candidates and a warning line, never an aborted request.
package aggregate

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/pdiddy/bookfinder/internal/provider"
	"github.com/pdiddy/bookfinder/pkg/types"
)

// Selection restricts which providers participate in one request. A nil or
// empty selection enables every registered provider.
type Selection map[types.ProviderID]bool

// Enabled reports whether the selection admits the provider.
func (s Selection) Enabled(id types.ProviderID) bool {
	if len(s) == 0 {
		return true
	}
	return s[id]
}

// Orchestrator owns the registered providers and their result caps.
type Orchestrator struct {
	providers []provider.Provider
	cfg       types.ProviderConfig
	w         io.Writer
}

// NewOrchestrator registers the providers. They are run in the fixed
// ProviderPriority order regardless of registration order, so results are
// deterministic for a deterministic set of adapters.
func NewOrchestrator(providers []provider.Provider, cfg types.ProviderConfig, w io.Writer) *Orchestrator {
	ordered := make([]provider.Provider, 0, len(providers))
	for _, id := range types.ProviderPriority {
		for _, p := range providers {
			if p.Name() == id {
				ordered = append(ordered, p)
			}
		}
	}
	// Providers outside the fixed priority list run last.
	for _, p := range providers {
		if !isPriority(p.Name()) {
			ordered = append(ordered, p)
		}
	}
	return &Orchestrator{providers: ordered, cfg: cfg, w: w}
}

func isPriority(id types.ProviderID) bool {
	for _, p := range types.ProviderPriority {
		if p == id {
			return true
		}
	}
	return false
}

// cap returns the per-provider result cap: the curated catalog is small and
// precise and gets the narrow allotment, broad web sources the larger one.
func (o *Orchestrator) cap(id types.ProviderID) int {
	if id == types.ProviderCatalog {
		return o.cfg.CatalogCap()
	}
	return o.cfg.WebCap()
}

// Aggregate runs every selected provider concurrently and returns the
// normalized, deduplicated candidate pool. It waits for all providers to
// finish (success or soft failure): ranking quality depends on the full
// pool, so there is no early return on partial completion. The only bound
// on a slow provider is the transport-level timeout its client carries.
func (o *Orchestrator) Aggregate(ctx context.Context, rawQuery string, intent types.Intent, sel Selection) []types.Candidate {
	type slot struct {
		candidates []types.Candidate
		err        error
		name       types.ProviderID
	}

	active := make([]provider.Provider, 0, len(o.providers))
	for _, p := range o.providers {
		if sel.Enabled(p.Name()) {
			active = append(active, p)
		}
	}

	slots := make([]slot, len(active))
	var wg sync.WaitGroup
	for i, p := range active {
		wg.Add(1)
		go func(i int, p provider.Provider) {
			defer wg.Done()
			candidates, err := p.Fetch(ctx, rawQuery, intent, o.cap(p.Name()))
			slots[i] = slot{candidates: candidates, err: err, name: p.Name()}
		}(i, p)
	}
	wg.Wait()

	// Concatenate in priority order, preserving within-provider order.
	var pool []types.Candidate
	for _, s := range slots {
		if s.err != nil {
			fmt.Fprintf(o.w, "warning: provider %s failed: %v\n", s.name, s.err)
			continue
		}
		pool = append(pool, s.candidates...)
	}

	return Normalize(pool)
}
