// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package engine

import (
	"io"
	"net/http"

	"github.com/pdiddy/bookfinder/internal/aggregate"
	"github.com/pdiddy/bookfinder/internal/catalog"
	"github.com/pdiddy/bookfinder/internal/httputil"
	"github.com/pdiddy/bookfinder/internal/provider"
	"github.com/pdiddy/bookfinder/internal/scoring"
	"github.com/pdiddy/bookfinder/pkg/types"
)

// Build wires a production Engine from configuration: HTTP clients with
// the transport-level timeout, the enabled provider adapters, and the
// grounded scorer when an API key is configured. Without a key the engine
// runs keyword-only.
func Build(cfg types.EngineConfig, w io.Writer) *Engine {
	client := &http.Client{Timeout: cfg.Providers.Timeout}
	store := catalog.NewSeededStore()

	var providers []provider.Provider
	if cfg.Providers.EnableOpenLibrary {
		providers = append(providers, &provider.OpenLibraryProvider{
			Client:    client,
			UserAgent: cfg.Providers.UserAgent,
			Email:     cfg.Providers.OpenLibraryEmail,
		})
	}
	if cfg.Providers.EnableGutendex {
		providers = append(providers, &provider.GutendexProvider{
			Client:    client,
			UserAgent: cfg.Providers.UserAgent,
		})
	}
	if cfg.Providers.EnableRetail {
		providers = append(providers, &provider.RetailProvider{
			Client: httputil.NewPacedClient(client, cfg.Providers.RetailRequestsPerSecond),
		})
	}
	if cfg.Providers.EnableCatalog {
		providers = append(providers, &provider.CatalogProvider{Store: store})
	}

	ranker := &scoring.Ranker{Fallback: &scoring.KeywordScorer{}}
	if cfg.Scoring.APIKey != "" {
		ranker.Grounded = &scoring.GroundedScorer{
			Evaluator: &scoring.ClaudeEvaluator{
				Config: cfg.Scoring,
				Client: &http.Client{Timeout: cfg.Scoring.Timeout},
			},
		}
	}

	orchestrator := aggregate.NewOrchestrator(providers, cfg.Providers, w)
	return New(orchestrator, ranker, store, cfg.MaxResults, w)
}
