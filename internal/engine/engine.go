// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package engine composes the discovery pipeline: interpret the query, fan
// out to the providers, score the pool, and assemble the response contract.
// It is the only surface callers see; the HTTP and CLI layers are thin
// consumers of Search and ListCandidates.
package engine

import (
	"context"
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/pdiddy/bookfinder/internal/aggregate"
	"github.com/pdiddy/bookfinder/internal/catalog"
	"github.com/pdiddy/bookfinder/internal/query"
	"github.com/pdiddy/bookfinder/internal/scoring"
	"github.com/pdiddy/bookfinder/pkg/types"
)

// Query length bounds enforced before any work happens.
const (
	minQueryLen = 1
	maxQueryLen = 500
)

// ValidationError marks a malformed request. It surfaces to the caller as
// a client error and is never logged as a system fault.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string { return e.Reason }

// Engine owns the pipeline stages for the lifetime of the process. The
// catalog seed and configuration are read-only, so one Engine serves
// concurrent searches without locking; all per-request state lives on the
// call stack.
type Engine struct {
	orchestrator *aggregate.Orchestrator
	ranker       *scoring.Ranker
	store        *catalog.Store
	maxResults   int
	w            io.Writer
}

// New assembles an Engine from its stages. w receives warning lines for
// soft failures (degraded providers, scorer fallback).
func New(orchestrator *aggregate.Orchestrator, ranker *scoring.Ranker, store *catalog.Store, maxResults int, w io.Writer) *Engine {
	return &Engine{
		orchestrator: orchestrator,
		ranker:       ranker,
		store:        store,
		maxResults:   maxResults,
		w:            w,
	}
}

// Search runs the full pipeline for one query. Provider and evaluator
// faults degrade the result; only input validation fails the call. If
// every provider fails, the response is valid and empty.
func (e *Engine) Search(ctx context.Context, rawQuery string, sources aggregate.Selection) (types.SearchResponse, error) {
	start := time.Now()

	if len(rawQuery) < minQueryLen {
		return types.SearchResponse{}, &ValidationError{Reason: "query must not be empty"}
	}
	if len(rawQuery) > maxQueryLen {
		return types.SearchResponse{}, &ValidationError{Reason: fmt.Sprintf("query exceeds %d characters", maxQueryLen)}
	}

	intent := query.Interpret(rawQuery)
	pool := e.orchestrator.Aggregate(ctx, rawQuery, intent, sources)
	scored := e.ranker.Score(ctx, rawQuery, intent, pool, e.w)

	return e.assemble(rawQuery, scored, start), nil
}

// ListCandidates exposes the read-only catalog browse contract. An empty
// filter lists everything.
func (e *Engine) ListCandidates(sourceFilter string) []types.Candidate {
	return e.store.List(sourceFilter)
}

// assemble produces the immutable response: a stable sort descending by
// score (ties keep discovery order), the post-filter count, and the
// wall-clock duration.
func (e *Engine) assemble(rawQuery string, scored []types.ScoredResult, start time.Time) types.SearchResponse {
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].RelevanceScore > scored[j].RelevanceScore
	})

	if e.maxResults > 0 && len(scored) > e.maxResults {
		scored = scored[:e.maxResults]
	}
	if scored == nil {
		scored = []types.ScoredResult{}
	}

	return types.SearchResponse{
		Results:      scored,
		Query:        rawQuery,
		TotalResults: len(scored),
		SearchTime:   time.Since(start),
	}
}
