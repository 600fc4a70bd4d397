// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package engine

import (
	"fmt"
	"os"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/bookfinder/pkg/types"
)

// QueryFile is the on-disk representation of a search and its scored
// results. A search can be exported to a file and reloaded later without
// re-querying providers or the evaluator.
type QueryFile struct {
	Query   string               `yaml:"query"`
	Sources []types.ProviderID   `yaml:"sources,omitempty"`
	Results []types.ScoredResult `yaml:"results"`
	Summary QuerySummary         `yaml:"summary"`
}

// QuerySummary stores result statistics and a timestamp.
type QuerySummary struct {
	Total      int           `yaml:"total"`
	SearchTime time.Duration `yaml:"search_time"`
	Timestamp  time.Time     `yaml:"timestamp"`
}

// WriteQueryFile saves a search response to a YAML file.
func WriteQueryFile(path string, resp types.SearchResponse, sources []types.ProviderID) error {
	qf := QueryFile{
		Query:   resp.Query,
		Sources: sources,
		Results: resp.Results,
		Summary: QuerySummary{
			Total:      resp.TotalResults,
			SearchTime: resp.SearchTime,
			Timestamp:  time.Now(),
		},
	}

	data, err := yaml.Marshal(&qf)
	if err != nil {
		return fmt.Errorf("marshaling query file: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// ReadQueryFile loads a previously saved query file from disk.
func ReadQueryFile(path string) (*QueryFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading query file: %w", err)
	}
	var qf QueryFile
	if err := yaml.Unmarshal(data, &qf); err != nil {
		return nil, fmt.Errorf("parsing query file: %w", err)
	}
	return &qf, nil
}
