// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/bookfinder/internal/aggregate"
	"github.com/pdiddy/bookfinder/internal/engine"
	"github.com/pdiddy/bookfinder/pkg/types"
)

const (
	defaultTimeout      = 30 * time.Second
	defaultModelTimeout = 60 * time.Second
	defaultUserAgent    = "bookfinder/0.1"
	defaultModel        = "claude-sonnet-4-5-20250929"
)

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search book sources for titles matching a query",
	Long: `Search runs the query against the curated catalog, Open Library,
Gutendex, and retail listings concurrently, deduplicates the combined
pool, and prints the results ranked by grounded relevance. Source
failures degrade the result set; they never abort the search.`,
	Args: cobra.ExactArgs(1),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().String("sources", "", "comma-separated sources to query (catalog, openlibrary, gutendex, retail; default all)")
	searchCmd.Flags().Int("max-results", 0, "maximum number of results to return (default: no cap)")
	searchCmd.Flags().Bool("json", false, "output results as JSON")
	searchCmd.Flags().String("out", "", "save results to a YAML query file")
	searchCmd.Flags().String("model", "", "AI model for grounded scoring")
	searchCmd.Flags().Duration("timeout", 0, "HTTP request timeout (default 30s)")

	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	sourcesFlag, _ := cmd.Flags().GetString("sources")
	sel, sources, err := parseSources(sourcesFlag)
	if err != nil {
		return err
	}

	cfg := buildConfig(cmd)
	e := engine.Build(cfg, os.Stderr)

	resp, err := e.Search(cmd.Context(), args[0], sel)
	if err != nil {
		return err
	}

	if outPath, _ := cmd.Flags().GetString("out"); outPath != "" {
		if err := engine.WriteQueryFile(outPath, resp, sources); err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "Saved %d result(s) to %s\n", resp.TotalResults, outPath)
	}

	if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
		return engine.FormatJSON(resp, os.Stdout)
	}
	engine.FormatTable(resp, os.Stdout)
	return nil
}

// parseSources converts the --sources flag into a provider selection. An
// empty flag selects every source.
func parseSources(flag string) (aggregate.Selection, []types.ProviderID, error) {
	if strings.TrimSpace(flag) == "" {
		return nil, nil, nil
	}

	sel := make(aggregate.Selection)
	var sources []types.ProviderID
	for _, part := range strings.Split(flag, ",") {
		name := types.ProviderID(strings.ToLower(strings.TrimSpace(part)))
		switch name {
		case types.ProviderCatalog, types.ProviderOpenLibrary, types.ProviderGutendex, types.ProviderRetail:
			if !sel[name] {
				sel[name] = true
				sources = append(sources, name)
			}
		default:
			return nil, nil, fmt.Errorf("unknown source %q (valid: catalog, openlibrary, gutendex, retail)", name)
		}
	}
	return sel, sources, nil
}

// buildConfig assembles the engine configuration from flags, environment,
// config file, and loaded secrets, in that precedence order.
func buildConfig(cmd *cobra.Command) types.EngineConfig {
	timeout, _ := cmd.Flags().GetDuration("timeout")
	if timeout == 0 {
		timeout = viper.GetDuration("providers.timeout")
	}
	if timeout == 0 {
		timeout = defaultTimeout
	}

	model, _ := cmd.Flags().GetString("model")
	if model == "" {
		model = viper.GetString("scoring.model")
	}
	if model == "" {
		model = defaultModel
	}

	maxResults, _ := cmd.Flags().GetInt("max-results")
	if maxResults == 0 {
		maxResults = viper.GetInt("max_results")
	}

	modelTimeout := viper.GetDuration("scoring.timeout")
	if modelTimeout == 0 {
		modelTimeout = defaultModelTimeout
	}

	return types.EngineConfig{
		Providers: types.ProviderConfig{
			HTTPConfig: types.HTTPConfig{
				Timeout:   timeout,
				UserAgent: defaultUserAgent,
			},
			EnableCatalog:           true,
			EnableOpenLibrary:       true,
			EnableGutendex:          true,
			EnableRetail:            true,
			CatalogMaxResults:       viper.GetInt("providers.catalog_max_results"),
			WebMaxResults:           viper.GetInt("providers.web_max_results"),
			OpenLibraryEmail:        secretDefault("openlibrary-email", viper.GetString("providers.openlibrary_email")),
			RetailRequestsPerSecond: viper.GetFloat64("providers.retail_requests_per_second"),
		},
		Scoring: types.ScoringConfig{
			AIConfig: types.AIConfig{
				Model:  model,
				APIKey: secretDefault("anthropic-api-key", viper.GetString("scoring.api_key")),
			},
			Timeout: modelTimeout,
		},
		MaxResults: maxResults,
	}
}
