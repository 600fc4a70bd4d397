// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package engine

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/pdiddy/bookfinder/pkg/types"
)

// FormatTable writes a search response as a human-readable table to w.
func FormatTable(resp types.SearchResponse, w io.Writer) {
	if resp.TotalResults == 0 {
		fmt.Fprintln(w, "No results found.")
		return
	}

	fmt.Fprintf(w, "%-4s  %-50s  %-22s  %-5s  %-9s  %-8s  %s\n",
		"Rank", "Title", "Author", "Score", "Tier", "Price", "Source")
	fmt.Fprintln(w, strings.Repeat("-", 112))

	for i, r := range resp.Results {
		c := r.Candidate
		fmt.Fprintf(w, "%-4d  %-50s  %-22s  %-5d  %-9s  %-8s  %s\n",
			i+1, truncate(c.Title, 50), truncate(c.Author, 22),
			r.RelevanceScore, r.ConfidenceTier, formatPrice(c), c.SourceProvider)
	}

	fmt.Fprintf(w, "\n%d results in %s\n", resp.TotalResults, resp.SearchTime.Round(time.Millisecond))
}

// FormatJSON writes a search response as indented JSON to w.
func FormatJSON(resp types.SearchResponse, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(resp)
}

// FormatCandidatesJSON writes candidates as indented JSON to w.
func FormatCandidatesJSON(books []types.Candidate, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(books)
}

// FormatCatalogTable writes catalog entries as a table to w.
func FormatCatalogTable(books []types.Candidate, w io.Writer) {
	if len(books) == 0 {
		fmt.Fprintln(w, "No catalog entries.")
		return
	}

	fmt.Fprintf(w, "%-50s  %-26s  %-20s  %s\n", "Title", "Author", "Category", "Price")
	fmt.Fprintln(w, strings.Repeat("-", 104))
	for _, b := range books {
		fmt.Fprintf(w, "%-50s  %-26s  %-20s  %s\n",
			truncate(b.Title, 50), truncate(b.Author, 26), truncate(b.Category, 20), formatPrice(b))
	}
	fmt.Fprintf(w, "\n%d entries\n", len(books))
}

// formatPrice renders the three price states: unknown, free, and priced.
func formatPrice(c types.Candidate) string {
	if c.Price == nil {
		return "-"
	}
	if *c.Price == 0 {
		return "free"
	}
	return fmt.Sprintf("%s %.0f", c.Currency, *c.Price)
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
