// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/bookfinder/internal/catalog"
	"github.com/pdiddy/bookfinder/internal/engine"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Browse the curated catalog",
	Long: `Catalog lists the curated book entries without querying external
sources or scoring. Use --source to restrict the listing.`,
	RunE: runCatalog,
}

func init() {
	catalogCmd.Flags().String("source", "", "restrict listing to one source platform")
	catalogCmd.Flags().Bool("json", false, "output entries as JSON")

	rootCmd.AddCommand(catalogCmd)
}

func runCatalog(cmd *cobra.Command, args []string) error {
	source, _ := cmd.Flags().GetString("source")
	books := catalog.NewSeededStore().List(source)

	if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
		return engine.FormatCandidatesJSON(books, os.Stdout)
	}
	engine.FormatCatalogTable(books, os.Stdout)
	return nil
}
