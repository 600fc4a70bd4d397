// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/bookfinder/internal/engine"
	"github.com/pdiddy/bookfinder/pkg/types"
)

var showCmd = &cobra.Command{
	Use:   "show <file>",
	Short: "Display a saved query file",
	Long: `Show reloads a YAML query file written by search --out and prints its
results without re-querying sources or the evaluator.`,
	Args: cobra.ExactArgs(1),
	RunE: runShow,
}

func init() {
	showCmd.Flags().Bool("json", false, "output results as JSON")

	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	qf, err := engine.ReadQueryFile(args[0])
	if err != nil {
		return err
	}

	resp := types.SearchResponse{
		Results:      qf.Results,
		Query:        qf.Query,
		TotalResults: qf.Summary.Total,
		SearchTime:   qf.Summary.SearchTime,
	}

	if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
		return engine.FormatJSON(resp, os.Stdout)
	}
	engine.FormatTable(resp, os.Stdout)
	return nil
}
