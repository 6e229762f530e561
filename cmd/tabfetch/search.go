package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/tabfetch/internal/songsterr"
)

var searchCmd = &cobra.Command{
	Use:   "search [terms...]",
	Short: "Search Songsterr for tabs without downloading",
	Long: `Search queries Songsterr for tabs matching the given terms and prints
the matches in the service's ranking order. Use the song's tab URL or an
interactive root-command search to download a match.`,
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().Int("max-results", 0, "maximum number of results (default 20)")
	searchCmd.Flags().Duration("timeout", 0, "HTTP request timeout (default 30s)")
	searchCmd.Flags().Bool("json", false, "output results as JSON")

	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	pattern := strings.TrimSpace(strings.Join(args, " "))
	if pattern == "" {
		return fmt.Errorf("provide search terms")
	}

	cfg := pipelineConfig(cmd)
	client := songsterr.New(cfg.Search.HTTPConfig)

	results, err := client.Search(cmd.Context(), pattern, cfg.Search.MaxResults)
	if err != nil {
		return err
	}

	if jsonOut, _ := cmd.Flags().GetBool("json"); jsonOut {
		return songsterr.FormatJSON(results, os.Stdout)
	}
	songsterr.FormatTable(results, os.Stdout)
	return nil
}
