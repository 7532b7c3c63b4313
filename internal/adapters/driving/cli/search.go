package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/attire-labs/outfit-cli/internal/core/domain"
)

var (
	searchLimit int
	searchJSON  bool
)

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search the clothing catalog",
	Long: `Performs hybrid search over the clothing catalog.
Uses embedding (semantic) similarity when the catalog carries vectors,
keyword matching otherwise.`,
	Args: cobra.ExactArgs(1),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().IntVarP(&searchLimit, "limit", "n", 10, "maximum number of results")
	searchCmd.Flags().BoolVar(&searchJSON, "json", false, "output results as JSON")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	if err := ensureServices(); err != nil {
		return err
	}
	if catalogService == nil {
		return errors.New("catalog service not configured")
	}

	opts := domain.SearchOptions{
		TopK:      searchLimit,
		Threshold: settings.SimilarityThreshold,
	}

	results, err := catalogService.SearchByText(cmd.Context(), args[0], opts)
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	if searchJSON {
		return outputJSON(cmd, results)
	}
	return outputSearchTable(cmd, results)
}

func outputSearchTable(cmd *cobra.Command, results []domain.SearchResult) error {
	if len(results) == 0 {
		cmd.Println("No results found.")
		return nil
	}

	cmd.Println("Results:")
	cmd.Println()
	for i := range results {
		item := results[i].Item
		cmd.Printf("  [%d] %s (%.2f)\n", i+1, item.Title, results[i].Score)
		cmd.Printf("      %s · %s · %s · %s\n", item.Role, item.Color, item.Style, item.Material)
		cmd.Println()
	}

	return nil
}
