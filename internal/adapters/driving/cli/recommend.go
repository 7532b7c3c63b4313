package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/attire-labs/outfit-cli/internal/core/domain"
)

var (
	recommendTopN int
	recommendLLM  bool
	recommendJSON bool
)

var recommendCmd = &cobra.Command{
	Use:   "recommend [context.json]",
	Short: "Recommend outfits for a user context",
	Long: `Runs the recommendation pipeline for the user context in the given
JSON file: retrieves matching items, assembles top/bottom/shoes
combinations, ranks them, and returns the best outfits.`,
	Args: cobra.ExactArgs(1),
	RunE: runRecommend,
}

func init() {
	recommendCmd.Flags().IntVarP(&recommendTopN, "top-n", "n", 0, "number of outfits to return (1-10, default 3)")
	recommendCmd.Flags().BoolVar(&recommendLLM, "with-llm", false, "use the configured LLM for explanation text")
	recommendCmd.Flags().BoolVar(&recommendJSON, "json", false, "output the response as JSON")
	rootCmd.AddCommand(recommendCmd)
}

func runRecommend(cmd *cobra.Command, args []string) error {
	if err := ensureServices(); err != nil {
		return err
	}
	if recommendService == nil {
		return errors.New("recommendation service not configured")
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("read context file: %w", err)
	}

	var user domain.UserContext
	if err := json.Unmarshal(data, &user); err != nil {
		return fmt.Errorf("parse context file: %w", err)
	}

	if recommendTopN > 0 {
		user.TopN = recommendTopN
	}
	if recommendLLM {
		user.UseLLM = true
	}
	if err := user.Validate(); err != nil {
		return err
	}

	resp, err := recommendService.Recommend(cmd.Context(), user)
	if err != nil {
		return fmt.Errorf("recommend failed: %w", err)
	}

	if recommendJSON {
		return outputJSON(cmd, resp)
	}
	return outputRecommendations(cmd, resp)
}

func outputJSON(cmd *cobra.Command, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

func outputRecommendations(cmd *cobra.Command, resp domain.RecommendationResponse) error {
	if len(resp.Recommendations) == 0 {
		cmd.Println("No outfits could be assembled from the catalog.")
		return nil
	}

	cmd.Println(headerStyle.Render(fmt.Sprintf("Outfits for %s", resp.UserID)))
	cmd.Println(rule())

	for _, rec := range resp.Recommendations {
		cmd.Printf("%s %s\n",
			headerStyle.Render(fmt.Sprintf("#%d", rec.Rank)),
			scoreStyle.Render(fmt.Sprintf("score %.2f", rec.OverallScore)))

		for _, item := range rec.Items {
			cmd.Printf("  %-7s %s (%s, %s)\n", item.Role, item.Title, item.Color, item.Material)
		}
		for _, reason := range rec.Reasons {
			cmd.Printf("  - %s\n", reason)
		}
		if len(rec.AccessorySuggestions) > 0 {
			cmd.Printf("  %s %s\n", dimStyle.Render("accessories:"), strings.Join(rec.AccessorySuggestions, ", "))
		}
		cmd.Println()
	}

	return nil
}
