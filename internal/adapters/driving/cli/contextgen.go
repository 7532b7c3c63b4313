package cli

import (
	"math/rand"

	"github.com/spf13/cobra"

	"github.com/attire-labs/outfit-cli/internal/core/services"
)

var contextSeed int64

var contextCmd = &cobra.Command{
	Use:   "context",
	Short: "User context commands",
}

var contextGenerateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a synthetic user context",
	Long: `Generates a synthetic user context as JSON, suitable as input to
the recommend command. Generation is deterministic per seed.`,
	RunE: runContextGenerate,
}

func init() {
	contextGenerateCmd.Flags().Int64Var(&contextSeed, "seed", 42, "random seed")
	contextCmd.AddCommand(contextGenerateCmd)
	rootCmd.AddCommand(contextCmd)
}

func runContextGenerate(cmd *cobra.Command, _ []string) error {
	rng := rand.New(rand.NewSource(contextSeed))
	user := services.GenerateContext(rng)
	return outputJSON(cmd, user)
}
