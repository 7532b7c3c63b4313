// Package cli implements the cobra command tree for the outfit CLI.
package cli

import (
	"context"
	"os"
	"sync"

	"github.com/spf13/cobra"

	configfile "github.com/attire-labs/outfit-cli/internal/adapters/driven/config/file"
	embedollama "github.com/attire-labs/outfit-cli/internal/adapters/driven/embedding/ollama"
	explainollama "github.com/attire-labs/outfit-cli/internal/adapters/driven/explain/ollama"
	"github.com/attire-labs/outfit-cli/internal/adapters/driven/ranking/linear"
	storagefile "github.com/attire-labs/outfit-cli/internal/adapters/driven/storage/file"
	storagesqlite "github.com/attire-labs/outfit-cli/internal/adapters/driven/storage/sqlite"
	"github.com/attire-labs/outfit-cli/internal/adapters/driven/vector/flat"
	"github.com/attire-labs/outfit-cli/internal/core/domain"
	"github.com/attire-labs/outfit-cli/internal/core/ports/driven"
	"github.com/attire-labs/outfit-cli/internal/core/ports/driving"
	"github.com/attire-labs/outfit-cli/internal/core/services"
	"github.com/attire-labs/outfit-cli/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

var (
	verbose   bool
	configDir string
)

// Services injected into the command tree. Built lazily from configuration
// on first use; tests set them directly and mark initialisation done.
var (
	catalogService   driving.CatalogService
	recommendService driving.RecommendationService
	settings         = domain.DefaultSettings()

	initOnce sync.Once
	initErr  error
)

var rootCmd = &cobra.Command{
	Use:   "outfit",
	Short: "Outfit recommendations from your clothing catalog",
	Long: `Recommends complete outfits (top, bottom, shoes) from a clothing
catalog, matched to occasion, weather, and style preferences.

Retrieval uses embedding similarity when the catalog carries vectors and
falls back to keyword matching otherwise.`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&configDir, "config", "", "config directory (default ~/.outfit)")
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// ensureServices builds the service graph from configuration exactly once
// per process. Long-lived commands like mcp serve share the same instances;
// commands that need services call this from RunE so commands like version
// never touch configuration.
func ensureServices() error {
	initOnce.Do(func() {
		initErr = initServices()
	})
	return initErr
}

func initServices() error {
	store, err := configfile.NewConfigStore(configDir)
	if err != nil {
		return err
	}
	settings = configfile.LoadSettings(store)

	catalogStore, encoder, vectors, err := buildCatalogBackend(settings)
	if err != nil {
		return err
	}

	idx, err := services.NewCatalogIndex(context.Background(), catalogStore, encoder, vectors)
	if err != nil {
		return err
	}
	catalogService = idx

	var model driven.RankingModel
	if settings.RankingModelPath != "" {
		m, err := linear.Load(settings.RankingModelPath)
		if err != nil {
			logger.Warn("Ranking model unavailable: %v; using heuristic scoring", err)
		} else {
			model = m
		}
	}

	var explainer driven.ExplanationService
	if settings.ExplainModel != "" {
		explainer = explainollama.NewExplanationService(explainollama.Config{
			Model: settings.ExplainModel,
		})
	}

	recommendService = services.NewRecommender(idx, model, explainer, settings)
	return nil
}

// buildCatalogBackend resolves the catalog store and, when an embedding
// model is configured, the encoder and vector index. Embedding problems
// degrade to keyword search; only store problems are errors.
func buildCatalogBackend(s domain.Settings) (driven.CatalogStore, driven.EmbeddingService, driven.VectorIndex, error) {
	var store driven.CatalogStore
	switch s.CatalogDriver {
	case "sqlite":
		st, err := storagesqlite.NewCatalogStore(s.CatalogPath)
		if err != nil {
			return nil, nil, nil, err
		}
		store = st
	default:
		store = storagefile.NewCatalogStore(s.CatalogPath, s.EmbeddingsPath)
	}

	if s.EmbeddingModel == "" {
		return store, nil, nil, nil
	}

	encoder, err := embedollama.NewEmbeddingService(embedollama.Config{
		BaseURL: s.EmbeddingBaseURL,
		Model:   s.EmbeddingModel,
	})
	if err != nil {
		logger.Warn("Embedding model unavailable: %v; keyword search only", err)
		return store, nil, nil, nil
	}

	return store, encoder, flat.New(encoder.Dimensions()), nil
}
