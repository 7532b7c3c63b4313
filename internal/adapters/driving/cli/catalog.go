package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"math/rand"
	"os"

	"github.com/spf13/cobra"

	embedollama "github.com/attire-labs/outfit-cli/internal/adapters/driven/embedding/ollama"
	storagefile "github.com/attire-labs/outfit-cli/internal/adapters/driven/storage/file"
	storagesqlite "github.com/attire-labs/outfit-cli/internal/adapters/driven/storage/sqlite"
	"github.com/attire-labs/outfit-cli/internal/core/domain"
	"github.com/attire-labs/outfit-cli/internal/core/ports/driven"
	"github.com/attire-labs/outfit-cli/internal/core/services"
)

var (
	findColor    string
	findMaterial string
	findStyle    string
	findFit      string
	findCategory string
	findLimit    int

	generateCount int
	generateSeed  int64
	generateOut   string

	embedDriver      string
	embedCatalogPath string
	embedOut         string
	embedModel       string
	embedBaseURL     string
)

// embedEncoder is built from the embed flags on first use; tests inject one.
var embedEncoder driven.EmbeddingService

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Catalog inspection and generation commands",
}

var catalogStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Summarise the loaded catalog",
	RunE:  runCatalogStats,
}

var catalogGetCmd = &cobra.Command{
	Use:   "get [item-id]",
	Short: "Show a single catalog item",
	Args:  cobra.ExactArgs(1),
	RunE:  runCatalogGet,
}

var catalogFindCmd = &cobra.Command{
	Use:   "find",
	Short: "Filter the catalog by exact attributes",
	Long: `Filters catalog items by case-insensitive exact attribute match.
Set flags combine with AND; matches are returned in catalog order.`,
	RunE: runCatalogFind,
}

var catalogGenerateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a synthetic catalog file",
	Long: `Generates a synthetic clothing catalog for demos and testing.
Generation is deterministic per seed.`,
	RunE: runCatalogGenerate,
}

var catalogEmbedCmd = &cobra.Command{
	Use:   "embed",
	Short: "Build item embeddings for the catalog",
	Long: `Encodes each item's title and description with the embedding model
and stores the vectors: a JSON sidecar for the file driver, the embedding
column for the sqlite driver. Run it after changing the catalog so search
can use embedding similarity instead of keyword matching.`,
	RunE: runCatalogEmbed,
}

func init() {
	catalogFindCmd.Flags().StringVar(&findColor, "color", "", "filter by color")
	catalogFindCmd.Flags().StringVar(&findMaterial, "material", "", "filter by material")
	catalogFindCmd.Flags().StringVar(&findStyle, "style", "", "filter by style")
	catalogFindCmd.Flags().StringVar(&findFit, "fit", "", "filter by fit")
	catalogFindCmd.Flags().StringVar(&findCategory, "category", "", "filter by category")
	catalogFindCmd.Flags().IntVarP(&findLimit, "limit", "n", 20, "maximum number of results")

	catalogGenerateCmd.Flags().IntVar(&generateCount, "count", 60, "number of items to generate")
	catalogGenerateCmd.Flags().Int64Var(&generateSeed, "seed", 42, "random seed")
	catalogGenerateCmd.Flags().StringVarP(&generateOut, "out", "o", "items.json", "output file (- for stdout)")

	catalogEmbedCmd.Flags().StringVar(&embedDriver, "driver", "file", "catalog driver (file or sqlite)")
	catalogEmbedCmd.Flags().StringVar(&embedCatalogPath, "catalog", "items.json", "catalog file or database")
	catalogEmbedCmd.Flags().StringVarP(&embedOut, "out", "o", "embeddings.json", "sidecar output file (file driver only)")
	catalogEmbedCmd.Flags().StringVar(&embedModel, "model", "", "embedding model (default "+embedollama.DefaultModel+")")
	catalogEmbedCmd.Flags().StringVar(&embedBaseURL, "base-url", "", "Ollama base URL (default "+embedollama.DefaultBaseURL+")")

	catalogCmd.AddCommand(catalogStatsCmd)
	catalogCmd.AddCommand(catalogGetCmd)
	catalogCmd.AddCommand(catalogFindCmd)
	catalogCmd.AddCommand(catalogGenerateCmd)
	catalogCmd.AddCommand(catalogEmbedCmd)
	rootCmd.AddCommand(catalogCmd)
}

func runCatalogStats(cmd *cobra.Command, _ []string) error {
	if err := ensureServices(); err != nil {
		return err
	}
	if catalogService == nil {
		return errors.New("catalog service not configured")
	}

	stats, err := catalogService.Stats(cmd.Context())
	if err != nil {
		return fmt.Errorf("catalog stats failed: %w", err)
	}

	cmd.Println(headerStyle.Render("Catalog"))
	cmd.Printf("  items:      %d\n", stats.TotalItems)
	cmd.Printf("  colors:     %d\n", stats.UniqueColors)
	cmd.Printf("  materials:  %d\n", stats.UniqueMaterials)
	cmd.Printf("  styles:     %d\n", stats.UniqueStyles)
	cmd.Printf("  categories: %d\n", stats.UniqueCategories)
	if stats.HasEmbeddings {
		cmd.Printf("  embeddings: %s (dim %d)\n", stats.EmbeddingModel, stats.EmbeddingDim)
	} else {
		cmd.Println("  embeddings: none (keyword search)")
	}
	return nil
}

func runCatalogGet(cmd *cobra.Command, args []string) error {
	if err := ensureServices(); err != nil {
		return err
	}
	if catalogService == nil {
		return errors.New("catalog service not configured")
	}

	item, err := catalogService.GetByID(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("catalog get failed: %w", err)
	}
	if item == nil {
		cmd.Printf("Item %s not found.\n", args[0])
		return nil
	}

	return outputJSON(cmd, item)
}

func runCatalogFind(cmd *cobra.Command, _ []string) error {
	if err := ensureServices(); err != nil {
		return err
	}
	if catalogService == nil {
		return errors.New("catalog service not configured")
	}

	filter := domain.AttributeFilter{
		Color:    findColor,
		Material: findMaterial,
		Style:    findStyle,
		Fit:      findFit,
		Category: findCategory,
	}

	items, err := catalogService.SearchByAttributes(cmd.Context(), filter, findLimit)
	if err != nil {
		return fmt.Errorf("catalog find failed: %w", err)
	}

	if len(items) == 0 {
		cmd.Println("No matching items.")
		return nil
	}

	for i := range items {
		cmd.Printf("  %s  %s (%s, %s, %s)\n", items[i].ID, items[i].Title, items[i].Color, items[i].Style, items[i].Material)
	}
	return nil
}

func runCatalogGenerate(cmd *cobra.Command, _ []string) error {
	rng := rand.New(rand.NewSource(generateSeed))
	items := services.GenerateCatalog(rng, generateCount)

	data, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal catalog: %w", err)
	}

	if generateOut == "-" {
		cmd.Println(string(data))
		return nil
	}

	if err := os.WriteFile(generateOut, data, 0o644); err != nil {
		return fmt.Errorf("write catalog file: %w", err)
	}
	cmd.Printf("Wrote %d items to %s\n", len(items), generateOut)
	return nil
}

func runCatalogEmbed(cmd *cobra.Command, _ []string) error {
	encoder := embedEncoder
	if encoder == nil {
		enc, err := embedollama.NewEmbeddingService(embedollama.Config{
			BaseURL: embedBaseURL,
			Model:   embedModel,
		})
		if err != nil {
			return err
		}
		defer enc.Close()
		encoder = enc
	}

	switch embedDriver {
	case "sqlite":
		return embedSqliteCatalog(cmd, encoder)
	default:
		return embedFileCatalog(cmd, encoder)
	}
}

// embedFileCatalog writes a positional sidecar next to the JSON catalog;
// the file store attaches it back to items at load time.
func embedFileCatalog(cmd *cobra.Command, encoder driven.EmbeddingService) error {
	store := storagefile.NewCatalogStore(embedCatalogPath, "")
	items, err := store.LoadItems(cmd.Context())
	if err != nil {
		return fmt.Errorf("load catalog: %w", err)
	}

	vectors, err := services.BuildCatalogEmbeddings(cmd.Context(), encoder, items)
	if err != nil {
		return err
	}

	data, err := json.Marshal(vectors)
	if err != nil {
		return fmt.Errorf("marshal embeddings: %w", err)
	}
	if err := os.WriteFile(embedOut, data, 0o644); err != nil {
		return fmt.Errorf("write embeddings file: %w", err)
	}

	cmd.Printf("Embedded %d items (%s, dim %d) to %s\n", len(items), encoder.ModelName(), encoder.Dimensions(), embedOut)
	return nil
}

func embedSqliteCatalog(cmd *cobra.Command, encoder driven.EmbeddingService) error {
	store, err := storagesqlite.NewCatalogStore(embedCatalogPath)
	if err != nil {
		return err
	}
	defer store.Close()

	items, err := store.LoadItems(cmd.Context())
	if err != nil {
		return fmt.Errorf("load catalog: %w", err)
	}

	vectors, err := services.BuildCatalogEmbeddings(cmd.Context(), encoder, items)
	if err != nil {
		return err
	}
	for i := range items {
		items[i].Embedding = vectors[i]
	}

	if err := store.SaveItems(cmd.Context(), items); err != nil {
		return fmt.Errorf("save catalog: %w", err)
	}

	cmd.Printf("Embedded %d items (%s, dim %d) into %s\n", len(items), encoder.ModelName(), encoder.Dimensions(), embedCatalogPath)
	return nil
}
