package services

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/attire-labs/outfit-cli/internal/core/domain"
	"github.com/attire-labs/outfit-cli/internal/core/ports/driven"
	"github.com/attire-labs/outfit-cli/internal/core/ports/driving"
	"github.com/attire-labs/outfit-cli/internal/logger"
)

// Ensure CatalogIndex implements the interface.
var _ driving.CatalogService = (*CatalogIndex)(nil)

// CatalogIndex owns the immutable item catalog and provides hybrid,
// fallback-safe search over it. The embedding path is enabled only when an
// encoder is configured, every item carries a vector, and vector dimensions
// match the encoder; otherwise the index uses keyword matching for the
// lifetime of the instance. The decision is made once at build time and
// never retried per query.
type CatalogIndex struct {
	items         []domain.ClothingItem
	byID          map[string]int
	encoder       driven.EmbeddingService
	vectors       driven.VectorIndex
	hasEmbeddings bool
}

// NewCatalogIndex loads the catalog from the store and builds the index.
// A store failure is fatal. The encoder and vector index parameters are
// optional (can be nil); without them the index is keyword-only.
func NewCatalogIndex(
	ctx context.Context,
	store driven.CatalogStore,
	encoder driven.EmbeddingService,
	vectors driven.VectorIndex,
) (*CatalogIndex, error) {
	if store == nil {
		return nil, fmt.Errorf("catalog index: %w", domain.ErrCatalogNotFound)
	}

	items, err := store.LoadItems(ctx)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}

	idx := &CatalogIndex{
		items:   items,
		byID:    make(map[string]int, len(items)),
		encoder: encoder,
		vectors: vectors,
	}

	for i := range items {
		if _, dup := idx.byID[items[i].ID]; dup {
			return nil, fmt.Errorf("%w: %s", domain.ErrDuplicateItemID, items[i].ID)
		}
		idx.byID[items[i].ID] = i
	}

	idx.buildEmbeddings(ctx)

	logger.Info("Catalog index: %d items, mode=%s", len(items), idx.Mode().Description())
	return idx, nil
}

// buildEmbeddings verifies encoder/vector compatibility and populates the
// vector index. Any problem disables the embedding path with a warning;
// it never fails the build.
func (c *CatalogIndex) buildEmbeddings(ctx context.Context) {
	if c.encoder == nil || c.vectors == nil {
		logger.Debug("No embedding backend configured, using keyword search")
		return
	}
	if len(c.items) == 0 {
		return
	}

	dim := c.encoder.Dimensions()
	for i := range c.items {
		if len(c.items[i].Embedding) == 0 {
			logger.Warn("Item %s has no embedding; disabling embedding search", c.items[i].ID)
			return
		}
		if len(c.items[i].Embedding) != dim {
			logger.Warn("Embedding dimension mismatch: item %s has %d, encoder %q expects %d; using keyword fallback",
				c.items[i].ID, len(c.items[i].Embedding), c.encoder.ModelName(), dim)
			return
		}
	}

	for i := range c.items {
		c.items[i].Embedding = normalize(c.items[i].Embedding)
		if err := c.vectors.Add(ctx, c.items[i].ID, c.items[i].Embedding); err != nil {
			logger.Warn("Vector index add failed for %s: %v; using keyword fallback", c.items[i].ID, err)
			return
		}
	}

	c.hasEmbeddings = true
	logger.Debug("Embedding search enabled: model=%s dim=%d", c.encoder.ModelName(), dim)
}

// HasEmbeddings reports whether the embedding search path is active.
func (c *CatalogIndex) HasEmbeddings() bool {
	return c.hasEmbeddings
}

// Mode returns the active search mode.
func (c *CatalogIndex) Mode() domain.SearchMode {
	if c.hasEmbeddings {
		return domain.SearchModeEmbedding
	}
	return domain.SearchModeKeyword
}

// EncodeContext embeds arbitrary context text with the configured encoder,
// returning a unit-normalised vector. Returns nil without error when the
// embedding path is inactive or encoding fails; the caller treats a nil
// vector as "no context embedding".
func (c *CatalogIndex) EncodeContext(ctx context.Context, text string) []float32 {
	if !c.hasEmbeddings {
		return nil
	}
	vec, err := c.encoder.Embed(ctx, text)
	if err != nil {
		logger.Warn("Context embedding failed: %v", err)
		return nil
	}
	return normalize(vec)
}

// SearchByText performs hybrid search over the catalog. The embedding path
// applies the score threshold; the keyword path does not (intentional
// asymmetry, kept from the reference behaviour). Results are sorted by
// score descending with insertion-order tie-break and truncated to TopK,
// never padded.
func (c *CatalogIndex) SearchByText(ctx context.Context, query string, opts domain.SearchOptions) ([]domain.SearchResult, error) {
	defer logger.Stage("Catalog Search")()
	logger.Debug("Query: %q topK=%d threshold=%.2f mode=%s", query, opts.TopK, opts.Threshold, c.Mode())

	if opts.TopK <= 0 {
		opts.TopK = domain.DefaultRetrieveTopK
	}

	if c.hasEmbeddings {
		results, err := c.searchByEmbedding(ctx, query, opts)
		if err == nil {
			return results, nil
		}
		// Per-query encoder failures degrade to keyword search; the
		// embedding path itself stays enabled.
		logger.Warn("Embedding search failed: %v; falling back to keyword search", err)
	}

	return c.searchByKeyword(query, opts.TopK), nil
}

func (c *CatalogIndex) searchByEmbedding(ctx context.Context, query string, opts domain.SearchOptions) ([]domain.SearchResult, error) {
	vec, err := c.encoder.Embed(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("encode query: %w", err)
	}

	hits, err := c.vectors.Search(ctx, normalize(vec), opts.TopK)
	if err != nil {
		return nil, fmt.Errorf("vector search: %w", err)
	}

	results := make([]domain.SearchResult, 0, len(hits))
	for _, hit := range hits {
		if hit.Similarity < opts.Threshold {
			continue
		}
		i, ok := c.byID[hit.ItemID]
		if !ok {
			continue
		}
		results = append(results, domain.SearchResult{Item: c.items[i], Score: hit.Similarity})
	}

	logger.Debug("Embedding search: %d/%d hits above threshold", len(results), len(hits))
	return results, nil
}

// searchByKeyword tokenises the query by whitespace and scores each item by
// the fraction of tokens found as substrings of its searchable text.
// Zero-score items are excluded, so an empty query yields no results.
func (c *CatalogIndex) searchByKeyword(query string, topK int) []domain.SearchResult {
	tokens := strings.Fields(strings.ToLower(query))
	if len(tokens) == 0 {
		logger.Debug("Keyword search: empty query, no results")
		return []domain.SearchResult{}
	}

	results := make([]domain.SearchResult, 0)
	for i := range c.items {
		haystack := searchText(c.items[i])
		matches := 0
		for _, tok := range tokens {
			if strings.Contains(haystack, tok) {
				matches++
			}
		}
		if matches == 0 {
			continue
		}
		score := float64(matches) / float64(len(tokens))
		if score > 1.0 {
			score = 1.0
		}
		results = append(results, domain.SearchResult{Item: c.items[i], Score: score})
	}

	// Stable sort keeps catalog insertion order on equal scores.
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})

	if len(results) > topK {
		results = results[:topK]
	}

	logger.Debug("Keyword search: %d results", len(results))
	return results
}

// searchText concatenates the item fields matched by keyword search.
func searchText(item domain.ClothingItem) string {
	return strings.ToLower(strings.Join([]string{
		item.Title,
		item.Description,
		item.Color,
		item.Material,
		item.Style,
	}, " "))
}

// SearchByAttributes filters the catalog by case-insensitive exact match
// over the set filter fields, ANDed together. Unset fields are ignored.
// Matches are returned in catalog order, truncated to topK.
func (c *CatalogIndex) SearchByAttributes(_ context.Context, filter domain.AttributeFilter, topK int) ([]domain.ClothingItem, error) {
	if topK <= 0 {
		topK = domain.DefaultRetrieveTopK
	}

	results := make([]domain.ClothingItem, 0)
	for i := range c.items {
		if filter.Matches(c.items[i]) {
			results = append(results, c.items[i])
			if len(results) == topK {
				break
			}
		}
	}
	return results, nil
}

// GetByID returns the item with the given ID, or nil when absent. Absence
// is not an error.
func (c *CatalogIndex) GetByID(_ context.Context, itemID string) (*domain.ClothingItem, error) {
	i, ok := c.byID[itemID]
	if !ok {
		return nil, nil
	}
	item := c.items[i]
	return &item, nil
}

// Items returns the full catalog in insertion order.
func (c *CatalogIndex) Items() []domain.ClothingItem {
	return c.items
}

// Stats summarises the loaded catalog.
func (c *CatalogIndex) Stats(_ context.Context) (domain.CatalogStats, error) {
	colors := make(map[string]struct{})
	materials := make(map[string]struct{})
	styles := make(map[string]struct{})
	categories := make(map[string]struct{})

	for i := range c.items {
		addNonEmpty(colors, c.items[i].Color)
		addNonEmpty(materials, c.items[i].Material)
		addNonEmpty(styles, c.items[i].Style)
		addNonEmpty(categories, c.items[i].Category)
	}

	stats := domain.CatalogStats{
		TotalItems:       len(c.items),
		UniqueColors:     len(colors),
		UniqueMaterials:  len(materials),
		UniqueStyles:     len(styles),
		UniqueCategories: len(categories),
		HasEmbeddings:    c.hasEmbeddings,
	}
	if c.hasEmbeddings {
		stats.EmbeddingModel = c.encoder.ModelName()
		stats.EmbeddingDim = c.encoder.Dimensions()
	}
	return stats, nil
}

func addNonEmpty(set map[string]struct{}, v string) {
	if v != "" {
		set[strings.ToLower(v)] = struct{}{}
	}
}

// normalize scales a vector to unit L2 norm. The small epsilon guards
// against zero vectors.
func normalize(vec []float32) []float32 {
	var sum float64
	for _, v := range vec {
		sum += float64(v) * float64(v)
	}
	norm := math.Sqrt(sum) + 1e-10

	out := make([]float32, len(vec))
	for i, v := range vec {
		out[i] = float32(float64(v) / norm)
	}
	return out
}
