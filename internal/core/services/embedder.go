package services

import (
	"context"
	"fmt"

	"github.com/attire-labs/outfit-cli/internal/core/domain"
	"github.com/attire-labs/outfit-cli/internal/core/ports/driven"
	"github.com/attire-labs/outfit-cli/internal/logger"
)

// BuildCatalogEmbeddings encodes every catalog item and returns
// unit-normalised vectors in catalog order, ready to store as a sidecar or
// embedding column. The encoded text is the item title and description,
// matching what the search index expects at load time. Unlike search-time
// degradation, a build failure here is an error: a partial index is worse
// than none.
func BuildCatalogEmbeddings(ctx context.Context, encoder driven.EmbeddingService, items []domain.ClothingItem) ([][]float32, error) {
	if encoder == nil {
		return nil, fmt.Errorf("build catalog embeddings: %w", domain.ErrEmbeddingUnavailable)
	}

	texts := make([]string, len(items))
	for i := range items {
		texts[i] = itemEmbeddingText(items[i])
	}

	defer logger.Stage("Catalog Embedding")()
	logger.Debug("Encoding %d items with %s", len(items), encoder.ModelName())

	vectors, err := encoder.EmbedBatch(ctx, texts)
	if err != nil {
		return nil, fmt.Errorf("encode catalog: %w", err)
	}
	if len(vectors) != len(items) {
		return nil, fmt.Errorf("encode catalog: got %d vectors for %d items", len(vectors), len(items))
	}

	dim := encoder.Dimensions()
	for i := range vectors {
		if len(vectors[i]) != dim {
			return nil, fmt.Errorf("%w: item %s got dim %d, encoder %q expects %d",
				domain.ErrDimensionMismatch, items[i].ID, len(vectors[i]), encoder.ModelName(), dim)
		}
		vectors[i] = normalize(vectors[i])
	}

	return vectors, nil
}

// itemEmbeddingText is the text an item is encoded from.
func itemEmbeddingText(item domain.ClothingItem) string {
	return item.Title + ". " + item.Description
}
