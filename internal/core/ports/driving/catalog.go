package driving

import (
	"context"

	"github.com/attire-labs/outfit-cli/internal/core/domain"
)

// CatalogService provides search capabilities over the item catalog.
type CatalogService interface {
	// SearchByText performs hybrid search: embedding similarity when
	// available, keyword matching otherwise.
	SearchByText(ctx context.Context, query string, opts domain.SearchOptions) ([]domain.SearchResult, error)

	// SearchByAttributes filters items by exact attribute match in
	// catalog order.
	SearchByAttributes(ctx context.Context, filter domain.AttributeFilter, topK int) ([]domain.ClothingItem, error)

	// GetByID returns the item with the given ID, or nil when absent.
	GetByID(ctx context.Context, itemID string) (*domain.ClothingItem, error)

	// Stats summarises the loaded catalog.
	Stats(ctx context.Context) (domain.CatalogStats, error)
}
