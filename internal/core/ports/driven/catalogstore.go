package driven

import (
	"context"

	"github.com/attire-labs/outfit-cli/internal/core/domain"
)

// CatalogStore loads the immutable item catalog. A missing catalog source
// is fatal at construction; the pipeline never mutates loaded items.
type CatalogStore interface {
	// LoadItems returns all catalog items in stable catalog order.
	LoadItems(ctx context.Context) ([]domain.ClothingItem, error)
}
