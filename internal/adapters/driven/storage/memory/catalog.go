// Package memory provides in-memory storage adapters, used by tests and
// demos.
package memory

import (
	"context"

	"github.com/attire-labs/outfit-cli/internal/core/domain"
	"github.com/attire-labs/outfit-cli/internal/core/ports/driven"
)

// Ensure CatalogStore implements the interface.
var _ driven.CatalogStore = (*CatalogStore)(nil)

// CatalogStore is an in-memory implementation of driven.CatalogStore.
type CatalogStore struct {
	items []domain.ClothingItem
}

// NewCatalogStore creates an in-memory catalog store holding the given
// items.
func NewCatalogStore(items []domain.ClothingItem) *CatalogStore {
	return &CatalogStore{items: items}
}

// LoadItems returns a copy of the stored items in insertion order.
func (s *CatalogStore) LoadItems(_ context.Context) ([]domain.ClothingItem, error) {
	out := make([]domain.ClothingItem, len(s.items))
	copy(out, s.items)
	return out, nil
}
