// Package file provides a catalog store backed by JSON files: the item
// catalog plus an optional embeddings sidecar produced by the catalog
// builder.
package file

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/attire-labs/outfit-cli/internal/core/domain"
	"github.com/attire-labs/outfit-cli/internal/core/ports/driven"
	"github.com/attire-labs/outfit-cli/internal/logger"
)

// Ensure CatalogStore implements the interface.
var _ driven.CatalogStore = (*CatalogStore)(nil)

// CatalogStore loads catalog items from a JSON file. When an embeddings
// sidecar path is configured, item vectors are attached by position.
type CatalogStore struct {
	catalogPath    string
	embeddingsPath string
}

// NewCatalogStore creates a file-backed catalog store. The embeddings
// path is optional; pass empty to load metadata only.
func NewCatalogStore(catalogPath, embeddingsPath string) *CatalogStore {
	return &CatalogStore{
		catalogPath:    catalogPath,
		embeddingsPath: embeddingsPath,
	}
}

// LoadItems reads the catalog file. A missing or unreadable catalog is an
// error (fatal to pipeline construction). A missing or mismatched
// embeddings sidecar is recovered: items load without vectors and search
// degrades to the keyword path.
func (s *CatalogStore) LoadItems(_ context.Context) ([]domain.ClothingItem, error) {
	data, err := os.ReadFile(s.catalogPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", domain.ErrCatalogNotFound, s.catalogPath)
		}
		return nil, fmt.Errorf("read catalog %s: %w", s.catalogPath, err)
	}

	var items []domain.ClothingItem
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("parse catalog %s: %w", s.catalogPath, err)
	}

	s.attachEmbeddings(items)
	return items, nil
}

// attachEmbeddings loads the sidecar and attaches vectors by catalog
// position. Problems are logged and skipped, never fatal.
func (s *CatalogStore) attachEmbeddings(items []domain.ClothingItem) {
	if s.embeddingsPath == "" {
		return
	}

	data, err := os.ReadFile(s.embeddingsPath)
	if err != nil {
		logger.Warn("Embeddings sidecar unavailable (%v); keyword search only", err)
		return
	}

	var vectors [][]float32
	if err := json.Unmarshal(data, &vectors); err != nil {
		logger.Warn("Embeddings sidecar unreadable (%v); keyword search only", err)
		return
	}

	if len(vectors) != len(items) {
		logger.Warn("Embeddings sidecar has %d vectors for %d items; keyword search only", len(vectors), len(items))
		return
	}

	for i := range items {
		items[i].Embedding = vectors[i]
	}
	logger.Debug("Attached %d item embeddings from %s", len(vectors), s.embeddingsPath)
}
