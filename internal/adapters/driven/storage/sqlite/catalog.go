// Package sqlite provides a catalog store backed by a SQLite database,
// for catalogs too large or too often regenerated to ship as JSON.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/binary"
	"fmt"
	"math"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/attire-labs/outfit-cli/internal/core/domain"
	"github.com/attire-labs/outfit-cli/internal/core/ports/driven"
)

// Ensure CatalogStore implements the interface.
var _ driven.CatalogStore = (*CatalogStore)(nil)

const schema = `
CREATE TABLE IF NOT EXISTS items (
	item_id     TEXT PRIMARY KEY,
	title       TEXT NOT NULL,
	description TEXT NOT NULL DEFAULT '',
	role        TEXT NOT NULL,
	color       TEXT NOT NULL DEFAULT '',
	style       TEXT NOT NULL DEFAULT '',
	material    TEXT NOT NULL DEFAULT '',
	pattern     TEXT NOT NULL DEFAULT '',
	fit         TEXT NOT NULL DEFAULT '',
	category    TEXT NOT NULL DEFAULT '',
	season      TEXT NOT NULL DEFAULT '',
	popularity  REAL NOT NULL DEFAULT 0,
	available   INTEGER NOT NULL DEFAULT 1,
	image_url   TEXT NOT NULL DEFAULT '',
	embedding   BLOB,
	position    INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_items_position ON items(position);
`

// CatalogStore is a SQLite-backed implementation of driven.CatalogStore.
type CatalogStore struct {
	db   *sql.DB
	path string
}

// NewCatalogStore opens (or creates) the catalog database at path.
func NewCatalogStore(path string) (*CatalogStore, error) {
	db, err := sql.Open("sqlite", path+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening catalog database: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating catalog schema: %w", err)
	}

	return &CatalogStore{db: db, path: path}, nil
}

// LoadItems returns all items ordered by their catalog position. An empty
// table is treated as a missing catalog.
func (s *CatalogStore) LoadItems(ctx context.Context) ([]domain.ClothingItem, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT item_id, title, description, role, color, style, material,
		       pattern, fit, category, season, popularity, available,
		       image_url, embedding
		FROM items ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("query items: %w", err)
	}
	defer rows.Close()

	var items []domain.ClothingItem
	for rows.Next() {
		var (
			item      domain.ClothingItem
			available int
			blob      []byte
		)
		if err := rows.Scan(
			&item.ID, &item.Title, &item.Description, &item.Role,
			&item.Color, &item.Style, &item.Material, &item.Pattern,
			&item.Fit, &item.Category, &item.Season, &item.Popularity,
			&available, &item.ImageURL, &blob,
		); err != nil {
			return nil, fmt.Errorf("scan item: %w", err)
		}
		item.Available = available != 0
		item.Embedding = bytesToFloat32Slice(blob)
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate items: %w", err)
	}

	if len(items) == 0 {
		return nil, fmt.Errorf("%w: %s has no items", domain.ErrCatalogNotFound, s.path)
	}
	return items, nil
}

// SaveItems replaces the catalog contents with the given items,
// preserving slice order as catalog position.
func (s *CatalogStore) SaveItems(ctx context.Context, items []domain.ClothingItem) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	if _, err := tx.ExecContext(ctx, "DELETE FROM items"); err != nil {
		return fmt.Errorf("clear items: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO items (item_id, title, description, role, color, style,
		                   material, pattern, fit, category, season,
		                   popularity, available, image_url, embedding, position)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	for i := range items {
		available := 0
		if items[i].Available {
			available = 1
		}
		if _, err := stmt.ExecContext(ctx,
			items[i].ID, items[i].Title, items[i].Description, items[i].Role,
			items[i].Color, items[i].Style, items[i].Material, items[i].Pattern,
			items[i].Fit, items[i].Category, items[i].Season, items[i].Popularity,
			available, items[i].ImageURL, float32SliceToBytes(items[i].Embedding), i,
		); err != nil {
			return fmt.Errorf("insert item %s: %w", items[i].ID, err)
		}
	}

	return tx.Commit()
}

// Close closes the database connection.
func (s *CatalogStore) Close() error {
	return s.db.Close()
}

// float32SliceToBytes converts a []float32 to a byte slice for storage.
func float32SliceToBytes(floats []float32) []byte {
	if len(floats) == 0 {
		return nil
	}
	buf := make([]byte, len(floats)*4)
	for i, f := range floats {
		binary.LittleEndian.PutUint32(buf[i*4:], math.Float32bits(f))
	}
	return buf
}

// bytesToFloat32Slice converts a byte slice back to []float32.
func bytesToFloat32Slice(data []byte) []float32 {
	if len(data) == 0 {
		return nil
	}
	floats := make([]float32, len(data)/4)
	for i := range floats {
		floats[i] = math.Float32frombits(binary.LittleEndian.Uint32(data[i*4:]))
	}
	return floats
}
