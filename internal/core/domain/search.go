package domain

import "strings"

// SearchMode identifies which retrieval path the catalog index is using.
type SearchMode string

// Available search modes.
const (
	// SearchModeEmbedding uses cosine similarity over item vectors.
	SearchModeEmbedding SearchMode = "embedding"

	// SearchModeKeyword uses deterministic token matching. Always
	// available; the fallback when embeddings are not.
	SearchModeKeyword SearchMode = "keyword"
)

// Description returns a human-readable description of the mode.
func (m SearchMode) Description() string {
	switch m {
	case SearchModeEmbedding:
		return "Embedding (cosine similarity)"
	case SearchModeKeyword:
		return "Keyword (token matching)"
	default:
		return "Unknown"
	}
}

// SearchOptions configures a catalog text search.
type SearchOptions struct {
	// TopK is the maximum number of results.
	TopK int

	// Threshold is the minimum similarity score for the embedding path.
	// The keyword path applies no threshold; the asymmetry is intentional
	// and matches the reference behaviour.
	Threshold float64
}

// SearchResult pairs a catalog item with its retrieval score.
// Scores are in [0,1] on both search paths.
type SearchResult struct {
	Item  ClothingItem `json:"item"`
	Score float64      `json:"score"`
}

// AttributeFilter selects catalog items by exact attribute match.
// Empty fields are ignored; set fields combine with AND.
type AttributeFilter struct {
	Color    string `json:"color,omitempty"`
	Material string `json:"material,omitempty"`
	Style    string `json:"style,omitempty"`
	Fit      string `json:"fit,omitempty"`
	Category string `json:"category,omitempty"`
}

// IsEmpty returns true when no filter field is set.
func (f AttributeFilter) IsEmpty() bool {
	return f.Color == "" && f.Material == "" && f.Style == "" && f.Fit == "" && f.Category == ""
}

// Matches reports whether the item satisfies every set filter field.
// Comparison is case-insensitive.
func (f AttributeFilter) Matches(item ClothingItem) bool {
	if f.Color != "" && !strings.EqualFold(f.Color, item.Color) {
		return false
	}
	if f.Material != "" && !strings.EqualFold(f.Material, item.Material) {
		return false
	}
	if f.Style != "" && !strings.EqualFold(f.Style, item.Style) {
		return false
	}
	if f.Fit != "" && !strings.EqualFold(f.Fit, item.Fit) {
		return false
	}
	if f.Category != "" && !strings.EqualFold(f.Category, item.Category) {
		return false
	}
	return true
}

// CatalogStats summarises the loaded catalog.
type CatalogStats struct {
	TotalItems       int    `json:"total_items"`
	UniqueColors     int    `json:"unique_colors"`
	UniqueMaterials  int    `json:"unique_materials"`
	UniqueStyles     int    `json:"unique_styles"`
	UniqueCategories int    `json:"unique_categories"`
	HasEmbeddings    bool   `json:"has_embeddings"`
	EmbeddingModel   string `json:"embedding_model,omitempty"`
	EmbeddingDim     int    `json:"embedding_dim,omitempty"`
}
