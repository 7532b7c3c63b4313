package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrCatalogNotFound indicates the catalog source is missing.
	// This is the only fatal condition in the pipeline: without a catalog
	// there is nothing to recommend.
	ErrCatalogNotFound = errors.New("catalog not found")

	// ErrDuplicateItemID indicates two catalog items share an item ID.
	// Item IDs must be unique catalog-wide.
	ErrDuplicateItemID = errors.New("duplicate item id")

	// ErrEmbeddingUnavailable indicates the embedding encoder is not
	// configured or incompatible with the stored vectors. Search degrades
	// to the keyword path.
	ErrEmbeddingUnavailable = errors.New("embedding service unavailable")

	// ErrRankingModelUnavailable indicates the ranking model could not be
	// loaded. Scoring degrades to the heuristic fallback.
	ErrRankingModelUnavailable = errors.New("ranking model unavailable")

	// ErrExplanationUnavailable indicates the explanation service is not
	// configured. Recommendations carry heuristic reasons instead.
	ErrExplanationUnavailable = errors.New("explanation service unavailable")

	// ErrDimensionMismatch indicates a vector does not match the index
	// dimension.
	ErrDimensionMismatch = errors.New("embedding dimension mismatch")
)
