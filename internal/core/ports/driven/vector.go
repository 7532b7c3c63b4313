package driven

import "context"

// VectorIndex provides similarity search over item vectors.
// Vectors are expected to be unit-normalised so that inner product equals
// cosine similarity.
type VectorIndex interface {
	// Add inserts a vector for the given item ID. Insertion order is
	// preserved and used to break score ties deterministically.
	Add(ctx context.Context, itemID string, embedding []float32) error

	// Search finds the k highest-scoring items for the query vector.
	Search(ctx context.Context, query []float32, k int) ([]VectorHit, error)

	// Len returns the number of stored vectors.
	Len() int

	// Close releases resources.
	Close() error
}

// VectorHit represents a similarity search result.
type VectorHit struct {
	// ItemID is the matched catalog item.
	ItemID string

	// Similarity is the cosine similarity score.
	Similarity float64
}
