// Package flat provides an exact, in-memory vector index. Scores are
// computed by inner product against every stored vector, which equals
// cosine similarity when vectors are unit-normalised. Exhaustive scoring
// keeps results exact and tie-breaking deterministic, which approximate
// indexes cannot guarantee.
package flat

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/attire-labs/outfit-cli/internal/core/domain"
	"github.com/attire-labs/outfit-cli/internal/core/ports/driven"
)

// Ensure Index implements the interface.
var _ driven.VectorIndex = (*Index)(nil)

// Index is a flat inner-product vector index. Vectors are stored in
// insertion order; equal similarity scores resolve to the earlier
// insertion.
type Index struct {
	mu   sync.RWMutex
	dim  int
	ids  []string
	vecs [][]float32
}

// New creates a flat index for vectors of the given dimension.
func New(dim int) *Index {
	return &Index{dim: dim}
}

// Add inserts a vector for the given item ID.
func (x *Index) Add(_ context.Context, itemID string, embedding []float32) error {
	if len(embedding) != x.dim {
		return fmt.Errorf("%w: got %d, index expects %d", domain.ErrDimensionMismatch, len(embedding), x.dim)
	}

	x.mu.Lock()
	defer x.mu.Unlock()
	x.ids = append(x.ids, itemID)
	x.vecs = append(x.vecs, embedding)
	return nil
}

// Search scores the query against every stored vector and returns the top
// k hits sorted by similarity descending, insertion order on ties.
func (x *Index) Search(_ context.Context, query []float32, k int) ([]driven.VectorHit, error) {
	if len(query) != x.dim {
		return nil, fmt.Errorf("%w: query has %d, index expects %d", domain.ErrDimensionMismatch, len(query), x.dim)
	}

	x.mu.RLock()
	defer x.mu.RUnlock()

	hits := make([]driven.VectorHit, len(x.vecs))
	for i := range x.vecs {
		hits[i] = driven.VectorHit{
			ItemID:     x.ids[i],
			Similarity: dot(x.vecs[i], query),
		}
	}

	sort.SliceStable(hits, func(i, j int) bool {
		return hits[i].Similarity > hits[j].Similarity
	})

	if k > 0 && len(hits) > k {
		hits = hits[:k]
	}
	return hits, nil
}

// Len returns the number of stored vectors.
func (x *Index) Len() int {
	x.mu.RLock()
	defer x.mu.RUnlock()
	return len(x.ids)
}

// Close releases resources. The flat index holds none beyond memory.
func (x *Index) Close() error {
	return nil
}

func dot(a, b []float32) float64 {
	var sum float64
	for i := range a {
		sum += float64(a[i]) * float64(b[i])
	}
	return sum
}
