package flat

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/attire-labs/outfit-cli/internal/core/domain"
)

func TestAddRejectsWrongDimension(t *testing.T) {
	idx := New(3)
	err := idx.Add(context.Background(), "a", []float32{1, 0})
	assert.ErrorIs(t, err, domain.ErrDimensionMismatch)
	assert.Equal(t, 0, idx.Len())
}

func TestSearchOrdersByScoreDescending(t *testing.T) {
	ctx := context.Background()
	idx := New(2)
	require.NoError(t, idx.Add(ctx, "far", []float32{0, 1}))
	require.NoError(t, idx.Add(ctx, "near", []float32{1, 0}))
	require.NoError(t, idx.Add(ctx, "mid", []float32{0.7071, 0.7071}))

	hits, err := idx.Search(ctx, []float32{1, 0}, 3)
	require.NoError(t, err)
	require.Len(t, hits, 3)
	assert.Equal(t, "near", hits[0].ItemID)
	assert.Equal(t, "mid", hits[1].ItemID)
	assert.Equal(t, "far", hits[2].ItemID)
	assert.InDelta(t, 1.0, hits[0].Similarity, 1e-6)
}

func TestSearchStableTieBreakOnInsertionOrder(t *testing.T) {
	ctx := context.Background()
	idx := New(2)
	require.NoError(t, idx.Add(ctx, "first", []float32{1, 0}))
	require.NoError(t, idx.Add(ctx, "second", []float32{1, 0}))
	require.NoError(t, idx.Add(ctx, "third", []float32{1, 0}))

	hits, err := idx.Search(ctx, []float32{1, 0}, 3)
	require.NoError(t, err)
	assert.Equal(t, []string{"first", "second", "third"},
		[]string{hits[0].ItemID, hits[1].ItemID, hits[2].ItemID})
}

func TestSearchTruncatesToK(t *testing.T) {
	ctx := context.Background()
	idx := New(1)
	for _, id := range []string{"a", "b", "c", "d"} {
		require.NoError(t, idx.Add(ctx, id, []float32{1}))
	}

	hits, err := idx.Search(ctx, []float32{1}, 2)
	require.NoError(t, err)
	assert.Len(t, hits, 2)
}

func TestSearchRejectsWrongQueryDimension(t *testing.T) {
	idx := New(2)
	_, err := idx.Search(context.Background(), []float32{1}, 1)
	assert.ErrorIs(t, err, domain.ErrDimensionMismatch)
}
