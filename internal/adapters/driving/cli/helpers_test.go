package cli

import (
	"context"
	"fmt"
	"sync"

	"github.com/attire-labs/outfit-cli/internal/adapters/driven/storage/memory"
	"github.com/attire-labs/outfit-cli/internal/core/domain"
	"github.com/attire-labs/outfit-cli/internal/core/services"
)

func testCatalogItems() []domain.ClothingItem {
	return []domain.ClothingItem{
		{ID: "t1", Title: "white linen shirt", Description: "a casual shirt for sunny days", Role: domain.RoleTop, Color: "white", Style: "casual", Material: "linen", Season: domain.SeasonSummer, Popularity: 0.8},
		{ID: "b1", Title: "khaki chino shorts", Description: "casual shorts for sunny days", Role: domain.RoleBottom, Color: "khaki", Style: "casual", Material: "cotton", Season: domain.SeasonSummer, Popularity: 0.7},
		{ID: "s1", Title: "beige casual sneakers", Description: "light sneakers for sunny days", Role: domain.RoleShoes, Color: "beige", Style: "casual", Material: "canvas", Season: domain.SeasonSummer, Popularity: 0.6},
	}
}

// markInitDone consumes the once guard so ensureServices never touches real
// configuration during tests. The returned func re-arms it.
func markInitDone() func() {
	initOnce.Do(func() {})
	return func() {
		initOnce = sync.Once{}
		initErr = nil
	}
}

// setupTestServices wires memory-backed services into the command tree and
// returns a cleanup that restores the previous state.
func setupTestServices() func() {
	oldCatalog := catalogService
	oldRecommend := recommendService
	rearm := markInitDone()

	idx, err := services.NewCatalogIndex(context.Background(), memory.NewCatalogStore(testCatalogItems()), nil, nil)
	if err != nil {
		panic(err)
	}
	catalogService = idx
	recommendService = services.NewRecommender(idx, nil, nil, domain.DefaultSettings())

	return func() {
		catalogService = oldCatalog
		recommendService = oldRecommend
		rearm()
	}
}

// stubEncoder is a deterministic embedding service for command tests.
type stubEncoder struct {
	dim int
	err error
}

func (e *stubEncoder) Embed(_ context.Context, text string) ([]float32, error) {
	if e.err != nil {
		return nil, e.err
	}
	vec := make([]float32, e.dim)
	for i := range vec {
		vec[i] = float32(len(text)%7 + i + 1)
	}
	return vec, nil
}

func (e *stubEncoder) EmbedBatch(ctx context.Context, texts []string) ([][]float32, error) {
	out := make([][]float32, len(texts))
	for i, text := range texts {
		vec, err := e.Embed(ctx, text)
		if err != nil {
			return nil, fmt.Errorf("embed text %d: %w", i, err)
		}
		out[i] = vec
	}
	return out, nil
}

func (e *stubEncoder) Dimensions() int            { return e.dim }
func (e *stubEncoder) ModelName() string          { return "stub-embed" }
func (e *stubEncoder) Ping(context.Context) error { return nil }
func (e *stubEncoder) Close() error               { return nil }
