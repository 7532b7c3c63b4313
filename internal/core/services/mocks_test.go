package services

import (
	"context"

	"github.com/attire-labs/outfit-cli/internal/core/domain"
	"github.com/attire-labs/outfit-cli/internal/core/ports/driven"
)

// mockEmbeddingService is a configurable embedding service for tests.
type mockEmbeddingService struct {
	dim     int
	embedFn func(text string) ([]float32, error)
}

func (m *mockEmbeddingService) Embed(_ context.Context, text string) ([]float32, error) {
	return m.embedFn(text)
}

func (m *mockEmbeddingService) EmbedBatch(ctx context.Context, texts []string) ([][]float32, error) {
	out := make([][]float32, len(texts))
	for i, text := range texts {
		vec, err := m.Embed(ctx, text)
		if err != nil {
			return nil, err
		}
		out[i] = vec
	}
	return out, nil
}

func (m *mockEmbeddingService) Dimensions() int            { return m.dim }
func (m *mockEmbeddingService) ModelName() string          { return "mock-embed" }
func (m *mockEmbeddingService) Ping(context.Context) error { return nil }
func (m *mockEmbeddingService) Close() error               { return nil }

// mockRankingModel is a configurable ranking model for tests.
type mockRankingModel struct {
	predictFn func(features []float64) (float64, error)
}

func (m *mockRankingModel) Predict(features []float64) (float64, error) {
	return m.predictFn(features)
}

func (m *mockRankingModel) Name() string { return "mock-model" }

// mockExplanationService is a configurable explanation service for tests.
type mockExplanationService struct {
	explainFn     func() ([]string, error)
	accessoriesFn func() ([]string, error)
	explainCalls  int
}

func (m *mockExplanationService) ExplainOutfit(_ context.Context, _ domain.OutfitCandidate, _ string, _ domain.Weather, _ []string) ([]string, error) {
	m.explainCalls++
	return m.explainFn()
}

func (m *mockExplanationService) SuggestAccessories(_ context.Context, _, _, _, _ string) ([]string, error) {
	if m.accessoriesFn == nil {
		return []string{}, nil
	}
	return m.accessoriesFn()
}

func (m *mockExplanationService) ModelName() string          { return "mock-llm" }
func (m *mockExplanationService) Ping(context.Context) error { return nil }
func (m *mockExplanationService) Close() error               { return nil }

// failingCatalogStore always errors, for fatal-path tests.
type failingCatalogStore struct {
	err error
}

func (s *failingCatalogStore) LoadItems(context.Context) ([]domain.ClothingItem, error) {
	return nil, s.err
}

var _ driven.EmbeddingService = (*mockEmbeddingService)(nil)
var _ driven.RankingModel = (*mockRankingModel)(nil)
var _ driven.ExplanationService = (*mockExplanationService)(nil)
var _ driven.CatalogStore = (*failingCatalogStore)(nil)
