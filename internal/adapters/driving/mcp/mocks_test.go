package mcp

import (
	"context"

	"github.com/attire-labs/outfit-cli/internal/core/domain"
	"github.com/attire-labs/outfit-cli/internal/core/ports/driving"
)

// mockCatalogService is a configurable catalog service for tests.
type mockCatalogService struct {
	results []domain.SearchResult
	items   []domain.ClothingItem
	stats   domain.CatalogStats
	err     error
}

func (m *mockCatalogService) SearchByText(context.Context, string, domain.SearchOptions) ([]domain.SearchResult, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.results, nil
}

func (m *mockCatalogService) SearchByAttributes(context.Context, domain.AttributeFilter, int) ([]domain.ClothingItem, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.items, nil
}

func (m *mockCatalogService) GetByID(context.Context, string) (*domain.ClothingItem, error) {
	if m.err != nil {
		return nil, m.err
	}
	if len(m.items) == 0 {
		return nil, nil
	}
	return &m.items[0], nil
}

func (m *mockCatalogService) Stats(context.Context) (domain.CatalogStats, error) {
	if m.err != nil {
		return domain.CatalogStats{}, m.err
	}
	return m.stats, nil
}

// mockRecommendService is a configurable recommendation service for tests.
type mockRecommendService struct {
	resp domain.RecommendationResponse
	err  error

	lastUser domain.UserContext
}

func (m *mockRecommendService) Recommend(_ context.Context, user domain.UserContext) (domain.RecommendationResponse, error) {
	m.lastUser = user
	if m.err != nil {
		return domain.RecommendationResponse{}, m.err
	}
	return m.resp, nil
}

var _ driving.CatalogService = (*mockCatalogService)(nil)
var _ driving.RecommendationService = (*mockRecommendService)(nil)
