package mcp

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/attire-labs/outfit-cli/internal/core/domain"
)

func testPorts(catalog *mockCatalogService, recommend *mockRecommendService) *Ports {
	if catalog == nil {
		catalog = &mockCatalogService{}
	}
	if recommend == nil {
		recommend = &mockRecommendService{}
	}
	return &Ports{Catalog: catalog, Recommend: recommend}
}

func TestServer_handleSearchCatalog(t *testing.T) {
	ctx := context.Background()

	t.Run("returns search results", func(t *testing.T) {
		catalog := &mockCatalogService{
			results: []domain.SearchResult{
				{
					Item: domain.ClothingItem{
						ID:       "t1",
						Title:    "white linen shirt",
						Role:     domain.RoleTop,
						Color:    "white",
						Style:    "casual",
						Material: "linen",
					},
					Score: 0.95,
				},
			},
		}

		server, err := NewServer(testPorts(catalog, nil))
		require.NoError(t, err)

		input := SearchCatalogInput{Query: "shirt", Limit: 10}
		_, output, err := server.handleSearchCatalog(ctx, nil, input)

		require.NoError(t, err)
		assert.Equal(t, 1, output.Count)
		require.Len(t, output.Results, 1)
		assert.Equal(t, "t1", output.Results[0].ItemID)
		assert.Equal(t, "top", output.Results[0].Role)
		assert.Equal(t, 0.95, output.Results[0].Score)
	})

	t.Run("returns error on search failure", func(t *testing.T) {
		catalog := &mockCatalogService{err: errors.New("index broken")}

		server, err := NewServer(testPorts(catalog, nil))
		require.NoError(t, err)

		_, _, err = server.handleSearchCatalog(ctx, nil, SearchCatalogInput{Query: "shirt"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "index broken")
	})
}

func TestServer_handleRecommend(t *testing.T) {
	ctx := context.Background()

	t.Run("maps input to user context", func(t *testing.T) {
		recommend := &mockRecommendService{
			resp: domain.RecommendationResponse{
				RequestID:       "req-1",
				Recommendations: []domain.Recommendation{{Rank: 1, OverallScore: 0.9}},
			},
		}

		server, err := NewServer(testPorts(nil, recommend))
		require.NoError(t, err)

		input := RecommendInput{
			UserID:   "u1",
			Occasion: []string{"work"},
			TempC:    12,
			Weather:  "cloudy",
			Styles:   []string{"formal"},
			TopN:     2,
		}
		_, output, err := server.handleRecommend(ctx, nil, input)

		require.NoError(t, err)
		assert.Equal(t, "req-1", output.RequestID)
		assert.Equal(t, 1, output.Count)
		assert.Equal(t, "u1", recommend.lastUser.UserID)
		assert.Equal(t, 12, recommend.lastUser.Weather.TempC)
		assert.Equal(t, []string{"formal"}, recommend.lastUser.Preferences.Styles)
		assert.Equal(t, 2, recommend.lastUser.TopN)
	})

	t.Run("rejects invalid context", func(t *testing.T) {
		server, err := NewServer(testPorts(nil, nil))
		require.NoError(t, err)

		_, _, err = server.handleRecommend(ctx, nil, RecommendInput{UserID: "u1"})
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("returns error on pipeline failure", func(t *testing.T) {
		recommend := &mockRecommendService{err: errors.New("pipeline down")}

		server, err := NewServer(testPorts(nil, recommend))
		require.NoError(t, err)

		input := RecommendInput{UserID: "u1", Occasion: []string{"work"}}
		_, _, err = server.handleRecommend(ctx, nil, input)
		require.Error(t, err)
	})
}

func TestServer_handleCatalogStats(t *testing.T) {
	catalog := &mockCatalogService{stats: domain.CatalogStats{TotalItems: 42}}

	server, err := NewServer(testPorts(catalog, nil))
	require.NoError(t, err)

	_, stats, err := server.handleCatalogStats(context.Background(), nil, CatalogStatsInput{})
	require.NoError(t, err)
	assert.Equal(t, 42, stats.TotalItems)
}

func TestNewServerValidatesPorts(t *testing.T) {
	_, err := NewServer(&Ports{Recommend: &mockRecommendService{}})
	assert.ErrorIs(t, err, ErrMissingCatalogService)

	_, err = NewServer(&Ports{Catalog: &mockCatalogService{}})
	assert.ErrorIs(t, err, ErrMissingRecommendService)
}
