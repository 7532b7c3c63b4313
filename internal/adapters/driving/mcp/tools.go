package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/attire-labs/outfit-cli/internal/core/domain"
)

// SearchCatalogInput is the input schema for the search_catalog tool.
type SearchCatalogInput struct {
	Query string `json:"query" jsonschema:"free-text query describing the desired clothing"`
	Limit int    `json:"limit,omitempty" jsonschema:"maximum number of results to return (default 10)"`
}

// SearchCatalogOutput is the output schema for the search_catalog tool.
type SearchCatalogOutput struct {
	Results []CatalogItemOutput `json:"results"`
	Count   int                 `json:"count"`
}

// CatalogItemOutput represents a single catalog search result.
type CatalogItemOutput struct {
	ItemID   string  `json:"item_id"`
	Title    string  `json:"title"`
	Role     string  `json:"role"`
	Color    string  `json:"color"`
	Style    string  `json:"style"`
	Material string  `json:"material"`
	Score    float64 `json:"score"`
}

// RecommendInput is the input schema for the recommend_outfit tool.
type RecommendInput struct {
	UserID   string   `json:"user_id" jsonschema:"identifier of the user making the request"`
	Occasion []string `json:"occasion" jsonschema:"occasions the outfit is for, e.g. work or date"`
	TempC    int      `json:"temp_c" jsonschema:"temperature in degrees Celsius"`
	Weather  string   `json:"weather,omitempty" jsonschema:"weather condition such as sunny or rainy"`
	Styles   []string `json:"styles,omitempty" jsonschema:"preferred style aesthetics"`
	Colors   []string `json:"colors,omitempty" jsonschema:"preferred colors"`
	TopN     int      `json:"top_n,omitempty" jsonschema:"number of outfits to return (1-10, default 3)"`
}

// RecommendOutput is the output schema for the recommend_outfit tool.
type RecommendOutput struct {
	RequestID       string                  `json:"request_id"`
	Recommendations []domain.Recommendation `json:"recommendations"`
	Count           int                     `json:"count"`
}

// CatalogStatsInput is the input schema for the catalog_stats tool.
type CatalogStatsInput struct{}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "search_catalog",
		Description: "Search the clothing catalog by free text",
	}, s.handleSearchCatalog)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "recommend_outfit",
		Description: "Recommend complete outfits for an occasion and weather",
	}, s.handleRecommend)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "catalog_stats",
		Description: "Summarise the loaded clothing catalog",
	}, s.handleCatalogStats)
}

// handleSearchCatalog handles the search_catalog tool invocation.
func (s *Server) handleSearchCatalog(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SearchCatalogInput,
) (*mcp.CallToolResult, SearchCatalogOutput, error) {
	limit := input.Limit
	if limit <= 0 {
		limit = 10
	}

	opts := domain.SearchOptions{
		TopK:      limit,
		Threshold: domain.DefaultSimilarityThreshold,
	}
	results, err := s.ports.Catalog.SearchByText(ctx, input.Query, opts)
	if err != nil {
		return nil, SearchCatalogOutput{}, err
	}

	output := SearchCatalogOutput{
		Results: make([]CatalogItemOutput, len(results)),
		Count:   len(results),
	}

	for i := range results {
		output.Results[i] = CatalogItemOutput{
			ItemID:   results[i].Item.ID,
			Title:    results[i].Item.Title,
			Role:     string(results[i].Item.Role),
			Color:    results[i].Item.Color,
			Style:    results[i].Item.Style,
			Material: results[i].Item.Material,
			Score:    results[i].Score,
		}
	}

	return nil, output, nil
}

// handleRecommend handles the recommend_outfit tool invocation.
func (s *Server) handleRecommend(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input RecommendInput,
) (*mcp.CallToolResult, RecommendOutput, error) {
	user := domain.UserContext{
		UserID:   input.UserID,
		Occasion: input.Occasion,
		Weather: domain.Weather{
			TempC:     input.TempC,
			Condition: input.Weather,
		},
		Preferences: domain.Preferences{
			Styles: input.Styles,
			Colors: input.Colors,
		},
		TopN: input.TopN,
	}
	if err := user.Validate(); err != nil {
		return nil, RecommendOutput{}, err
	}

	resp, err := s.ports.Recommend.Recommend(ctx, user)
	if err != nil {
		return nil, RecommendOutput{}, err
	}

	return nil, RecommendOutput{
		RequestID:       resp.RequestID,
		Recommendations: resp.Recommendations,
		Count:           len(resp.Recommendations),
	}, nil
}

// handleCatalogStats handles the catalog_stats tool invocation.
func (s *Server) handleCatalogStats(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	_ CatalogStatsInput,
) (*mcp.CallToolResult, domain.CatalogStats, error) {
	stats, err := s.ports.Catalog.Stats(ctx)
	if err != nil {
		return nil, domain.CatalogStats{}, err
	}
	return nil, stats, nil
}
