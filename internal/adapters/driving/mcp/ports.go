package mcp

import (
	"github.com/attire-labs/outfit-cli/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Catalog provides catalog search capabilities.
	Catalog driving.CatalogService

	// Recommend runs the recommendation pipeline.
	Recommend driving.RecommendationService
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Catalog == nil {
		return ErrMissingCatalogService
	}
	if p.Recommend == nil {
		return ErrMissingRecommendService
	}
	return nil
}
