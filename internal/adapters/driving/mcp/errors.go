// Package mcp provides an MCP (Model Context Protocol) server adapter for
// the outfit recommender. It lets AI assistants search the catalog and
// request outfit recommendations.
package mcp

import "errors"

// ErrMissingCatalogService is returned when the catalog service is not provided.
var ErrMissingCatalogService = errors.New("mcp: catalog service is required")

// ErrMissingRecommendService is returned when the recommendation service is not provided.
var ErrMissingRecommendService = errors.New("mcp: recommendation service is required")
