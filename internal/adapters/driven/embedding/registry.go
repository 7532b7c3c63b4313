// Package embedding holds the registry of known embedding models and
// their vector dimensions.
package embedding

import (
	"fmt"

	"github.com/attire-labs/outfit-cli/internal/core/domain"
)

// modelDimensions maps known embedding model names to their output
// vector size. Dimensions are declared up front so a misconfigured
// model fails at construction instead of at first search.
var modelDimensions = map[string]int{
	"nomic-embed-text":       768,
	"all-minilm":             384,
	"mxbai-embed-large":      1024,
	"snowflake-arctic-embed": 1024,
	"bge-m3":                 1024,
}

// Dimensions returns the vector size for a known embedding model.
func Dimensions(model string) (int, error) {
	dim, ok := modelDimensions[model]
	if !ok {
		return 0, fmt.Errorf("%w: unknown embedding model %q", domain.ErrInvalidInput, model)
	}
	return dim, nil
}

// KnownModels returns the registered model names.
func KnownModels() []string {
	names := make([]string, 0, len(modelDimensions))
	for name := range modelDimensions {
		names = append(names, name)
	}
	return names
}
