package embedding

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/attire-labs/outfit-cli/internal/core/domain"
)

func TestDimensionsKnownModels(t *testing.T) {
	tests := []struct {
		model string
		want  int
	}{
		{"nomic-embed-text", 768},
		{"all-minilm", 384},
		{"mxbai-embed-large", 1024},
	}

	for _, tt := range tests {
		t.Run(tt.model, func(t *testing.T) {
			dim, err := Dimensions(tt.model)
			require.NoError(t, err)
			assert.Equal(t, tt.want, dim)
		})
	}
}

func TestDimensionsUnknownModel(t *testing.T) {
	_, err := Dimensions("made-up-model")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestKnownModelsListsRegistry(t *testing.T) {
	assert.Contains(t, KnownModels(), "nomic-embed-text")
}
