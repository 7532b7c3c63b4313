// Package linear provides a ranking model backed by a linear weight
// file. Weights are trained offline and exported as TOML, so scoring
// at recommendation time is a dot product with no ML runtime.
package linear

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/attire-labs/outfit-cli/internal/core/domain"
	"github.com/attire-labs/outfit-cli/internal/core/ports/driven"
)

// Ensure Model implements the interface.
var _ driven.RankingModel = (*Model)(nil)

// modelFile is the on-disk TOML layout.
type modelFile struct {
	Name    string    `toml:"name"`
	Weights []float64 `toml:"weights"`
	Bias    float64   `toml:"bias"`
}

// Model scores feature vectors as weights·features + bias.
type Model struct {
	name    string
	weights []float64
	bias    float64
}

// New creates a linear model from explicit weights.
func New(name string, weights []float64, bias float64) *Model {
	return &Model{name: name, weights: weights, bias: bias}
}

// Load reads a linear model from a TOML file.
func Load(path string) (*Model, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", domain.ErrRankingModelUnavailable, path)
		}
		return nil, fmt.Errorf("read model file %s: %w", path, err)
	}

	var file modelFile
	if err := toml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse model file %s: %w", path, err)
	}
	if len(file.Weights) == 0 {
		return nil, fmt.Errorf("%w: %s has no weights", domain.ErrRankingModelUnavailable, path)
	}

	name := file.Name
	if name == "" {
		name = "linear"
	}
	return New(name, file.Weights, file.Bias), nil
}

// Predict returns the linear score for the given feature vector.
func (m *Model) Predict(features []float64) (float64, error) {
	if len(features) != len(m.weights) {
		return 0, fmt.Errorf("%w: got %d features, model expects %d",
			domain.ErrInvalidInput, len(features), len(m.weights))
	}

	score := m.bias
	for i, w := range m.weights {
		score += w * features[i]
	}
	return score, nil
}

// Name returns the model name.
func (m *Model) Name() string {
	return m.name
}
