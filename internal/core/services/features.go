package services

import (
	"math"

	"github.com/attire-labs/outfit-cli/internal/core/domain"
)

// FeatureExtractor maps an (outfit, context) pair to the fixed-schema
// feature vector consumed by the ranker. Extraction is deterministic:
// identical inputs always produce identical vectors.
type FeatureExtractor struct{}

// Extract computes the feature vector for one candidate. The context
// embedding may be nil, in which case the similarity feature is 0.
func (FeatureExtractor) Extract(outfit domain.OutfitCandidate, user domain.UserContext, contextEmbedding []float32) domain.FeatureVector {
	items := outfit.Items()
	n := float64(len(items))

	colors := make(map[string]int, len(items))
	styleMatches := 0
	seasonMatches := 0
	popularity := 0.0
	season := user.InferredSeason()

	for i := range items {
		colors[items[i].Color]++
		if user.PrefersStyle(items[i].Style) {
			styleMatches++
		}
		if items[i].Season == season {
			seasonMatches++
		}
		popularity += items[i].Popularity
	}

	// Duplicate count: total items minus distinct colors.
	duplicates := len(items) - len(colors)

	return domain.FeatureVector{
		ColorMatch:        float64(duplicates),
		StyleMatchRatio:   float64(styleMatches) / n,
		SeasonMatchRatio:  float64(seasonMatches) / n,
		AvgPopularity:     popularity / n,
		ContextSimilarity: contextSimilarity(items, contextEmbedding),
	}
}

// contextSimilarity computes cosine similarity between the mean item
// embedding and the context embedding. Returns 0 when embeddings are
// unavailable on either side.
func contextSimilarity(items []domain.ClothingItem, contextEmbedding []float32) float64 {
	if len(contextEmbedding) == 0 {
		return 0.0
	}

	for i := range items {
		if len(items[i].Embedding) != len(contextEmbedding) {
			return 0.0
		}
	}

	mean := make([]float64, len(contextEmbedding))
	for i := range items {
		for j, v := range items[i].Embedding {
			mean[j] += float64(v)
		}
	}
	for j := range mean {
		mean[j] /= float64(len(items))
	}

	var dot, meanNorm, ctxNorm float64
	for j := range mean {
		cv := float64(contextEmbedding[j])
		dot += mean[j] * cv
		meanNorm += mean[j] * mean[j]
		ctxNorm += cv * cv
	}
	denom := math.Sqrt(meanNorm)*math.Sqrt(ctxNorm) + 1e-10
	return dot / denom
}
