package services

import (
	"sort"

	"github.com/attire-labs/outfit-cli/internal/core/domain"
	"github.com/attire-labs/outfit-cli/internal/core/ports/driven"
	"github.com/attire-labs/outfit-cli/internal/logger"
)

// Heuristic fallback weights. The color term multiplies the raw duplicate
// count while the other two multiply ratios in [0,1]; the scale mismatch is
// kept from the reference behaviour for compatibility and must not be
// silently rescaled.
const (
	heuristicStyleWeight  = 0.5
	heuristicSeasonWeight = 0.3
	heuristicColorWeight  = 0.2
)

// Ranker scores feature vectors, via a trained model when configured or a
// deterministic heuristic otherwise. Scoring is a pure function of the
// feature vector: no hidden state, no randomness.
type Ranker struct {
	model driven.RankingModel
}

// NewRanker creates a ranker. The model parameter is optional (can be
// nil); without it the heuristic fallback is used.
func NewRanker(model driven.RankingModel) *Ranker {
	if model != nil {
		logger.Info("Ranker: using model %q", model.Name())
	} else {
		logger.Info("Ranker: no model configured, using heuristic scoring")
	}
	return &Ranker{model: model}
}

// HasModel reports whether a trained model is active.
func (r *Ranker) HasModel() bool {
	return r.model != nil
}

// Score scores a single feature vector. A model prediction error degrades
// to the heuristic for that vector.
func (r *Ranker) Score(f domain.FeatureVector) float64 {
	if r.model != nil {
		score, err := r.model.Predict(f.Values())
		if err == nil {
			return score
		}
		logger.Warn("Model predict failed: %v; using heuristic", err)
	}
	return heuristicScore(f)
}

// Rank scores every candidate and sorts descending. The sort is stable:
// ties keep the order produced by the assembler.
func (r *Ranker) Rank(outfits []domain.OutfitCandidate, features []domain.FeatureVector) []domain.ScoredOutfit {
	scored := make([]domain.ScoredOutfit, len(outfits))
	for i := range outfits {
		scored[i] = domain.ScoredOutfit{
			Outfit: outfits[i],
			Score:  r.Score(features[i]),
		}
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})
	return scored
}

func heuristicScore(f domain.FeatureVector) float64 {
	return heuristicStyleWeight*f.StyleMatchRatio +
		heuristicSeasonWeight*f.SeasonMatchRatio +
		heuristicColorWeight*f.ColorMatch
}
