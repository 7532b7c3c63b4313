package services

import (
	"sort"

	"github.com/attire-labs/outfit-cli/internal/core/domain"
	"github.com/attire-labs/outfit-cli/internal/logger"
)

// Boost added per matched preference category. Boosts are independent and
// additive, not multiplicative.
const preferenceBoost = 0.2

// Selector converts a sorted scored-candidate list into the final
// recommendation set, applying context-driven score boosts and clamping
// confidences to 1.0.
type Selector struct{}

// boostedScore applies preference boosts to one candidate: +0.2 when any
// item color matches a preferred color, +0.2 when any item style matches a
// preferred style. The result is clamped to 1.0.
func (Selector) boostedScore(candidate domain.ScoredOutfit, user domain.UserContext) float64 {
	score := candidate.Score

	colorHit := false
	styleHit := false
	for _, item := range candidate.Outfit.Items() {
		if !colorHit && user.PrefersColor(item.Color) {
			colorHit = true
		}
		if !styleHit && user.PrefersStyle(item.Style) {
			styleHit = true
		}
	}
	if colorHit {
		score += preferenceBoost
	}
	if styleHit {
		score += preferenceBoost
	}

	if score > 1.0 {
		score = 1.0
	}
	return score
}

// SelectBest returns the single best candidate after boosting. The second
// return value is false when the candidate list is empty.
func (s Selector) SelectBest(scored []domain.ScoredOutfit, user domain.UserContext) (domain.ScoredOutfit, bool) {
	if len(scored) == 0 {
		return domain.ScoredOutfit{}, false
	}

	best := scored[0]
	bestScore := best.Score
	for _, candidate := range scored {
		if boosted := s.boostedScore(candidate, user); boosted > bestScore {
			bestScore = boosted
			best = candidate
		}
	}

	if bestScore > 1.0 {
		bestScore = 1.0
	}
	best.Score = bestScore
	return best, true
}

// SelectTopN boosts every candidate, re-sorts, and truncates to n. The
// re-sort is stable, so candidates with equal boosted scores keep their
// incoming rank order. An empty input yields an empty selection.
func (s Selector) SelectTopN(scored []domain.ScoredOutfit, user domain.UserContext, n int) []domain.ScoredOutfit {
	if len(scored) == 0 || n <= 0 {
		return []domain.ScoredOutfit{}
	}

	boosted := make([]domain.ScoredOutfit, len(scored))
	for i, candidate := range scored {
		boosted[i] = domain.ScoredOutfit{
			Outfit: candidate.Outfit,
			Score:  s.boostedScore(candidate, user),
		}
	}

	sort.SliceStable(boosted, func(i, j int) bool {
		return boosted[i].Score > boosted[j].Score
	})

	if len(boosted) > n {
		boosted = boosted[:n]
	}

	logger.Debug("Selection: kept %d of %d candidates", len(boosted), len(scored))
	return boosted
}
