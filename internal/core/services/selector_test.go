package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/attire-labs/outfit-cli/internal/core/domain"
)

func scoredOutfit(id string, score float64, color, style string) domain.ScoredOutfit {
	return domain.ScoredOutfit{
		Outfit: domain.OutfitCandidate{
			Top:    domain.ClothingItem{ID: id, Color: color, Style: style},
			Bottom: domain.ClothingItem{Color: "grey", Style: "plain"},
			Shoes:  domain.ClothingItem{Color: "grey", Style: "plain"},
		},
		Score: score,
	}
}

func TestBoostedScoreColorAndStyleAreIndependent(t *testing.T) {
	user := domain.UserContext{
		Preferences: domain.Preferences{
			Styles: []string{"casual"},
			Colors: []string{"white"},
		},
	}
	s := Selector{}

	tests := []struct {
		name      string
		candidate domain.ScoredOutfit
		want      float64
	}{
		{"no boost", scoredOutfit("a", 0.5, "black", "formal"), 0.5},
		{"color only", scoredOutfit("b", 0.5, "white", "formal"), 0.7},
		{"style only", scoredOutfit("c", 0.5, "black", "casual"), 0.7},
		{"both", scoredOutfit("d", 0.5, "white", "casual"), 0.9},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, s.boostedScore(tt.candidate, user), 1e-9)
		})
	}
}

func TestBoostedScoreClampsToOne(t *testing.T) {
	user := domain.UserContext{
		Preferences: domain.Preferences{
			Styles: []string{"casual"},
			Colors: []string{"white"},
		},
	}

	boosted := Selector{}.boostedScore(scoredOutfit("a", 0.9, "white", "casual"), user)
	assert.InDelta(t, 1.0, boosted, 1e-9)
}

func TestSelectBestPicksHighestBoosted(t *testing.T) {
	user := domain.UserContext{
		Preferences: domain.Preferences{Colors: []string{"white"}},
	}
	scored := []domain.ScoredOutfit{
		scoredOutfit("plain", 0.6, "black", "formal"),
		scoredOutfit("boosted", 0.5, "white", "formal"),
	}

	best, ok := Selector{}.SelectBest(scored, user)
	require.True(t, ok)
	assert.Equal(t, "boosted", best.Outfit.Top.ID)
	assert.InDelta(t, 0.7, best.Score, 1e-9)
}

func TestSelectBestEmptyInput(t *testing.T) {
	_, ok := Selector{}.SelectBest(nil, domain.UserContext{})
	assert.False(t, ok)
}

func TestSelectTopNBoostsResortsAndTruncates(t *testing.T) {
	user := domain.UserContext{
		Preferences: domain.Preferences{Colors: []string{"white"}},
	}
	scored := []domain.ScoredOutfit{
		scoredOutfit("first", 0.6, "black", "formal"),
		scoredOutfit("second", 0.5, "white", "formal"),
		scoredOutfit("third", 0.4, "black", "formal"),
	}

	top := Selector{}.SelectTopN(scored, user, 2)
	require.Len(t, top, 2)
	assert.Equal(t, "second", top[0].Outfit.Top.ID)
	assert.InDelta(t, 0.7, top[0].Score, 1e-9)
	assert.Equal(t, "first", top[1].Outfit.Top.ID)
}

func TestSelectTopNStableOnEqualBoostedScores(t *testing.T) {
	scored := []domain.ScoredOutfit{
		scoredOutfit("a", 0.5, "black", "formal"),
		scoredOutfit("b", 0.5, "black", "formal"),
	}

	top := Selector{}.SelectTopN(scored, domain.UserContext{}, 2)
	require.Len(t, top, 2)
	assert.Equal(t, "a", top[0].Outfit.Top.ID)
	assert.Equal(t, "b", top[1].Outfit.Top.ID)
}

func TestSelectTopNNeverExceedsOne(t *testing.T) {
	user := domain.UserContext{
		Preferences: domain.Preferences{
			Styles: []string{"casual"},
			Colors: []string{"white"},
		},
	}
	scored := []domain.ScoredOutfit{
		scoredOutfit("a", 0.95, "white", "casual"),
	}

	top := Selector{}.SelectTopN(scored, user, 1)
	require.Len(t, top, 1)
	assert.LessOrEqual(t, top[0].Score, 1.0)
}

func TestSelectTopNEmptyInput(t *testing.T) {
	assert.Empty(t, Selector{}.SelectTopN(nil, domain.UserContext{}, 3))
}
