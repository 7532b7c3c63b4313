package services

import (
	"fmt"
	"math/rand"

	"github.com/attire-labs/outfit-cli/internal/core/domain"
)

// Vocabulary for synthetic catalog and context generation.
var (
	mockRoles     = []domain.Role{domain.RoleTop, domain.RoleBottom, domain.RoleOuter, domain.RoleShoes, domain.RoleAccessory}
	mockStyles    = []string{"casual", "formal", "sporty", "boho", "street", "smart-casual"}
	mockColors    = []string{"white", "black", "navy", "khaki", "brown", "beige", "olive", "red", "green"}
	mockMaterials = []string{"cotton", "linen", "wool", "polyester", "leather"}
	mockPatterns  = []string{"plain", "stripe", "floral", "check"}
	mockSeasons   = []domain.Season{domain.SeasonSpring, domain.SeasonSummer, domain.SeasonFall, domain.SeasonWinter}
	mockOccasions = []string{"work", "date", "coffee", "gym", "party", "outdoor_walk"}
)

// GenerateCatalog produces n synthetic catalog items from the given random
// source. The source is always passed explicitly so generation is
// reproducible per seed and never leans on ambient global state.
func GenerateCatalog(rng *rand.Rand, n int) []domain.ClothingItem {
	items := make([]domain.ClothingItem, n)
	for i := range items {
		role := mockRoles[rng.Intn(len(mockRoles))]
		style := mockStyles[rng.Intn(len(mockStyles))]
		color := mockColors[rng.Intn(len(mockColors))]
		material := mockMaterials[rng.Intn(len(mockMaterials))]
		pattern := mockPatterns[rng.Intn(len(mockPatterns))]
		season := mockSeasons[rng.Intn(len(mockSeasons))]

		items[i] = domain.ClothingItem{
			ID:          fmt.Sprintf("item_%d", i),
			Title:       fmt.Sprintf("%s %s %s", color, material, role),
			Description: fmt.Sprintf("A %s, %s %s in %s made of %s. Suitable for %s.", style, pattern, role, color, material, season),
			Role:        role,
			Color:       color,
			Style:       style,
			Material:    material,
			Pattern:     pattern,
			Season:      season,
			Popularity:  rng.Float64(),
			Available:   true,
		}
	}
	return items
}

// GenerateContext produces a synthetic user context from the given random
// source.
func GenerateContext(rng *rand.Rand) domain.UserContext {
	styles := []string{mockStyles[rng.Intn(len(mockStyles))]}
	palette := []string{
		mockColors[rng.Intn(len(mockColors))],
		mockColors[rng.Intn(len(mockColors))],
	}

	return domain.UserContext{
		UserID:   "user_demo",
		DateTime: "2025-12-10T09:00:00Z",
		Location: "demo_city",
		Weather: domain.Weather{
			TempC:     5 + rng.Intn(26),
			Humidity:  20 + rng.Intn(71),
			Condition: "sunny",
		},
		Preferences: domain.Preferences{
			Styles: styles,
			Colors: palette,
		},
		Occasion: []string{mockOccasions[rng.Intn(len(mockOccasions))]},
		PaletteAnalysis: domain.PaletteAnalysis{
			DominantColors: palette,
		},
		Demographics: domain.Demographics{Age: 30, Gender: "female"},
	}
}
