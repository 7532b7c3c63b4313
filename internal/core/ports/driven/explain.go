package driven

import (
	"context"

	"github.com/attire-labs/outfit-cli/internal/core/domain"
)

// ExplanationService generates natural-language reasoning for a selected
// outfit. This is an optional service - when nil or failing, the
// recommender substitutes deterministic heuristic reasons. It decorates
// output only and never influences ranking order.
type ExplanationService interface {
	// ExplainOutfit returns short bullet reasons why the outfit suits
	// the context.
	ExplainOutfit(ctx context.Context, outfit domain.OutfitCandidate, occasion string, weather domain.Weather, styles []string) ([]string, error)

	// SuggestAccessories returns accessory suggestions that complete
	// the outfit.
	SuggestAccessories(ctx context.Context, topColor, bottomColor, occasion, style string) ([]string, error)

	// ModelName returns the name of the underlying model.
	ModelName() string

	// Ping validates the service is reachable.
	Ping(ctx context.Context) error

	// Close releases resources.
	Close() error
}
