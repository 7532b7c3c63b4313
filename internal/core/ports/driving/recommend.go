package driving

import (
	"context"

	"github.com/attire-labs/outfit-cli/internal/core/domain"
)

// RecommendationService produces ranked outfit recommendations for a user
// context.
type RecommendationService interface {
	// Recommend runs the full retrieval, assembly, scoring, and selection
	// pipeline. An empty recommendation list is a valid result.
	Recommend(ctx context.Context, user domain.UserContext) (domain.RecommendationResponse, error)
}
