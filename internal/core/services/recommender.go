package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/attire-labs/outfit-cli/internal/core/domain"
	"github.com/attire-labs/outfit-cli/internal/core/ports/driven"
	"github.com/attire-labs/outfit-cli/internal/core/ports/driving"
	"github.com/attire-labs/outfit-cli/internal/logger"
)

// Ensure Recommender implements the interface.
var _ driving.RecommendationService = (*Recommender)(nil)

// Recommender orchestrates the pipeline: retrieval, assembly, feature
// extraction, ranking, and selection. It is synchronous per request and
// safe for concurrent use: the catalog, ranker, and settings are immutable
// after construction.
type Recommender struct {
	catalog   *CatalogIndex
	assembler *OutfitAssembler
	extractor FeatureExtractor
	ranker    *Ranker
	selector  Selector
	explainer driven.ExplanationService
	settings  domain.Settings
}

// NewRecommender wires the pipeline. The explainer is optional (can be
// nil); recommendations then carry heuristic reasons.
func NewRecommender(
	catalog *CatalogIndex,
	model driven.RankingModel,
	explainer driven.ExplanationService,
	settings domain.Settings,
) *Recommender {
	return &Recommender{
		catalog:   catalog,
		assembler: NewOutfitAssembler(settings.AssembleCap),
		ranker:    NewRanker(model),
		explainer: explainer,
		settings:  settings,
	}
}

// Recommend runs the full pipeline for one user context. An empty
// recommendation list is a normal outcome when the catalog lacks role
// diversity; only infrastructure failures return errors, and no optional
// collaborator failure propagates.
func (r *Recommender) Recommend(ctx context.Context, user domain.UserContext) (domain.RecommendationResponse, error) {
	defer logger.Stage("Recommendation Pipeline")()

	query := user.QueryText()
	logger.Debug("Context query: %q", query)

	results, err := r.catalog.SearchByText(ctx, query, domain.SearchOptions{
		TopK:      r.settings.RetrieveTopK,
		Threshold: r.settings.SimilarityThreshold,
	})
	if err != nil {
		return domain.RecommendationResponse{}, fmt.Errorf("retrieve candidates: %w", err)
	}

	candidates := make([]domain.ClothingItem, len(results))
	for i := range results {
		candidates[i] = results[i].Item
	}

	outfits := r.assembler.Assemble(candidates)
	if len(outfits) == 0 {
		logger.Info("No assemblable outfits, returning empty recommendation list")
		return r.response(user, nil), nil
	}

	// The context embedding feeds only the similarity feature; nil is a
	// valid value meaning "unavailable".
	contextEmbedding := r.catalog.EncodeContext(ctx, query)

	features := make([]domain.FeatureVector, len(outfits))
	for i := range outfits {
		features[i] = r.extractor.Extract(outfits[i], user, contextEmbedding)
	}

	scored := r.ranker.Rank(outfits, features)
	top := r.selector.SelectTopN(scored, user, user.EffectiveTopN())

	recs := make([]domain.Recommendation, len(top))
	for i := range top {
		recs[i] = r.buildRecommendation(ctx, i+1, top[i], user)
	}

	logger.Info("Pipeline complete: %d recommendations", len(recs))
	return r.response(user, recs), nil
}

func (r *Recommender) response(user domain.UserContext, recs []domain.Recommendation) domain.RecommendationResponse {
	if recs == nil {
		recs = []domain.Recommendation{}
	}
	timestamp := user.DateTime
	if timestamp == "" {
		timestamp = time.Now().UTC().Format(time.RFC3339)
	}
	return domain.RecommendationResponse{
		RequestID:       uuid.NewString(),
		UserID:          user.UserID,
		Timestamp:       timestamp,
		Recommendations: recs,
	}
}

func (r *Recommender) buildRecommendation(ctx context.Context, rank int, candidate domain.ScoredOutfit, user domain.UserContext) domain.Recommendation {
	items := candidate.Outfit.Items()
	out := make([]domain.RecommendedItem, len(items))
	for i := range items {
		out[i] = domain.RecommendedItem{
			Role:       items[i].Role,
			ItemID:     items[i].ID,
			Title:      items[i].Title,
			Color:      items[i].Color,
			Style:      items[i].Style,
			Material:   items[i].Material,
			MatchScore: itemMatchScore(items[i], user),
			ImageURL:   items[i].ImageURL,
		}
	}

	reasons, accessories := r.explain(ctx, candidate.Outfit, user)

	return domain.Recommendation{
		Rank:                 rank,
		OverallScore:         candidate.Score,
		Items:                out,
		Reasons:              reasons,
		AccessorySuggestions: accessories,
	}
}

// explain asks the explanation service for reasons and accessory
// suggestions when requested and available, substituting heuristic text on
// any failure. Explanation output never changes ranking.
func (r *Recommender) explain(ctx context.Context, outfit domain.OutfitCandidate, user domain.UserContext) ([]string, []string) {
	if !user.UseLLM || r.explainer == nil {
		return heuristicReasons(outfit, user), []string{}
	}

	occasion := ""
	if len(user.Occasion) > 0 {
		occasion = user.Occasion[0]
	}
	style := ""
	if len(user.Preferences.Styles) > 0 {
		style = user.Preferences.Styles[0]
	}

	reasons, err := r.explainer.ExplainOutfit(ctx, outfit, occasion, user.Weather, user.Preferences.Styles)
	if err != nil || len(reasons) == 0 {
		logger.Warn("Explanation service failed: %v; using heuristic reasons", err)
		return heuristicReasons(outfit, user), []string{}
	}

	accessories, err := r.explainer.SuggestAccessories(ctx, outfit.Top.Color, outfit.Bottom.Color, occasion, style)
	if err != nil {
		logger.Warn("Accessory suggestion failed: %v", err)
		accessories = []string{}
	}
	return reasons, accessories
}

// heuristicReasons builds deterministic explanation text from the outfit
// and context, used whenever the explanation service is absent or fails.
func heuristicReasons(outfit domain.OutfitCandidate, user domain.UserContext) []string {
	items := outfit.Items()

	colors := make([]string, len(items))
	seasons := make([]string, len(items))
	for i := range items {
		colors[i] = items[i].Color
		seasons[i] = string(items[i].Season)
	}

	return []string{
		fmt.Sprintf("This set matches your preferred style (%s).", strings.Join(user.Preferences.Styles, ", ")),
		fmt.Sprintf("Colors: %s — balanced and suitable for the occasion.", strings.Join(colors, ", ")),
		fmt.Sprintf("Materials and seasonality: %s — suitable for %d°C.", strings.Join(seasons, ", "), user.Weather.TempC),
	}
}

// itemMatchScore measures how well a single item aligns with the context:
// the mean of its style, season, and color-preference matches.
func itemMatchScore(item domain.ClothingItem, user domain.UserContext) float64 {
	matches := 0.0
	if user.PrefersStyle(item.Style) {
		matches++
	}
	if item.Season == user.InferredSeason() {
		matches++
	}
	if user.PrefersColor(item.Color) {
		matches++
	}
	return matches / 3.0
}
