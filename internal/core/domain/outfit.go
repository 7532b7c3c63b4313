package domain

// OutfitCandidate holds exactly one item per mandatory role.
// Candidates are created per request by the assembler and discarded after
// scoring.
type OutfitCandidate struct {
	Top    ClothingItem
	Bottom ClothingItem
	Shoes  ClothingItem
}

// Items returns the outfit's items in the fixed role order
// top, bottom, shoes.
func (o OutfitCandidate) Items() []ClothingItem {
	return []ClothingItem{o.Top, o.Bottom, o.Shoes}
}

// FeatureVector is the fixed-schema numeric representation of an
// (outfit, context) pair. Field order and semantics are a stable contract
// consumed by the ranker: changing either is a breaking change.
type FeatureVector struct {
	// ColorMatch counts repeated colors among the outfit's items.
	// Raw duplicate count, not normalised.
	ColorMatch float64

	// StyleMatchRatio is the fraction of items whose style is preferred.
	StyleMatchRatio float64

	// SeasonMatchRatio is the fraction of items matching the season
	// inferred from the request temperature.
	SeasonMatchRatio float64

	// AvgPopularity is the mean item popularity.
	AvgPopularity float64

	// ContextSimilarity is the cosine similarity between the mean item
	// embedding and the context embedding, or 0 when either is missing.
	ContextSimilarity float64
}

// Values returns the features as a slice in contract order.
func (f FeatureVector) Values() []float64 {
	return []float64{
		f.ColorMatch,
		f.StyleMatchRatio,
		f.SeasonMatchRatio,
		f.AvgPopularity,
		f.ContextSimilarity,
	}
}

// ScoredOutfit pairs a candidate with its ranking score. The score is the
// raw model or heuristic output; it is not bounded to [0,1] until the
// selector clamps it.
type ScoredOutfit struct {
	Outfit OutfitCandidate
	Score  float64
}
