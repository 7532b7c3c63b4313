package driven

// RankingModel scores a feature vector for one outfit candidate.
// This is an optional service - when nil, the ranker falls back to its
// deterministic heuristic. Implementations are trained offline and loaded
// read-only; Predict must be a pure function of its input.
type RankingModel interface {
	// Predict returns a relevance score for the feature vector. The
	// score is unbounded; the selector clamps final confidences.
	Predict(features []float64) (float64, error)

	// Name returns an identifier for the loaded model.
	Name() string
}
