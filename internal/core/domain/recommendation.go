package domain

// RecommendedItem is one outfit slot in a recommendation.
type RecommendedItem struct {
	Role       Role    `json:"role"`
	ItemID     string  `json:"item_id"`
	Title      string  `json:"title"`
	Color      string  `json:"color"`
	Style      string  `json:"style"`
	Material   string  `json:"material,omitempty"`
	MatchScore float64 `json:"match_score"`
	ImageURL   string  `json:"image_url,omitempty"`
}

// Recommendation is a single ranked outfit in the response.
type Recommendation struct {
	Rank                 int               `json:"rank"`
	OverallScore         float64           `json:"overall_score"`
	Items                []RecommendedItem `json:"items"`
	Reasons              []string          `json:"reasons"`
	AccessorySuggestions []string          `json:"accessory_suggestions"`
}

// RecommendationResponse is the full pipeline output for one request.
// An empty Recommendations list is a valid outcome, not an error.
type RecommendationResponse struct {
	RequestID       string           `json:"request_id"`
	UserID          string           `json:"user_id"`
	Timestamp       string           `json:"timestamp"`
	Recommendations []Recommendation `json:"recommendations"`
}
