package domain

import (
	"fmt"
	"strings"
)

// Top-N selection bounds for a recommendation request.
const (
	DefaultTopN = 3
	MaxTopN     = 10
)

// Weather describes ambient conditions at request time.
type Weather struct {
	// TempC is the temperature in whole degrees Celsius.
	TempC int `json:"temp_c"`

	// Humidity is the relative humidity percentage.
	Humidity int `json:"humidity,omitempty"`

	// Condition is a short label such as "sunny" or "rainy".
	Condition string `json:"condition"`
}

// Preferences captures the user's stated style and color preferences.
type Preferences struct {
	// Styles is the ordered list of preferred style aesthetics.
	Styles []string `json:"styles"`

	// Colors is the list of preferred colors.
	Colors []string `json:"colors"`

	// Avoid lists colors or styles the user wants excluded.
	Avoid []string `json:"avoid,omitempty"`

	// FitPref is the preferred fit silhouette.
	FitPref string `json:"fit_pref,omitempty"`
}

// PaletteAnalysis is the output of an upstream personal-color analysis.
type PaletteAnalysis struct {
	DominantColors  []string `json:"dominant_colors,omitempty"`
	SeasonalPalette string   `json:"seasonal_palette,omitempty"`
}

// Demographics holds relatively static user attributes.
type Demographics struct {
	Age    int    `json:"age,omitempty"`
	Gender string `json:"gender,omitempty"`
}

// UserContext is the structured input to a recommendation request.
// It is created once per request and read-only within the pipeline.
type UserContext struct {
	UserID          string          `json:"user_id"`
	DateTime        string          `json:"date_time,omitempty"`
	Location        string          `json:"location,omitempty"`
	Weather         Weather         `json:"weather"`
	Preferences     Preferences     `json:"preferences"`
	Occasion        []string        `json:"occasion"`
	PaletteAnalysis PaletteAnalysis `json:"palette_analysis,omitempty"`
	Demographics    Demographics    `json:"demographics,omitempty"`

	// LastWornHistory lists recently worn item IDs. Informational only:
	// the core pipeline does not filter on it.
	LastWornHistory []string `json:"last_worn_history,omitempty"`

	// TopN is the requested number of recommendations (1-10, default 3).
	TopN int `json:"top_n,omitempty"`

	// UseLLM requests LLM-generated explanations when the explanation
	// service is configured. Never affects ranking.
	UseLLM bool `json:"use_llm,omitempty"`
}

// Validate checks the request shape at the boundary. It is not called
// inside the pipeline.
func (c *UserContext) Validate() error {
	if strings.TrimSpace(c.UserID) == "" {
		return fmt.Errorf("%w: user_id is required", ErrInvalidInput)
	}
	if len(c.Occasion) == 0 {
		return fmt.Errorf("%w: occasion is required", ErrInvalidInput)
	}
	if c.TopN < 0 || c.TopN > MaxTopN {
		return fmt.Errorf("%w: top_n must be between 1 and %d", ErrInvalidInput, MaxTopN)
	}
	return nil
}

// EffectiveTopN returns the requested top-N, falling back to the default
// when unset.
func (c *UserContext) EffectiveTopN() int {
	if c.TopN < 1 || c.TopN > MaxTopN {
		return DefaultTopN
	}
	return c.TopN
}

// PrefersStyle reports whether the style appears in the user's preferred
// styles. Comparison is case-insensitive.
func (c *UserContext) PrefersStyle(style string) bool {
	return containsFold(c.Preferences.Styles, style)
}

// PrefersColor reports whether the color appears in the user's preferred
// colors. Comparison is case-insensitive.
func (c *UserContext) PrefersColor(color string) bool {
	return containsFold(c.Preferences.Colors, color)
}

// InferredSeason returns the season implied by the request weather.
func (c *UserContext) InferredSeason() Season {
	return SeasonForTemp(c.Weather.TempC)
}

// QueryText renders the context as the retrieval query fed to the catalog
// index.
func (c *UserContext) QueryText() string {
	var b strings.Builder
	b.WriteString("preferences: ")
	b.WriteString(strings.Join(c.Preferences.Styles, " "))
	if len(c.Preferences.Colors) > 0 {
		b.WriteString(" ")
		b.WriteString(strings.Join(c.Preferences.Colors, " "))
	}
	b.WriteString(". occasion: ")
	b.WriteString(strings.Join(c.Occasion, " "))
	b.WriteString(". weather: ")
	fmt.Fprintf(&b, "%d°C %s", c.Weather.TempC, c.Weather.Condition)
	return b.String()
}

func containsFold(list []string, s string) bool {
	for _, v := range list {
		if strings.EqualFold(v, s) {
			return true
		}
	}
	return false
}
