package domain

// Role is the fixed slot a clothing item occupies within an outfit.
type Role string

// Known roles. The set is closed: catalog items with any other role are
// ignored by outfit assembly.
const (
	RoleTop       Role = "top"
	RoleBottom    Role = "bottom"
	RoleOuter     Role = "outer"
	RoleShoes     Role = "shoes"
	RoleAccessory Role = "accessory"
)

// IsValid returns true if the role is recognised.
func (r Role) IsValid() bool {
	switch r {
	case RoleTop, RoleBottom, RoleOuter, RoleShoes, RoleAccessory:
		return true
	default:
		return false
	}
}

// Mandatory returns true for roles every assembled outfit must fill.
// Outer and accessory items are optional extras outside the assembly
// contract.
func (r Role) Mandatory() bool {
	return r == RoleTop || r == RoleBottom || r == RoleShoes
}

// MandatoryRoles returns the roles required in every outfit, in the fixed
// order they appear within a candidate.
func MandatoryRoles() []Role {
	return []Role{RoleTop, RoleBottom, RoleShoes}
}

// Season is a catalog item's target season.
type Season string

// Known seasons.
const (
	SeasonSpring Season = "spring"
	SeasonSummer Season = "summer"
	SeasonFall   Season = "fall"
	SeasonWinter Season = "winter"
)

// SeasonForTemp maps an ambient temperature in Celsius to a season label.
// Boundaries are inclusive on the lower threshold: 10°C is winter, 18°C is
// fall, 24°C is spring, anything warmer is summer.
func SeasonForTemp(tempC int) Season {
	switch {
	case tempC <= 10:
		return SeasonWinter
	case tempC <= 18:
		return SeasonFall
	case tempC <= 24:
		return SeasonSpring
	default:
		return SeasonSummer
	}
}

// ClothingItem is a single entry in the outfit catalog.
// Items are owned by the catalog index and treated as immutable after load.
type ClothingItem struct {
	// ID is the unique, stable identifier for the item.
	ID string `json:"item_id"`

	// Title is the human-readable name.
	Title string `json:"title"`

	// Description is the detailed text used for embedding and keyword search.
	Description string `json:"description,omitempty"`

	// Role is the outfit slot this item fills.
	Role Role `json:"role"`

	// Color is the primary color.
	Color string `json:"color"`

	// Style is the style aesthetic (e.g. "casual", "formal").
	Style string `json:"style"`

	// Material is the dominant material.
	Material string `json:"material,omitempty"`

	// Pattern is the pattern type (e.g. "plain", "stripe").
	Pattern string `json:"pattern,omitempty"`

	// Fit is the fit silhouette (e.g. "slim", "regular").
	Fit string `json:"fit,omitempty"`

	// Category is the merchandising category from the catalog builder.
	Category string `json:"category,omitempty"`

	// Season is the season the item is intended for.
	Season Season `json:"season,omitempty"`

	// Popularity is a normalised popularity score in [0,1].
	Popularity float64 `json:"popularity"`

	// Available reports in-stock status.
	Available bool `json:"available"`

	// ImageURL points at the product image.
	ImageURL string `json:"image_url,omitempty"`

	// Embedding is the item's vector representation. Present only when the
	// catalog builder produced one; unit-normalised by the catalog index at
	// build time.
	Embedding []float32 `json:"embedding,omitempty"`
}
