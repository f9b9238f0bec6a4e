// Package model contains domain models passed between layers.
package model

// Ski is one catalog item in its canonical shape. Catalog adapters
// normalize backend-specific records into this type; the matcher never
// sees backend field names. Tag dimensions are slices because the
// upstream store allows both single values and multi-select columns.
type Ski struct {
	Description string   `json:"description"`
	Brand       string   `json:"brand"`
	ImageURL    string   `json:"image_url"`
	ProductURL  string   `json:"product_url"`
	Price       float64  `json:"price"`
	Gender      []string `json:"gender"`
	Ability     []string `json:"ability"`
	Piste       []string `json:"piste"`
	Speed       []string `json:"speed"`
	Turns       []string `json:"turns"`
}

// PriceRange is a closed interval in the catalog's currency.
type PriceRange struct {
	Min float64
	Max float64
}

// Contains reports whether p falls inside the range, bounds included.
func (r PriceRange) Contains(p float64) bool {
	return p >= r.Min && p <= r.Max
}

// Preferences is one completed wizard session. Empty strings mean the
// dimension was left unset and contributes nothing to scoring. A nil
// Price means no price preference. Height is required and must be
// validated to [100, 220] cm before a search runs.
type Preferences struct {
	Gender  string
	Ability string
	Piste   string
	Speed   string
	Turns   string
	Price   *PriceRange
	Height  int
}

// Height bounds for a valid search, in centimeters.
const (
	MinHeight = 100
	MaxHeight = 220
)

// ValidHeight reports whether h is an acceptable rider height.
func ValidHeight(h int) bool {
	return h >= MinHeight && h <= MaxHeight
}
