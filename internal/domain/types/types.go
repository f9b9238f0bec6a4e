// Package types contains common read shapes returned by the API.
package types

// Match is one ranked catalog item annotated with display values.
type Match struct {
	Description  string  `json:"description"`
	Brand        string  `json:"brand"`
	ImageURL     string  `json:"image_url,omitempty"`
	ProductURL   string  `json:"product_url,omitempty"`
	Price        float64 `json:"price"`
	Score        int     `json:"score"`
	MatchPercent int     `json:"match_percent"`
	Color        string  `json:"color"`
}

// SearchResult is the full answer to one search action.
type SearchResult struct {
	Matches           []Match `json:"matches"`
	RecommendedLength int     `json:"recommended_length_cm"`
	CatalogSize       int     `json:"catalog_size"`
}
