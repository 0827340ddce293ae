package dto

// PriceRangeData represents the minimum and maximum observed price.
type PriceRangeData struct {
	// Min is the lowest observed price.
	Min float64 `json:"min"`

	// Max is the highest observed price.
	Max float64 `json:"max"`
}

// PriceFacetResponse represents the price range facet result.
// Range is null when no product survives the active filters, so a
// missing range is never confused with a genuine zero-width range.
type PriceFacetResponse struct {
	// Match indicates whether any priced product survived the filters.
	Match bool `json:"match"`

	// Range is the observed price range, null when Match is false.
	Range *PriceRangeData `json:"range,omitempty"`
}

// StockFacetResponse represents per-status product counts.
// Every known status is present, zero-count buckets included.
type StockFacetResponse struct {
	// Counts maps stock status to the number of surviving products
	// exposing that status.
	Counts map[string]int `json:"counts"`
}

// RatingFacetResponse represents per-rating-bucket product counts.
// Only observed buckets are present.
type RatingFacetResponse struct {
	// Counts maps the rounded rating value to the number of surviving
	// rated products in that bucket.
	Counts map[int]int `json:"counts"`
}

// AttributeFacetResponse represents per-term product counts for one
// attribute dimension. Only observed terms are present.
type AttributeFacetResponse struct {
	// Dimension is the attribute dimension name.
	Dimension string `json:"dimension"`

	// Counts maps term identifier to the number of surviving products
	// carrying that term.
	Counts map[string]int `json:"counts"`
}

// FacetSummaryResponse bundles every facet for one filter selection,
// the shape a storefront filter sidebar renders from.
type FacetSummaryResponse struct {
	// Price is the price range facet.
	Price PriceFacetResponse `json:"price"`

	// Stock is the stock status facet.
	Stock StockFacetResponse `json:"stock"`

	// Rating is the rating facet.
	Rating RatingFacetResponse `json:"rating"`

	// Attributes holds one facet per known attribute dimension.
	Attributes []AttributeFacetResponse `json:"attributes"`
}
