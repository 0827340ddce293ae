package facet

import (
	"fmt"

	"github.com/hapkiduki/facet-go/internal/domain/entity"
)

// Params carries the already-normalized filter selections for one query.
// The caller (a query-parameter normalizer, typically the HTTP layer) is
// responsible for translating raw textual parameters into these typed
// fields; the engine never parses strings.
type Params struct {
	// StockStatuses restricts matching to products exposing at least one
	// of these statuses. Empty means no stock filter.
	StockStatuses []entity.StockStatus

	// MinPrice is the inclusive lower price bound, nil for unbounded.
	MinPrice *float64

	// MaxPrice is the inclusive upper price bound, nil for unbounded.
	MaxPrice *float64

	// Ratings restricts matching to products whose rounded rating is one
	// of these values. Empty means no rating filter.
	Ratings []int

	// Attributes maps an attribute dimension to the requested term set.
	// A dimension absent from the map imposes no constraint; an empty
	// term list is treated the same as absence.
	Attributes map[string][]string
}

// FilterContext is the immutable, validated form of the active filters.
// It is built once per query and shared, unmodified, by every facet
// aggregation; self-exclusion is expressed per call via a Dimension to
// skip, never by mutating the context.
type FilterContext struct {
	stockStatuses map[entity.StockStatus]struct{}
	minPrice      *float64
	maxPrice      *float64
	ratings       map[int]struct{}
	attributes    map[string]map[string]struct{}
}

// NewFilterContext validates and freezes the filter selections.
// Every slice and map in params is copied; the caller may reuse or
// mutate params afterwards without affecting the context.
//
// Parameters:
//   - params: normalized filter selections
//
// Returns:
//   - *FilterContext: the immutable filter context
//   - error: ErrInvalidPriceBounds, ErrInvalidStockStatus or
//     ErrInvalidRating if validation fails
func NewFilterContext(params Params) (*FilterContext, error) {
	if params.MinPrice != nil && params.MaxPrice != nil && *params.MinPrice > *params.MaxPrice {
		return nil, fmt.Errorf("%w: %.2f > %.2f", ErrInvalidPriceBounds, *params.MinPrice, *params.MaxPrice)
	}

	fc := &FilterContext{
		stockStatuses: make(map[entity.StockStatus]struct{}, len(params.StockStatuses)),
		ratings:       make(map[int]struct{}, len(params.Ratings)),
		attributes:    make(map[string]map[string]struct{}, len(params.Attributes)),
	}

	for _, status := range params.StockStatuses {
		if !status.Valid() {
			return nil, fmt.Errorf("%w: %q", ErrInvalidStockStatus, status)
		}
		fc.stockStatuses[status] = struct{}{}
	}

	for _, rating := range params.Ratings {
		if rating < 1 || rating > 5 {
			return nil, fmt.Errorf("%w: %d", ErrInvalidRating, rating)
		}
		fc.ratings[rating] = struct{}{}
	}

	if params.MinPrice != nil {
		min := *params.MinPrice
		fc.minPrice = &min
	}
	if params.MaxPrice != nil {
		max := *params.MaxPrice
		fc.maxPrice = &max
	}

	for dimension, terms := range params.Attributes {
		if len(terms) == 0 {
			continue
		}
		set := make(map[string]struct{}, len(terms))
		for _, term := range terms {
			set[term] = struct{}{}
		}
		fc.attributes[dimension] = set
	}

	return fc, nil
}

// HasPriceFilter reports whether either price bound is set.
//
// Returns:
//   - bool: true if a price filter is active
func (c *FilterContext) HasPriceFilter() bool {
	return c.minPrice != nil || c.maxPrice != nil
}

// AttributeDimensions returns the attribute dimensions this context
// constrains. Useful for callers deciding which facets to recompute.
//
// Returns:
//   - []string: constrained dimension names, unordered
func (c *FilterContext) AttributeDimensions() []string {
	dims := make([]string, 0, len(c.attributes))
	for dimension := range c.attributes {
		dims = append(dims, dimension)
	}
	return dims
}
