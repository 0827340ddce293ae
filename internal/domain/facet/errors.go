// Package facet implements self-excluding facet aggregation over a
// catalog snapshot. Each facet's aggregate (price range, stock counts,
// rating counts, attribute term counts) is computed as if that facet's
// own filter were not applied, while every other active filter still is.
// All operations are pure reads; a Snapshot and FilterContext may be
// shared across concurrent queries without locking.
package facet

import "errors"

// Facet errors define the engine's error taxonomy.
var (
	// ErrNoMatch is returned by FilteredPriceRange when the surviving
	// candidate set yields no price values. It is an explicit signal,
	// distinguishable from a genuine zero-width range.
	ErrNoMatch = errors.New("no prices match the active filters")

	// ErrInvalidDimension is returned when an attribute facet is requested
	// for a dimension the snapshot does not know. This indicates a caller
	// bug, not an empty result.
	ErrInvalidDimension = errors.New("unknown attribute dimension")

	// ErrInvalidPriceBounds is returned by NewFilterContext when the
	// minimum price exceeds the maximum.
	ErrInvalidPriceBounds = errors.New("minimum price cannot exceed maximum price")

	// ErrInvalidStockStatus is returned by NewFilterContext when a stock
	// status filter value is not a known status.
	ErrInvalidStockStatus = errors.New("unknown stock status in filter")

	// ErrInvalidRating is returned by NewFilterContext when a rating
	// filter value falls outside [1,5].
	ErrInvalidRating = errors.New("rating filter values must be between 1 and 5")
)

// IsMalformedContext checks if the error indicates a filter context that
// failed construction-time validation. Aggregators never see such a
// context; callers handle the rejection uniformly through this helper.
//
// Parameters:
//   - err: error to check
//
// Returns:
//   - bool: true if the error is a context validation error
func IsMalformedContext(err error) bool {
	return errors.Is(err, ErrInvalidPriceBounds) ||
		errors.Is(err, ErrInvalidStockStatus) ||
		errors.Is(err, ErrInvalidRating)
}
