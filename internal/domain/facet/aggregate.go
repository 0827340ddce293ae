package facet

import (
	"fmt"

	"github.com/hapkiduki/facet-go/internal/domain/entity"
	"github.com/hapkiduki/facet-go/internal/domain/valueobject"
)

// FilteredPriceRange returns the inclusive min/max over every effective
// price exposed by products matching all filters except the price filter
// itself. Simple products contribute their own price; variable products
// contribute every variation price.
//
// Parameters:
//   - fc: the active filter context
//
// Returns:
//   - valueobject.PriceRange: observed price range
//   - error: ErrNoMatch when the surviving set yields zero price values
func (s *Snapshot) FilteredPriceRange(fc *FilterContext) (valueobject.PriceRange, error) {
	var (
		min, max float64
		seen     bool
	)

	for _, p := range s.products {
		if !fc.matches(p, DimensionPrice) {
			continue
		}
		for _, price := range p.EffectivePrices() {
			if !seen {
				min, max = price, price
				seen = true
				continue
			}
			if price < min {
				min = price
			}
			if price > max {
				max = price
			}
		}
	}

	if !seen {
		return valueobject.PriceRange{}, ErrNoMatch
	}
	return valueobject.MustNewPriceRange(min, max), nil
}

// StockStatusCounts tallies surviving products per stock status, applying
// every filter except the stock filter itself. Buckets are pre-seeded to
// zero for every known status. A product increments each distinct status
// it exposes exactly once, however many variations carry that status.
//
// Parameters:
//   - fc: the active filter context
//
// Returns:
//   - map[entity.StockStatus]int: counts for all known statuses
func (s *Snapshot) StockStatusCounts(fc *FilterContext) map[entity.StockStatus]int {
	counts := make(map[entity.StockStatus]int, 3)
	for _, status := range entity.KnownStockStatuses() {
		counts[status] = 0
	}

	for _, p := range s.products {
		if !fc.matches(p, DimensionStock) {
			continue
		}
		for _, status := range p.EffectiveStockStatuses() {
			counts[status]++
		}
	}
	return counts
}

// RatingCounts tallies surviving products per rounded rating bucket,
// applying every filter except the rating filter itself. Products without
// an effective rating are absent from every bucket, and buckets with zero
// observations are omitted; callers wanting a dense 1-5 display seed
// zeros themselves.
//
// Parameters:
//   - fc: the active filter context
//
// Returns:
//   - map[int]int: counts per observed rating bucket
func (s *Snapshot) RatingCounts(fc *FilterContext) map[int]int {
	counts := make(map[int]int)

	for _, p := range s.products {
		if !fc.matches(p, DimensionRating) {
			continue
		}
		if rating, ok := p.EffectiveRating(); ok {
			counts[rating]++
		}
	}
	return counts
}

// AttributeCounts tallies surviving products per term on one attribute
// dimension, applying every filter except that dimension's own term
// filter. Other attribute dimensions in the context still constrain the
// candidate set. Each product increments each of its distinct effective
// terms once; terms never observed on a surviving product are absent.
//
// Parameters:
//   - fc: the active filter context
//   - dimension: Attribute dimension name (must be known to the snapshot)
//
// Returns:
//   - map[string]int: counts per observed term
//   - error: ErrInvalidDimension if the dimension is unknown (caller bug)
func (s *Snapshot) AttributeCounts(fc *FilterContext, dimension string) (map[string]int, error) {
	if !s.HasDimension(dimension) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidDimension, dimension)
	}

	exclude := AttributeDimension(dimension)
	counts := make(map[string]int)

	for _, p := range s.products {
		if !fc.matches(p, exclude) {
			continue
		}
		for _, term := range p.EffectiveTerms(dimension) {
			counts[term]++
		}
	}
	return counts, nil
}
