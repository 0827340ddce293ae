// Package valueobject contains value objects that represent concepts without identity.
// Value objects are immutable and compared by their attributes rather than identity.
// They encapsulate validation logic and ensure data integrity.
//
// Value Objects follow these principles:
//   - Immutability: Once created, they cannot be changed.
//   - Equality: Two value objects are equal if all their attributes are equal.
//   - Self-validation: They validate their own data upon creation.
//   - Side-effect free: Methods returns new instances rather than modifying state
package valueobject

import (
	"errors"
	"fmt"
)

// PriceRange errors define domain-specific error conditions.
var (
	// ErrInvertedRange is returned when a range's minimum exceeds its maximum.
	ErrInvertedRange = errors.New("price range minimum cannot exceed maximum")
)

// PriceRange represents the inclusive span of prices observed over a set of
// products. Both bounds are always present; an empty candidate set is
// signalled by the caller as an explicit no-match, never as a zero range.
//
// Example usage:
//
//	r := valueobject.MustNewPriceRange(9.99, 24.99)
//	r.Contains(12.50) // true
type PriceRange struct {
	// Min is the lowest observed price
	Min float64 `json:"min"`

	// Max is the highest observed price
	Max float64 `json:"max"`
}

// NewPriceRange creates a new PriceRange value object.
//
// Parameters:
//   - min: Lowest price (must not exceed max)
//   - max: Highest price
//
// Returns:
//   - PriceRange: the created PriceRange value object
//   - error: ErrInvertedRange if min > max
func NewPriceRange(min, max float64) (PriceRange, error) {
	if min > max {
		return PriceRange{}, ErrInvertedRange
	}
	return PriceRange{Min: min, Max: max}, nil
}

// MustNewPriceRange creates a new PriceRange and panics on error.
// Use only where the bounds are known-ordered (e.g., test fixtures).
//
// Parameters:
//   - min: Lowest price
//   - max: Highest price
//
// Returns:
//   - PriceRange: the created PriceRange value object
func MustNewPriceRange(min, max float64) PriceRange {
	r, err := NewPriceRange(min, max)
	if err != nil {
		panic(err)
	}
	return r
}

// Contains checks whether a price falls within the range, inclusive
// on both ends.
//
// Parameters:
//   - price: the price to test
//
// Returns:
//   - bool: true if Min <= price <= Max
func (r PriceRange) Contains(price float64) bool {
	return price >= r.Min && price <= r.Max
}

// Width returns the span between the bounds.
//
// Returns:
//   - float64: Max minus Min (zero for a single-price range)
func (r PriceRange) Width() float64 {
	return r.Max - r.Min
}

// Equals checks if two PriceRange values are equal in both bounds.
//
// Parameters:
//   - other: the PriceRange to compare
//
// Returns:
//   - bool: true if both bounds are equal
func (r PriceRange) Equals(other PriceRange) bool {
	return r.Min == other.Min && r.Max == other.Max
}

// Within checks whether this range lies entirely inside another range.
//
// Parameters:
//   - other: the enclosing range
//
// Returns:
//   - bool: true if other.Min <= r.Min and r.Max <= other.Max
func (r PriceRange) Within(other PriceRange) bool {
	return r.Min >= other.Min && r.Max <= other.Max
}

// String returns a formatted string representation of the range.
//
// Returns:
//   - string: formatted range (e.g., "9.99 - 24.99")
func (r PriceRange) String() string {
	return fmt.Sprintf("%.2f - %.2f", r.Min, r.Max)
}
