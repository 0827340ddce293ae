package facet

import "fmt"

// dimensionKind tags the variants of the Dimension sum type.
type dimensionKind int

const (
	dimPrice dimensionKind = iota + 1
	dimStock
	dimRating
	dimAttribute
)

// Dimension identifies one filterable facet: price, stock, rating, or a
// named attribute dimension. It is a closed tagged type; attribute
// dimensions are the only open-ended variant and carry their name.
// The zero Dimension is not valid.
type Dimension struct {
	kind      dimensionKind
	attribute string
}

// The fixed facet dimensions.
var (
	// DimensionPrice is the price range facet.
	DimensionPrice = Dimension{kind: dimPrice}

	// DimensionStock is the stock status facet.
	DimensionStock = Dimension{kind: dimStock}

	// DimensionRating is the review rating facet.
	DimensionRating = Dimension{kind: dimRating}
)

// AttributeDimension returns the Dimension for a named attribute
// dimension (e.g. "color").
//
// Parameters:
//   - name: Attribute dimension name
//
// Returns:
//   - Dimension: the attribute dimension identity
func AttributeDimension(name string) Dimension {
	return Dimension{kind: dimAttribute, attribute: name}
}

// IsAttribute reports whether the dimension is an attribute dimension.
//
// Returns:
//   - bool: true for attribute dimensions
func (d Dimension) IsAttribute() bool {
	return d.kind == dimAttribute
}

// Attribute returns the attribute dimension name, empty for the fixed
// dimensions.
//
// Returns:
//   - string: the attribute name, or ""
func (d Dimension) Attribute() string {
	return d.attribute
}

// String returns a readable identity for logging.
//
// Returns:
//   - string: dimension name (e.g., "price", "attribute[color]")
func (d Dimension) String() string {
	switch d.kind {
	case dimPrice:
		return "price"
	case dimStock:
		return "stock"
	case dimRating:
		return "rating"
	case dimAttribute:
		return fmt.Sprintf("attribute[%s]", d.attribute)
	}
	return "unknown"
}
