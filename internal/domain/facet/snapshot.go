package facet

import (
	"sort"

	"github.com/hapkiduki/facet-go/internal/domain/entity"
)

// Snapshot is a read-only view of the catalog for one logical query
// (e.g., one page render). Aggregation correctness requires the complete
// candidate set: partial or paginated snapshots are unsupported.
//
// A Snapshot holds no mutable state and may serve any number of
// concurrent facet queries.
type Snapshot struct {
	products   []*entity.Product
	dimensions map[string]struct{}
}

// NewSnapshot builds a snapshot over the given products.
//
// The known attribute dimensions are the declared taxonomy plus every
// dimension observed on a product or variation, so a dimension with no
// tagged products can still be declared and queried (yielding an empty
// count map rather than ErrInvalidDimension).
//
// Parameters:
//   - products: the complete product set for the scope
//   - dimensions: declared attribute dimension names
//
// Returns:
//   - *Snapshot: the catalog snapshot
func NewSnapshot(products []*entity.Product, dimensions ...string) *Snapshot {
	s := &Snapshot{
		products:   append([]*entity.Product(nil), products...),
		dimensions: make(map[string]struct{}, len(dimensions)),
	}

	for _, dimension := range dimensions {
		s.dimensions[dimension] = struct{}{}
	}
	for _, p := range products {
		for dimension := range p.Attributes {
			s.dimensions[dimension] = struct{}{}
		}
		for _, v := range p.Variations {
			for dimension := range v.Attributes {
				s.dimensions[dimension] = struct{}{}
			}
		}
	}
	return s
}

// Len returns the number of products in the snapshot.
//
// Returns:
//   - int: product count
func (s *Snapshot) Len() int {
	return len(s.products)
}

// Products returns the snapshot's products. The slice is owned by the
// snapshot and must be treated as read-only.
//
// Returns:
//   - []*entity.Product: the products in catalog order
func (s *Snapshot) Products() []*entity.Product {
	return s.products
}

// HasDimension reports whether the snapshot knows an attribute dimension.
//
// Parameters:
//   - dimension: Attribute dimension name
//
// Returns:
//   - bool: true if the dimension is known
func (s *Snapshot) HasDimension(dimension string) bool {
	_, ok := s.dimensions[dimension]
	return ok
}

// AttributeDimensions returns the known attribute dimensions, sorted for
// stable iteration.
//
// Returns:
//   - []string: sorted dimension names
func (s *Snapshot) AttributeDimensions() []string {
	dims := make([]string, 0, len(s.dimensions))
	for dimension := range s.dimensions {
		dims = append(dims, dimension)
	}
	sort.Strings(dims)
	return dims
}
