// Package entity contains the core bussiness entities of the domain layer.
package entity

import (
	"errors"
	"math"

	"github.com/google/uuid"
)

// Product errors define domain-specific error conditions for products.
var (
	ErrInvalidProductName  = errors.New("product name cannot be empty")
	ErrInvalidProductSKU   = errors.New("product SKU cannot be empty")
	ErrInvalidProductPrice = errors.New("product price cannot be negative")
	ErrInvalidRating       = errors.New("product rating must be between 1 and 5")
	ErrInvalidStockStatus  = errors.New("unknown stock status")
	ErrNotVariableProduct  = errors.New("variations can only be added to variable products")
)

// ProductKind distinguishes how a product exposes its purchasable values.
type ProductKind string

const (
	// ProductKindSimple is a product sold as-is; price, stock and
	// attributes live on the product itself.
	ProductKindSimple ProductKind = "simple"

	// ProductKindVariable is a product whose price, stock and attributes
	// are distributed across child variations.
	ProductKindVariable ProductKind = "variable"
)

// StockStatus represents the inventory availability of a product or variation.
type StockStatus string

const (
	StockStatusInStock     StockStatus = "in_stock"     // Available for purchase
	StockStatusOutOfStock  StockStatus = "out_of_stock" // No inventory
	StockStatusOnBackorder StockStatus = "on_backorder" // Orderable, ships later
)

// KnownStockStatuses returns every stock status the catalog understands,
// in display order. Facet aggregation seeds its count buckets from this list.
//
// Returns:
//   - []StockStatus: all known stock statuses
func KnownStockStatuses() []StockStatus {
	return []StockStatus{StockStatusInStock, StockStatusOutOfStock, StockStatusOnBackorder}
}

// Valid reports whether the status is one of the known stock statuses.
//
// Returns:
//   - bool: true if the status is known
func (s StockStatus) Valid() bool {
	switch s {
	case StockStatusInStock, StockStatusOutOfStock, StockStatusOnBackorder:
		return true
	}
	return false
}

// Product represents one catalog entry, simple or variable.
type Product struct {
	// ID is the unique identifier for the product
	ID uuid.UUID `json:"id"`

	// Name is the name of the product
	Name string `json:"name"`

	// SKU is the stock keeping unit identifier
	SKU string `json:"sku"`

	// Kind controls whether values come from the product or its variations
	Kind ProductKind `json:"kind"`

	// RegularPrice is the selling price. Set for simple products only;
	// variable products price through their variations.
	RegularPrice *float64 `json:"regular_price,omitempty"`

	// StockStatus is the product's own availability (simple products)
	StockStatus StockStatus `json:"stock_status"`

	// Rating is the review average rounded to the nearest integer in [1,5].
	// Nil when the product has no reviews.
	Rating *int `json:"rating,omitempty"`

	// Attributes maps an attribute dimension (e.g. "color") to the term
	// identifiers assigned on that dimension.
	Attributes map[string][]string `json:"attributes,omitempty"`

	// Variations holds the child variations of a variable product,
	// in catalog order. Empty for simple products.
	Variations []Variation `json:"variations,omitempty"`
}

// Variation is one purchasable combination of a variable product.
// It carries the same price/stock/attribute shape as a simple product
// and is used in place of the parent's own fields.
type Variation struct {
	// ID is the unique identifier for the variation
	ID uuid.UUID `json:"id"`

	// ProductID references the parent product (back-reference only)
	ProductID uuid.UUID `json:"product_id"`

	// Price is the variation's selling price, nil if unpriced
	Price *float64 `json:"price,omitempty"`

	// StockStatus is the variation's availability
	StockStatus StockStatus `json:"stock_status"`

	// Attributes maps an attribute dimension to this variation's terms
	Attributes map[string][]string `json:"attributes,omitempty"`
}

// NewSimpleProduct creates a simple product with its own price and stock.
//
// Parameters:
//   - name: Name of the product (required)
//   - sku: Stock Keeping Unit identifier (required)
//   - price: Selling price (must be non-negative)
//   - stock: Stock status (must be a known status)
//
// Returns:
//   - *Product: newly created Product
//   - error: validation error if input is invalid
func NewSimpleProduct(name, sku string, price float64, stock StockStatus) (*Product, error) {
	if name == "" {
		return nil, ErrInvalidProductName
	}
	if sku == "" {
		return nil, ErrInvalidProductSKU
	}
	if price < 0 {
		return nil, ErrInvalidProductPrice
	}
	if !stock.Valid() {
		return nil, ErrInvalidStockStatus
	}

	return &Product{
		ID:           uuid.New(),
		Name:         name,
		SKU:          sku,
		Kind:         ProductKindSimple,
		RegularPrice: &price,
		StockStatus:  stock,
		Attributes:   make(map[string][]string),
	}, nil
}

// NewVariableProduct creates a variable product. Its price, stock and
// attribute values come from variations added with AddVariation; until
// at least one variation exists it matches no filter and contributes
// nothing to facet aggregates.
//
// Parameters:
//   - name: Name of the product (required)
//   - sku: Stock Keeping Unit identifier (required)
//
// Returns:
//   - *Product: newly created Product
//   - error: validation error if input is invalid
func NewVariableProduct(name, sku string) (*Product, error) {
	if name == "" {
		return nil, ErrInvalidProductName
	}
	if sku == "" {
		return nil, ErrInvalidProductSKU
	}

	return &Product{
		ID:         uuid.New(),
		Name:       name,
		SKU:        sku,
		Kind:       ProductKindVariable,
		Attributes: make(map[string][]string),
		Variations: make([]Variation, 0),
	}, nil
}

// AddVariation appends a variation to a variable product.
//
// Parameters:
//   - price: Variation price, nil if unpriced
//   - stock: Stock status (must be a known status)
//   - attributes: Dimension to term assignments for this variation
//
// Returns:
//   - error: ErrNotVariableProduct for simple products,
//     validation error for invalid input
func (p *Product) AddVariation(price *float64, stock StockStatus, attributes map[string][]string) error {
	if p.Kind != ProductKindVariable {
		return ErrNotVariableProduct
	}
	if price != nil && *price < 0 {
		return ErrInvalidProductPrice
	}
	if !stock.Valid() {
		return ErrInvalidStockStatus
	}

	terms := make(map[string][]string, len(attributes))
	for dimension, ts := range attributes {
		terms[dimension] = append([]string(nil), ts...)
	}

	p.Variations = append(p.Variations, Variation{
		ID:          uuid.New(),
		ProductID:   p.ID,
		Price:       price,
		StockStatus: stock,
		Attributes:  terms,
	})
	return nil
}

// AssignTerms assigns attribute terms to the product on a dimension.
// Terms already assigned on the dimension are kept; duplicates are ignored.
//
// Parameters:
//   - dimension: Attribute dimension name (e.g. "color")
//   - terms: Term identifiers to assign
func (p *Product) AssignTerms(dimension string, terms ...string) {
	if p.Attributes == nil {
		p.Attributes = make(map[string][]string)
	}
	assigned := p.Attributes[dimension]
	for _, term := range terms {
		if !containsString(assigned, term) {
			assigned = append(assigned, term)
		}
	}
	p.Attributes[dimension] = assigned
}

// SetRating records the product's review average, rounded to the
// nearest integer bucket.
//
// Parameters:
//   - average: Review score average (must round into [1,5])
//
// Returns:
//   - error: ErrInvalidRating if the rounded value falls outside [1,5]
func (p *Product) SetRating(average float64) error {
	rounded := int(math.Round(average))
	if rounded < 1 || rounded > 5 {
		return ErrInvalidRating
	}
	p.Rating = &rounded
	return nil
}

// EffectivePrices returns every price value the product exposes for
// matching and range aggregation: the product's own price for simple
// products, each variation's price for variable products. A variable
// product with no priced variations returns an empty slice.
//
// Returns:
//   - []float64: candidate price values, possibly empty
func (p *Product) EffectivePrices() []float64 {
	if p.Kind == ProductKindSimple {
		if p.RegularPrice == nil {
			return nil
		}
		return []float64{*p.RegularPrice}
	}

	prices := make([]float64, 0, len(p.Variations))
	for _, v := range p.Variations {
		if v.Price != nil {
			prices = append(prices, *v.Price)
		}
	}
	return prices
}

// EffectiveStockStatuses returns the distinct stock statuses the product
// exposes: its own status for simple products, the distinct statuses of
// its variations for variable products. Each status appears once
// regardless of how many variations carry it.
//
// Returns:
//   - []StockStatus: distinct statuses in order of first appearance
func (p *Product) EffectiveStockStatuses() []StockStatus {
	if p.Kind == ProductKindSimple {
		return []StockStatus{p.StockStatus}
	}

	seen := make(map[StockStatus]struct{}, 3)
	statuses := make([]StockStatus, 0, 3)
	for _, v := range p.Variations {
		if _, ok := seen[v.StockStatus]; ok {
			continue
		}
		seen[v.StockStatus] = struct{}{}
		statuses = append(statuses, v.StockStatus)
	}
	return statuses
}

// EffectiveTerms returns the distinct attribute terms the product exposes
// on a dimension: its own assignments for simple products, the union of
// variation assignments for variable products.
//
// Parameters:
//   - dimension: Attribute dimension name
//
// Returns:
//   - []string: distinct term identifiers, possibly empty
func (p *Product) EffectiveTerms(dimension string) []string {
	if p.Kind == ProductKindSimple {
		return distinctStrings(p.Attributes[dimension])
	}

	seen := make(map[string]struct{})
	terms := make([]string, 0)
	for _, v := range p.Variations {
		for _, term := range v.Attributes[dimension] {
			if _, ok := seen[term]; ok {
				continue
			}
			seen[term] = struct{}{}
			terms = append(terms, term)
		}
	}
	return terms
}

// EffectiveRating returns the product's rounded rating bucket. The second
// return is false for unreviewed products and for variable products with
// zero variations, which match no filter and contribute to no aggregate.
//
// Returns:
//   - int: rating bucket in [1,5], zero when absent
//   - bool: true if the product has an effective rating
func (p *Product) EffectiveRating() (int, bool) {
	if p.Rating == nil {
		return 0, false
	}
	if p.Kind == ProductKindVariable && len(p.Variations) == 0 {
		return 0, false
	}
	return *p.Rating, true
}

// containsString reports whether s is present in list.
func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

// distinctStrings returns list with duplicates removed,
// preserving first-appearance order.
func distinctStrings(list []string) []string {
	if len(list) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(list))
	out := make([]string, 0, len(list))
	for _, v := range list {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
