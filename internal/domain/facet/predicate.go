package facet

import "github.com/hapkiduki/facet-go/internal/domain/entity"

// matches evaluates every dimension of the filter context except the
// excluded one, ANDed together. Excluding an attribute dimension skips
// exactly that dimension's term constraint; other attribute dimensions
// still apply.
//
// Variable products match through their variations with any-variation
// semantics: a product matches a stock or attribute constraint when at
// least one of its variations does. A variable product with zero
// variations exposes no effective values and therefore fails every
// non-empty constraint.
func (c *FilterContext) matches(p *entity.Product, exclude Dimension) bool {
	if exclude.kind != dimPrice && !c.matchesPrice(p) {
		return false
	}
	if exclude.kind != dimStock && !c.matchesStock(p) {
		return false
	}
	if exclude.kind != dimRating && !c.matchesRating(p) {
		return false
	}

	for dimension, requested := range c.attributes {
		if exclude.kind == dimAttribute && exclude.attribute == dimension {
			continue
		}
		if !intersectsTerms(p.EffectiveTerms(dimension), requested) {
			return false
		}
	}
	return true
}

// matchesPrice is true when no price bound is set, or when at least one
// effective price falls within the inclusive bounds.
func (c *FilterContext) matchesPrice(p *entity.Product) bool {
	if !c.HasPriceFilter() {
		return true
	}
	for _, price := range p.EffectivePrices() {
		if c.minPrice != nil && price < *c.minPrice {
			continue
		}
		if c.maxPrice != nil && price > *c.maxPrice {
			continue
		}
		return true
	}
	return false
}

// matchesStock is true when no stock filter is set, or when the product's
// effective stock statuses intersect the requested set.
func (c *FilterContext) matchesStock(p *entity.Product) bool {
	if len(c.stockStatuses) == 0 {
		return true
	}
	for _, status := range p.EffectiveStockStatuses() {
		if _, ok := c.stockStatuses[status]; ok {
			return true
		}
	}
	return false
}

// matchesRating is true when no rating filter is set, or when the product
// has an effective rating that is a member of the requested set.
func (c *FilterContext) matchesRating(p *entity.Product) bool {
	if len(c.ratings) == 0 {
		return true
	}
	rating, ok := p.EffectiveRating()
	if !ok {
		return false
	}
	_, member := c.ratings[rating]
	return member
}

// intersectsTerms reports whether any effective term is in the requested set.
func intersectsTerms(effective []string, requested map[string]struct{}) bool {
	for _, term := range effective {
		if _, ok := requested[term]; ok {
			return true
		}
	}
	return false
}
