package facet

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hapkiduki/facet-go/internal/domain/entity"
)

// fixtureProduct is a rated, in-stock, red simple product priced at 50.
func fixtureProduct(t *testing.T) *entity.Product {
	t.Helper()
	p, err := entity.NewSimpleProduct("fixture", "fix-1", 50, entity.StockStatusInStock)
	require.NoError(t, err)
	require.NoError(t, p.SetRating(4))
	p.AssignTerms("color", "red")
	return p
}

// failingParams returns, per dimension, a filter selection the fixture
// product does NOT satisfy. Used to verify each exclusion skips exactly
// its own dimension.
func failingParams() map[string]Params {
	return map[string]Params{
		"price":  {MinPrice: floatPtr(100)},
		"stock":  {StockStatuses: []entity.StockStatus{entity.StockStatusOutOfStock}},
		"rating": {Ratings: []int{1}},
		"color":  {Attributes: map[string][]string{"color": {"blue"}}},
	}
}

// dimensionOf maps the test table key to a Dimension identity.
func dimensionOf(name string) Dimension {
	switch name {
	case "price":
		return DimensionPrice
	case "stock":
		return DimensionStock
	case "rating":
		return DimensionRating
	default:
		return AttributeDimension(name)
	}
}

func TestMatchesExcludesExactlyOneDimension(t *testing.T) {
	p := fixtureProduct(t)

	for name, params := range failingParams() {
		t.Run(name, func(t *testing.T) {
			fc, err := NewFilterContext(params)
			require.NoError(t, err)

			// The failing filter is invisible to its own facet...
			assert.True(t, fc.matches(p, dimensionOf(name)),
				"excluding %s must ignore the %s constraint", name, name)

			// ...but visible to every other facet.
			for other := range failingParams() {
				if other == name {
					continue
				}
				assert.False(t, fc.matches(p, dimensionOf(other)),
					"excluding %s must still apply the %s constraint", other, name)
			}
		})
	}
}

func TestMatchesTogglingExcludedFilterIsInert(t *testing.T) {
	p := fixtureProduct(t)

	// With the price dimension excluded, any price filter value gives
	// the same verdict as no price filter at all.
	without, err := NewFilterContext(Params{})
	require.NoError(t, err)
	with, err := NewFilterContext(Params{MinPrice: floatPtr(999)})
	require.NoError(t, err)

	assert.Equal(t,
		without.matches(p, DimensionPrice),
		with.matches(p, DimensionPrice),
	)
}

func TestMatchesCombinesRemainingFilters(t *testing.T) {
	p := fixtureProduct(t)

	// Price excluded, but the stock constraint still fails the product.
	fc, err := NewFilterContext(Params{
		MinPrice:      floatPtr(999),
		StockStatuses: []entity.StockStatus{entity.StockStatusOnBackorder},
	})
	require.NoError(t, err)

	assert.False(t, fc.matches(p, DimensionPrice))
}

func TestMatchesAttributeExclusionKeepsOtherAttributeDimensions(t *testing.T) {
	p := fixtureProduct(t)
	p.AssignTerms("size", "small")

	fc, err := NewFilterContext(Params{
		Attributes: map[string][]string{
			"color": {"blue"},  // fails
			"size":  {"small"}, // passes
		},
	})
	require.NoError(t, err)

	// Excluding color skips only the color constraint.
	assert.True(t, fc.matches(p, AttributeDimension("color")))
	// Excluding size still applies the failing color constraint.
	assert.False(t, fc.matches(p, AttributeDimension("size")))
}

func TestMatchesVariableProductSemantics(t *testing.T) {
	t.Run("any variation satisfies a stock constraint", func(t *testing.T) {
		p := variableProduct(t, "v",
			entity.Variation{Price: floatPtr(10), StockStatus: entity.StockStatusOutOfStock},
			entity.Variation{Price: floatPtr(20), StockStatus: entity.StockStatusInStock},
		)

		fc, err := NewFilterContext(Params{
			StockStatuses: []entity.StockStatus{entity.StockStatusInStock},
		})
		require.NoError(t, err)

		assert.True(t, fc.matches(p, DimensionPrice))
	})

	t.Run("zero variations fail every non-empty constraint", func(t *testing.T) {
		p := variableProduct(t, "empty")
		require.NoError(t, p.SetRating(5))

		cases := map[string]struct {
			params  Params
			exclude Dimension
		}{
			"price":     {Params{MinPrice: floatPtr(0)}, DimensionRating},
			"stock":     {Params{StockStatuses: []entity.StockStatus{entity.StockStatusInStock}}, DimensionRating},
			"rating":    {Params{Ratings: []int{5}}, DimensionPrice},
			"attribute": {Params{Attributes: map[string][]string{"color": {"red"}}}, DimensionRating},
		}
		for name, tc := range cases {
			fc, err := NewFilterContext(tc.params)
			require.NoError(t, err)
			assert.False(t, fc.matches(p, tc.exclude),
				"zero-variation product must fail the %s constraint", name)
		}
	})

	t.Run("zero variations pass an empty context", func(t *testing.T) {
		p := variableProduct(t, "empty")

		fc, err := NewFilterContext(Params{})
		require.NoError(t, err)
		assert.True(t, fc.matches(p, DimensionPrice))
	})
}
