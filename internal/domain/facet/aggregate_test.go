package facet

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hapkiduki/facet-go/internal/domain/entity"
)

// floatPtr returns a pointer to v.
func floatPtr(v float64) *float64 {
	return &v
}

// simpleProduct builds a simple product for tests, failing the test on
// invalid fixture input.
func simpleProduct(t *testing.T, sku string, price float64, stock entity.StockStatus) *entity.Product {
	t.Helper()
	p, err := entity.NewSimpleProduct("product "+sku, sku, price, stock)
	require.NoError(t, err)
	return p
}

// variableProduct builds a variable product with the given variations.
func variableProduct(t *testing.T, sku string, variations ...entity.Variation) *entity.Product {
	t.Helper()
	p, err := entity.NewVariableProduct("product "+sku, sku)
	require.NoError(t, err)
	for _, v := range variations {
		require.NoError(t, p.AddVariation(v.Price, v.StockStatus, v.Attributes))
	}
	return p
}

// mustContext builds a filter context, failing the test on invalid input.
func mustContext(t *testing.T, params Params) *FilterContext {
	t.Helper()
	fc, err := NewFilterContext(params)
	require.NoError(t, err)
	return fc
}

func TestFilteredPriceRange(t *testing.T) {
	t.Run("spans all effective prices with no filters", func(t *testing.T) {
		snap := NewSnapshot([]*entity.Product{
			simpleProduct(t, "a", 15, entity.StockStatusInStock),
			simpleProduct(t, "b", 42.50, entity.StockStatusInStock),
			simpleProduct(t, "c", 7.99, entity.StockStatusOutOfStock),
		})

		r, err := snap.FilteredPriceRange(mustContext(t, Params{}))
		require.NoError(t, err)
		assert.Equal(t, 7.99, r.Min)
		assert.Equal(t, 42.50, r.Max)
	})

	t.Run("variable product contributes every variation price", func(t *testing.T) {
		snap := NewSnapshot([]*entity.Product{
			variableProduct(t, "v",
				entity.Variation{Price: floatPtr(10), StockStatus: entity.StockStatusInStock},
				entity.Variation{Price: floatPtr(25), StockStatus: entity.StockStatusInStock},
			),
		})

		r, err := snap.FilteredPriceRange(mustContext(t, Params{}))
		require.NoError(t, err)
		assert.Equal(t, 10.0, r.Min)
		assert.Equal(t, 25.0, r.Max)
	})

	t.Run("ignores the price filter itself", func(t *testing.T) {
		snap := NewSnapshot([]*entity.Product{
			simpleProduct(t, "a", 10, entity.StockStatusInStock),
			simpleProduct(t, "b", 90, entity.StockStatusInStock),
		})

		unfiltered, err := snap.FilteredPriceRange(mustContext(t, Params{}))
		require.NoError(t, err)

		bounded, err := snap.FilteredPriceRange(mustContext(t, Params{
			MinPrice: floatPtr(50),
			MaxPrice: floatPtr(60),
		}))
		require.NoError(t, err)

		assert.True(t, bounded.Equals(unfiltered), "price filter must not influence its own range")
	})

	t.Run("honors other filters", func(t *testing.T) {
		snap := NewSnapshot([]*entity.Product{
			simpleProduct(t, "a", 10, entity.StockStatusInStock),
			simpleProduct(t, "b", 90, entity.StockStatusOutOfStock),
		})

		r, err := snap.FilteredPriceRange(mustContext(t, Params{
			StockStatuses: []entity.StockStatus{entity.StockStatusInStock},
		}))
		require.NoError(t, err)
		assert.Equal(t, 10.0, r.Min)
		assert.Equal(t, 10.0, r.Max)
	})

	t.Run("returns ErrNoMatch on empty catalog", func(t *testing.T) {
		snap := NewSnapshot(nil)

		_, err := snap.FilteredPriceRange(mustContext(t, Params{}))
		assert.ErrorIs(t, err, ErrNoMatch)
	})

	t.Run("returns ErrNoMatch when survivors expose no prices", func(t *testing.T) {
		// A variable product with zero variations yields no price values.
		snap := NewSnapshot([]*entity.Product{
			variableProduct(t, "empty"),
		})

		_, err := snap.FilteredPriceRange(mustContext(t, Params{}))
		assert.ErrorIs(t, err, ErrNoMatch)
	})

	t.Run("tightening another filter never widens the range", func(t *testing.T) {
		snap := NewSnapshot([]*entity.Product{
			simpleProduct(t, "a", 5, entity.StockStatusInStock),
			simpleProduct(t, "b", 50, entity.StockStatusOnBackorder),
			simpleProduct(t, "c", 500, entity.StockStatusOutOfStock),
		})

		wide, err := snap.FilteredPriceRange(mustContext(t, Params{}))
		require.NoError(t, err)

		narrow, err := snap.FilteredPriceRange(mustContext(t, Params{
			StockStatuses: []entity.StockStatus{entity.StockStatusInStock, entity.StockStatusOnBackorder},
		}))
		require.NoError(t, err)

		assert.True(t, narrow.Within(wide))
	})
}

func TestStockStatusCounts(t *testing.T) {
	t.Run("seeds every known status with zero", func(t *testing.T) {
		snap := NewSnapshot(nil)

		counts := snap.StockStatusCounts(mustContext(t, Params{}))
		assert.Equal(t, map[entity.StockStatus]int{
			entity.StockStatusInStock:     0,
			entity.StockStatusOutOfStock:  0,
			entity.StockStatusOnBackorder: 0,
		}, counts)
	})

	t.Run("counts each distinct status once per product", func(t *testing.T) {
		// Two in-stock variations plus one out-of-stock: the product
		// increments in_stock once and out_of_stock once.
		straddler := variableProduct(t, "v",
			entity.Variation{Price: floatPtr(10), StockStatus: entity.StockStatusInStock},
			entity.Variation{Price: floatPtr(12), StockStatus: entity.StockStatusInStock},
			entity.Variation{Price: floatPtr(14), StockStatus: entity.StockStatusOutOfStock},
		)
		snap := NewSnapshot([]*entity.Product{
			straddler,
			simpleProduct(t, "s", 20, entity.StockStatusInStock),
		})

		counts := snap.StockStatusCounts(mustContext(t, Params{}))
		assert.Equal(t, 2, counts[entity.StockStatusInStock])
		assert.Equal(t, 1, counts[entity.StockStatusOutOfStock])
		assert.Equal(t, 0, counts[entity.StockStatusOnBackorder])
	})

	t.Run("is identical with and without a stock filter", func(t *testing.T) {
		snap := NewSnapshot([]*entity.Product{
			simpleProduct(t, "a", 10, entity.StockStatusInStock),
			simpleProduct(t, "b", 20, entity.StockStatusOutOfStock),
			simpleProduct(t, "c", 30, entity.StockStatusOnBackorder),
		})

		unfiltered := snap.StockStatusCounts(mustContext(t, Params{}))
		filtered := snap.StockStatusCounts(mustContext(t, Params{
			StockStatuses: []entity.StockStatus{entity.StockStatusInStock},
		}))

		assert.Equal(t, unfiltered, filtered, "the stock filter must not influence its own counts")
	})

	t.Run("honors the price filter", func(t *testing.T) {
		snap := NewSnapshot([]*entity.Product{
			simpleProduct(t, "a", 10, entity.StockStatusInStock),
			simpleProduct(t, "b", 200, entity.StockStatusOutOfStock),
		})

		counts := snap.StockStatusCounts(mustContext(t, Params{
			MaxPrice: floatPtr(100),
		}))
		assert.Equal(t, 1, counts[entity.StockStatusInStock])
		assert.Equal(t, 0, counts[entity.StockStatusOutOfStock])
	})

	t.Run("survivors equal contributing products without straddlers", func(t *testing.T) {
		products := []*entity.Product{
			simpleProduct(t, "a", 10, entity.StockStatusInStock),
			simpleProduct(t, "b", 20, entity.StockStatusInStock),
			simpleProduct(t, "c", 30, entity.StockStatusOutOfStock),
		}
		snap := NewSnapshot(products)

		counts := snap.StockStatusCounts(mustContext(t, Params{}))
		total := 0
		for _, n := range counts {
			total += n
		}
		assert.Equal(t, len(products), total)
	})
}

func TestRatingCounts(t *testing.T) {
	t.Run("buckets rated products, omits unrated and empty buckets", func(t *testing.T) {
		rated5a := simpleProduct(t, "a", 10, entity.StockStatusInStock)
		require.NoError(t, rated5a.SetRating(5))
		rated3 := simpleProduct(t, "b", 10, entity.StockStatusInStock)
		require.NoError(t, rated3.SetRating(3))
		unrated := simpleProduct(t, "c", 10, entity.StockStatusInStock)
		rated5b := simpleProduct(t, "d", 10, entity.StockStatusInStock)
		require.NoError(t, rated5b.SetRating(5))

		snap := NewSnapshot([]*entity.Product{rated5a, rated3, unrated, rated5b})

		counts := snap.RatingCounts(mustContext(t, Params{}))
		assert.Equal(t, map[int]int{5: 2, 3: 1}, counts)
	})

	t.Run("ignores the rating filter itself", func(t *testing.T) {
		rated4 := simpleProduct(t, "a", 10, entity.StockStatusInStock)
		require.NoError(t, rated4.SetRating(4))
		rated2 := simpleProduct(t, "b", 10, entity.StockStatusInStock)
		require.NoError(t, rated2.SetRating(2))

		snap := NewSnapshot([]*entity.Product{rated4, rated2})

		counts := snap.RatingCounts(mustContext(t, Params{Ratings: []int{4}}))
		assert.Equal(t, map[int]int{4: 1, 2: 1}, counts)
	})

	t.Run("empty catalog yields an empty map", func(t *testing.T) {
		snap := NewSnapshot(nil)
		assert.Empty(t, snap.RatingCounts(mustContext(t, Params{})))
	})
}

func TestAttributeCounts(t *testing.T) {
	t.Run("counts terms of surviving products only", func(t *testing.T) {
		red1 := simpleProduct(t, "a", 10, entity.StockStatusInStock)
		red1.AssignTerms("color", "red")
		green := simpleProduct(t, "b", 20, entity.StockStatusInStock)
		green.AssignTerms("color", "green")
		red2 := simpleProduct(t, "c", 30, entity.StockStatusInStock)
		red2.AssignTerms("color", "red")
		blue := simpleProduct(t, "d", 999, entity.StockStatusInStock)
		blue.AssignTerms("color", "blue")

		snap := NewSnapshot([]*entity.Product{red1, green, red2, blue})

		counts, err := snap.AttributeCounts(mustContext(t, Params{
			MaxPrice: floatPtr(100),
		}), "color")
		require.NoError(t, err)
		assert.Equal(t, map[string]int{"red": 2, "green": 1}, counts)
	})

	t.Run("variable product counts each distinct term once", func(t *testing.T) {
		// Three variations all tagged "red": the bucket gains exactly 1.
		p := variableProduct(t, "v",
			entity.Variation{Price: floatPtr(10), StockStatus: entity.StockStatusInStock, Attributes: map[string][]string{"color": {"red"}}},
			entity.Variation{Price: floatPtr(11), StockStatus: entity.StockStatusInStock, Attributes: map[string][]string{"color": {"red"}}},
			entity.Variation{Price: floatPtr(12), StockStatus: entity.StockStatusInStock, Attributes: map[string][]string{"color": {"red", "blue"}}},
		)
		snap := NewSnapshot([]*entity.Product{p})

		counts, err := snap.AttributeCounts(mustContext(t, Params{}), "color")
		require.NoError(t, err)
		assert.Equal(t, map[string]int{"red": 1, "blue": 1}, counts)
	})

	t.Run("excludes only its own dimension", func(t *testing.T) {
		redSmall := simpleProduct(t, "a", 10, entity.StockStatusInStock)
		redSmall.AssignTerms("color", "red")
		redSmall.AssignTerms("size", "small")
		blueLarge := simpleProduct(t, "b", 10, entity.StockStatusInStock)
		blueLarge.AssignTerms("color", "blue")
		blueLarge.AssignTerms("size", "large")

		snap := NewSnapshot([]*entity.Product{redSmall, blueLarge})

		fc := mustContext(t, Params{Attributes: map[string][]string{
			"color": {"red"},
			"size":  {"large"},
		}})

		// The color facet ignores the color filter but still applies the
		// size filter, so only the large (blue) product survives.
		colorCounts, err := snap.AttributeCounts(fc, "color")
		require.NoError(t, err)
		assert.Equal(t, map[string]int{"blue": 1}, colorCounts)

		sizeCounts, err := snap.AttributeCounts(fc, "size")
		require.NoError(t, err)
		assert.Equal(t, map[string]int{"small": 1}, sizeCounts)
	})

	t.Run("fails fast on an unknown dimension", func(t *testing.T) {
		snap := NewSnapshot([]*entity.Product{
			simpleProduct(t, "a", 10, entity.StockStatusInStock),
		}, "color")

		_, err := snap.AttributeCounts(mustContext(t, Params{}), "material")
		assert.ErrorIs(t, err, ErrInvalidDimension)
	})

	t.Run("declared dimension with no tagged products yields empty counts", func(t *testing.T) {
		snap := NewSnapshot(nil, "color")

		counts, err := snap.AttributeCounts(mustContext(t, Params{}), "color")
		require.NoError(t, err)
		assert.Empty(t, counts)
	})
}
