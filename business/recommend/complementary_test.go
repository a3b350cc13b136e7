package recommend

import (
	"testing"

	"herbalMart/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func catalogProduct(id, category, subcategory string) domain.Product {
	return domain.Product{
		ID:          id,
		Name:        id,
		Category:    category,
		Subcategory: subcategory,
		Price:       300,
		InStock:     true,
	}
}

func TestComplementaryProducts_HairOilRule(t *testing.T) {
	engine := newTestEngine()

	target := catalogProduct("oil", "Hair Care", "Hair Oils")
	catalog := []domain.Product{
		target,
		catalogProduct("shampoo", "Hair Care", "Shampoos"),
		catalogProduct("mask", "Hair Care", "Hair Masks"),
		catalogProduct("serum", "Hair Care", "Serums"),
		catalogProduct("toner", "Skin Care", "Toners"),
	}

	out := engine.ComplementaryProducts(target, catalog, 2)
	require.Len(t, out, 2)
	assert.Equal(t, "shampoo", out[0].ID)
	assert.Equal(t, "mask", out[1].ID)
}

func TestComplementaryProducts_ImmunityRule(t *testing.T) {
	engine := newTestEngine()

	target := catalogProduct("chyawanprash", "Immunity Boosters", "Tonics")
	catalog := []domain.Product{
		target,
		catalogProduct("triphala", "Digestive Health", "Powders"),
		catalogProduct("isabgol", "Digestive Health", "Fibers"),
		catalogProduct("giloy", "Immunity Boosters", "Juices"),
	}

	out := engine.ComplementaryProducts(target, catalog, 2)
	require.Len(t, out, 2)
	assert.Equal(t, "triphala", out[0].ID)
	assert.Equal(t, "isabgol", out[1].ID)
}

func TestComplementaryProducts_ExcludesTarget(t *testing.T) {
	engine := newTestEngine()

	target := catalogProduct("wash", "Skin Care", "Face Wash")
	catalog := []domain.Product{
		target,
		catalogProduct("toner", "Skin Care", "Toners"),
	}

	out := engine.ComplementaryProducts(target, catalog, 4)
	for _, p := range out {
		assert.NotEqual(t, target.ID, p.ID)
	}
}

func TestComplementaryProducts_PadsWithSimilar(t *testing.T) {
	engine := newTestEngine()

	target := catalogProduct("oil", "Hair Care", "Hair Oils")
	shampoo := catalogProduct("shampoo", "Hair Care", "Shampoos")
	otherOil := catalogProduct("oil2", "Hair Care", "Hair Oils")
	catalog := []domain.Product{target, shampoo, otherOil}

	// the rule yields only the shampoo; the other oil outranks it on
	// similarity (same subcategory) and fills the second slot
	out := engine.ComplementaryProducts(target, catalog, 2)
	require.Len(t, out, 2)
	assert.Equal(t, "shampoo", out[0].ID)
	assert.Equal(t, "oil2", out[1].ID)
}

func TestComplementaryProducts_PaddingCanUnderfill(t *testing.T) {
	engine := newTestEngine()

	target := catalogProduct("oil", "Hair Care", "Hair Oils")
	shampoo := catalogProduct("shampoo", "Hair Care", "Shampoos")
	catalog := []domain.Product{target, shampoo}

	// the similar-products pad is asked for limit-len candidates and the
	// only one duplicates the rule output, so the list stays short
	out := engine.ComplementaryProducts(target, catalog, 2)
	require.Len(t, out, 1)
	assert.Equal(t, "shampoo", out[0].ID)
}

func TestComplementaryProducts_TruncatesToLimit(t *testing.T) {
	engine := newTestEngine()

	target := catalogProduct("oil", "Hair Care", "Hair Oils")
	catalog := []domain.Product{
		target,
		catalogProduct("s1", "Hair Care", "Shampoos"),
		catalogProduct("s2", "Hair Care", "Shampoos"),
		catalogProduct("m1", "Hair Care", "Hair Masks"),
		catalogProduct("m2", "Hair Care", "Hair Masks"),
	}

	out := engine.ComplementaryProducts(target, catalog, 3)
	assert.Len(t, out, 3)
}

func TestBundleSuggestions_CategoryBundleRequiresExactlyTwoBestsellers(t *testing.T) {
	engine := newTestEngine()

	target := catalogProduct("oil", "Hair Care", "Hair Oils")
	target.Price = 500

	lone := catalogProduct("b1", "Hair Care", "Shampoos")
	lone.Bestseller = true
	filler := catalogProduct("f1", "Hair Care", "Hair Oils")

	// one bestseller only: no category bundle; the complementary pair
	// still forms, so exactly one 12% bundle is emitted
	bundles := engine.BundleSuggestions(target, []domain.Product{target, lone, filler})
	require.Len(t, bundles, 1)
	assert.Equal(t, 132.0, bundles[0].Savings) // round(1100 * 0.12)
}

func TestBundleSuggestions_BothBundles(t *testing.T) {
	engine := newTestEngine()

	target := catalogProduct("oil", "Hair Care", "Hair Oils")
	target.Price = 500

	best1 := catalogProduct("best1", "Hair Care", "Shampoos")
	best1.Bestseller = true
	best1.Rating = 4.5
	best1.Price = 400

	best2 := catalogProduct("best2", "Hair Care", "Hair Masks")
	best2.Bestseller = true
	best2.Rating = 4.9
	best2.Price = 600

	catalog := []domain.Product{target, best1, best2}

	bundles := engine.BundleSuggestions(target, catalog)
	require.Len(t, bundles, 2)

	// category bundle: higher rated bestseller first, 15% savings
	category := bundles[0]
	require.Len(t, category.Products, 3)
	assert.Equal(t, "oil", category.Products[0].ID)
	assert.Equal(t, "best2", category.Products[1].ID)
	assert.Equal(t, "best1", category.Products[2].ID)
	assert.Equal(t, 225.0, category.Savings) // round(1500 * 0.15)

	// complementary bundle: rule candidates in catalog order, 12% savings
	complementary := bundles[1]
	require.Len(t, complementary.Products, 3)
	assert.Equal(t, "oil", complementary.Products[0].ID)
	assert.Equal(t, 180.0, complementary.Savings) // round(1500 * 0.12)
}

func TestBundleSuggestions_IgnoresOutOfStock(t *testing.T) {
	engine := newTestEngine()

	target := catalogProduct("oil", "Hair Care", "Hair Oils")

	best1 := catalogProduct("best1", "Hair Care", "Shampoos")
	best1.Bestseller = true
	best2 := catalogProduct("best2", "Hair Care", "Hair Masks")
	best2.Bestseller = true
	best2.InStock = false

	// the out-of-stock bestseller does not count toward the exact-2 gate,
	// so only the complementary bundle survives (that path does not filter
	// on stock)
	bundles := engine.BundleSuggestions(target, []domain.Product{target, best1, best2})
	require.Len(t, bundles, 1)
	assert.Equal(t, 108.0, bundles[0].Savings) // round(900 * 0.12)
}

func TestBundleSuggestions_NoPartialBundles(t *testing.T) {
	engine := newTestEngine()

	target := catalogProduct("oil", "Hair Care", "Hair Oils")
	only := catalogProduct("shampoo", "Hair Care", "Shampoos")

	// a single candidate cannot form either bundle
	bundles := engine.BundleSuggestions(target, []domain.Product{target, only})
	assert.Empty(t, bundles)
}
