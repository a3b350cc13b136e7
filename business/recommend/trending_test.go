package recommend

import (
	"testing"

	"herbalMart/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrendingProducts_WeighsReviewVolume(t *testing.T) {
	engine := newTestEngine()

	// 4.0 * ln(1001) ~ 27.6 beats 5.0 * ln(11) ~ 12.0
	manyReviews := domain.Product{ID: "many", Rating: 4.0, ReviewCount: 1000, InStock: true}
	fewReviews := domain.Product{ID: "few", Rating: 5.0, ReviewCount: 10, InStock: true}

	trending := engine.TrendingProducts([]domain.Product{fewReviews, manyReviews}, 0)
	require.Len(t, trending, 2)
	assert.Equal(t, "many", trending[0].ID)
	assert.Equal(t, "few", trending[1].ID)
}

func TestTrendingProducts_FiltersOutOfStock(t *testing.T) {
	engine := newTestEngine()

	sold := domain.Product{ID: "sold", Rating: 5.0, ReviewCount: 9999, InStock: false}
	available := domain.Product{ID: "avail", Rating: 4.0, ReviewCount: 5, InStock: true}

	trending := engine.TrendingProducts([]domain.Product{sold, available}, 0)
	require.Len(t, trending, 1)
	assert.Equal(t, "avail", trending[0].ID)
}

func TestTrendingProducts_DefaultLimit(t *testing.T) {
	engine := newTestEngine()

	catalog := make([]domain.Product, 0, 12)
	for i := 0; i < 12; i++ {
		catalog = append(catalog, domain.Product{
			ID:          string(rune('a' + i)),
			Rating:      4.0,
			ReviewCount: i,
			InStock:     true,
		})
	}

	trending := engine.TrendingProducts(catalog, 0)
	assert.Len(t, trending, DefaultTrendingLimit)
}

func TestProductsByConcern_MatchesAllTextFields(t *testing.T) {
	engine := newTestEngine()

	byTag := domain.Product{ID: "tag", Tags: []string{"immunity booster"}}
	byBenefit := domain.Product{ID: "benefit", Benefits: []string{"Builds immunity naturally"}}
	byDescription := domain.Product{ID: "desc", Description: "Supports immunity through winter"}
	byLongDescription := domain.Product{ID: "long", LongDescription: "A classic Immunity tonic"}
	unrelated := domain.Product{ID: "none", Description: "For shiny hair"}

	catalog := []domain.Product{byTag, byBenefit, byDescription, byLongDescription, unrelated}

	out := engine.ProductsByConcern(catalog, "immunity")
	require.Len(t, out, 4)

	// pure filter: catalog order preserved
	assert.Equal(t, "tag", out[0].ID)
	assert.Equal(t, "benefit", out[1].ID)
	assert.Equal(t, "desc", out[2].ID)
	assert.Equal(t, "long", out[3].ID)
}

func TestProductsByConcern_EmptyCatalog(t *testing.T) {
	engine := newTestEngine()

	assert.Empty(t, engine.ProductsByConcern(nil, "immunity"))
}
