package recommend

import (
	"math"
	"strings"

	"herbalMart/domain"
)

// TrendingProducts ranks in-stock products by rating weighted with review
// volume: rating * ln(reviewCount + 1).
func (e *Engine) TrendingProducts(catalog []domain.Product, limit int) []domain.Product {
	if limit <= 0 {
		limit = DefaultTrendingLimit
	}

	scored := make([]scoredProduct, 0, len(catalog))
	for _, product := range catalog {
		if !product.InStock {
			continue
		}
		scored = append(scored, scoredProduct{
			product: product,
			score:   product.Rating * math.Log(float64(product.ReviewCount)+1),
		})
	}

	return rankProducts(scored, limit)
}

// ProductsByConcern filters the catalog to products whose tags, benefits
// and descriptions mention the concern. Pure filter, catalog order kept.
func (e *Engine) ProductsByConcern(catalog []domain.Product, concern string) []domain.Product {
	concernLower := strings.ToLower(concern)

	var out []domain.Product
	for _, product := range catalog {
		parts := make([]string, 0, len(product.Tags)+len(product.Benefits)+2)
		parts = append(parts, product.Tags...)
		parts = append(parts, product.Benefits...)
		parts = append(parts, product.Description, product.LongDescription)

		if strings.Contains(strings.ToLower(strings.Join(parts, " ")), concernLower) {
			out = append(out, product)
		}
	}
	return out
}
