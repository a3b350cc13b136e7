package recommend

import (
	"math"

	"herbalMart/domain"
)

// SimilarProducts ranks the catalog by similarity to the target product.
// The target itself is excluded; everything else is kept, even at score 0,
// so small catalogs still fill the slot.
func (e *Engine) SimilarProducts(
	target domain.Product,
	catalog []domain.Product,
	limit int,
) []domain.Product {
	if limit <= 0 {
		limit = DefaultSimilarLimit
	}

	w := e.weights
	scored := make([]scoredProduct, 0, len(catalog))

	for _, product := range catalog {
		if product.ID == target.ID {
			continue
		}

		score := 0.0

		if product.Category == target.Category {
			score += w.SameCategory
		}

		if product.Subcategory == target.Subcategory {
			score += w.SameSubcategory
		}

		// linear decay to zero at the window edge; the edge itself
		// contributes nothing
		priceDiff := math.Abs(product.Price - target.Price)
		if priceDiff < w.PriceWindow {
			score += w.PriceProximity * (1 - priceDiff/w.PriceWindow)
		}

		if shared := sharedTagCount(product, target); shared > 0 {
			score += w.SharedTags * float64(shared) / float64(len(target.Tags))
		}

		scored = append(scored, scoredProduct{product: product, score: score})
	}

	return rankProducts(scored, limit)
}
