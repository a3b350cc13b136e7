package recommend

import (
	"strings"

	"herbalMart/domain"
)

// SmartSearch ranks catalog products against a free-text query. Matching is
// case-insensitive substring containment; every matching tag, benefit and
// ingredient adds its weight again. Products that match nothing are
// excluded.
func (e *Engine) SmartSearch(
	catalog []domain.Product,
	query string,
	limit int,
) []domain.Product {
	if limit <= 0 {
		limit = DefaultSearchLimit
	}

	w := e.weights
	queryLower := strings.ToLower(query)
	scored := make([]scoredProduct, 0, len(catalog))

	for _, product := range catalog {
		score := 0.0

		nameLower := strings.ToLower(product.Name)
		if nameLower == queryLower {
			score += w.ExactName
		}

		// stacks on top of an exact match
		if strings.Contains(nameLower, queryLower) {
			score += w.NameContains
		}

		if containsFold(product.Category, queryLower) {
			score += w.CategoryContains
		}

		for _, tag := range product.Tags {
			if containsFold(tag, queryLower) {
				score += w.TagContains
			}
		}

		for _, benefit := range product.Benefits {
			if containsFold(benefit, queryLower) {
				score += w.BenefitContains
			}
		}

		if containsFold(product.Description, queryLower) {
			score += w.DescContains
		}

		for _, ingredient := range product.Ingredients {
			if containsFold(ingredient, queryLower) {
				score += w.IngredientContains
			}
		}

		if score > 0 {
			scored = append(scored, scoredProduct{product: product, score: score})
		}
	}

	return rankProducts(scored, limit)
}
