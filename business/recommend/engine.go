package recommend

import (
	"fmt"
	"sort"
	"strings"

	"herbalMart/domain"
)

// Engine is the rule-based scoring core. It holds only the weight table:
// every method is a pure function over the catalog snapshot it is given,
// so a single Engine is safe for concurrent use.
type Engine struct {
	weights Weights
}

func NewEngine(weights Weights) *Engine {
	return &Engine{weights: weights}
}

// Recommend scores every catalog product against the customer preferences
// and returns the top entries by score, descending. Products whose final
// score is zero or negative are excluded. Rules fire in a fixed order and
// append their reason in that order.
func (e *Engine) Recommend(
	catalog []domain.Product,
	prefs domain.UserPreferences,
	limit int,
) []domain.RecommendationScore {
	if limit <= 0 {
		limit = DefaultRecommendLimit
	}

	w := e.weights
	scored := make([]domain.RecommendationScore, 0, len(catalog))

	for _, product := range catalog {
		score := 0.0
		var reasons []string

		if containsString(prefs.Categories, product.Category) {
			score += w.CategoryMatch
			reasons = append(reasons, fmt.Sprintf("Matches your interest in %s", product.Category))
		}

		if prefs.PriceRange != nil {
			if product.Price >= prefs.PriceRange.Min && product.Price <= prefs.PriceRange.Max {
				score += w.PriceFit
				reasons = append(reasons, "Within your budget")
			}
		}

		if len(prefs.Concerns) > 0 {
			haystack := concernHaystack(product)
			var matched []string
			for _, concern := range prefs.Concerns {
				if strings.Contains(haystack, strings.ToLower(concern)) {
					matched = append(matched, concern)
				}
			}
			if len(matched) > 0 {
				score += w.ConcernMatch * float64(len(matched)) / float64(len(prefs.Concerns))
				reasons = append(reasons, fmt.Sprintf("Addresses your concern: %s", strings.Join(matched, ", ")))
			}
		}

		if product.Bestseller {
			score += w.Bestseller
			reasons = append(reasons, "Popular choice")
		}

		if product.Rating >= w.HighRatingFloor {
			score += w.HighRating
			reasons = append(reasons, "Highly rated by customers")
		}

		if product.Discount >= w.DeepDiscountFloor {
			score += w.DeepDiscount
			reasons = append(reasons, fmt.Sprintf("Great deal - %d%% off", product.Discount))
		}

		// stock availability contributes points but no reason text
		if product.InStock {
			score += w.InStock
		}

		if prefs.Gender == domain.GenderFemale && product.Category == "Women's Health" {
			score += w.WomensHealth
			reasons = append(reasons, "Specially formulated for women")
		}

		if containsString(prefs.PreviousPurchases, product.ID) {
			if product.SubscriptionAvailable {
				score += w.Subscription
				reasons = append(reasons, "Available for subscription")
			} else {
				// already bought a one-time item; can push the total below
				// zero and drop the product entirely
				score -= w.RepurchasePenalty
			}
		}

		if containsString(prefs.ViewedProducts, product.ID) {
			score += w.ViewedBoost
			reasons = append(reasons, "You showed interest in this")
		}

		if score > 0 {
			scored = append(scored, domain.RecommendationScore{
				Product: product,
				Score:   score,
				Reasons: reasons,
			})
		}
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	if len(scored) > limit {
		scored = scored[:limit]
	}
	return scored
}
