package recommend

import (
	"math"
	"sort"

	"herbalMart/domain"
)

// complementaryRule maps a target's classification to the categories that
// pair with it. Rules are checked in order and all matching rules
// contribute candidates.
type complementaryRule struct {
	targetSubcategory string
	targetCategory    string
	category          string
	subcategories     []string
}

var complementaryRules = []complementaryRule{
	{targetSubcategory: "Hair Oils", category: "Hair Care", subcategories: []string{"Shampoos", "Hair Masks"}},
	{targetSubcategory: "Face Wash", category: "Skin Care", subcategories: []string{"Toners", "Face Creams"}},
	{targetCategory: "Immunity Boosters", category: "Digestive Health"},
}

func (r complementaryRule) applies(target domain.Product) bool {
	if r.targetSubcategory != "" {
		return target.Subcategory == r.targetSubcategory
	}
	return target.Category == r.targetCategory
}

func (r complementaryRule) matches(p domain.Product) bool {
	if p.Category != r.category {
		return false
	}
	if len(r.subcategories) == 0 {
		return true
	}
	return containsString(r.subcategories, p.Subcategory)
}

// ComplementaryProducts suggests products that go well with the target,
// driven by the rule table above. When the rules yield fewer than limit
// candidates the list is padded with similar products, deduplicated by id.
func (e *Engine) ComplementaryProducts(
	target domain.Product,
	catalog []domain.Product,
	limit int,
) []domain.Product {
	if limit <= 0 {
		limit = DefaultComplementaryLimit
	}

	var complementary []domain.Product
	for _, rule := range complementaryRules {
		if !rule.applies(target) {
			continue
		}
		for _, product := range catalog {
			if product.ID == target.ID {
				continue
			}
			if rule.matches(product) {
				complementary = append(complementary, product)
			}
		}
	}

	if len(complementary) < limit {
		seen := make(map[string]struct{}, len(complementary))
		for _, product := range complementary {
			seen[product.ID] = struct{}{}
		}
		for _, product := range e.SimilarProducts(target, catalog, limit-len(complementary)) {
			if _, ok := seen[product.ID]; ok {
				continue
			}
			complementary = append(complementary, product)
		}
	}

	if len(complementary) > limit {
		complementary = complementary[:limit]
	}
	return complementary
}

// BundleSuggestions composes up to two buy-together bundles around the
// target: the top two same-category bestsellers, and the top two
// complementary products. A bundle is emitted only when exactly two
// companions are available; there are no partial bundles.
func (e *Engine) BundleSuggestions(
	target domain.Product,
	catalog []domain.Product,
) []domain.Bundle {
	var bundles []domain.Bundle

	var sameCategory []domain.Product
	for _, product := range catalog {
		if product.Category == target.Category && product.ID != target.ID && product.InStock {
			sameCategory = append(sameCategory, product)
		}
	}

	if len(sameCategory) >= 2 {
		var bestsellers []domain.Product
		for _, product := range sameCategory {
			if product.Bestseller {
				bestsellers = append(bestsellers, product)
			}
		}
		sort.SliceStable(bestsellers, func(i, j int) bool {
			return bestsellers[i].Rating > bestsellers[j].Rating
		})
		if len(bestsellers) > 2 {
			bestsellers = bestsellers[:2]
		}

		if len(bestsellers) == 2 {
			total := target.Price + bestsellers[0].Price + bestsellers[1].Price
			bundles = append(bundles, domain.Bundle{
				Products: []domain.Product{target, bestsellers[0], bestsellers[1]},
				Savings:  math.Round(total * e.weights.CategoryBundleRate),
			})
		}
	}

	complementary := e.ComplementaryProducts(target, catalog, 2)
	if len(complementary) == 2 {
		total := target.Price + complementary[0].Price + complementary[1].Price
		bundles = append(bundles, domain.Bundle{
			Products: []domain.Product{target, complementary[0], complementary[1]},
			Savings:  math.Round(total * e.weights.ComplementaryBundleRate),
		})
	}

	return bundles
}
