package recommend

import (
	"sort"
	"strings"

	"herbalMart/domain"
)

// containsFold reports whether s contains substr, case-insensitively.
func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

// concernHaystack joins a product's tags and benefits into one lowercased
// string for substring matching against customer concerns.
func concernHaystack(p domain.Product) string {
	parts := make([]string, 0, len(p.Tags)+len(p.Benefits))
	parts = append(parts, p.Tags...)
	parts = append(parts, p.Benefits...)
	return strings.ToLower(strings.Join(parts, " "))
}

// sharedTagCount counts how many of p's tags also appear in target's tag set.
func sharedTagCount(p, target domain.Product) int {
	if len(target.Tags) == 0 || len(p.Tags) == 0 {
		return 0
	}

	targetTags := make(map[string]struct{}, len(target.Tags))
	for _, tag := range target.Tags {
		targetTags[tag] = struct{}{}
	}

	shared := 0
	for _, tag := range p.Tags {
		if _, ok := targetTags[tag]; ok {
			shared++
		}
	}
	return shared
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

type scoredProduct struct {
	product domain.Product
	score   float64
}

// rankProducts sorts descending by score. The sort is stable so equal
// scores keep catalog iteration order, then truncates to limit.
func rankProducts(scored []scoredProduct, limit int) []domain.Product {
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].score > scored[j].score
	})

	if len(scored) > limit {
		scored = scored[:limit]
	}

	out := make([]domain.Product, 0, len(scored))
	for _, item := range scored {
		out = append(out, item.product)
	}
	return out
}
