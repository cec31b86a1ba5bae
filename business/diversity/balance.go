package diversity

import "myDiverseMarket/domain"

// BalanceByCategory keeps at most maxPerCategory items per category key,
// preserving order. Non-positive caps use the default of 2.
func BalanceByCategory(items []domain.Item, maxPerCategory int) []domain.Item {
	if maxPerCategory <= 0 {
		maxPerCategory = defaultMaxPerCategory
	}
	return capByKey(items, maxPerCategory, func(it domain.Item) string { return it.CategoryKey })
}

// BalanceByBrand keeps at most maxPerBrand items per brand key, preserving
// order. Non-positive caps use the default of 2.
func BalanceByBrand(items []domain.Item, maxPerBrand int) []domain.Item {
	if maxPerBrand <= 0 {
		maxPerBrand = defaultMaxPerBrand
	}
	return capByKey(items, maxPerBrand, func(it domain.Item) string { return it.BrandKey })
}

func capByKey(items []domain.Item, limit int, key func(domain.Item) string) []domain.Item {
	out := make([]domain.Item, 0, len(items))
	counts := make(map[string]int)

	for _, it := range items {
		k := key(it)
		if counts[k] >= limit {
			continue
		}
		counts[k]++
		out = append(out, it)
	}
	return out
}
