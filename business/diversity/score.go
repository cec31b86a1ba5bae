package diversity

import "myDiverseMarket/domain"

// Score is the weighted normalized Gini-Simpson diversity of a finished list
// over category, brand and price tier. 0 for an empty list, 1 for a single
// item.
func Score(items []domain.Item) float64 {
	n := len(items)
	switch n {
	case 0:
		return 0
	case 1:
		return 1
	}

	var b priceBounds
	for _, it := range items {
		b = b.with(it.Price)
	}

	categories := make(map[string]int)
	brands := make(map[string]int)
	tiers := make(map[int]int)
	for _, it := range items {
		categories[it.CategoryKey]++
		brands[it.BrandKey]++
		tiers[b.tier(it.Price, priceTierCount)]++
	}

	score := weightCategory*simpson(categories, n) +
		weightBrand*simpson(brands, n) +
		weightPriceTier*simpson(tiers, n)

	return clamp(round3(score), 0, 1)
}

// simpson is (1 - sum p^2) / (1 - 1/n): 1 when every member is distinct,
// 0 when one key holds everything. n must be > 1.
func simpson[K comparable](counts map[K]int, n int) float64 {
	concentration := 0.0
	for _, c := range counts {
		p := float64(c) / float64(n)
		concentration += p * p
	}
	return (1 - concentration) / (1 - 1/float64(n))
}
