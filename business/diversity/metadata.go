package diversity

import "myDiverseMarket/domain"

// Summarize builds the metadata for a finished list. considered is the
// number of candidates the list was chosen from.
func Summarize(items []domain.Item, considered int) domain.DiversityMetadata {
	return domain.DiversityMetadata{
		CategoriesShown:   distinct(items, func(it domain.Item) string { return it.CategoryKey }),
		BrandsShown:       distinct(items, func(it domain.Item) string { return it.BrandKey }),
		DiversityScore:    Score(items),
		DeduplicatedCount: max(considered-len(items), 0),
		PriceDistribution: PriceDistributionOf(items),
	}
}

// PriceDistributionOf counts items per third of the list's price range.
func PriceDistributionOf(items []domain.Item) domain.PriceDistribution {
	var b priceBounds
	for _, it := range items {
		b = b.with(it.Price)
	}

	var dist domain.PriceDistribution
	for _, it := range items {
		switch b.tier(it.Price, priceTierCount) {
		case 0:
			dist.Budget++
		case 1:
			dist.Mid++
		default:
			dist.Premium++
		}
	}
	return dist
}

// DistinctCategories returns category keys in order of first appearance.
func DistinctCategories(items []domain.Item) []string {
	return distinct(items, func(it domain.Item) string { return it.CategoryKey })
}

func distinct(items []domain.Item, key func(domain.Item) string) []string {
	seen := make(map[string]struct{}, len(items))
	out := make([]string, 0, len(items))
	for _, it := range items {
		k := key(it)
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, k)
	}
	return out
}
