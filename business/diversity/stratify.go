package diversity

import "myDiverseMarket/domain"

// StratifyByPrice reorders items so that price tiers alternate from the
// front: tier 0, tier 1, ... round-robin over the non-empty tiers. No item is
// dropped. When all priced items share one price the input order is kept.
// Unpriced items are tier 0 and do not move the tier bounds.
func StratifyByPrice(items []domain.Item, ranges int) []domain.Item {
	if ranges <= 0 {
		ranges = defaultPriceRanges
	}

	var b priceBounds
	for _, it := range items {
		b = b.with(it.Price)
	}
	if b.flat() {
		return append(make([]domain.Item, 0, len(items)), items...)
	}

	tiers := make([][]domain.Item, ranges)
	for _, it := range items {
		t := b.tier(it.Price, ranges)
		tiers[t] = append(tiers[t], it)
	}

	out := make([]domain.Item, 0, len(items))
	for round := 0; len(out) < len(items); round++ {
		for _, group := range tiers {
			if round < len(group) {
				out = append(out, group[round])
			}
		}
	}
	return out
}
