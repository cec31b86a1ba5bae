package diversity

import (
	"slices"
	"sort"

	"myDiverseMarket/domain"
)

// Contribution is the marginal diversity of adding candidate to selected,
// in (0,1]. An empty selection yields 1.
func Contribution(candidate domain.Item, selected []domain.Item) float64 {
	t := NewSelectionTracker(len(selected))
	for _, it := range selected {
		t.Add(it)
	}
	return t.Contribution(candidate)
}

// SelectionTracker keeps running per-category and per-brand counts plus a
// sorted price list for a growing selection. Category and brand lookups are
// O(1); the same-tier count is two binary searches, so a greedy pass over n
// candidates costs O(n log n) lookups plus O(k) per accepted insert instead
// of rescanning the selection for every candidate (O(n*k)).
type SelectionTracker struct {
	items      []domain.Item
	categories map[string]int
	brands     map[string]int
	prices     []float64
}

func NewSelectionTracker(capacity int) *SelectionTracker {
	return &SelectionTracker{
		items:      make([]domain.Item, 0, capacity),
		categories: make(map[string]int),
		brands:     make(map[string]int),
		prices:     make([]float64, 0, capacity),
	}
}

func (t *SelectionTracker) Len() int {
	return len(t.items)
}

// Items returns the selection in acceptance order.
func (t *SelectionTracker) Items() []domain.Item {
	return t.items
}

func (t *SelectionTracker) CategoryCount() int {
	return len(t.categories)
}

func (t *SelectionTracker) Add(item domain.Item) {
	t.items = append(t.items, item)
	t.categories[item.CategoryKey]++
	t.brands[item.BrandKey]++

	i, _ := slices.BinarySearch(t.prices, item.Price)
	t.prices = slices.Insert(t.prices, i, item.Price)
}

func (t *SelectionTracker) Contribution(candidate domain.Item) float64 {
	if len(t.items) == 0 {
		return 1
	}

	categoryCount := t.categories[candidate.CategoryKey]
	brandCount := t.brands[candidate.BrandKey]

	// tiers span every price in selected + candidate, unpriced ones included
	minPrice := min(t.prices[0], candidate.Price)
	maxPrice := max(t.prices[len(t.prices)-1], candidate.Price)
	tier := spanTier(candidate.Price, minPrice, maxPrice, priceTierCount)
	lo := sort.Search(len(t.prices), func(i int) bool {
		return spanTier(t.prices[i], minPrice, maxPrice, priceTierCount) >= tier
	})
	hi := sort.Search(len(t.prices), func(i int) bool {
		return spanTier(t.prices[i], minPrice, maxPrice, priceTierCount) > tier
	})
	sameTierCount := hi - lo

	return round3(weightCategory/float64(categoryCount+1) +
		weightBrand/float64(brandCount+1) +
		weightPriceTier/float64(sameTierCount+1))
}
