package diversity

import (
	"math"
	"time"

	"myDiverseMarket/domain"
)

var testNow = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

func item(id uint64, category, brand string, price, rating float64) domain.Item {
	return domain.Item{
		ID:            id,
		CategoryKey:   category,
		BrandKey:      brand,
		Price:         price,
		RatingAverage: rating,
		InStock:       true,
		CreatedAt:     testNow.AddDate(0, 0, -60),
	}
}

func ids(items []domain.Item) []uint64 {
	out := make([]uint64, 0, len(items))
	for _, it := range items {
		out = append(out, it.ID)
	}
	return out
}

func countBy(items []domain.Item, key func(domain.Item) string) map[string]int {
	counts := make(map[string]int)
	for _, it := range items {
		counts[key(it)]++
	}
	return counts
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func equalIDs(a, b []uint64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
