package diversity

import (
	"math"
	"time"

	"myDiverseMarket/domain"
)

// Relevance scores one item in [0,1] from rating, popularity, recency and
// availability. Missing signals score 0.
func Relevance(item domain.Item, now time.Time) float64 {
	ratingScore := clamp(item.RatingAverage/maxRating, 0, 1)

	popularityRaw := float64(max(item.ViewCount, 0)) + float64(max(item.PurchaseCount, 0))*purchaseViewFactor
	popularityScore := math.Min(math.Log10(popularityRaw+1)/popularityLogScale, 1)

	recencyScore := 0.0
	if !item.CreatedAt.IsZero() {
		days := now.Sub(item.CreatedAt).Hours() / 24
		recencyScore = clamp(1-days/recencyWindowDays, 0, 1)
	}

	availabilityScore := 0.0
	if item.InStock {
		availabilityScore = 1
	}

	return round3(weightRating*ratingScore +
		weightPopularity*popularityScore +
		weightRecency*recencyScore +
		weightAvailability*availabilityScore)
}
