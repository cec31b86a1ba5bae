package diversity

import "math"

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// priceBounds is the [min,max] interval of positive prices in a set.
// Unpriced items (price <= 0) never move the bounds.
type priceBounds struct {
	min, max float64
	ok       bool
}

func (b priceBounds) with(price float64) priceBounds {
	if price <= 0 {
		return b
	}
	if !b.ok {
		return priceBounds{min: price, max: price, ok: true}
	}
	if price < b.min {
		b.min = price
	}
	if price > b.max {
		b.max = price
	}
	return b
}

func (b priceBounds) flat() bool {
	return !b.ok || b.max == b.min
}

// tier maps a price onto one of ranges equal-width buckets over b.
// Unpriced items and flat bounds land in tier 0. Monotonic in price.
func (b priceBounds) tier(price float64, ranges int) int {
	if ranges <= 1 || price <= 0 || b.flat() {
		return 0
	}
	width := (b.max - b.min) / float64(ranges)
	t := int(math.Floor((price - b.min) / width))
	if t < 0 {
		return 0
	}
	if t > ranges-1 {
		return ranges - 1
	}
	return t
}

// spanTier buckets price into ranges equal-width tiers over [lo,hi], with
// every price counted, unpriced ones included. Used by the contribution
// scorer. A zero-width span puts everything in tier 0.
func spanTier(price, lo, hi float64, ranges int) int {
	if ranges <= 1 || hi <= lo {
		return 0
	}
	width := (hi - lo) / float64(ranges)
	t := int(math.Floor((price - lo) / width))
	return min(max(t, 0), ranges-1)
}
