package diversity

import (
	"fmt"

	"myDiverseMarket/domain"
)

type Mode int

const (
	ModeBalanced Mode = iota
	ModeCategoryDiverse
	ModePriceDiverse
)

func (m Mode) String() string {
	switch m {
	case ModeBalanced:
		return "balanced"
	case ModeCategoryDiverse:
		return "category_diverse"
	case ModePriceDiverse:
		return "price_diverse"
	default:
		return "unknown"
	}
}

func ParseMode(s string) (Mode, error) {
	switch s {
	case "balanced":
		return ModeBalanced, nil
	case "category_diverse":
		return ModeCategoryDiverse, nil
	case "price_diverse":
		return ModePriceDiverse, nil
	}
	return 0, fmt.Errorf("%w %q", ErrInvalidMode, s)
}

// ApplyMode filters by minimum rating and then runs the balancers the mode
// names. The result is not truncated.
func ApplyMode(items []domain.Item, mode Mode, opts domain.DiversityOptions) ([]domain.Item, error) {
	if mode < ModeBalanced || mode > ModePriceDiverse {
		return nil, fmt.Errorf("%w %d", ErrInvalidMode, int(mode))
	}

	opts = Sanitize(opts)
	out := FilterByRating(items, opts.MinRating)

	switch mode {
	case ModeBalanced:
		out = BalanceByCategory(out, opts.MaxPerCategory)
		out = BalanceByBrand(out, opts.MaxPerBrand)
		out = StratifyByPrice(out, opts.PriceRanges)
	case ModeCategoryDiverse:
		out = BalanceByCategory(out, opts.MaxPerCategory)
	case ModePriceDiverse:
		out = StratifyByPrice(out, opts.PriceRanges)
	}
	return out, nil
}

// FilterByRating drops items rated below minRating. Unrated items (0) pass.
func FilterByRating(items []domain.Item, minRating float64) []domain.Item {
	out := make([]domain.Item, 0, len(items))
	for _, it := range items {
		if it.RatingAverage != 0 && it.RatingAverage < minRating {
			continue
		}
		out = append(out, it)
	}
	return out
}

// FilterExcluded removes excluded ids and repeated ids, keeping the first
// occurrence.
func FilterExcluded(items []domain.Item, excluded []uint64) []domain.Item {
	seen := make(map[uint64]struct{}, len(items)+len(excluded))
	for _, id := range excluded {
		seen[id] = struct{}{}
	}

	out := make([]domain.Item, 0, len(items))
	for _, it := range items {
		if _, ok := seen[it.ID]; ok {
			continue
		}
		seen[it.ID] = struct{}{}
		out = append(out, it)
	}
	return out
}
