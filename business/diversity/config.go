// Package diversity ranks and reshapes product candidate pools so that a
// recommendation list is relevant item by item and varied as a whole.
package diversity

import "myDiverseMarket/domain"

const (
	defaultMaxPerCategory       = 2
	defaultMaxPerBrand          = 2
	defaultPriceRanges          = 3
	defaultMinRating            = 3.0
	defaultTargetDiversityScore = 0.7
	defaultMinCategories        = 3
)

// relevance weights, sum to 1
const (
	weightRating       = 0.4
	weightPopularity   = 0.3
	weightRecency      = 0.2
	weightAvailability = 0.1
)

// dimension weights shared by the contribution scorer and the list score
const (
	weightCategory  = 0.4
	weightBrand     = 0.3
	weightPriceTier = 0.3
)

const (
	// purchases count ten times a view
	purchaseViewFactor = 10
	// log10 denominator, caps popularity at 9999 interactions
	popularityLogScale = 4.0
	recencyWindowDays  = 30.0
	maxRating          = 5.0

	// fixed tier count used by contribution, score and price distribution
	priceTierCount = 3

	unknownCategory = "unknown"
	genericBrand    = "generic"
)

func DefaultOptions() domain.DiversityOptions {
	return domain.DiversityOptions{
		MaxPerCategory:       defaultMaxPerCategory,
		MaxPerBrand:          defaultMaxPerBrand,
		PriceRanges:          defaultPriceRanges,
		MinRating:            defaultMinRating,
		TargetDiversityScore: defaultTargetDiversityScore,
		MinCategories:        defaultMinCategories,
	}
}

// ApplyInput overlays caller overrides on base. Each field is applied
// independently.
func ApplyInput(base domain.DiversityOptions, in domain.DiversityOptionsInput) domain.DiversityOptions {
	out := base
	if in.MaxPerCategory != nil {
		out.MaxPerCategory = *in.MaxPerCategory
	}
	if in.MaxPerBrand != nil {
		out.MaxPerBrand = *in.MaxPerBrand
	}
	if in.PriceRanges != nil {
		out.PriceRanges = *in.PriceRanges
	}
	if in.MinRating != nil {
		out.MinRating = *in.MinRating
	}
	if in.TargetDiversityScore != nil {
		out.TargetDiversityScore = *in.TargetDiversityScore
	}
	if in.MinCategories != nil {
		out.MinCategories = *in.MinCategories
	}
	return Sanitize(out)
}

// Sanitize replaces out-of-range values with defaults.
func Sanitize(o domain.DiversityOptions) domain.DiversityOptions {
	if o.MaxPerCategory <= 0 {
		o.MaxPerCategory = defaultMaxPerCategory
	}
	if o.MaxPerBrand <= 0 {
		o.MaxPerBrand = defaultMaxPerBrand
	}
	if o.PriceRanges <= 0 {
		o.PriceRanges = defaultPriceRanges
	}
	if o.MinRating < 0 || o.MinRating > maxRating {
		o.MinRating = defaultMinRating
	}
	if o.TargetDiversityScore < 0 || o.TargetDiversityScore > 1 {
		o.TargetDiversityScore = defaultTargetDiversityScore
	}
	if o.MinCategories < 0 {
		o.MinCategories = defaultMinCategories
	}
	return o
}
