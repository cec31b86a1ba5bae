package domain

import "time"

// Item is the normalized, read-only view of a Product used by the
// diversification engine.
type Item struct {
	ID            uint64    `json:"id"`
	Name          string    `json:"name"`
	CategoryKey   string    `json:"category"`
	BrandKey      string    `json:"brand"`
	StoreID       uint64    `json:"store_id"`
	Price         float64   `json:"price"`
	RatingAverage float64   `json:"rating_average"`
	RatingCount   int64     `json:"rating_count"`
	ViewCount     int64     `json:"view_count"`
	PurchaseCount int64     `json:"purchase_count"`
	CreatedAt     time.Time `json:"created_at"`
	InStock       bool      `json:"in_stock"`
}

type DiversityOptions struct {
	MaxPerCategory       int     `json:"max_per_category"`
	MaxPerBrand          int     `json:"max_per_brand"`
	PriceRanges          int     `json:"price_ranges"`
	MinRating            float64 `json:"min_rating"`
	TargetDiversityScore float64 `json:"target_diversity_score"`
	MinCategories        int     `json:"min_categories"`
}

// DiversityOptionsInput carries caller overrides; nil fields keep the
// configured value.
type DiversityOptionsInput struct {
	MaxPerCategory       *int     `json:"max_per_category,omitempty" validate:"omitempty,min=1,max=50"`
	MaxPerBrand          *int     `json:"max_per_brand,omitempty" validate:"omitempty,min=1,max=50"`
	PriceRanges          *int     `json:"price_ranges,omitempty" validate:"omitempty,min=1,max=10"`
	MinRating            *float64 `json:"min_rating,omitempty" validate:"omitempty,min=0,max=5"`
	TargetDiversityScore *float64 `json:"target_diversity_score,omitempty" validate:"omitempty,min=0,max=1"`
	MinCategories        *int     `json:"min_categories,omitempty" validate:"omitempty,min=0,max=50"`
}

type PriceDistribution struct {
	Budget  int `json:"budget"`
	Mid     int `json:"mid"`
	Premium int `json:"premium"`
}

type DiversityMetadata struct {
	CategoriesShown   []string          `json:"categories_shown"`
	BrandsShown       []string          `json:"brands_shown"`
	DiversityScore    float64           `json:"diversity_score"`
	DeduplicatedCount int               `json:"deduplicated_count"`
	PriceDistribution PriceDistribution `json:"price_distribution"`
}

type ScoredCandidate struct {
	Item                  Item    `json:"item"`
	Relevance             float64 `json:"relevance"`
	DiversityContribution float64 `json:"diversity_contribution"`
	HybridScore           float64 `json:"hybrid_score"`
}

// CandidateDecision is one row of the greedy selection trace.
type CandidateDecision struct {
	ScoredCandidate
	SelectionContribution float64 `json:"selection_contribution"`
	Accepted              bool    `json:"accepted"`
	Reason                string  `json:"reason"`
}

// CandidateFilter narrows what a candidate source may return.
type CandidateFilter struct {
	ExcludeIDs          []uint64
	ExcludeStoreIDs     []uint64
	ExcludeCategoryKeys []string
	Region              string
}

type DiverseRecommendationRequest struct {
	UserID        uint                  `json:"-"`
	ExcludeIDs    []uint64              `json:"exclude_ids"`
	ExcludeGroups []uint64              `json:"exclude_groups"`
	ShownIDs      []uint64              `json:"shown_ids"`
	Limit         int                   `json:"limit"`
	Context       string                `json:"context"`
	Algorithm     string                `json:"algorithm"`
	Mode          string                `json:"mode"`
	Region        string                `json:"region"`
	Options       DiversityOptionsInput `json:"options"`
}

type RecommendationMetadata struct {
	DiversityMetadata
	Algorithm      string `json:"algorithm"`
	Mode           string `json:"mode,omitempty"`
	Context        string `json:"context"`
	RequestedLimit int    `json:"requested_limit"`
	ReturnedCount  int    `json:"returned_count"`
	CacheHit       bool   `json:"cache_hit"`
}

type DiverseRecommendationResponse struct {
	Recommendations []Item                 `json:"recommendations"`
	Metadata        RecommendationMetadata `json:"metadata"`
}

type DebugRecommendationResponse struct {
	Candidates []CandidateDecision `json:"candidates"`
	Options    DiversityOptions    `json:"options"`
}
