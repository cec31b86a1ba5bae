package domain

import "time"

// DiversityConfig overrides the default DiversityOptions for one page
// context. Zero-valued columns fall back to defaults.
type DiversityConfig struct {
	Context              string    `json:"context" gorm:"column:context;primaryKey"`
	MaxPerCategory       int       `json:"max_per_category" gorm:"column:max_per_category"`
	MaxPerBrand          int       `json:"max_per_brand" gorm:"column:max_per_brand"`
	PriceRanges          int       `json:"price_ranges" gorm:"column:price_ranges"`
	MinRating            float64   `json:"min_rating" gorm:"column:min_rating"`
	TargetDiversityScore float64   `json:"target_diversity_score" gorm:"column:target_diversity_score"`
	MinCategories        int       `json:"min_categories" gorm:"column:min_categories"`
	UpdatedAt            time.Time `json:"updated_at" gorm:"column:updated_at;autoUpdateTime"`
}

func (DiversityConfig) TableName() string {
	return "diversity_configs"
}
