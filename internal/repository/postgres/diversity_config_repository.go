package postgres

import (
	"context"
	"errors"
	"fmt"

	"myDiverseMarket/business/recommendation"
	"myDiverseMarket/domain"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type DiversityConfigRepository struct {
	DB *gorm.DB
}

var _ recommendation.ConfigRepository = (*DiversityConfigRepository)(nil)

func NewDiversityConfigRepository(db *gorm.DB) *DiversityConfigRepository {
	return &DiversityConfigRepository{DB: db}
}

func (r *DiversityConfigRepository) GetConfig(ctx context.Context, pageContext string) (domain.DiversityConfig, bool, error) {
	var cfg domain.DiversityConfig

	err := r.DB.WithContext(ctx).
		Where("context = ?", pageContext).
		First(&cfg).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.DiversityConfig{}, false, nil
	}
	if err != nil {
		return domain.DiversityConfig{}, false, fmt.Errorf("failed to get diversity config: %w", err)
	}

	return cfg, true, nil
}

func (r *DiversityConfigRepository) UpsertConfig(ctx context.Context, cfg domain.DiversityConfig) error {
	err := r.DB.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "context"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"max_per_category",
				"max_per_brand",
				"price_ranges",
				"min_rating",
				"target_diversity_score",
				"min_categories",
				"updated_at",
			}),
		}).
		Create(&cfg).Error
	if err != nil {
		return fmt.Errorf("failed to upsert diversity config: %w", err)
	}
	return nil
}
