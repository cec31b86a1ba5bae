package postgres

import (
	"context"
	"fmt"

	"myDiverseMarket/business/diversity"
	"myDiverseMarket/business/recommendation"
	"myDiverseMarket/domain"

	"gorm.io/gorm"
)

// CandidateRepository serves active, in-stock products as resolved Items,
// best rated and most viewed first.
type CandidateRepository struct {
	DB *gorm.DB
}

var _ recommendation.CandidateSource = (*CandidateRepository)(nil)

func NewCandidateRepository(db *gorm.DB) *CandidateRepository {
	return &CandidateRepository{DB: db}
}

// ratingOrderExpr and categoryKeyExpr mirror diversity.ResolveItem: a zero
// JSON average falls back to the legacy column, and the category key is the
// category name, category id, legacy column, then "unknown".
const ratingOrderExpr = "COALESCE(" +
	"CASE WHEN (products.ratings->>'average')::numeric > 0 THEN (products.ratings->>'average')::numeric END, " +
	"CASE WHEN products.rating_value > 0 THEN products.rating_value END, 0)"

const categoryKeyExpr = "COALESCE(" +
	"NULLIF(categories.product_category, ''), " +
	"categories.category_id::text, " +
	"NULLIF(products.product_category, ''), " +
	"'unknown')"

func (r *CandidateRepository) FetchCandidates(
	ctx context.Context,
	filter domain.CandidateFilter,
	limit int,
) ([]domain.Item, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}
	if limit <= 0 {
		return []domain.Item{}, nil
	}

	q := r.DB.WithContext(ctx).
		Model(&domain.Product{}).
		Select("products.*").
		Preload("Category").
		Preload("Store").
		Where("products.is_active = ?", true).
		Where("products.quantity > 0")

	if len(filter.ExcludeIDs) > 0 {
		q = q.Where("products.id NOT IN ?", filter.ExcludeIDs)
	}
	if len(filter.ExcludeStoreIDs) > 0 {
		q = q.Where("products.store_id NOT IN ?", filter.ExcludeStoreIDs)
	}
	if filter.Region != "" {
		stores := r.DB.Model(&domain.Store{}).
			Select("id").
			Where("region = ? AND is_active = ?", filter.Region, true)
		q = q.Where("products.store_id IN (?)", stores)
	}
	if len(filter.ExcludeCategoryKeys) > 0 {
		q = q.Joins("LEFT JOIN categories ON categories.category_id = products.category_id").
			Where(categoryKeyExpr+" NOT IN ?", filter.ExcludeCategoryKeys)
	}

	var products []domain.Product
	err := q.
		Order(ratingOrderExpr+" DESC").
		Order("products.views DESC").
		Order("products.id ASC").
		Limit(limit).
		Find(&products).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find candidate products: %w", err)
	}

	return diversity.ResolveItems(products), nil
}
