package diversity

import (
	"encoding/json"

	"myDiverseMarket/domain"

	"gorm.io/datatypes"
)

// ResolveItem normalizes a stored product into the canonical Item. It never
// fails: every attribute has a fallback chain ending in a fixed default.
func ResolveItem(p domain.Product) domain.Item {
	rating, count := resolveRating(p)

	item := domain.Item{
		ID:            p.ID,
		Name:          p.ProductName,
		CategoryKey:   resolveCategory(p),
		BrandKey:      resolveBrand(p),
		StoreID:       p.StoreID,
		Price:         resolvePrice(p),
		RatingAverage: rating,
		RatingCount:   count,
		ViewCount:     max(p.Views, 0),
		PurchaseCount: max(p.Purchases, 0),
		CreatedAt:     p.CreatedAt,
		InStock:       p.Quantity > 0,
	}
	return item
}

func ResolveItems(products []domain.Product) []domain.Item {
	items := make([]domain.Item, 0, len(products))
	for _, p := range products {
		items = append(items, ResolveItem(p))
	}
	return items
}

// category object name, object id, legacy text column, "unknown"
func resolveCategory(p domain.Product) string {
	if key := p.Category.Key(); key != "" {
		return key
	}
	if p.ProductCategory != "" {
		return p.ProductCategory
	}
	return unknownCategory
}

// brand column, store name, "generic"
func resolveBrand(p domain.Product) string {
	if p.Brand != "" {
		return p.Brand
	}
	if p.Store != nil && p.Store.StoreName != "" {
		return p.Store.StoreName
	}
	return genericBrand
}

// selling price first, then the legacy sale price, then the original prices
func resolvePrice(p domain.Product) float64 {
	pricing, hasPricing := decodeJSON[domain.ProductPricing](p.Pricing)

	switch {
	case hasPricing && pricing.Selling > 0:
		return pricing.Selling
	case p.SalePrice > 0:
		return p.SalePrice
	case hasPricing && pricing.Original > 0:
		return pricing.Original
	case p.NormalPrice > 0:
		return p.NormalPrice
	}
	return 0
}

func resolveRating(p domain.Product) (float64, int64) {
	if r, ok := decodeJSON[domain.ProductRatings](p.Ratings); ok && r.Average > 0 {
		return r.Average, max(r.Count, 0)
	}
	if p.RatingValue > 0 {
		return p.RatingValue, max(p.RatingCount, 0)
	}
	return 0, 0
}

// decodeJSON reports false for empty, null and malformed documents.
func decodeJSON[T any](raw datatypes.JSON) (T, bool) {
	var zero T
	if len(raw) == 0 {
		return zero, false
	}

	var v *T
	if err := json.Unmarshal(raw, &v); err != nil || v == nil {
		return zero, false
	}
	return *v, true
}
