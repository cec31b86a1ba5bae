package diversity

import (
	"testing"

	"myDiverseMarket/domain"

	"gorm.io/datatypes"
)

func TestResolveItem_Category(t *testing.T) {
	tests := []struct {
		name    string
		product domain.Product
		want    string
	}{
		{
			name:    "category object name",
			product: domain.Product{Category: &domain.Category{CategoryID: 7, ProductCategory: "Electronics"}, ProductCategory: "legacy"},
			want:    "Electronics",
		},
		{
			name:    "category object without name uses id",
			product: domain.Product{Category: &domain.Category{CategoryID: 7}},
			want:    "7",
		},
		{
			name:    "raw category string",
			product: domain.Product{ProductCategory: "Fashion"},
			want:    "Fashion",
		},
		{
			name:    "missing category",
			product: domain.Product{},
			want:    "unknown",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ResolveItem(tt.product).CategoryKey; got != tt.want {
				t.Errorf("CategoryKey = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestResolveItem_Brand(t *testing.T) {
	tests := []struct {
		name    string
		product domain.Product
		want    string
	}{
		{"explicit brand", domain.Product{Brand: "Apple", Store: &domain.Store{StoreName: "Shop"}}, "Apple"},
		{"store name", domain.Product{Store: &domain.Store{StoreName: "Shop"}}, "Shop"},
		{"store without name", domain.Product{Store: &domain.Store{}}, "generic"},
		{"nothing", domain.Product{}, "generic"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ResolveItem(tt.product).BrandKey; got != tt.want {
				t.Errorf("BrandKey = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestResolveItem_Price(t *testing.T) {
	tests := []struct {
		name    string
		product domain.Product
		want    float64
	}{
		{"selling price", domain.Product{Pricing: datatypes.JSON(`{"selling":1000,"original":1200}`), SalePrice: 900}, 1000},
		{"legacy sale price", domain.Product{SalePrice: 900, NormalPrice: 950}, 900},
		{"pricing original", domain.Product{Pricing: datatypes.JSON(`{"original":1200}`), NormalPrice: 950}, 1200},
		{"legacy normal price", domain.Product{NormalPrice: 950}, 950},
		{"null pricing document", domain.Product{Pricing: datatypes.JSON(`null`), SalePrice: 10}, 10},
		{"malformed pricing document", domain.Product{Pricing: datatypes.JSON(`{"selling":`), SalePrice: 10}, 10},
		{"no price", domain.Product{}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ResolveItem(tt.product).Price; got != tt.want {
				t.Errorf("Price = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestResolveItem_Rating(t *testing.T) {
	tests := []struct {
		name      string
		product   domain.Product
		want      float64
		wantCount int64
	}{
		{"ratings document", domain.Product{Ratings: datatypes.JSON(`{"average":4.5,"count":12}`), RatingValue: 3}, 4.5, 12},
		{"legacy rating", domain.Product{RatingValue: 3.5, RatingCount: 4}, 3.5, 4},
		{"empty ratings document falls back", domain.Product{Ratings: datatypes.JSON(`{}`), RatingValue: 2}, 2, 0},
		{"unrated", domain.Product{}, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolveItem(tt.product)
			if got.RatingAverage != tt.want || got.RatingCount != tt.wantCount {
				t.Errorf("rating = (%v, %d), want (%v, %d)", got.RatingAverage, got.RatingCount, tt.want, tt.wantCount)
			}
		})
	}
}

func TestResolveItem_Availability(t *testing.T) {
	if ResolveItem(domain.Product{Quantity: 0}).InStock {
		t.Error("zero quantity should be out of stock")
	}
	if !ResolveItem(domain.Product{Quantity: 3}).InStock {
		t.Error("positive quantity should be in stock")
	}
}
