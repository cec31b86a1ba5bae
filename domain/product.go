package domain

import (
	"time"

	"gorm.io/datatypes"
)

// CREATE TABLE public.products (
//     id               BIGINT GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
//     product_name     TEXT,
//     category_id      BIGINT,
//     product_category TEXT,
//     brand            TEXT,
//     store_id         BIGINT,
//     pricing          JSONB,
//     normal_price     NUMERIC,
//     sale_price       NUMERIC,
//     ratings          JSONB,
//     rating_value     NUMERIC,
//     rating_count     BIGINT,
//     views            BIGINT DEFAULT 0,
//     purchases        BIGINT DEFAULT 0,
//     quantity         NUMERIC,
//     is_active        BOOLEAN DEFAULT TRUE,
//     created_at       TIMESTAMPTZ DEFAULT NOW()
// );

// Product is the catalogue record as stored. Older rows carry the flat
// normal_price/sale_price and rating_value/rating_count columns, newer rows
// carry the pricing and ratings JSON documents.
type Product struct {
	ID              uint64    `gorm:"primaryKey;autoIncrement"`
	ProductName     string    `gorm:"column:product_name;type:text"`
	CategoryID      uint64    `gorm:"column:category_id;default:0"`
	Category        *Category `gorm:"foreignKey:CategoryID;references:CategoryID"`
	ProductCategory string    `gorm:"column:product_category;type:text"`
	Brand           string    `gorm:"column:brand;type:text"`
	StoreID         uint64    `gorm:"column:store_id;default:0"`
	Store           *Store    `gorm:"foreignKey:StoreID;references:ID"`

	Pricing     datatypes.JSON `gorm:"column:pricing;type:jsonb"`
	NormalPrice float64        `gorm:"column:normal_price;type:numeric"`
	SalePrice   float64        `gorm:"column:sale_price;type:numeric"`

	Ratings     datatypes.JSON `gorm:"column:ratings;type:jsonb"`
	RatingValue float64        `gorm:"column:rating_value;type:numeric"`
	RatingCount int64          `gorm:"column:rating_count"`

	Views     int64     `gorm:"column:views;default:0"`
	Purchases int64     `gorm:"column:purchases;default:0"`
	Quantity  float64   `gorm:"column:quantity;type:numeric"`
	IsActive  bool      `gorm:"column:is_active;default:true"`
	CreatedAt time.Time `gorm:"column:created_at"`
}

func (Product) TableName() string {
	return "products"
}

// ProductPricing is the shape of the pricing JSON column.
type ProductPricing struct {
	Selling  float64 `json:"selling"`
	Original float64 `json:"original"`
	Currency string  `json:"currency,omitempty"`
}

// ProductRatings is the shape of the ratings JSON column.
type ProductRatings struct {
	Average float64 `json:"average"`
	Count   int64   `json:"count"`
}
