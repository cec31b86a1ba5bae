package domain

import (
	"strconv"
	"time"
)

// CREATE TABLE public.categories (
//     category_id         BIGINT GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
//     product_category    TEXT NOT NULL DEFAULT '',
//     created_at          TIMESTAMPTZ DEFAULT NOW()
// );

type Category struct {
	CategoryID      uint64    `gorm:"primaryKey;column:category_id;autoIncrement" json:"category_id"`
	ProductCategory string    `gorm:"column:product_category;type:text;not null" json:"product_category"`
	CreatedAt       time.Time `gorm:"column:created_at" json:"created_at"`
}

func (Category) TableName() string {
	return "categories"
}

// Key is the grouping key of the category: its name, or its id when the
// row has no name. Empty for a zero row.
func (c *Category) Key() string {
	if c == nil {
		return ""
	}
	if c.ProductCategory != "" {
		return c.ProductCategory
	}
	if c.CategoryID != 0 {
		return strconv.FormatUint(c.CategoryID, 10)
	}
	return ""
}
