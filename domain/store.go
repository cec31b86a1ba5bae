package domain

import "time"

// CREATE TABLE public.stores (
//     id          BIGINT GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
//     store_name  TEXT NOT NULL,
//     region      TEXT,
//     is_active   BOOLEAN DEFAULT TRUE,
//     created_at  TIMESTAMPTZ DEFAULT NOW()
// );

type Store struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement"`
	StoreName string    `gorm:"column:store_name;type:text;not null"`
	Region    string    `gorm:"column:region;type:text"`
	IsActive  bool      `gorm:"column:is_active;default:true"`
	CreatedAt time.Time `gorm:"column:created_at"`
}

func (Store) TableName() string {
	return "stores"
}
