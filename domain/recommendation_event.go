package domain

import (
	"time"

	"gorm.io/datatypes"
)

// RecommendationEvent is one analytics record of a served diverse
// recommendation list.
type RecommendationEvent struct {
	ID             uint              `gorm:"primaryKey" json:"id"`
	UserID         uint              `gorm:"column:user_id" json:"user_id"`
	Context        string            `gorm:"column:context;not null" json:"context"`
	Algorithm      string            `gorm:"column:algorithm" json:"algorithm"`
	Limit          int               `gorm:"column:requested_limit" json:"limit"`
	ReturnedCount  int               `gorm:"column:returned_count" json:"returned_count"`
	DiversityScore float64           `gorm:"column:diversity_score" json:"diversity_score"`
	ResponseTimeMs int64             `gorm:"column:response_time_ms" json:"response_time_ms"`
	Options        datatypes.JSONMap `gorm:"column:options;type:jsonb" json:"options"`
	CreatedAt      time.Time         `gorm:"column:created_at;autoCreateTime" json:"timestamp"`
}

func (RecommendationEvent) TableName() string {
	return "recommendation_events"
}
