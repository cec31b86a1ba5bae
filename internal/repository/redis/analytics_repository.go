package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"myDiverseMarket/business/recommendation"
	"myDiverseMarket/domain"

	"github.com/redis/go-redis/v9"
)

const analyticsKeyPrefix = "analytics:recommendations:"

// AnalyticsRepository appends served-list events to one Redis list per UTC
// day. Each list expires ttl after its last write.
type AnalyticsRepository struct {
	client *redis.Client
	ttl    time.Duration
}

var _ recommendation.AnalyticsSink = (*AnalyticsRepository)(nil)

func NewAnalyticsRepository(client *redis.Client, ttl time.Duration) *AnalyticsRepository {
	return &AnalyticsRepository{
		client: client,
		ttl:    ttl,
	}
}

func analyticsKey(day time.Time) string {
	return analyticsKeyPrefix + day.UTC().Format(time.DateOnly)
}

func (r *AnalyticsRepository) RecordRecommendation(ctx context.Context, event domain.RecommendationEvent) error {
	if event.CreatedAt.IsZero() {
		event.CreatedAt = time.Now()
	}

	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal recommendation event: %w", err)
	}

	key := analyticsKey(event.CreatedAt)
	pipe := r.client.TxPipeline()
	pipe.RPush(ctx, key, payload)
	pipe.Expire(ctx, key, r.ttl)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to record recommendation event: %w", err)
	}

	return nil
}

// DailyEvents returns the events recorded on day, oldest first.
func (r *AnalyticsRepository) DailyEvents(ctx context.Context, day time.Time) ([]domain.RecommendationEvent, error) {
	rows, err := r.client.LRange(ctx, analyticsKey(day), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read recommendation events: %w", err)
	}

	events := make([]domain.RecommendationEvent, 0, len(rows))
	for _, row := range rows {
		var e domain.RecommendationEvent
		if err := json.Unmarshal([]byte(row), &e); err != nil {
			return nil, fmt.Errorf("failed to unmarshal recommendation event: %w", err)
		}
		events = append(events, e)
	}

	return events, nil
}
