package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"myDiverseMarket/business/recommendation"
	"myDiverseMarket/domain"

	"github.com/redis/go-redis/v9"
)

// ResultCache stores finished recommendation payloads as JSON strings.
type ResultCache struct {
	client *redis.Client
}

var _ recommendation.ResultCache = (*ResultCache)(nil)

func NewResultCache(client *redis.Client) *ResultCache {
	return &ResultCache{
		client: client,
	}
}

func (r *ResultCache) Get(ctx context.Context, key string) (domain.DiverseRecommendationResponse, bool, error) {
	val, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return domain.DiverseRecommendationResponse{}, false, nil
		}
		return domain.DiverseRecommendationResponse{}, false, fmt.Errorf("failed to get recommendations from Redis: %w", err)
	}

	var resp domain.DiverseRecommendationResponse
	if err := json.Unmarshal(val, &resp); err != nil {
		return domain.DiverseRecommendationResponse{}, false, fmt.Errorf("failed to unmarshal cached recommendations: %w", err)
	}

	return resp, true, nil
}

func (r *ResultCache) Set(ctx context.Context, key string, resp domain.DiverseRecommendationResponse, ttl time.Duration) error {
	jsonData, err := json.Marshal(resp)
	if err != nil {
		return fmt.Errorf("failed to marshal recommendations: %w", err)
	}

	if err := r.client.Set(ctx, key, jsonData, ttl).Err(); err != nil {
		return fmt.Errorf("failed to store recommendations in Redis: %w", err)
	}

	return nil
}
