package memory

import (
	"context"
	"time"

	"myDiverseMarket/business/recommendation"
	"myDiverseMarket/domain"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

type cachedResponse struct {
	resp      domain.DiverseRecommendationResponse
	expiresAt time.Time
}

// ResultCache is an in-process, size bounded cache for deployments without
// Redis. maxTTL bounds every entry; shorter per-call TTLs are honored on read.
type ResultCache struct {
	lru *expirable.LRU[string, cachedResponse]
	now func() time.Time
}

var _ recommendation.ResultCache = (*ResultCache)(nil)

func NewResultCache(size int, maxTTL time.Duration) *ResultCache {
	if size <= 0 {
		size = 1024
	}
	return &ResultCache{
		lru: expirable.NewLRU[string, cachedResponse](size, nil, maxTTL),
		now: time.Now,
	}
}

func (c *ResultCache) Get(_ context.Context, key string) (domain.DiverseRecommendationResponse, bool, error) {
	entry, ok := c.lru.Get(key)
	if !ok {
		return domain.DiverseRecommendationResponse{}, false, nil
	}
	if !entry.expiresAt.IsZero() && !c.now().Before(entry.expiresAt) {
		c.lru.Remove(key)
		return domain.DiverseRecommendationResponse{}, false, nil
	}
	return entry.resp, true, nil
}

func (c *ResultCache) Set(_ context.Context, key string, resp domain.DiverseRecommendationResponse, ttl time.Duration) error {
	entry := cachedResponse{resp: resp}
	if ttl > 0 {
		entry.expiresAt = c.now().Add(ttl)
	}
	c.lru.Add(key, entry)
	return nil
}

func (c *ResultCache) Len() int {
	return c.lru.Len()
}
