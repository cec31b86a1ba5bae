package recommendation

import (
	"context"
	"errors"
	"slices"
	"sync"
	"time"

	"myDiverseMarket/domain"
)

var testNow = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

type fakeSource struct {
	mu      sync.Mutex
	items   []domain.Item
	err     error
	extra   []domain.Item
	extraEr error
	filters []domain.CandidateFilter
	limits  []int
}

// FetchCandidates ignores id exclusions on purpose so the service's own
// filtering is exercised. Category exclusions switch to the top-up pool.
func (f *fakeSource) FetchCandidates(_ context.Context, filter domain.CandidateFilter, limit int) ([]domain.Item, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.filters = append(f.filters, filter)
	f.limits = append(f.limits, limit)

	if len(filter.ExcludeCategoryKeys) > 0 {
		if f.extraEr != nil {
			return nil, f.extraEr
		}
		var out []domain.Item
		for _, it := range f.extra {
			if slices.Contains(filter.ExcludeCategoryKeys, it.CategoryKey) {
				continue
			}
			out = append(out, it)
		}
		return out[:min(limit, len(out))], nil
	}

	if f.err != nil {
		return nil, f.err
	}
	return f.items[:min(limit, len(f.items))], nil
}

func (f *fakeSource) calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.filters)
}

type fakeCache struct {
	mu     sync.Mutex
	data   map[string]domain.DiverseRecommendationResponse
	ttls   map[string]time.Duration
	getErr error
	setErr error
}

func newFakeCache() *fakeCache {
	return &fakeCache{
		data: map[string]domain.DiverseRecommendationResponse{},
		ttls: map[string]time.Duration{},
	}
}

func (c *fakeCache) Get(_ context.Context, key string) (domain.DiverseRecommendationResponse, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.getErr != nil {
		return domain.DiverseRecommendationResponse{}, false, c.getErr
	}
	v, ok := c.data[key]
	return v, ok, nil
}

func (c *fakeCache) Set(_ context.Context, key string, resp domain.DiverseRecommendationResponse, ttl time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.setErr != nil {
		return c.setErr
	}
	c.data[key] = resp
	c.ttls[key] = ttl
	return nil
}

type fakeSink struct {
	mu     sync.Mutex
	events []domain.RecommendationEvent
	err    error
}

func (s *fakeSink) RecordRecommendation(_ context.Context, e domain.RecommendationEvent) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, e)
	return s.err
}

type fakeConfigRepo struct {
	rows map[string]domain.DiversityConfig
	err  error
}

func (r *fakeConfigRepo) GetConfig(_ context.Context, pageContext string) (domain.DiversityConfig, bool, error) {
	if r.err != nil {
		return domain.DiversityConfig{}, false, r.err
	}
	row, ok := r.rows[pageContext]
	return row, ok, nil
}

func (r *fakeConfigRepo) UpsertConfig(_ context.Context, cfg domain.DiversityConfig) error {
	if r.rows == nil {
		r.rows = map[string]domain.DiversityConfig{}
	}
	r.rows[cfg.Context] = cfg
	return nil
}

var errBoom = errors.New("boom")

func newTestService(src CandidateSource, cache ResultCache, repo ConfigRepository, sinks ...AnalyticsSink) *Service {
	svc := NewService(src, cache, repo, DefaultConfig(), sinks...)
	svc.now = func() time.Time { return testNow }
	return svc
}

func mkItem(id uint64, category, brand string, price, rating float64) domain.Item {
	return domain.Item{
		ID:            id,
		CategoryKey:   category,
		BrandKey:      brand,
		Price:         price,
		RatingAverage: rating,
		ViewCount:     int64(id * 10),
		InStock:       true,
		CreatedAt:     testNow.AddDate(0, 0, -10),
	}
}

// diversePool has 6 categories, 9 brands and spread prices.
func diversePool(n int) []domain.Item {
	categories := []string{"Electronics", "Fashion", "Home", "Books", "Sports", "Beauty"}
	pool := make([]domain.Item, 0, n)
	for i := range n {
		pool = append(pool, mkItem(
			uint64(i+1),
			categories[i%len(categories)],
			"brand-"+string(rune('a'+i%9)),
			float64(50+(i*97)%1500),
			3.5+float64(i%3)*0.5,
		))
	}
	return pool
}

func homogeneousPool(n int) []domain.Item {
	pool := make([]domain.Item, 0, n)
	for i := range n {
		pool = append(pool, mkItem(uint64(i+1), "Electronics", "Apple", 1000, 4.5))
	}
	return pool
}

func itemIDs(items []domain.Item) []uint64 {
	out := make([]uint64, 0, len(items))
	for _, it := range items {
		out = append(out, it.ID)
	}
	return out
}
