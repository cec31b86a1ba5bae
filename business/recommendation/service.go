package recommendation

import (
	"context"
	"fmt"
	"sync"
	"time"

	"myDiverseMarket/business/diversity"
	"myDiverseMarket/domain"
	"myDiverseMarket/pkg/logger"
	"myDiverseMarket/pkg/metrics"
)

type Service struct {
	source  CandidateSource
	cache   ResultCache
	cfgRepo ConfigRepository
	sinks   []AnalyticsSink
	cfg     Config
	now     func() time.Time
	wg      sync.WaitGroup
}

func NewService(
	source CandidateSource,
	cache ResultCache,
	cfgRepo ConfigRepository,
	cfg Config,
	sinks ...AnalyticsSink,
) *Service {
	return &Service{
		source:  source,
		cache:   cache,
		cfgRepo: cfgRepo,
		sinks:   sinks,
		cfg:     cfg,
		now:     time.Now,
	}
}

// Recommend returns a relevant, diverse list for the request. Candidate
// source failures are wrapped in ErrCandidateSource; malformed requests
// wrap diversity.ErrInvalidArgument. Too few candidates is not an error.
func (s *Service) Recommend(
	ctx context.Context,
	req domain.DiverseRecommendationRequest,
) (domain.DiverseRecommendationResponse, error) {

	if err := ctx.Err(); err != nil {
		return domain.DiverseRecommendationResponse{}, fmt.Errorf("context error: %w", err)
	}
	start := time.Now()

	p, err := s.buildPlan(ctx, req)
	if err != nil {
		return domain.DiverseRecommendationResponse{}, err
	}

	tid := TraceIDFromContext(ctx)
	key := cacheKey(p)

	// 1) cached payload
	if s.cache != nil {
		cached, ok, err := s.cache.Get(ctx, key)
		if err != nil {
			logger.Warn("recommendation_cache_get_failed", "trace_id", tid, "key", key, "error", err)
		}
		if ok {
			cached.Metadata.CacheHit = true
			observeRequest(p.pageContext, string(p.algorithm), true, time.Since(start))
			logger.Debug("diverse_recommend_cache_hit", "trace_id", tid, "key", key)
			return cached, nil
		}
	}

	// 2) oversampled candidate pool
	candidates, err := s.loadCandidates(ctx, p)
	if err != nil {
		return domain.DiverseRecommendationResponse{}, err
	}

	logger.Debug("diverse_recommend",
		"trace_id", tid,
		"user_id", p.userID,
		"context", p.pageContext,
		"algorithm", p.algorithm,
		"mode", p.modeName(),
		"limit", p.limit,
		"candidate_count", len(candidates),
	)

	if len(candidates) == 0 {
		observeRequest(p.pageContext, string(p.algorithm), false, time.Since(start))
		return s.emptyResponse(p), nil
	}

	// 3) selection
	items, err := s.selectItems(candidates, p)
	if err != nil {
		return domain.DiverseRecommendationResponse{}, err
	}

	// 4) category floor
	items = s.enforceMinCategories(ctx, items, p)

	// 5) metadata + payload
	resp := domain.DiverseRecommendationResponse{
		Recommendations: items,
		Metadata:        s.responseMetadata(p, diversity.Summarize(items, len(candidates)), len(items)),
	}

	if resp.Metadata.DiversityScore < p.opts.TargetDiversityScore {
		metrics.ObserveShortfall("below_target")
		logger.Info("diversity_below_target",
			"trace_id", tid,
			"context", p.pageContext,
			"score", resp.Metadata.DiversityScore,
			"target", p.opts.TargetDiversityScore,
		)
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, key, resp, s.cfg.CacheTTL); err != nil {
			logger.Warn("recommendation_cache_set_failed", "trace_id", tid, "key", key, "error", err)
		}
	}

	took := time.Since(start)
	observeRequest(p.pageContext, string(p.algorithm), false, took)
	metrics.ObserveDiversityScore(p.pageContext, resp.Metadata.DiversityScore)
	s.recordAnalytics(ctx, p, resp, took)

	return resp, nil
}

func (s *Service) selectItems(candidates []domain.Item, p plan) ([]domain.Item, error) {
	if p.greedy() {
		sel := diversity.SelectGreedy(candidates, p.limit, s.now())
		if sel.State == diversity.StateExhausted {
			metrics.ObserveShortfall("exhausted")
		}
		return sel.Items, nil
	}

	items, err := diversity.ApplyMode(candidates, p.dispatchMode(), p.opts)
	if err != nil {
		return nil, err
	}
	if len(items) > p.limit {
		items = items[:p.limit]
	}
	if len(items) < p.limit {
		metrics.ObserveShortfall("exhausted")
	}
	return items, nil
}

func (s *Service) responseMetadata(p plan, md domain.DiversityMetadata, returned int) domain.RecommendationMetadata {
	return domain.RecommendationMetadata{
		DiversityMetadata: md,
		Algorithm:         string(p.algorithm),
		Mode:              p.modeName(),
		Context:           p.pageContext,
		RequestedLimit:    p.limit,
		ReturnedCount:     returned,
	}
}

func (s *Service) emptyResponse(p plan) domain.DiverseRecommendationResponse {
	return domain.DiverseRecommendationResponse{
		Recommendations: []domain.Item{},
		Metadata:        s.responseMetadata(p, diversity.Summarize(nil, 0), 0),
	}
}
