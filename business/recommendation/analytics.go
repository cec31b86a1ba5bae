package recommendation

import (
	"context"
	"time"

	"myDiverseMarket/domain"
	"myDiverseMarket/pkg/logger"

	"gorm.io/datatypes"
)

// recordAnalytics hands the event to every sink on a detached context. It
// returns immediately; failures are logged and never reach the caller.
func (s *Service) recordAnalytics(ctx context.Context, p plan, resp domain.DiverseRecommendationResponse, took time.Duration) {
	if len(s.sinks) == 0 {
		return
	}

	event := domain.RecommendationEvent{
		UserID:         p.userID,
		Context:        p.pageContext,
		Algorithm:      string(p.algorithm),
		Limit:          p.limit,
		ReturnedCount:  len(resp.Recommendations),
		DiversityScore: resp.Metadata.DiversityScore,
		ResponseTimeMs: took.Milliseconds(),
		Options: datatypes.JSONMap{
			"max_per_category":       p.opts.MaxPerCategory,
			"max_per_brand":          p.opts.MaxPerBrand,
			"price_ranges":           p.opts.PriceRanges,
			"min_rating":             p.opts.MinRating,
			"target_diversity_score": p.opts.TargetDiversityScore,
			"min_categories":         p.opts.MinCategories,
			"mode":                   p.modeName(),
		},
		CreatedAt: s.now(),
	}

	tid := TraceIDFromContext(ctx)
	timeout := s.cfg.AnalyticsTimeout
	if timeout <= 0 {
		timeout = defaultAnalyticsTimeout
	}

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()

		bg, cancel := context.WithTimeout(WithTraceID(context.Background(), tid), timeout)
		defer cancel()

		for _, sink := range s.sinks {
			if err := sink.RecordRecommendation(bg, event); err != nil {
				logger.Warn("recommendation_analytics_failed",
					"trace_id", tid,
					"context", event.Context,
					"error", err,
				)
			}
		}
	}()
}

// Wait blocks until in-flight analytics writes finish. Used on shutdown.
func (s *Service) Wait() {
	s.wg.Wait()
}
