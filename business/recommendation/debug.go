package recommendation

import (
	"context"
	"fmt"

	"myDiverseMarket/business/diversity"
	"myDiverseMarket/domain"
	"myDiverseMarket/pkg/logger"
)

// DebugRecommend runs the hybrid selector and returns the decision taken
// for every candidate. Bypasses the cache and records no analytics.
func (s *Service) DebugRecommend(
	ctx context.Context,
	req domain.DiverseRecommendationRequest,
) (domain.DebugRecommendationResponse, error) {

	if err := ctx.Err(); err != nil {
		return domain.DebugRecommendationResponse{}, fmt.Errorf("context error: %w", err)
	}

	p, err := s.buildPlan(ctx, req)
	if err != nil {
		return domain.DebugRecommendationResponse{}, err
	}

	candidates, err := s.loadCandidates(ctx, p)
	if err != nil {
		return domain.DebugRecommendationResponse{}, err
	}

	logger.Debug("diverse_debug_recommend",
		"trace_id", TraceIDFromContext(ctx),
		"user_id", p.userID,
		"context", p.pageContext,
		"limit", p.limit,
		"candidate_count", len(candidates),
	)

	sel := diversity.TraceGreedy(candidates, p.limit, s.now())
	decisions := sel.Decisions
	if decisions == nil {
		decisions = []domain.CandidateDecision{}
	}

	return domain.DebugRecommendationResponse{
		Candidates: decisions,
		Options:    p.opts,
	}, nil
}
