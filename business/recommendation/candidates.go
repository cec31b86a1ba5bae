package recommendation

import (
	"context"
	"fmt"

	"myDiverseMarket/business/diversity"
	"myDiverseMarket/domain"
)

// loadCandidates fetches an oversampled pool for the plan and drops any
// excluded or repeated ids the source let through.
func (s *Service) loadCandidates(ctx context.Context, p plan) ([]domain.Item, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	oversample := s.cfg.Oversample
	if oversample < 1 {
		oversample = diversity.OversampleFactor
	}
	candidateLimit := p.limit * oversample
	if candidateLimit < p.limit {
		candidateLimit = p.limit
	}

	items, err := s.source.FetchCandidates(ctx, p.filter, candidateLimit)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCandidateSource, err)
	}

	return diversity.FilterExcluded(items, p.filter.ExcludeIDs), nil
}
