package recommendation

import (
	"context"
	"slices"

	"myDiverseMarket/business/diversity"
	"myDiverseMarket/domain"
)

// plan is a validated request with every default applied.
type plan struct {
	userID      uint
	limit       int
	pageContext string
	algorithm   Algorithm
	mode        diversity.Mode
	hasMode     bool
	opts        domain.DiversityOptions
	filter      domain.CandidateFilter
}

func (s *Service) buildPlan(ctx context.Context, req domain.DiverseRecommendationRequest) (plan, error) {
	pageContext, err := parseContext(req.Context)
	if err != nil {
		return plan{}, err
	}
	algorithm, err := parseAlgorithm(req.Algorithm)
	if err != nil {
		return plan{}, err
	}

	p := plan{
		userID:      req.UserID,
		limit:       s.clampLimit(req.Limit),
		pageContext: pageContext,
		algorithm:   algorithm,
	}

	if req.Mode != "" {
		mode, err := diversity.ParseMode(req.Mode)
		if err != nil {
			return plan{}, err
		}
		p.mode, p.hasMode = mode, true
	}

	p.opts = s.loadOptions(ctx, pageContext, req.Options)

	excluded := make([]uint64, 0, len(req.ExcludeIDs)+len(req.ShownIDs))
	excluded = append(excluded, req.ExcludeIDs...)
	excluded = append(excluded, req.ShownIDs...)
	slices.Sort(excluded)
	excluded = slices.Compact(excluded)

	stores := slices.Clone(req.ExcludeGroups)
	slices.Sort(stores)
	stores = slices.Compact(stores)

	p.filter = domain.CandidateFilter{
		ExcludeIDs:      excluded,
		ExcludeStoreIDs: stores,
		Region:          req.Region,
	}
	return p, nil
}

func (s *Service) clampLimit(limit int) int {
	maxLimit := s.cfg.MaxLimit
	if maxLimit <= 0 || maxLimit > defaultMaxLimit {
		maxLimit = defaultMaxLimit
	}
	if limit <= 0 {
		limit = s.cfg.DefaultLimit
		if limit <= 0 {
			limit = defaultLimit
		}
	}
	return min(max(limit, 1), maxLimit)
}

// greedy reports whether the hybrid selector serves this plan. An explicit
// mode always goes through the mode dispatcher.
func (p plan) greedy() bool {
	if p.hasMode {
		return false
	}
	return p.algorithm == AlgorithmHybrid || p.algorithm == AlgorithmContentBased
}

func (p plan) modeName() string {
	if p.greedy() {
		return ""
	}
	if !p.hasMode {
		return diversity.ModeBalanced.String()
	}
	return p.mode.String()
}

func (p plan) dispatchMode() diversity.Mode {
	if p.hasMode {
		return p.mode
	}
	return diversity.ModeBalanced
}
