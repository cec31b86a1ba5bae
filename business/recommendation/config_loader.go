package recommendation

import (
	"context"

	"myDiverseMarket/business/diversity"
	"myDiverseMarket/domain"
	"myDiverseMarket/pkg/logger"
)

// loadOptions resolves options for one request: defaults, then the stored
// row for the page context, then the caller's overrides.
func (s *Service) loadOptions(
	ctx context.Context,
	pageContext string,
	in domain.DiversityOptionsInput,
) domain.DiversityOptions {
	base := s.loadContextOptions(ctx, pageContext)
	return diversity.ApplyInput(base, in)
}

func (s *Service) loadContextOptions(ctx context.Context, pageContext string) domain.DiversityOptions {
	opts := s.cfg.Options
	if s.cfgRepo == nil {
		return opts
	}

	row, ok, err := s.cfgRepo.GetConfig(ctx, pageContext)
	if err != nil {
		logger.Warn("diversity_config_load_failed",
			"trace_id", TraceIDFromContext(ctx),
			"context", pageContext,
			"error", err,
		)
		return opts
	}
	if !ok {
		return opts
	}

	// zero columns keep the default
	if row.MaxPerCategory > 0 {
		opts.MaxPerCategory = row.MaxPerCategory
	}
	if row.MaxPerBrand > 0 {
		opts.MaxPerBrand = row.MaxPerBrand
	}
	if row.PriceRanges > 0 {
		opts.PriceRanges = row.PriceRanges
	}
	if row.MinRating > 0 {
		opts.MinRating = row.MinRating
	}
	if row.TargetDiversityScore > 0 {
		opts.TargetDiversityScore = row.TargetDiversityScore
	}
	if row.MinCategories > 0 {
		opts.MinCategories = row.MinCategories
	}

	return diversity.Sanitize(opts)
}
