package recommendation

import (
	"context"
	"slices"

	"myDiverseMarket/business/diversity"
	"myDiverseMarket/domain"
	"myDiverseMarket/pkg/logger"
	"myDiverseMarket/pkg/metrics"
)

// enforceMinCategories tops a selection up with items from categories it
// does not show yet, then trims back to limit by dropping the lowest ranked
// existing items. Best effort: a failing or dry source leaves items as is.
func (s *Service) enforceMinCategories(
	ctx context.Context,
	items []domain.Item,
	p plan,
) []domain.Item {
	minimum := min(p.opts.MinCategories, p.limit)
	represented := diversity.DistinctCategories(items)
	missing := minimum - len(represented)
	if missing <= 0 || len(items) == 0 {
		return items
	}

	filter := p.filter
	filter.ExcludeIDs = slices.Clone(p.filter.ExcludeIDs)
	for _, it := range items {
		filter.ExcludeIDs = append(filter.ExcludeIDs, it.ID)
	}
	filter.ExcludeCategoryKeys = append(slices.Clone(p.filter.ExcludeCategoryKeys), represented...)

	tid := TraceIDFromContext(ctx)

	fetched, err := s.source.FetchCandidates(ctx, filter, missing*diversity.OversampleFactor)
	if err != nil {
		logger.Warn("min_categories_fetch_failed",
			"trace_id", tid,
			"missing", missing,
			"error", err,
		)
		metrics.ObserveShortfall("min_categories")
		return items
	}

	extra := onePerNewCategory(diversity.FilterExcluded(fetched, filter.ExcludeIDs), represented, missing)
	if len(extra) < missing {
		metrics.ObserveShortfall("min_categories")
	}
	if len(extra) == 0 {
		return items
	}

	keep := min(len(items), max(p.limit-len(extra), 0))
	out := make([]domain.Item, 0, keep+len(extra))
	out = append(out, items[:keep]...)
	out = append(out, extra...)
	if len(out) > p.limit {
		out = out[:p.limit]
	}

	logger.Debug("min_categories_enforced",
		"trace_id", tid,
		"missing", missing,
		"added", len(extra),
		"dropped", len(items)-keep,
	)
	return out
}

// onePerNewCategory keeps the first item of each category not in
// represented, up to n items.
func onePerNewCategory(items []domain.Item, represented []string, n int) []domain.Item {
	seen := make(map[string]struct{}, len(represented)+n)
	for _, c := range represented {
		seen[c] = struct{}{}
	}

	out := make([]domain.Item, 0, n)
	for _, it := range items {
		if len(out) == n {
			break
		}
		if _, ok := seen[it.CategoryKey]; ok {
			continue
		}
		seen[it.CategoryKey] = struct{}{}
		out = append(out, it)
	}
	return out
}
