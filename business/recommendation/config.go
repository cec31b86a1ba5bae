package recommendation

import (
	"context"
	"errors"
	"fmt"
	"time"

	"myDiverseMarket/business/diversity"
	"myDiverseMarket/domain"
)

type Config struct {
	CacheTTL         time.Duration
	Oversample       int
	DefaultLimit     int
	MaxLimit         int
	AnalyticsTimeout time.Duration
	Options          domain.DiversityOptions
}

const (
	defaultCacheTTL         = 300 * time.Second
	defaultLimit            = 10
	defaultMaxLimit         = 50
	defaultAnalyticsTimeout = 5 * time.Second
)

func DefaultConfig() Config {
	return Config{
		CacheTTL:         defaultCacheTTL,
		Oversample:       diversity.OversampleFactor,
		DefaultLimit:     defaultLimit,
		MaxLimit:         defaultMaxLimit,
		AnalyticsTimeout: defaultAnalyticsTimeout,
		Options:          diversity.DefaultOptions(),
	}
}

// page contexts a request may be served for
const (
	ContextHomepage     = "homepage"
	ContextProductPage  = "product_page"
	ContextStorePage    = "store_page"
	ContextCategoryPage = "category_page"
)

type Algorithm string

const (
	AlgorithmHybrid        Algorithm = "hybrid"
	AlgorithmContentBased  Algorithm = "content_based"
	AlgorithmCollaborative Algorithm = "collaborative"
)

var (
	ErrInvalidAlgorithm = fmt.Errorf("%w: unknown algorithm", diversity.ErrInvalidArgument)
	ErrInvalidContext   = fmt.Errorf("%w: unknown context", diversity.ErrInvalidArgument)
	ErrCandidateSource  = errors.New("candidate source unavailable")
)

func parseAlgorithm(s string) (Algorithm, error) {
	switch Algorithm(s) {
	case "":
		return AlgorithmHybrid, nil
	case AlgorithmHybrid, AlgorithmContentBased, AlgorithmCollaborative:
		return Algorithm(s), nil
	}
	return "", fmt.Errorf("%w %q", ErrInvalidAlgorithm, s)
}

func parseContext(s string) (string, error) {
	switch s {
	case "":
		return ContextHomepage, nil
	case ContextHomepage, ContextProductPage, ContextStorePage, ContextCategoryPage:
		return s, nil
	}
	return "", fmt.Errorf("%w %q", ErrInvalidContext, s)
}

// fetches ordered, resolved candidates that pass filter.
type CandidateSource interface {
	FetchCandidates(ctx context.Context, filter domain.CandidateFilter, limit int) ([]domain.Item, error)
}

// memoizes finished responses.
type ResultCache interface {
	Get(ctx context.Context, key string) (domain.DiverseRecommendationResponse, bool, error)
	Set(ctx context.Context, key string, resp domain.DiverseRecommendationResponse, ttl time.Duration) error
}

// records served lists, best effort.
type AnalyticsSink interface {
	RecordRecommendation(ctx context.Context, event domain.RecommendationEvent) error
}

// read/write per-context diversity overrides.
type ConfigRepository interface {
	GetConfig(ctx context.Context, pageContext string) (domain.DiversityConfig, bool, error)
	UpsertConfig(ctx context.Context, cfg domain.DiversityConfig) error
}
