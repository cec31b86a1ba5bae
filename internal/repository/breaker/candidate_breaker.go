package breaker

import (
	"context"
	"errors"
	"fmt"
	"time"

	"myDiverseMarket/business/recommendation"
	"myDiverseMarket/domain"
	"myDiverseMarket/pkg/logger"

	"github.com/sony/gobreaker/v2"
)

type Config struct {
	Name             string
	FailureThreshold uint32
	Timeout          time.Duration
	Interval         time.Duration
	MaxRequests      uint32
}

func DefaultConfig() Config {
	return Config{
		Name:             "candidate-source",
		FailureThreshold: 5,
		Timeout:          30 * time.Second,
		Interval:         time.Minute,
		MaxRequests:      1,
	}
}

// CandidateSource fails fast while the wrapped source keeps failing, so a
// dead database turns into quick service failures instead of piled up
// timeouts.
type CandidateSource struct {
	next recommendation.CandidateSource
	cb   *gobreaker.CircuitBreaker[[]domain.Item]
}

var _ recommendation.CandidateSource = (*CandidateSource)(nil)

func NewCandidateSource(next recommendation.CandidateSource, cfg Config) *CandidateSource {
	settings := gobreaker.Settings{
		Name:        cfg.Name,
		MaxRequests: cfg.MaxRequests,
		Interval:    cfg.Interval,
		Timeout:     cfg.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= cfg.FailureThreshold
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("circuit_breaker_state_change",
				"name", name,
				"from", from.String(),
				"to", to.String(),
			)
		},
		// a caller giving up says nothing about the database
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, context.Canceled)
		},
	}

	return &CandidateSource{
		next: next,
		cb:   gobreaker.NewCircuitBreaker[[]domain.Item](settings),
	}
}

func (s *CandidateSource) FetchCandidates(ctx context.Context, filter domain.CandidateFilter, limit int) ([]domain.Item, error) {
	items, err := s.cb.Execute(func() ([]domain.Item, error) {
		return s.next.FetchCandidates(ctx, filter, limit)
	})
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return nil, fmt.Errorf("candidate source circuit %s: %w", s.cb.State(), err)
	}
	return items, err
}

func (s *CandidateSource) State() string {
	return s.cb.State().String()
}
