package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	// Latency of the diverse recommendation flow, cache hits included
	DiverseRecommendLatency = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "diverse_recommend_latency_seconds",
		Help:    "Latency of diverse recommendation requests",
		Buckets: prometheus.DefBuckets,
	}, []string{"cache"})

	// Diversity score of computed (non-cached) lists
	DiversityScore = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "diverse_recommend_diversity_score",
		Help:    "Gini-Simpson diversity score of served recommendation lists",
		Buckets: prometheus.LinearBuckets(0, 0.1, 11),
	}, []string{"context"})

	// Lists that fell short of the requested size, category floor or target score
	Shortfall = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "diverse_recommend_shortfall_total",
		Help: "Recommendation lists that fell short, by reason",
	}, []string{"reason"})
)

func Init() {
	prometheus.MustRegister(
		DiverseRecommendLatency,
		DiversityScore,
		Shortfall,
	)
}

func ObserveLatency(cacheHit bool, d time.Duration) {
	label := "miss"
	if cacheHit {
		label = "hit"
	}
	DiverseRecommendLatency.WithLabelValues(label).Observe(d.Seconds())
}

func ObserveDiversityScore(pageContext string, score float64) {
	DiversityScore.WithLabelValues(pageContext).Observe(score)
}

func ObserveShortfall(reason string) {
	Shortfall.WithLabelValues(reason).Inc()
}
