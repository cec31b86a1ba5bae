package recommendation

import (
	"strconv"
	"time"

	"myDiverseMarket/pkg/metrics"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	DiverseRecommendRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "diverse_recommend_requests_total",
			Help: "Count of diverse recommendation requests by context, algorithm and cache hit.",
		},
		[]string{"context", "algorithm", "cache_hit"},
	)
)

func init() {
	prometheus.MustRegister(DiverseRecommendRequestsTotal)
}

func observeRequest(pageContext, algorithm string, cacheHit bool, took time.Duration) {
	DiverseRecommendRequestsTotal.
		WithLabelValues(pageContext, algorithm, strconv.FormatBool(cacheHit)).
		Inc()
	metrics.ObserveLatency(cacheHit, took)
}
