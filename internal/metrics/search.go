package metrics

import "github.com/prometheus/client_golang/prometheus"

// Search Prometheus metrics.
var (
	SearchDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "unisearch",
			Name:      "search_duration_seconds",
			Help:      "End-to-end search execution time in seconds",
			Buckets:   []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2, 5},
		},
	)

	SearchResultCount = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "unisearch",
			Name:      "search_result_count",
			Help:      "Merged result-set size per search",
			Buckets:   []float64{0, 1, 5, 10, 25, 50, 100, 250, 500},
		},
	)

	SearchPartialTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "unisearch",
			Name:      "search_partial_total",
			Help:      "Searches that returned a partial result set",
		},
	)

	SearchKindFailuresTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "unisearch",
			Name:      "search_kind_failures_total",
			Help:      "Per-kind retrieval failures (catalog errors)",
		},
		[]string{"kind"},
	)
)

var searchMetricsRegistered bool

// RegisterSearchMetrics registers Prometheus search metrics. Must be called once from main.
func RegisterSearchMetrics() {
	if searchMetricsRegistered {
		return
	}
	prometheus.MustRegister(SearchDuration)
	prometheus.MustRegister(SearchResultCount)
	prometheus.MustRegister(SearchPartialTotal)
	prometheus.MustRegister(SearchKindFailuresTotal)
	searchMetricsRegistered = true
}
