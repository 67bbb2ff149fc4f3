package metrics

import "github.com/prometheus/client_golang/prometheus"

// Engine counters. Registered explicitly via RegisterEngineMetrics (no init())
// so library consumers of the usecase packages keep a clean default registry.
var (
	SearchesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "conserve",
			Name:      "searches_total",
			Help:      "Advanced searches by ranking mode",
		},
		[]string{"mode"}, // filtered | semantic
	)

	SimilarLookupsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "conserve",
			Name:      "similar_lookups_total",
			Help:      "Find-similar lookups",
		},
	)

	RecommendationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "conserve",
			Name:      "recommendations_total",
			Help:      "Recommendation requests by profile path",
		},
		[]string{"path"}, // cold | warm
	)
)

// RegisterEngineMetrics registers the engine counters with the default
// prometheus registry.
func RegisterEngineMetrics() {
	prometheus.MustRegister(SearchesTotal)
	prometheus.MustRegister(SimilarLookupsTotal)
	prometheus.MustRegister(RecommendationsTotal)
}
