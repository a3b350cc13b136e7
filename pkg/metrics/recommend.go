package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	// Latency of the personalized recommendation HTTP handler
	RecommendLatency = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "recommend_latency_seconds",
		Help:    "Latency of the personalized recommendations handler",
		Buckets: prometheus.DefBuckets,
	})

	// Requests served per engine entry point
	RecommendRequests = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "recommend_requests_total",
		Help: "Total recommendation requests served, per entry point",
	}, []string{"entry_point"})

	CatalogCacheHits = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "catalog_cache_hits_total",
		Help: "Catalog snapshot cache hits",
	})

	CatalogCacheMisses = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "catalog_cache_misses_total",
		Help: "Catalog snapshot cache misses",
	})
)

func Init() {
	prometheus.MustRegister(
		RecommendLatency,
		RecommendRequests,
		CatalogCacheHits,
		CatalogCacheMisses,
	)
}
