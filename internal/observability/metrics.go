package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// SimulationsTotal counts simulation requests by policy and outcome
	SimulationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "pagesim_simulations_total",
		Help: "The total number of simulation requests",
	}, []string{"policy", "status"})

	// PageFaultsTotal counts faults produced by completed simulations
	PageFaultsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "pagesim_page_faults_total",
		Help: "The total number of page faults across simulations",
	}, []string{"policy"})

	// PageHitsTotal counts references served without a fault
	PageHitsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "pagesim_page_hits_total",
		Help: "The total number of page hits across simulations",
	}, []string{"policy"})

	// ResultCacheHitsTotal counts simulations answered from the result cache
	ResultCacheHitsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "pagesim_result_cache_hits_total",
		Help: "The total number of result cache hits",
	})

	// ResultCacheMissesTotal counts simulations that had to be computed
	ResultCacheMissesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "pagesim_result_cache_misses_total",
		Help: "The total number of result cache misses",
	})

	// ResultCacheEvictionsTotal counts results dropped to make room
	ResultCacheEvictionsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "pagesim_result_cache_evictions_total",
		Help: "The total number of result cache evictions",
	})

	// SimulationDurationSeconds measures engine latency
	SimulationDurationSeconds = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "pagesim_simulation_duration_seconds",
		Help:    "The latency of simulation runs",
		Buckets: prometheus.DefBuckets,
	}, []string{"policy"})
)
