package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RedisErrors counts Redis errors by operation type.
	RedisErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "trendpulse_redis_errors_total",
		Help: "Total number of Redis errors by operation type",
	}, []string{"operation"})

	// CacheHits counts cache hits per cache region.
	CacheHits = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "trendpulse_cache_hits_total",
		Help: "Total cache hits by region",
	}, []string{"region"})

	// CacheMisses counts cache misses per cache region.
	CacheMisses = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "trendpulse_cache_misses_total",
		Help: "Total cache misses by region",
	}, []string{"region"})

	// AnalysisRuns counts completed analysis runs by outcome.
	AnalysisRuns = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "trendpulse_analysis_runs_total",
		Help: "Total snapshot builds by outcome (ok, empty, error)",
	}, []string{"outcome"})

	// AnalysisDuration records snapshot build duration in seconds.
	AnalysisDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "trendpulse_analysis_duration_seconds",
		Help:    "Snapshot build duration in seconds",
		Buckets: prometheus.DefBuckets,
	})

	// DatabaseQueryLatency records database query latency by operation and table.
	DatabaseQueryLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "trendpulse_database_query_latency_seconds",
		Help:    "Database query latency in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"operation", "table"})
)

// TrackQuery returns a function that records query latency when called (e.g. defer).
func TrackQuery(operation, table string) func() {
	start := time.Now()
	return func() {
		DatabaseQueryLatency.WithLabelValues(operation, table).Observe(time.Since(start).Seconds())
	}
}

// TrackAnalysis returns a function that records an analysis run's duration
// and outcome when called.
func TrackAnalysis() func(outcome string) {
	start := time.Now()
	return func(outcome string) {
		AnalysisDuration.Observe(time.Since(start).Seconds())
		AnalysisRuns.WithLabelValues(outcome).Inc()
	}
}
