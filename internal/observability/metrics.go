package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus counters, histograms, and gauges for the
// analysis engine.
type Metrics struct {
	DistrictsAnalyzed prometheus.Counter
	MissionsGenerated prometheus.Counter
	AnalysisErrors    prometheus.Counter
	EngineRunning     prometheus.Gauge

	// Batch cycle metrics.
	BatchSize     prometheus.Histogram
	BatchDuration prometheus.Histogram
	PriorityScore prometheus.Histogram

	// Provider metrics.
	ProviderRequests  *prometheus.CounterVec // labels: source={wfs,synthetic}, outcome={success,error,empty}
	ProviderFallbacks prometheus.Counter
	ParkCacheLookups  *prometheus.CounterVec // labels: result={hit,miss}
}

// NewMetrics creates and registers all engine metrics with the default
// Prometheus registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		DistrictsAnalyzed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "urban_cooling",
			Name:      "districts_analyzed_total",
			Help:      "Total districts run through the analysis pipeline.",
		}),
		MissionsGenerated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "urban_cooling",
			Name:      "missions_generated_total",
			Help:      "Total missions composed and published.",
		}),
		AnalysisErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "urban_cooling",
			Name:      "analysis_errors_total",
			Help:      "Total analysis failures.",
		}),
		EngineRunning: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "urban_cooling",
			Name:      "engine_running",
			Help:      "1 when the batch loop is active, 0 when shut down.",
		}),
		BatchSize: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "urban_cooling",
			Name:      "batch_size",
			Help:      "Number of missions produced per batch cycle.",
			Buckets:   []float64{1, 2, 3, 5, 10, 15, 20, 30},
		}),
		BatchDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "urban_cooling",
			Name:      "batch_duration_seconds",
			Help:      "Duration of a complete analyze-rank-publish cycle.",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.5, 1, 2.5, 5, 10},
		}),
		PriorityScore: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "urban_cooling",
			Name:      "priority_score",
			Help:      "Distribution of computed district priority scores.",
			Buckets:   []float64{10, 20, 30, 40, 50, 60, 70, 80, 90, 100},
		}),
		ProviderRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "urban_cooling",
			Name:      "provider_requests_total",
			Help:      "Indicator provider requests by source and outcome.",
		}, []string{"source", "outcome"}),
		ProviderFallbacks: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "urban_cooling",
			Name:      "provider_fallbacks_total",
			Help:      "Times the live provider fell back to synthetic data.",
		}),
		ParkCacheLookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "urban_cooling",
			Name:      "park_cache_total",
			Help:      "Park lookup cache accesses by result.",
		}, []string{"result"}),
	}

	prometheus.MustRegister(
		m.DistrictsAnalyzed,
		m.MissionsGenerated,
		m.AnalysisErrors,
		m.EngineRunning,
		m.BatchSize,
		m.BatchDuration,
		m.PriorityScore,
		m.ProviderRequests,
		m.ProviderFallbacks,
		m.ParkCacheLookups,
	)

	return m
}

// NewMetricsForTesting creates Metrics with a fresh registry to avoid
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return &Metrics{
		DistrictsAnalyzed: prometheus.NewCounter(prometheus.CounterOpts{Namespace: "urban_cooling", Name: "districts_analyzed_total"}),
		MissionsGenerated: prometheus.NewCounter(prometheus.CounterOpts{Namespace: "urban_cooling", Name: "missions_generated_total"}),
		AnalysisErrors:    prometheus.NewCounter(prometheus.CounterOpts{Namespace: "urban_cooling", Name: "analysis_errors_total"}),
		EngineRunning:     prometheus.NewGauge(prometheus.GaugeOpts{Namespace: "urban_cooling", Name: "engine_running"}),
		BatchSize:         prometheus.NewHistogram(prometheus.HistogramOpts{Namespace: "urban_cooling", Name: "batch_size"}),
		BatchDuration:     prometheus.NewHistogram(prometheus.HistogramOpts{Namespace: "urban_cooling", Name: "batch_duration_seconds"}),
		PriorityScore:     prometheus.NewHistogram(prometheus.HistogramOpts{Namespace: "urban_cooling", Name: "priority_score"}),
		ProviderRequests:  prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "urban_cooling", Name: "provider_requests_total"}, []string{"source", "outcome"}),
		ProviderFallbacks: prometheus.NewCounter(prometheus.CounterOpts{Namespace: "urban_cooling", Name: "provider_fallbacks_total"}),
		ParkCacheLookups:  prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "urban_cooling", Name: "park_cache_total"}, []string{"result"}),
	}
}
