// Package observability holds the Prometheus instrumentation shared across
// services.
package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus counters and histograms for the alert
// pipeline.
type Metrics struct {
	// Translation resolution by tier: static, cache, ai, fallback.
	TranslationsResolved *prometheus.CounterVec // labels: tier
	TranslationDuration  prometheus.Histogram

	// AI provider calls by provider and outcome.
	ProviderCalls *prometheus.CounterVec // labels: provider={gemini,openai}, outcome={success,error}

	// Nationwide warning aggregation.
	AreaFetches         *prometheus.CounterVec // labels: outcome={success,error}
	AggregationDuration prometheus.Histogram

	// Quake feed polls.
	QuakeFetches *prometheus.CounterVec // labels: outcome={success,error}

	// Tsunami bulletin feed polls.
	TsunamiFetches *prometheus.CounterVec // labels: outcome={success,error}

	// Volcano catalog and per-volcano alert fetches.
	VolcanoFetches *prometheus.CounterVec // labels: outcome={success,error}
}

// NewMetrics creates and registers all pipeline metrics with the default
// Prometheus registry.
func NewMetrics() *Metrics {
	m := newMetrics()
	prometheus.MustRegister(
		m.TranslationsResolved,
		m.TranslationDuration,
		m.ProviderCalls,
		m.AreaFetches,
		m.AggregationDuration,
		m.QuakeFetches,
		m.TsunamiFetches,
		m.VolcanoFetches,
	)
	return m
}

// NewMetricsForTesting creates Metrics without registering them, so tests
// can construct services repeatedly without "already registered" panics.
func NewMetricsForTesting() *Metrics {
	return newMetrics()
}

func newMetrics() *Metrics {
	return &Metrics{
		TranslationsResolved: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "bosai",
			Name:      "translations_resolved_total",
			Help:      "Translations resolved, by resolution tier.",
		}, []string{"tier"}),
		TranslationDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "bosai",
			Name:      "translation_duration_seconds",
			Help:      "End-to-end duration of a single translation resolution.",
			Buckets:   []float64{0.0001, 0.001, 0.01, 0.1, 0.5, 1, 2.5, 5, 10, 15},
		}),
		ProviderCalls: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "bosai",
			Name:      "provider_calls_total",
			Help:      "AI provider calls by provider and outcome.",
		}, []string{"provider", "outcome"}),
		AreaFetches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "bosai",
			Name:      "area_fetches_total",
			Help:      "Per-prefecture warning fetches by outcome.",
		}, []string{"outcome"}),
		AggregationDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "bosai",
			Name:      "aggregation_duration_seconds",
			Help:      "Duration of a full 47-prefecture aggregation pass.",
			Buckets:   []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10, 20, 30},
		}),
		QuakeFetches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "bosai",
			Name:      "quake_fetches_total",
			Help:      "Earthquake feed polls by outcome.",
		}, []string{"outcome"}),
		TsunamiFetches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "bosai",
			Name:      "tsunami_fetches_total",
			Help:      "Tsunami bulletin feed polls by outcome.",
		}, []string{"outcome"}),
		VolcanoFetches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "bosai",
			Name:      "volcano_fetches_total",
			Help:      "Volcano catalog and alert fetches by outcome.",
		}, []string{"outcome"}),
	}
}
