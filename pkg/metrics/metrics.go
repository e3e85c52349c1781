package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds all library metrics. They live on a private registry so
// embedding applications keep full control over exposition.
type Metrics struct {
	registry *prometheus.Registry

	// Exercise evaluation metrics
	Evaluations       *prometheus.CounterVec
	EvaluationErrors  *prometheus.CounterVec
	EvaluationLatency *prometheus.HistogramVec

	// Conversion cache metrics
	CacheHits   *prometheus.CounterVec
	CacheMisses *prometheus.CounterVec

	// Password validation outcomes
	ValidationResults *prometheus.CounterVec
}

// NewMetrics creates and registers all library metrics on a fresh registry.
func NewMetrics(namespace string) *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),

		Evaluations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "exercise_evaluations_total",
			Help:      "Total number of exercise evaluations",
		}, []string{"exercise"}),

		EvaluationErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "exercise_evaluation_errors_total",
			Help:      "Total number of exercise evaluations that returned an error",
		}, []string{"exercise"}),

		EvaluationLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "exercise_evaluation_duration_seconds",
			Help:      "Time spent evaluating an exercise",
			Buckets:   []float64{.000001, .00001, .0001, .001, .01, .1},
		}, []string{"exercise"}),

		CacheHits: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "conversion_cache_hits_total",
			Help:      "Total number of conversion results served from cache",
		}, []string{"conversion"}),

		CacheMisses: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "conversion_cache_misses_total",
			Help:      "Total number of conversions computed and cached",
		}, []string{"conversion"}),

		ValidationResults: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "password_validations_total",
			Help:      "Total number of password validations by strength",
		}, []string{"strength"}),
	}

	m.registry.MustRegister(
		m.Evaluations,
		m.EvaluationErrors,
		m.EvaluationLatency,
		m.CacheHits,
		m.CacheMisses,
		m.ValidationResults,
	)

	return m
}

// Registry exposes the private registry for gathering.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}
