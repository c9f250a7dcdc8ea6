package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	dserrors "turnlint-hq/turnlint/pkg/dataset/errors"
)

// namespace prefixes every metric name.
const namespace = "turnlint"

// ValidationMetrics tracks metrics about validation runs.
//
// Metrics:
//   - turnlint_validation_runs_total: validation runs by outcome
//   - turnlint_validation_errors_total: findings by error category
//   - turnlint_validation_warnings_total: warnings across all runs
//   - turnlint_validation_turns_total: turns validated across all runs
//   - turnlint_validation_duration_seconds: validation pass duration
type ValidationMetrics struct {
	registry *prometheus.Registry

	runsTotal     *prometheus.CounterVec
	errorsTotal   *prometheus.CounterVec
	warningsTotal prometheus.Counter
	turnsTotal    prometheus.Counter
	duration      prometheus.Histogram
}

// NewValidationMetrics creates and registers validation metrics. A nil
// registry gets a fresh one, available through Registry.
func NewValidationMetrics(registry *prometheus.Registry) *ValidationMetrics {
	if registry == nil {
		registry = prometheus.NewRegistry()
	}

	m := &ValidationMetrics{
		registry: registry,

		runsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "validation_runs_total",
				Help:      "Total number of validation runs",
			},
			[]string{"outcome"},
		),

		errorsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "validation_errors_total",
				Help:      "Total number of validation errors by category",
			},
			[]string{"type"},
		),

		warningsTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "validation_warnings_total",
				Help:      "Total number of validation warnings",
			},
		),

		turnsTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "validation_turns_total",
				Help:      "Total number of turns validated",
			},
		),

		duration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "validation_duration_seconds",
				Help:      "Duration of validation passes in seconds",
				// Whole-document passes are fast; sub-millisecond buckets
				// still matter for small datasets.
				Buckets: prometheus.ExponentialBuckets(0.0001, 4, 10),
			},
		),
	}

	registry.MustRegister(
		m.runsTotal,
		m.errorsTotal,
		m.warningsTotal,
		m.turnsTotal,
		m.duration,
	)

	return m
}

// Registry returns the prometheus registry the metrics are registered with.
func (m *ValidationMetrics) Registry() *prometheus.Registry {
	return m.registry
}

// Observe records one completed validation run.
func (m *ValidationMetrics) Observe(result *dserrors.Result, elapsed time.Duration) {
	outcome := "valid"
	if !result.IsValid {
		outcome = "invalid"
	}
	m.runsTotal.WithLabelValues(outcome).Inc()

	for _, err := range result.Errors {
		m.errorsTotal.WithLabelValues(string(err.Type)).Inc()
	}

	m.warningsTotal.Add(float64(len(result.Warnings)))
	m.turnsTotal.Add(float64(result.TotalTurns))
	m.duration.Observe(elapsed.Seconds())
}
