package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"densityhq/callisto/pkg/config"
)

// ValidationMetrics tracks metrics for the validation engine.
//
// Metrics:
//   - densityhq_callisto_validations_total: validation passes by mode and outcome
//   - densityhq_callisto_validation_duration_seconds: pass duration histogram
//   - densityhq_callisto_field_errors_total: structural errors by field name
//   - densityhq_callisto_dependency_issues_total: dependency findings by severity
type ValidationMetrics struct {
	validationsTotal *prometheus.CounterVec
	duration         *prometheus.HistogramVec
	fieldErrors      *prometheus.CounterVec
	issues           *prometheus.CounterVec
}

// NewValidationMetrics creates and registers validation metrics with the
// provided registry.
func NewValidationMetrics(cfg *config.MetricsConfig, registry *prometheus.Registry) *ValidationMetrics {
	vm := &ValidationMetrics{
		validationsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: Namespace,
				Subsystem: Subsystem,
				Name:      "validations_total",
				Help:      "Total number of validation passes by mode and outcome",
			},
			[]string{"mode", "outcome"},
		),

		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: Namespace,
				Subsystem: Subsystem,
				Name:      "validation_duration_seconds",
				Help:      "Duration of validation passes in seconds",
				Buckets:   cfg.DurationBuckets,
			},
			[]string{"mode"},
		),

		fieldErrors: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: Namespace,
				Subsystem: Subsystem,
				Name:      "field_errors_total",
				Help:      "Total number of structural validation errors by field",
			},
			[]string{"field"},
		),

		issues: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: Namespace,
				Subsystem: Subsystem,
				Name:      "dependency_issues_total",
				Help:      "Total number of cross-parameter findings by severity",
			},
			[]string{"severity"},
		),
	}

	registry.MustRegister(
		vm.validationsTotal,
		vm.duration,
		vm.fieldErrors,
		vm.issues,
	)

	return vm
}

// RecordPass records a completed validation pass.
func (vm *ValidationMetrics) RecordPass(mode, outcome string, duration time.Duration) {
	vm.validationsTotal.WithLabelValues(mode, outcome).Inc()
	vm.duration.WithLabelValues(mode).Observe(duration.Seconds())
}

// RecordFieldErrors records structural errors attributed to a field.
// The field label set is bounded by the schema, so cardinality stays small.
func (vm *ValidationMetrics) RecordFieldErrors(field string, count int) {
	if count > 0 {
		vm.fieldErrors.WithLabelValues(field).Add(float64(count))
	}
}

// RecordIssues records dependency findings of the given severity.
func (vm *ValidationMetrics) RecordIssues(severity string, count int) {
	if count > 0 {
		vm.issues.WithLabelValues(severity).Add(float64(count))
	}
}
