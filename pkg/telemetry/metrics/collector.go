package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"densityhq/callisto/pkg/config"
	"densityhq/callisto/pkg/validation"
)

// Metric namespace shared by all Callisto metrics.
const (
	Namespace = "densityhq"
	Subsystem = "callisto"
)

// Validation outcomes used as the "outcome" label value.
const (
	OutcomeValid   = "valid"
	OutcomeInvalid = "invalid"
	OutcomeError   = "error"
)

// Collector manages Prometheus metrics for the validation engine.
// All record methods are no-ops when metrics are disabled in the
// configuration, so callers never need to guard their calls.
type Collector struct {
	config   *config.MetricsConfig
	registry *prometheus.Registry

	validationMetrics *ValidationMetrics
	httpMetrics       *HTTPMetrics
}

// NewCollector creates a new metrics collector with the specified
// configuration and Prometheus registry. If registry is nil, a fresh
// registry is created.
func NewCollector(cfg *config.MetricsConfig, registry *prometheus.Registry) *Collector {
	if registry == nil {
		registry = prometheus.NewRegistry()
	}
	if len(cfg.DurationBuckets) == 0 {
		cfg.DurationBuckets = config.DefaultDurationBuckets()
	}

	c := &Collector{
		config:   cfg,
		registry: registry,
	}

	c.validationMetrics = NewValidationMetrics(cfg, registry)
	c.httpMetrics = NewHTTPMetrics(registry)

	return c
}

// RecordValidation records metrics for a completed validation pass.
// The outcome label is "valid" or "invalid" per the structural result;
// use RecordValidationError for passes that failed internally.
func (c *Collector) RecordValidation(mode string, result validation.Result, duration time.Duration) {
	if !c.config.Enabled {
		return
	}

	outcome := OutcomeValid
	if !result.Valid {
		outcome = OutcomeInvalid
	}
	c.validationMetrics.RecordPass(mode, outcome, duration)

	for field, msgs := range result.Errors {
		c.validationMetrics.RecordFieldErrors(field, len(msgs))
	}
	if n := len(result.Warnings); n > 0 {
		c.validationMetrics.RecordIssues("warning", n)
	}
}

// RecordValidationError records a validation pass that failed internally.
func (c *Collector) RecordValidationError(mode string, duration time.Duration) {
	if !c.config.Enabled {
		return
	}
	c.validationMetrics.RecordPass(mode, OutcomeError, duration)
}

// RecordDependencyCheck records metrics for a dependency analysis pass.
func (c *Collector) RecordDependencyCheck(result validation.DependencyResult) {
	if !c.config.Enabled {
		return
	}

	if n := len(result.Errors); n > 0 {
		c.validationMetrics.RecordIssues("error", n)
	}
	if n := len(result.Warnings); n > 0 {
		c.validationMetrics.RecordIssues("warning", n)
	}
}

// RecordHTTPRequest records metrics for a completed HTTP request.
func (c *Collector) RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	if !c.config.Enabled {
		return
	}
	c.httpMetrics.RecordRequest(method, path, status, duration)
}

// Registry returns the Prometheus registry used by this collector.
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}
