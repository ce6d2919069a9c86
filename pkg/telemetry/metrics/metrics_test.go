package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"densityhq/callisto/pkg/config"
	"densityhq/callisto/pkg/validation"
)

func newTestCollector(t *testing.T, enabled bool) *Collector {
	t.Helper()
	cfg := &config.MetricsConfig{
		Enabled:         enabled,
		Path:            "/metrics",
		DurationBuckets: config.DefaultDurationBuckets(),
	}
	return NewCollector(cfg, nil)
}

func TestRecordValidation(t *testing.T) {
	c := newTestCollector(t, true)

	c.RecordValidation("basic", validation.Result{Valid: true}, 50*time.Microsecond)
	c.RecordValidation("basic", validation.Result{
		Valid: false,
		Errors: map[string][]string{
			"minClusterSize": {"minClusterSize must be between 2 and 1000"},
		},
		Warnings: []string{"minClusterSize is very small and may produce noisy clusters"},
	}, 80*time.Microsecond)

	valid := testutil.ToFloat64(c.validationMetrics.validationsTotal.WithLabelValues("basic", OutcomeValid))
	invalid := testutil.ToFloat64(c.validationMetrics.validationsTotal.WithLabelValues("basic", OutcomeInvalid))
	if valid != 1 || invalid != 1 {
		t.Errorf("validations_total: valid=%v invalid=%v, want 1 and 1", valid, invalid)
	}

	fieldErrs := testutil.ToFloat64(c.validationMetrics.fieldErrors.WithLabelValues("minClusterSize"))
	if fieldErrs != 1 {
		t.Errorf("field_errors_total{field=minClusterSize} = %v, want 1", fieldErrs)
	}

	warnings := testutil.ToFloat64(c.validationMetrics.issues.WithLabelValues("warning"))
	if warnings != 1 {
		t.Errorf("dependency_issues_total{severity=warning} = %v, want 1", warnings)
	}
}

func TestRecordValidationError(t *testing.T) {
	c := newTestCollector(t, true)

	c.RecordValidationError("advanced", time.Millisecond)

	errs := testutil.ToFloat64(c.validationMetrics.validationsTotal.WithLabelValues("advanced", OutcomeError))
	if errs != 1 {
		t.Errorf("validations_total{outcome=error} = %v, want 1", errs)
	}
}

func TestRecordDependencyCheck(t *testing.T) {
	c := newTestCollector(t, true)

	c.RecordDependencyCheck(validation.DependencyResult{
		Errors:    []string{"minSamples cannot exceed minClusterSize: this configuration produces only outliers"},
		Warnings:  []string{"a", "b"},
		HasIssues: true,
	})

	errors := testutil.ToFloat64(c.validationMetrics.issues.WithLabelValues("error"))
	warnings := testutil.ToFloat64(c.validationMetrics.issues.WithLabelValues("warning"))
	if errors != 1 || warnings != 2 {
		t.Errorf("dependency_issues_total: error=%v warning=%v, want 1 and 2", errors, warnings)
	}
}

func TestDisabledCollectorRecordsNothing(t *testing.T) {
	c := newTestCollector(t, false)

	c.RecordValidation("basic", validation.Result{Valid: true}, time.Microsecond)
	c.RecordHTTPRequest("POST", "/api/clusters/validate", 200, time.Millisecond)

	count := testutil.CollectAndCount(c.validationMetrics.validationsTotal)
	if count != 0 {
		t.Errorf("validations_total has %d series, want 0 when disabled", count)
	}
}

func TestHandler_ExposesMetrics(t *testing.T) {
	c := newTestCollector(t, true)
	c.RecordValidation("super-advanced", validation.Result{Valid: true}, time.Microsecond)
	c.RecordHTTPRequest("POST", "/api/clusters/validate", 200, 2*time.Millisecond)

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rec := httptest.NewRecorder()
	c.Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "densityhq_callisto_validations_total") {
		t.Error("exposition missing validations_total")
	}
	if !strings.Contains(body, "densityhq_callisto_http_requests_total") {
		t.Error("exposition missing http_requests_total")
	}
}
