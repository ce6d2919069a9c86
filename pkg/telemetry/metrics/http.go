package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// HTTPMetrics tracks metrics for the HTTP API.
//
// Metrics:
//   - densityhq_callisto_http_requests_total: requests by method, path, status
//   - densityhq_callisto_http_request_duration_seconds: request latency histogram
type HTTPMetrics struct {
	requestsTotal *prometheus.CounterVec
	duration      *prometheus.HistogramVec
}

// NewHTTPMetrics creates and registers HTTP metrics with the provided registry.
func NewHTTPMetrics(registry *prometheus.Registry) *HTTPMetrics {
	hm := &HTTPMetrics{
		requestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: Namespace,
				Subsystem: Subsystem,
				Name:      "http_requests_total",
				Help:      "Total number of HTTP requests by method, path, and status",
			},
			[]string{"method", "path", "status"},
		),

		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: Namespace,
				Subsystem: Subsystem,
				Name:      "http_request_duration_seconds",
				Help:      "Duration of HTTP requests in seconds",
				Buckets:   []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0},
			},
			[]string{"method", "path"},
		),
	}

	registry.MustRegister(hm.requestsTotal, hm.duration)

	return hm
}

// RecordRequest records a completed HTTP request. The path label must be a
// route pattern, not the raw URL, to keep cardinality bounded.
func (hm *HTTPMetrics) RecordRequest(method, path string, status int, duration time.Duration) {
	hm.requestsTotal.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	hm.duration.WithLabelValues(method, path).Observe(duration.Seconds())
}
