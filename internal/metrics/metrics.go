// Package metrics registers the Prometheus instrumentation for the service:
// HTTP request counts and latencies, plus per-operation computation counters.
package metrics

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	httpRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "orientgo_http_requests_total",
			Help: "Total number of HTTP requests.",
		},
		[]string{"path", "method", "code"},
	)

	httpDurationSeconds = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "orientgo_http_duration_seconds",
			Help:    "HTTP request duration in seconds.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"path", "method"},
	)

	computationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "orientgo_computations_total",
			Help: "Total number of Earth-orientation computations by operation.",
		},
		[]string{"operation"},
	)

	computationErrorsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "orientgo_computation_errors_total",
			Help: "Total number of rejected computations by operation.",
		},
		[]string{"operation"},
	)
)

func init() {
	prometheus.MustRegister(httpRequestsTotal)
	prometheus.MustRegister(httpDurationSeconds)
	prometheus.MustRegister(computationsTotal)
	prometheus.MustRegister(computationErrorsTotal)
}

// Handler returns the Prometheus metrics HTTP handler.
func Handler() http.Handler {
	return promhttp.Handler()
}

// ObserveComputation counts one completed computation for an operation
// ("sidereal_apparent", "sidereal_mean", "matrix_npb", "convert_geodetic",
// "convert_geocentric").
func ObserveComputation(operation string) {
	computationsTotal.WithLabelValues(operation).Inc()
}

// ObserveComputationError counts one rejected computation for an operation.
func ObserveComputationError(operation string) {
	computationErrorsTotal.WithLabelValues(operation).Inc()
}

// normalizeRoute collapses request paths to a bounded label set so that
// scanner traffic cannot explode metric cardinality.
func normalizeRoute(path string) string {
	switch path {
	case "/", "/healthz", "/readyz", "/metrics",
		"/api/v1/sidereal/apparent", "/api/v1/sidereal/mean",
		"/api/v1/matrix/npb",
		"/api/v1/convert/geodetic", "/api/v1/convert/geocentric",
		"/api/v1/ellipsoids":
		return path
	}
	if strings.HasPrefix(path, "/api/v1/") {
		return "/api/v1/other"
	}
	return "other"
}

// responseWriter wraps http.ResponseWriter to capture the status code.
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

// Middleware records request count and duration for each request.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}

		next.ServeHTTP(rw, r)

		duration := time.Since(start).Seconds()
		code := strconv.Itoa(rw.statusCode)
		route := normalizeRoute(r.URL.Path)

		httpRequestsTotal.WithLabelValues(route, r.Method, code).Inc()
		httpDurationSeconds.WithLabelValues(route, r.Method).Observe(duration)
	})
}
