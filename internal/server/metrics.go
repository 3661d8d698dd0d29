// Package server exposes the heap's programmatic surface over HTTP.
package server

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics collects and exposes transport-level server metrics in
// Prometheus format. The core's own counters (fibheap_allocations_total
// and friends) are registered by internal/heap; this type only tracks the
// HTTP layer wrapped around it, grounded on internal/server/metrics.go.
type Metrics struct {
	handler http.Handler
}

var (
	activeRequests = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "fibheap_http_active_requests",
		Help: "Current number of in-flight HTTP requests.",
	})
	totalRequests = promauto.NewCounter(prometheus.CounterOpts{
		Name: "fibheap_http_requests_total",
		Help: "Total number of HTTP requests received.",
	})
)

// NewMetrics creates a new Metrics instance.
func NewMetrics() *Metrics {
	return &Metrics{handler: promhttp.Handler()}
}

func (m *Metrics) incrementActiveRequests() {
	activeRequests.Inc()
	totalRequests.Inc()
}

func (m *Metrics) decrementActiveRequests() {
	activeRequests.Dec()
}

// WritePrometheus writes every registered metric in Prometheus text format.
func (m *Metrics) WritePrometheus(w http.ResponseWriter, r *http.Request) {
	m.handler.ServeHTTP(w, r)
}

func (s *Server) handleMetrics(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeErrorResponse(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	s.metrics.WritePrometheus(w, r)
}

// metricsMiddleware tracks in-flight and cumulative HTTP request counts.
func (s *Server) metricsMiddleware(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.metrics.incrementActiveRequests()
		defer s.metrics.decrementActiveRequests()
		next(w, r)
	}
}
