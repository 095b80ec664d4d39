// Package metrics defines the Prometheus metrics exported on /metrics.
package metrics

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics owns a private registry so tests can build as many servers as they like
// without tripping over duplicate registration in the global one.
type Metrics struct {
	registry *prometheus.Registry

	greetings       *prometheus.CounterVec
	storageErrors   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
}

// New creates and registers all metrics, plus the Go runtime and process collectors.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		greetings: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "hello",
			Name:      "greetings_total",
			Help:      "Greetings served, by endpoint variant and visitor status.",
		}, []string{"variant", "status"}),
		storageErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "hello",
			Name:      "storage_errors_total",
			Help:      "Failed visit store operations, by operation.",
		}, []string{"operation"}),
		requestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "hello",
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency, by route, method and status code.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route", "method", "code"}),
	}

	m.registry.MustRegister(
		m.greetings,
		m.storageErrors,
		m.requestDuration,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// Registry exposes the underlying registry, mainly so tests can gather from it.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// ObserveGreeting counts one greeting answered by variant ("v1" or "v2").
func (m *Metrics) ObserveGreeting(variant, status string) {
	m.greetings.WithLabelValues(variant, status).Inc()
}

// ObserveStorageError counts one failed store call.
func (m *Metrics) ObserveStorageError(operation string) {
	m.storageErrors.WithLabelValues(operation).Inc()
}

// ObserveRequest records how long a request took.
func (m *Metrics) ObserveRequest(route, method string, code int, elapsed time.Duration) {
	m.requestDuration.WithLabelValues(route, method, strconv.Itoa(code)).Observe(elapsed.Seconds())
}

// Handler serves the registry in the Prometheus text format.
// promhttp speaks net/http, so fiber's adaptor bridges it onto fasthttp.
func (m *Metrics) Handler() fiber.Handler {
	return adaptor.HTTPHandler(promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{}))
}
