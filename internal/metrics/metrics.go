// Package metrics exposes Prometheus instrumentation for the ledger service.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector registers and updates all service metrics on its own registry,
// so tests can create throwaway instances without global registration
// conflicts.
type Collector struct {
	registry *prometheus.Registry

	transactionsCreated *prometheus.CounterVec
	transactionsDeleted prometheus.Counter

	httpRequests *prometheus.CounterVec
	httpDuration *prometheus.HistogramVec
}

// NewCollector creates a collector with the given metric namespace.
func NewCollector(namespace string) *Collector {
	c := &Collector{
		registry: prometheus.NewRegistry(),
		transactionsCreated: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "transactions_created_total",
				Help:      "Total number of transactions created, by type",
			},
			[]string{"type"},
		),
		transactionsDeleted: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "transactions_deleted_total",
				Help:      "Total number of transactions deleted",
			},
		),
		httpRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Total number of HTTP requests, by method, path and status",
			},
			[]string{"method", "path", "status"},
		),
		httpDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request latency, by method and path",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "path"},
		),
	}

	c.registry.MustRegister(
		c.transactionsCreated,
		c.transactionsDeleted,
		c.httpRequests,
		c.httpDuration,
		collectors.NewGoCollector(),
	)

	return c
}

// RecordCreated counts a persisted transaction of the given type.
func (c *Collector) RecordCreated(kind string) {
	c.transactionsCreated.WithLabelValues(kind).Inc()
}

// RecordDeleted counts a permanent deletion.
func (c *Collector) RecordDeleted() {
	c.transactionsDeleted.Inc()
}

// RecordHTTP counts a finished request and observes its latency.
func (c *Collector) RecordHTTP(method, path string, status int, duration time.Duration) {
	c.httpRequests.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	c.httpDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}

// Handler serves the registry in Prometheus text format.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}
