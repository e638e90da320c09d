// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package metrics owns the Prometheus registry of the API process.

Two families are exported:

  - HTTP: request counts and latency per route pattern and status.
  - Store: document store operation counts and latency per collection and operation.

Every registry is private to its [Registry] value so tests can build as many as
they need without tripping duplicate registration.
*/
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/taibuivan/scriptwriter/internal/platform/constants"
)

// Registry groups the process metrics with the Prometheus registry they live in.
type Registry struct {
	registry *prometheus.Registry

	// HTTPRequests counts finished requests by method, route and status.
	HTTPRequests *prometheus.CounterVec
	// HTTPDuration observes request latency by method and route.
	HTTPDuration *prometheus.HistogramVec

	// StoreOperations counts store calls by collection, operation and outcome.
	StoreOperations *prometheus.CounterVec
	// StoreDuration observes store call latency by collection and operation.
	StoreDuration *prometheus.HistogramVec
}

// NewRegistry creates a registry with all API metrics and the Go runtime collectors.
func NewRegistry() *Registry {
	r := &Registry{
		registry: prometheus.NewRegistry(),

		HTTPRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: constants.MetricsNamespace,
				Subsystem: "http",
				Name:      "requests_total",
				Help:      "Total number of HTTP requests handled",
			},
			[]string{"method", "route", "status"},
		),

		HTTPDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: constants.MetricsNamespace,
				Subsystem: "http",
				Name:      "request_duration_seconds",
				Help:      "HTTP request latency in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),

		StoreOperations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: constants.MetricsNamespace,
				Subsystem: "store",
				Name:      "operations_total",
				Help:      "Total number of document store operations",
			},
			[]string{"collection", "operation", "status"},
		),

		StoreDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: constants.MetricsNamespace,
				Subsystem: "store",
				Name:      "operation_duration_seconds",
				Help:      "Document store operation latency in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"collection", "operation"},
		),
	}

	r.registry.MustRegister(
		r.HTTPRequests,
		r.HTTPDuration,
		r.StoreOperations,
		r.StoreDuration,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return r
}

// Gatherer exposes the underlying registry for scraping and tests.
func (r *Registry) Gatherer() prometheus.Gatherer {
	return r.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (r *Registry) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{
		EnableOpenMetrics: true,
	})
}
