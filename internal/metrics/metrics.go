// Package metrics exposes the Prometheus collectors for the billing server.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RequestsTotal counts HTTP requests by route pattern, method and
	// status class.
	RequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "vaanibill_http_requests_total",
		Help: "HTTP requests handled, by route, method and status code.",
	}, []string{"route", "method", "status"})

	// RequestDuration observes request latency per route.
	RequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "vaanibill_http_request_duration_seconds",
		Help:    "HTTP request latency by route.",
		Buckets: prometheus.DefBuckets,
	}, []string{"route"})

	// BillsCreated counts successfully committed bills.
	BillsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "vaanibill_bills_created_total",
		Help: "Bills committed to storage.",
	})

	// BillCreateFailures counts rejected or failed bill creations, by kind
	// (validation, persistence).
	BillCreateFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "vaanibill_bill_create_failures_total",
		Help: "Failed bill creations by failure kind.",
	}, []string{"kind"})
)
