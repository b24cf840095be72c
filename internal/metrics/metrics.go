// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package metrics holds the peer server's Prometheus collectors. Every
// [HTTP] owns its registry, so several servers in one process (tests) do
// not collide on collector registration.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "field_sync"

// HTTP collects request counters and latencies of the peer server plus the
// record transfer totals.
type HTTP struct {
	registry *prometheus.Registry

	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
	records  *prometheus.CounterVec
}

// NewHTTP registers the peer collectors and the Go runtime collectors on a
// fresh registry.
func NewHTTP() *HTTP {
	registry := prometheus.NewRegistry()

	m := &HTTP{
		registry: registry,
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "HTTP requests served, by route pattern, method and status.",
		}, []string{"route", "method", "status"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency, by route pattern and method.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route", "method"}),
		records: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "records_transferred_total",
			Help:      "Records served to or accepted from field devices, by kind and direction.",
		}, []string{"kind", "direction"}),
	}

	registry.MustRegister(
		m.requests,
		m.duration,
		m.records,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return m
}

// ObserveRequest records one served request. An empty route is reported as
// "unmatched" to keep label cardinality bounded.
func (m *HTTP) ObserveRequest(route, method string, status int, took time.Duration) {
	if route == "" {
		route = "unmatched"
	}
	m.requests.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
	m.duration.WithLabelValues(route, method).Observe(took.Seconds())
}

// Direction labels of [HTTP.AddRecords].
const (
	Served   = "served"
	Accepted = "accepted"
)

// AddRecords counts n records of kind moved in direction.
func (m *HTTP) AddRecords(kind, direction string, n int) {
	if n <= 0 {
		return
	}
	m.records.WithLabelValues(kind, direction).Add(float64(n))
}

// Handler serves the registry in the Prometheus exposition format.
func (m *HTTP) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Registry exposes the underlying registry.
func (m *HTTP) Registry() *prometheus.Registry {
	return m.registry
}
