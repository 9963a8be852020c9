// Package promcollector provides a direct Prometheus client_golang backed
// querycache.MetricsCollector, as an alternative to the otel subpackage
// for deployments that export Prometheus metrics directly rather than
// through an OpenTelemetry pipeline.
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0
package promcollector

import (
	"net/http"

	querycache "github.com/replicated-compute/querycache"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// durationBucketBoundariesSeconds mirrors the boundaries metrics.go uses
// for its in-process histograms, so the two observability surfaces agree.
var durationBucketBoundariesSeconds = []float64{
	0.001, 0.01, 0.1, 0.5, 1, 5, 10, 30, 60,
	300, 600, 1800, 3600, 21600, 86400, 259200, 604800,
}

// Collector implements querycache.MetricsCollector against a dedicated
// Prometheus registry. Each Collector owns its own registry, so creating
// more than one in a process does not panic on duplicate registration.
type Collector struct {
	registry *prometheus.Registry

	hits                           prometheus.Counter
	misses                         prometheus.Counter
	evictions                      prometheus.Counter
	invalidations                  prometheus.Counter
	invalidationsByTime            prometheus.Counter
	invalidationsByCanisterVersion prometheus.Counter
	invalidationsByCanisterBalance prometheus.Counter
	evictionAgeSeconds             prometheus.Histogram
	invalidationAgeSeconds         prometheus.Histogram
	countBytes                     prometheus.Gauge
}

// New builds a Collector with its own Prometheus registry and registers
// every instrument against it.
func New() *Collector {
	registry := prometheus.NewRegistry()
	c := &Collector{
		registry: registry,
		hits: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "querycache_hits_total",
			Help: "Total number of cache hits.",
		}),
		misses: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "querycache_misses_total",
			Help: "Total number of cache misses.",
		}),
		evictions: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "querycache_evicted_entries_total",
			Help: "Entries removed by capacity pressure.",
		}),
		invalidations: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "querycache_invalidated_entries_total",
			Help: "Entries removed by environment drift.",
		}),
		invalidationsByTime: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "querycache_invalidated_entries_by_time_total",
			Help: "Invalidations caused by batch_time drift.",
		}),
		invalidationsByCanisterVersion: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "querycache_invalidated_entries_by_canister_version_total",
			Help: "Invalidations caused by canister_version drift.",
		}),
		invalidationsByCanisterBalance: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "querycache_invalidated_entries_by_canister_balance_total",
			Help: "Invalidations caused by canister_balance drift.",
		}),
		evictionAgeSeconds: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "querycache_evicted_entries_duration_seconds",
			Help:    "Age of evicted entries.",
			Buckets: durationBucketBoundariesSeconds,
		}),
		invalidationAgeSeconds: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "querycache_invalidated_entries_duration_seconds",
			Help:    "Age of invalidated entries.",
			Buckets: durationBucketBoundariesSeconds,
		}),
		countBytes: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "querycache_count_bytes",
			Help: "Current live byte count of the query cache.",
		}),
	}

	registry.MustRegister(
		c.hits, c.misses, c.evictions,
		c.invalidations, c.invalidationsByTime, c.invalidationsByCanisterVersion, c.invalidationsByCanisterBalance,
		c.evictionAgeSeconds, c.invalidationAgeSeconds,
		c.countBytes,
	)
	return c
}

// RecordHit implements querycache.MetricsCollector.
func (c *Collector) RecordHit() { c.hits.Inc() }

// RecordMiss implements querycache.MetricsCollector.
func (c *Collector) RecordMiss() { c.misses.Inc() }

// RecordEviction implements querycache.MetricsCollector.
func (c *Collector) RecordEviction(ageSeconds float64) {
	c.evictions.Inc()
	c.evictionAgeSeconds.Observe(ageSeconds)
}

// RecordInvalidation implements querycache.MetricsCollector.
func (c *Collector) RecordInvalidation(reasons querycache.InvalidationReasons, ageSeconds float64) {
	c.invalidations.Inc()
	if reasons.Time {
		c.invalidationsByTime.Inc()
	}
	if reasons.CanisterVersion {
		c.invalidationsByCanisterVersion.Inc()
	}
	if reasons.CanisterBalance {
		c.invalidationsByCanisterBalance.Inc()
	}
	c.invalidationAgeSeconds.Observe(ageSeconds)
}

// RecordCountBytes implements querycache.MetricsCollector.
func (c *Collector) RecordCountBytes(n uint64) {
	c.countBytes.Set(float64(n))
}

// Handler returns an http.Handler that serves this Collector's registry in
// the Prometheus exposition format, suitable for mounting at /metrics.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}

var _ querycache.MetricsCollector = (*Collector)(nil)
