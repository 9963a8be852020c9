// collector.go: OpenTelemetry-backed querycache.MetricsCollector.
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0

package otel

import (
	"context"
	"errors"

	querycache "github.com/replicated-compute/querycache"
	"go.opentelemetry.io/otel/metric"
)

// OTelMetricsCollector implements querycache.MetricsCollector using
// OpenTelemetry instruments: three counters for hits/misses/evictions
// (invalidation reuses the eviction-shaped counter family, split by
// attribute), a counter triple for the three invalidation sub-causes, two
// histograms for eviction/invalidation age, and a gauge-shaped observable
// for the live byte count.
type OTelMetricsCollector struct {
	hits                           metric.Int64Counter
	misses                         metric.Int64Counter
	evictions                      metric.Int64Counter
	invalidations                  metric.Int64Counter
	invalidationsByTime            metric.Int64Counter
	invalidationsByCanisterVersion metric.Int64Counter
	invalidationsByCanisterBalance metric.Int64Counter
	evictionAgeSeconds             metric.Float64Histogram
	invalidationAgeSeconds         metric.Float64Histogram
	countBytes                     metric.Int64Gauge
}

// Options configures OTelMetricsCollector.
type Options struct {
	// MeterName is the name of the OpenTelemetry meter.
	// Default: "github.com/replicated-compute/querycache"
	MeterName string
}

// Option is a functional option for configuring OTelMetricsCollector.
type Option func(*Options)

// WithMeterName sets a custom meter name, useful for distinguishing
// metrics from multiple Cache instances.
func WithMeterName(name string) Option {
	return func(o *Options) {
		o.MeterName = name
	}
}

// NewOTelMetricsCollector creates every OTEL instrument this collector
// needs against provider and returns a collector ready to pass as
// Config.MetricsCollector.
func NewOTelMetricsCollector(provider metric.MeterProvider, opts ...Option) (*OTelMetricsCollector, error) {
	if provider == nil {
		return nil, errors.New("meter provider cannot be nil")
	}

	options := Options{MeterName: "github.com/replicated-compute/querycache"}
	for _, opt := range opts {
		opt(&options)
	}

	meter := provider.Meter(options.MeterName)
	c := &OTelMetricsCollector{}

	var err error
	if c.hits, err = meter.Int64Counter("querycache_hits_total", metric.WithDescription("Total number of cache hits")); err != nil {
		return nil, err
	}
	if c.misses, err = meter.Int64Counter("querycache_misses_total", metric.WithDescription("Total number of cache misses")); err != nil {
		return nil, err
	}
	if c.evictions, err = meter.Int64Counter("querycache_evicted_entries_total", metric.WithDescription("Entries removed by capacity pressure")); err != nil {
		return nil, err
	}
	if c.invalidations, err = meter.Int64Counter("querycache_invalidated_entries_total", metric.WithDescription("Entries removed by environment drift")); err != nil {
		return nil, err
	}
	if c.invalidationsByTime, err = meter.Int64Counter("querycache_invalidated_entries_by_time_total", metric.WithDescription("Invalidations caused by batch_time drift")); err != nil {
		return nil, err
	}
	if c.invalidationsByCanisterVersion, err = meter.Int64Counter("querycache_invalidated_entries_by_canister_version_total", metric.WithDescription("Invalidations caused by canister_version drift")); err != nil {
		return nil, err
	}
	if c.invalidationsByCanisterBalance, err = meter.Int64Counter("querycache_invalidated_entries_by_canister_balance_total", metric.WithDescription("Invalidations caused by canister_balance drift")); err != nil {
		return nil, err
	}
	if c.evictionAgeSeconds, err = meter.Float64Histogram("querycache_evicted_entries_duration_seconds", metric.WithDescription("Age of evicted entries"), metric.WithUnit("s")); err != nil {
		return nil, err
	}
	if c.invalidationAgeSeconds, err = meter.Float64Histogram("querycache_invalidated_entries_duration_seconds", metric.WithDescription("Age of invalidated entries"), metric.WithUnit("s")); err != nil {
		return nil, err
	}
	if c.countBytes, err = meter.Int64Gauge("querycache_count_bytes", metric.WithDescription("Current live byte count of the query cache")); err != nil {
		return nil, err
	}

	return c, nil
}

// RecordHit implements querycache.MetricsCollector.
func (c *OTelMetricsCollector) RecordHit() {
	c.hits.Add(context.Background(), 1)
}

// RecordMiss implements querycache.MetricsCollector.
func (c *OTelMetricsCollector) RecordMiss() {
	c.misses.Add(context.Background(), 1)
}

// RecordEviction implements querycache.MetricsCollector.
func (c *OTelMetricsCollector) RecordEviction(ageSeconds float64) {
	ctx := context.Background()
	c.evictions.Add(ctx, 1)
	c.evictionAgeSeconds.Record(ctx, ageSeconds)
}

// RecordInvalidation implements querycache.MetricsCollector.
func (c *OTelMetricsCollector) RecordInvalidation(reasons querycache.InvalidationReasons, ageSeconds float64) {
	ctx := context.Background()
	c.invalidations.Add(ctx, 1)
	if reasons.Time {
		c.invalidationsByTime.Add(ctx, 1)
	}
	if reasons.CanisterVersion {
		c.invalidationsByCanisterVersion.Add(ctx, 1)
	}
	if reasons.CanisterBalance {
		c.invalidationsByCanisterBalance.Add(ctx, 1)
	}
	c.invalidationAgeSeconds.Record(ctx, ageSeconds)
}

// RecordCountBytes implements querycache.MetricsCollector.
func (c *OTelMetricsCollector) RecordCountBytes(n uint64) {
	c.countBytes.Record(context.Background(), int64(n))
}

var _ querycache.MetricsCollector = (*OTelMetricsCollector)(nil)
