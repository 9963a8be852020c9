// Package otel provides an OpenTelemetry-backed querycache.MetricsCollector.
//
// # Overview
//
// This package implements querycache.MetricsCollector using OpenTelemetry
// metric instruments, letting an operator export the same hits/misses/
// evictions/invalidations/count_bytes events the Cache tracks in-process
// to any OTEL-compatible backend (Prometheus, Jaeger, Datadog, ...). It is
// a separate module so the core querycache package never depends on the
// OTEL SDK.
//
// # Quick Start
//
//	exporter, _ := prometheus.New()
//	provider := metric.NewMeterProvider(metric.WithReader(exporter))
//
//	collector, err := otel.NewOTelMetricsCollector(provider)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	cache := querycache.New(querycache.Config{
//	    CapacityBytes:    64 * 1024 * 1024,
//	    Enabled:          true,
//	    MetricsCollector: collector,
//	})
//
// # Metrics Exposed
//
//   - querycache_hits_total / querycache_misses_total
//   - querycache_evicted_entries_total, querycache_evicted_entries_duration_seconds
//   - querycache_invalidated_entries_total and its by_time / by_canister_version /
//     by_canister_balance sub-counters, querycache_invalidated_entries_duration_seconds
//   - querycache_count_bytes (gauge)
package otel
