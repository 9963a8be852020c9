// config.go: configuration for the query cache.
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0

package querycache

import (
	"time"

	"github.com/agilira/go-timecache"
)

// Config holds construction and runtime parameters for a Cache.
type Config struct {
	// CapacityBytes is the maximum total size, in bytes, of cached
	// (Key, Value) pairs, including per-entry and structural overhead.
	// Zero is a valid, first-class value per §4.E: every insertion is
	// immediately evicted, but CountBytes still reports the structural
	// overhead. Validate does not substitute a default for zero, since
	// that would make it impossible to construct a genuine zero-capacity
	// Cache through New; callers who want DefaultCapacityBytes should
	// start from DefaultConfig().
	CapacityBytes uint64

	// Enabled controls whether the cache performs lookups and insertions
	// at all. When false, Lookup always reports Miss and Insert is a
	// no-op; this is the redeployment kill switch described in §9.
	// Default: true.
	Enabled bool

	// Logger is used for rare operator-relevant events: construction,
	// reconfiguration, and close. If nil, NoOpLogger is used.
	Logger Logger

	// TimeProvider supplies the current time for environment comparison
	// and age metrics. If nil, a default backed by go-timecache is used.
	TimeProvider TimeProvider

	// MetricsCollector forwards the same events tracked by Cache.Metrics
	// to an external backend (otel, Prometheus). If nil,
	// NoOpMetricsCollector is used.
	MetricsCollector MetricsCollector
}

// Validate normalizes a Config in place, applying defaults for every
// unset ambient collaborator. It never returns a non-nil error; it
// exists, like the teacher's Validate, so callers can inspect the
// normalized configuration before constructing a Cache. CapacityBytes is
// left untouched: zero is a valid, explicit capacity (§4.E), not an
// "unset" sentinel, so Validate cannot and does not distinguish the two;
// DefaultConfig is the only place DefaultCapacityBytes is supplied.
func (c *Config) Validate() error {
	if c.Logger == nil {
		c.Logger = NoOpLogger{}
	}
	if c.TimeProvider == nil {
		c.TimeProvider = &systemTimeProvider{}
	}
	if c.MetricsCollector == nil {
		c.MetricsCollector = NoOpMetricsCollector{}
	}
	return nil
}

// DefaultConfig returns a configuration with sensible defaults: enabled,
// DefaultCapacityBytes, and no-op ambient collaborators.
func DefaultConfig() Config {
	return Config{
		CapacityBytes:    DefaultCapacityBytes,
		Enabled:          true,
		Logger:           NoOpLogger{},
		TimeProvider:     &systemTimeProvider{},
		MetricsCollector: NoOpMetricsCollector{},
	}
}

// FromOptions builds a Config from a loosely-typed option map, the shape
// produced by the host platform's generic replica-config registry. Only
// two keys are recognized, matching §6's external surface:
//
//   - "query_caching" (bool): sets Enabled
//   - "query_cache_capacity" (uint64 or int): sets CapacityBytes
//
// Unrecognized keys and wrong-typed values are ignored rather than
// rejected, since the registry is shared by unrelated subsystems; the
// cache defaults take over for anything it cannot parse.
func FromOptions(opts map[string]interface{}) Config {
	cfg := DefaultConfig()
	if v, ok := opts["query_caching"].(bool); ok {
		cfg.Enabled = v
	}
	switch v := opts["query_cache_capacity"].(type) {
	case uint64:
		cfg.CapacityBytes = v
	case int:
		if v > 0 {
			cfg.CapacityBytes = uint64(v)
		}
	case int64:
		if v > 0 {
			cfg.CapacityBytes = uint64(v)
		}
	}
	return cfg
}

// systemTimeProvider is the default TimeProvider, backed by go-timecache's
// periodically-refreshed clock to avoid a syscall on every lookup.
type systemTimeProvider struct{}

func (t *systemTimeProvider) Now() time.Time {
	return time.Unix(0, timecache.CachedTimeNano())
}
