// cache.go: the public Cache façade.
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0

package querycache

import (
	"sync/atomic"
)

// Outcome is the richer, internal result of a Lookup, used by tests and
// logging to distinguish a clean miss from an invalidation. The public
// Lookup signature collapses this to (Value, bool) for ergonomic call
// sites, per §9: no cross-package downcasting, just a plain struct.
type Outcome struct {
	// Hit reports whether the lookup found a live, environment-matching
	// entry.
	Hit bool

	// Invalidated reports whether a stale entry was found and removed as
	// a result of this lookup.
	Invalidated bool

	// Reasons is populated iff Invalidated is true.
	Reasons InvalidationReasons

	// Value is populated iff Hit is true.
	Value Value
}

// Cache is a byte-capped, environment-sensitive memoization layer in
// front of query execution. It composes a store, a Metrics set, a Logger,
// and a TimeProvider the way the teacher's NewCache composes its
// wtinyLFUCache from a Config. The zero value is not usable; construct
// with New.
type Cache struct {
	store   *store
	metrics *Metrics
	logger  Logger
	clock   TimeProvider

	enabled atomic.Bool
	closed  atomic.Bool

	watcher *hotReloadWatcher
}

// New constructs a Cache from cfg, normalizing it first via Validate.
func New(cfg Config) *Cache {
	_ = cfg.Validate()

	c := &Cache{
		store:   newStore(cfg.CapacityBytes),
		metrics: newMetrics(cfg.MetricsCollector),
		logger:  cfg.Logger,
		clock:   cfg.TimeProvider,
	}
	c.enabled.Store(cfg.Enabled)

	if !cfg.Enabled {
		c.logger.Info("query cache constructed disabled", "capacity_bytes", cfg.CapacityBytes)
	}
	return c
}

// Lookup looks up key against currentEnv. It reports (Value, true) on a
// clean hit. Any other outcome — disabled cache, clean miss, or
// environment-driven invalidation — reports (Value{}, false); LookupFull
// exposes the distinction for callers that need it (principally tests).
func (c *Cache) Lookup(key Key, currentEnv Environment) (Value, bool) {
	outcome := c.LookupFull(key, currentEnv)
	return outcome.Value, outcome.Hit
}

// LookupFull is Lookup with the richer Outcome, distinguishing a clean
// miss from an invalidation and reporting which Environment fields
// differed.
func (c *Cache) LookupFull(key Key, currentEnv Environment) Outcome {
	if !c.enabled.Load() {
		c.metrics.recordMiss()
		return Outcome{}
	}

	value, ok := c.store.get(key)
	if !ok {
		c.metrics.recordMiss()
		return Outcome{}
	}

	cachedEnv := value.Env()
	if cachedEnv.Equal(currentEnv) {
		c.metrics.recordHit()
		return Outcome{Hit: true, Value: value}
	}

	reasons := InvalidationReasons{
		Time:            !cachedEnv.BatchTime.Equal(currentEnv.BatchTime),
		CanisterVersion: cachedEnv.CanisterVersion != currentEnv.CanisterVersion,
		CanisterBalance: cachedEnv.CanisterBalance != currentEnv.CanisterBalance,
	}

	c.store.remove(key)
	c.metrics.recordInvalidation(reasons, value.ElapsedSeconds(currentEnv.BatchTime))
	c.metrics.recordMiss()
	c.metrics.recordCountBytes(c.store.countBytes())

	return Outcome{Invalidated: true, Reasons: reasons}
}

// Insert memoizes result under key, tagged with the Environment observed
// while executing the query. A disabled cache silently discards the
// insert. Insert always either stores the entry or evicts enough older
// entries to make room for it; an entry larger than the entire capacity
// simply evicts everything else and is then itself immediately evicted,
// since the store never exceeds its budget even transiently.
func (c *Cache) Insert(key Key, executedEnv Environment, result Result) {
	if !c.enabled.Load() {
		return
	}

	value := NewValue(executedEnv, result)
	evicted := c.store.put(key, value)

	if len(evicted) > 0 {
		for _, pair := range evicted {
			c.metrics.recordEviction(pair.Value.ElapsedSeconds(executedEnv.BatchTime))
		}
	}
	c.metrics.recordCountBytes(c.store.countBytes())
}

// CountBytes returns the Store's current live byte count, including
// structural overhead.
func (c *Cache) CountBytes() uint64 {
	return c.store.countBytes()
}

// Metrics returns the Cache's metric set. The returned pointer is stable
// for the lifetime of the Cache and safe for concurrent reads.
func (c *Cache) Metrics() *Metrics {
	return c.metrics
}

// Reconfigure applies a new enabled flag and capacity budget to a live
// Cache. Shrinking capacity evicts down to the new bound synchronously,
// reusing the Store's existing put-time eviction loop; the watcher in
// hot-reload.go calls this on every observed config change.
func (c *Cache) Reconfigure(enabled bool, capacityBytes uint64) {
	c.enabled.Store(enabled)

	evicted := c.store.setCapacity(capacityBytes)
	if len(evicted) > 0 {
		now := c.clock.Now()
		for _, pair := range evicted {
			c.metrics.recordEviction(pair.Value.ElapsedSeconds(now))
		}
	}
	c.metrics.recordCountBytes(c.store.countBytes())
	c.logger.Info("query cache reconfigured", "enabled", enabled, "capacity_bytes", capacityBytes)
}

// Close stops the hot-reload watcher, if one was attached, and releases
// its resources. The Store itself holds no external resources; closing a
// Cache does not clear it, mirroring the teacher's Close, which stops
// background work without discarding already-cached state.
func (c *Cache) Close() error {
	if !c.closed.CompareAndSwap(false, true) {
		return nil
	}
	if c.watcher != nil {
		return c.watcher.Stop()
	}
	return nil
}
