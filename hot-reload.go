// hot-reload.go: dynamic configuration with Argus integration.
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0

package querycache

import (
	"fmt"
	"sync"
	"time"

	"github.com/agilira/argus"
)

// WatchConfigOptions configures the hot-reload watcher attached to a Cache.
type WatchConfigOptions struct {
	// ConfigPath is the path to the configuration file to watch. Supports
	// JSON, YAML, TOML, HCL, INI, and Properties formats, per Argus.
	ConfigPath string

	// PollInterval is how often to check for configuration changes.
	// Default: 1 second. Minimum: 100ms.
	PollInterval time.Duration

	// OnReload is called after a config change has been applied to the
	// Cache. Optional; must be fast and non-blocking.
	OnReload func(enabled bool, capacityBytes uint64)

	// Logger for hot-reload operations. If nil, uses the Cache's logger.
	Logger Logger
}

// hotReloadWatcher watches a config file for the two external option keys
// named in §6 (query_caching, query_cache_capacity) and applies
// every change to the attached Cache via Cache.Reconfigure.
type hotReloadWatcher struct {
	cache    *Cache
	watcher  *argus.Watcher
	logger   Logger
	onReload func(enabled bool, capacityBytes uint64)

	mu            sync.RWMutex
	enabled       bool
	capacityBytes uint64
}

// WatchConfig attaches a hot-reload watcher to cache, starts watching
// opts.ConfigPath immediately, and returns an error if the watcher cannot
// be started. Calling WatchConfig twice on the same Cache replaces any
// previously attached watcher without stopping it; callers should not do
// that.
func WatchConfig(cache *Cache, opts WatchConfigOptions) error {
	if opts.ConfigPath == "" {
		return fmt.Errorf("config_path is required")
	}
	if opts.PollInterval == 0 {
		opts.PollInterval = time.Second
	} else if opts.PollInterval < 100*time.Millisecond {
		opts.PollInterval = 100 * time.Millisecond
	}
	if opts.Logger == nil {
		opts.Logger = cache.logger
	}

	hc := &hotReloadWatcher{
		cache:    cache,
		logger:   opts.Logger,
		onReload: opts.OnReload,
		enabled:  true,
	}

	argusConfig := argus.Config{PollInterval: opts.PollInterval}
	watcher, err := argus.UniversalConfigWatcherWithConfig(opts.ConfigPath, hc.handleConfigChange, argusConfig)
	if err != nil {
		return err
	}
	hc.watcher = watcher
	cache.watcher = hc
	return nil
}

// Stop stops the underlying Argus watcher.
func (hc *hotReloadWatcher) Stop() error {
	return hc.watcher.Stop()
}

// handleConfigChange is invoked by Argus whenever the watched file
// changes. It extracts the two recognized keys and reconfigures the Cache
// synchronously.
func (hc *hotReloadWatcher) handleConfigChange(configData map[string]interface{}) {
	cfg := FromOptions(flattenQueryCacheSection(configData))

	hc.mu.Lock()
	hc.enabled = cfg.Enabled
	hc.capacityBytes = cfg.CapacityBytes
	hc.mu.Unlock()

	hc.cache.Reconfigure(cfg.Enabled, cfg.CapacityBytes)
	hc.logger.Info("query cache config reloaded", "enabled", cfg.Enabled, "capacity_bytes", cfg.CapacityBytes)

	if hc.onReload != nil {
		hc.onReload(cfg.Enabled, cfg.CapacityBytes)
	}
}

// flattenQueryCacheSection extracts the query_cache section if the file
// nests it (as a YAML/JSON document typically would), falling back to the
// top-level map if the recognized keys live there directly.
func flattenQueryCacheSection(data map[string]interface{}) map[string]interface{} {
	if section, ok := data["query_cache"].(map[string]interface{}); ok {
		return section
	}
	return data
}
