// config_test.go: unit tests for query cache configuration.
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0

package querycache

import "testing"

func TestConfigValidateAppliesDefaults(t *testing.T) {
	cfg := Config{}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() returned error: %v", err)
	}

	if cfg.Logger == nil {
		t.Error("Logger should default to NoOpLogger")
	}
	if cfg.TimeProvider == nil {
		t.Error("TimeProvider should default to systemTimeProvider")
	}
	if cfg.MetricsCollector == nil {
		t.Error("MetricsCollector should default to NoOpMetricsCollector")
	}
}

func TestConfigValidateDoesNotOverrideExplicitZeroCapacity(t *testing.T) {
	cfg := Config{CapacityBytes: 0}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() returned error: %v", err)
	}
	if cfg.CapacityBytes != 0 {
		t.Errorf("CapacityBytes = %d, want 0: zero must remain a first-class explicit value, not be defaulted away", cfg.CapacityBytes)
	}
}

func TestConfigValidatePreservesExplicitCapacity(t *testing.T) {
	cfg := Config{CapacityBytes: 4096}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() returned error: %v", err)
	}
	if cfg.CapacityBytes != 4096 {
		t.Errorf("CapacityBytes = %d, want 4096", cfg.CapacityBytes)
	}
}

func TestNewHonorsExplicitZeroCapacity(t *testing.T) {
	c := New(Config{CapacityBytes: 0, Enabled: true})
	if got := c.CountBytes(); got != structOverheadBytes {
		t.Errorf("CountBytes() = %d, want %d: New(Config{CapacityBytes: 0}) must build a true zero-capacity Cache", got, structOverheadBytes)
	}
}

func TestDefaultConfigIsEnabled(t *testing.T) {
	cfg := DefaultConfig()
	if !cfg.Enabled {
		t.Error("DefaultConfig() should be enabled")
	}
	if cfg.CapacityBytes != DefaultCapacityBytes {
		t.Errorf("CapacityBytes = %d, want %d", cfg.CapacityBytes, DefaultCapacityBytes)
	}
}

func TestFromOptionsRecognizedKeys(t *testing.T) {
	opts := map[string]interface{}{
		"query_caching":        false,
		"query_cache_capacity": uint64(2048),
		"unrelated_option_key": "ignored",
	}
	cfg := FromOptions(opts)

	if cfg.Enabled {
		t.Error("query_caching=false should disable the cache")
	}
	if cfg.CapacityBytes != 2048 {
		t.Errorf("CapacityBytes = %d, want 2048", cfg.CapacityBytes)
	}
}

func TestFromOptionsIgnoresWrongTypes(t *testing.T) {
	opts := map[string]interface{}{
		"query_caching":        "not-a-bool",
		"query_cache_capacity": "not-a-number",
	}
	cfg := FromOptions(opts)

	if !cfg.Enabled {
		t.Error("wrong-typed query_caching should be ignored, leaving the default (enabled)")
	}
	if cfg.CapacityBytes != DefaultCapacityBytes {
		t.Errorf("wrong-typed query_cache_capacity should be ignored: CapacityBytes = %d", cfg.CapacityBytes)
	}
}

func TestFromOptionsAcceptsIntCapacity(t *testing.T) {
	cfg := FromOptions(map[string]interface{}{"query_cache_capacity": 1024})
	if cfg.CapacityBytes != 1024 {
		t.Errorf("CapacityBytes = %d, want 1024", cfg.CapacityBytes)
	}
}
