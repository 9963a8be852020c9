// querycache.go: package-level constants for the query result cache.
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0

package querycache

const (
	// Version of the querycache library.
	Version = "v0.1.0-dev"

	// DefaultCapacityBytes is the byte budget DefaultConfig supplies. It
	// is not substituted for a zero Config.CapacityBytes by Validate,
	// since zero is itself a valid, explicit capacity (§4.E).
	DefaultCapacityBytes = 100 * 1024 * 1024 // 100 MiB

	// structOverheadBytes is the fixed per-process accounting overhead the
	// Store reports even when empty (map/list bookkeeping). It keeps
	// count_bytes() a conservative upper bound rather than an exact sum of
	// entry sizes, per the accounting invariant in §3.
	structOverheadBytes = 64

	// entryOverheadBytes is added per live entry on top of the key/value
	// byte sizes, approximating the map bucket and list node overhead.
	entryOverheadBytes = 48
)
