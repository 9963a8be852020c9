// sizer.go: pure byte-footprint accounting for cache entries.
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0

package querycache

// countBytesOfEntry returns the storage footprint of a (Key, Value) pair:
// the sum of their individual byte sizes plus the per-entry structural
// overhead the Store charges for map/list bookkeeping. It is pure — the
// result never varies for an immutable entry, as required by §4.D.
func countBytesOfEntry(k Key, v Value) uint64 {
	return k.CountBytes() + v.CountBytes() + entryOverheadBytes
}
