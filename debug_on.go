//go:build querycache_debug

// debug_on.go: debug build — enables internal invariant assertions.
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0

package querycache

// debugAssertionsEnabled is true when the module is built with the
// querycache_debug build tag. Internal invariant violations (byte
// accounting divergence, LRU inconsistency) are programming bugs with no
// recovery path; there is no point trusting further results once one
// fires, so the assertion panics rather than returning an error to the
// caller — consistent with §7's category 4.
const debugAssertionsEnabled = true
