//go:build !querycache_debug

// debug_off.go: release build — invariant assertions compiled out.
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0

package querycache

// debugAssertionsEnabled is false in release builds. See errors.go for the
// error catalogue these assertions would raise, and store_debug.go for the
// checks themselves.
const debugAssertionsEnabled = false
