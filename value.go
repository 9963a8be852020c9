// value.go: the memoized outcome stored against a Key.
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0

package querycache

import "time"

// Value is the memoized result of a query, together with the Environment
// captured when it was produced. A Value is exclusively owned by the Store
// once inserted; callers only ever receive read-only copies (Value has no
// exported mutating methods).
type Value struct {
	result    Result
	env       Environment
	createdAt time.Time
}

// NewValue constructs a Value, recording createdAt as env.BatchTime.
func NewValue(env Environment, result Result) Value {
	return Value{
		result:    result,
		env:       env,
		createdAt: env.BatchTime,
	}
}

// Env returns the Environment captured at creation.
func (v Value) Env() Environment { return v.env }

// Result returns the memoized query outcome.
func (v Value) Result() Result { return v.result }

// ElapsedSeconds returns the number of seconds since creation, clamped to
// zero for a now that precedes createdAt.
func (v Value) ElapsedSeconds(now time.Time) float64 {
	return clampedElapsedSeconds(v.createdAt, now)
}

// CountBytes returns the storage footprint of the Value: its captured
// Environment plus its Result payload.
func (v Value) CountBytes() uint64 {
	return v.env.CountBytes() + v.result.CountBytes()
}
