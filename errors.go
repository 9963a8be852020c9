// errors.go: internal invariant errors for the query cache.
//
// The cache never surfaces an error to its caller (§7): capacity pressure,
// environment drift, and a disabled cache are all handled as silent
// misses plus metrics. The only error-shaped condition is an internal
// invariant violation — byte-accounting divergence or LRU inconsistency —
// which is a programming bug, not a runtime condition callers can act on.
// This file gives that condition a structured, inspectable shape via
// go-errors, the way the teacher structures its own internal errors.
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0
package querycache

import (
	"github.com/agilira/go-errors"
)

// Error codes for internal invariant violations.
const (
	ErrCodeAccountingDivergence errors.ErrorCode = "QUERYCACHE_ACCOUNTING_DIVERGENCE"
	ErrCodeLRUInconsistency     errors.ErrorCode = "QUERYCACHE_LRU_INCONSISTENCY"
)

const (
	msgAccountingDivergence = "store byte accounting diverged from the sum of live entries"
	msgLRUInconsistency     = "store LRU index and list are out of sync"
)

// NewErrAccountingDivergence reports that store.totalBytes no longer
// equals the sum of live entry sizes plus structural overhead.
func NewErrAccountingDivergence(got, want uint64) error {
	return errors.NewWithContext(ErrCodeAccountingDivergence, msgAccountingDivergence, map[string]interface{}{
		"reported_bytes": got,
		"expected_bytes": want,
	}).WithSeverity("critical")
}

// NewErrLRUInconsistency reports that the LRU list and the key index
// disagree on the live entry set.
func NewErrLRUInconsistency(listLen, indexLen int) error {
	return errors.NewWithContext(ErrCodeLRUInconsistency, msgLRUInconsistency, map[string]interface{}{
		"list_len":  listLen,
		"index_len": indexLen,
	}).WithSeverity("critical")
}

// IsInternalInvariantError reports whether err is one of the internal
// invariant violations defined in this file.
func IsInternalInvariantError(err error) bool {
	return errors.HasCode(err, ErrCodeAccountingDivergence) || errors.HasCode(err, ErrCodeLRUInconsistency)
}
