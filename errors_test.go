// errors_test.go: tests for the internal invariant error catalogue.
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0

package querycache

import "testing"

func TestNewErrAccountingDivergenceIsInternalInvariantError(t *testing.T) {
	err := NewErrAccountingDivergence(100, 80)
	if err == nil {
		t.Fatal("expected non-nil error")
	}
	if !IsInternalInvariantError(err) {
		t.Error("NewErrAccountingDivergence should be classified as an internal invariant error")
	}
}

func TestNewErrLRUInconsistencyIsInternalInvariantError(t *testing.T) {
	err := NewErrLRUInconsistency(3, 2)
	if err == nil {
		t.Fatal("expected non-nil error")
	}
	if !IsInternalInvariantError(err) {
		t.Error("NewErrLRUInconsistency should be classified as an internal invariant error")
	}
}

func TestIsInternalInvariantErrorRejectsOtherErrors(t *testing.T) {
	if IsInternalInvariantError(nil) {
		t.Error("nil should not be an internal invariant error")
	}
}
