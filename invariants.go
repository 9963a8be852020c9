// invariants.go: debug-time internal consistency checks for the Store.
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0

package querycache

// checkInvariantsLocked verifies the accounting and index invariants
// documented on store. It is only called when debugAssertionsEnabled is
// true, so the cost of the full-table walk never reaches a release
// binary. Callers must hold s.mu.
func (s *store) checkInvariantsLocked() {
	if !debugAssertionsEnabled {
		return
	}

	if s.order.Len() != len(s.index) {
		panic(NewErrLRUInconsistency(s.order.Len(), len(s.index)))
	}

	var sum uint64
	seen := make(map[Key]bool, s.order.Len())
	for el := s.order.Front(); el != nil; el = el.Next() {
		entry := el.Value.(*storeEntry)
		if s.index[entry.key] != el {
			panic(NewErrLRUInconsistency(s.order.Len(), len(s.index)))
		}
		seen[entry.key] = true
		sum += entry.bytes
	}
	if len(seen) != len(s.index) {
		panic(NewErrLRUInconsistency(s.order.Len(), len(s.index)))
	}

	want := sum + structOverheadBytes
	if s.totalBytes != want {
		panic(NewErrAccountingDivergence(s.totalBytes, want))
	}
}
