// store.go: the byte-capped LRU mapping underlying the cache.
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0

package querycache

import (
	"container/list"
	"sync"
)

// evictedPair is a (Key, Value) pair removed from the Store, either by
// capacity pressure (eviction) or by explicit removal (invalidation).
type evictedPair struct {
	Key   Key
	Value Value
}

// storeEntry is the payload held in each list.Element.
type storeEntry struct {
	key   Key
	value Value
	bytes uint64
}

// store is a byte-capped LRU mapping. It is configured with a single
// capacityBytes at construction; capacityBytes == 0 makes every insertion
// immediately evicted, but countBytes still reports the structural
// overhead.
//
// All public methods use mu while accessing/updating state: the map
// lookup, the LRU reorder, the byte accounting, and the eviction loop are
// one critical section, as required by the concurrency model in §5. No
// method suspends while holding mu.
type store struct {
	mu sync.Mutex

	// INVARIANT: totalBytes == structOverheadBytes + sum(e.bytes for e in index)
	capacityBytes uint64
	totalBytes    uint64

	// order.Front() is the most-recently-used entry; order.Back() is the
	// eviction target.
	order *list.List
	index map[Key]*list.Element
}

// newStore creates an empty store with the given byte budget.
func newStore(capacityBytes uint64) *store {
	return &store{
		capacityBytes: capacityBytes,
		totalBytes:    structOverheadBytes,
		order:         list.New(),
		index:         make(map[Key]*list.Element),
	}
}

// get looks up key. On a hit the entry is moved to the MRU position.
func (s *store) get(key Key) (Value, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	el, ok := s.index[key]
	if !ok {
		return Value{}, false
	}
	s.order.MoveToFront(el)
	return el.Value.(*storeEntry).value, true
}

// put inserts (key, value) at the MRU position, replacing any existing
// entry for key in place. It returns every (key, value) pair evicted by
// capacity pressure as a result of this call. Replacing an existing key is
// not itself reported as an eviction.
//
// put either fully succeeds — the entry is present, or it and enough
// older entries were evicted to respect capacityBytes — or leaves the
// store unchanged; there is no partial-insertion state.
func (s *store) put(key Key, value Value) []evictedPair {
	bytes := countBytesOfEntry(key, value)

	s.mu.Lock()
	defer s.mu.Unlock()

	if el, ok := s.index[key]; ok {
		old := el.Value.(*storeEntry)
		s.totalBytes -= old.bytes
		el.Value = &storeEntry{key: key, value: value, bytes: bytes}
		s.totalBytes += bytes
		s.order.MoveToFront(el)
	} else {
		el := s.order.PushFront(&storeEntry{key: key, value: value, bytes: bytes})
		s.index[key] = el
		s.totalBytes += bytes
	}

	var evicted []evictedPair
	for s.totalBytes > s.capacityBytes && s.order.Len() > 0 {
		evicted = append(evicted, s.evictLocked())
	}
	s.checkInvariantsLocked()
	return evicted
}

// remove deletes key without reordering the LRU list; it is used for
// environment-driven invalidation, which must not count as an eviction.
func (s *store) remove(key Key) (Value, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	el, ok := s.index[key]
	if !ok {
		return Value{}, false
	}
	entry := el.Value.(*storeEntry)
	s.totalBytes -= entry.bytes
	s.order.Remove(el)
	delete(s.index, key)
	s.checkInvariantsLocked()
	return entry.value, true
}

// countBytes returns the current live byte count, including the fixed
// structural overhead.
func (s *store) countBytes() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.totalBytes
}

// setCapacity changes the store's byte budget, evicting from the LRU end
// immediately if the new budget is smaller than the current byte count.
// Used by Cache.Reconfigure; capacity growth never evicts.
func (s *store) setCapacity(capacityBytes uint64) []evictedPair {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.capacityBytes = capacityBytes
	var evicted []evictedPair
	for s.totalBytes > s.capacityBytes && s.order.Len() > 0 {
		evicted = append(evicted, s.evictLocked())
	}
	s.checkInvariantsLocked()
	return evicted
}

// evictLocked removes the least-recently-used entry. Ties (entries that
// were never accessed after insertion) are broken by insertion order,
// older first, which falls out of list.List.Back() naturally since ties
// never reorder relative position. Callers must hold mu.
func (s *store) evictLocked() evictedPair {
	back := s.order.Back()
	entry := back.Value.(*storeEntry)
	s.totalBytes -= entry.bytes
	s.order.Remove(back)
	delete(s.index, entry.key)
	return evictedPair{Key: entry.key, Value: entry.value}
}
