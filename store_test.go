package querycache

import "testing"

func testValue(payload string) Value {
	return NewValue(Environment{}, Reply([]byte(payload)))
}

func TestStoreGetMissOnEmpty(t *testing.T) {
	s := newStore(1024)
	if _, ok := s.get(NewKey("a", "b", "m", nil)); ok {
		t.Error("get on empty store should miss")
	}
}

func TestStorePutThenGetHits(t *testing.T) {
	s := newStore(1024)
	k := NewKey("a", "b", "m", nil)
	v := testValue("hello")

	evicted := s.put(k, v)
	if len(evicted) != 0 {
		t.Fatalf("unexpected eviction on first insert: %v", evicted)
	}

	got, ok := s.get(k)
	if !ok {
		t.Fatal("expected hit after put")
	}
	if string(got.Result().ReplyBytes()) != "hello" {
		t.Errorf("got.Result() = %q", got.Result().ReplyBytes())
	}
}

func TestStoreReplacementIsNotEviction(t *testing.T) {
	s := newStore(1024)
	k := NewKey("a", "b", "m", nil)

	s.put(k, testValue("first"))
	evicted := s.put(k, testValue("second"))
	if len(evicted) != 0 {
		t.Errorf("replacing an existing key reported %d evictions, want 0", len(evicted))
	}

	got, ok := s.get(k)
	if !ok || string(got.Result().ReplyBytes()) != "second" {
		t.Errorf("replacement did not take effect: %+v", got)
	}
}

func TestStoreRemoveDoesNotReorder(t *testing.T) {
	s := newStore(1 << 20)
	k1 := NewKey("a", "b", "m1", nil)
	k2 := NewKey("a", "b", "m2", nil)
	s.put(k1, testValue("v1"))
	s.put(k2, testValue("v2"))

	removed, ok := s.remove(k1)
	if !ok {
		t.Fatal("expected remove to find k1")
	}
	if string(removed.Result().ReplyBytes()) != "v1" {
		t.Errorf("removed value = %+v", removed)
	}
	if _, ok := s.get(k1); ok {
		t.Error("k1 should be gone after remove")
	}
	if _, ok := s.get(k2); !ok {
		t.Error("k2 should be untouched by removing k1")
	}
}

func TestStoreEvictsLeastRecentlyUsed(t *testing.T) {
	// Each key's own bytes: overhead(8) + payload(1) = 9, + value overhead
	// + entryOverheadBytes; capacity is sized to hold exactly two entries.
	k1 := NewKey("", "", "", []byte("1"))
	k2 := NewKey("", "", "", []byte("2"))
	k3 := NewKey("", "", "", []byte("3"))

	perEntry := countBytesOfEntry(k1, testValue("x"))
	capacity := structOverheadBytes + 2*perEntry
	s := newStore(capacity)

	s.put(k1, testValue("x"))
	s.put(k2, testValue("x"))
	// touch k1 so k2 becomes the LRU victim
	if _, ok := s.get(k1); !ok {
		t.Fatal("expected hit on k1")
	}

	evicted := s.put(k3, testValue("x"))
	if len(evicted) != 1 {
		t.Fatalf("put(k3) evicted %d entries, want 1", len(evicted))
	}
	if evicted[0].Key != k2 {
		t.Errorf("evicted key = %+v, want k2", evicted[0].Key)
	}
	if _, ok := s.get(k1); !ok {
		t.Error("k1 should survive (was MRU before put(k3))")
	}
	if _, ok := s.get(k3); !ok {
		t.Error("k3 should be present")
	}
}

func TestStoreZeroCapacityNeverRetainsContent(t *testing.T) {
	s := newStore(0)
	base := s.countBytes()
	if base != structOverheadBytes {
		t.Fatalf("countBytes() on empty zero-capacity store = %d, want %d", base, structOverheadBytes)
	}

	for i := 0; i < 5; i++ {
		k := NewKey("a", "b", "m", []byte{byte(i)})
		evicted := s.put(k, testValue("x"))
		if len(evicted) != 1 {
			t.Errorf("put #%d evicted %d entries, want 1 (capacity zero)", i, len(evicted))
		}
		if _, ok := s.get(k); ok {
			t.Errorf("put #%d: entry should not be retrievable under zero capacity", i)
		}
		if got := s.countBytes(); got != structOverheadBytes {
			t.Errorf("put #%d: countBytes() = %d, want %d", i, got, structOverheadBytes)
		}
	}
}

func TestStoreOversizedEntryIsRejectedAfterInsert(t *testing.T) {
	s := newStore(structOverheadBytes + 4)
	small := NewKey("", "", "", []byte("ab"))
	s.put(small, testValue("x"))

	huge := NewKey("", "", "", make([]byte, 4096))
	evicted := s.put(huge, testValue("x"))
	if len(evicted) < 1 {
		t.Fatal("expected at least the oversized entry (plus any prior entries) to be evicted")
	}
	if _, ok := s.get(huge); ok {
		t.Error("an entry whose own size exceeds capacity must not remain live")
	}
	if got := s.countBytes(); got != structOverheadBytes {
		t.Errorf("countBytes() = %d, want %d (structural overhead only)", got, structOverheadBytes)
	}
}

func TestStoreSetCapacityShrinksEvictsDownToBound(t *testing.T) {
	s := newStore(1 << 20)
	k1 := NewKey("", "", "", []byte("1"))
	k2 := NewKey("", "", "", []byte("2"))
	s.put(k1, testValue("x"))
	s.put(k2, testValue("x"))

	evicted := s.setCapacity(structOverheadBytes)
	if len(evicted) != 2 {
		t.Fatalf("shrinking to structural overhead evicted %d, want 2", len(evicted))
	}
	if got := s.countBytes(); got != structOverheadBytes {
		t.Errorf("countBytes() after shrink = %d, want %d", got, structOverheadBytes)
	}
}

func TestStoreSetCapacityGrowthNeverEvicts(t *testing.T) {
	s := newStore(structOverheadBytes + 1)
	k := NewKey("", "", "", []byte("1"))
	s.put(k, testValue("x"))

	evicted := s.setCapacity(1 << 20)
	if len(evicted) != 0 {
		t.Errorf("growing capacity evicted %d entries, want 0", len(evicted))
	}
}
