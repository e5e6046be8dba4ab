package store

import (
	"testing"

	"page-replacement-simulator/internal/engine"
	"page-replacement-simulator/internal/engine/policy"
)

func result(faults int) *engine.Result[int] {
	return &engine.Result[int]{Policy: policy.FIFO, Capacity: 3, Faults: faults}
}

func TestStore_SetGet(t *testing.T) {
	s := New()
	key := Key(policy.FIFO, []int{1, 2, 3}, 3)
	want := result(3)

	s.Set(key, want)

	got, found := s.Get(key)
	if !found {
		t.Fatalf("expected key %s to be found", key)
	}
	if got != want {
		t.Errorf("expected result %v, got %v", want, got)
	}
}

func TestStore_Replace(t *testing.T) {
	s := New(WithCapacity(1))
	s.Set("key", result(1))
	s.Set("key", result(2))

	got, found := s.Get("key")
	if !found || got.Faults != 2 {
		t.Fatalf("expected replaced result, got %v (found=%v)", got, found)
	}
	if s.Len() != 1 {
		t.Fatalf("expected 1 entry, got %d", s.Len())
	}
}

func TestStore_Delete(t *testing.T) {
	s := New()
	s.Set("key", result(1))
	s.Delete("key")
	_, found := s.Get("key")
	if found {
		t.Fatal("key should have been deleted")
	}
	// Deleting a missing key is a no-op
	s.Delete("key")
	if s.Len() != 0 {
		t.Fatalf("expected empty store, got %d", s.Len())
	}
}

func TestKey(t *testing.T) {
	base := Key(policy.LRU, []int{1, 2, 3}, 3)
	if base != Key(policy.LRU, []int{1, 2, 3}, 3) {
		t.Fatal("key should be stable")
	}
	if len(base) != 64 {
		t.Fatalf("expected 64 hex chars, got %d", len(base))
	}

	others := []string{
		Key(policy.FIFO, []int{1, 2, 3}, 3),
		Key(policy.LRU, []int{1, 2, 3}, 4),
		Key(policy.LRU, []int{1, 2}, 3),
		Key(policy.LRU, []int{3, 2, 1}, 3),
		Key(policy.LRU, []int{12, 3}, 3),
	}
	for i, k := range others {
		if k == base {
			t.Errorf("key %d collides with base", i)
		}
	}
}
