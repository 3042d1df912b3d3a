package shardmap

import (
	"sync"
	"testing"
)

func TestGetOrInsertStoreLoad(t *testing.T) {
	m := New[int, int](4)

	a := m.GetOrInsert(7)
	if got := a.Load(); got != 0 {
		t.Fatalf("Load on fresh key = %d, want 0", got)
	}
	a.Store(42)
	a.Unlock()

	a2 := m.GetOrInsert(7)
	defer a2.Unlock()
	if got := a2.Load(); got != 42 {
		t.Fatalf("Load after Store = %d, want 42", got)
	}
}

func TestErase(t *testing.T) {
	m := New[int, string](4)

	a := m.GetOrInsert(3)
	a.Store("x")
	a.Unlock()

	if !m.Erase(3) {
		t.Fatal("Erase(3) = false, want true for present key")
	}
	if m.Erase(3) {
		t.Fatal("Erase(3) = true on second call, want false")
	}
}

func TestDrainSortedByKey(t *testing.T) {
	m := New[int, int](8)

	for _, k := range []int{5, 1, 9, 3} {
		a := m.GetOrInsert(k)
		a.Store(k * 10)
		a.Unlock()
	}

	entries := m.Drain()
	if len(entries) != 4 {
		t.Fatalf("len(Drain()) = %d, want 4", len(entries))
	}
	for i := 1; i < len(entries); i++ {
		if entries[i-1].Key >= entries[i].Key {
			t.Fatalf("Drain() not sorted ascending: %v", entries)
		}
	}
	for _, e := range entries {
		if e.Value != e.Key*10 {
			t.Fatalf("entry %+v has wrong value", e)
		}
	}
}

func TestNegativeKeyRoutesDeterministically(t *testing.T) {
	m := New[int, int](8)

	a := m.GetOrInsert(-5)
	a.Store(99)
	a.Unlock()

	b := m.GetOrInsert(-5)
	defer b.Unlock()
	if got := b.Load(); got != 99 {
		t.Fatalf("Load(-5) = %d, want 99 (same shard as previous GetOrInsert(-5))", got)
	}
}

func TestConcurrentAccessDoesNotRace(t *testing.T) {
	m := New[int, int](16)

	var wg sync.WaitGroup
	for i := 0; i < 200; i++ {
		i := i
		wg.Add(1)
		go func() {
			defer wg.Done()
			key := i % 16
			a := m.GetOrInsert(key)
			a.Store(a.Load() + 1)
			a.Unlock()
		}()
	}
	wg.Wait()

	total := 0
	for _, e := range m.Drain() {
		total += e.Value
	}
	if total != 200 {
		t.Fatalf("sum of values = %d, want 200", total)
	}
}
