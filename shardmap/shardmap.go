// Package shardmap implements a fixed-bucket-count concurrent map keyed by
// integers, sharded by key modulo the shard count so keys in different
// shards never contend on the same lock.
package shardmap

import (
	"sort"
	"sync"
)

// Key is any integer type usable as a shardmap key.
type Key interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

type shard[K Key, V any] struct {
	mu sync.Mutex
	m  map[K]V
}

// Map is a concurrent map with a fixed number of shards, chosen at
// construction time. A key routes to exactly one shard for its lifetime.
type Map[K Key, V any] struct {
	shards []*shard[K, V]
}

// New builds a Map with the given number of shards. buckets <= 0 is
// treated as 1.
func New[K Key, V any](buckets int) *Map[K, V] {
	if buckets <= 0 {
		buckets = 1
	}
	shards := make([]*shard[K, V], buckets)
	for i := range shards {
		shards[i] = &shard[K, V]{m: make(map[K]V)}
	}
	return &Map[K, V]{shards: shards}
}

// shardFor reinterprets k's bit pattern as an unsigned integer before
// taking it modulo the shard count, so negative keys route deterministically.
func (m *Map[K, V]) shardFor(k K) *shard[K, V] {
	idx := uint64(int64(k)) % uint64(len(m.shards))
	return m.shards[idx]
}

// Access is a scoped handle onto one key's value, held open between
// GetOrInsert and Unlock. It locks the owning shard for its whole
// lifetime, so callers must call Unlock exactly once and must not hold two
// Accesses on the same shard concurrently from the same goroutine.
type Access[K Key, V any] struct {
	key   K
	shard *shard[K, V]
}

// GetOrInsert locks k's shard and returns an Access to it. The zero value
// of V is visible via Load until Store is called.
func (m *Map[K, V]) GetOrInsert(k K) *Access[K, V] {
	s := m.shardFor(k)
	s.mu.Lock()
	return &Access[K, V]{key: k, shard: s}
}

// Load returns the current value for the Access's key.
func (a *Access[K, V]) Load() V {
	return a.shard.m[a.key]
}

// Store sets the value for the Access's key.
func (a *Access[K, V]) Store(v V) {
	a.shard.m[a.key] = v
}

// Unlock releases the shard lock taken by GetOrInsert.
func (a *Access[K, V]) Unlock() {
	a.shard.mu.Unlock()
}

// Erase removes k, reporting whether it was present.
func (m *Map[K, V]) Erase(k K) bool {
	s := m.shardFor(k)
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.m[k]; !ok {
		return false
	}
	delete(s.m, k)
	return true
}

// Entry is one key-value pair returned by Drain.
type Entry[K Key, V any] struct {
	Key   K
	Value V
}

// Drain acquires each shard in order, copies out its entries, and returns
// all of them merged and sorted ascending by key.
func (m *Map[K, V]) Drain() []Entry[K, V] {
	var out []Entry[K, V]
	for _, s := range m.shards {
		s.mu.Lock()
		for k, v := range s.m {
			out = append(out, Entry[K, V]{Key: k, Value: v})
		}
		s.mu.Unlock()
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out
}
