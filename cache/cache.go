// Package cache provides the explicitly owned caches used by the engine:
// a sharded LRU for extracted glyphs and an atomically swapped snapshot
// holder for generated lookup tables.
//
// Nothing here is ambient. Callers construct a cache, pass it where it is
// needed, and invalidate by regenerate-and-replace; there is no package
// level shared state.
package cache

import (
	"hash/fnv"
	"sync"
	"sync/atomic"
)

const (
	// shardCount is the number of shards. Power of 2 so shard selection
	// is a mask instead of a modulo.
	shardCount = 16
	shardMask  = shardCount - 1

	// DefaultCapacity is the default maximum entries per shard.
	DefaultCapacity = 64
)

// Hasher computes the shard-selection hash for a key.
type Hasher[K any] func(K) uint64

// StringHasher computes the FNV-1a hash of a string key.
func StringHasher(s string) uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(s)) // fnv.Write never returns an error
	return h.Sum64()
}

// Cache is a thread-safe sharded LRU cache. A glyph batch hits it from
// every pool worker at once, so entries spread over 16 independently
// locked shards with per-shard eviction.
type Cache[K comparable, V any] struct {
	shards   [shardCount]*shard[K, V]
	hasher   Hasher[K]
	capacity int

	hits   atomic.Uint64
	misses atomic.Uint64
}

type shard[K comparable, V any] struct {
	mu      sync.Mutex
	entries map[K]*entry[K, V]
	lru     *lruList[K]
}

type entry[K comparable, V any] struct {
	value V
	node  *lruNode[K]
}

// New creates a cache with the given per-shard capacity.
// If capacity <= 0, DefaultCapacity is used.
func New[K comparable, V any](capacity int, hasher Hasher[K]) *Cache[K, V] {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	c := &Cache[K, V]{hasher: hasher, capacity: capacity}
	for i := range c.shards {
		c.shards[i] = &shard[K, V]{
			entries: make(map[K]*entry[K, V]),
			lru:     &lruList[K]{},
		}
	}
	return c
}

func (c *Cache[K, V]) shardFor(key K) *shard[K, V] {
	return c.shards[c.hasher(key)&shardMask]
}

// Get retrieves a cached value, refreshing its LRU position.
func (c *Cache[K, V]) Get(key K) (V, bool) {
	s := c.shardFor(key)
	s.mu.Lock()
	e, ok := s.entries[key]
	if !ok {
		s.mu.Unlock()
		c.misses.Add(1)
		var zero V
		return zero, false
	}
	s.lru.MoveToFront(e.node)
	v := e.value
	s.mu.Unlock()
	c.hits.Add(1)
	return v, true
}

// Set stores a value, evicting least recently used entries past capacity.
// Values are shared, not copied; they must be treated as immutable, which
// the engine's glyphs are by contract.
func (c *Cache[K, V]) Set(key K, value V) {
	s := c.shardFor(key)
	s.mu.Lock()
	defer s.mu.Unlock()
	s.set(c.capacity, key, value)
}

// GetOrCreate returns the cached value for key, calling create to fill a
// miss. The create call runs under the shard lock, so one extraction per
// key happens even under a concurrent batch.
func (c *Cache[K, V]) GetOrCreate(key K, create func() V) V {
	s := c.shardFor(key)
	s.mu.Lock()
	defer s.mu.Unlock()

	if e, ok := s.entries[key]; ok {
		s.lru.MoveToFront(e.node)
		c.hits.Add(1)
		return e.value
	}
	c.misses.Add(1)
	v := create()
	s.set(c.capacity, key, v)
	return v
}

// set inserts or updates under the shard lock.
func (s *shard[K, V]) set(capacity int, key K, value V) {
	if e, ok := s.entries[key]; ok {
		e.value = value
		s.lru.MoveToFront(e.node)
		return
	}
	for s.lru.Len() >= capacity {
		oldest, ok := s.lru.RemoveOldest()
		if !ok {
			break
		}
		delete(s.entries, oldest)
	}
	s.entries[key] = &entry[K, V]{value: value, node: s.lru.PushFront(key)}
}

// Delete removes an entry, reporting whether it was present.
func (c *Cache[K, V]) Delete(key K) bool {
	s := c.shardFor(key)
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.entries[key]
	if !ok {
		return false
	}
	s.lru.Remove(e.node)
	delete(s.entries, key)
	return true
}

// Clear removes all entries.
func (c *Cache[K, V]) Clear() {
	for _, s := range c.shards {
		s.mu.Lock()
		s.entries = make(map[K]*entry[K, V])
		s.lru.Clear()
		s.mu.Unlock()
	}
}

// Len returns the total entry count across shards.
func (c *Cache[K, V]) Len() int {
	total := 0
	for _, s := range c.shards {
		s.mu.Lock()
		total += len(s.entries)
		s.mu.Unlock()
	}
	return total
}

// Stats reports hit/miss counters since construction.
func (c *Cache[K, V]) Stats() Stats {
	hits, misses := c.hits.Load(), c.misses.Load()
	var rate float64
	if hits+misses > 0 {
		rate = float64(hits) / float64(hits+misses)
	}
	return Stats{Hits: hits, Misses: misses, HitRate: rate, Len: c.Len()}
}

// Stats is a point-in-time cache statistics snapshot.
type Stats struct {
	Hits    uint64
	Misses  uint64
	HitRate float64
	Len     int
}
