package cssgen

import (
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"
)

// CacheStats counts cache activity
type CacheStats struct {
	Hits      uint64
	Misses    uint64
	Evictions uint64
}

// LRU is a bounded least-recently-used cache keyed by string, backed by
// golang-lru with hit, miss and eviction counters around it.
//
// A hit moves the entry to the most-recently-used position. A miss runs the
// factory and, when the cache is full, evicts the least-recently-used entry
// on insert.
type LRU[V any] struct {
	cache    *lru.Cache[string, V]
	capacity int

	mu      sync.Mutex
	stats   CacheStats
	onEvict func(key string)
}

// NewLRU creates a cache holding at most capacity entries (minimum 1)
func NewLRU[V any](capacity int) *LRU[V] {
	if capacity < 1 {
		capacity = 1
	}
	c := &LRU[V]{capacity: capacity}
	// only fails for a non-positive size
	c.cache, _ = lru.NewWithEvict[string, V](capacity, c.evicted)
	return c
}

// evicted runs after golang-lru released its lock
func (c *LRU[V]) evicted(key string, _ V) {
	c.mu.Lock()
	c.stats.Evictions++
	fn := c.onEvict
	c.mu.Unlock()
	if fn != nil {
		fn(key)
	}
}

// OnEvict registers a callback run for every evicted key
func (c *LRU[V]) OnEvict(fn func(key string)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onEvict = fn
}

func (c *LRU[V]) count(hit bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if hit {
		c.stats.Hits++
	} else {
		c.stats.Misses++
	}
}

// GetOrSet returns the value cached under key, computing and storing it with
// factory on a miss. The factory runs without any cache lock held.
func (c *LRU[V]) GetOrSet(key string, factory func() V) V {
	if v, ok := c.cache.Get(key); ok {
		c.count(true)
		return v
	}
	c.count(false)

	v := factory()
	if found, _ := c.cache.ContainsOrAdd(key, v); found {
		// computed concurrently; keep the first value
		if first, ok := c.cache.Get(key); ok {
			return first
		}
	}
	return v
}

// Get returns the value under key and promotes it
func (c *LRU[V]) Get(key string) (V, bool) {
	v, ok := c.cache.Get(key)
	c.count(ok)
	return v, ok
}

// Contains reports whether key is cached without promoting it
func (c *LRU[V]) Contains(key string) bool {
	return c.cache.Contains(key)
}

// Keys returns cached keys from least to most recently used
func (c *LRU[V]) Keys() []string {
	return c.cache.Keys()
}

// Len returns the number of cached entries
func (c *LRU[V]) Len() int {
	return c.cache.Len()
}

// Capacity returns the maximum number of entries
func (c *LRU[V]) Capacity() int {
	return c.capacity
}

// Stats returns a snapshot of the cache counters
func (c *LRU[V]) Stats() CacheStats {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.stats
}

// FIFO is a bounded cache that evicts the oldest inserted entry. Reads do
// not change eviction order.
type FIFO[V any] struct {
	mu       sync.Mutex
	capacity int
	keys     []string
	items    map[string]V
	stats    CacheStats
}

// NewFIFO creates a cache holding at most capacity entries (minimum 1)
func NewFIFO[V any](capacity int) *FIFO[V] {
	if capacity < 1 {
		capacity = 1
	}
	return &FIFO[V]{
		capacity: capacity,
		items:    make(map[string]V, capacity),
	}
}

// Get returns the value stored under key
func (c *FIFO[V]) Get(key string) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	v, ok := c.items[key]
	if ok {
		c.stats.Hits++
	} else {
		c.stats.Misses++
	}
	return v, ok
}

// Put stores value under key, evicting the oldest entries once the size
// exceeds capacity. It returns the evicted keys.
func (c *FIFO[V]) Put(key string, value V) []string {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.items[key]; !ok {
		c.keys = append(c.keys, key)
	}
	c.items[key] = value

	var evicted []string
	for len(c.keys) > c.capacity {
		oldest := c.keys[0]
		c.keys = c.keys[1:]
		delete(c.items, oldest)
		c.stats.Evictions++
		evicted = append(evicted, oldest)
	}
	return evicted
}

// Keys returns cached keys from oldest to newest
func (c *FIFO[V]) Keys() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]string(nil), c.keys...)
}

// Len returns the number of cached entries
func (c *FIFO[V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.keys)
}

// Stats returns a snapshot of the cache counters
func (c *FIFO[V]) Stats() CacheStats {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.stats
}

// Reset drops every entry
func (c *FIFO[V]) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.keys = nil
	c.items = make(map[string]V, c.capacity)
}
