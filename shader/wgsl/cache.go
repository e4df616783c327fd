package wgsl

import (
	"container/list"
	"hash/fnv"
	"sync"
	"sync/atomic"

	"github.com/gogpu/naga/ir"
)

// DefaultCacheCapacity is the number of compiled sources kept by Compile.
const DefaultCacheCapacity = 64

// compiled keeps recent naga output keyed by source hash. Compile is called
// once per program and context, and the same source is often compiled for
// several contexts.
var compiled = newSPIRVCache(DefaultCacheCapacity)

// unit is the naga output for one source. Both fields are shared by every
// program compiled from the source and are never modified.
type unit struct {
	module *ir.Module
	words  []uint32
}

// spirvCache is a mutex-guarded LRU of compiled units.
type spirvCache struct {
	mu       sync.Mutex
	capacity int
	entries  map[uint64]*list.Element
	lru      *list.List

	hits      atomic.Uint64
	misses    atomic.Uint64
	evictions atomic.Uint64
}

type spirvEntry struct {
	key    uint64
	source string
	unit   *unit
}

func newSPIRVCache(capacity int) *spirvCache {
	if capacity <= 0 {
		capacity = DefaultCacheCapacity
	}
	return &spirvCache{
		capacity: capacity,
		entries:  make(map[uint64]*list.Element),
		lru:      list.New(),
	}
}

func sourceHash(s string) uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(s)) // fnv.Write never returns an error
	return h.Sum64()
}

// getOrCompile returns the cached unit for source or stores the result of
// compile. Failed compilations are not cached. compile runs with the lock
// held.
func (c *spirvCache) getOrCompile(source string, compile func() (*unit, error)) (*unit, error) {
	key := sourceHash(source)

	c.mu.Lock()
	defer c.mu.Unlock()

	if el, ok := c.entries[key]; ok {
		e := el.Value.(*spirvEntry)
		if e.source == source {
			c.lru.MoveToFront(el)
			c.hits.Add(1)
			return e.unit, nil
		}
		// Hash collision: the new source replaces the old one.
		c.lru.Remove(el)
		delete(c.entries, key)
	}
	c.misses.Add(1)

	u, err := compile()
	if err != nil {
		return nil, err
	}

	for c.lru.Len() >= c.capacity {
		oldest := c.lru.Back()
		c.lru.Remove(oldest)
		delete(c.entries, oldest.Value.(*spirvEntry).key)
		c.evictions.Add(1)
	}
	c.entries[key] = c.lru.PushFront(&spirvEntry{key: key, source: source, unit: u})
	return u, nil
}

func (c *spirvCache) len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lru.Len()
}

func (c *spirvCache) reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	clear(c.entries)
	c.lru.Init()
	c.hits.Store(0)
	c.misses.Store(0)
	c.evictions.Store(0)
}

// CacheStats holds compile cache counters.
type CacheStats struct {
	Hits      uint64
	Misses    uint64
	Evictions uint64
	Len       int
}

// Stats returns the compile cache counters.
func Stats() CacheStats {
	return CacheStats{
		Hits:      compiled.hits.Load(),
		Misses:    compiled.misses.Load(),
		Evictions: compiled.evictions.Load(),
		Len:       compiled.len(),
	}
}

// ResetCache drops every cached compilation and zeroes the counters.
func ResetCache() {
	compiled.reset()
}
