// Package keycache provides an LRU cache of hot resolved SchemaKeys.
//
// Entries are keyed on the (class, member) fingerprint pair and carry the
// literal names, so a fingerprint collision can never return another
// member's key. A resolved key never changes within a process, so the cache
// has no invalidation beyond eviction and Reset. Callers that must never
// re-resolve keep their own authoritative copy; eviction only costs a miss.
//
// Concurrency: 16-shard design with per-shard mutexes. The shard is picked
// from the low bits of the member fingerprint, which are already well mixed.
package keycache

import (
	"container/list"
	"sync"

	"github.com/joshuapare/schemakit/pkg/types"
)

// DefaultCapacity is the default maximum number of entries in a cache.
const DefaultCapacity = 4096

// numShards is the number of independent cache shards.
// Must be a power of two for fast modulo via bitmask.
const numShards = 16

type entryKey struct {
	hash   uint64 // (classKey << 32) | memberKey
	class  string
	member string
}

type cacheEntry struct {
	key   entryKey
	value types.SchemaKey
}

// lruCache is a single shard.
type lruCache struct {
	mu       sync.Mutex
	capacity int
	items    map[entryKey]*list.Element
	order    *list.List // front = most recently used
}

func newShard(capacity int) *lruCache {
	return &lruCache{
		capacity: capacity,
		items:    make(map[entryKey]*list.Element, capacity),
		order:    list.New(),
	}
}

func (c *lruCache) lookup(k entryKey) (types.SchemaKey, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.capacity == 0 {
		return types.SchemaKey{}, false
	}
	elem, ok := c.items[k]
	if !ok {
		return types.SchemaKey{}, false
	}
	c.order.MoveToFront(elem)
	return elem.Value.(*cacheEntry).value, true
}

func (c *lruCache) store(k entryKey, v types.SchemaKey) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.capacity == 0 {
		return
	}

	if elem, ok := c.items[k]; ok {
		c.order.MoveToFront(elem)
		elem.Value.(*cacheEntry).value = v
		return
	}

	if c.order.Len() >= c.capacity {
		if back := c.order.Back(); back != nil {
			evicted := c.order.Remove(back).(*cacheEntry)
			delete(c.items, evicted.key)
		}
	}

	c.items[k] = c.order.PushFront(&cacheEntry{key: k, value: v})
}

func (c *lruCache) setCapacity(n int) {
	c.mu.Lock()
	c.capacity = n
	for c.order.Len() > n {
		back := c.order.Back()
		if back == nil {
			break
		}
		evicted := c.order.Remove(back).(*cacheEntry)
		delete(c.items, evicted.key)
	}
	c.mu.Unlock()
}

func (c *lruCache) reset() {
	c.mu.Lock()
	c.items = make(map[entryKey]*list.Element, c.capacity)
	c.order.Init()
	c.mu.Unlock()
}

func (c *lruCache) len() int {
	c.mu.Lock()
	n := c.order.Len()
	c.mu.Unlock()
	return n
}

// Cache distributes entries across lruCache shards.
type Cache struct {
	shards [numShards]*lruCache
}

// New creates a cache holding up to capacity entries. Each shard gets
// capacity/numShards entries (at least one when capacity > 0).
// A capacity of 0 disables caching.
func New(capacity int) *Cache {
	c := &Cache{}
	per := perShard(capacity)
	for i := range c.shards {
		c.shards[i] = newShard(per)
	}
	return c
}

func perShard(capacity int) int {
	if capacity <= 0 {
		return 0
	}
	n := capacity / numShards
	if n < 1 {
		n = 1
	}
	return n
}

func makeKey(class string, classKey uint32, member string, memberKey uint32) entryKey {
	return entryKey{
		hash:   (uint64(classKey) << 32) | uint64(memberKey),
		class:  class,
		member: member,
	}
}

func (c *Cache) shardFor(k entryKey) *lruCache {
	return c.shards[k.hash&(numShards-1)]
}

// Lookup returns the cached key for (class, member).
func (c *Cache) Lookup(class string, classKey uint32, member string, memberKey uint32) (types.SchemaKey, bool) {
	k := makeKey(class, classKey, member, memberKey)
	return c.shardFor(k).lookup(k)
}

// Store caches v for (class, member).
func (c *Cache) Store(class string, classKey uint32, member string, memberKey uint32, v types.SchemaKey) {
	k := makeKey(class, classKey, member, memberKey)
	c.shardFor(k).store(k, v)
}

// SetCapacity changes the total capacity, evicting as needed.
// Pass 0 to disable caching.
func (c *Cache) SetCapacity(n int) {
	per := perShard(n)
	for _, s := range c.shards {
		s.setCapacity(per)
	}
}

// Reset clears all entries without changing capacity.
func (c *Cache) Reset() {
	for _, s := range c.shards {
		s.reset()
	}
}

// Len returns the number of cached entries.
func (c *Cache) Len() int {
	total := 0
	for _, s := range c.shards {
		total += s.len()
	}
	return total
}
