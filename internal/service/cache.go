package service

import (
	"hash/fnv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/guttosm/localization-service/internal/metrics"
	"github.com/guttosm/localization-service/internal/service/cache"
)

// ShardedCache stores resolved localization maps keyed by "projectID:locale".
// Entries are spread over power-of-2 shards so concurrent lookups rarely
// contend on the same lock.
type ShardedCache struct {
	shards    []*ttlCache
	shardMask uint32
}

// NewShardedCache creates a sharded cache with the given total capacity and
// TTL. numShards is rounded up to a power of 2.
func NewShardedCache(capacity int, ttl time.Duration, numShards int) *ShardedCache {
	if numShards <= 0 {
		numShards = 16
	}
	n := 1
	for n < numShards {
		n *= 2
	}

	perShard := capacity / n
	if perShard < 1 {
		perShard = 1
	}

	sc := &ShardedCache{
		shards:    make([]*ttlCache, n),
		shardMask: uint32(n - 1),
	}
	for i := range sc.shards {
		sc.shards[i] = newTTLCache(perShard, ttl)
	}
	return sc
}

func (sc *ShardedCache) shardFor(key string) *ttlCache {
	h := fnv.New32a()
	_, _ = h.Write([]byte(key))
	return sc.shards[h.Sum32()&sc.shardMask]
}

// Get retrieves a localization map, reporting whether it was present and fresh.
func (sc *ShardedCache) Get(key string) (map[string]string, bool) {
	return sc.shardFor(key).Get(key)
}

// Set stores a localization map under the given key.
func (sc *ShardedCache) Set(key string, value map[string]string) {
	sc.shardFor(key).Set(key, value)
}

// Invalidate removes one key.
func (sc *ShardedCache) Invalidate(key string) {
	sc.shardFor(key).Invalidate(key)
}

// Clear empties every shard.
func (sc *ShardedCache) Clear() {
	for _, shard := range sc.shards {
		shard.Clear()
	}
}

// Stop terminates the background sweepers of all shards.
func (sc *ShardedCache) Stop() {
	for _, shard := range sc.shards {
		shard.Stop()
	}
}

// Metrics aggregates hit/miss/eviction counters across shards.
func (sc *ShardedCache) Metrics() cache.Metrics {
	var total cache.Metrics
	for _, shard := range sc.shards {
		m := shard.Metrics()
		total.Hits += m.Hits
		total.Misses += m.Misses
		total.Evictions += m.Evictions
		total.Size += m.Size
		total.Capacity += m.Capacity
	}
	return total
}

// ttlCache is one shard: an LRU list plus TTL expiry. The recency list is an
// intrusive doubly-linked list; mru is the most recently used end.
type ttlCache struct {
	mu       sync.RWMutex
	capacity int
	ttl      time.Duration
	items    map[string]*cacheEntry
	mru      *cacheEntry
	lru      *cacheEntry
	stopCh   chan struct{}

	hits      int64
	misses    int64
	evictions int64
}

type cacheEntry struct {
	key        string
	value      map[string]string
	expiresAt  time.Time
	prev, next *cacheEntry
}

func newTTLCache(capacity int, ttl time.Duration) *ttlCache {
	c := &ttlCache{
		capacity: capacity,
		ttl:      ttl,
		items:    make(map[string]*cacheEntry, capacity),
		stopCh:   make(chan struct{}),
	}
	go c.sweepLoop()
	return c
}

// Stop terminates the background sweeper.
func (c *ttlCache) Stop() {
	close(c.stopCh)
}

// Metrics returns a snapshot of this shard's counters.
func (c *ttlCache) Metrics() cache.Metrics {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return cache.Metrics{
		Hits:      atomic.LoadInt64(&c.hits),
		Misses:    atomic.LoadInt64(&c.misses),
		Evictions: atomic.LoadInt64(&c.evictions),
		Size:      len(c.items),
		Capacity:  c.capacity,
	}
}

// Get returns the value when present and unexpired, promoting it to MRU.
func (c *ttlCache) Get(key string) (map[string]string, bool) {
	c.mu.RLock()
	entry, ok := c.items[key]
	c.mu.RUnlock()

	if !ok {
		atomic.AddInt64(&c.misses, 1)
		metrics.RecordCacheOperation("get", "miss")
		return nil, false
	}

	if time.Now().After(entry.expiresAt) {
		c.mu.Lock()
		if _, still := c.items[key]; still {
			c.drop(entry)
		}
		c.mu.Unlock()
		atomic.AddInt64(&c.misses, 1)
		metrics.RecordCacheOperation("get", "expired")
		return nil, false
	}

	c.mu.Lock()
	c.promote(entry)
	c.mu.Unlock()

	atomic.AddInt64(&c.hits, 1)
	metrics.RecordCacheOperation("get", "hit")
	return entry.value, true
}

// Set inserts or refreshes a value, evicting from the LRU end at capacity.
func (c *ttlCache) Set(key string, value map[string]string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if entry, ok := c.items[key]; ok {
		entry.value = value
		entry.expiresAt = time.Now().Add(c.ttl)
		c.promote(entry)
		return
	}

	entry := &cacheEntry{key: key, value: value, expiresAt: time.Now().Add(c.ttl)}
	c.items[key] = entry
	c.pushFront(entry)

	if len(c.items) > c.capacity && c.lru != nil {
		c.drop(c.lru)
		atomic.AddInt64(&c.evictions, 1)
		metrics.RecordCacheOperation("evict", "capacity")
	}
	metrics.RecordCacheOperation("set", "success")
}

// Invalidate removes one key if present.
func (c *ttlCache) Invalidate(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if entry, ok := c.items[key]; ok {
		c.drop(entry)
		metrics.RecordCacheOperation("invalidate", "success")
	}
}

// Clear discards all entries and resets the counters.
func (c *ttlCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items = make(map[string]*cacheEntry, c.capacity)
	c.mru = nil
	c.lru = nil

	atomic.StoreInt64(&c.hits, 0)
	atomic.StoreInt64(&c.misses, 0)
	atomic.StoreInt64(&c.evictions, 0)

	metrics.RecordCacheOperation("clear", "success")
}

// sweepLoop expires entries once a minute, but only bothers when the shard is
// over 80% full; below that, lazy expiry on Get is enough.
func (c *ttlCache) sweepLoop() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			c.mu.RLock()
			crowded := len(c.items) > (c.capacity * 80 / 100)
			c.mu.RUnlock()
			if crowded {
				c.sweep()
			}
		case <-c.stopCh:
			return
		}
	}
}

func (c *ttlCache) sweep() {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := time.Now()
	for _, entry := range c.items {
		if now.After(entry.expiresAt) {
			c.drop(entry)
		}
	}
}

// drop removes the entry from both the map and the recency list.
func (c *ttlCache) drop(entry *cacheEntry) {
	delete(c.items, entry.key)
	c.unlink(entry)
}

func (c *ttlCache) promote(entry *cacheEntry) {
	if entry == c.mru {
		return
	}
	c.unlink(entry)
	c.pushFront(entry)
}

func (c *ttlCache) pushFront(entry *cacheEntry) {
	entry.prev = nil
	entry.next = c.mru
	if c.mru != nil {
		c.mru.prev = entry
	}
	c.mru = entry
	if c.lru == nil {
		c.lru = entry
	}
}

func (c *ttlCache) unlink(entry *cacheEntry) {
	if entry.prev != nil {
		entry.prev.next = entry.next
	} else {
		c.mru = entry.next
	}
	if entry.next != nil {
		entry.next.prev = entry.prev
	} else {
		c.lru = entry.prev
	}
}
