package service

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func newTestCache() *ShardedCache {
	return NewShardedCache(64, time.Minute, 4)
}

func TestShardedCache_SetAndGet(t *testing.T) {
	c := newTestCache()
	defer c.Stop()

	c.Set("proj-1:en", map[string]string{"welcome": "Welcome"})

	value, ok := c.Get("proj-1:en")
	assert.True(t, ok)
	assert.Equal(t, "Welcome", value["welcome"])

	_, ok = c.Get("proj-1:pt")
	assert.False(t, ok)
}

func TestShardedCache_Expiration(t *testing.T) {
	c := NewShardedCache(64, 10*time.Millisecond, 4)
	defer c.Stop()

	c.Set("proj-1:en", map[string]string{"welcome": "Welcome"})
	time.Sleep(20 * time.Millisecond)

	_, ok := c.Get("proj-1:en")
	assert.False(t, ok)
}

func TestShardedCache_Invalidate(t *testing.T) {
	c := newTestCache()
	defer c.Stop()

	c.Set("proj-1:en", map[string]string{"welcome": "Welcome"})
	c.Invalidate("proj-1:en")

	_, ok := c.Get("proj-1:en")
	assert.False(t, ok)
}

func TestShardedCache_Clear(t *testing.T) {
	c := newTestCache()
	defer c.Stop()

	c.Set("proj-1:en", map[string]string{"a": "1"})
	c.Set("proj-1:pt", map[string]string{"b": "2"})
	c.Clear()

	_, ok := c.Get("proj-1:en")
	assert.False(t, ok)
	_, ok = c.Get("proj-1:pt")
	assert.False(t, ok)
	assert.Equal(t, 0, c.Metrics().Size)
}

func TestShardedCache_LRUEviction(t *testing.T) {
	// Single shard with capacity 2 makes eviction order deterministic.
	c := NewShardedCache(2, time.Minute, 1)
	defer c.Stop()

	c.Set("a", map[string]string{"k": "a"})
	c.Set("b", map[string]string{"k": "b"})

	// Touch "a" so "b" becomes least recently used.
	_, _ = c.Get("a")

	c.Set("c", map[string]string{"k": "c"})

	_, ok := c.Get("b")
	assert.False(t, ok)
	_, ok = c.Get("a")
	assert.True(t, ok)
	_, ok = c.Get("c")
	assert.True(t, ok)
}

func TestShardedCache_Metrics(t *testing.T) {
	c := newTestCache()
	defer c.Stop()

	c.Set("proj-1:en", map[string]string{"a": "1"})
	_, _ = c.Get("proj-1:en")
	_, _ = c.Get("proj-1:de")

	m := c.Metrics()
	assert.Equal(t, int64(1), m.Hits)
	assert.Equal(t, int64(1), m.Misses)
	assert.Equal(t, 1, m.Size)
}

func TestShardedCache_ConcurrentAccess(t *testing.T) {
	c := NewShardedCache(256, time.Minute, 16)
	defer c.Stop()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			key := fmt.Sprintf("proj-%d:en", n%8)
			c.Set(key, map[string]string{"k": "v"})
			_, _ = c.Get(key)
		}(i)
	}
	wg.Wait()
}
