// Package cache defines the caching contract for localization lookups.
package cache

// Cache stores flat localization maps keyed by "projectID:locale".
type Cache interface {
	Get(key string) (map[string]string, bool)
	Set(key string, value map[string]string)
	Invalidate(key string)
	Clear()
	Stop()
}

// Metrics provides cache performance metrics.
type Metrics struct {
	Hits      int64
	Misses    int64
	Evictions int64
	Size      int
	Capacity  int
}

// CacheWithMetrics extends Cache with metrics reporting.
type CacheWithMetrics interface {
	Cache
	Metrics() Metrics
}
