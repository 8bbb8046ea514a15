package flood

import (
	"sync"
	"sync/atomic"

	"github.com/storm-buster/jal-setu/internal/model"
)

// DefaultCacheCapacity matches the number of region and scenario
// combinations the application exercises.
const DefaultCacheCapacity = 32

// Cache memoizes FeatureCollections per (region, scenario) key with LRU
// eviction. Values are pure functions of the immutable river registry, so
// entries never go stale; the capacity bound exists only to cap memory.
// Eviction never causes observable incorrectness, just recomputation.
type Cache struct {
	mu       sync.Mutex
	entries  map[string]*FeatureCollection
	order    []string // LRU order: front=oldest, back=newest
	capacity int
	hits     atomic.Int64
	misses   atomic.Int64
}

// CacheStats contains cache performance statistics.
type CacheStats struct {
	Entries  int     `json:"entries"`
	Capacity int     `json:"capacity"`
	Hits     int64   `json:"hits"`
	Misses   int64   `json:"misses"`
	HitRate  float64 `json:"hit_rate"`
}

// NewCache creates a Cache with the given capacity. Non-positive
// capacities fall back to DefaultCacheCapacity.
func NewCache(capacity int) *Cache {
	if capacity <= 0 {
		capacity = DefaultCacheCapacity
	}
	return &Cache{
		entries:  make(map[string]*FeatureCollection),
		capacity: capacity,
	}
}

func cacheKey(region model.Region, scenario model.Scenario) string {
	return string(region) + "/" + string(scenario)
}

// Get returns the cached collection for the key, or nil on a miss.
func (c *Cache) Get(region model.Region, scenario model.Scenario) *FeatureCollection {
	key := cacheKey(region, scenario)

	c.mu.Lock()
	defer c.mu.Unlock()

	fc, ok := c.entries[key]
	if !ok {
		c.misses.Add(1)
		return nil
	}

	// Move to back (most recently used).
	c.removeFromOrder(key)
	c.order = append(c.order, key)
	c.hits.Add(1)
	return fc
}

// Put stores a collection, evicting the least recently used entry when at
// capacity. Concurrent puts for the same key are last-write-wins.
func (c *Cache) Put(region model.Region, scenario model.Scenario, fc *FeatureCollection) {
	key := cacheKey(region, scenario)

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.entries[key]; ok {
		c.entries[key] = fc
		c.removeFromOrder(key)
		c.order = append(c.order, key)
		return
	}

	for len(c.entries) >= c.capacity && len(c.order) > 0 {
		oldest := c.order[0]
		c.order = c.order[1:]
		delete(c.entries, oldest)
	}

	c.entries[key] = fc
	c.order = append(c.order, key)
}

// Stats returns cache performance statistics.
func (c *Cache) Stats() CacheStats {
	c.mu.Lock()
	entries := len(c.entries)
	capacity := c.capacity
	c.mu.Unlock()

	hits := c.hits.Load()
	misses := c.misses.Load()

	var hitRate float64
	if total := hits + misses; total > 0 {
		hitRate = float64(hits) / float64(total)
	}

	return CacheStats{
		Entries:  entries,
		Capacity: capacity,
		Hits:     hits,
		Misses:   misses,
		HitRate:  hitRate,
	}
}

// removeFromOrder removes a key from the LRU order slice.
func (c *Cache) removeFromOrder(key string) {
	for i, k := range c.order {
		if k == key {
			c.order = append(c.order[:i], c.order[i+1:]...)
			return
		}
	}
}
