package wfs

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/greenseoul/urban-cooling-engine/internal/provider"
)

// CachedParkSource wraps a ParkSource with an in-memory LRU cache with TTL
// expiry. The cache is advisory: it only memoizes successful lookups and can
// be bypassed entirely by using the inner source directly.
type CachedParkSource struct {
	inner   provider.ParkSource
	cache   *lruCache
	lookups *prometheus.CounterVec // labels: result={hit,miss}
}

// NewCachedParkSource creates a cache decorator around a park source.
// Pass a nil lookups counter to disable cache metrics.
func NewCachedParkSource(inner provider.ParkSource, maxEntries int, ttl time.Duration, clock clockwork.Clock, lookups *prometheus.CounterVec) *CachedParkSource {
	return &CachedParkSource{
		inner:   inner,
		cache:   newLRUCache(maxEntries, ttl, clock),
		lookups: lookups,
	}
}

func (c *CachedParkSource) Parks(ctx context.Context, districtFilter string, maxFeatures int) ([]provider.ParkRecord, error) {
	key := fmt.Sprintf("parks:%s|%d", districtFilter, maxFeatures)
	if parks, ok := c.cache.get(key); ok {
		c.count("hit")
		return parks, nil
	}
	c.count("miss")

	parks, err := c.inner.Parks(ctx, districtFilter, maxFeatures)
	if err != nil {
		return nil, err
	}
	// Only cache non-empty results so transient empty responses can be retried.
	if len(parks) > 0 {
		c.cache.put(key, parks)
	}
	return parks, nil
}

func (c *CachedParkSource) count(result string) {
	if c.lookups != nil {
		c.lookups.WithLabelValues(result).Inc()
	}
}

// lruCache is a simple thread-safe LRU cache with per-entry TTL.
type lruCache struct {
	maxEntries int
	ttl        time.Duration
	clock      clockwork.Clock

	mu      sync.Mutex
	entries map[string]*entry
	head    *entry // most recently used
	tail    *entry // least recently used
}

type entry struct {
	key       string
	value     []provider.ParkRecord
	expiresAt time.Time
	prev      *entry
	next      *entry
}

func newLRUCache(maxEntries int, ttl time.Duration, clock clockwork.Clock) *lruCache {
	return &lruCache{
		maxEntries: maxEntries,
		ttl:        ttl,
		clock:      clock,
		entries:    make(map[string]*entry),
	}
}

func (c *lruCache) get(key string) ([]provider.ParkRecord, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	if c.ttl > 0 && c.clock.Now().After(e.expiresAt) {
		delete(c.entries, e.key)
		c.remove(e)
		return nil, false
	}
	c.moveToFront(e)
	return e.value, true
}

func (c *lruCache) put(key string, value []provider.ParkRecord) {
	c.mu.Lock()
	defer c.mu.Unlock()

	expiresAt := c.clock.Now().Add(c.ttl)
	if e, ok := c.entries[key]; ok {
		e.value = value
		e.expiresAt = expiresAt
		c.moveToFront(e)
		return
	}

	e := &entry{key: key, value: value, expiresAt: expiresAt}
	c.entries[key] = e
	c.addToFront(e)

	if len(c.entries) > c.maxEntries {
		c.evictTail()
	}
}

func (c *lruCache) moveToFront(e *entry) {
	if e == c.head {
		return
	}
	c.remove(e)
	c.addToFront(e)
}

func (c *lruCache) addToFront(e *entry) {
	e.next = c.head
	e.prev = nil
	if c.head != nil {
		c.head.prev = e
	}
	c.head = e
	if c.tail == nil {
		c.tail = e
	}
}

func (c *lruCache) remove(e *entry) {
	if e.prev != nil {
		e.prev.next = e.next
	} else {
		c.head = e.next
	}
	if e.next != nil {
		e.next.prev = e.prev
	} else {
		c.tail = e.prev
	}
}

func (c *lruCache) evictTail() {
	if c.tail == nil {
		return
	}
	delete(c.entries, c.tail.key)
	c.remove(c.tail)
}
