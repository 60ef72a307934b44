// Package cache provides the short-lived read-through memoization used by
// repositories and the authorization resolver. Entries carry an absolute
// TTL and expire lazily: the cleanup goroutine is never started, so an
// expired entry is simply treated as absent on its next read.
package cache

import (
	"time"

	"github.com/jellydator/ttlcache/v3"
)

// Cache is a concurrent-safe string-keyed memoizing store. Instances are
// owned by the composition root and injected where needed; there is no
// package-level cache state.
type Cache[V any] struct {
	items *ttlcache.Cache[string, V]
}

// New returns an empty cache. TTLs are absolute: reads do not extend an
// entry's lifetime.
func New[V any]() *Cache[V] {
	return &Cache[V]{
		items: ttlcache.New(
			ttlcache.WithDisableTouchOnHit[string, V](),
		),
	}
}

// Get returns the value stored under key, if present and unexpired.
func (c *Cache[V]) Get(key string) (V, bool) {
	item := c.items.Get(key)
	if item == nil {
		var zero V
		return zero, false
	}
	return item.Value(), true
}

// Set stores value under key for ttl, overwriting any prior entry.
func (c *Cache[V]) Set(key string, value V, ttl time.Duration) {
	c.items.Set(key, value, ttl)
}

// Invalidate removes one entry.
func (c *Cache[V]) Invalidate(key string) {
	c.items.Delete(key)
}

// Clear removes all entries.
func (c *Cache[V]) Clear() {
	c.items.DeleteAll()
}

// Len reports the number of entries currently held, including entries that
// have expired but not yet been read.
func (c *Cache[V]) Len() int {
	return c.items.Len()
}
