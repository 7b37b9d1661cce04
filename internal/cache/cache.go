// Package cache remembers entity keys already confirmed to exist.
package cache

import (
	"fmt"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// Cache is an expiring set of keys backed by go-cache.
type Cache struct {
	store *gocache.Cache
}

// New returns a Cache whose entries live for ttl and are swept every cleanup.
func New(ttl, cleanup time.Duration) *Cache {
	return &Cache{store: gocache.New(ttl, cleanup)}
}

// Remember marks key as present until the ttl runs out.
func (c *Cache) Remember(key string) {
	c.store.SetDefault(key, struct{}{})
}

// Known reports whether key was remembered and has not expired.
func (c *Cache) Known(key string) bool {
	_, ok := c.store.Get(key)
	return ok
}

// KeyExists builds the cache key for an entity of the given kind.
func KeyExists(kind string, key interface{}) string {
	return fmt.Sprintf("exists:%s:%v", kind, key)
}
