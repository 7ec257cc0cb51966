// Package cache provides a small bounded LRU used to memoize decoded
// objects by oid.
package cache

import (
	"sync"

	lru "github.com/golang/groupcache/lru"
)

// Key may be any comparable value. See http://golang.org/ref/spec#Comparison_operators
type Key = lru.Key

// LRU is a size-bounded, mutex-guarded cache. Entries are written
// atomically: Add never leaves a partially-populated key visible to a
// concurrent Get.
type LRU struct {
	cache *lru.Cache
	mu    sync.Mutex
}

// New creates an LRU bounded to maxEntries. A maxEntries of zero means no
// limit, and the caller is responsible for not growing it unbounded.
func New(maxEntries int) *LRU {
	return &LRU{cache: lru.New(maxEntries)}
}

// Get looks up a key's value.
func (c *LRU) Get(key Key) (value interface{}, ok bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.cache.Get(key)
}

// Add adds a value to the cache, evicting the least recently used entry
// if the cache is at capacity.
func (c *LRU) Add(key Key, value interface{}) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cache.Add(key, value)
}

// Len returns the number of items currently cached.
func (c *LRU) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.cache.Len()
}
