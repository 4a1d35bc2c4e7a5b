// Package lrucache is a size-bounded LRU cache with hit, miss and eviction
// counters. A size of zero or less yields a disabled cache that always misses.
package lrucache

import (
	"sync/atomic"

	lru "github.com/hashicorp/golang-lru/v2"
)

// Cache is the minimal cache surface used by the repositories.
type Cache[K comparable, V any] interface {
	Get(key K) (V, bool)
	Put(key K, value V)
	Len() int
	Purge()
	Stats() Stats
}

// Stats reports cache counters. Values are best-effort snapshots.
type Stats struct {
	Capacity  int    // configured capacity (0 for disabled cache)
	Size      int    // current number of entries
	Hits      uint64 // total hits since construction
	Misses    uint64 // total misses since construction
	Evictions uint64 // total evictions since construction, including purges
}

type cache[K comparable, V any] struct {
	lru       *lru.Cache[K, V]
	capacity  int
	hits      atomic.Uint64
	misses    atomic.Uint64
	evictions atomic.Uint64
}

type disabled[K comparable, V any] struct{}

// New returns a cache holding at most size entries.
func New[K comparable, V any](size int) (Cache[K, V], error) {
	if size <= 0 {
		return disabled[K, V]{}, nil
	}
	c := &cache[K, V]{capacity: size}
	// NewWithEvict also observes Purge-induced evictions.
	l, err := lru.NewWithEvict(size, func(K, V) {
		c.evictions.Add(1)
	})
	if err != nil {
		return nil, err
	}
	c.lru = l
	return c, nil
}

func (c *cache[K, V]) Get(key K) (V, bool) {
	if v, ok := c.lru.Get(key); ok {
		c.hits.Add(1)
		return v, true
	}
	c.misses.Add(1)
	var zero V
	return zero, false
}

func (c *cache[K, V]) Put(key K, value V) { c.lru.Add(key, value) }

func (c *cache[K, V]) Len() int { return c.lru.Len() }

func (c *cache[K, V]) Purge() { c.lru.Purge() }

func (c *cache[K, V]) Stats() Stats {
	return Stats{
		Capacity:  c.capacity,
		Size:      c.lru.Len(),
		Hits:      c.hits.Load(),
		Misses:    c.misses.Load(),
		Evictions: c.evictions.Load(),
	}
}

func (disabled[K, V]) Get(K) (V, bool) {
	var zero V
	return zero, false
}

func (disabled[K, V]) Put(K, V)     {}
func (disabled[K, V]) Len() int     { return 0 }
func (disabled[K, V]) Purge()       {}
func (disabled[K, V]) Stats() Stats { return Stats{} }
