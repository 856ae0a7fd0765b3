// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

package memo

// ComputeFunc produces the value for a key. It may query the same cache for
// other keys, which is how overlapping-subproblem recursion (Fibonacci et al)
// collapses to one computation per key.
type ComputeFunc[K comparable, V any] func(K) (V, error)

// Stats are the lifetime lookup counters for a cache.
type Stats struct {
	// Hits is the number of lookups answered from a stored entry.
	Hits uint64
	// Misses is the number of lookups that had to compute.
	Misses uint64
}

// Cache maps K to V, computing each value at most once. Entries are never
// evicted or overwritten; growth is monotonic. It is not safe for concurrent
// use; callers must synchronize externally or confine access to a single
// goroutine. Use Shared when callers race.
type Cache[K comparable, V any] struct {
	entries map[K]V
	stats   Stats
}

// New creates an empty cache.
func New[K comparable, V any]() *Cache[K, V] {
	return &Cache[K, V]{entries: make(map[K]V)}
}

// Get returns the stored value for key, or the zero value and false on miss.
// Get does not count against Stats.
func (c *Cache[K, V]) Get(key K) (V, bool) {
	v, ok := c.entries[key]
	return v, ok
}

// GetOrCompute returns the stored value for key if present. Otherwise it
// invokes fn(key) exactly once, stores the result, and returns it. A later
// call for the same key never invokes fn again, even a different fn.
func (c *Cache[K, V]) GetOrCompute(key K, fn func(K) V) V {
	if v, ok := c.entries[key]; ok {
		c.stats.Hits++
		return v
	}
	c.stats.Misses++

	// fn may recurse into this cache, so compute before storing. The
	// recursive writes land on other keys; this key is still absent.
	v := fn(key)

	// A recursive fn could have filled this key already.  First write wins.
	if prior, ok := c.entries[key]; ok {
		return prior
	}
	c.entries[key] = v
	return v
}

// GetOrComputeE is GetOrCompute for computations that can fail. A failed
// computation stores nothing, so the next call for the key retries.
func (c *Cache[K, V]) GetOrComputeE(key K, fn ComputeFunc[K, V]) (V, error) {
	if v, ok := c.entries[key]; ok {
		c.stats.Hits++
		return v, nil
	}
	c.stats.Misses++

	v, err := fn(key)
	if err != nil {
		var zero V
		return zero, err
	}

	if prior, ok := c.entries[key]; ok {
		return prior, nil
	}
	c.entries[key] = v
	return v, nil
}

// Seed stores a value for key without computing. If the key is already
// present the existing entry is kept, preserving the never-overwrite
// invariant.
func (c *Cache[K, V]) Seed(key K, value V) {
	if _, ok := c.entries[key]; ok {
		return
	}
	c.entries[key] = value
}

// Len returns the number of stored entries.
func (c *Cache[K, V]) Len() int {
	return len(c.entries)
}

// Keys returns the stored keys in no particular order.
func (c *Cache[K, V]) Keys() []K {
	keys := make([]K, 0, len(c.entries))
	for k := range c.entries {
		keys = append(keys, k)
	}
	return keys
}

// Stats returns a copy of the lifetime hit/miss counters.
func (c *Cache[K, V]) Stats() Stats {
	return c.stats
}
