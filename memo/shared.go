// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package memo

import (
	"fmt"
	"sync"

	"golang.org/x/sync/singleflight"
)

// Shared is a Cache that is safe for concurrent use. Concurrent callers
// requesting the same absent key are coalesced into a single computation via
// singleflight; every waiter receives that one result (or that one error,
// which is never stored).
type Shared[K comparable, V any] struct {
	mu      sync.RWMutex
	entries map[K]V
	stats   Stats
	group   singleflight.Group
}

// NewShared creates an empty concurrent cache.
func NewShared[K comparable, V any]() *Shared[K, V] {
	return &Shared[K, V]{entries: make(map[K]V)}
}

// Get returns the stored value for key, or the zero value and false on miss.
func (c *Shared[K, V]) Get(key K) (V, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	v, ok := c.entries[key]
	return v, ok
}

// GetOrCompute returns the stored value for key, computing and storing it on
// first request. fn runs at most once per key no matter how many goroutines
// ask concurrently.
func (c *Shared[K, V]) GetOrCompute(key K, fn func(K) V) V {
	v, _ := c.GetOrComputeE(key, func(k K) (V, error) {
		return fn(k), nil
	})
	return v
}

// GetOrComputeE is GetOrCompute for computations that can fail. Errors are
// returned to every coalesced caller and nothing is stored, so a later call
// retries.
func (c *Shared[K, V]) GetOrComputeE(key K, fn ComputeFunc[K, V]) (V, error) {
	c.mu.RLock()
	v, ok := c.entries[key]
	c.mu.RUnlock()
	if ok {
		c.mu.Lock()
		c.stats.Hits++
		c.mu.Unlock()
		return v, nil
	}

	// singleflight keys on strings; %v is stable for comparable keys.
	flightKey := fmt.Sprintf("%v", key)
	res, err, _ := c.group.Do(flightKey, func() (any, error) {
		// Re-check under the flight; a previous flight may have stored it.
		c.mu.RLock()
		v, ok := c.entries[key]
		c.mu.RUnlock()
		if ok {
			c.mu.Lock()
			c.stats.Hits++
			c.mu.Unlock()
			return v, nil
		}

		// One miss per computation, not per coalesced waiter.
		c.mu.Lock()
		c.stats.Misses++
		c.mu.Unlock()

		v, cerr := fn(key)
		if cerr != nil {
			return nil, cerr
		}

		c.mu.Lock()
		if prior, ok := c.entries[key]; ok {
			v = prior
		} else {
			c.entries[key] = v
		}
		c.mu.Unlock()
		return v, nil
	})

	if err != nil {
		var zero V
		return zero, err
	}
	return res.(V), nil
}

// Seed stores a value for key unless one is already present.
func (c *Shared[K, V]) Seed(key K, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.entries[key]; ok {
		return
	}
	c.entries[key] = value
}

// Len returns the number of stored entries.
func (c *Shared[K, V]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// Keys returns the stored keys in no particular order.
func (c *Shared[K, V]) Keys() []K {
	c.mu.RLock()
	defer c.mu.RUnlock()
	keys := make([]K, 0, len(c.entries))
	for k := range c.entries {
		keys = append(keys, k)
	}
	return keys
}

// Stats returns a copy of the lifetime hit/miss counters.
func (c *Shared[K, V]) Stats() Stats {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.stats
}
