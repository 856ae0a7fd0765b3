// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package memo

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestShared_ConcurrentSingleComputation(t *testing.T) {
	c := NewShared[string, int]()

	var calls int32
	slow := func(k string) int {
		atomic.AddInt32(&calls, 1)
		time.Sleep(20 * time.Millisecond)
		return len(k)
	}

	const goroutines = 16
	var wg sync.WaitGroup
	results := make([]int, goroutines)
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = c.GetOrCompute("racer", slow)
		}(i)
	}
	wg.Wait()

	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
	for _, r := range results {
		assert.Equal(t, 5, r)
	}

	// Coalesced waiters share the one computation; they must not each
	// record a miss.
	assert.Equal(t, uint64(1), c.Stats().Misses)

	c.GetOrCompute("racer", slow)
	stats := c.Stats()
	assert.Equal(t, uint64(1), stats.Misses)
	assert.GreaterOrEqual(t, stats.Hits, uint64(1))
}

func TestShared_ErrorSharedButNotStored(t *testing.T) {
	c := NewShared[int, int]()

	boom := errors.New("boom")
	var calls int32
	failOnce := func(k int) (int, error) {
		if atomic.AddInt32(&calls, 1) == 1 {
			return 0, boom
		}
		return k + 1, nil
	}

	_, err := c.GetOrComputeE(9, failOnce)
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 0, c.Len())

	v, err := c.GetOrComputeE(9, failOnce)
	assert.NoError(t, err)
	assert.Equal(t, 10, v)
}

func TestShared_GetAndSeed(t *testing.T) {
	c := NewShared[string, string]()

	_, ok := c.Get("k")
	assert.False(t, ok)

	c.Seed("k", "v1")
	c.Seed("k", "v2")
	v, ok := c.Get("k")
	assert.True(t, ok)
	assert.Equal(t, "v1", v)

	got := c.GetOrCompute("k", func(string) string {
		t.Fatal("seeded key must not compute")
		return ""
	})
	assert.Equal(t, "v1", got)
	assert.Equal(t, 1, c.Len())
	assert.ElementsMatch(t, []string{"k"}, c.Keys())
}

func TestShared_DistinctKeysComputeIndependently(t *testing.T) {
	c := NewShared[int, int]()

	var calls int32
	square := func(k int) int {
		atomic.AddInt32(&calls, 1)
		return k * k
	}

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			assert.Equal(t, i*i, c.GetOrCompute(i, square))
		}(i)
	}
	wg.Wait()

	assert.Equal(t, int32(8), atomic.LoadInt32(&calls))
	assert.Equal(t, 8, c.Len())
}
