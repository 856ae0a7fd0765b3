// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

// Package fibs computes Fibonacci numbers through a memoization cache. The
// recursive definition would be exponential on its own; the cache collapses
// the overlapping subproblems to one computation per index.
package fibs

import (
	"fmt"

	"github.com/staranto/memoctlgo/memo"
)

// MaxN is the largest index whose value fits in a uint64.
const MaxN = 93

// Calculator memoizes Fibonacci values. The zero value is not usable; use
// New. Not safe for concurrent use (the underlying memo.Cache is not).
type Calculator struct {
	cache    *memo.Cache[int, uint64]
	computes int
}

// New creates a Calculator seeded with the two base cases.
func New() *Calculator {
	c := &Calculator{cache: memo.New[int, uint64]()}
	c.cache.Seed(0, 0)
	c.cache.Seed(1, 1)
	return c
}

// Fib returns fib(n) for 0 <= n <= MaxN.
func (c *Calculator) Fib(n int) (uint64, error) {
	if n < 0 {
		return 0, fmt.Errorf("fib index must be >= 0, got %d", n)
	}
	if n > MaxN {
		return 0, fmt.Errorf("fib(%d) overflows uint64 (max index %d)", n, MaxN)
	}
	return c.fib(n), nil
}

func (c *Calculator) fib(n int) uint64 {
	return c.cache.GetOrCompute(n, func(k int) uint64 {
		c.computes++
		return c.fib(k-1) + c.fib(k-2)
	})
}

// Cached reports whether fib(n) is already stored.
func (c *Calculator) Cached(n int) bool {
	_, ok := c.cache.Get(n)
	return ok
}

// Seed pre-populates fib(n), typically from a persisted store. Existing
// entries are kept.
func (c *Calculator) Seed(n int, v uint64) {
	c.cache.Seed(n, v)
}

// Computes returns how many indexes have actually been computed (cache
// seeds and hits excluded).
func (c *Calculator) Computes() int {
	return c.computes
}

// Stats exposes the underlying cache counters.
func (c *Calculator) Stats() memo.Stats {
	return c.cache.Stats()
}

// Naive is the textbook exponential recursion, kept for the bench command.
// It returns the value and the number of calls made.
func Naive(n int) (uint64, uint64) {
	if n < 2 {
		return uint64(n), 1
	}
	a, ca := Naive(n - 1)
	b, cb := Naive(n - 2)
	return a + b, ca + cb + 1
}
