// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

// Package primes produces probable primes with an exact decimal digit
// length. Generation is randomized, so results differ between Sources, but
// each Source memoizes per digit count and will hand back the identical
// value on every repeat request.
package primes

import (
	"crypto/rand"
	"fmt"
	"io"
	"math/big"

	"github.com/staranto/memoctlgo/memo"
)

// MaxDigits keeps candidate scanning at an interactive latency.
const MaxDigits = 1000

// probablyPrimeN is the number of Miller-Rabin rounds. 20 puts the error
// probability below 2^-40.
const probablyPrimeN = 20

var (
	one = big.NewInt(1)
	two = big.NewInt(2)
	ten = big.NewInt(10)
)

// Source generates and memoizes primes by digit count. Not safe for
// concurrent use.
type Source struct {
	cache *memo.Cache[int, *big.Int]
	rand  io.Reader
}

// New creates a Source backed by crypto/rand.
func New() *Source {
	return NewWithRand(rand.Reader)
}

// NewWithRand creates a Source with a caller-provided entropy source.
// Handy for deterministic tests.
func NewWithRand(r io.Reader) *Source {
	return &Source{cache: memo.New[int, *big.Int](), rand: r}
}

// Of returns a probable prime with exactly digits decimal digits. The first
// request per digit count generates one; repeats return the stored value.
func (s *Source) Of(digits int) (*big.Int, error) {
	if digits < 1 {
		return nil, fmt.Errorf("digit count must be >= 1, got %d", digits)
	}
	if digits > MaxDigits {
		return nil, fmt.Errorf("digit count %d exceeds max %d", digits, MaxDigits)
	}

	return s.cache.GetOrComputeE(digits, s.generate)
}

// Cached reports whether a prime for the digit count is already stored.
func (s *Source) Cached(digits int) bool {
	_, ok := s.cache.Get(digits)
	return ok
}

// Seed pre-populates the prime for a digit count, typically from a persisted
// store. Existing entries are kept.
func (s *Source) Seed(digits int, p *big.Int) {
	s.cache.Seed(digits, p)
}

// generate picks a random odd candidate in [10^(digits-1), 10^digits) and
// walks upward to the next probable prime, wrapping back to the range floor
// if it runs off the top.
func (s *Source) generate(digits int) (*big.Int, error) {
	// floor = 10^(digits-1), ceil = 10^digits.
	floor := new(big.Int).Exp(ten, big.NewInt(int64(digits-1)), nil)
	ceil := new(big.Int).Exp(ten, big.NewInt(int64(digits)), nil)
	width := new(big.Int).Sub(ceil, floor)

	offset, err := rand.Int(s.rand, width)
	if err != nil {
		return nil, fmt.Errorf("failed to draw candidate: %w", err)
	}

	candidate := new(big.Int).Add(floor, offset)
	if candidate.Bit(0) == 0 {
		candidate.Add(candidate, one)
	}

	// 2 and 5 are the only primes the odd walk can't reach for digits=1,
	// and that's fine; 3 or 7 will be found in-range.
	for {
		if candidate.Cmp(ceil) >= 0 {
			// Wrapped past the range; restart at the first odd >= floor.
			candidate.Set(floor)
			if candidate.Bit(0) == 0 {
				candidate.Add(candidate, one)
			}
		}
		if candidate.ProbablyPrime(probablyPrimeN) {
			// Return a copy so cache contents can't be mutated by callers.
			return new(big.Int).Set(candidate), nil
		}
		candidate.Add(candidate, two)
	}
}

// Digits returns the decimal digit count of p.
func Digits(p *big.Int) int {
	return len(p.Text(10))
}
