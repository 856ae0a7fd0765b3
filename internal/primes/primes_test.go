// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package primes

import (
	"math/big"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

// testRand is a deterministic entropy source for repeatable tests.
func testRand() *rand.Rand {
	return rand.New(rand.NewSource(42)) //nolint:gosec
}

func TestOf_DigitLength(t *testing.T) {
	s := NewWithRand(testRand())

	for _, d := range []int{1, 2, 5, 10, 40} {
		p, err := s.Of(d)
		assert.NoError(t, err)
		assert.Equal(t, d, Digits(p), "wanted %d digits, got %s", d, p)
		assert.True(t, p.ProbablyPrime(20))
	}
}

func TestOf_RepeatReturnsIdenticalValue(t *testing.T) {
	s := New()

	first, err := s.Of(12)
	assert.NoError(t, err)

	second, err := s.Of(12)
	assert.NoError(t, err)

	// Same value both times: the second request is a cache hit, not a new
	// random draw.
	assert.Zero(t, first.Cmp(second))
	assert.True(t, s.Cached(12))
}

func TestOf_Bounds(t *testing.T) {
	s := New()

	_, err := s.Of(0)
	assert.Error(t, err)

	_, err = s.Of(-3)
	assert.Error(t, err)

	_, err = s.Of(MaxDigits + 1)
	assert.Error(t, err)
}

func TestSeed(t *testing.T) {
	s := New()
	s.Seed(3, big.NewInt(101))

	p, err := s.Of(3)
	assert.NoError(t, err)
	assert.Equal(t, int64(101), p.Int64())
}

func TestDigits(t *testing.T) {
	assert.Equal(t, 1, Digits(big.NewInt(7)))
	assert.Equal(t, 3, Digits(big.NewInt(101)))
	assert.Equal(t, 5, Digits(big.NewInt(99991)))
}
