// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

// Package memo provides unbounded memoization caches keyed by comparable
// values. Cache is the single-goroutine flavor; Shared adds per-key
// single-computation semantics for concurrent callers.
package memo
