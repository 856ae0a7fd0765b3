// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

// Package seq provides small function-valued helpers over slices and maps:
// first-match search, bulk mutation, comparator sorting, and map merging.
package seq

import "sort"

// First returns the first element of s satisfying pred. When s is empty or
// no element matches, it returns the zero value and false rather than
// panicking or sentinel values.
func First[S ~[]E, E any](s S, pred func(E) bool) (E, bool) {
	for _, e := range s {
		if pred(e) {
			return e, true
		}
	}
	var zero E
	return zero, false
}

// ForEach applies fn to each element of s in order.
func ForEach[S ~[]E, E any](s S, fn func(E)) {
	for _, e := range s {
		fn(e)
	}
}

// RemoveIf returns s with every element satisfying pred removed. Order of
// the survivors is preserved. The input slice's backing array is reused.
func RemoveIf[S ~[]E, E any](s S, pred func(E) bool) S {
	out := s[:0]
	for _, e := range s {
		if !pred(e) {
			out = append(out, e)
		}
	}
	return out
}

// ReplaceAll replaces each element of s with fn(element), in place.
func ReplaceAll[S ~[]E, E any](s S, fn func(E) E) {
	for i := range s {
		s[i] = fn(s[i])
	}
}

// SortBy sorts s in place using the provided less comparator. The sort is
// stable so equal elements keep their relative order.
func SortBy[S ~[]E, E any](s S, less func(a, b E) bool) {
	sort.SliceStable(s, func(i, j int) bool {
		return less(s[i], s[j])
	})
}

// Merge stores value under key if the key is absent. If the key is present,
// it stores and returns remap(existing, value) instead. The stored value is
// returned either way.
func Merge[M ~map[K]V, K comparable, V any](m M, key K, value V, remap func(old, new V) V) V {
	if old, ok := m[key]; ok {
		value = remap(old, value)
	}
	m[key] = value
	return value
}

// GetOrInsert is compute-if-absent on an ordinary map: it returns m[key] if
// present, otherwise stores fn(key) and returns it. fn is not invoked for a
// present key.
func GetOrInsert[M ~map[K]V, K comparable, V any](m M, key K, fn func(K) V) V {
	if v, ok := m[key]; ok {
		return v
	}
	v := fn(key)
	m[key] = v
	return v
}
