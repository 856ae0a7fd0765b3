// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package output

import (
	"sort"
	"strings"
)

// sortKey is one parsed component of a --sort spec.
type sortKey struct {
	Key           string
	Descending    bool
	CaseSensitive bool
}

// SortDataset sorts the result set in place per the comma-separated spec.
// Each component names an output key; a leading '-' sorts descending and a
// leading '!' compares strings case-sensitively. An empty spec is a no-op.
func SortDataset(dataset []map[string]interface{}, spec string) {
	if spec == "" {
		return
	}

	//nolint:prealloc
	var keys []sortKey
	for _, s := range strings.Split(spec, ",") {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		k := sortKey{}
		for {
			if strings.HasPrefix(s, "-") {
				k.Descending = true
				s = s[1:]
				continue
			}
			if strings.HasPrefix(s, "!") {
				k.CaseSensitive = true
				s = s[1:]
				continue
			}
			break
		}
		k.Key = s
		keys = append(keys, k)
	}

	if len(keys) == 0 {
		return
	}

	sort.SliceStable(dataset, func(i, j int) bool {
		for _, k := range keys {
			c := compareValues(dataset[i][k.Key], dataset[j][k.Key], k.CaseSensitive)
			if c == 0 {
				continue
			}
			if k.Descending {
				return c > 0
			}
			return c < 0
		}
		return false
	})
}

// compareValues orders two row values. Numbers compare numerically, strings
// lexically (case-insensitive by default), nil sorts first.
func compareValues(a, b interface{}, caseSensitive bool) int {
	if a == nil && b == nil {
		return 0
	}
	if a == nil {
		return -1
	}
	if b == nil {
		return 1
	}

	if na, ok := toFloat64(a); ok {
		if nb, ok := toFloat64(b); ok {
			switch {
			case na < nb:
				return -1
			case na > nb:
				return 1
			default:
				return 0
			}
		}
	}

	sa := InterfaceToString(a)
	sb := InterfaceToString(b)
	if !caseSensitive {
		sa = strings.ToLower(sa)
		sb = strings.ToLower(sb)
	}
	return strings.Compare(sa, sb)
}

// toFloat64 attempts to normalize various numeric types to float64.
func toFloat64(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint64:
		return float64(n), true
	default:
		return 0, false
	}
}
