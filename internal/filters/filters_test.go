// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package filters

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tidwall/gjson"
)

func TestBuildFilters(t *testing.T) {
	tests := []struct {
		name      string
		spec      string
		wantCount int
		want      []Filter
	}{
		{
			name:      "empty spec",
			spec:      "",
			wantCount: 0,
		},
		{
			name:      "single exact match filter",
			spec:      "kind=fib",
			wantCount: 1,
			want: []Filter{
				{Key: "kind", Operand: "=", Target: "fib", Negate: false},
			},
		},
		{
			name:      "prefix match filter",
			spec:      "kind^f",
			wantCount: 1,
			want: []Filter{
				{Key: "kind", Operand: "^", Target: "f", Negate: false},
			},
		},
		{
			name:      "negated exact match",
			spec:      "kind!=prime",
			wantCount: 1,
			want: []Filter{
				{Key: "kind", Operand: "=", Target: "prime", Negate: true},
			},
		},
		{
			name:      "multiple filters",
			spec:      "kind=fib,n>10",
			wantCount: 2,
			want: []Filter{
				{Key: "kind", Operand: "=", Target: "fib", Negate: false},
				{Key: "n", Operand: ">", Target: "10", Negate: false},
			},
		},
		{
			name:      "contains operand",
			spec:      "tags@slow",
			wantCount: 1,
			want: []Filter{
				{Key: "tags", Operand: "@", Target: "slow", Negate: false},
			},
		},
		{
			name:      "regex operand",
			spec:      "kind/^f.b$",
			wantCount: 1,
			want: []Filter{
				{Key: "kind", Operand: "/", Target: "^f.b$", Negate: false},
			},
		},
		{
			name:      "invalid filter skipped",
			spec:      "kind=fib,bogus-filter,n<5",
			wantCount: 2,
			want: []Filter{
				{Key: "kind", Operand: "=", Target: "fib", Negate: false},
				{Key: "n", Operand: "<", Target: "5", Negate: false},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BuildFilters(tt.spec)
			assert.Len(t, got, tt.wantCount)
			if tt.want != nil {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestBuildFilters_CustomDelimiter(t *testing.T) {
	t.Setenv("MEMOCTL_FILTER_DELIM", ";")
	got := BuildFilters("kind=fib;n>10")
	assert.Len(t, got, 2)
	assert.Equal(t, "kind", got[0].Key)
	assert.Equal(t, "n", got[1].Key)
}

func TestMatches(t *testing.T) {
	row := gjson.Parse(`{
		"kind": "fib",
		"n": 45,
		"cached": true,
		"tags": ["slow", "demo"],
		"detail": {"cache": {"hits": 44}}
	}`)

	tests := []struct {
		name string
		spec string
		want bool
	}{
		{"no filters", "", true},
		{"string equality", "kind=fib", true},
		{"string equality miss", "kind=prime", false},
		{"negated equality", "kind!=prime", true},
		{"prefix", "kind^f", true},
		{"case-insensitive", "kind~FIB", true},
		{"numeric greater", "n>40", true},
		{"numeric less miss", "n<40", false},
		{"numeric equality", "n=45", true},
		{"bool as string", "cached=true", true},
		{"contains on array", "tags@slow", true},
		{"contains miss", "tags@fast", false},
		{"negated contains", "tags!@fast", true},
		{"nested path", "detail.cache.hits=44", true},
		{"regex", "kind/^f.b$", true},
		{"all must match", "kind=fib,n>40,cached=true", true},
		{"one miss fails all", "kind=fib,n>100", false},
		{"missing key fails", "nope=1", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Matches(row, BuildFilters(tt.spec))
			assert.Equal(t, tt.want, got)
		})
	}
}
