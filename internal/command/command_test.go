// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package command

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"

	"github.com/staranto/memoctlgo/internal/attrs"
)

func TestParseIndexArgs(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		want    []int
		wantErr bool
	}{
		{
			name: "single index",
			args: []string{"45"},
			want: []int{45},
		},
		{
			name: "multiple indexes",
			args: []string{"10", "20", "30"},
			want: []int{10, 20, 30},
		},
		{
			name: "range",
			args: []string{"3..6"},
			want: []int{3, 4, 5, 6},
		},
		{
			name: "single element range",
			args: []string{"7..7"},
			want: []int{7},
		},
		{
			name: "mixed",
			args: []string{"1", "4..5", "9"},
			want: []int{1, 4, 5, 9},
		},
		{
			name: "empty args",
			args: nil,
			want: nil,
		},
		{
			name:    "not a number",
			args:    []string{"abc"},
			wantErr: true,
		},
		{
			name:    "bad range bound",
			args:    []string{"1..x"},
			wantErr: true,
		},
		{
			name:    "backwards range",
			args:    []string{"9..3"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseIndexArgs(tt.args)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestApplyFilters(t *testing.T) {
	dataset := []map[string]interface{}{
		{"n": 10, "value": 55, "cached": false},
		{"n": 20, "value": 6765, "cached": true},
		{"n": 30, "value": 832040, "cached": false},
	}

	t.Run("empty spec passes through", func(t *testing.T) {
		got := ApplyFilters(dataset, "")
		assert.Len(t, got, 3)
	})

	t.Run("numeric filter", func(t *testing.T) {
		got := ApplyFilters(cloneDataset(dataset), "n>15")
		require.Len(t, got, 2)
		assert.Equal(t, 20, got[0]["n"])
		assert.Equal(t, 30, got[1]["n"])
	})

	t.Run("bool filter", func(t *testing.T) {
		got := ApplyFilters(cloneDataset(dataset), "cached=true")
		require.Len(t, got, 1)
		assert.Equal(t, 20, got[0]["n"])
	})

	t.Run("no rows match", func(t *testing.T) {
		got := ApplyFilters(cloneDataset(dataset), "n>100")
		assert.Len(t, got, 0)
	})
}

func cloneDataset(dataset []map[string]interface{}) []map[string]interface{} {
	out := make([]map[string]interface{}, len(dataset))
	copy(out, dataset)
	return out
}

func TestProjectRow(t *testing.T) {
	row := gjson.Parse(`{"kind":"fib","n":45,"detail":{"cache":{"hits":44}}}`)

	var al attrs.AttrList
	require.NoError(t, al.Set("kind,detail.cache.hits:hits"))

	got := projectRow(row, al)
	assert.Equal(t, "fib", got["kind"])
	assert.Equal(t, float64(44), got["hits"])
}

func TestRowAttrs(t *testing.T) {
	row := gjson.Parse(`{"kind":"prime","digits":40,"value":"..."}`)

	al := rowAttrs(row)
	require.Len(t, al, 3)
	assert.Equal(t, "kind", al[0].OutputKey)
	assert.Equal(t, "digits", al[1].OutputKey)
	assert.Equal(t, "value", al[2].OutputKey)
	assert.True(t, al[0].Include)
}

func TestBenchRows(t *testing.T) {
	rows, err := benchRows(20)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, rows[0]["value"], rows[1]["value"])
	assert.Equal(t, "memoized", rows[0]["approach"])
	assert.Equal(t, "naive", rows[1]["approach"])
	assert.Equal(t, uint64(6765), rows[0]["value"])
}
