// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

// no-cloc
package driller

import (
	"testing"
)

func TestDriller(t *testing.T) {
	tests := []struct {
		name        string
		json        string
		path        string
		expectedStr string
		isNil       bool
		isArray     bool
	}{
		// Simple key tests
		{
			name:        "simple string key",
			json:        `{"name": "test"}`,
			path:        "name",
			expectedStr: "test",
		},
		{
			name:        "simple number key",
			json:        `{"count": 42}`,
			path:        "count",
			expectedStr: "42",
		},
		{
			name:        "simple boolean key true",
			json:        `{"active": true}`,
			path:        "active",
			expectedStr: "true",
		},
		{
			name:  "simple null key",
			json:  `{"value": null}`,
			path:  "value",
			isNil: true,
		},
		// Nested object tests
		{
			name:        "nested single level",
			json:        `{"user": {"name": "alice"}}`,
			path:        "user.name",
			expectedStr: "alice",
		},
		{
			name:        "nested multiple levels",
			json:        `{"root": {"sub": {"deep": "value"}}}`,
			path:        "root.sub.deep",
			expectedStr: "value",
		},
		// Array access tests - single element array
		{
			name:        "single element array returns element",
			json:        `{"items": ["only"]}`,
			path:        "items",
			expectedStr: "only",
		},
		{
			name:        "single element array of objects drills through",
			json:        `{"items": [{"id": "first"}]}`,
			path:        "items.id",
			expectedStr: "first",
		},
		// Array access tests - multi element array (returns array)
		{
			name:    "multi element array returns array",
			json:    `{"items": ["first", "second"]}`,
			path:    "items",
			isArray: true,
		},
		// Array access tests - explicit index
		{
			name:        "array with explicit index 0",
			json:        `{"items": ["first", "second", "third"]}`,
			path:        "items[0]",
			expectedStr: "first",
		},
		{
			name:        "array with explicit index 2",
			json:        `{"items": ["first", "second", "third"]}`,
			path:        "items[2]",
			expectedStr: "third",
		},
		// Array inside nested objects
		{
			name:        "nested object with array access explicit index",
			json:        `{"user": {"tags": ["admin", "user"]}}`,
			path:        "user.tags[0]",
			expectedStr: "admin",
		},
		// Array of objects
		{
			name:        "array of objects with explicit index",
			json:        `{"users": [{"id": 1, "name": "alice"}, {"id": 2, "name": "bob"}]}`,
			path:        "users[1].name",
			expectedStr: "bob",
		},
		{
			name:        "array of objects with multiple levels",
			json:        `{"org": {"teams": [{"name": "backend", "lead": {"name": "alice"}}]}}`,
			path:        "org.teams[0].lead.name",
			expectedStr: "alice",
		},
		// Key names with special characters
		{
			name:        "key with hyphen",
			json:        `{"my-key": "value"}`,
			path:        "my-key",
			expectedStr: "value",
		},
		{
			name:        "key with underscore",
			json:        `{"my_key": "value"}`,
			path:        "my_key",
			expectedStr: "value",
		},
		// Error cases - invalid paths
		{
			name:  "nonexistent key returns empty result",
			json:  `{"name": "test"}`,
			path:  "missing",
			isNil: true,
		},
		{
			name:  "invalid array index returns empty result",
			json:  `{"items": ["a", "b"]}`,
			path:  "items[10]",
			isNil: true,
		},
		{
			name:  "nested missing key returns empty result",
			json:  `{"user": {"name": "alice"}}`,
			path:  "user.missing",
			isNil: true,
		},
		// Empty structures
		{
			name:  "empty object returns empty result for any key",
			json:  `{}`,
			path:  "any",
			isNil: true,
		},
		{
			name:  "empty array with index returns empty result",
			json:  `{"items": []}`,
			path:  "items[0]",
			isNil: true,
		},
		// Shapes like the match command's row documents
		{
			name:        "computation row attributes",
			json:        `{"attributes": {"fib": {"n": 45}}}`,
			path:        "attributes.fib.n",
			expectedStr: "45",
		},
		{
			name:        "results array with explicit index",
			json:        `{"results": [{"kind": "fib", "n": 10}, {"kind": "prime", "digits": 7}]}`,
			path:        "results[1].kind",
			expectedStr: "prime",
		},
		{
			name:        "deeply nested run document",
			json:        `{"run": {"results": [{"kind": "fib", "values": [{"detail": {"id": "fib-45"}}]}]}}`,
			path:        "run.results[0].values[0].detail.id",
			expectedStr: "fib-45",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Driller(tt.json, tt.path)

			if tt.isNil {
				if result.Exists() && result.Type.String() != "Null" {
					t.Fatalf("expected empty result, got %q", result.String())
				}
				return
			}

			if tt.isArray {
				if !result.IsArray() {
					t.Fatalf("expected array result, got %q", result.String())
				}
				return
			}

			if result.String() != tt.expectedStr {
				t.Fatalf("expected %q, got %q", tt.expectedStr, result.String())
			}
		})
	}
}
