// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package driller

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/tidwall/gjson"
)

// indexRe splits a path segment into its key and optional [n] index.
var indexRe = regexp.MustCompile(`^(.*?)\[(\d+)\]$`)

// Driller extracts the value at a dotted path from a raw JSON document.
// Beyond plain gjson paths it drills through single-element arrays without
// an explicit index, so "items.id" works on {"items":[{"id":...}]}. An
// explicit [n] index selects an array element; out-of-range or missing
// paths return a non-existent Result.
func Driller(raw string, path string) gjson.Result {
	current := gjson.Parse(raw)

	for _, segment := range strings.Split(path, ".") {
		key, index, hasIndex := splitIndex(segment)

		// A single-element array is transparent; drill into its element.
		if current.IsArray() {
			arr := current.Array()
			if len(arr) != 1 {
				return gjson.Result{}
			}
			current = arr[0]
		}

		current = current.Get(key)
		if !current.Exists() {
			return gjson.Result{}
		}

		if hasIndex {
			if !current.IsArray() {
				return gjson.Result{}
			}
			arr := current.Array()
			if index >= len(arr) {
				return gjson.Result{}
			}
			current = arr[index]
		}
	}

	// A trailing single-element array unwraps to its element.
	if current.IsArray() {
		if arr := current.Array(); len(arr) == 1 {
			return arr[0]
		}
	}

	return current
}

func splitIndex(segment string) (key string, index int, ok bool) {
	parts := indexRe.FindStringSubmatch(segment)
	if parts == nil {
		return segment, 0, false
	}
	i, err := strconv.Atoi(parts[2])
	if err != nil {
		return segment, 0, false
	}
	return parts[1], i, true
}
