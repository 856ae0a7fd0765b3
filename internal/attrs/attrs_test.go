// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package attrs

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSet_SingleField(t *testing.T) {
	var al AttrList
	assert.NoError(t, al.Set("kind"))

	assert.Len(t, al, 1)
	assert.Equal(t, "kind", al[0].Key)
	assert.Equal(t, "kind", al[0].OutputKey)
	assert.True(t, al[0].Include)
}

func TestSet_OutputKeyDefaultsToLastSegment(t *testing.T) {
	var al AttrList
	assert.NoError(t, al.Set("detail.cache.hits"))

	assert.Len(t, al, 1)
	assert.Equal(t, "detail.cache.hits", al[0].Key)
	assert.Equal(t, "hits", al[0].OutputKey)
}

func TestSet_ExplicitOutputKeyAndTransform(t *testing.T) {
	var al AttrList
	assert.NoError(t, al.Set("kind:Kind:u"))

	assert.Len(t, al, 1)
	assert.Equal(t, "kind", al[0].Key)
	assert.Equal(t, "Kind", al[0].OutputKey)
	assert.Equal(t, "u", al[0].TransformSpec)
}

func TestSet_Exclusion(t *testing.T) {
	var al AttrList
	assert.NoError(t, al.Set("kind,!value"))

	assert.Len(t, al, 2)
	assert.True(t, al[0].Include)
	assert.False(t, al[1].Include)
	assert.Equal(t, "value", al[1].Key)
}

func TestSet_DuplicateMergesIntoExisting(t *testing.T) {
	var al AttrList
	assert.NoError(t, al.Set("kind,value"))
	assert.NoError(t, al.Set("kind:Kind:u"))

	assert.Len(t, al, 2)
	assert.Equal(t, "Kind", al[0].OutputKey)
	assert.Equal(t, "u", al[0].TransformSpec)
}

func TestSet_EmptyAndStar(t *testing.T) {
	var al AttrList
	assert.NoError(t, al.Set(""))
	assert.Len(t, al, 0)

	assert.NoError(t, al.Set("*"))
	assert.Len(t, al, 0)
}

func TestSetGlobalTransformSpec(t *testing.T) {
	var al AttrList
	assert.NoError(t, al.Set("*::u,kind,value::l"))
	assert.NoError(t, al.SetGlobalTransformSpec())

	// Global 'u' is prepended, so the attr's own spec wins when present.
	for _, a := range al {
		if a.Key == "*" {
			continue
		}
		assert.True(t, len(a.TransformSpec) >= 2, "spec %q", a.TransformSpec)
	}

	kind := al[1]
	assert.Equal(t, "KIND", kind.Transform("kind"))

	value := al[2]
	assert.Equal(t, "loud", value.Transform("LOUD"))
}

func TestTransform_Case(t *testing.T) {
	a := Attr{TransformSpec: "u"}
	assert.Equal(t, "ABC", a.Transform("abc"))

	a = Attr{TransformSpec: "l"}
	assert.Equal(t, "abc", a.Transform("ABC"))

	a = Attr{}
	assert.Equal(t, "AbC", a.Transform("AbC"))
}

func TestTransform_Length(t *testing.T) {
	a := Attr{TransformSpec: "4"}
	assert.Equal(t, "abcd", a.Transform("abcdefgh"))

	// Negative length elides the middle.
	a = Attr{TransformSpec: "-6"}
	assert.Equal(t, "ab..gh", a.Transform("abcdefgh"))

	// Shorter values pass through.
	a = Attr{TransformSpec: "10"}
	assert.Equal(t, "abc", a.Transform("abc"))
}

func TestTransform_NonStringPassthrough(t *testing.T) {
	a := Attr{TransformSpec: "u"}
	assert.Equal(t, 42, a.Transform(42))
	assert.Equal(t, true, a.Transform(true))

	m := map[string]interface{}{"k": "v"}
	assert.Equal(t, m, a.Transform(m))
}

func TestString_RoundTripShape(t *testing.T) {
	var al AttrList
	assert.NoError(t, al.Set("kind:Kind:u,value"))
	assert.Equal(t, "kind:Kind:u,value:value:", al.String())
}
