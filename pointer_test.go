package jsonschema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPointerAppendAndString(t *testing.T) {
	p := EmptyPointer.AppendKey("properties").AppendKey("name").AppendIndex(2)
	assert.Equal(t, "/properties/name/2", p.String())
}

func TestPointerEscaping(t *testing.T) {
	p := EmptyPointer.AppendKey("a/b").AppendKey("c~d")
	assert.Equal(t, "/a~1b/c~0d", p.String())
}

func TestPointerParentAndLast(t *testing.T) {
	p := NewPointer("properties", "name")
	last, ok := p.Last()
	require.True(t, ok)
	assert.Equal(t, "name", last.Key)
	assert.False(t, last.IsIndex)

	parent := p.Parent()
	assert.Equal(t, "/properties", parent.String())

	_, ok = EmptyPointer.Last()
	assert.False(t, ok)
}

func TestParsePointerRoundTrip(t *testing.T) {
	p := ParsePointer("/a~1b/c~0d/3")
	assert.Equal(t, "/a~1b/c~0d/3", p.String())
	last, _ := p.Last()
	assert.True(t, last.IsIndex)
	assert.Equal(t, 3, last.Index)
}

func TestParsePointerEmpty(t *testing.T) {
	assert.True(t, ParsePointer("").Empty())
	assert.True(t, ParsePointer("/").Empty())
	assert.True(t, ParsePointer("#").Empty())
}

func TestPointerGet(t *testing.T) {
	v, err := Decode([]byte(`{"a": {"b": [10, 20, 30]}}`))
	require.NoError(t, err)

	p := NewPointer("a", "b").AppendIndex(1)
	got, ok := p.Get(v)
	require.True(t, ok)
	assert.Equal(t, KindInteger, got.Kind())
	assert.Equal(t, int64(20), got.Int().Int64())

	_, ok = NewPointer("a", "missing").Get(v)
	assert.False(t, ok)
}

func TestPointerEqual(t *testing.T) {
	a := NewPointer("x", "y")
	b := NewPointer("x", "y")
	c := NewPointer("x", "z")
	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
}
