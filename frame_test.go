package jsonschema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIndexRecordsStaticURIForRootAndNestedLocations(t *testing.T) {
	schema, err := Decode([]byte(`{
		"$schema": "https://json-schema.org/draft/2020-12/schema",
		"$id": "https://example.com/root",
		"$defs": {"sub": {"type": "string"}}
	}`))
	require.NoError(t, err)

	resolver := NewMapResolver()
	frame, err := Index(schema, resolver, NewDefaultWalker(), Draft202012)
	require.NoError(t, err)

	root, ok := frame.Lookup(ReferenceStatic, "https://example.com/root")
	require.True(t, ok)
	assert.True(t, root.Pointer.Empty())

	sub, ok := frame.Lookup(ReferenceStatic, "https://example.com/root#/$defs/sub")
	require.True(t, ok)
	assert.Equal(t, "/$defs/sub", sub.Pointer.String())
}

func TestIndexAnchor(t *testing.T) {
	schema, err := Decode([]byte(`{
		"$schema": "https://json-schema.org/draft/2020-12/schema",
		"$id": "https://example.com/root",
		"$defs": {"sub": {"$anchor": "mySub", "type": "string"}}
	}`))
	require.NoError(t, err)

	frame, err := Index(schema, NewMapResolver(), NewDefaultWalker(), Draft202012)
	require.NoError(t, err)

	entry, ok := frame.Lookup(ReferenceStatic, "https://example.com/root#mySub")
	require.True(t, ok)
	assert.Equal(t, "/$defs/sub", entry.Pointer.String())
}

func TestIndexUnresolvedReferenceErrors(t *testing.T) {
	schema, err := Decode([]byte(`{
		"$schema": "https://json-schema.org/draft/2020-12/schema",
		"$ref": "#/$defs/missing"
	}`))
	require.NoError(t, err)

	_, err = Index(schema, NewMapResolver(), NewDefaultWalker(), Draft202012)
	assert.ErrorIs(t, err, ErrReferenceUnresolved)
}

func TestIndexMissingDialectWithNoDefault(t *testing.T) {
	schema, err := Decode([]byte(`{"type": "string"}`))
	require.NoError(t, err)

	_, err = Index(schema, NewMapResolver(), NewDefaultWalker(), "")
	assert.ErrorIs(t, err, ErrMissingDialect)
}

func TestIndexFollowsExternalDocumentReferences(t *testing.T) {
	resolver := NewMapResolver()
	external, err := Decode([]byte(`{
		"$schema": "https://json-schema.org/draft/2020-12/schema",
		"$id": "https://example.com/external",
		"type": "string"
	}`))
	require.NoError(t, err)
	resolver.Put("https://example.com/external", external)

	root, err := Decode([]byte(`{
		"$schema": "https://json-schema.org/draft/2020-12/schema",
		"$ref": "https://example.com/external"
	}`))
	require.NoError(t, err)

	frame, err := Index(root, resolver, NewDefaultWalker(), Draft202012)
	require.NoError(t, err)

	_, ok := frame.Lookup(ReferenceStatic, "https://example.com/external")
	assert.True(t, ok)
}
