package jsonschema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSchemaDialectDefaultsWhenAbsent(t *testing.T) {
	schema, _ := Decode([]byte(`{"type": "string"}`))
	dialect, ok := SchemaDialect(schema, Draft7)
	require.True(t, ok)
	assert.Equal(t, Draft7, dialect)
}

func TestSchemaDialectReadsSchemaKeyword(t *testing.T) {
	schema, _ := Decode([]byte(`{"$schema": "http://json-schema.org/draft-06/schema#"}`))
	dialect, ok := SchemaDialect(schema, Draft202012)
	require.True(t, ok)
	assert.Equal(t, Draft6, dialect)
}

func TestBaseDialectPreVocabulary(t *testing.T) {
	resolver := NewMapResolver()
	base, err := BaseDialect(mustDecodeMetaschema(`{"$schema": "http://json-schema.org/draft-07/schema#"}`), resolver, "")
	require.NoError(t, err)
	assert.Equal(t, Draft7, base)
}

func TestBaseDialectVocabularyAware(t *testing.T) {
	resolver := NewMapResolver()
	schema, _ := Decode([]byte(`{"$schema": "https://json-schema.org/draft/2020-12/schema"}`))
	base, err := BaseDialect(schema, resolver, "")
	require.NoError(t, err)
	assert.Equal(t, Draft202012, base)
}

func TestVocabulariesOfficialDraft202012(t *testing.T) {
	resolver := NewMapResolver()
	vocab, err := Vocabularies(resolver, Draft202012, Draft202012)
	require.NoError(t, err)
	assert.True(t, vocab["https://json-schema.org/draft/2020-12/vocab/core"])
	assert.True(t, vocab["https://json-schema.org/draft/2020-12/vocab/applicator"])
}

func TestVocabulariesPreVocabularyDialect(t *testing.T) {
	resolver := NewMapResolver()
	vocab, err := Vocabularies(resolver, Draft7, Draft7)
	require.NoError(t, err)
	assert.True(t, vocab[Draft7])
	assert.Len(t, vocab, 1)
}

func TestSchemaIDLegacyVsModern(t *testing.T) {
	legacy, _ := Decode([]byte(`{"id": "http://example.com/legacy"}`))
	id, err := SchemaID(legacy, Draft4, "")
	require.NoError(t, err)
	assert.Equal(t, "http://example.com/legacy", id)

	modern, _ := Decode([]byte(`{"$id": "http://example.com/modern"}`))
	id, err = SchemaID(modern, Draft202012, "")
	require.NoError(t, err)
	assert.Equal(t, "http://example.com/modern", id)
}

func TestSchemaIDEmptyIsInvalid(t *testing.T) {
	schema, _ := Decode([]byte(`{"$id": ""}`))
	_, err := SchemaID(schema, Draft202012, "")
	assert.ErrorIs(t, err, ErrInvalidID)
}
