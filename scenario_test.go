package jsonschema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestScenarioUserProfile exercises a realistic multi-keyword schema end to
// end: properties, required, nested objects, array items, and pattern
// properties all interacting over one instance.
func TestScenarioUserProfile(t *testing.T) {
	schema := `{
		"$schema": "https://json-schema.org/draft/2020-12/schema",
		"type": "object",
		"properties": {
			"username": {"type": "string", "minLength": 3, "maxLength": 20},
			"age": {"type": "integer", "minimum": 0, "maximum": 150},
			"tags": {"type": "array", "items": {"type": "string"}, "uniqueItems": true},
			"address": {
				"type": "object",
				"properties": {
					"city": {"type": "string"},
					"zip": {"type": "string", "pattern": "^[0-9]{5}$"}
				},
				"required": ["city"]
			}
		},
		"patternProperties": {
			"^x-": {"type": "string"}
		},
		"additionalProperties": false,
		"required": ["username"]
	}`

	valid := `{
		"username": "alice",
		"age": 30,
		"tags": ["admin", "staff"],
		"address": {"city": "Springfield", "zip": "12345"},
		"x-custom": "extra"
	}`
	assert.True(t, isValid(t, schema, valid))

	assert.False(t, isValid(t, schema, `{"age": 30}`), "missing required username")
	assert.False(t, isValid(t, schema, `{"username": "al", "age": 30}`), "username too short")
	assert.False(t, isValid(t, schema, `{"username": "alice", "unknown": 1}`), "additionalProperties:false rejects stray keys")
	assert.False(t, isValid(t, schema, `{"username": "alice", "tags": ["a", "a"]}`), "uniqueItems violated")
	assert.False(t, isValid(t, schema, `{"username": "alice", "address": {"zip": "12345"}}`), "nested required city missing")
	assert.True(t, isValid(t, schema, `{"username": "alice", "x-feature": "on"}`))
}

// TestScenarioMetaschemaRoundTrip compiles a metaschema-shaped schema and
// evaluates an ordinary schema document as its instance, exercising the
// compiler/evaluator pipeline against a schema-shaped, rather than
// data-shaped, document.
func TestScenarioMetaschemaRoundTrip(t *testing.T) {
	metaschemaLike := `{
		"$schema": "https://json-schema.org/draft/2020-12/schema",
		"type": ["object", "boolean"],
		"properties": {
			"type": {"anyOf": [{"type": "string"}, {"type": "array"}]},
			"$vocabulary": {"type": "object"}
		}
	}`
	candidate := `{
		"$id": "https://example.com/candidate",
		"$vocabulary": {"https://json-schema.org/draft/2020-12/vocab/core": true},
		"type": "object"
	}`
	assert.True(t, isValid(t, metaschemaLike, candidate))
	assert.True(t, isValid(t, metaschemaLike, `true`))
	assert.False(t, isValid(t, metaschemaLike, `"not a schema"`))
}

// TestScenarioYAMLAuthoredSchema exercises the YAML media-type path through
// MapResolver end to end, then compiles the referencing schema and
// evaluates against it.
func TestScenarioYAMLAuthoredSchema(t *testing.T) {
	resolver := NewCachingResolver(NewMapResolver())
	mapResolver := resolver // CachingResolver wraps MapResolver but PutYAML lives on the inner

	inner, ok := mapResolver.inner.(*MapResolver)
	require.True(t, ok)
	err := inner.PutYAML("https://example.com/yaml-defined", []byte(
		"type: object\nrequired: [name]\nproperties:\n  name:\n    type: string\n",
	))
	require.NoError(t, err)

	compiler := NewCompiler(resolver)
	schemaJSON := `{
		"$schema": "https://json-schema.org/draft/2020-12/schema",
		"properties": {"person": {"$ref": "https://example.com/yaml-defined"}}
	}`
	tpl, err := compiler.Compile([]byte(schemaJSON), Draft202012)
	require.NoError(t, err)

	instance, err := Decode([]byte(`{"person": {"name": "alice"}}`))
	require.NoError(t, err)
	eval := NewEvaluator()
	ok, err = eval.Evaluate(nil, tpl, instance, ModeFast, nil)
	require.NoError(t, err)
	assert.True(t, ok)

	badInstance, _ := Decode([]byte(`{"person": {}}`))
	ok, err = eval.Evaluate(nil, tpl, badInstance, ModeFast, nil)
	require.NoError(t, err)
	assert.False(t, ok)
}

// TestScenarioCrossDocumentReference compiles a schema that $refs into a
// separately-registered external schema document end to end.
func TestScenarioCrossDocumentReference(t *testing.T) {
	resolver := NewMapResolver()
	err := resolver.PutJSON("https://example.com/shared/address", []byte(`{
		"$schema": "https://json-schema.org/draft/2020-12/schema",
		"$id": "https://example.com/shared/address",
		"type": "object",
		"required": ["street"],
		"properties": {"street": {"type": "string"}}
	}`))
	require.NoError(t, err)

	compiler := NewCompiler(NewCachingResolver(resolver))
	schemaJSON := `{
		"$schema": "https://json-schema.org/draft/2020-12/schema",
		"properties": {"address": {"$ref": "https://example.com/shared/address"}}
	}`
	tpl, err := compiler.Compile([]byte(schemaJSON), Draft202012)
	require.NoError(t, err)

	eval := NewEvaluator()
	good, _ := Decode([]byte(`{"address": {"street": "Main St"}}`))
	ok, err := eval.Evaluate(nil, tpl, good, ModeFast, nil)
	require.NoError(t, err)
	assert.True(t, ok)

	bad, _ := Decode([]byte(`{"address": {}}`))
	ok, err = eval.Evaluate(nil, tpl, bad, ModeFast, nil)
	require.NoError(t, err)
	assert.False(t, ok)
}
