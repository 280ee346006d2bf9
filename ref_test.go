package jsonschema

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRefToLocalDefs(t *testing.T) {
	schema := `{
		"$schema": "https://json-schema.org/draft/2020-12/schema",
		"$defs": {"positiveInt": {"type": "integer", "minimum": 1}},
		"properties": {"count": {"$ref": "#/$defs/positiveInt"}}
	}`
	assert.True(t, isValid(t, schema, `{"count": 5}`))
	assert.False(t, isValid(t, schema, `{"count": 0}`))
	assert.False(t, isValid(t, schema, `{"count": "x"}`))
}

func TestRefToLegacyDefinitions(t *testing.T) {
	schema := `{
		"$schema": "https://json-schema.org/draft/2020-12/schema",
		"definitions": {"positiveInt": {"type": "integer", "minimum": 1}},
		"properties": {"count": {"$ref": "#/definitions/positiveInt"}}
	}`
	assert.True(t, isValid(t, schema, `{"count": 5}`))
	assert.False(t, isValid(t, schema, `{"count": 0}`))
}

func TestRefRecursiveLinkedStructure(t *testing.T) {
	schema := `{
		"$schema": "https://json-schema.org/draft/2020-12/schema",
		"$defs": {
			"node": {
				"type": "object",
				"properties": {
					"value": {"type": "integer"},
					"next": {"anyOf": [{"type": "null"}, {"$ref": "#/$defs/node"}]}
				},
				"required": ["value"]
			}
		},
		"$ref": "#/$defs/node"
	}`
	assert.True(t, isValid(t, schema, `{"value": 1, "next": null}`))
	assert.True(t, isValid(t, schema, `{"value": 1, "next": {"value": 2, "next": null}}`))
	assert.False(t, isValid(t, schema, `{"value": "not an integer"}`))
	assert.False(t, isValid(t, schema, `{"value": 1, "next": {"value": "bad"}}`))
}

func TestRefSiblingsToSameDestination(t *testing.T) {
	// Two distinct $refs to the same destination must each resolve
	// independently; the label for the shared destination must remain
	// reachable after the first occurrence's subtree finishes evaluating.
	schema := `{
		"$schema": "https://json-schema.org/draft/2020-12/schema",
		"$defs": {"positiveInt": {"type": "integer", "minimum": 1}},
		"properties": {
			"a": {"$ref": "#/$defs/positiveInt"},
			"b": {"$ref": "#/$defs/positiveInt"}
		}
	}`
	assert.True(t, isValid(t, schema, `{"a": 1, "b": 2}`))
	assert.False(t, isValid(t, schema, `{"a": 1, "b": -1}`))
	assert.False(t, isValid(t, schema, `{"a": -1, "b": 1}`))
}
