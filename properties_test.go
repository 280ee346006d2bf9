package jsonschema

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPropertiesAppliesSubschemaPerKey(t *testing.T) {
	schema := `{
		"properties": {
			"name": {"type": "string"},
			"age": {"type": "integer", "minimum": 0}
		}
	}`
	assert.True(t, isValid(t, schema, `{"name": "x", "age": 5}`))
	assert.False(t, isValid(t, schema, `{"name": 1, "age": 5}`))
	assert.False(t, isValid(t, schema, `{"name": "x", "age": -1}`))
}

func TestPropertiesAbsentKeyIsNoOp(t *testing.T) {
	schema := `{"properties": {"name": {"type": "string"}}}`
	assert.True(t, isValid(t, schema, `{}`))
	assert.True(t, isValid(t, schema, `{"other": 1}`))
}

func TestPatternProperties(t *testing.T) {
	schema := `{"patternProperties": {"^s_": {"type": "string"}}}`
	assert.True(t, isValid(t, schema, `{"s_name": "x", "other": 1}`))
	assert.False(t, isValid(t, schema, `{"s_name": 1}`))
}

func TestAdditionalPropertiesFalseRejectsExtras(t *testing.T) {
	schema := `{
		"properties": {"name": {"type": "string"}},
		"additionalProperties": false
	}`
	assert.True(t, isValid(t, schema, `{"name": "x"}`))
	assert.False(t, isValid(t, schema, `{"name": "x", "extra": 1}`))
}

func TestAdditionalPropertiesDoesNotReclaimPropertiesMatches(t *testing.T) {
	// "name" is claimed by `properties`; additionalProperties:false must not
	// also try (and fail) to validate it as "extra".
	schema := `{
		"properties": {"name": {"type": "string"}},
		"additionalProperties": false
	}`
	assert.True(t, isValid(t, schema, `{"name": "x"}`))
}

func TestAdditionalPropertiesDoesNotReclaimPatternPropertiesMatches(t *testing.T) {
	schema := `{
		"patternProperties": {"^s_": {"type": "string"}},
		"additionalProperties": false
	}`
	assert.True(t, isValid(t, schema, `{"s_name": "x"}`))
	assert.False(t, isValid(t, schema, `{"other": "x"}`))
}

func TestAdditionalPropertiesEvaluatesAfterPropertiesRegardlessOfKeyOrder(t *testing.T) {
	// additionalProperties is written first in the source document; it must
	// still compile to run after properties, since it reads the annotation
	// properties records.
	schema := `{"additionalProperties":{"type":"string"},"properties":{"a":{"type":"integer"}}}`
	assert.True(t, isValid(t, schema, `{"a": 1}`))
	assert.False(t, isValid(t, schema, `{"a": 1, "extra": 5}`))
}

func TestAdditionalPropertiesSchemaForm(t *testing.T) {
	schema := `{
		"properties": {"name": {"type": "string"}},
		"additionalProperties": {"type": "integer"}
	}`
	assert.True(t, isValid(t, schema, `{"name": "x", "extra": 1}`))
	assert.False(t, isValid(t, schema, `{"name": "x", "extra": "not an integer"}`))
}

func TestAdditionalPropertiesOnlyConstrainsObjects(t *testing.T) {
	schema := `{"additionalProperties": false}`
	assert.True(t, isValid(t, schema, `"a string"`))
	assert.True(t, isValid(t, schema, `[1, 2, 3]`))
}

func TestDependentRequired(t *testing.T) {
	schema := `{"dependentRequired": {"credit_card": ["billing_address"]}}`
	assert.True(t, isValid(t, schema, `{"name": "x"}`))
	assert.True(t, isValid(t, schema, `{"credit_card": "1234", "billing_address": "addr"}`))
	assert.False(t, isValid(t, schema, `{"credit_card": "1234"}`))
}

func TestDependentSchemas(t *testing.T) {
	schema := `{"dependentSchemas": {"credit_card": {"required": ["billing_address"]}}}`
	assert.True(t, isValid(t, schema, `{"name": "x"}`))
	assert.False(t, isValid(t, schema, `{"credit_card": "1234"}`))
	assert.True(t, isValid(t, schema, `{"credit_card": "1234", "billing_address": "addr"}`))
}
