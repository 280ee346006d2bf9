package jsonschema

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestItemsSingleSchemaForm(t *testing.T) {
	schema := `{"items": {"type": "integer"}}`
	assert.True(t, isValid(t, schema, `[1, 2, 3]`))
	assert.False(t, isValid(t, schema, `[1, "two", 3]`))
	assert.True(t, isValid(t, schema, `[]`))
}

func TestItemsTupleArrayForm(t *testing.T) {
	schemaJSON := `{
		"$schema": "http://json-schema.org/draft-07/schema#",
		"items": [{"type": "string"}, {"type": "integer"}]
	}`
	assert.True(t, isValid(t, schemaJSON, `["a", 1]`))
	assert.False(t, isValid(t, schemaJSON, `[1, 1]`))
	assert.True(t, isValid(t, schemaJSON, `["a"]`), "tuple entries beyond the array length are vacuously satisfied")
}

func TestAdditionalItemsWithTupleForm(t *testing.T) {
	schemaJSON := `{
		"$schema": "http://json-schema.org/draft-07/schema#",
		"items": [{"type": "string"}],
		"additionalItems": {"type": "integer"}
	}`
	assert.True(t, isValid(t, schemaJSON, `["a", 1, 2]`))
	assert.False(t, isValid(t, schemaJSON, `["a", "not an integer"]`))
}

func TestPrefixItems(t *testing.T) {
	schema := `{
		"prefixItems": [{"type": "string"}, {"type": "integer"}],
		"items": false
	}`
	assert.True(t, isValid(t, schema, `["a", 1]`))
	assert.False(t, isValid(t, schema, `["a", 1, "extra"]`))
	assert.True(t, isValid(t, schema, `["a"]`))
}

func TestItemsUniformAppliesAfterPrefixItems(t *testing.T) {
	schema := `{
		"prefixItems": [{"type": "string"}],
		"items": {"type": "integer"}
	}`
	assert.True(t, isValid(t, schema, `["a", 1, 2, 3]`))
	assert.False(t, isValid(t, schema, `["a", 1, "not an integer"]`))
}
