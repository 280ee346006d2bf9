package jsonschema

// builtinMetaschemas seeds MapResolver with the handful of metaschema
// documents the frame indexer and dialect resolution need to recognize a
// dialect without requiring network access: each dialect's own `$id` (for
// the vocabulary-aware drafts' self-reference check) and `$vocabulary`
// declaration. These are compact reconstructions carrying the identifying
// shape (self-referential $id, vocabulary table, top-level type) rather
// than verbatim copies of the full published metaschema documents.
var builtinMetaschemas = map[string]Value{
	Draft202012: mustDecodeMetaschema(`{
		"$id": "https://json-schema.org/draft/2020-12/schema",
		"$vocabulary": {
			"https://json-schema.org/draft/2020-12/vocab/core": true,
			"https://json-schema.org/draft/2020-12/vocab/applicator": true,
			"https://json-schema.org/draft/2020-12/vocab/unevaluated": true,
			"https://json-schema.org/draft/2020-12/vocab/validation": true,
			"https://json-schema.org/draft/2020-12/vocab/meta-data": true,
			"https://json-schema.org/draft/2020-12/vocab/format-annotation": true,
			"https://json-schema.org/draft/2020-12/vocab/content": true
		},
		"type": ["object", "boolean"]
	}`),
	Draft201909: mustDecodeMetaschema(`{
		"$id": "https://json-schema.org/draft/2019-09/schema",
		"$vocabulary": {
			"https://json-schema.org/draft/2019-09/vocab/core": true,
			"https://json-schema.org/draft/2019-09/vocab/applicator": true,
			"https://json-schema.org/draft/2019-09/vocab/validation": true,
			"https://json-schema.org/draft/2019-09/vocab/meta-data": true,
			"https://json-schema.org/draft/2019-09/vocab/format": false,
			"https://json-schema.org/draft/2019-09/vocab/content": true
		},
		"type": ["object", "boolean"]
	}`),
	Draft7: mustDecodeMetaschema(`{
		"$id": "http://json-schema.org/draft-07/schema#",
		"type": ["object", "boolean"]
	}`),
	Draft6: mustDecodeMetaschema(`{
		"$id": "http://json-schema.org/draft-06/schema#",
		"type": ["object", "boolean"]
	}`),
	Draft4: mustDecodeMetaschema(`{
		"id": "http://json-schema.org/draft-04/schema#",
		"type": "object"
	}`),
}

func mustDecodeMetaschema(doc string) Value {
	v, err := Decode([]byte(doc))
	if err != nil {
		panic(err)
	}
	return v
}
