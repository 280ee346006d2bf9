package jsonschema

import "fmt"

// Base dialect and dialect URIs this engine recognizes, per the GLOSSARY:
// a dialect is the metaschema URI a schema declares via `$schema`; the base
// dialect is the root reached after following the metaschema chain.
const (
	DraftHyperSchema00 = "http://json-schema.org/draft-00/hyper-schema#"
	DraftHyperSchema01 = "http://json-schema.org/draft-01/hyper-schema#"
	DraftHyperSchema02 = "http://json-schema.org/draft-02/hyper-schema#"
	DraftHyperSchema03 = "http://json-schema.org/draft-03/hyper-schema#"
	DraftSchema03      = "http://json-schema.org/draft-03/schema#"
	DraftHyperSchema04  = "http://json-schema.org/draft-04/hyper-schema#"
	Draft4             = "http://json-schema.org/draft-04/schema#"
	Draft6             = "http://json-schema.org/draft-06/schema#"
	Draft7             = "http://json-schema.org/draft-07/schema#"
	Draft201909        = "https://json-schema.org/draft/2019-09/schema"
	Draft202012        = "https://json-schema.org/draft/2020-12/schema"
)

// preVocabularyBaseDialects lists every base dialect recognized by exact URI
// match rather than by self-referential $id, per the frame indexer's "Pre-
// vocabulary dialects (Draft 0-7) are recognized by exact URI match."
var preVocabularyBaseDialects = map[string]bool{
	DraftHyperSchema00: true,
	DraftHyperSchema01: true,
	DraftHyperSchema02: true,
	DraftHyperSchema03: true,
	DraftSchema03:      true,
	DraftHyperSchema04:  true,
	Draft4:             true,
	Draft6:             true,
	Draft7:             true,
}

// usesLegacyID reports whether a base dialect identifies the instance
// property via `id` (Draft 4 and earlier) rather than `$id`.
func usesLegacyID(baseDialect string) bool {
	switch baseDialect {
	case DraftHyperSchema00, DraftHyperSchema01, DraftHyperSchema02,
		DraftHyperSchema03, DraftSchema03, DraftHyperSchema04, Draft4:
		return true
	default:
		return false
	}
}

// SchemaDialect reads a schema's declared `$schema`, falling back to
// defaultDialect when absent (or when the schema is a boolean).
func SchemaDialect(schema Value, defaultDialect string) (string, bool) {
	if schema.Kind() != KindObject {
		if defaultDialect == "" {
			return "", false
		}
		return defaultDialect, true
	}
	v, ok := schema.At("$schema")
	if !ok {
		if defaultDialect == "" {
			return "", false
		}
		return defaultDialect, true
	}
	return v.String(), true
}

// BaseDialect walks the metaschema chain of a schema until it reaches a
// recognized base dialect, per the frame indexer's dialect-resolution
// algorithm: pre-vocabulary dialects are recognized immediately by exact URI
// match; the official 2019-09 and 2020-12 URIs are recognized the same way,
// and any other dialect is recognized when its metaschema is
// self-referential ($id equals the dialect URI).
func BaseDialect(schema Value, resolver SchemaResolver, defaultDialect string) (string, error) {
	dialect, ok := SchemaDialect(schema, defaultDialect)
	if !ok {
		return "", fmt.Errorf("%w", ErrMissingDialect)
	}

	switch dialect {
	case Draft202012, Draft201909, Draft7, Draft6:
		return dialect, nil
	}

	if preVocabularyBaseDialects[dialect] {
		return dialect, nil
	}

	if schema.Kind() == KindObject {
		if id, ok := schema.At("$id"); ok && id.Kind() == KindString && id.String() == dialect {
			return dialect, nil
		}
	}

	meta, ok := resolver.Resolve(dialect)
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrSchemaResolution, dialect)
	}
	return BaseDialect(meta, resolver, dialect)
}

// coreVocabulary returns the core vocabulary URI implied by a base dialect,
// the anchor every dialect's $vocabulary declaration must mark required.
func coreVocabulary(baseDialect string) (string, error) {
	switch baseDialect {
	case Draft202012:
		return "https://json-schema.org/draft/2020-12/vocab/core", nil
	case Draft201909:
		return "https://json-schema.org/draft/2019-09/vocab/core", nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnresolvedDialect, baseDialect)
	}
}

// Vocabularies resolves the set of active vocabularies for a (base dialect,
// dialect) pair. Pre-vocabulary base dialects report themselves as their
// own sole "vocabulary"; 2019-09 and 2020-12 consult $vocabulary on the
// dialect's own metaschema, defaulting to {core: true} when absent.
func Vocabularies(resolver SchemaResolver, baseDialect, dialect string) (map[string]bool, error) {
	if baseDialect == dialect {
		switch dialect {
		case Draft202012:
			return map[string]bool{
				"https://json-schema.org/draft/2020-12/vocab/core":             true,
				"https://json-schema.org/draft/2020-12/vocab/applicator":       true,
				"https://json-schema.org/draft/2020-12/vocab/unevaluated":      true,
				"https://json-schema.org/draft/2020-12/vocab/validation":       true,
				"https://json-schema.org/draft/2020-12/vocab/meta-data":        true,
				"https://json-schema.org/draft/2020-12/vocab/format-annotation": true,
				"https://json-schema.org/draft/2020-12/vocab/content":          true,
			}, nil
		case Draft201909:
			return map[string]bool{
				"https://json-schema.org/draft/2019-09/vocab/core":       true,
				"https://json-schema.org/draft/2019-09/vocab/applicator": true,
				"https://json-schema.org/draft/2019-09/vocab/validation": true,
				"https://json-schema.org/draft/2019-09/vocab/meta-data":  true,
				"https://json-schema.org/draft/2019-09/vocab/format":     false,
				"https://json-schema.org/draft/2019-09/vocab/content":    true,
			}, nil
		}
	}

	if preVocabularyBaseDialects[baseDialect] {
		return map[string]bool{baseDialect: true}, nil
	}

	dialectSchema, ok := resolver.Resolve(dialect)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrSchemaResolution, dialect)
	}

	core, err := coreVocabulary(baseDialect)
	if err != nil {
		return nil, err
	}

	result := make(map[string]bool)
	if vocab, ok := dialectSchema.At("$vocabulary"); ok && vocab.Kind() == KindObject {
		for _, k := range vocab.Keys() {
			v, _ := vocab.At(k)
			result[k] = v.Kind() == KindBool && v.Bool()
		}
	} else {
		result[core] = true
	}

	required, declared := result[core]
	if !declared {
		return nil, fmt.Errorf("%w: core vocabulary must always be present", ErrInvalidVocabulary)
	}
	if !required {
		return nil, fmt.Errorf("%w: core vocabulary must always be required", ErrInvalidVocabulary)
	}

	return result, nil
}

// SchemaID reads a schema's identifier keyword: `id` for Draft 4 and
// earlier base dialects, `$id` otherwise. Returns defaultID when the
// keyword is absent.
func SchemaID(schema Value, baseDialect string, defaultID string) (string, error) {
	key := "$id"
	if usesLegacyID(baseDialect) {
		key = "id"
	}
	if schema.Kind() != KindObject {
		return defaultID, nil
	}
	v, ok := schema.At(key)
	if !ok {
		return defaultID, nil
	}
	if v.Kind() != KindString || v.String() == "" {
		return "", fmt.Errorf("%w: %s", ErrInvalidID, key)
	}
	return v.String(), nil
}
