package jsonschema

import "fmt"

// typeNameToKinds maps a JSON Schema type name to the Kind(s) it matches.
// "number" matches both Integer and Real values, per JSON Schema's
// "integer matches any number with a zero fractional part."
func typeNameToKinds(name string) ([]Kind, bool) {
	switch name {
	case "null":
		return []Kind{KindNull}, true
	case "boolean":
		return []Kind{KindBool}, true
	case "integer":
		return []Kind{KindInteger}, true
	case "number":
		return []Kind{KindInteger, KindReal}, true
	case "string":
		return []Kind{KindString}, true
	case "array":
		return []Kind{KindArray}, true
	case "object":
		return []Kind{KindObject}, true
	default:
		return nil, false
	}
}

// compileType compiles the `type` keyword: a single type name emits
// TypeStrict, an array of names emits TypeStrictAny over their union.
// Unknown type names are ignored unless Compiler.Strict is set, per the
// design notes' open question.
func (ctx *compileCtx) compileType(pointer Pointer, val Value) (*Step, error) {
	var names []string
	switch val.Kind() {
	case KindString:
		names = []string{val.String()}
	case KindArray:
		for _, item := range val.Array() {
			if item.Kind() == KindString {
				names = append(names, item.String())
			}
		}
	default:
		return nil, nil
	}

	var kinds []Kind
	seen := make(map[Kind]bool)
	for _, name := range names {
		ks, ok := typeNameToKinds(name)
		if !ok {
			if ctx.compiler.Strict {
				return nil, fmt.Errorf("%w: %s", ErrUnknownType, name)
			}
			continue
		}
		for _, k := range ks {
			if !seen[k] {
				seen[k] = true
				kinds = append(kinds, k)
			}
		}
	}

	if len(kinds) == 0 {
		return nil, nil
	}

	step := ctx.typeCondition(kinds...)
	step.SchemaLocation = pointer
	step.Keyword = "type"
	return step, nil
}
