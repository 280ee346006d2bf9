package jsonschema

import "regexp"

// compilePatternProperties compiles `patternProperties`: for each
// (pattern, subschema) pair it emits a LoopProperties gated by
// "InstanceBasename matches pattern". The loop body compiles the subschema
// against each matching property's value and records a private annotation
// carrying that property's basename, the same marker properties leaves for
// additionalProperties to check.
func (ctx *compileCtx) compilePatternProperties(pointer Pointer, val Value) (*Step, error) {
	if val.Kind() != KindObject {
		return nil, nil
	}

	var children []*Step
	for _, pattern := range val.Keys() {
		sub, _ := val.At(pattern)
		childPointer := pointer.AppendKey("patternProperties").AppendKey(pattern)

		re, err := regexp.Compile(pattern)
		if err != nil {
			return nil, wrapInvalidRegex(pattern, err)
		}

		body, err := ctx.applicate(childPointer, sub)
		if err != nil {
			return nil, err
		}

		marker := &Step{
			Kind: StepAnnotationPrivate, Target: TargetInstanceBasename,
			SchemaLocation: childPointer, Keyword: "patternProperties",
		}
		grouped := and(childPointer, "patternProperties", body, marker)

		cond := &Step{
			Kind: StepRegex, Target: TargetInstanceBasename, Regex: re, Str: pattern,
		}

		children = append(children, &Step{
			Kind: StepLoopProperties, Condition: cond, Children: []*Step{grouped},
			SchemaLocation: childPointer, Keyword: "patternProperties",
		})
	}

	if len(children) == 0 {
		return nil, nil
	}

	return container(pointer, "patternProperties", ctx.typeCondition(KindObject), children...), nil
}
