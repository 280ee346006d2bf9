package jsonschema

// compileAdditionalProperties compiles `additionalProperties`: a
// LoopProperties whose body is the compiled subschema, gated by two
// InternalNoAnnotation conditions — the current property must not have been
// privately annotated by properties and not by patternProperties — and by
// type==object, since additionalProperties only constrains object instances.
func (ctx *compileCtx) compileAdditionalProperties(pointer Pointer, schema Value, val Value) (*Step, error) {
	childPointer := pointer.AppendKey("additionalProperties")

	body, err := ctx.applicate(childPointer, val)
	if err != nil {
		return nil, err
	}

	notProperties := &Step{Kind: StepInternalNoAnnotation, Keyword: "properties", Target: TargetParentAdjacentAnnotations}
	notPatternProperties := &Step{Kind: StepInternalNoAnnotation, Keyword: "patternProperties", Target: TargetParentAdjacentAnnotations}
	cond := &Step{Kind: StepAnd, Children: []*Step{notProperties, notPatternProperties}}

	loop := &Step{
		Kind: StepLoopProperties, Condition: cond, Children: []*Step{body},
		SchemaLocation: childPointer, Keyword: "additionalProperties",
	}

	// The object-type check gates the loop once; cond above gates each
	// property the loop visits. gate() would overwrite loop.Condition, so
	// the type check is a separate wrapping container instead.
	return container(childPointer, "additionalProperties", ctx.typeCondition(KindObject), loop), nil
}
