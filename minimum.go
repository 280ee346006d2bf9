package jsonschema

// compileMinimum compiles `minimum`, gated by numeric type, with the same
// Draft 4 boolean-sibling exclusivity handling as compileMaximum.
func (ctx *compileCtx) compileMinimum(pointer Pointer, schema Value, val Value) (*Step, error) {
	if !val.IsNumber() {
		return nil, nil
	}
	kind := StepGreaterEqual
	if excl, ok := schema.At("exclusiveMinimum"); ok && excl.Kind() == KindBool && excl.Bool() {
		kind = StepGreater
	}
	step := &Step{
		Kind: kind, Target: TargetInstance, Num: &Rat{val.Rat()},
		SchemaLocation: pointer, Keyword: "minimum",
	}
	return gate(ctx.numericTypeCondition(), step), nil
}
