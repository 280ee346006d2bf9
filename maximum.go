package jsonschema

// compileMaximum compiles `maximum`, gated by numeric type. A sibling
// boolean `exclusiveMaximum` (Draft 4) turns the bound strict; Draft 6+'s
// standalone numeric `exclusiveMaximum` is handled separately by
// compileExclusiveMaximum and leaves this bound inclusive.
func (ctx *compileCtx) compileMaximum(pointer Pointer, schema Value, val Value) (*Step, error) {
	if !val.IsNumber() {
		return nil, nil
	}
	kind := StepLessEqual
	if excl, ok := schema.At("exclusiveMaximum"); ok && excl.Kind() == KindBool && excl.Bool() {
		kind = StepLess
	}
	step := &Step{
		Kind: kind, Target: TargetInstance, Num: &Rat{val.Rat()},
		SchemaLocation: pointer, Keyword: "maximum",
	}
	return gate(ctx.numericTypeCondition(), step), nil
}
