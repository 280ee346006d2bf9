package jsonschema

// compileExclusiveMinimum compiles Draft 6+'s standalone numeric
// `exclusiveMinimum`: Greater(val), gated by numeric type.
func (ctx *compileCtx) compileExclusiveMinimum(pointer Pointer, val Value) (*Step, error) {
	if !val.IsNumber() {
		return nil, nil
	}
	step := &Step{
		Kind: StepGreater, Target: TargetInstance, Num: &Rat{val.Rat()},
		SchemaLocation: pointer, Keyword: "exclusiveMinimum",
	}
	return gate(ctx.numericTypeCondition(), step), nil
}
