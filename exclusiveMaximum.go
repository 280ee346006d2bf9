package jsonschema

// compileExclusiveMaximum compiles Draft 6+'s standalone numeric
// `exclusiveMaximum`: Less(val), gated by numeric type. A boolean value
// (Draft 4's sibling-modifier form) is handled by compileMaximum instead.
func (ctx *compileCtx) compileExclusiveMaximum(pointer Pointer, val Value) (*Step, error) {
	if !val.IsNumber() {
		return nil, nil
	}
	step := &Step{
		Kind: StepLess, Target: TargetInstance, Num: &Rat{val.Rat()},
		SchemaLocation: pointer, Keyword: "exclusiveMaximum",
	}
	return gate(ctx.numericTypeCondition(), step), nil
}
