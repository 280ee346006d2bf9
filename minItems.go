package jsonschema

// compileMinItems compiles `minItems`: size >= N as SizeGreater(N-1), gated
// by type==array.
func (ctx *compileCtx) compileMinItems(pointer Pointer, val Value) (*Step, error) {
	n, ok := nonNegativeInt(val)
	if !ok {
		return nil, nil
	}
	step := &Step{
		Kind: StepSizeGreater, Target: TargetInstance, Num: NewRat(n - 1),
		SchemaLocation: pointer, Keyword: "minItems",
	}
	return gate(ctx.typeCondition(KindArray), step), nil
}
