package jsonschema

// compileMinProperties compiles `minProperties`: size >= N as
// SizeGreater(N-1), gated by type==object.
func (ctx *compileCtx) compileMinProperties(pointer Pointer, val Value) (*Step, error) {
	n, ok := nonNegativeInt(val)
	if !ok {
		return nil, nil
	}
	step := &Step{
		Kind: StepSizeGreater, Target: TargetInstance, Num: NewRat(n - 1),
		SchemaLocation: pointer, Keyword: "minProperties",
	}
	return gate(ctx.typeCondition(KindObject), step), nil
}
