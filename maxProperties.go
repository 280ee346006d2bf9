package jsonschema

// compileMaxProperties compiles `maxProperties`: size <= N as
// SizeLess(N+1), gated by type==object.
func (ctx *compileCtx) compileMaxProperties(pointer Pointer, val Value) (*Step, error) {
	n, ok := nonNegativeInt(val)
	if !ok {
		return nil, nil
	}
	step := &Step{
		Kind: StepSizeLess, Target: TargetInstance, Num: NewRat(n + 1),
		SchemaLocation: pointer, Keyword: "maxProperties",
	}
	return gate(ctx.typeCondition(KindObject), step), nil
}
