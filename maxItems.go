package jsonschema

// compileMaxItems compiles `maxItems`: size <= N as SizeLess(N+1), gated by
// type==array.
func (ctx *compileCtx) compileMaxItems(pointer Pointer, val Value) (*Step, error) {
	n, ok := nonNegativeInt(val)
	if !ok {
		return nil, nil
	}
	step := &Step{
		Kind: StepSizeLess, Target: TargetInstance, Num: NewRat(n + 1),
		SchemaLocation: pointer, Keyword: "maxItems",
	}
	return gate(ctx.typeCondition(KindArray), step), nil
}
