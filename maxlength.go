package jsonschema

// compileMaxLength compiles `maxLength`: size <= N is expressed as
// SizeLess(N+1), gated by type==string.
func (ctx *compileCtx) compileMaxLength(pointer Pointer, val Value) (*Step, error) {
	n, ok := nonNegativeInt(val)
	if !ok {
		return nil, nil
	}
	step := &Step{
		Kind: StepSizeLess, Target: TargetInstance, Num: NewRat(n + 1),
		SchemaLocation: pointer, Keyword: "maxLength",
	}
	return gate(ctx.typeCondition(KindString), step), nil
}
