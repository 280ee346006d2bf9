package jsonschema

// compileMinLength compiles `minLength`: size >= N is expressed as
// SizeGreater(N-1), gated by type==string.
func (ctx *compileCtx) compileMinLength(pointer Pointer, val Value) (*Step, error) {
	n, ok := nonNegativeInt(val)
	if !ok {
		return nil, nil
	}
	step := &Step{
		Kind: StepSizeGreater, Target: TargetInstance, Num: NewRat(n - 1),
		SchemaLocation: pointer, Keyword: "minLength",
	}
	return gate(ctx.typeCondition(KindString), step), nil
}

// nonNegativeInt reads a schema value as a non-negative integer bound
// (minLength/maxLength/minItems/maxItems/minProperties/maxProperties all
// share this shape).
func nonNegativeInt(val Value) (int, bool) {
	if val.Kind() != KindInteger {
		return 0, false
	}
	big := val.Int()
	if big == nil || !big.IsInt64() {
		return 0, false
	}
	n := big.Int64()
	if n < 0 {
		return 0, false
	}
	return int(n), true
}
