package jsonschema

// compileUniqueItems compiles `uniqueItems`: true emits Unique gated by
// type==array; false is a no-op, since non-uniqueness is always allowed.
func (ctx *compileCtx) compileUniqueItems(pointer Pointer, val Value) (*Step, error) {
	if val.Kind() != KindBool || !val.Bool() {
		return nil, nil
	}
	step := &Step{
		Kind: StepUnique, Target: TargetInstance,
		SchemaLocation: pointer, Keyword: "uniqueItems",
	}
	return gate(ctx.typeCondition(KindArray), step), nil
}
