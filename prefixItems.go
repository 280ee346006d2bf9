package jsonschema

// compilePrefixItems compiles 2020-12's `prefixItems`: one subschema per
// index, each gated by "the array has an element at that index".
func (ctx *compileCtx) compilePrefixItems(pointer Pointer, val Value) (*Step, error) {
	if val.Kind() != KindArray || len(val.Array()) == 0 {
		return nil, nil
	}
	childPointer := pointer.AppendKey("prefixItems")

	items := val.Array()
	children := make([]*Step, 0, len(items))
	for i, item := range items {
		body, err := ctx.applicate(childPointer.AppendIndex(i), item)
		if err != nil {
			return nil, err
		}
		cond := &Step{Kind: StepSizeGreater, Target: TargetInstance, Num: NewRat(i)}
		children = append(children, descendIndex(childPointer.AppendIndex(i), "prefixItems", cond, i, body))
	}
	return container(pointer, "prefixItems", ctx.typeCondition(KindArray), children...), nil
}
