package jsonschema

// compileItems compiles `items`. Two forms coexist across dialects: an
// array of subschemas (Draft 4-7 tuple validation, one subschema per index)
// and a single subschema (Draft 4-7 "all items" form, and the only form
// 2020-12 allows once prefixItems took over tuple validation). For the
// single-schema form, a sibling prefixItems sets the start index the
// uniform subschema begins applying from.
func (ctx *compileCtx) compileItems(pointer Pointer, schema Value, val Value) (*Step, error) {
	childPointer := pointer.AppendKey("items")

	if val.Kind() == KindArray {
		items := val.Array()
		if len(items) == 0 {
			return nil, nil
		}
		children := make([]*Step, 0, len(items))
		for i, item := range items {
			body, err := ctx.applicate(childPointer.AppendIndex(i), item)
			if err != nil {
				return nil, err
			}
			cond := &Step{Kind: StepSizeGreater, Target: TargetInstance, Num: NewRat(i)}
			children = append(children, descendIndex(childPointer.AppendIndex(i), "items", cond, i, body))
		}
		return container(pointer, "items", ctx.typeCondition(KindArray), children...), nil
	}

	body, err := ctx.applicate(childPointer, val)
	if err != nil {
		return nil, err
	}

	start := 0
	if prefix, ok := schema.At("prefixItems"); ok && prefix.Kind() == KindArray {
		start = len(prefix.Array())
	}

	loop := &Step{
		Kind: StepLoopItems, Start: start, Children: []*Step{body},
		SchemaLocation: childPointer, Keyword: "items",
	}
	return container(pointer, "items", ctx.typeCondition(KindArray), loop), nil
}
