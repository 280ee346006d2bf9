package jsonschema

// compileAdditionalItems compiles `additionalItems` (Draft 4-7): meaningful
// only when the sibling `items` is the tuple-validation array form, it
// constrains every index beyond that array's length.
func (ctx *compileCtx) compileAdditionalItems(pointer Pointer, schema Value, val Value) (*Step, error) {
	itemsVal, ok := schema.At("items")
	if !ok || itemsVal.Kind() != KindArray {
		return nil, nil
	}

	childPointer := pointer.AppendKey("additionalItems")
	body, err := ctx.applicate(childPointer, val)
	if err != nil {
		return nil, err
	}

	loop := &Step{
		Kind: StepLoopItems, Start: len(itemsVal.Array()), Children: []*Step{body},
		SchemaLocation: childPointer, Keyword: "additionalItems",
	}
	return container(pointer, "additionalItems", ctx.typeCondition(KindArray), loop), nil
}
