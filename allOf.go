package jsonschema

// compileAllOf compiles `allOf`: every element must hold, so the compiled
// elements are joined with And.
func (ctx *compileCtx) compileAllOf(pointer Pointer, val Value) (*Step, error) {
	if val.Kind() != KindArray || len(val.Array()) == 0 {
		return nil, nil
	}
	childPointer := pointer.AppendKey("allOf")

	children, err := ctx.compileSchemaArray(childPointer, val)
	if err != nil {
		return nil, err
	}
	return and(pointer, "allOf", children...), nil
}

// compileSchemaArray compiles each element of a schema array at its own
// indexed child pointer, the shared helper allOf/anyOf/oneOf use.
func (ctx *compileCtx) compileSchemaArray(pointer Pointer, val Value) ([]*Step, error) {
	items := val.Array()
	children := make([]*Step, 0, len(items))
	for i, item := range items {
		step, err := ctx.applicate(pointer.AppendIndex(i), item)
		if err != nil {
			return nil, err
		}
		children = append(children, step)
	}
	return children, nil
}
