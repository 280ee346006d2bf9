package jsonschema

// compileAnyOf compiles `anyOf`: at least one element must hold, so the
// compiled elements are joined with Or.
func (ctx *compileCtx) compileAnyOf(pointer Pointer, val Value) (*Step, error) {
	if val.Kind() != KindArray || len(val.Array()) == 0 {
		return nil, nil
	}
	childPointer := pointer.AppendKey("anyOf")

	children, err := ctx.compileSchemaArray(childPointer, val)
	if err != nil {
		return nil, err
	}
	return or(pointer, "anyOf", children...), nil
}
