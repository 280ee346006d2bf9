package jsonschema

// compileOneOf compiles `oneOf`: exactly one element must hold, so the
// compiled elements are joined with Xor.
func (ctx *compileCtx) compileOneOf(pointer Pointer, val Value) (*Step, error) {
	if val.Kind() != KindArray || len(val.Array()) == 0 {
		return nil, nil
	}
	childPointer := pointer.AppendKey("oneOf")

	children, err := ctx.compileSchemaArray(childPointer, val)
	if err != nil {
		return nil, err
	}
	return xor(pointer, "oneOf", children...), nil
}
