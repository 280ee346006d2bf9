package jsonschema

// compileNot compiles `not`: the instance is valid only if the subschema
// fails, so the compiled subschema is wrapped in a logical Not.
func (ctx *compileCtx) compileNot(pointer Pointer, val Value) (*Step, error) {
	childPointer := pointer.AppendKey("not")
	body, err := ctx.applicate(childPointer, val)
	if err != nil {
		return nil, err
	}
	return not(pointer, "not", body), nil
}
