package jsonschema

// compileDependentSchemas compiles 2019-09+'s `dependentSchemas`: every
// entry is a subschema applied to the whole instance when key is present.
func (ctx *compileCtx) compileDependentSchemas(pointer Pointer, val Value) (*Step, error) {
	if val.Kind() != KindObject {
		return nil, nil
	}
	childPointer := pointer.AppendKey("dependentSchemas")

	var children []*Step
	for _, key := range val.Keys() {
		entry, _ := val.At(key)
		body, err := ctx.applicate(childPointer.AppendKey(key), entry)
		if err != nil {
			return nil, err
		}
		children = append(children, ctx.dependencyEntry(childPointer, "dependentSchemas", key, body))
	}
	if len(children) == 0 {
		return nil, nil
	}
	return and(pointer, "dependentSchemas", children...), nil
}
