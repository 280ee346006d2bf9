package jsonschema

// compileDependentRequired compiles 2019-09+'s `dependentRequired`: every
// entry is an array of sibling property names required when key is present.
func (ctx *compileCtx) compileDependentRequired(pointer Pointer, val Value) (*Step, error) {
	if val.Kind() != KindObject {
		return nil, nil
	}
	childPointer := pointer.AppendKey("dependentRequired")

	var children []*Step
	for _, key := range val.Keys() {
		entry, _ := val.At(key)
		if entry.Kind() != KindArray {
			continue
		}
		children = append(children, ctx.dependencyEntry(childPointer, "dependentRequired", key, ctx.definesAllStep(entry)))
	}
	if len(children) == 0 {
		return nil, nil
	}
	return and(pointer, "dependentRequired", children...), nil
}
