package jsonschema

// compileProperties compiles `properties`: for each (key, subschema) pair it
// emits a container gated by Defines(key) that descends into the property's
// subvalue, compiles the subschema there, and finally records a private
// AnnotationPrivate(key) — the marker additionalProperties's
// InternalNoAnnotation condition reads to see which keys properties
// already claimed.
func (ctx *compileCtx) compileProperties(pointer Pointer, val Value) (*Step, error) {
	if val.Kind() != KindObject {
		return nil, nil
	}

	var children []*Step
	for _, key := range val.Keys() {
		sub, _ := val.At(key)
		childPointer := pointer.AppendKey("properties").AppendKey(key)

		body, err := ctx.applicate(childPointer, sub)
		if err != nil {
			return nil, err
		}

		marker := &Step{
			Kind: StepAnnotationPrivate, Key: key, Value: NewString(key),
			SchemaLocation: childPointer, Keyword: "properties",
		}
		grouped := and(childPointer, "properties", body, marker)

		cond := &Step{Kind: StepDefines, Key: key, Target: TargetInstance}
		children = append(children, descendProperty(childPointer, "properties", cond, key, grouped))
	}

	if len(children) == 0 {
		return nil, nil
	}

	return container(pointer, "properties", ctx.typeCondition(KindObject), children...), nil
}
