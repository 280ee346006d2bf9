package jsonschema

// compileRequired compiles `required`: an empty array is the empty
// Template (no-op), a singleton emits Defines(key), otherwise
// DefinesAll(set) — both gated by type==object, since required only
// constrains object instances.
func (ctx *compileCtx) compileRequired(pointer Pointer, val Value) (*Step, error) {
	if val.Kind() != KindArray || len(val.Array()) == 0 {
		return nil, nil
	}

	var keys []string
	for _, item := range val.Array() {
		if item.Kind() == KindString {
			keys = append(keys, item.String())
		}
	}
	if len(keys) == 0 {
		return nil, nil
	}

	cond := ctx.typeCondition(KindObject)

	var body *Step
	if len(keys) == 1 {
		body = &Step{Kind: StepDefines, Key: keys[0], Target: TargetInstance}
	} else {
		body = &Step{Kind: StepDefinesAll, Keys: keys, Target: TargetInstance}
	}
	body.SchemaLocation = pointer
	body.Keyword = "required"
	return gate(cond, body), nil
}
