package jsonschema

// compileDependencies compiles Draft 4-7's `dependencies`: a single keyword
// whose entries mix the two forms 2019-09 split into dependentRequired and
// dependentSchemas — an array entry lists required sibling properties, an
// object/bool entry is a subschema.
func (ctx *compileCtx) compileDependencies(pointer Pointer, val Value) (*Step, error) {
	if val.Kind() != KindObject {
		return nil, nil
	}
	childPointer := pointer.AppendKey("dependencies")

	var children []*Step
	for _, key := range val.Keys() {
		entry, _ := val.At(key)
		var body *Step
		if entry.Kind() == KindArray {
			body = ctx.definesAllStep(entry)
		} else {
			var err error
			body, err = ctx.applicate(childPointer.AppendKey(key), entry)
			if err != nil {
				return nil, err
			}
		}
		children = append(children, ctx.dependencyEntry(childPointer, "dependencies", key, body))
	}
	if len(children) == 0 {
		return nil, nil
	}
	return and(pointer, "dependencies", children...), nil
}

// dependencyEntry gates body on Defines(key): the instance must have key
// before the entry's requirement or subschema applies.
func (ctx *compileCtx) dependencyEntry(pointer Pointer, kw, key string, body *Step) *Step {
	cond := &Step{Kind: StepDefines, Key: key, Target: TargetInstance}
	return gate(cond, and(pointer.AppendKey(key), kw, body))
}

// definesAllStep builds the sibling-property-presence assertion for a
// dependency entry's array form: Defines for a single name, otherwise
// InternalDefinesAll rather than required's DefinesAll. Diagnostics renders
// both kinds with the same "required" code; the enclosing step's keyword
// tells a dependency apart from a top-level required.
func (ctx *compileCtx) definesAllStep(val Value) *Step {
	var keys []string
	for _, item := range val.Array() {
		if item.Kind() == KindString {
			keys = append(keys, item.String())
		}
	}
	if len(keys) == 1 {
		return &Step{Kind: StepDefines, Key: keys[0], Target: TargetInstance}
	}
	return &Step{Kind: StepInternalDefinesAll, Keys: keys, Target: TargetInstance}
}
