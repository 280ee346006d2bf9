package jsonschema

// compileEnum compiles `enum`: a singleton emits Equal, otherwise
// EqualsAny over the full set. enum has no type restriction — it applies
// to instances of any kind.
func (ctx *compileCtx) compileEnum(pointer Pointer, val Value) (*Step, error) {
	if val.Kind() != KindArray || len(val.Array()) == 0 {
		return nil, nil
	}
	items := val.Array()

	step := &Step{Target: TargetInstance, SchemaLocation: pointer, Keyword: "enum"}
	if len(items) == 1 {
		step.Kind = StepEqual
		step.Value = items[0]
	} else {
		step.Kind = StepEqualsAny
		step.Values = items
	}
	return step, nil
}
