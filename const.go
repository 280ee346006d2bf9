package jsonschema

// compileConst compiles `const` (supplemental: every mainstream dialect
// since Draft 6 has it, equivalent to a singleton enum): Equal against the
// literal value.
func (ctx *compileCtx) compileConst(pointer Pointer, val Value) (*Step, error) {
	return &Step{
		Kind: StepEqual, Target: TargetInstance, Value: val,
		SchemaLocation: pointer, Keyword: "const",
	}, nil
}
