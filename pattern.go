package jsonschema

import "regexp"

// compilePattern compiles `pattern`: a Regex assertion gated by
// type==string. An invalid pattern is a CompileError, not a runtime
// failure.
func (ctx *compileCtx) compilePattern(pointer Pointer, val Value) (*Step, error) {
	if val.Kind() != KindString {
		return nil, nil
	}
	re, err := regexp.Compile(val.String())
	if err != nil {
		return nil, wrapInvalidRegex(val.String(), err)
	}
	step := &Step{
		Kind: StepRegex, Target: TargetInstance, Regex: re, Str: val.String(),
		SchemaLocation: pointer, Keyword: "pattern",
	}
	return gate(ctx.typeCondition(KindString), step), nil
}
