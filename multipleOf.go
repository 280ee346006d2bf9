package jsonschema

import "fmt"

// compileMultipleOf compiles `multipleOf`: Divisible(n), gated by numeric
// type. A non-positive divisor is a CompileError, resolving the design
// note's open question in favor of rejecting it up front rather than at
// every evaluation.
func (ctx *compileCtx) compileMultipleOf(pointer Pointer, val Value) (*Step, error) {
	if !val.IsNumber() {
		return nil, nil
	}
	n := val.Rat()
	if n.Sign() <= 0 {
		return nil, fmt.Errorf("%w: %s", ErrNonPositiveMultipleOf, pointer.String())
	}
	step := &Step{
		Kind: StepDivisible, Target: TargetInstance, Num: &Rat{n},
		SchemaLocation: pointer, Keyword: "multipleOf",
	}
	return gate(ctx.numericTypeCondition(), step), nil
}
