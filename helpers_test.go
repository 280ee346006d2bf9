package jsonschema

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

// newTestCompiler builds a Compiler over a CachingResolver/MapResolver pair,
// matching how a real caller wires the default stack together.
func newTestCompiler() *Compiler {
	return NewCompiler(NewCachingResolver(NewMapResolver()))
}

// mustCompile compiles schemaJSON under the 2020-12 default dialect and
// fails the test on any compile error.
func mustCompile(t *testing.T, schemaJSON string) Template {
	t.Helper()
	tpl, err := newTestCompiler().Compile([]byte(schemaJSON), Draft202012)
	require.NoError(t, err)
	return tpl
}

// evaluateJSON compiles schemaJSON and evaluates instanceJSON against it in
// the given mode, returning the overall verdict and every diagnostic event
// recorded along the way.
func evaluateJSON(t *testing.T, schemaJSON, instanceJSON string, mode Mode) (bool, []diagEvent) {
	t.Helper()
	tpl := mustCompile(t, schemaJSON)
	instance, err := Decode([]byte(instanceJSON))
	require.NoError(t, err)

	var events []diagEvent
	eval := NewEvaluator()
	result, err := eval.Evaluate(context.Background(), tpl, instance, mode, func(result bool, step *Step, evaluatePath, instanceLocation Pointer, value, annotation Value) {
		events = append(events, diagEvent{result: result, step: step, evaluatePath: evaluatePath, instanceLocation: instanceLocation, value: value, annotation: annotation})
	})
	require.NoError(t, err)
	return result, events
}

type diagEvent struct {
	result           bool
	step             *Step
	evaluatePath     Pointer
	instanceLocation Pointer
	value            Value
	annotation       Value
}

// isValid is a convenience wrapper for the common "just tell me pass/fail"
// assertion, evaluating in exhaustive mode so every keyword test gets full
// diagnostics if it needs to dig into them later.
func isValid(t *testing.T, schemaJSON, instanceJSON string) bool {
	t.Helper()
	ok, _ := evaluateJSON(t, schemaJSON, instanceJSON, ModeExhaustive)
	return ok
}
