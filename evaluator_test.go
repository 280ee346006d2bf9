package jsonschema

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFastModeShortCircuitsAndStopsAtFirstFailure(t *testing.T) {
	schema := `{"allOf": [{"type": "string"}, {"type": "integer"}]}`
	fastOK, fastEvents := evaluateJSON(t, schema, `1`, ModeFast)
	exhaustiveOK, exhaustiveEvents := evaluateJSON(t, schema, `1`, ModeExhaustive)

	assert.False(t, fastOK)
	assert.False(t, exhaustiveOK)
	assert.Less(t, len(fastEvents), len(exhaustiveEvents), "fast mode must skip the second allOf branch once the first fails")
}

func TestExhaustiveModeVisitsEveryBranch(t *testing.T) {
	schema := `{"anyOf": [{"type": "string"}, {"type": "boolean"}, {"type": "null"}]}`
	_, events := evaluateJSON(t, schema, `1`, ModeExhaustive)

	falseCount := 0
	for _, e := range events {
		if !e.result {
			falseCount++
		}
	}
	// All three anyOf branches fail for an integer instance, plus the anyOf
	// container itself reports false: four false events minimum.
	assert.GreaterOrEqual(t, falseCount, 4)
}

func TestOrRecoversAfterFailingBranchEvenInFastMode(t *testing.T) {
	schema := `{"anyOf": [{"type": "string"}, {"type": "integer"}]}`
	ok, _ := evaluateJSON(t, schema, `1`, ModeFast)
	assert.True(t, ok, "a later anyOf branch must still be tried after an earlier one fails, even under Fast short-circuiting")
}

func TestEvaluationCancellation(t *testing.T) {
	schema := `{"type": "string"}`
	tpl := mustCompile(t, schema)
	instance, err := Decode([]byte(`"x"`))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	eval := NewEvaluator()
	_, err = eval.Evaluate(ctx, tpl, instance, ModeExhaustive, nil)
	assert.ErrorIs(t, err, ErrEvaluationCancelled)
}

func TestEvaluateNilCallbackIsOptional(t *testing.T) {
	tpl := mustCompile(t, `{"type": "integer"}`)
	instance, err := Decode([]byte(`5`))
	require.NoError(t, err)

	eval := NewEvaluator()
	ok, err := eval.Evaluate(context.Background(), tpl, instance, ModeFast, nil)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestEvaluatorIsSafeForConcurrentReuse(t *testing.T) {
	tpl := mustCompile(t, `{"type": "object", "properties": {"n": {"minimum": 0}}}`)
	eval := NewEvaluator()

	done := make(chan bool, 8)
	for i := 0; i < 8; i++ {
		go func(n int) {
			instance, _ := Decode([]byte(`{"n": 1}`))
			ok, err := eval.Evaluate(context.Background(), tpl, instance, ModeFast, nil)
			done <- (err == nil && ok)
		}(i)
	}
	for i := 0; i < 8; i++ {
		assert.True(t, <-done)
	}
}

func TestDiagnosticEvaluatePathIsSchemaLocation(t *testing.T) {
	schema := `{"properties": {"name": {"type": "string"}}}`
	_, events := evaluateJSON(t, schema, `{"name": 1}`, ModeExhaustive)

	var sawTypeStep bool
	for _, e := range events {
		if e.step.Kind == StepTypeStrict && !e.result {
			sawTypeStep = true
			assert.Equal(t, "/properties/name", e.evaluatePath.String())
		}
	}
	assert.True(t, sawTypeStep, "expected to observe the failing type assertion under properties/name")
}
