package jsonschema

import (
	"embed"
	"fmt"

	"github.com/kaptinlin/go-i18n"
)

//go:embed locales/*.json
var localesFS embed.FS

// I18n returns an initialized internationalization bundle with embedded
// English and Simplified Chinese locales, used to localize Diagnostic
// messages through Diagnostics.Describe.
func I18n() (*i18n.I18n, error) {
	bundle := i18n.NewBundle(
		i18n.WithDefaultLocale("en"),
		i18n.WithLocales("en", "zh-Hans"),
	)
	if err := bundle.LoadFS(localesFS, "locales/*.json"); err != nil {
		return nil, err
	}
	return bundle, nil
}

// Diagnostic is the human-readable rendering of one evaluated Step, built
// by Diagnostics.Describe from an evaluator callback event: a message code for
// localization, an English fallback template, and the parameters the step
// carried at evaluation time.
type Diagnostic struct {
	Keyword          string
	Code             string
	Message          string
	Params           map[string]any
	EvaluatePath     Pointer
	InstanceLocation Pointer
	Result           bool
}

// Error renders the diagnostic using its English fallback template.
func (d *Diagnostic) Error() string {
	return replace(d.Message, d.Params)
}

// Localize renders the diagnostic through localizer, falling back to Error
// when no localizer is supplied.
func (d *Diagnostic) Localize(localizer *i18n.Localizer) string {
	if localizer == nil {
		return d.Error()
	}
	return localizer.Get(d.Code, i18n.Vars(d.Params))
}

// Diagnostics is the §4.I Diagnostics component: it turns an evaluated Step
// into a Diagnostic, choosing a message code and parameters from the step's
// keyword and payload.
type Diagnostics struct{}

// NewDiagnostics builds a Diagnostics renderer. It is stateless; callers
// use it to turn the evaluator's callback events into Diagnostics.
func NewDiagnostics() *Diagnostics { return &Diagnostics{} }

// Describe builds the Diagnostic for a step that just finished evaluating
// against value at instanceLocation.
func (d *Diagnostics) Describe(step *Step, result bool, evaluatePath, instanceLocation Pointer, value Value) *Diagnostic {
	code, message, params := d.describeStep(step, value)
	return &Diagnostic{
		Keyword:          step.Keyword,
		Code:             code,
		Message:          message,
		Params:           params,
		EvaluatePath:     evaluatePath,
		InstanceLocation: instanceLocation,
		Result:           result,
	}
}

func (d *Diagnostics) describeStep(step *Step, value Value) (code, message string, params map[string]any) {
	kw := step.Keyword
	if kw == "" {
		kw = stepKindName(step.Kind)
	}
	params = map[string]any{"keyword": kw}

	switch step.Kind {
	case StepTypeStrict, StepTypeStrictAny:
		names := make([]string, len(step.Types))
		for i, k := range step.Types {
			names[i] = k.String()
		}
		params["expected"] = names
		params["actual"] = value.Kind().String()
		return "type", "value must be of type {expected}, got {actual}", params
	case StepEqual:
		return "const", "value must equal the schema-defined constant", params
	case StepEqualsAny:
		return "enum", "value must be one of the enumerated values", params
	case StepDefines:
		params["key"] = step.Key
		return "required", "missing required property {key}", params
	case StepDefinesAll, StepInternalDefinesAll:
		params["keys"] = step.Keys
		return "required", "missing one or more required properties: {keys}", params
	case StepLess:
		params["maximum"] = FormatRat(step.Num)
		return "exclusiveMaximum", "value must be less than {maximum}", params
	case StepLessEqual:
		params["maximum"] = FormatRat(step.Num)
		return "maximum", "value must be less than or equal to {maximum}", params
	case StepGreater:
		params["minimum"] = FormatRat(step.Num)
		return "exclusiveMinimum", "value must be greater than {minimum}", params
	case StepGreaterEqual:
		params["minimum"] = FormatRat(step.Num)
		return "minimum", "value must be greater than or equal to {minimum}", params
	case StepDivisible:
		params["divisor"] = FormatRat(step.Num)
		return "multipleOf", "value must be a multiple of {divisor}", params
	case StepSizeLess, StepSizeGreater:
		params["bound"] = FormatRat(step.Num)
		return kw, "size constraint on {keyword} violated", params
	case StepUnique:
		return "uniqueItems", "array elements must be unique", params
	case StepRegex:
		params["pattern"] = step.Str
		return kw, "value must match pattern {pattern}", params
	case StepStringType:
		return "format", "value must be a valid {keyword}", params
	case StepNot:
		return "not", "value must not validate against the negated schema", params
	case StepOr:
		return "anyOf", "value must validate against at least one subschema", params
	case StepXor:
		return "oneOf", "value must validate against exactly one subschema", params
	case StepControlJump, StepControlLabel:
		return "$ref", "value must validate against the referenced schema", params
	default:
		return kw, "validation failed for {keyword}", params
	}
}

func stepKindName(k StepKind) string {
	return fmt.Sprintf("step-%d", k)
}
