package jsonschema

import "regexp"

// ipv4Pattern matches a dotted-quad IPv4 address (4 octets, each 0-255).
var ipv4Pattern = regexp.MustCompile(`^(25[0-5]|2[0-4][0-9]|1[0-9]{2}|[1-9]?[0-9])(\.(25[0-5]|2[0-4][0-9]|1[0-9]{2}|[1-9]?[0-9])){3}$`)

// compileFormat compiles `format`. Only "uri" and "ipv4" are asserted;
// every other format name is annotation-only and compiles to no step, per
// the design note's decision not to implement the full format registry.
func (ctx *compileCtx) compileFormat(pointer Pointer, val Value) (*Step, error) {
	if val.Kind() != KindString {
		return nil, nil
	}

	switch val.String() {
	case "uri":
		step := &Step{
			Kind: StepStringType, Target: TargetInstance, Format: FormatURI,
			SchemaLocation: pointer, Keyword: "format",
		}
		return gate(ctx.typeCondition(KindString), step), nil
	case "ipv4":
		step := &Step{
			Kind: StepStringType, Target: TargetInstance, Format: FormatIPv4,
			SchemaLocation: pointer, Keyword: "format",
		}
		return gate(ctx.typeCondition(KindString), step), nil
	default:
		return nil, nil
	}
}
