package jsonschema

import "math/big"

// assert evaluates a leaf Step (an assertion with no children) against
// value at instanceLocation, rebinding the read per step.Target first.
func (s *evalState) assert(step *Step, instanceLocation Pointer, value Value) bool {
	switch step.Kind {
	case StepTypeStrict:
		return value.Kind() == step.Types[0]
	case StepTypeStrictAny:
		for _, k := range step.Types {
			if value.Kind() == k {
				return true
			}
		}
		return false
	case StepEqual:
		return Equal(value, step.Value)
	case StepEqualsAny:
		for _, v := range step.Values {
			if Equal(value, v) {
				return true
			}
		}
		return false
	case StepDefines:
		return value.Defines(step.Key)
	case StepDefinesAll, StepInternalDefinesAll:
		for _, key := range step.Keys {
			if !value.Defines(key) {
				return false
			}
		}
		return true
	case StepLess:
		return value.Rat().Cmp(step.Num.Rat) < 0
	case StepLessEqual:
		return value.Rat().Cmp(step.Num.Rat) <= 0
	case StepGreater:
		return value.Rat().Cmp(step.Num.Rat) > 0
	case StepGreaterEqual:
		return value.Rat().Cmp(step.Num.Rat) >= 0
	case StepDivisible:
		quo := new(big.Rat).Quo(value.Rat(), step.Num.Rat)
		return quo.IsInt()
	case StepSizeLess:
		return new(big.Rat).SetInt64(int64(value.Len())).Cmp(step.Num.Rat) < 0
	case StepSizeGreater:
		return new(big.Rat).SetInt64(int64(value.Len())).Cmp(step.Num.Rat) > 0
	case StepUnique:
		return assertUnique(value)
	case StepRegex:
		return step.Regex.MatchString(assertString(step, instanceLocation, value))
	case StepStringType:
		return assertFormat(step, assertString(step, instanceLocation, value))
	default:
		return true
	}
}

// assertString resolves the string a StepRegex/StepStringType reads:
// either the instance value itself, or (TargetInstanceBasename) the
// current object key/array index token.
func assertString(step *Step, instanceLocation Pointer, value Value) string {
	if step.Target == TargetInstanceBasename {
		return basename(instanceLocation)
	}
	return value.String()
}

func assertUnique(value Value) bool {
	if value.Kind() != KindArray {
		return true
	}
	seen := make(map[string]bool, len(value.Array()))
	for _, item := range value.Array() {
		h := Hash(item)
		if seen[h] {
			return false
		}
		seen[h] = true
	}
	return true
}

func assertFormat(step *Step, str string) bool {
	switch step.Format {
	case FormatURI:
		return IsValid(str)
	case FormatIPv4:
		return ipv4Pattern.MatchString(str)
	default:
		return true
	}
}
