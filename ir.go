package jsonschema

import "regexp"

// StepKind tags a Step with the primitive operation the evaluator performs
// for it. The compiler never emits anything outside this vocabulary; the
// evaluator never inspects a keyword name, only a StepKind.
type StepKind uint8

const (
	// Logical combinators. Children are sub-Templates.
	StepAnd StepKind = iota
	StepOr
	StepXor
	StepNot

	// Assertions over the current target.
	StepTypeStrict
	StepTypeStrictAny
	StepEqual
	StepEqualsAny
	StepDefines
	StepDefinesAll
	StepLess
	StepLessEqual
	StepGreater
	StepGreaterEqual
	StepDivisible
	StepSizeLess
	StepSizeGreater
	StepUnique
	StepRegex
	StepStringType

	// Loops. Children run once per element with Target rebound.
	StepLoopItems
	StepLoopProperties

	// Annotations attach a JSON value at the current evaluation path.
	StepAnnotationPublic
	StepAnnotationPrivate

	// Control flow implements recursion through references.
	StepControlLabel
	StepControlJump

	// Internal bookkeeping steps with no keyword of their own.
	StepInternalContainer
	StepInternalNoAnnotation
	StepInternalDefinesAll
)

// Target identifies what a step reads when it executes.
type Target uint8

const (
	// TargetInstance is the value at the current instance_location.
	TargetInstance Target = iota
	// TargetInstanceBasename is the object key or array index token that
	// led to the current instance_location.
	TargetInstanceBasename
	// TargetInstanceParent is the container (array or object) that holds
	// the current instance_location.
	TargetInstanceParent
	// TargetParentAdjacentAnnotations is the private annotation bag
	// recorded by sibling steps at the parent evaluation scope.
	TargetParentAdjacentAnnotations
)

// StringFormat enumerates the string assertions format handling performs
// (uri, ipv4); every other format value is annotation-only and compiles to
// no step.
type StringFormat uint8

const (
	FormatURI StringFormat = iota
	FormatIPv4
)

// Step is a node of a compiled Template: a tagged record carrying an
// optional typed payload, a target, a gating condition, children, and
// diagnostic metadata. Exactly which payload fields are meaningful depends
// on Kind; see the StepKind constants above for the mapping.
type Step struct {
	Kind   StepKind
	Target Target

	// Condition gates execution: if non-nil and it evaluates false, the
	// step (and its Children) are skipped without diagnostics.
	Condition *Step

	// Children holds sub-Templates for logical combinators, loops, and
	// internal containers.
	Children []*Step

	// Payload fields. Only the ones relevant to Kind are populated.
	Str    string         // Regex source text (for diagnostics)
	Regex  *regexp.Regexp // StepRegex compiled pattern
	Format StringFormat   // StepStringType
	Num    *Rat           // Less/LessEqual/Greater/GreaterEqual/Divisible/SizeLess/SizeGreater threshold
	Value  Value          // StepEqual / annotation payload
	Values []Value        // StepEqualsAny set
	Types  []Kind         // StepTypeStrict (len 1) / StepTypeStrictAny set
	Key    string         // StepDefines key / descend key (see Descend)
	Keys   []string       // StepDefinesAll / StepInternalDefinesAll set
	Start  int            // StepLoopItems start index / descend index (see Descend)
	Label  uint64         // StepControlLabel / StepControlJump id

	// Descend, when set on an InternalContainer, tells the evaluator to
	// push instance_location by Key (or by Start, if DescendIndex) before
	// running Children, and pop it back afterward. Condition still runs at
	// the un-pushed location, against the container itself. properties,
	// patternProperties's per-match body, and the items-as-array form all
	// compile to a descending container: the subschema they carry applies
	// to a child of the current instance, not the instance itself.
	Descend      bool
	DescendIndex bool

	// Diagnostic metadata: where in the schema this step originated and
	// which keyword produced it.
	SchemaLocation Pointer
	Keyword        string
}

// Template is the compiled, immutable IR of a schema: a tree of Steps
// rooted at an And (a Not wrapping an empty And for the `false` schema). A Template is built once and may be evaluated
// concurrently by many goroutines against many instances.
type Template = *Step

// and builds a conjunction of children, the concatenation form every
// subschema-level compilation reduces to.
func and(loc Pointer, kw string, children ...*Step) *Step {
	return &Step{Kind: StepAnd, Children: children, SchemaLocation: loc, Keyword: kw}
}

// or builds a disjunction of children (anyOf).
func or(loc Pointer, kw string, children ...*Step) *Step {
	return &Step{Kind: StepOr, Children: children, SchemaLocation: loc, Keyword: kw}
}

// xor builds an exclusive-or of children (oneOf): exactly one must hold.
func xor(loc Pointer, kw string, children ...*Step) *Step {
	return &Step{Kind: StepXor, Children: children, SchemaLocation: loc, Keyword: kw}
}

// not negates a single child (not).
func not(loc Pointer, kw string, child *Step) *Step {
	return &Step{Kind: StepNot, Children: []*Step{child}, SchemaLocation: loc, Keyword: kw}
}

// gate wraps a step with a condition, the standard way keyword handlers
// restrict an assertion to a given instance type or presence check.
func gate(cond, body *Step) *Step {
	body.Condition = cond
	return body
}

// container groups steps under one shared condition; the evaluator ANDs
// its children the same way it does for And. Used to splice sequences of
// steps (e.g. properties emits one child per property key).
func container(loc Pointer, kw string, cond *Step, children ...*Step) *Step {
	return &Step{Kind: StepInternalContainer, Condition: cond, Children: children, SchemaLocation: loc, Keyword: kw}
}

// descendProperty builds a container that evaluates body with instance_location
// pushed by the object key key, gated by cond (typically Defines(key)).
func descendProperty(loc Pointer, kw string, cond *Step, key string, body *Step) *Step {
	return &Step{
		Kind: StepInternalContainer, Condition: cond, Children: []*Step{body},
		Key: key, Descend: true, SchemaLocation: loc, Keyword: kw,
	}
}

// descendIndex builds a container that evaluates body with instance_location
// pushed by the array index idx, gated by cond.
func descendIndex(loc Pointer, kw string, cond *Step, idx int, body *Step) *Step {
	return &Step{
		Kind: StepInternalContainer, Condition: cond, Children: []*Step{body},
		Start: idx, Descend: true, DescendIndex: true, SchemaLocation: loc, Keyword: kw,
	}
}
