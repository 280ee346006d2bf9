package jsonschema

import "errors"

// Error taxonomy for the frame/compiler/evaluator/resolver split. Each
// sentinel is wrapped with fmt.Errorf("...: %w", ...) at the call site so
// callers can errors.Is against the category while reading a specific
// message.

// === Frame / dialect errors (fatal, surfaced as SchemaError) ===
var (
	// ErrSchemaError is the general SchemaError category: malformed schema,
	// invalid $id/id, unrecognized base dialect.
	ErrSchemaError = errors.New("schema error")

	// ErrInvalidID is returned when $id or legacy id is empty or non-string.
	ErrInvalidID = errors.New("invalid id")

	// ErrUnresolvedDialect is returned when a base dialect has no known
	// core vocabulary (see coreVocabulary), so its $vocabulary declaration
	// cannot be checked.
	ErrUnresolvedDialect = errors.New("unrecognized base dialect")

	// ErrMissingDialect is returned when $schema is absent and no default
	// dialect was supplied to the frame indexer.
	ErrMissingDialect = errors.New("missing $schema and no default dialect")

	// ErrInvalidVocabulary is returned when a dialect's $vocabulary object
	// omits or disables the core vocabulary.
	ErrInvalidVocabulary = errors.New("invalid vocabulary declaration")
)

// === Resolution errors ===
var (
	// ErrSchemaResolution is returned when a resolver returns absent for a
	// URI the frame indexer or compiler needed.
	ErrSchemaResolution = errors.New("schema resolution failed")

	// ErrReferenceUnresolved is returned when a $ref/$dynamicRef/
	// $recursiveRef does not resolve to any frame entry.
	ErrReferenceUnresolved = errors.New("reference does not resolve to a known schema location")
)

// === Compiler errors ===
var (
	// ErrCompile is the general CompileError category: compiler invariant
	// violation, missing walker entry, unbounded reference.
	ErrCompile = errors.New("compile error")

	// ErrNoWalkerEntry names the "no walker classification for a (dialect,
	// keyword) pair" case. No code path returns it: the frame indexer skips
	// keywords the walker does not classify as applicators, and the
	// compiler compiles unknown keywords to no step.
	ErrNoWalkerEntry = errors.New("no walker entry for keyword")

	// ErrUnknownType is returned by compileType in Strict mode for a type
	// name that isn't one of the seven recognized JSON Schema type names.
	ErrUnknownType = errors.New("unknown type name")

	// ErrNonPositiveMultipleOf is returned when multipleOf is zero or
	// negative.
	ErrNonPositiveMultipleOf = errors.New("multipleOf must be strictly positive")

	// ErrInvalidRegex is returned when a pattern/patternProperties regular
	// expression fails to compile.
	ErrInvalidRegex = errors.New("invalid regular expression")
)

// === Evaluator errors ===
var (
	// ErrRecursionLimit is returned when ControlJump recursion exceeds the
	// configured depth limit.
	ErrRecursionLimit = errors.New("recursion limit exceeded")

	// ErrEvaluationCancelled is returned when the cancellation token fires
	// mid-evaluation.
	ErrEvaluationCancelled = errors.New("evaluation cancelled")

	// ErrUnknownLabel is a compiler/evaluator invariant violation: a
	// ControlJump referenced a label with no matching ControlLabel on the
	// label stack.
	ErrUnknownLabel = errors.New("jump to unregistered label")
)

// === Value / decoding errors ===
var (
	// ErrValueDecode is returned when JSON bytes cannot be decoded into a Value.
	ErrValueDecode = errors.New("value decode failed")

	// ErrUnsupportedValueType is returned by FromAny for a Go type with no
	// JSON Schema value representation.
	ErrUnsupportedValueType = errors.New("unsupported value type")

	// ErrUnsupportedTypeForRat is returned when a Value's Kind cannot be
	// converted to a big.Rat for exact numeric comparison.
	ErrUnsupportedTypeForRat = errors.New("unsupported type for exact rational comparison")

	// ErrFailedToConvertToRat is returned when a numeric Value's textual
	// representation fails to parse as a big.Rat.
	ErrFailedToConvertToRat = errors.New("failed to convert value to rational")
)
