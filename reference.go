package jsonschema

// ReferenceKind distinguishes the three reference keywords the frame
// indexer records. Static covers `$ref`; Dynamic covers `$dynamicRef`
// (resolved at compile time through the frame's `$dynamicAnchor` table,
// falling back to static resolution; no dynamic scope is tracked at
// evaluation time); Recursive covers the Draft 2019-09 predecessor
// `$recursiveRef`/`$recursiveAnchor`.
type ReferenceKind uint8

const (
	ReferenceStatic ReferenceKind = iota
	ReferenceDynamic
	ReferenceRecursive
)

// Reference is a single `$ref`/`$dynamicRef`/`$recursiveRef` occurrence
// discovered by the frame indexer.
type Reference struct {
	Kind        ReferenceKind
	Origin      Pointer
	Destination string
}
