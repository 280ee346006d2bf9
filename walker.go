package jsonschema

// Classification is what the walker reports a keyword is, per the
// GLOSSARY's Applicator/Assertion/Annotation distinction.
type Classification uint8

const (
	ClassificationUnknown Classification = iota
	ClassificationAssertion
	ClassificationAnnotation
	ClassificationApplicator
)

// SubschemaShape describes where an applicator keyword's subschemas live,
// so the frame indexer can enumerate concrete pointers without needing
// keyword-specific logic of its own.
type SubschemaShape uint8

const (
	// ShapeNone: not an applicator, no subschemas.
	ShapeNone SubschemaShape = iota
	// ShapeSingle: the keyword's value is itself one subschema (not,
	// contains, propertyNames, additionalProperties, if/then/else,
	// additionalItems, 2020-12 items).
	ShapeSingle
	// ShapeArrayItems: the keyword's value is an array of subschemas
	// (allOf, anyOf, oneOf, prefixItems).
	ShapeArrayItems
	// ShapeObjectValues: the keyword's value is an object whose every
	// value is a subschema (properties, patternProperties,
	// dependentSchemas, $defs, definitions).
	ShapeObjectValues
	// ShapeItemsVariant: the keyword's value is either a single subschema
	// or an array of subschemas (Draft 4-2019-09 `items`).
	ShapeItemsVariant
	// ShapeDependenciesVariant: the keyword's value is an object whose
	// entries are either a subschema or an array of property-name
	// strings (Draft 4-7 `dependencies`).
	ShapeDependenciesVariant
)

// SchemaWalker classifies a (dialect, keyword) pair. Pure function;
// implementations are expected to be table-driven per dialect.
type SchemaWalker interface {
	Walk(dialect, keyword string) (Classification, SubschemaShape)
}

// walkerEntry is one row of a dialect's keyword table.
type walkerEntry struct {
	class Classification
	shape SubschemaShape
}

// commonKeywords holds entries stable across every dialect this engine
// compiles, grounded on jsonschema.cc's schema_format_compare keyword rank
// table for the full keyword name inventory.
var commonKeywords = map[string]walkerEntry{
	"$ref":                 {ClassificationApplicator, ShapeNone}, // resolved via frame, not a literal subschema pointer
	"$dynamicRef":          {ClassificationApplicator, ShapeNone},
	"$recursiveRef":        {ClassificationApplicator, ShapeNone},
	"type":                 {ClassificationAssertion, ShapeNone},
	"required":             {ClassificationAssertion, ShapeNone},
	"properties":           {ClassificationApplicator, ShapeObjectValues},
	"patternProperties":    {ClassificationApplicator, ShapeObjectValues},
	"additionalProperties": {ClassificationApplicator, ShapeSingle},
	"propertyNames":        {ClassificationApplicator, ShapeSingle},
	"allOf":                {ClassificationApplicator, ShapeArrayItems},
	"anyOf":                {ClassificationApplicator, ShapeArrayItems},
	"oneOf":                {ClassificationApplicator, ShapeArrayItems},
	"not":                  {ClassificationApplicator, ShapeSingle},
	"if":                   {ClassificationApplicator, ShapeSingle},
	"then":                 {ClassificationApplicator, ShapeSingle},
	"else":                 {ClassificationApplicator, ShapeSingle},
	"contains":             {ClassificationApplicator, ShapeSingle},
	"enum":                 {ClassificationAssertion, ShapeNone},
	"const":                {ClassificationAssertion, ShapeNone},
	"uniqueItems":          {ClassificationAssertion, ShapeNone},
	"pattern":              {ClassificationAssertion, ShapeNone},
	"minLength":            {ClassificationAssertion, ShapeNone},
	"maxLength":            {ClassificationAssertion, ShapeNone},
	"minItems":             {ClassificationAssertion, ShapeNone},
	"maxItems":             {ClassificationAssertion, ShapeNone},
	"minProperties":        {ClassificationAssertion, ShapeNone},
	"maxProperties":        {ClassificationAssertion, ShapeNone},
	"maximum":              {ClassificationAssertion, ShapeNone},
	"minimum":              {ClassificationAssertion, ShapeNone},
	"exclusiveMaximum":     {ClassificationAssertion, ShapeNone},
	"exclusiveMinimum":     {ClassificationAssertion, ShapeNone},
	"multipleOf":           {ClassificationAssertion, ShapeNone},
	"format":               {ClassificationAnnotation, ShapeNone},
	"$defs":                {ClassificationApplicator, ShapeObjectValues},
	"definitions":          {ClassificationApplicator, ShapeObjectValues},
	"title":                {ClassificationAnnotation, ShapeNone},
	"description":          {ClassificationAnnotation, ShapeNone},
	"default":              {ClassificationAnnotation, ShapeNone},
	"examples":             {ClassificationAnnotation, ShapeNone},
	"$comment":             {ClassificationAnnotation, ShapeNone},
}

// DefaultWalker is the table-driven SchemaWalker shipped with this engine:
// one table per base dialect layered on top of commonKeywords, so new
// dialects are added by extending the table rather than touching the
// frame, IR, or evaluator.
type DefaultWalker struct {
	perDialect map[string]map[string]walkerEntry
}

// NewDefaultWalker builds the walker for Draft 4 through 2020-12.
func NewDefaultWalker() *DefaultWalker {
	w := &DefaultWalker{perDialect: make(map[string]map[string]walkerEntry)}

	// Draft 4-7 share `items`/`additionalItems`/`dependencies` shape.
	legacy := map[string]walkerEntry{
		"items":           {ClassificationApplicator, ShapeItemsVariant},
		"additionalItems": {ClassificationApplicator, ShapeSingle},
		"dependencies":    {ClassificationApplicator, ShapeDependenciesVariant},
	}
	w.perDialect[Draft4] = legacy
	w.perDialect[Draft6] = legacy
	w.perDialect[Draft7] = legacy

	// 2019-09 splits `dependencies` into dependentRequired/dependentSchemas
	// but keeps array-or-schema `items`.
	w.perDialect[Draft201909] = map[string]walkerEntry{
		"items":             {ClassificationApplicator, ShapeItemsVariant},
		"additionalItems":   {ClassificationApplicator, ShapeSingle},
		"dependentRequired": {ClassificationAssertion, ShapeNone},
		"dependentSchemas":  {ClassificationApplicator, ShapeObjectValues},
		"$recursiveAnchor":  {ClassificationAnnotation, ShapeNone},
	}

	// 2020-12 replaces items-as-array with prefixItems and items-as-schema.
	w.perDialect[Draft202012] = map[string]walkerEntry{
		"prefixItems":       {ClassificationApplicator, ShapeArrayItems},
		"items":             {ClassificationApplicator, ShapeSingle},
		"dependentRequired": {ClassificationAssertion, ShapeNone},
		"dependentSchemas":  {ClassificationApplicator, ShapeObjectValues},
		"$dynamicAnchor":    {ClassificationAnnotation, ShapeNone},
	}

	return w
}

// Walk implements SchemaWalker.
func (w *DefaultWalker) Walk(dialect, keyword string) (Classification, SubschemaShape) {
	if perDialect, ok := w.perDialect[dialect]; ok {
		if e, ok := perDialect[keyword]; ok {
			return e.class, e.shape
		}
	}
	if e, ok := commonKeywords[keyword]; ok {
		return e.class, e.shape
	}
	return ClassificationUnknown, ShapeNone
}
