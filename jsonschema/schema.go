package jsonschema

import "github.com/reoring/schemadoc"

// Schema is a JSON Schema (draft-07 vocabulary) document node. Every keyword
// is optional: a nil pointer, nil slice or nil map means the keyword is
// absent, which is distinct from any present value including null. Keywords
// outside the vocabulary are kept in Extensions when the decoder preserves
// them.
//
// Schemas are plain trees of values. Build new ones instead of mutating
// schemas that other goroutines may read.
type Schema struct {
	// Identity and annotations.
	Dialect     *string // $schema
	ID          *string // $id
	Ref         *string // $ref
	Comment     *string // $comment
	Title       *string
	Description *string
	Default     *schemadoc.Value
	ReadOnly    *bool
	WriteOnly   *bool
	Examples    []schemadoc.Value

	// Numeric constraints. Each holds a number Value, so the literal is
	// written back as it was read (schemadoc.Int, schemadoc.MustNumber).
	MultipleOf       *schemadoc.Value
	Maximum          *schemadoc.Value
	ExclusiveMaximum *schemadoc.Value
	Minimum          *schemadoc.Value
	ExclusiveMinimum *schemadoc.Value

	// String constraints.
	MaxLength        *int
	MinLength        *int
	Pattern          *string
	Format           *Format
	ContentMediaType *string
	ContentEncoding  *ContentEncoding

	// Array constraints.
	Items           *Items
	AdditionalItems *BoolOrSchema
	MaxItems        *int
	MinItems        *int
	UniqueItems     *bool
	Contains        *Schema

	// Object constraints.
	MaxProperties        *int
	MinProperties        *int
	Required             []string
	Properties           *SchemaMap
	PatternProperties    *SchemaMap
	AdditionalProperties *BoolOrSchema
	PropertyNames        *Schema
	Dependencies         *DependencyMap
	Definitions          *SchemaMap

	// Generic value constraints.
	Const *schemadoc.Value
	Enum  *NonEmpty[schemadoc.Value]
	Type  *TypeSpec

	// Conditionals and combinators.
	If    *Schema
	Then  *Schema
	Else  *Schema
	AllOf *NonEmpty[*Schema]
	AnyOf *NonEmpty[*Schema]
	OneOf *NonEmpty[*Schema]
	Not   *Schema

	// Extensions holds keywords outside the vocabulary in source order.
	Extensions *schemadoc.Object
}

// Ptr returns a pointer to v. It keeps schema literals short:
//
//	&jsonschema.Schema{Title: jsonschema.Ptr("user"), MinLength: jsonschema.Ptr(1)}
func Ptr[T any](v T) *T { return &v }

// Equal reports whether a and b describe the same document. Keyword order and
// the order of map entries do not matter. The arms of Items, TypeSpec,
// BoolOrSchema and Dependency do.
func Equal(a, b *Schema) bool {
	if a == nil || b == nil {
		return a == b
	}
	return schemadoc.Equal(a.Value(), b.Value())
}

// Keyword names of the vocabulary.
const (
	KwSchema               = "$schema"
	KwID                   = "$id"
	KwRef                  = "$ref"
	KwComment              = "$comment"
	KwTitle                = "title"
	KwDescription          = "description"
	KwDefault              = "default"
	KwReadOnly             = "readOnly"
	KwWriteOnly            = "writeOnly"
	KwExamples             = "examples"
	KwType                 = "type"
	KwEnum                 = "enum"
	KwConst                = "const"
	KwMultipleOf           = "multipleOf"
	KwMaximum              = "maximum"
	KwExclusiveMaximum     = "exclusiveMaximum"
	KwMinimum              = "minimum"
	KwExclusiveMinimum     = "exclusiveMinimum"
	KwMaxLength            = "maxLength"
	KwMinLength            = "minLength"
	KwPattern              = "pattern"
	KwFormat               = "format"
	KwContentMediaType     = "contentMediaType"
	KwContentEncoding      = "contentEncoding"
	KwItems                = "items"
	KwAdditionalItems      = "additionalItems"
	KwMaxItems             = "maxItems"
	KwMinItems             = "minItems"
	KwUniqueItems          = "uniqueItems"
	KwContains             = "contains"
	KwMaxProperties        = "maxProperties"
	KwMinProperties        = "minProperties"
	KwRequired             = "required"
	KwProperties           = "properties"
	KwPatternProperties    = "patternProperties"
	KwAdditionalProperties = "additionalProperties"
	KwPropertyNames        = "propertyNames"
	KwDependencies         = "dependencies"
	KwDefinitions          = "definitions"
	KwIf                   = "if"
	KwThen                 = "then"
	KwElse                 = "else"
	KwAllOf                = "allOf"
	KwAnyOf                = "anyOf"
	KwOneOf                = "oneOf"
	KwNot                  = "not"
)

// Legacy spellings accepted on input and never written.
const (
	kwAdditionalPropertiesLegacy = "additonalProperties"
	kwReadOnlyLegacy             = "readonly"
)

// keywordOrder is the canonical encoding order.
var keywordOrder = []string{
	KwSchema, KwID, KwRef, KwComment, KwTitle, KwDescription, KwDefault,
	KwReadOnly, KwWriteOnly, KwExamples,
	KwType, KwEnum, KwConst,
	KwMultipleOf, KwMaximum, KwExclusiveMaximum, KwMinimum, KwExclusiveMinimum,
	KwMaxLength, KwMinLength, KwPattern, KwFormat, KwContentMediaType, KwContentEncoding,
	KwItems, KwAdditionalItems, KwMaxItems, KwMinItems, KwUniqueItems, KwContains,
	KwMaxProperties, KwMinProperties, KwRequired, KwProperties, KwPatternProperties,
	KwAdditionalProperties, KwPropertyNames, KwDependencies, KwDefinitions,
	KwIf, KwThen, KwElse, KwAllOf, KwAnyOf, KwOneOf, KwNot,
}

var keywordSet = func() map[string]struct{} {
	m := make(map[string]struct{}, len(keywordOrder)+2)
	for _, k := range keywordOrder {
		m[k] = struct{}{}
	}
	m[kwAdditionalPropertiesLegacy] = struct{}{}
	m[kwReadOnlyLegacy] = struct{}{}
	return m
}()

// Keywords returns the vocabulary in canonical order.
func Keywords() []string { return append([]string(nil), keywordOrder...) }

// IsKeyword reports whether name belongs to the vocabulary, legacy spellings
// included.
func IsKeyword(name string) bool {
	_, ok := keywordSet[name]
	return ok
}
