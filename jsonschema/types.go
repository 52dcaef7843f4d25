package jsonschema

import (
	"errors"
	"fmt"
	"slices"
)

// SimpleType is one of the seven JSON Schema primitive type names.
type SimpleType string

const (
	TypeArray   SimpleType = "array"   // ordered elements, each of any type
	TypeBoolean SimpleType = "boolean" // only true and false
	TypeInteger SimpleType = "integer" // integral numbers
	TypeNull    SimpleType = "null"    // only null
	TypeNumber  SimpleType = "number"  // any number
	TypeObject  SimpleType = "object"  // string keys to values
	TypeString  SimpleType = "string"  // text
)

var simpleTypes = []SimpleType{TypeArray, TypeBoolean, TypeInteger, TypeNull, TypeNumber, TypeObject, TypeString}

// SimpleTypes lists the closed set of type names.
func SimpleTypes() []SimpleType { return slices.Clone(simpleTypes) }

// Valid reports whether t belongs to the closed set.
func (t SimpleType) Valid() bool { return slices.Contains(simpleTypes, t) }

// ParseSimpleType converts a type name, rejecting anything outside the set.
func ParseSimpleType(s string) (SimpleType, error) {
	t := SimpleType(s)
	if !t.Valid() {
		return "", fmt.Errorf("jsonschema: unknown type %q", s)
	}
	return t, nil
}

// ErrDuplicateType is returned by TypeUnion for repeated type names.
var ErrDuplicateType = errors.New("jsonschema: duplicate type in type list")

// TypeSpec is the value of the type keyword: either a single type name or a
// non-empty list of unique type names. The two arms are kept apart so that
// "string" and ["string"] survive a round trip unchanged. Build values with
// TypeOf or TypeUnion.
type TypeSpec struct {
	list  bool
	first SimpleType
	rest  []SimpleType
}

// TypeOf builds the single-name arm. Unlike TypeUnion it does not check t;
// a name outside SimpleTypes is left out when the schema is encoded.
func TypeOf(t SimpleType) *TypeSpec { return &TypeSpec{first: t} }

// TypeUnion builds the list arm. Every name must be valid and unique.
func TypeUnion(first SimpleType, more ...SimpleType) (*TypeSpec, error) {
	all := append([]SimpleType{first}, more...)
	for i, t := range all {
		if !t.Valid() {
			return nil, fmt.Errorf("jsonschema: unknown type %q", t)
		}
		if slices.Contains(all[:i], t) {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateType, t)
		}
	}
	return &TypeSpec{list: true, first: first, rest: slices.Clone(more)}, nil
}

// IsList reports whether the list arm was used.
func (t *TypeSpec) IsList() bool { return t.list }

// Single returns the type name of the single-name arm.
func (t *TypeSpec) Single() (SimpleType, bool) { return t.first, !t.list }

// Types returns every type name in order (one element for the single arm).
func (t *TypeSpec) Types() []SimpleType {
	return append([]SimpleType{t.first}, t.rest...)
}

// Has reports whether st is one of the listed types.
func (t *TypeSpec) Has(st SimpleType) bool { return t.first == st || slices.Contains(t.rest, st) }

// Format is the value of the format keyword. The keyword is open: any string
// is accepted, and the constants below are the well-known values.
type Format string

const (
	FormatDateTime            Format = "date-time"
	FormatDate                Format = "date"
	FormatTime                Format = "time"
	FormatEmail               Format = "email"
	FormatIDNEmail            Format = "idn-email"
	FormatHostname            Format = "hostname"
	FormatIDNHostname         Format = "idn-hostname"
	FormatIPv4                Format = "ipv4"
	FormatIPv6                Format = "ipv6"
	FormatURI                 Format = "uri"
	FormatURIReference        Format = "uri-reference"
	FormatIRI                 Format = "iri"
	FormatIRIReference        Format = "iri-reference"
	FormatURITemplate         Format = "uri-template"
	FormatJSONPointer         Format = "json-pointer"
	FormatRelativeJSONPointer Format = "relative-json-pointer"
	FormatRegex               Format = "regex" // ECMA 262 dialect
)

var knownFormats = []Format{
	FormatDateTime, FormatDate, FormatTime, FormatEmail, FormatIDNEmail,
	FormatHostname, FormatIDNHostname, FormatIPv4, FormatIPv6, FormatURI,
	FormatURIReference, FormatIRI, FormatIRIReference, FormatURITemplate,
	FormatJSONPointer, FormatRelativeJSONPointer, FormatRegex,
}

// KnownFormats lists the well-known format values.
func KnownFormats() []Format { return slices.Clone(knownFormats) }

// Known reports whether f is one of the well-known values.
func (f Format) Known() bool { return slices.Contains(knownFormats, f) }

// ContentEncoding is the closed set of contentEncoding values.
type ContentEncoding string

const (
	Encoding7Bit            ContentEncoding = "7bit"
	Encoding8Bit            ContentEncoding = "8bit"
	EncodingBinary          ContentEncoding = "binary"
	EncodingQuotedPrintable ContentEncoding = "quoted-printable"
	EncodingBase64          ContentEncoding = "base64"
)

var contentEncodings = []ContentEncoding{Encoding7Bit, Encoding8Bit, EncodingBinary, EncodingQuotedPrintable, EncodingBase64}

// ContentEncodings lists the accepted values.
func ContentEncodings() []ContentEncoding { return slices.Clone(contentEncodings) }

// Valid reports whether e belongs to the closed set.
func (e ContentEncoding) Valid() bool { return slices.Contains(contentEncodings, e) }

// ParseContentEncoding converts a string, rejecting unknown encodings.
func ParseContentEncoding(s string) (ContentEncoding, error) {
	e := ContentEncoding(s)
	if !e.Valid() {
		return "", fmt.Errorf("jsonschema: unknown content encoding %q", s)
	}
	return e, nil
}
