package jsonschema

import (
	"context"

	"github.com/reoring/schemadoc"
	"github.com/reoring/schemadoc/source/yaml"
)

// Value renders s as a document. Keywords come out in canonical order
// followed by extensions in their stored order; extension members that
// collide with a vocabulary keyword are dropped. So are type names and
// content encodings outside their closed sets, which only hand-built schemas
// can hold, and numeric keywords holding non-numbers. A nil schema renders as
// an empty object.
func (s *Schema) Value() schemadoc.Value {
	if s == nil {
		return schemadoc.ObjectOf()
	}
	var ms []schemadoc.Member
	add := func(k string, v schemadoc.Value) { ms = append(ms, schemadoc.Member{Key: k, Value: v}) }
	addStr := func(k string, p *string) {
		if p != nil {
			add(k, schemadoc.String(*p))
		}
	}
	addBool := func(k string, p *bool) {
		if p != nil {
			add(k, schemadoc.Bool(*p))
		}
	}
	addNum := func(k string, p *schemadoc.Value) {
		if p != nil && p.Kind() == schemadoc.KindNumber {
			add(k, *p)
		}
	}
	addInt := func(k string, p *int) {
		if p != nil {
			add(k, schemadoc.Int(int64(*p)))
		}
	}
	addSchema := func(k string, p *Schema) {
		if p != nil {
			add(k, p.Value())
		}
	}
	addMap := func(k string, m *SchemaMap) {
		if m != nil {
			add(k, schemaMapValue(m))
		}
	}
	addList := func(k string, l *NonEmpty[*Schema]) {
		if l != nil {
			add(k, schemaListValue(l.Slice()))
		}
	}

	addStr(KwSchema, s.Dialect)
	addStr(KwID, s.ID)
	addStr(KwRef, s.Ref)
	addStr(KwComment, s.Comment)
	addStr(KwTitle, s.Title)
	addStr(KwDescription, s.Description)
	if s.Default != nil {
		add(KwDefault, *s.Default)
	}
	addBool(KwReadOnly, s.ReadOnly)
	addBool(KwWriteOnly, s.WriteOnly)
	if s.Examples != nil {
		add(KwExamples, schemadoc.Array(s.Examples...))
	}
	if s.Type != nil && validTypes(s.Type) {
		add(KwType, typeSpecValue(s.Type))
	}
	if s.Enum != nil {
		add(KwEnum, schemadoc.Array(s.Enum.Slice()...))
	}
	if s.Const != nil {
		add(KwConst, *s.Const)
	}
	addNum(KwMultipleOf, s.MultipleOf)
	addNum(KwMaximum, s.Maximum)
	addNum(KwExclusiveMaximum, s.ExclusiveMaximum)
	addNum(KwMinimum, s.Minimum)
	addNum(KwExclusiveMinimum, s.ExclusiveMinimum)
	addInt(KwMaxLength, s.MaxLength)
	addInt(KwMinLength, s.MinLength)
	addStr(KwPattern, s.Pattern)
	if s.Format != nil {
		add(KwFormat, schemadoc.String(string(*s.Format)))
	}
	addStr(KwContentMediaType, s.ContentMediaType)
	if s.ContentEncoding != nil && s.ContentEncoding.Valid() {
		add(KwContentEncoding, schemadoc.String(string(*s.ContentEncoding)))
	}
	if s.Items != nil {
		if one, ok := s.Items.Schema(); ok {
			add(KwItems, one.Value())
		} else {
			add(KwItems, schemaListValue(s.Items.schemas))
		}
	}
	if s.AdditionalItems != nil {
		add(KwAdditionalItems, boolOrSchemaValue(s.AdditionalItems))
	}
	addInt(KwMaxItems, s.MaxItems)
	addInt(KwMinItems, s.MinItems)
	addBool(KwUniqueItems, s.UniqueItems)
	addSchema(KwContains, s.Contains)
	addInt(KwMaxProperties, s.MaxProperties)
	addInt(KwMinProperties, s.MinProperties)
	if s.Required != nil {
		add(KwRequired, stringsValue(s.Required))
	}
	addMap(KwProperties, s.Properties)
	addMap(KwPatternProperties, s.PatternProperties)
	if s.AdditionalProperties != nil {
		add(KwAdditionalProperties, boolOrSchemaValue(s.AdditionalProperties))
	}
	addSchema(KwPropertyNames, s.PropertyNames)
	if s.Dependencies != nil {
		var deps []schemadoc.Member
		s.Dependencies.Range(func(name string, dep *Dependency) bool {
			deps = append(deps, schemadoc.Member{Key: name, Value: dependencyValue(dep)})
			return true
		})
		add(KwDependencies, schemadoc.ObjectOf(deps...))
	}
	addMap(KwDefinitions, s.Definitions)
	addSchema(KwIf, s.If)
	addSchema(KwThen, s.Then)
	addSchema(KwElse, s.Else)
	addList(KwAllOf, s.AllOf)
	addList(KwAnyOf, s.AnyOf)
	addList(KwOneOf, s.OneOf)
	addSchema(KwNot, s.Not)

	s.Extensions.Range(func(k string, v schemadoc.Value) bool {
		if !IsKeyword(k) {
			add(k, v)
		}
		return true
	})
	return schemadoc.ObjectOf(ms...)
}

func stringsValue(ss []string) schemadoc.Value {
	vs := make([]schemadoc.Value, len(ss))
	for i, s := range ss {
		vs[i] = schemadoc.String(s)
	}
	return schemadoc.Array(vs...)
}

func schemaListValue(ss []*Schema) schemadoc.Value {
	vs := make([]schemadoc.Value, len(ss))
	for i, s := range ss {
		vs[i] = s.Value()
	}
	return schemadoc.Array(vs...)
}

func schemaMapValue(m *SchemaMap) schemadoc.Value {
	ms := make([]schemadoc.Member, 0, m.Len())
	m.Range(func(name string, s *Schema) bool {
		ms = append(ms, schemadoc.Member{Key: name, Value: s.Value()})
		return true
	})
	return schemadoc.ObjectOf(ms...)
}

func validTypes(t *TypeSpec) bool {
	for _, st := range t.Types() {
		if !st.Valid() {
			return false
		}
	}
	return true
}

func typeSpecValue(t *TypeSpec) schemadoc.Value {
	if one, ok := t.Single(); ok {
		return schemadoc.String(string(one))
	}
	types := t.Types()
	vs := make([]schemadoc.Value, len(types))
	for i, st := range types {
		vs[i] = schemadoc.String(string(st))
	}
	return schemadoc.Array(vs...)
}

func boolOrSchemaValue(b *BoolOrSchema) schemadoc.Value {
	if flag, ok := b.Bool(); ok {
		return schemadoc.Bool(flag)
	}
	return b.schema.Value()
}

func dependencyValue(d *Dependency) schemadoc.Value {
	if names, ok := d.Properties(); ok {
		return stringsValue(names)
	}
	return d.schema.Value()
}

// MarshalJSON encodes the schema in canonical keyword order.
func (s *Schema) MarshalJSON() ([]byte, error) { return s.Value().MarshalJSON() }

// UnmarshalJSON decodes and shape-validates a schema document with the
// default options. Failures are returned as schemadoc.Issues.
func (s *Schema) UnmarshalJSON(data []byte) error {
	out, _, err := Parse(context.Background(), schemadoc.JSONBytes(data))
	if err != nil {
		return err
	}
	*s = *out
	return nil
}

// MarshalYAML lets gopkg.in/yaml.v3 encode a Schema with keyword order kept.
func (s *Schema) MarshalYAML() (any, error) { return yaml.ToNode(s.Value()), nil }
