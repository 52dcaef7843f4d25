package jsonschema

import (
	"context"
	"slices"
	"strconv"

	"github.com/reoring/schemadoc"
)

// FromValue shape-validates v as a schema document. Every problem is collected
// and returned as schemadoc.Issues unless DecodeOpt.Parse.FailFast is set.
// Non-fatal findings are reported through Diag. Context cancellation is
// returned as the context error.
func FromValue(ctx context.Context, v schemadoc.Value, opts ...DecodeOpt) (*Schema, Diag, error) {
	return newDecoder(ctx, lastOpt(opts)).run(v)
}

type decoder struct {
	ctx      context.Context
	opt      DecodeOpt
	maxDepth int
	diag     *simpleDiag
	issues   schemadoc.Issues
	ctxErr   error
}

func newDecoder(ctx context.Context, opt DecodeOpt) *decoder {
	if ctx == nil {
		ctx = context.Background()
	}
	return &decoder{ctx: ctx, opt: opt, maxDepth: opt.effectiveMaxDepth(), diag: &simpleDiag{}}
}

func (d *decoder) run(v schemadoc.Value) (*Schema, Diag, error) {
	s := d.schema(v, "", "", 0)
	if d.ctxErr != nil {
		return nil, d.diag, d.ctxErr
	}
	if len(d.issues) > 0 {
		return nil, d.diag, d.issues
	}
	return s, d.diag, nil
}

func (d *decoder) stopped() bool {
	if d.ctxErr != nil {
		return true
	}
	return d.opt.Parse.FailFast && len(d.issues) > 0
}

func (d *decoder) fail(p schemadoc.Path, code string, params map[string]any) {
	d.issues = schemadoc.AppendIssues(d.issues, p.Issue(code, params))
}

func (d *decoder) mismatch(p schemadoc.Path, kw, expected string, got schemadoc.Value) {
	d.fail(p, schemadoc.CodeInvalidType, map[string]any{"keyword": kw, "expected": expected, "got": got.Kind().String()})
}

// schema decodes one subschema. kw names the keyword holding it ("" at the
// root) and depth counts enclosing subschemas.
func (d *decoder) schema(v schemadoc.Value, p schemadoc.Path, kw string, depth int) *Schema {
	if d.stopped() {
		return nil
	}
	if err := d.ctx.Err(); err != nil {
		d.ctxErr = err
		return nil
	}
	if d.maxDepth > 0 && depth > d.maxDepth {
		d.fail(p, schemadoc.CodeMaxDepth, map[string]any{"keyword": kw})
		return nil
	}
	obj, ok := v.AsObject()
	if !ok {
		if kw == "" {
			is := p.Issue(schemadoc.CodeInvalidType, map[string]any{"keyword": "schema", "expected": "object", "got": v.Kind().String()})
			is.Keyword = ""
			d.issues = schemadoc.AppendIssues(d.issues, is)
			return nil
		}
		d.mismatch(p, kw, "object", v)
		return nil
	}
	s := &Schema{}
	var ext []schemadoc.Member
	obj.Range(func(k string, val schemadoc.Value) bool {
		if keep := d.keyword(s, k, val, p.Field(k), depth); keep {
			ext = append(ext, schemadoc.Member{Key: k, Value: val})
		}
		return !d.stopped()
	})
	if !d.stopped() {
		if val, vp, ok := d.alias(obj, p, KwAdditionalProperties, kwAdditionalPropertiesLegacy); ok {
			s.AdditionalProperties = d.boolOrSchema(val, vp, KwAdditionalProperties, depth)
		}
		if val, vp, ok := d.alias(obj, p, KwReadOnly, kwReadOnlyLegacy); ok {
			s.ReadOnly = d.boolean(val, vp, KwReadOnly)
		}
	}
	if len(ext) > 0 {
		s.Extensions = schemadoc.NewObject(ext...)
	}
	return s
}

// keyword decodes one member of a schema object into s. It reports whether
// the member is unknown and should be kept as an extension.
func (d *decoder) keyword(s *Schema, k string, v schemadoc.Value, p schemadoc.Path, depth int) bool {
	switch k {
	case KwSchema:
		s.Dialect = d.str(v, p, k)
	case KwID:
		s.ID = d.str(v, p, k)
	case KwRef:
		s.Ref = d.str(v, p, k)
	case KwComment:
		s.Comment = d.str(v, p, k)
	case KwTitle:
		s.Title = d.str(v, p, k)
	case KwDescription:
		s.Description = d.str(v, p, k)
	case KwDefault:
		s.Default = Ptr(v)
	case KwWriteOnly:
		s.WriteOnly = d.boolean(v, p, k)
	case KwExamples:
		if arr, ok := v.AsArray(); ok {
			if arr == nil {
				arr = []schemadoc.Value{}
			}
			s.Examples = arr
		} else {
			d.mismatch(p, k, "array", v)
		}
	case KwMultipleOf:
		if n := d.number(v, p, k); n != nil {
			if sign, _ := n.NumberSign(); sign <= 0 {
				d.fail(p, schemadoc.CodeTooSmall, map[string]any{"keyword": k, "reason": "must be greater than 0"})
			} else {
				s.MultipleOf = n
			}
		}
	case KwMaximum:
		s.Maximum = d.number(v, p, k)
	case KwExclusiveMaximum:
		s.ExclusiveMaximum = d.number(v, p, k)
	case KwMinimum:
		s.Minimum = d.number(v, p, k)
	case KwExclusiveMinimum:
		s.ExclusiveMinimum = d.number(v, p, k)
	case KwMaxLength:
		s.MaxLength = d.count(v, p, k)
	case KwMinLength:
		s.MinLength = d.count(v, p, k)
	case KwPattern:
		s.Pattern = d.str(v, p, k)
	case KwFormat:
		if str := d.str(v, p, k); str != nil {
			s.Format = Ptr(Format(*str))
		}
	case KwContentMediaType:
		s.ContentMediaType = d.str(v, p, k)
	case KwContentEncoding:
		if str := d.str(v, p, k); str != nil {
			if enc, err := ParseContentEncoding(*str); err == nil {
				s.ContentEncoding = &enc
			} else {
				d.fail(p, schemadoc.CodeInvalidEnum, map[string]any{"keyword": k, "got": strconv.Quote(*str)})
			}
		}
	case KwItems:
		s.Items = d.items(v, p, depth)
	case KwAdditionalItems:
		s.AdditionalItems = d.boolOrSchema(v, p, k, depth)
	case KwMaxItems:
		s.MaxItems = d.count(v, p, k)
	case KwMinItems:
		s.MinItems = d.count(v, p, k)
	case KwUniqueItems:
		s.UniqueItems = d.boolean(v, p, k)
	case KwContains:
		s.Contains = d.schema(v, p, k, depth+1)
	case KwMaxProperties:
		s.MaxProperties = d.count(v, p, k)
	case KwMinProperties:
		s.MinProperties = d.count(v, p, k)
	case KwRequired:
		s.Required = d.names(v, p, k)
	case KwProperties:
		s.Properties = d.schemaMap(v, p, k, depth)
	case KwPatternProperties:
		s.PatternProperties = d.schemaMap(v, p, k, depth)
	case KwDefinitions:
		s.Definitions = d.schemaMap(v, p, k, depth)
	case KwPropertyNames:
		s.PropertyNames = d.schema(v, p, k, depth+1)
	case KwDependencies:
		s.Dependencies = d.dependencies(v, p, depth)
	case KwConst:
		s.Const = Ptr(v)
	case KwEnum:
		if arr, ok := v.AsArray(); !ok {
			d.mismatch(p, k, "array", v)
		} else if ne, err := NonEmptyFrom(arr); err != nil {
			d.fail(p, schemadoc.CodeTooSmall, map[string]any{"keyword": k, "reason": "must not be empty"})
		} else {
			s.Enum = ne
		}
	case KwType:
		s.Type = d.typeSpec(v, p)
	case KwIf:
		s.If = d.schema(v, p, k, depth+1)
	case KwThen:
		s.Then = d.schema(v, p, k, depth+1)
	case KwElse:
		s.Else = d.schema(v, p, k, depth+1)
	case KwAllOf:
		s.AllOf = d.schemaList(v, p, k, depth)
	case KwAnyOf:
		s.AnyOf = d.schemaList(v, p, k, depth)
	case KwOneOf:
		s.OneOf = d.schemaList(v, p, k, depth)
	case KwNot:
		s.Not = d.schema(v, p, k, depth+1)
	case KwAdditionalProperties, kwAdditionalPropertiesLegacy, KwReadOnly, kwReadOnlyLegacy:
		// resolved together with their legacy spelling once all members are seen
	default:
		switch d.opt.Unknown {
		case schemadoc.UnknownStrict:
			d.fail(p, schemadoc.CodeUnknownKeyword, map[string]any{"keyword": k})
		case schemadoc.UnknownStrip:
		default:
			return true
		}
	}
	return false
}

// alias picks the value of a keyword that may also appear under a legacy
// spelling. Using the legacy spelling is a warning; using both with different
// values is a conflict.
func (d *decoder) alias(obj *schemadoc.Object, p schemadoc.Path, canonical, legacy string) (schemadoc.Value, schemadoc.Path, bool) {
	cv, hasCanonical := obj.Get(canonical)
	lv, hasLegacy := obj.Get(legacy)
	if hasLegacy {
		if hasCanonical && !schemadoc.Equal(cv, lv) {
			d.fail(p.Field(legacy), schemadoc.CodeConflict, map[string]any{"keyword": legacy, "other": canonical})
			return schemadoc.Value{}, p, false
		}
		d.diag.add(p.Field(legacy).Issue(CodeLegacyKeyword, map[string]any{"keyword": legacy, "other": canonical}))
	}
	switch {
	case hasCanonical:
		return cv, p.Field(canonical), true
	case hasLegacy:
		return lv, p.Field(legacy), true
	}
	return schemadoc.Value{}, p, false
}

func (d *decoder) str(v schemadoc.Value, p schemadoc.Path, kw string) *string {
	s, ok := v.AsString()
	if !ok {
		d.mismatch(p, kw, "string", v)
		return nil
	}
	return &s
}

func (d *decoder) boolean(v schemadoc.Value, p schemadoc.Path, kw string) *bool {
	b, ok := v.AsBool()
	if !ok {
		d.mismatch(p, kw, "boolean", v)
		return nil
	}
	return &b
}

// number keeps the literal as written; 1e400 is as valid as 1.
func (d *decoder) number(v schemadoc.Value, p schemadoc.Path, kw string) *schemadoc.Value {
	if v.Kind() != schemadoc.KindNumber {
		d.mismatch(p, kw, "number", v)
		return nil
	}
	return &v
}

// count decodes a non-negative integer. Integral literals such as 1.0 are
// accepted.
func (d *decoder) count(v schemadoc.Value, p schemadoc.Path, kw string) *int {
	if v.Kind() != schemadoc.KindNumber {
		d.mismatch(p, kw, "integer", v)
		return nil
	}
	lit, _ := v.NumberLiteral()
	i, ok := v.AsInt64()
	if !ok || int64(int(i)) != i {
		d.fail(p, schemadoc.CodeNotInteger, map[string]any{"keyword": kw, "got": lit})
		return nil
	}
	if i < 0 {
		d.fail(p, schemadoc.CodeTooSmall, map[string]any{"keyword": kw, "reason": "must be non-negative, got " + lit})
		return nil
	}
	n := int(i)
	return &n
}

// names decodes an array of unique strings.
func (d *decoder) names(v schemadoc.Value, p schemadoc.Path, kw string) []string {
	arr, ok := v.AsArray()
	if !ok {
		d.mismatch(p, kw, "array", v)
		return nil
	}
	out := make([]string, 0, len(arr))
	seen := make(map[string]struct{}, len(arr))
	bad := false
	for i, e := range arr {
		s, ok := e.AsString()
		if !ok {
			d.mismatch(p.Index(i), kw, "string", e)
			bad = true
			continue
		}
		if _, dup := seen[s]; dup {
			d.fail(p.Index(i), schemadoc.CodeUniqueness, map[string]any{"keyword": kw, "got": strconv.Quote(s)})
			bad = true
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	if bad {
		return nil
	}
	return out
}

func (d *decoder) items(v schemadoc.Value, p schemadoc.Path, depth int) *Items {
	switch v.Kind() {
	case schemadoc.KindObject:
		if s := d.schema(v, p, KwItems, depth+1); s != nil {
			return ItemsSchema(s)
		}
	case schemadoc.KindArray:
		arr, _ := v.AsArray()
		tuple := make([]*Schema, len(arr))
		for i, e := range arr {
			tuple[i] = d.schema(e, p.Index(i), KwItems, depth+1)
		}
		return &Items{tuple: true, schemas: tuple}
	default:
		d.mismatch(p, KwItems, "object or array", v)
	}
	return nil
}

func (d *decoder) boolOrSchema(v schemadoc.Value, p schemadoc.Path, kw string, depth int) *BoolOrSchema {
	switch v.Kind() {
	case schemadoc.KindBool:
		b, _ := v.AsBool()
		return Flag(b)
	case schemadoc.KindObject:
		if s := d.schema(v, p, kw, depth+1); s != nil {
			return SubSchema(s)
		}
	default:
		d.mismatch(p, kw, "boolean or object", v)
	}
	return nil
}

func (d *decoder) schemaMap(v schemadoc.Value, p schemadoc.Path, kw string, depth int) *SchemaMap {
	obj, ok := v.AsObject()
	if !ok {
		d.mismatch(p, kw, "object", v)
		return nil
	}
	m := NewSchemaMap()
	obj.Range(func(name string, e schemadoc.Value) bool {
		m.Set(name, d.schema(e, p.Field(name), kw, depth+1))
		return !d.stopped()
	})
	return m
}

func (d *decoder) schemaList(v schemadoc.Value, p schemadoc.Path, kw string, depth int) *NonEmpty[*Schema] {
	arr, ok := v.AsArray()
	if !ok {
		d.mismatch(p, kw, "array", v)
		return nil
	}
	if len(arr) == 0 {
		d.fail(p, schemadoc.CodeTooSmall, map[string]any{"keyword": kw, "reason": "must not be empty"})
		return nil
	}
	out := make([]*Schema, len(arr))
	for i, e := range arr {
		out[i] = d.schema(e, p.Index(i), kw, depth+1)
	}
	return NewNonEmpty(out[0], out[1:]...)
}

func (d *decoder) dependencies(v schemadoc.Value, p schemadoc.Path, depth int) *DependencyMap {
	obj, ok := v.AsObject()
	if !ok {
		d.mismatch(p, KwDependencies, "object", v)
		return nil
	}
	m := NewDependencyMap()
	obj.Range(func(name string, e schemadoc.Value) bool {
		ep := p.Field(name)
		switch e.Kind() {
		case schemadoc.KindObject:
			m.Set(name, DependsOnSchema(d.schema(e, ep, KwDependencies, depth+1)))
		case schemadoc.KindArray:
			if names := d.names(e, ep, KwDependencies); names != nil {
				m.Set(name, DependsOnProperties(names...))
			}
		default:
			d.mismatch(ep, KwDependencies, "object or array", e)
		}
		return !d.stopped()
	})
	return m
}

func (d *decoder) typeSpec(v schemadoc.Value, p schemadoc.Path) *TypeSpec {
	switch v.Kind() {
	case schemadoc.KindString:
		name, _ := v.AsString()
		t, err := ParseSimpleType(name)
		if err != nil {
			d.fail(p, schemadoc.CodeInvalidEnum, map[string]any{"keyword": KwType, "got": strconv.Quote(name)})
			return nil
		}
		return TypeOf(t)
	case schemadoc.KindArray:
		arr, _ := v.AsArray()
		if len(arr) == 0 {
			d.fail(p, schemadoc.CodeTooSmall, map[string]any{"keyword": KwType, "reason": "must not be empty"})
			return nil
		}
		types := make([]SimpleType, 0, len(arr))
		bad := false
		for i, e := range arr {
			name, ok := e.AsString()
			if !ok {
				d.mismatch(p.Index(i), KwType, "string", e)
				bad = true
				continue
			}
			t, err := ParseSimpleType(name)
			if err != nil {
				d.fail(p.Index(i), schemadoc.CodeInvalidEnum, map[string]any{"keyword": KwType, "got": strconv.Quote(name)})
				bad = true
				continue
			}
			if slices.Contains(types, t) {
				d.fail(p.Index(i), schemadoc.CodeUniqueness, map[string]any{"keyword": KwType, "got": strconv.Quote(name)})
				bad = true
				continue
			}
			types = append(types, t)
		}
		if bad {
			return nil
		}
		return &TypeSpec{list: true, first: types[0], rest: types[1:]}
	default:
		d.mismatch(p, KwType, "string or array", v)
		return nil
	}
}
