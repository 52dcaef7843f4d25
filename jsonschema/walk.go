package jsonschema

import (
	"errors"
	"fmt"
	"net/url"
	"slices"
	"strconv"

	"github.com/reoring/schemadoc"
)

// ErrNotFound is returned by Lookup when no subschema lives at the pointer.
var ErrNotFound = errors.New("jsonschema: no subschema at pointer")

// WalkFunc is called for every subschema with its JSON Pointer ("" for the
// root). Returning schemadoc.SkipChildren skips the subtree.
type WalkFunc func(ptr string, s *Schema) error

type child struct {
	tokens []string
	s      *Schema
}

// children lists the direct subschemas of s in canonical keyword order.
func children(s *Schema) []child {
	var out []child
	one := func(kw string, c *Schema) {
		if c != nil {
			out = append(out, child{[]string{kw}, c})
		}
	}
	list := func(kw string, cs []*Schema) {
		for i, c := range cs {
			if c != nil {
				out = append(out, child{[]string{kw, strconv.Itoa(i)}, c})
			}
		}
	}
	named := func(kw string, m *SchemaMap) {
		m.Range(func(name string, c *Schema) bool {
			if c != nil {
				out = append(out, child{[]string{kw, name}, c})
			}
			return true
		})
	}
	boolOr := func(kw string, b *BoolOrSchema) {
		if b != nil {
			if c, ok := b.Schema(); ok {
				one(kw, c)
			}
		}
	}
	nonEmpty := func(kw string, l *NonEmpty[*Schema]) {
		if l != nil {
			list(kw, l.Slice())
		}
	}

	if s.Items != nil {
		if c, ok := s.Items.Schema(); ok {
			one(KwItems, c)
		} else {
			list(KwItems, s.Items.schemas)
		}
	}
	boolOr(KwAdditionalItems, s.AdditionalItems)
	one(KwContains, s.Contains)
	named(KwProperties, s.Properties)
	named(KwPatternProperties, s.PatternProperties)
	boolOr(KwAdditionalProperties, s.AdditionalProperties)
	one(KwPropertyNames, s.PropertyNames)
	s.Dependencies.Range(func(name string, dep *Dependency) bool {
		if c, ok := dep.Schema(); ok && c != nil {
			out = append(out, child{[]string{KwDependencies, name}, c})
		}
		return true
	})
	named(KwDefinitions, s.Definitions)
	one(KwIf, s.If)
	one(KwThen, s.Then)
	one(KwElse, s.Else)
	nonEmpty(KwAllOf, s.AllOf)
	nonEmpty(KwAnyOf, s.AnyOf)
	nonEmpty(KwOneOf, s.OneOf)
	one(KwNot, s.Not)
	return out
}

// Walk visits root and every subschema below it in pre-order. The traversal
// uses an explicit stack.
func Walk(root *Schema, fn WalkFunc) error {
	return traverse(root, func(ptr string, s *Schema, _ string) error { return fn(ptr, s) })
}

// traverse walks like Walk and also passes the resolution base of each
// subschema: its own $id or the nearest enclosing one, resolved against the
// enclosing base.
func traverse(root *Schema, fn func(ptr string, s *Schema, base string) error) error {
	if root == nil {
		return nil
	}
	type item struct {
		path schemadoc.Path
		s    *Schema
		base string
	}
	stack := []item{{"", root, ""}}
	for len(stack) > 0 {
		it := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		base := it.base
		if it.s.ID != nil {
			base = resolveID(base, *it.s.ID)
		}
		if err := fn(string(it.path), it.s, base); err != nil {
			if errors.Is(err, schemadoc.SkipChildren) {
				continue
			}
			return err
		}
		cs := children(it.s)
		for i := len(cs) - 1; i >= 0; i-- {
			p := it.path
			for _, tok := range cs[i].tokens {
				p = p.Field(tok)
			}
			stack = append(stack, item{p, cs[i].s, base})
		}
	}
	return nil
}

func resolveID(base, id string) string {
	ref, err := url.Parse(id)
	if err != nil || base == "" {
		return id
	}
	b, err := url.Parse(base)
	if err != nil {
		return id
	}
	return b.ResolveReference(ref).String()
}

// Lookup returns the subschema addressed by a JSON Pointer relative to root,
// such as "/properties/a/items/0" or "/definitions/node". "" addresses
// root. It resolves structure only and never follows $ref.
func Lookup(root *Schema, ptr string) (*Schema, error) {
	tokens, err := schemadoc.ParsePointer(ptr)
	if err != nil {
		return nil, err
	}
	if root == nil {
		return nil, fmt.Errorf("%w %q", ErrNotFound, ptr)
	}
	cur := root
	for len(tokens) > 0 {
		next := -1
		cs := children(cur)
		for i, c := range cs {
			if len(c.tokens) <= len(tokens) && slices.Equal(c.tokens, tokens[:len(c.tokens)]) {
				next = i
				break
			}
		}
		if next < 0 {
			return nil, fmt.Errorf("%w %q", ErrNotFound, ptr)
		}
		tokens = tokens[len(cs[next].tokens):]
		cur = cs[next].s
	}
	return cur, nil
}

// RefSite is one occurrence of $ref.
type RefSite struct {
	// Pointer locates the schema holding the $ref ("" for the root).
	Pointer string
	// Ref is the raw $ref value.
	Ref string
	// Base is the resolved $id of the nearest enclosing schema that has one
	// (the schema itself included), or "" when there is none.
	Base string
}

// Refs lists every $ref under root in pre-order. References are reported,
// not resolved.
func Refs(root *Schema) []RefSite {
	var out []RefSite
	_ = traverse(root, func(ptr string, s *Schema, base string) error {
		if s.Ref != nil {
			out = append(out, RefSite{Pointer: ptr, Ref: *s.Ref, Base: base})
		}
		return nil
	})
	return out
}
