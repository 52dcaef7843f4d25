package jsonschema

import (
	"errors"
	"slices"
)

// ErrEmpty is returned when a non-empty sequence is built from zero elements.
var ErrEmpty = errors.New("jsonschema: sequence must not be empty")

// NonEmpty is an ordered sequence holding at least one element. It backs
// enum, allOf, anyOf and oneOf, where an empty list has no meaning.
type NonEmpty[T any] struct {
	first T
	rest  []T
}

// NewNonEmpty builds a sequence from its first element and the remainder.
func NewNonEmpty[T any](first T, rest ...T) *NonEmpty[T] {
	return &NonEmpty[T]{first: first, rest: slices.Clone(rest)}
}

// NonEmptyFrom builds a sequence from a slice, failing with ErrEmpty when the
// slice has no elements.
func NonEmptyFrom[T any](items []T) (*NonEmpty[T], error) {
	if len(items) == 0 {
		return nil, ErrEmpty
	}
	return NewNonEmpty(items[0], items[1:]...), nil
}

// Len is always at least 1.
func (n *NonEmpty[T]) Len() int { return 1 + len(n.rest) }

// First returns the first element.
func (n *NonEmpty[T]) First() T { return n.first }

// At returns element i. It panics when i is out of range, like slice indexing.
func (n *NonEmpty[T]) At(i int) T {
	if i == 0 {
		return n.first
	}
	return n.rest[i-1]
}

// Slice returns a copy of the elements.
func (n *NonEmpty[T]) Slice() []T { return append([]T{n.first}, n.rest...) }

// Items is the value of the items keyword: one schema applied to every
// element, or a tuple of positional schemas. The arm is kept on round trip.
type Items struct {
	tuple   bool
	schema  *Schema
	schemas []*Schema
}

// ItemsSchema builds the single-schema arm.
func ItemsSchema(s *Schema) *Items { return &Items{schema: s} }

// ItemsTuple builds the tuple arm. An empty tuple is allowed.
func ItemsTuple(schemas ...*Schema) *Items {
	return &Items{tuple: true, schemas: slices.Clone(schemas)}
}

// IsTuple reports whether the tuple arm was used.
func (it *Items) IsTuple() bool { return it.tuple }

// Schema returns the single-schema arm.
func (it *Items) Schema() (*Schema, bool) { return it.schema, !it.tuple }

// Tuple returns a copy of the positional schemas.
func (it *Items) Tuple() ([]*Schema, bool) {
	if !it.tuple {
		return nil, false
	}
	return slices.Clone(it.schemas), true
}

// BoolOrSchema is the value of additionalItems and additionalProperties:
// a plain allow/deny flag or a schema.
type BoolOrSchema struct {
	isBool bool
	flag   bool
	schema *Schema
}

// Flag builds the boolean arm.
func Flag(allow bool) *BoolOrSchema { return &BoolOrSchema{isBool: true, flag: allow} }

// SubSchema builds the schema arm.
func SubSchema(s *Schema) *BoolOrSchema { return &BoolOrSchema{schema: s} }

// Bool returns the boolean arm.
func (b *BoolOrSchema) Bool() (bool, bool) { return b.flag, b.isBool }

// Schema returns the schema arm.
func (b *BoolOrSchema) Schema() (*Schema, bool) { return b.schema, !b.isBool }

// Dependency is one entry of the dependencies keyword: either a schema the
// instance must also satisfy, or names of properties that must be present.
type Dependency struct {
	props  bool
	schema *Schema
	names  []string
}

// DependsOnSchema builds the schema arm.
func DependsOnSchema(s *Schema) *Dependency { return &Dependency{schema: s} }

// DependsOnProperties builds the property-list arm. Names should be unique.
func DependsOnProperties(names ...string) *Dependency {
	return &Dependency{props: true, names: slices.Clone(names)}
}

// Schema returns the schema arm.
func (d *Dependency) Schema() (*Schema, bool) { return d.schema, !d.props }

// Properties returns a copy of the property-list arm.
func (d *Dependency) Properties() ([]string, bool) {
	if !d.props {
		return nil, false
	}
	if d.names == nil {
		return []string{}, true
	}
	return slices.Clone(d.names), true
}

// OrderedMap maps names to values and remembers insertion order, so that
// properties, patternProperties, definitions and dependencies keep the order
// of the source document.
type OrderedMap[V any] struct {
	keys []string
	m    map[string]V
}

// SchemaMap holds named subschemas.
type SchemaMap = OrderedMap[*Schema]

// DependencyMap holds the entries of the dependencies keyword.
type DependencyMap = OrderedMap[*Dependency]

// NewOrderedMap returns an empty map.
func NewOrderedMap[V any]() *OrderedMap[V] { return &OrderedMap[V]{m: map[string]V{}} }

// NewSchemaMap returns an empty SchemaMap.
func NewSchemaMap() *SchemaMap { return NewOrderedMap[*Schema]() }

// NewDependencyMap returns an empty DependencyMap.
func NewDependencyMap() *DependencyMap { return NewOrderedMap[*Dependency]() }

// Set adds or replaces an entry and returns the map for chaining. A replaced
// entry keeps its original position. Set is meant for construction; maps
// reachable from a shared schema should not be mutated.
func (o *OrderedMap[V]) Set(key string, v V) *OrderedMap[V] {
	if o.m == nil {
		o.m = map[string]V{}
	}
	if _, ok := o.m[key]; !ok {
		o.keys = append(o.keys, key)
	}
	o.m[key] = v
	return o
}

// Get returns the entry for key.
func (o *OrderedMap[V]) Get(key string) (V, bool) {
	if o == nil {
		var zero V
		return zero, false
	}
	v, ok := o.m[key]
	return v, ok
}

// Len returns the number of entries.
func (o *OrderedMap[V]) Len() int {
	if o == nil {
		return 0
	}
	return len(o.keys)
}

// Keys returns the keys in insertion order.
func (o *OrderedMap[V]) Keys() []string {
	if o == nil {
		return nil
	}
	return slices.Clone(o.keys)
}

// Range calls fn for each entry in order until fn returns false.
func (o *OrderedMap[V]) Range(fn func(key string, v V) bool) {
	if o == nil {
		return
	}
	for _, k := range o.keys {
		if !fn(k, o.m[k]) {
			return
		}
	}
}
