package schemadoc

import "slices"

// Member is a single key/value pair of an Object.
type Member struct {
	Key   string
	Value Value
}

// Object is an immutable JSON object with unique keys. Members keep insertion
// order for serialization; equality ignores order.
type Object struct {
	members []Member
	index   map[string]int
}

// NewObject builds an object from members. When a key repeats, the key keeps
// its first position and takes the last value (last-key-wins).
func NewObject(members ...Member) *Object {
	o := &Object{members: make([]Member, 0, len(members)), index: make(map[string]int, len(members))}
	for _, m := range members {
		o.put(m.Key, m.Value)
	}
	return o
}

// put is only used while an object is under construction.
func (o *Object) put(k string, v Value) (replaced bool) {
	if i, ok := o.index[k]; ok {
		o.members[i].Value = v
		return true
	}
	o.index[k] = len(o.members)
	o.members = append(o.members, Member{Key: k, Value: v})
	return false
}

// Len returns the number of members; nil objects are empty.
func (o *Object) Len() int {
	if o == nil {
		return 0
	}
	return len(o.members)
}

// Get returns the value stored under k.
func (o *Object) Get(k string) (Value, bool) {
	if o == nil {
		return Value{}, false
	}
	i, ok := o.index[k]
	if !ok {
		return Value{}, false
	}
	return o.members[i].Value, true
}

// Has reports whether k is present.
func (o *Object) Has(k string) bool {
	_, ok := o.Get(k)
	return ok
}

// Keys returns the member keys in insertion order.
func (o *Object) Keys() []string {
	if o == nil {
		return nil
	}
	keys := make([]string, len(o.members))
	for i, m := range o.members {
		keys[i] = m.Key
	}
	return keys
}

// Members returns a copy of the members in insertion order.
func (o *Object) Members() []Member {
	if o == nil {
		return nil
	}
	return slices.Clone(o.members)
}

// Range calls fn for each member in order until fn returns false.
func (o *Object) Range(fn func(k string, v Value) bool) {
	if o == nil {
		return
	}
	for _, m := range o.members {
		if !fn(m.Key, m.Value) {
			return
		}
	}
}

// With returns a copy of o with k set to v. An existing key keeps its position.
func (o *Object) With(k string, v Value) *Object {
	n := NewObject(o.Members()...)
	n.put(k, v)
	return n
}

// Without returns a copy of o without k.
func (o *Object) Without(k string) *Object {
	n := NewObject()
	o.Range(func(key string, v Value) bool {
		if key != k {
			n.put(key, v)
		}
		return true
	})
	return n
}
