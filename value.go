package schemadoc

import (
	"errors"
	"math"
	"math/big"
	"slices"
	"strconv"
)

// Kind identifies which arm of the JSON value union a Value holds.
type Kind uint8

const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindArray
	KindObject
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "boolean"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	default:
		return "invalid"
	}
}

// Value is an immutable JSON value: string, number, boolean, null, an ordered
// array of values, or an object with unique string keys.
//
// The zero Value is JSON null. Absence is expressed by the holder (a nil
// *Value or a missing object member), never by a Value itself.
//
// Numbers keep the literal text they were built from so re-encoding a parsed
// document reproduces the input digits; comparison is numeric.
type Value struct {
	kind Kind
	b    bool
	s    string // string payload or number literal
	arr  []Value
	obj  *Object
}

// ErrInvalidNumber is returned for number literals outside the JSON grammar.
var ErrInvalidNumber = errors.New("schemadoc: invalid JSON number")

// Null returns the JSON null value.
func Null() Value { return Value{} }

// Bool wraps a boolean.
func Bool(b bool) Value { return Value{kind: KindBool, b: b} }

// String wraps a string.
func String(s string) Value { return Value{kind: KindString, s: s} }

// Int wraps an integer.
func Int(i int64) Value { return Value{kind: KindNumber, s: strconv.FormatInt(i, 10)} }

// Float wraps a finite float64. NaN and infinities have no JSON spelling.
func Float(f float64) (Value, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Value{}, ErrInvalidNumber
	}
	return Value{kind: KindNumber, s: strconv.FormatFloat(f, 'g', -1, 64)}, nil
}

// Number wraps a JSON number literal such as "1", "-0.5" or "6.02e23".
func Number(literal string) (Value, error) {
	if !validNumberLiteral(literal) {
		return Value{}, ErrInvalidNumber
	}
	return Value{kind: KindNumber, s: literal}, nil
}

// MustNumber is like Number but panics on an invalid literal. Intended for
// constants in tests and tables.
func MustNumber(literal string) Value {
	v, err := Number(literal)
	if err != nil {
		panic(err.Error() + ": " + strconv.Quote(literal))
	}
	return v
}

// Array builds an array value. The slice is copied.
func Array(elems ...Value) Value {
	return Value{kind: KindArray, arr: slices.Clone(elems)}
}

// ObjectValue wraps an object. A nil object is treated as empty.
func ObjectValue(o *Object) Value {
	if o == nil {
		o = NewObject()
	}
	return Value{kind: KindObject, obj: o}
}

// ObjectOf builds an object value from members (last duplicate wins).
func ObjectOf(members ...Member) Value { return ObjectValue(NewObject(members...)) }

// Kind reports the arm held by v.
func (v Value) Kind() Kind { return v.kind }

// IsNull reports whether v is JSON null.
func (v Value) IsNull() bool { return v.kind == KindNull }

// AsBool returns the boolean payload.
func (v Value) AsBool() (bool, bool) { return v.b, v.kind == KindBool }

// AsString returns the string payload.
func (v Value) AsString() (string, bool) {
	if v.kind != KindString {
		return "", false
	}
	return v.s, true
}

// NumberLiteral returns the number literal.
func (v Value) NumberLiteral() (string, bool) {
	if v.kind != KindNumber {
		return "", false
	}
	return v.s, true
}

// AsFloat64 converts a number to float64, possibly losing precision. Literals
// outside the float64 range report false.
func (v Value) AsFloat64() (float64, bool) {
	if v.kind != KindNumber {
		return 0, false
	}
	f, err := strconv.ParseFloat(v.s, 64)
	return f, err == nil
}

// AsInt64 returns the number when it is integral and fits in int64. Literals
// such as "1.0" and "2e3" count as integers.
func (v Value) AsInt64() (int64, bool) {
	r, ok := v.rat()
	if !ok || !r.IsInt() || !r.Num().IsInt64() {
		return 0, false
	}
	return r.Num().Int64(), true
}

func (v Value) rat() (*big.Rat, bool) {
	if v.kind != KindNumber {
		return nil, false
	}
	if exponentTooLarge(v.s) {
		if parseDecimal(v.s).sign() == 0 {
			return new(big.Rat), true
		}
		return nil, false
	}
	return new(big.Rat).SetString(v.s)
}

// maxRatExponent keeps exact arithmetic away from literals such as 1e999999999,
// which would otherwise allocate enormous integers.
const maxRatExponent = 4096

func exponentTooLarge(lit string) bool {
	for i := 0; i < len(lit); i++ {
		if lit[i] == 'e' || lit[i] == 'E' {
			exp, err := strconv.Atoi(lit[i+1:])
			return err != nil || exp > maxRatExponent || exp < -maxRatExponent
		}
	}
	return false
}

// Len returns the number of elements of an array or members of an object.
func (v Value) Len() int {
	switch v.kind {
	case KindArray:
		return len(v.arr)
	case KindObject:
		return v.obj.Len()
	}
	return 0
}

// Index returns the i-th array element.
func (v Value) Index(i int) (Value, bool) {
	if v.kind != KindArray || i < 0 || i >= len(v.arr) {
		return Value{}, false
	}
	return v.arr[i], true
}

// AsArray returns a copy of the array elements.
func (v Value) AsArray() ([]Value, bool) {
	if v.kind != KindArray {
		return nil, false
	}
	return slices.Clone(v.arr), true
}

// AsObject returns the object payload.
func (v Value) AsObject() (*Object, bool) {
	if v.kind != KindObject {
		return nil, false
	}
	return v.obj, true
}

// validNumberLiteral checks the RFC 8259 number grammar:
// -? (0 | [1-9][0-9]*) (. [0-9]+)? ([eE] [+-]? [0-9]+)?
func validNumberLiteral(s string) bool {
	i, n := 0, len(s)
	if i < n && s[i] == '-' {
		i++
	}
	if i >= n {
		return false
	}
	if s[i] == '0' {
		i++
	} else if s[i] >= '1' && s[i] <= '9' {
		for i < n && isDigit(s[i]) {
			i++
		}
	} else {
		return false
	}
	if i < n && s[i] == '.' {
		i++
		start := i
		for i < n && isDigit(s[i]) {
			i++
		}
		if i == start {
			return false
		}
	}
	if i < n && (s[i] == 'e' || s[i] == 'E') {
		i++
		if i < n && (s[i] == '+' || s[i] == '-') {
			i++
		}
		start := i
		for i < n && isDigit(s[i]) {
			i++
		}
		if i == start {
			return false
		}
	}
	return i == n
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }
