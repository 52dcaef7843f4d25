package schemadoc

import (
	"bytes"
	"context"

	gojson "github.com/goccy/go-json"
)

// AppendJSON appends the compact JSON encoding of v to dst. Object members are
// written in insertion order and number literals are written verbatim. The
// encoder is iterative, so depth is bounded only by memory.
func AppendJSON(dst []byte, v Value) ([]byte, error) {
	type frame struct {
		v Value
		i int
	}
	var err error
	open := func(dst []byte, v Value, stack []frame) ([]byte, []frame) {
		switch v.kind {
		case KindArray:
			return append(dst, '['), append(stack, frame{v: v})
		case KindObject:
			return append(dst, '{'), append(stack, frame{v: v})
		}
		dst, err = appendScalar(dst, v)
		return dst, stack
	}

	var stack []frame
	dst, stack = open(dst, v, stack)
	for len(stack) > 0 && err == nil {
		top := &stack[len(stack)-1]
		if top.i >= top.v.Len() {
			if top.v.kind == KindArray {
				dst = append(dst, ']')
			} else {
				dst = append(dst, '}')
			}
			stack = stack[:len(stack)-1]
			continue
		}
		if top.i > 0 {
			dst = append(dst, ',')
		}
		var child Value
		if top.v.kind == KindArray {
			child = top.v.arr[top.i]
		} else {
			m := top.v.obj.members[top.i]
			if dst, err = appendString(dst, m.Key); err != nil {
				break
			}
			dst = append(dst, ':')
			child = m.Value
		}
		top.i++
		dst, stack = open(dst, child, stack)
	}
	return dst, err
}

func appendScalar(dst []byte, v Value) ([]byte, error) {
	switch v.kind {
	case KindNull:
		return append(dst, "null"...), nil
	case KindBool:
		if v.b {
			return append(dst, "true"...), nil
		}
		return append(dst, "false"...), nil
	case KindNumber:
		return append(dst, v.s...), nil
	default:
		return appendString(dst, v.s)
	}
}

func appendString(dst []byte, s string) ([]byte, error) {
	b, err := gojson.MarshalNoEscape(s)
	if err != nil {
		return dst, err
	}
	return append(dst, b...), nil
}

// MarshalJSON implements json.Marshaler.
func (v Value) MarshalJSON() ([]byte, error) { return AppendJSON(nil, v) }

// MarshalIndent is like MarshalJSON but applies indentation.
func MarshalIndent(v Value, prefix, indent string) ([]byte, error) {
	compact, err := AppendJSON(nil, v)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := gojson.Indent(&buf, compact, prefix, indent); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// UnmarshalJSON implements json.Unmarshaler using the default ParseOpt
// (last-key-wins for duplicate keys, DefaultMaxDepth).
func (v *Value) UnmarshalJSON(data []byte) error {
	parsed, err := DecodeValue(context.Background(), JSONBytes(data))
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}
