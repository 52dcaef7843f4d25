package schemadoc

import (
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"strconv"
)

// FromAny converts a generic Go value into a Value. Accepted inputs are nil,
// bool, string, all integer and float kinds, json.Number (and any number type
// with Int64 and String methods), []any, map[string]any, map[any]any with
// string keys (as produced by YAML decoders), Value, *Object and []Value. Map
// keys are sorted because Go maps carry no order.
func FromAny(v any) (Value, error) {
	return fromAny(v, 0)
}

func fromAny(v any, depth int) (Value, error) {
	if depth > DefaultMaxDepth {
		return Value{}, fmt.Errorf("schemadoc: value nested deeper than %d", DefaultMaxDepth)
	}
	switch t := v.(type) {
	case nil:
		return Null(), nil
	case Value:
		return t, nil
	case *Object:
		return ObjectValue(t), nil
	case bool:
		return Bool(t), nil
	case string:
		return String(t), nil
	case json.Number:
		return Number(string(t))
	case int:
		return Int(int64(t)), nil
	case int8:
		return Int(int64(t)), nil
	case int16:
		return Int(int64(t)), nil
	case int32:
		return Int(int64(t)), nil
	case int64:
		return Int(t), nil
	case uint:
		return Value{kind: KindNumber, s: strconv.FormatUint(uint64(t), 10)}, nil
	case uint8:
		return Int(int64(t)), nil
	case uint16:
		return Int(int64(t)), nil
	case uint32:
		return Int(int64(t)), nil
	case uint64:
		return Value{kind: KindNumber, s: strconv.FormatUint(t, 10)}, nil
	case float32:
		if math.IsNaN(float64(t)) || math.IsInf(float64(t), 0) {
			return Value{}, ErrInvalidNumber
		}
		return Value{kind: KindNumber, s: strconv.FormatFloat(float64(t), 'g', -1, 32)}, nil
	case float64:
		return Float(t)
	case interface {
		Int64() (int64, error)
		String() string
	}:
		return Number(t.String())
	case []Value:
		return Array(t...), nil
	case []any:
		elems := make([]Value, len(t))
		for i, e := range t {
			ev, err := fromAny(e, depth+1)
			if err != nil {
				return Value{}, err
			}
			elems[i] = ev
		}
		return Value{kind: KindArray, arr: elems}, nil
	case map[string]any:
		keys := make([]string, 0, len(t))
		for k := range t {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		o := NewObject()
		for _, k := range keys {
			ev, err := fromAny(t[k], depth+1)
			if err != nil {
				return Value{}, err
			}
			o.put(k, ev)
		}
		return ObjectValue(o), nil
	case map[any]any:
		m := make(map[string]any, len(t))
		for k, e := range t {
			ks, ok := k.(string)
			if !ok {
				return Value{}, fmt.Errorf("schemadoc: non-string object key %v (%T)", k, k)
			}
			m[ks] = e
		}
		return fromAny(m, depth)
	default:
		return Value{}, fmt.Errorf("schemadoc: unsupported type %T", v)
	}
}

// Any converts v into generic Go values: nil, bool, string, json.Number,
// []any and map[string]any. Object member order is lost.
func (v Value) Any() any {
	switch v.kind {
	case KindBool:
		return v.b
	case KindString:
		return v.s
	case KindNumber:
		return json.Number(v.s)
	case KindArray:
		out := make([]any, len(v.arr))
		for i, e := range v.arr {
			out[i] = e.Any()
		}
		return out
	case KindObject:
		out := make(map[string]any, v.obj.Len())
		v.obj.Range(func(k string, e Value) bool {
			out[k] = e.Any()
			return true
		})
		return out
	default:
		return nil
	}
}
