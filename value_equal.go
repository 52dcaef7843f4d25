package schemadoc

import (
	"errors"
	"strconv"

	eng "github.com/reoring/schemadoc/internal/engine"
)

// Equal reports structural equality. Numbers compare by value ("1" equals
// "1.0"), arrays by position, and objects by key set regardless of order.
// The comparison uses an explicit stack, so nesting depth is not limited by
// the goroutine stack.
func Equal(a, b Value) bool {
	type pair struct{ a, b Value }
	stack := []pair{{a, b}}
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		x, y := p.a, p.b
		if x.kind != y.kind {
			return false
		}
		switch x.kind {
		case KindNull:
		case KindBool:
			if x.b != y.b {
				return false
			}
		case KindString:
			if x.s != y.s {
				return false
			}
		case KindNumber:
			if !numbersEqual(x.s, y.s) {
				return false
			}
		case KindArray:
			if len(x.arr) != len(y.arr) {
				return false
			}
			for i := range x.arr {
				stack = append(stack, pair{x.arr[i], y.arr[i]})
			}
		case KindObject:
			if x.obj.Len() != y.obj.Len() {
				return false
			}
			ok := true
			x.obj.Range(func(k string, xv Value) bool {
				yv, found := y.obj.Get(k)
				if !found {
					ok = false
					return false
				}
				stack = append(stack, pair{xv, yv})
				return true
			})
			if !ok {
				return false
			}
		}
	}
	return true
}

// Equal is the method form of Equal.
func (v Value) Equal(o Value) bool { return Equal(v, o) }

// SkipChildren can be returned from a WalkFunc to skip the children of the
// current array or object.
var SkipChildren = errors.New("skip children")

// WalkFunc is called for every node of a Value tree with its JSON Pointer
// ("" for the root).
type WalkFunc func(ptr string, v Value) error

// Walk visits v and all nested values in document order (pre-order). It is
// iterative, so arbitrarily deep values are safe to traverse. Returning
// SkipChildren skips a subtree; any other error stops the walk and is returned.
func Walk(v Value, fn WalkFunc) error {
	type item struct {
		ptr string
		v   Value
	}
	stack := []item{{"", v}}
	for len(stack) > 0 {
		it := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if err := fn(it.ptr, it.v); err != nil {
			if errors.Is(err, SkipChildren) {
				continue
			}
			return err
		}
		switch it.v.kind {
		case KindArray:
			for i := len(it.v.arr) - 1; i >= 0; i-- {
				stack = append(stack, item{eng.JoinPointer(it.ptr, strconv.Itoa(i)), it.v.arr[i]})
			}
		case KindObject:
			ms := it.v.obj.members
			for i := len(ms) - 1; i >= 0; i-- {
				stack = append(stack, item{eng.JoinPointer(it.ptr, ms[i].Key), ms[i].Value})
			}
		}
	}
	return nil
}

// Depth returns the container nesting depth of v (0 for scalars).
func Depth(v Value) int {
	type item struct {
		v     Value
		depth int
	}
	maxDepth := 0
	stack := []item{{v, 0}}
	for len(stack) > 0 {
		it := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		switch it.v.kind {
		case KindArray:
			maxDepth = max(maxDepth, it.depth+1)
			for _, e := range it.v.arr {
				stack = append(stack, item{e, it.depth + 1})
			}
		case KindObject:
			maxDepth = max(maxDepth, it.depth+1)
			for _, m := range it.v.obj.members {
				stack = append(stack, item{m.Value, it.depth + 1})
			}
		}
	}
	return maxDepth
}
