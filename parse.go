package schemadoc

import (
	"bytes"
	"context"
	"errors"
	"io"

	eng "github.com/reoring/schemadoc/internal/engine"
)

// ctxCheckEvery controls how often the decoder polls ctx for cancellation.
const ctxCheckEvery = 1024

// DecodeValue reads exactly one JSON value from src. Duplicate keys, nesting
// depth and input size are enforced according to opts (the last ParseOpt
// wins). Failures are returned as Issues.
func DecodeValue(ctx context.Context, src Source, opts ...ParseOpt) (Value, error) {
	v, _, err := DecodeValueWithWarnings(ctx, src, opts...)
	return v, err
}

// DecodeValueWithWarnings is like DecodeValue and also returns non-fatal
// issues, such as duplicate keys under Strictness{OnDuplicateKey: Warn}.
func DecodeValueWithWarnings(ctx context.Context, src Source, opts ...ParseOpt) (Value, Issues, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if src == nil {
		return Value{}, nil, AppendIssues(nil, Issue{Code: CodeParseError, Message: "nil source", Offset: -1})
	}
	opt := lastOpt(opts)
	var warnings Issues
	ts := enforce(src, opt, func(is Issue) { warnings = AppendIssues(warnings, is) })
	v, err := decodeTokens(ctx, ts)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil && errors.Is(err, ctxErr) {
			return Value{}, warnings, err
		}
		iss := toIssues(err)
		for i := range iss {
			if iss[i].Code == CodeParseError && iss[i].Offset < 0 {
				iss[i].Offset = src.Location()
			}
		}
		return Value{}, warnings, iss
	}
	return v, warnings, nil
}

// ParseJSON decodes a complete JSON document held in memory.
func ParseJSON(data []byte, opts ...ParseOpt) (Value, error) {
	return DecodeValue(context.Background(), JSONBytes(data), opts...)
}

// ParseJSONReader decodes a JSON document from r. When MaxBytes is set the
// size cap is enforced up front.
func ParseJSONReader(ctx context.Context, r io.Reader, opts ...ParseOpt) (Value, error) {
	opt := lastOpt(opts)
	if opt.MaxBytes > 0 {
		data, err := io.ReadAll(io.LimitReader(r, opt.MaxBytes+1))
		if err != nil {
			return Value{}, AppendIssues(nil, Issue{Code: CodeParseError, Message: err.Error(), Cause: err, Offset: -1})
		}
		if int64(len(data)) > opt.MaxBytes {
			return Value{}, AppendIssues(nil, Issue{Code: CodeTruncated, Message: "max bytes exceeded", Offset: opt.MaxBytes})
		}
		return DecodeValue(ctx, JSONReader(bytes.NewReader(data)), opts...)
	}
	return DecodeValue(ctx, JSONReader(r), opts...)
}

var (
	errUnexpectedEnd = errors.New("unexpected end of input")
	errTrailingData  = errors.New("trailing data after top-level value")
	errEmptyInput    = errors.New("empty input")
)

type buildFrame struct {
	object bool
	arr    []Value
	obj    *Object
	key    string
}

// decodeTokens assembles a Value from a token stream using an explicit stack.
func decodeTokens(ctx context.Context, ts eng.TokenSource) (Value, error) {
	var (
		stack []buildFrame
		root  Value
		done  bool
		n     int
	)
	emit := func(v Value) {
		if len(stack) == 0 {
			root, done = v, true
			return
		}
		top := &stack[len(stack)-1]
		if top.object {
			top.obj.put(top.key, v)
			return
		}
		top.arr = append(top.arr, v)
	}

	for !done {
		if n++; n%ctxCheckEvery == 0 {
			if err := ctx.Err(); err != nil {
				return Value{}, err
			}
		}
		tok, err := ts.NextToken()
		if err != nil {
			if errors.Is(err, io.EOF) {
				if n == 1 {
					return Value{}, errEmptyInput
				}
				return Value{}, errUnexpectedEnd
			}
			return Value{}, err
		}
		switch tok.Kind {
		case eng.KindBeginObject:
			stack = append(stack, buildFrame{object: true, obj: NewObject()})
		case eng.KindBeginArray:
			stack = append(stack, buildFrame{arr: []Value{}})
		case eng.KindKey:
			if len(stack) == 0 || !stack[len(stack)-1].object {
				return Value{}, errors.New("object key outside of an object")
			}
			stack[len(stack)-1].key = tok.String
		case eng.KindEndObject, eng.KindEndArray:
			if len(stack) == 0 {
				return Value{}, errors.New("unbalanced container end")
			}
			f := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if f.object {
				emit(Value{kind: KindObject, obj: f.obj})
			} else {
				emit(Value{kind: KindArray, arr: f.arr})
			}
		case eng.KindString:
			emit(String(tok.String))
		case eng.KindNumber:
			nv, err := Number(tok.Number)
			if err != nil {
				return Value{}, errors.New("invalid number literal " + tok.Number)
			}
			emit(nv)
		case eng.KindBool:
			emit(Bool(tok.Bool))
		case eng.KindNull:
			emit(Null())
		}
	}

	if _, err := ts.NextToken(); !errors.Is(err, io.EOF) {
		if err != nil {
			return Value{}, err
		}
		return Value{}, errTrailingData
	}
	return root, nil
}
