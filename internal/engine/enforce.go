package engine

import (
	"strconv"
	"strings"
)

// Enforcement wrapper for TokenSource to apply duplicate key handling,
// max depth checks, and max bytes truncation in a streaming fashion.

// EnforceOptions controls runtime enforcement behavior.
type EnforceOptions struct {
	OnDuplicate DuplicateStrictness
	// MaxDepth limits container nesting; 0 or less disables the check.
	MaxDepth int
	MaxBytes int64
	// IssueSink receives non-fatal issues (duplicate keys in warn mode).
	IssueSink func(SimpleIssue)
	// FailFast turns every reported issue into an error.
	FailFast bool
}

type containerKind int

const (
	kindObject containerKind = iota
	kindArray
)

type dupFrame struct {
	kind         containerKind
	keys         map[string]struct{}
	expectingKey bool
	path         string
	nextIndex    int
	pendingKey   string
}

// IssueError is a lightweight error carrying a SimpleIssue.
type IssueError struct{ SimpleIssue }

func (e IssueError) Error() string { return e.SimpleIssue.Message }

// WrapWithEnforcement returns a TokenSource that enforces duplicate key policy,
// maximum nesting depth, and maximum consumed bytes.
func WrapWithEnforcement(inner TokenSource, opt EnforceOptions) TokenSource {
	return &enforcingTokenSource{inner: inner, opt: opt}
}

type enforcingTokenSource struct {
	inner TokenSource
	opt   EnforceOptions
	stack []dupFrame
}

func (e *enforcingTokenSource) NextToken() (Token, error) {
	tok, err := e.inner.NextToken()
	if err != nil {
		return Token{}, err
	}

	path := e.pathFor(tok)
	at := func(code, msg string) SimpleIssue {
		return SimpleIssue{Code: code, Path: path, Message: msg, Offset: tok.Offset, Line: tok.Line, Column: tok.Column}
	}

	switch tok.Kind {
	case KindBeginObject, KindBeginArray:
		f := dupFrame{kind: kindArray, path: path}
		if tok.Kind == KindBeginObject {
			f = dupFrame{kind: kindObject, keys: make(map[string]struct{}), expectingKey: true, path: path}
		}
		e.stack = append(e.stack, f)
		if e.opt.MaxDepth > 0 && len(e.stack) > e.opt.MaxDepth {
			return Token{}, IssueError{at("max_depth", "max depth "+strconv.Itoa(e.opt.MaxDepth)+" exceeded")}
		}
	case KindEndObject, KindEndArray:
		if n := len(e.stack); n > 0 {
			e.stack = e.stack[:n-1]
		}
		e.memberDone()
	case KindKey:
		if n := len(e.stack); n > 0 {
			top := &e.stack[n-1]
			if top.kind == kindObject && top.expectingKey {
				if _, dup := top.keys[tok.String]; dup && e.opt.OnDuplicate != DupIgnore {
					si := at("duplicate_key", "key '"+tok.String+"' duplicated")
					if e.opt.OnDuplicate == DupError || e.opt.FailFast {
						return Token{}, IssueError{si}
					}
					if e.opt.IssueSink != nil {
						e.opt.IssueSink(si)
					}
				}
				top.keys[tok.String] = struct{}{}
				top.expectingKey = false
				top.pendingKey = tok.String
			}
		}
	case KindString, KindNumber, KindBool, KindNull:
		e.memberDone()
	}

	if e.opt.MaxBytes > 0 {
		if off := e.Location(); off >= 0 && off > e.opt.MaxBytes {
			return Token{}, IssueError{at("truncated", "max bytes exceeded")}
		}
	}

	return tok, nil
}

func (e *enforcingTokenSource) memberDone() {
	if n := len(e.stack); n > 0 {
		top := &e.stack[n-1]
		if top.kind == kindObject && !top.expectingKey {
			top.expectingKey = true
			top.pendingKey = ""
		}
	}
}

// pathFor computes the JSON Pointer of the value (or key) the token belongs to.
func (e *enforcingTokenSource) pathFor(tok Token) string {
	if len(e.stack) == 0 {
		return ""
	}
	top := &e.stack[len(e.stack)-1]
	switch tok.Kind {
	case KindKey:
		return JoinPointer(top.path, tok.String)
	case KindEndObject, KindEndArray:
		return top.path
	}
	if top.kind == kindArray {
		p := JoinPointer(top.path, strconv.Itoa(top.nextIndex))
		top.nextIndex++
		return p
	}
	if !top.expectingKey {
		return JoinPointer(top.path, top.pendingKey)
	}
	return top.path
}

func (e *enforcingTokenSource) Location() int64 { return e.inner.Location() }

var jsonPointerEscaper = strings.NewReplacer("~", "~0", "/", "~1")

// EscapePointerToken escapes a single reference token per RFC 6901.
func EscapePointerToken(s string) string {
	return jsonPointerEscaper.Replace(s)
}

// JoinPointer appends an escaped reference token to base.
func JoinPointer(base, token string) string {
	return base + "/" + EscapePointerToken(token)
}
