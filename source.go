package schemadoc

import (
	"io"
	"sync"

	eng "github.com/reoring/schemadoc/internal/engine"
	jsonsrc "github.com/reoring/schemadoc/source/json"
)

// TokenKind enumerates JSON token kinds. The order mirrors engine.Kind.
type TokenKind int

const (
	TokenBeginObject TokenKind = iota
	TokenEndObject
	TokenBeginArray
	TokenEndArray
	TokenKey
	TokenString
	TokenNumber
	TokenBool
	TokenNull
)

// Token describes a token in the input stream. Offset records the byte position
// when known (-1 otherwise); Line/Column are set by line-oriented sources.
type Token struct {
	Kind   TokenKind
	String string // Stored for key/string tokens.
	Number string // Number literal as it appeared in the input.
	Bool   bool
	Offset int64
	Line   int
	Column int
}

// Source abstracts over polymorphic input sources.
type Source interface {
	NextToken() (Token, error)
	Location() int64 // byte offset; -1 if unknown
}

// JSONDriver converts JSON input into a Source via a pluggable SPI. The default
// implementation is based on encoding/json and may be swapped with SetJSONDriver
// (importing github.com/reoring/schemadoc/source installs go-json).
type JSONDriver interface {
	NewReader(r io.Reader) Source
	NewBytes(b []byte) Source
	Name() string
}

var (
	jsonDriverMu      sync.RWMutex
	currentJSONDriver JSONDriver = defaultJSONDriver{}
)

// SetJSONDriver replaces the global JSON driver; nil values are ignored.
func SetJSONDriver(d JSONDriver) {
	if d == nil {
		return
	}
	jsonDriverMu.Lock()
	currentJSONDriver = d
	jsonDriverMu.Unlock()
}

// UseDefaultJSONDriver restores the default encoding/json-backed driver.
func UseDefaultJSONDriver() {
	jsonDriverMu.Lock()
	currentJSONDriver = defaultJSONDriver{}
	jsonDriverMu.Unlock()
}

// CurrentJSONDriver reports the driver used by JSONBytes and JSONReader.
func CurrentJSONDriver() JSONDriver {
	jsonDriverMu.RLock()
	d := currentJSONDriver
	jsonDriverMu.RUnlock()
	return d
}

type defaultJSONDriver struct{}

func (defaultJSONDriver) NewReader(r io.Reader) Source {
	return SourceFromEngine(jsonsrc.NewReader(r))
}
func (defaultJSONDriver) NewBytes(b []byte) Source {
	return SourceFromEngine(jsonsrc.NewBytes(b))
}
func (defaultJSONDriver) Name() string { return "encoding/json" }

// JSONReader wraps an io.Reader as a JSON Source.
func JSONReader(r io.Reader) Source { return CurrentJSONDriver().NewReader(r) }

// JSONBytes wraps a byte slice as a JSON Source.
func JSONBytes(b []byte) Source { return CurrentJSONDriver().NewBytes(b) }

// SourceFromEngine wraps an engine.TokenSource as a schemadoc.Source. Driver
// packages use it so they never depend on the public Token type.
func SourceFromEngine(inner eng.TokenSource) Source {
	return &engineSourceAdapter{inner: inner}
}

// enforce wraps a Source with the depth, size and duplicate-key checks of opt.
// Non-fatal issues are forwarded to sink when it is non-nil.
func enforce(s Source, opt ParseOpt, sink func(Issue)) eng.TokenSource {
	var forward func(eng.SimpleIssue)
	if sink != nil {
		forward = func(si eng.SimpleIssue) { sink(issueFromEngine(si)) }
	}
	return eng.WrapWithEnforcement(engineTokenSource(s), eng.EnforceOptions{
		OnDuplicate: toEngineDup(opt.Strictness.OnDuplicateKey),
		MaxDepth:    opt.effectiveMaxDepth(),
		MaxBytes:    opt.MaxBytes,
		IssueSink:   forward,
		FailFast:    opt.FailFast,
	})
}

type engineSourceAdapter struct {
	inner eng.TokenSource
}

func (s *engineSourceAdapter) NextToken() (Token, error) {
	t, err := s.inner.NextToken()
	if err != nil {
		return Token{}, err
	}
	return Token{Kind: TokenKind(t.Kind), String: t.String, Number: t.Number, Bool: t.Bool, Offset: t.Offset, Line: t.Line, Column: t.Column}, nil
}
func (s *engineSourceAdapter) Location() int64 { return s.inner.Location() }

// tokenSourceAdapter exposes a user-provided Source to the engine.
type tokenSourceAdapter struct{ inner Source }

func (a *tokenSourceAdapter) NextToken() (eng.Token, error) {
	t, err := a.inner.NextToken()
	if err != nil {
		return eng.Token{}, err
	}
	return eng.Token{Kind: eng.Kind(t.Kind), String: t.String, Number: t.Number, Bool: t.Bool, Offset: t.Offset, Line: t.Line, Column: t.Column}, nil
}

func (a *tokenSourceAdapter) Location() int64 { return a.inner.Location() }

func engineTokenSource(s Source) eng.TokenSource {
	if ea, ok := s.(*engineSourceAdapter); ok {
		return ea.inner
	}
	return &tokenSourceAdapter{inner: s}
}
