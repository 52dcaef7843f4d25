// Package gojson provides a token driver backed by goccy/go-json. Import
// package source to make it the process-wide default.
package gojson

import (
	"bytes"
	"fmt"
	"io"
	"strconv"

	gojson "github.com/goccy/go-json"

	"github.com/reoring/schemadoc"
	eng "github.com/reoring/schemadoc/internal/engine"
)

// Driver returns a schemadoc.JSONDriver backed by goccy/go-json.
func Driver() schemadoc.JSONDriver { return driver{} }

type driver struct{}

func (driver) NewReader(r io.Reader) schemadoc.Source { return schemadoc.SourceFromEngine(NewReader(r)) }
func (driver) NewBytes(b []byte) schemadoc.Source { return schemadoc.SourceFromEngine(NewBytes(b)) }
func (driver) Name() string { return "go-json" }

// source reports no offsets; go-json does not expose its read position
// between tokens.
type source struct {
	dec *gojson.Decoder
	tok *eng.Tokenizer
}

// NewReader wraps an io.Reader into an engine.TokenSource using go-json.
func NewReader(r io.Reader) eng.TokenSource {
	dec := gojson.NewDecoder(r)
	dec.UseNumber()
	return &source{dec: dec, tok: eng.NewTokenizer(nil)}
}

// NewBytes wraps a byte slice into an engine.TokenSource using go-json.
func NewBytes(b []byte) eng.TokenSource { return NewReader(bytes.NewReader(b)) }

func (s *source) NextToken() (eng.Token, error) {
	tok, err := s.dec.Token()
	if err != nil {
		return eng.Token{}, err
	}
	switch v := tok.(type) {
	case gojson.Delim:
		return s.tok.Delim(rune(v)), nil
	case string:
		return s.tok.String(v), nil
	case bool:
		return s.tok.Bool(v), nil
	case gojson.Number:
		return s.tok.Number(string(v)), nil
	case float64:
		return s.tok.Number(strconv.FormatFloat(v, 'g', -1, 64)), nil
	case nil:
		return s.tok.Null(), nil
	}
	return eng.Token{}, fmt.Errorf("go-json: unexpected token %T", tok)
}

func (s *source) Location() int64 { return -1 }
