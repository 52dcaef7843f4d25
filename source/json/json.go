// Package json is the encoding/json token driver. It is the default driver of
// the root package.
package json

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	eng "github.com/reoring/schemadoc/internal/engine"
)

type source struct {
	dec        *json.Decoder
	tok        *eng.Tokenizer
	lastOffset int64
}

// NewReader wraps an io.Reader into an engine.TokenSource for JSON. Tokens
// carry byte offsets.
func NewReader(r io.Reader) eng.TokenSource { return newSource(r, nil) }

// NewBytes wraps a byte slice into an engine.TokenSource for JSON. Tokens
// carry byte offsets plus line and column numbers.
func NewBytes(b []byte) eng.TokenSource { return newSource(bytes.NewReader(b), b) }

func newSource(r io.Reader, data []byte) *source {
	dec := json.NewDecoder(r)
	dec.UseNumber()
	return &source{dec: dec, tok: eng.NewTokenizer(data), lastOffset: -1}
}

func (s *source) NextToken() (eng.Token, error) {
	tok, err := s.dec.Token()
	if err != nil {
		return eng.Token{}, err
	}
	s.lastOffset = s.dec.InputOffset()
	t := s.tok.At(s.lastOffset)
	switch v := tok.(type) {
	case json.Delim:
		return t.Delim(rune(v)), nil
	case string:
		return t.String(v), nil
	case bool:
		return t.Bool(v), nil
	case json.Number:
		return t.Number(string(v)), nil
	case float64:
		return t.Number(strconv.FormatFloat(v, 'g', -1, 64)), nil
	case nil:
		return t.Null(), nil
	}
	return eng.Token{}, fmt.Errorf("json: unexpected token %T", tok)
}

func (s *source) Location() int64 { return s.lastOffset }
