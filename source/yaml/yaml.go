// Package yaml adapts gopkg.in/yaml.v3 documents to the schemadoc token
// stream. Mapping order is preserved and every token carries its line and
// column. Duplicate keys are left to the schemadoc enforcement layer, so YAML
// and JSON inputs share a single duplicate-key policy.
package yaml

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math/big"
	"strconv"
	"strings"

	yamlv3 "gopkg.in/yaml.v3"

	"github.com/reoring/schemadoc"
	eng "github.com/reoring/schemadoc/internal/engine"
)

// MaxAliasExpansion bounds how many nodes may be produced by following
// aliases in a single document.
const MaxAliasExpansion = 100_000

// ErrMultipleDocuments is returned by a single-document Source when the
// stream holds more than one document.
var ErrMultipleDocuments = errors.New("yaml: multiple documents in stream; use NewStream")

// PositionError locates a YAML conversion failure.
type PositionError struct {
	Line, Column int
	Msg          string
}

func (e *PositionError) Error() string {
	return fmt.Sprintf("yaml: line %d, column %d: %s", e.Line, e.Column, e.Msg)
}

// Position reports where the error occurred.
func (e *PositionError) Position() (line, column int) { return e.Line, e.Column }

// NewReader returns a Source yielding the single YAML document in r.
func NewReader(r io.Reader) schemadoc.Source {
	return schemadoc.SourceFromEngine(&source{dec: yamlv3.NewDecoder(r), single: true})
}

// NewBytes returns a Source yielding the single YAML document in b.
func NewBytes(b []byte) schemadoc.Source { return NewReader(bytes.NewReader(b)) }

// Stream iterates over the documents of a multi-document YAML stream.
type Stream struct {
	dec *yamlv3.Decoder
}

// NewStream constructs a Stream.
func NewStream(r io.Reader) *Stream { return &Stream{dec: yamlv3.NewDecoder(r)} }

// Next returns a Source for the next document, or io.EOF when the stream is
// exhausted.
func (s *Stream) Next() (schemadoc.Source, error) {
	var doc yamlv3.Node
	if err := s.dec.Decode(&doc); err != nil {
		return nil, err
	}
	return schemadoc.SourceFromEngine(&source{root: &doc}), nil
}

type frame struct {
	node    *yamlv3.Node
	i       int
	aliased bool // reached through an alias; counts against MaxAliasExpansion
}

type source struct {
	dec      *yamlv3.Decoder
	single   bool
	root     *yamlv3.Node
	started  bool
	done     bool
	stack    []frame
	expanded int
}

func (s *source) NextToken() (eng.Token, error) {
	if !s.started {
		s.started = true
		if s.root == nil {
			var doc yamlv3.Node
			if err := s.dec.Decode(&doc); err != nil {
				return eng.Token{}, err
			}
			s.root = &doc
		}
		return s.enter(s.root, false)
	}
	if len(s.stack) == 0 {
		return s.finish()
	}
	top := &s.stack[len(s.stack)-1]
	n := top.node
	if top.i >= len(n.Content) {
		s.stack = s.stack[:len(s.stack)-1]
		if n.Kind == yamlv3.MappingNode {
			return tokenAt(eng.KindEndObject, n), nil
		}
		return tokenAt(eng.KindEndArray, n), nil
	}
	child := n.Content[top.i]
	top.i++
	if n.Kind == yamlv3.MappingNode && top.i%2 == 1 {
		k := child
		for k.Kind == yamlv3.AliasNode && k.Alias != nil {
			k = k.Alias
		}
		if k.Kind != yamlv3.ScalarNode {
			return eng.Token{}, &PositionError{Line: k.Line, Column: k.Column, Msg: "mapping keys must be scalars"}
		}
		t := tokenAt(eng.KindKey, k)
		t.String = k.Value
		return t, nil
	}
	return s.enter(child, top.aliased)
}

func (s *source) finish() (eng.Token, error) {
	if !s.done {
		s.done = true
		if s.single && s.dec != nil {
			var next yamlv3.Node
			if err := s.dec.Decode(&next); err == nil {
				return eng.Token{}, ErrMultipleDocuments
			} else if !errors.Is(err, io.EOF) {
				return eng.Token{}, err
			}
		}
	}
	return eng.Token{}, io.EOF
}

func (s *source) enter(n *yamlv3.Node, aliased bool) (eng.Token, error) {
	for n.Kind == yamlv3.AliasNode {
		if n.Alias == nil {
			return eng.Token{}, &PositionError{Line: n.Line, Column: n.Column, Msg: "unresolved alias"}
		}
		n, aliased = n.Alias, true
	}
	if aliased {
		if s.expanded++; s.expanded > MaxAliasExpansion {
			return eng.Token{}, &PositionError{Line: n.Line, Column: n.Column, Msg: "alias expansion limit exceeded"}
		}
	}
	switch n.Kind {
	case yamlv3.DocumentNode:
		if len(n.Content) == 0 {
			return eng.Token{}, io.EOF
		}
		return s.enter(n.Content[0], aliased)
	case yamlv3.MappingNode:
		s.stack = append(s.stack, frame{node: n, aliased: aliased})
		return tokenAt(eng.KindBeginObject, n), nil
	case yamlv3.SequenceNode:
		s.stack = append(s.stack, frame{node: n, aliased: aliased})
		return tokenAt(eng.KindBeginArray, n), nil
	case yamlv3.ScalarNode:
		return scalarToken(n)
	}
	return eng.Token{}, &PositionError{Line: n.Line, Column: n.Column, Msg: "unsupported node kind"}
}

func (s *source) Location() int64 { return -1 }

func tokenAt(k eng.Kind, n *yamlv3.Node) eng.Token {
	return eng.Token{Kind: k, Offset: -1, Line: n.Line, Column: n.Column}
}

// scalarToken maps a resolved YAML scalar to a JSON token. Integers in other
// bases are rewritten in decimal; .inf and .nan have no JSON form.
func scalarToken(n *yamlv3.Node) (eng.Token, error) {
	switch n.ShortTag() {
	case "!!null":
		return tokenAt(eng.KindNull, n), nil
	case "!!bool":
		t := tokenAt(eng.KindBool, n)
		switch strings.ToLower(n.Value) {
		case "true":
			t.Bool = true
		case "false":
		default:
			return eng.Token{}, &PositionError{Line: n.Line, Column: n.Column, Msg: "invalid boolean " + strconv.Quote(n.Value)}
		}
		return t, nil
	case "!!int":
		lit, ok := intLiteral(n.Value)
		if !ok {
			return eng.Token{}, &PositionError{Line: n.Line, Column: n.Column, Msg: "invalid integer " + strconv.Quote(n.Value)}
		}
		t := tokenAt(eng.KindNumber, n)
		t.Number = lit
		return t, nil
	case "!!float":
		lit, ok := floatLiteral(n.Value)
		if !ok {
			return eng.Token{}, &PositionError{Line: n.Line, Column: n.Column, Msg: "number " + strconv.Quote(n.Value) + " has no JSON representation"}
		}
		t := tokenAt(eng.KindNumber, n)
		t.Number = lit
		return t, nil
	}
	t := tokenAt(eng.KindString, n)
	t.String = n.Value
	return t, nil
}

func intLiteral(s string) (string, bool) {
	s = strings.ReplaceAll(s, "_", "")
	if _, err := schemadoc.Number(s); err == nil {
		return s, true
	}
	// base 0 understands the 0x, 0o and 0b prefixes
	i, ok := new(big.Int).SetString(strings.TrimPrefix(s, "+"), 0)
	if !ok {
		return "", false
	}
	return i.String(), true
}

func floatLiteral(s string) (string, bool) {
	s = strings.ReplaceAll(s, "_", "")
	if _, err := schemadoc.Number(s); err == nil {
		return s, true
	}
	lower := strings.ToLower(s)
	if strings.Contains(lower, "inf") || strings.Contains(lower, "nan") {
		return "", false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return "", false
	}
	v, err := schemadoc.Float(f)
	if err != nil {
		return "", false
	}
	lit, _ := v.NumberLiteral()
	return lit, true
}
