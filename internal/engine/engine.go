package engine

// Kind represents token kinds from a generic source.
type Kind int

const (
	KindBeginObject Kind = iota
	KindEndObject
	KindBeginArray
	KindEndArray
	KindKey
	KindString
	KindNumber
	KindBool
	KindNull
)

func (k Kind) String() string {
	switch k {
	case KindBeginObject:
		return "begin_object"
	case KindEndObject:
		return "end_object"
	case KindBeginArray:
		return "begin_array"
	case KindEndArray:
		return "end_array"
	case KindKey:
		return "key"
	case KindString:
		return "string"
	case KindNumber:
		return "number"
	case KindBool:
		return "bool"
	case KindNull:
		return "null"
	default:
		return "unknown"
	}
}

// Token represents a streaming token with its approximate input position.
// Offset is a byte offset (-1 when unknown). Line and Column are 1-based (0
// when unknown). YAML tokens point at the start of the node; JSON tokens read
// from bytes point just past the token.
type Token struct {
	Kind   Kind
	String string
	Number string
	Bool   bool
	Offset int64
	Line   int
	Column int
}

// TokenSource is a minimal interface required by the engine.
type TokenSource interface {
	NextToken() (Token, error)
	Location() int64
}

// Tokenizer turns decoder tokens into engine Tokens. It tracks the
// enclosing containers to tell object keys apart from string values and, when
// the input bytes are known, fills Line and Column from token offsets.
type Tokenizer struct {
	frames []frame
	lines  *LineCounter
	offset int64
}

type frame struct {
	object       bool
	expectingKey bool
}

// NewTokenizer returns a Tokenizer. data may be nil when the input is only
// available as a stream.
func NewTokenizer(data []byte) *Tokenizer {
	t := &Tokenizer{offset: -1}
	if data != nil {
		t.lines = NewLineCounter(data)
	}
	return t
}

// At records the input offset of the next token (-1 when unknown).
func (t *Tokenizer) At(offset int64) *Tokenizer {
	t.offset = offset
	return t
}

func (t *Tokenizer) token(k Kind) Token {
	tok := Token{Kind: k, Offset: t.offset}
	if t.lines != nil && t.offset >= 0 {
		tok.Line, tok.Column = t.lines.Advance(t.offset)
	}
	return tok
}

// Delim converts one of '{', '}', '[' or ']'.
func (t *Tokenizer) Delim(d rune) Token {
	switch d {
	case '{':
		t.frames = append(t.frames, frame{object: true, expectingKey: true})
		return t.token(KindBeginObject)
	case '[':
		t.frames = append(t.frames, frame{})
		return t.token(KindBeginArray)
	}
	if n := len(t.frames); n > 0 {
		t.frames = t.frames[:n-1]
	}
	t.valueDone()
	if d == '}' {
		return t.token(KindEndObject)
	}
	return t.token(KindEndArray)
}

// String converts a string, which is a key when an object expects one.
func (t *Tokenizer) String(s string) Token {
	if n := len(t.frames); n > 0 && t.frames[n-1].object && t.frames[n-1].expectingKey {
		t.frames[n-1].expectingKey = false
		tok := t.token(KindKey)
		tok.String = s
		return tok
	}
	t.valueDone()
	tok := t.token(KindString)
	tok.String = s
	return tok
}

// Number converts a number literal.
func (t *Tokenizer) Number(lit string) Token {
	t.valueDone()
	tok := t.token(KindNumber)
	tok.Number = lit
	return tok
}

// Bool converts a boolean.
func (t *Tokenizer) Bool(b bool) Token {
	t.valueDone()
	tok := t.token(KindBool)
	tok.Bool = b
	return tok
}

// Null converts null.
func (t *Tokenizer) Null() Token {
	t.valueDone()
	return t.token(KindNull)
}

func (t *Tokenizer) valueDone() {
	if n := len(t.frames); n > 0 && t.frames[n-1].object {
		t.frames[n-1].expectingKey = true
	}
}

// LineCounter maps non-decreasing byte offsets of data to 1-based line and
// column numbers. Columns count bytes.
type LineCounter struct {
	data      []byte
	off       int
	line, col int
}

// NewLineCounter returns a LineCounter positioned at the start of data.
func NewLineCounter(data []byte) *LineCounter {
	return &LineCounter{data: data, line: 1, col: 1}
}

// Advance moves to offset and returns the line and column there. Offsets
// behind the current position return the current position.
func (c *LineCounter) Advance(offset int64) (line, col int) {
	end := int(min(offset, int64(len(c.data))))
	for ; c.off < end; c.off++ {
		if c.data[c.off] == '\n' {
			c.line++
			c.col = 1
		} else {
			c.col++
		}
	}
	return c.line, c.col
}
