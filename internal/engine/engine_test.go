package engine

import "testing"

func TestTokenizer_KeysAndValues(t *testing.T) {
	tz := NewTokenizer(nil)
	// {"a":"b","c":["d",{"e":null}],"f":1}
	got := []Token{
		tz.Delim('{'), tz.String("a"), tz.String("b"), tz.String("c"),
		tz.Delim('['), tz.String("d"), tz.Delim('{'), tz.String("e"), tz.Null(), tz.Delim('}'), tz.Delim(']'),
		tz.String("f"), tz.Number("1"), tz.Delim('}'),
	}
	want := []Kind{
		KindBeginObject, KindKey, KindString, KindKey,
		KindBeginArray, KindString, KindBeginObject, KindKey, KindNull, KindEndObject, KindEndArray,
		KindKey, KindNumber, KindEndObject,
	}
	for i := range want {
		if got[i].Kind != want[i] {
			t.Fatalf("token %d: kind %v, want %v", i, got[i].Kind, want[i])
		}
		if got[i].Offset != -1 || got[i].Line != 0 {
			t.Fatalf("token %d: unexpected position %+v", i, got[i])
		}
	}
}

func TestTokenizer_Positions(t *testing.T) {
	data := []byte("{\n  \"a\": 1\n}")
	tz := NewTokenizer(data)
	if tok := tz.At(1).Delim('{'); tok.Line != 1 || tok.Column != 2 || tok.Offset != 1 {
		t.Fatalf("begin: %+v", tok)
	}
	if tok := tz.At(7).String("a"); tok.Kind != KindKey || tok.Line != 2 || tok.Column != 6 {
		t.Fatalf("key: %+v", tok)
	}
	if tok := tz.At(-1).Number("1"); tok.Line != 0 {
		t.Fatalf("unknown offsets carry no position: %+v", tok)
	}
}

func TestLineCounter(t *testing.T) {
	c := NewLineCounter([]byte("ab\ncd\n\nx"))
	steps := []struct {
		off       int64
		line, col int
	}{
		{0, 1, 1}, {2, 1, 3}, {3, 2, 1}, {7, 4, 1}, {3, 4, 1}, {100, 4, 2},
	}
	for _, s := range steps {
		if l, col := c.Advance(s.off); l != s.line || col != s.col {
			t.Fatalf("Advance(%d) = %d:%d, want %d:%d", s.off, l, col, s.line, s.col)
		}
	}
}
