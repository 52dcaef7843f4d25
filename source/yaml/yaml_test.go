package yaml_test

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/reoring/schemadoc"
	"github.com/reoring/schemadoc/source/yaml"
)

func decodeYAML(t *testing.T, doc string, opts ...schemadoc.ParseOpt) (schemadoc.Value, error) {
	t.Helper()
	return schemadoc.DecodeValue(context.Background(), yaml.NewBytes([]byte(doc)), opts...)
}

func jsonOf(t *testing.T, v schemadoc.Value) string {
	t.Helper()
	b, err := v.MarshalJSON()
	if err != nil {
		t.Fatalf("MarshalJSON: %v", err)
	}
	return string(b)
}

func parseIssue(t *testing.T, err error) schemadoc.Issue {
	t.Helper()
	iss, ok := schemadoc.AsIssues(err)
	if !ok || len(iss) == 0 {
		t.Fatalf("expected Issues, got %v", err)
	}
	return iss[0]
}

func TestYAML_ScalarsAndOrder(t *testing.T) {
	cases := []struct {
		doc  string
		want string
	}{
		{"b: 1\na: [true, null, 'x', 1.5]\n", `{"b":1,"a":[true,null,"x",1.5]}`},
		{"n: ~\ns: \"true\"\nf: False\n", `{"n":null,"s":"true","f":false}`},
		{"hex: 0x1F\noct: 0o17\nsep: 1_000\n", `{"hex":31,"oct":15,"sep":1000}`},
		{"big: 123456789012345678901234567890\n", `{"big":123456789012345678901234567890}`},
		{"e: 1e3\nneg: -0.25\n", `{"e":1e3,"neg":-0.25}`},
		{"- a\n- - b\n  - {}\n", `["a",["b",{}]]`},
		{"text\n", `"text"`},
	}
	for _, tc := range cases {
		t.Run(tc.want, func(t *testing.T) {
			v, err := decodeYAML(t, tc.doc)
			if err != nil {
				t.Fatalf("decode: %v", err)
			}
			if got := jsonOf(t, v); got != tc.want {
				t.Fatalf("got %s, want %s", got, tc.want)
			}
		})
	}
}

func TestYAML_NonFiniteRejectedWithPosition(t *testing.T) {
	_, err := decodeYAML(t, "a: 1\nb: .inf\n")
	is := parseIssue(t, err)
	if is.Code != schemadoc.CodeParseError || is.Line != 2 || is.Column != 4 {
		t.Fatalf("unexpected issue: %+v", is)
	}
	var pe *yaml.PositionError
	if !errors.As(is.Cause, &pe) {
		t.Fatalf("cause should be a PositionError: %v", is.Cause)
	}
}

func TestYAML_Aliases(t *testing.T) {
	v, err := decodeYAML(t, "base: &b {x: 1}\nuse: *b\n")
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got := jsonOf(t, v); got != `{"base":{"x":1},"use":{"x":1}}` {
		t.Fatalf("got %s", got)
	}
}

func TestYAML_AliasExpansionLimit(t *testing.T) {
	var b strings.Builder
	b.WriteString("a: &a [x, x, x, x, x, x, x, x, x, x]\n")
	prev := "a"
	for _, name := range []string{"b", "c", "d", "e", "f"} {
		b.WriteString(name + ": &" + name + " [")
		for i := 0; i < 10; i++ {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString("*" + prev)
		}
		b.WriteString("]\n")
		prev = name
	}
	_, err := decodeYAML(t, b.String())
	is := parseIssue(t, err)
	if is.Code != schemadoc.CodeParseError || !strings.Contains(is.Message, "alias expansion limit") {
		t.Fatalf("unexpected issue: %+v", is)
	}
}

func TestYAML_DuplicateKeyUsesSharedPolicy(t *testing.T) {
	doc := "a: 1\nb: 2\na: 3\n"
	v, err := decodeYAML(t, doc)
	if err != nil {
		t.Fatalf("default policy should accept duplicates: %v", err)
	}
	if got := jsonOf(t, v); got != `{"a":3,"b":2}` {
		t.Fatalf("got %s", got)
	}
	_, err = decodeYAML(t, doc, schemadoc.ParseOpt{Strictness: schemadoc.Strictness{OnDuplicateKey: schemadoc.Error}})
	is := parseIssue(t, err)
	if is.Code != schemadoc.CodeDuplicateKey || is.Path != "/a" || is.Line != 3 || is.Column != 1 {
		t.Fatalf("unexpected issue: %+v", is)
	}
}

func TestYAML_NonScalarKey(t *testing.T) {
	_, err := decodeYAML(t, "? [a]\n: 1\n")
	if is := parseIssue(t, err); !strings.Contains(is.Message, "mapping keys must be scalars") {
		t.Fatalf("unexpected issue: %+v", is)
	}
}

func TestYAML_SingleDocumentOnly(t *testing.T) {
	_, err := decodeYAML(t, "a: 1\n---\nb: 2\n")
	if is := parseIssue(t, err); !errors.Is(is.Cause, yaml.ErrMultipleDocuments) {
		t.Fatalf("unexpected issue: %+v", is)
	}
}

func TestYAML_Stream(t *testing.T) {
	st := yaml.NewStream(strings.NewReader("a: 1\n---\n[2]\n"))
	var got []string
	for {
		src, err := st.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			t.Fatalf("Next: %v", err)
		}
		v, err := schemadoc.DecodeValue(context.Background(), src)
		if err != nil {
			t.Fatalf("decode: %v", err)
		}
		got = append(got, jsonOf(t, v))
	}
	if strings.Join(got, " ") != `{"a":1} [2]` {
		t.Fatalf("documents = %v", got)
	}
}

func TestMarshal_KeepsOrderAndStringTags(t *testing.T) {
	v, err := schemadoc.ParseJSON([]byte(`{"z":"true","a":[1,2.5,null],"s":"line1\nline2","m":{}}`))
	if err != nil {
		t.Fatalf("ParseJSON: %v", err)
	}
	out, err := yaml.Marshal(v)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	text := string(out)
	if strings.Index(text, "z:") > strings.Index(text, "a:") {
		t.Fatalf("member order lost:\n%s", text)
	}
	back, err := decodeYAML(t, text)
	if err != nil {
		t.Fatalf("decode: %v\n%s", err, text)
	}
	if !schemadoc.Equal(v, back) {
		t.Fatalf("round trip differs:\n%s", text)
	}
}
