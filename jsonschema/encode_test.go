package jsonschema

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	yamlv3 "gopkg.in/yaml.v3"

	"github.com/reoring/schemadoc"
)

func mustJSON(t *testing.T, s *Schema) string {
	t.Helper()
	b, err := s.MarshalJSON()
	if err != nil {
		t.Fatalf("MarshalJSON: %v", err)
	}
	return string(b)
}

func TestEncode_CanonicalKeywordOrder(t *testing.T) {
	s := mustParse(t, `{"required": ["a"], "x-ext": 1, "title": "t", "type": "object", "$schema": "http://json-schema.org/draft-07/schema#"}`)
	o, _ := s.Value().AsObject()
	want := []string{"$schema", "title", "type", "required", "x-ext"}
	if diff := cmp.Diff(want, o.Keys()); diff != "" {
		t.Fatalf("key order (-want +got):\n%s", diff)
	}
}

func TestEncode_PreservesTaggedArms(t *testing.T) {
	docs := []string{
		`{"items":{"type":"number"}}`,
		`{"items":[{"type":"number"}]}`,
		`{"items":[]}`,
		`{"type":"string"}`,
		`{"type":["string"]}`,
		`{"type":["string","null"]}`,
		`{"additionalItems":true}`,
		`{"additionalProperties":{"type":"string"}}`,
		`{"dependencies":{"a":["b"],"c":{"required":["d"]},"e":[]}}`,
		`{"examples":[]}`,
		`{"default":null}`,
		`{"const":{"z":1,"a":[true,null]}}`,
	}
	for _, doc := range docs {
		t.Run(doc, func(t *testing.T) {
			if got := mustJSON(t, mustParse(t, doc)); got != doc {
				t.Fatalf("round trip changed the document:\n got %s\nwant %s", got, doc)
			}
		})
	}
}

func TestEncode_NumericKeywordsKeepLiterals(t *testing.T) {
	docs := []string{
		`{"maximum":9007199254740993}`,
		`{"multipleOf":1e-400}`,
		`{"maximum":1e400}`,
		`{"minimum":-0.0}`,
		`{"exclusiveMinimum":1.50,"exclusiveMaximum":2E+3}`,
	}
	for _, doc := range docs {
		t.Run(doc, func(t *testing.T) {
			s := mustParse(t, doc)
			if got := mustJSON(t, s); got != doc {
				t.Fatalf("round trip changed the document:\n got %s\nwant %s", got, doc)
			}
			if !Equal(s, mustParse(t, mustJSON(t, s))) {
				t.Fatalf("second decode differs")
			}
		})
	}
	built := &Schema{Minimum: Ptr(schemadoc.Int(0)), MultipleOf: Ptr(schemadoc.MustNumber("0.10"))}
	if got := mustJSON(t, built); got != `{"multipleOf":0.10,"minimum":0}` {
		t.Fatalf("built schema = %s", got)
	}
}

func TestEncode_RoundTripLaw(t *testing.T) {
	docs := []string{
		`{"$id":"https://example.com/s.json","title":"root","type":"object","properties":{"b":{"type":"integer","minimum":0,"exclusiveMaximum":10.5},"a":{"type":["string","null"],"maxLength":1.0,"format":"email"}},"required":["b"],"additionalProperties":false}`,
		`{"definitions":{"node":{"properties":{"next":{"$ref":"#/definitions/node"}}}},"$ref":"#/definitions/node"}`,
		`{"if":{"properties":{"k":{"const":"a"}}},"then":{"required":["x"]},"else":{"not":{"required":["x"]}}}`,
		`{"allOf":[{"minProperties":1}],"anyOf":[{"maxProperties":3},{"propertyNames":{"pattern":"^[a-z]+$"}}],"oneOf":[{"multipleOf":0.5}]}`,
		`{"contains":{"enum":[1,"a",true,null]},"uniqueItems":true,"minItems":1,"maxItems":5}`,
		`{"contentMediaType":"application/json","contentEncoding":"base64","readOnly":true,"writeOnly":false,"$comment":"c","description":"d"}`,
		`{"patternProperties":{"^x-":{}},"x-vendor":{"nested":[1,2]}}`,
	}
	for _, doc := range docs {
		t.Run(doc, func(t *testing.T) {
			s1 := mustParse(t, doc)
			orig, err := schemadoc.ParseJSON([]byte(doc))
			if err != nil {
				t.Fatalf("ParseJSON: %v", err)
			}
			if !schemadoc.Equal(orig, s1.Value()) {
				t.Fatalf("encoded value differs from input:\n%s", mustJSON(t, s1))
			}
			s2 := mustParse(t, mustJSON(t, s1))
			if !Equal(s1, s2) {
				t.Fatalf("second decode differs")
			}
		})
	}
}

func TestEqual_IgnoresOrderButNotArms(t *testing.T) {
	a := mustParse(t, `{"properties":{"a":{},"b":{}},"type":"string"}`)
	b := mustParse(t, `{"type":"string","properties":{"b":{},"a":{}}}`)
	if !Equal(a, b) {
		t.Fatalf("member order should not matter")
	}
	c := mustParse(t, `{"properties":{"a":{},"b":{}},"type":["string"]}`)
	if Equal(a, c) {
		t.Fatalf("single type and type list must differ")
	}
	if !Equal(nil, nil) || Equal(a, nil) {
		t.Fatalf("nil handling")
	}
}

func TestEncode_BuiltSchema(t *testing.T) {
	union, err := TypeUnion(TypeInteger, TypeNull)
	if err != nil {
		t.Fatalf("TypeUnion: %v", err)
	}
	s := &Schema{
		Title:      Ptr("user"),
		Type:       TypeOf(TypeObject),
		Properties: NewSchemaMap().Set("id", &Schema{Type: union}).Set("name", &Schema{MinLength: Ptr(1)}),
		Required:   []string{"id"},
		AnyOf:      NewNonEmpty(&Schema{MinProperties: Ptr(1)}),
		Extensions: schemadoc.NewObject(
			schemadoc.Member{Key: "x-go-type", Value: schemadoc.String("User")},
			schemadoc.Member{Key: "title", Value: schemadoc.String("shadowed")},
		),
	}
	want := `{"title":"user","type":"object","required":["id"],"properties":{"id":{"type":["integer","null"]},"name":{"minLength":1}},"anyOf":[{"minProperties":1}],"x-go-type":"User"}`
	if got := mustJSON(t, s); got != want {
		t.Fatalf("encoded:\n got %s\nwant %s", got, want)
	}
}

func TestEncode_SkipsNamesOutsideClosedSets(t *testing.T) {
	enc := ContentEncoding("gzip")
	s := &Schema{Type: TypeOf("strng"), ContentEncoding: &enc, MinLength: Ptr(1)}
	got := mustJSON(t, s)
	if got != `{"minLength":1}` {
		t.Fatalf("encoded = %s", got)
	}
	if _, _, err := ParseBytes([]byte(got)); err != nil {
		t.Fatalf("encoded schema must decode: %v", err)
	}
	ok := ContentEncoding("base64")
	s = &Schema{Type: TypeOf(TypeNull), ContentEncoding: &ok}
	if got := mustJSON(t, s); got != `{"type":"null","contentEncoding":"base64"}` {
		t.Fatalf("encoded = %s", got)
	}
}

func TestSchema_EncodingJSONInterop(t *testing.T) {
	var s Schema
	if err := json.Unmarshal([]byte(`{"type": "string", "enum": ["a", "b"]}`), &s); err != nil {
		t.Fatalf("json.Unmarshal: %v", err)
	}
	if s.Enum.Len() != 2 {
		t.Fatalf("enum len = %d", s.Enum.Len())
	}
	b, err := json.Marshal(&s)
	if err != nil {
		t.Fatalf("json.Marshal: %v", err)
	}
	if string(b) != `{"type":"string","enum":["a","b"]}` {
		t.Fatalf("json.Marshal = %s", b)
	}
	if err := json.Unmarshal([]byte(`{"allOf": []}`), &s); err == nil {
		t.Fatalf("expected shape error from UnmarshalJSON")
	}
}

func TestSchema_MarshalYAML(t *testing.T) {
	s := mustParse(t, `{"type": "string", "minLength": 1, "enum": ["true", "x"]}`)
	out, err := yamlv3.Marshal(s)
	if err != nil {
		t.Fatalf("yaml.Marshal: %v", err)
	}
	text := string(out)
	for _, want := range []string{"type: string\n", "minLength: 1\n", `"true"`} {
		if !strings.Contains(text, want) {
			t.Fatalf("yaml output missing %q:\n%s", want, text)
		}
	}
	back, _, err := ParseYAML(out)
	if err != nil {
		t.Fatalf("ParseYAML: %v", err)
	}
	if !Equal(s, back) {
		t.Fatalf("yaml round trip differs:\n%s", text)
	}
}
