package compare_test

import (
	"fmt"
	"strings"
	"testing"

	jschema "github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/reoring/schemadoc/jsonschema"
)

const userSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "properties": {
    "id": {"type": "string", "minLength": 1},
    "tags": {"type": "array", "items": {"type": "string"}, "uniqueItems": true},
    "score": {"type": ["number", "null"], "minimum": 0}
  },
  "required": ["id"],
  "additionalProperties": false
}`

// Both sides agree on which documents are well-formed draft-07 schemas.
func TestShapeAgreesWithMetaSchema(t *testing.T) {
	docs := []struct {
		doc   string
		valid bool
	}{
		{userSchema, true},
		{`{"items": [{}, {"not": {}}]}`, true},
		{`{"type": "strin"}`, false},
		{`{"minLength": -1}`, false},
		{`{"required": ["a", "a"]}`, false},
		{`{"allOf": []}`, false},
		{`{"dependencies": {"a": 1}}`, false},
		{`{"additionalProperties": "no"}`, false},
		{`{"multipleOf": 0}`, false},
		{`{"properties": {"a": {"type": 1}}}`, false},
	}
	for i, tc := range docs {
		_, _, err := jsonschema.ParseBytes([]byte(tc.doc))
		if got := err == nil; got != tc.valid {
			t.Errorf("schemadoc %s: valid=%v, want %v (%v)", tc.doc, got, tc.valid, err)
		}
		c := jschema.NewCompiler()
		c.Draft = jschema.Draft7
		url := fmt.Sprintf("mem://doc%d.json", i)
		if err := c.AddResource(url, strings.NewReader(tc.doc)); err != nil {
			t.Fatalf("AddResource: %v", err)
		}
		_, err = c.Compile(url)
		if got := err == nil; got != tc.valid {
			t.Errorf("jsonschema/v5 %s: valid=%v, want %v (%v)", tc.doc, got, tc.valid, err)
		}
	}
}

func Benchmark_LoadSchema_jsonschema_v5(b *testing.B) {
	b.ReportAllocs()
	b.SetBytes(int64(len(userSchema)))
	for i := 0; i < b.N; i++ {
		if _, err := jschema.CompileString("mem://user.json", userSchema); err != nil {
			b.Fatal(err)
		}
	}
}

func Benchmark_LoadSchema_schemadoc(b *testing.B) {
	data := []byte(userSchema)
	b.ReportAllocs()
	b.SetBytes(int64(len(data)))
	for i := 0; i < b.N; i++ {
		if _, _, err := jsonschema.ParseBytes(data); err != nil {
			b.Fatal(err)
		}
	}
}
