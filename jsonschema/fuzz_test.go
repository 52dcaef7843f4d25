package jsonschema

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/reoring/schemadoc"
)

// arms lists which side of every tagged union a schema tree uses, keyed by
// pointer.
func arms(root *Schema) []string {
	var out []string
	_ = Walk(root, func(ptr string, s *Schema) error {
		if s.Type != nil {
			out = append(out, ptr+" type list="+strconv.FormatBool(s.Type.IsList()))
		}
		if s.Items != nil {
			out = append(out, ptr+" items tuple="+strconv.FormatBool(s.Items.IsTuple()))
		}
		if s.AdditionalItems != nil {
			_, isBool := s.AdditionalItems.Bool()
			out = append(out, ptr+" additionalItems bool="+strconv.FormatBool(isBool))
		}
		if s.AdditionalProperties != nil {
			_, isBool := s.AdditionalProperties.Bool()
			out = append(out, ptr+" additionalProperties bool="+strconv.FormatBool(isBool))
		}
		s.Dependencies.Range(func(name string, d *Dependency) bool {
			_, isList := d.Properties()
			out = append(out, ptr+" dependencies/"+name+" list="+strconv.FormatBool(isList))
			return true
		})
		return nil
	})
	return out
}

// usesLegacySpelling reports whether any object in v has a key that the
// decoder renames on the way in.
func usesLegacySpelling(v schemadoc.Value) bool {
	found := false
	_ = schemadoc.Walk(v, func(_ string, n schemadoc.Value) error {
		if o, ok := n.AsObject(); ok && (o.Has(kwAdditionalPropertiesLegacy) || o.Has(kwReadOnlyLegacy)) {
			found = true
		}
		return nil
	})
	return found
}

func FuzzRoundTrip(f *testing.F) {
	seeds := []string{
		`{}`,
		`{"type":"string","minLength":1}`,
		`{"type":["string","null"],"maximum":9007199254740993,"multipleOf":1e-400}`,
		`{"items":{"type":"number"},"additionalItems":true}`,
		`{"items":[{"type":"number"},{}],"additionalItems":false}`,
		`{"items":[]}`,
		`{"additionalProperties":{"type":"string"},"properties":{"a":{"readOnly":true}}}`,
		`{"dependencies":{"a":["b"],"c":{"required":["d"]},"e":[]}}`,
		`{"enum":[1,"a",null,{"z":[true]}],"const":1.50,"default":null,"examples":[]}`,
		`{"allOf":[{}],"anyOf":[{"not":{}}],"oneOf":[{"if":{},"then":{},"else":{}}]}`,
		`{"definitions":{"n":{"$ref":"#/definitions/n"}},"x-vendor":{"readonly":1}}`,
		`{"additonalProperties":false,"readonly":true}`,
	}
	for _, s := range seeds {
		f.Add(s)
	}
	f.Fuzz(func(t *testing.T, input string) {
		t.Parallel()
		s, _, err := ParseBytes([]byte(input))
		if err != nil {
			return
		}
		v := s.Value()
		back, _, err := FromValue(context.Background(), v)
		if err != nil {
			t.Fatalf("encoded schema does not decode: %v\n%s", err, mustJSON(t, s))
		}
		if !Equal(s, back) {
			t.Fatalf("decode(encode(s)) differs from s:\n%s\n%s", mustJSON(t, s), mustJSON(t, back))
		}
		if diff := cmp.Diff(arms(s), arms(back)); diff != "" {
			t.Fatalf("union arms changed (-before +after):\n%s", diff)
		}

		orig, err := schemadoc.ParseJSON([]byte(input))
		if err != nil {
			t.Fatalf("ParseJSON accepted by ParseBytes but not alone: %v", err)
		}
		if !usesLegacySpelling(orig) && !schemadoc.Equal(orig, v) {
			t.Fatalf("encoded schema differs from input:\n got %s\nwant %s", mustJSON(t, s), input)
		}
	})
}

// nonEmptyKeywords must hold at least one element.
var nonEmptyKeywords = []string{KwEnum, KwAllOf, KwAnyOf, KwOneOf}

func FuzzNonEmpty(f *testing.F) {
	for i := 0; i < len(nonEmptyKeywords)+1; i++ {
		f.Add(uint8(i), uint8(0), uint8(0))
		f.Add(uint8(i), uint8(3), uint8(i))
	}
	f.Fuzz(func(t *testing.T, which, depth, typeIdx uint8) {
		t.Parallel()
		var bad, good, leaf, code string
		if k := int(which) % (len(nonEmptyKeywords) + 1); k < len(nonEmptyKeywords) {
			kw := nonEmptyKeywords[k]
			one := `{}`
			if kw == KwEnum {
				one = `null`
			}
			bad = fmt.Sprintf(`{%q: []}`, kw)
			good = fmt.Sprintf(`{%q: [%s]}`, kw, one)
			leaf, code = "/"+kw, schemadoc.CodeTooSmall
		} else {
			st := simpleTypes[int(typeIdx)%len(simpleTypes)]
			bad = fmt.Sprintf(`{"type": [%q, %q]}`, st, st)
			good = fmt.Sprintf(`{"type": [%q]}`, st)
			leaf, code = "/type/1", schemadoc.CodeUniqueness
		}
		prefix := strings.Repeat("/properties/p", int(depth%5))
		for n := 0; n < int(depth%5); n++ {
			bad = `{"properties": {"p": ` + bad + `}}`
			good = `{"properties": {"p": ` + good + `}}`
		}

		_, _, err := ParseBytes([]byte(bad))
		iss := mustIssues(t, err)
		if len(iss) != 1 || iss[0].Path != prefix+leaf || iss[0].Code != code {
			t.Fatalf("%s: got %v, want %s at %s", bad, iss, code, prefix+leaf)
		}
		if _, _, err := ParseBytes([]byte(good)); err != nil {
			t.Fatalf("%s: %v", good, err)
		}
	})
}
