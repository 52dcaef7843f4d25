package benchmarks_test

import (
	"context"
	"testing"

	"github.com/reoring/schemadoc"
	"github.com/reoring/schemadoc/jsonschema"
	"github.com/reoring/schemadoc/source/yaml"
)

const wideProps = 500

func TestFixtures_AreValidSchemas(t *testing.T) {
	s, diag, err := jsonschema.ParseBytes(generateWideSchema(wideProps), jsonschema.DecodeOpt{Unknown: schemadoc.UnknownStrict})
	if err != nil {
		t.Fatalf("ParseBytes: %v", err)
	}
	if diag.HasWarnings() {
		t.Fatalf("unexpected warnings: %v", diag.Warnings())
	}
	if s.Properties.Len() != wideProps {
		t.Fatalf("properties = %d", s.Properties.Len())
	}
	if got := len(jsonschema.Lint(s)); got != 0 {
		t.Fatalf("lint findings = %d", got)
	}
	if _, err := schemadoc.ParseJSON(generateHugeJSONArray(10, 2)); err != nil {
		t.Fatalf("huge array fixture: %v", err)
	}
}

func Benchmark_ParseSchema_Wide(b *testing.B) {
	data := generateWideSchema(wideProps)
	b.ReportAllocs()
	b.SetBytes(int64(len(data)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, _, err := jsonschema.ParseBytes(data); err != nil {
			b.Fatal(err)
		}
	}
}

// FromValue alone isolates shape validation from tokenizing.
func Benchmark_FromValue_Wide(b *testing.B) {
	v, err := schemadoc.ParseJSON(generateWideSchema(wideProps))
	if err != nil {
		b.Fatal(err)
	}
	ctx := context.Background()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, _, err := jsonschema.FromValue(ctx, v); err != nil {
			b.Fatal(err)
		}
	}
}

func Benchmark_ParseSchema_Wide_YAML(b *testing.B) {
	v, err := schemadoc.ParseJSON(generateWideSchema(wideProps))
	if err != nil {
		b.Fatal(err)
	}
	data, err := yaml.Marshal(v)
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.SetBytes(int64(len(data)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, _, err := jsonschema.ParseYAML(data); err != nil {
			b.Fatal(err)
		}
	}
}

func Benchmark_SchemaValue_Wide(b *testing.B) {
	s, _, err := jsonschema.ParseBytes(generateWideSchema(wideProps))
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := s.MarshalJSON(); err != nil {
			b.Fatal(err)
		}
	}
}

func Benchmark_Walk_Wide(b *testing.B) {
	s, _, err := jsonschema.ParseBytes(generateWideSchema(wideProps))
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		n := 0
		_ = jsonschema.Walk(s, func(string, *jsonschema.Schema) error { n++; return nil })
		if n == 0 {
			b.Fatal("empty walk")
		}
	}
}

// Lint hits the compiled-pattern cache after the first iteration.
func Benchmark_Lint_Wide(b *testing.B) {
	s, _, err := jsonschema.ParseBytes(generateWideSchema(wideProps))
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = jsonschema.Lint(s)
	}
}
