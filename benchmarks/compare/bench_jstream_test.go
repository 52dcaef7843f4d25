//go:build jstream

package compare_test

import (
	"bytes"
	"context"
	"io"
	"testing"

	"github.com/bcicen/jstream"

	"github.com/reoring/schemadoc"
)

// Streaming from a reader: jstream emits each array element, schemadoc builds
// the whole ordered tree.
func Benchmark_ParseReader_HugeArray(b *testing.B) {
	data := generateHugeJSONArray(cmpHugeN, cmpHugeK)
	b.Run("jstream", func(b *testing.B) {
		b.ReportAllocs()
		b.SetBytes(int64(len(data)))
		for i := 0; i < b.N; i++ {
			dec := jstream.NewDecoder(bytes.NewReader(data), 1)
			for mv := range dec.Stream() {
				if mv.Value == nil {
					b.Fatal("nil element")
				}
			}
			if err := dec.Err(); err != nil && err != io.EOF {
				b.Fatal(err)
			}
		}
	})
	b.Run("schemadoc", func(b *testing.B) {
		b.ReportAllocs()
		b.SetBytes(int64(len(data)))
		for i := 0; i < b.N; i++ {
			if _, err := schemadoc.ParseJSONReader(context.Background(), bytes.NewReader(data)); err != nil {
				b.Fatal(err)
			}
		}
	})
}
