//go:build jscan

package compare_test

import (
	"testing"

	"github.com/romshark/jscan"

	"github.com/reoring/schemadoc"
)

// jscan only validates; schemadoc.DetectJSONDuplicateKeysBytes is the
// closest no-tree pass on our side.
func Benchmark_ValidateOnly_HugeArray(b *testing.B) {
	data := generateHugeJSONArray(cmpHugeN, cmpHugeK)
	s := string(data)
	b.Run("jscan", func(b *testing.B) {
		b.ReportAllocs()
		b.SetBytes(int64(len(data)))
		for i := 0; i < b.N; i++ {
			if !jscan.Valid(s) {
				b.Fatal("invalid")
			}
		}
	})
	b.Run("schemadoc_dup_scan", func(b *testing.B) {
		strict := schemadoc.Strictness{OnDuplicateKey: schemadoc.Error}
		b.ReportAllocs()
		b.SetBytes(int64(len(data)))
		for i := 0; i < b.N; i++ {
			if _, err := schemadoc.DetectJSONDuplicateKeysBytes(data, strict, 1); err != nil {
				b.Fatal(err)
			}
		}
	})
}
