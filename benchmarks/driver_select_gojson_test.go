//go:build gojson

package benchmarks_test

import (
	"github.com/reoring/schemadoc"
	"github.com/reoring/schemadoc/source/gojson"
)

// Run with -tags gojson to route JSONBytes/JSONReader through go-json.
func init() { schemadoc.SetJSONDriver(gojson.Driver()) }
