//go:build gojson

package compare_test

import (
	"github.com/reoring/schemadoc"
	"github.com/reoring/schemadoc/source/gojson"
)

func init() { schemadoc.SetJSONDriver(gojson.Driver()) }
