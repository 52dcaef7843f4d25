// Package source installs the go-json driver as the process-wide default when
// imported for side effects:
//
//	import _ "github.com/reoring/schemadoc/source"
package source

import (
	"github.com/reoring/schemadoc"
	drvgojson "github.com/reoring/schemadoc/source/gojson"
)

// init in a separate package to avoid import cycle in root.
func init() { schemadoc.SetJSONDriver(drvgojson.Driver()) }
