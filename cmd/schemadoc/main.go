// Command schemadoc checks, formats and inspects JSON Schema documents.
//
// Usage:
//
//	schemadoc check schema.json other.yaml
//	schemadoc fmt -w schema.json
//	schemadoc walk --from /definitions/node schema.json
//	schemadoc lint schema.json
//
// A FILE of "-" reads standard input. The exit code is 1 when a document has
// shape issues and 2 for usage or I/O errors.
package main

import (
	"os"

	// go-json is the default token driver; --json-driver switches back.
	_ "github.com/reoring/schemadoc/source"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}
