package schemadoc

import (
	"io"

	eng "github.com/reoring/schemadoc/internal/engine"
)

// DetectJSONDuplicateKeysBytes reports duplicated object keys in a JSON byte
// slice, each with the JSON Pointer of the duplicate. It does not build a
// Value. maxIssues < 0 means unlimited.
func DetectJSONDuplicateKeysBytes(data []byte, strict Strictness, maxIssues int) (Issues, error) {
	return DetectDuplicateKeys(JSONBytes(data), strict, maxIssues)
}

// DetectJSONDuplicateKeysReader is the io.Reader form of
// DetectJSONDuplicateKeysBytes. The reader is consumed fully.
func DetectJSONDuplicateKeysReader(r io.Reader, strict Strictness, maxIssues int) (Issues, error) {
	return DetectDuplicateKeys(JSONReader(r), strict, maxIssues)
}

// DetectDuplicateKeys scans any Source (JSON or YAML) for duplicated keys.
func DetectDuplicateKeys(src Source, strict Strictness, maxIssues int) (Issues, error) {
	si, err := eng.DetectDuplicateKeys(engineTokenSource(src), toEngineDup(strict.OnDuplicateKey), maxIssues)
	if err != nil {
		return nil, err
	}
	var iss Issues
	for _, s := range si {
		iss = AppendIssues(iss, issueFromEngine(s))
	}
	return iss, nil
}
