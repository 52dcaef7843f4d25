package jsonschema

import "github.com/reoring/schemadoc"

// DecodeOpt controls how a document is turned into a Schema.
type DecodeOpt struct {
	// Parse is forwarded to the JSON/YAML decoder (duplicate keys, depth,
	// size, FailFast). FailFast also stops shape validation at the first issue.
	Parse schemadoc.ParseOpt
	// Unknown selects what happens to keywords outside the vocabulary.
	Unknown schemadoc.UnknownPolicy
	// MaxDepth limits subschema nesting. 0 selects schemadoc.DefaultMaxDepth
	// and a negative value disables the check.
	MaxDepth int
}

func (o DecodeOpt) effectiveMaxDepth() int {
	switch {
	case o.MaxDepth == 0:
		return schemadoc.DefaultMaxDepth
	case o.MaxDepth < 0:
		return 0
	default:
		return o.MaxDepth
	}
}

func lastOpt(opts []DecodeOpt) DecodeOpt {
	if len(opts) > 0 {
		return opts[len(opts)-1]
	}
	return DecodeOpt{}
}

// Diag carries non-fatal warnings produced while decoding: duplicate keys
// under a Warn policy and legacy keyword spellings.
type Diag interface {
	HasWarnings() bool
	Warnings() []string
	Issues() schemadoc.Issues
}

type simpleDiag struct{ ws schemadoc.Issues }

func (d *simpleDiag) HasWarnings() bool { return len(d.ws) > 0 }
func (d *simpleDiag) Warnings() []string {
	out := make([]string, len(d.ws))
	for i, w := range d.ws {
		out[i] = w.String()
	}
	return out
}
func (d *simpleDiag) Issues() schemadoc.Issues { return append(schemadoc.Issues(nil), d.ws...) }
func (d *simpleDiag) add(is ...schemadoc.Issue) { d.ws = append(d.ws, is...) }

// Codes reported by this package in addition to the schemadoc codes.
const (
	CodeLegacyKeyword  = "legacy_keyword"
	CodeUnknownFormat  = "unknown_format"
	CodeInvalidPattern = "invalid_pattern"
	CodeDuplicateEnum  = "duplicate_enum"
	CodeIgnoredKeyword = "ignored_keyword"
)
