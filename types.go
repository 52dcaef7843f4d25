package schemadoc

import eng "github.com/reoring/schemadoc/internal/engine"

// DefaultMaxDepth bounds container nesting when ParseOpt.MaxDepth is zero.
const DefaultMaxDepth = 1000

// UnknownPolicy controls how unrecognized schema keywords are handled.
type UnknownPolicy int

const (
	UnknownPreserve UnknownPolicy = iota // Keep unknown keywords (round-trip safe).
	UnknownStrip                         // Drop unknown keywords.
	UnknownStrict                        // Reject unknown keywords with an issue.
)

func (p UnknownPolicy) String() string {
	switch p {
	case UnknownStrip:
		return "strip"
	case UnknownStrict:
		return "strict"
	default:
		return "preserve"
	}
}

// Strictness configures enforcement for duplicate keys.
type Strictness struct {
	// OnDuplicateKey selects the duplicate JSON key policy. Ignore keeps the
	// last occurrence, Warn keeps the last occurrence and reports it, Error
	// rejects the document.
	OnDuplicateKey Severity
}

// Severity expresses the severity level for issues.
type Severity int

const (
	Ignore Severity = iota
	Warn
	Error
)

func (s Severity) String() string {
	switch s {
	case Warn:
		return "warn"
	case Error:
		return "error"
	default:
		return "ignore"
	}
}

// ParseOpt bundles parsing options.
type ParseOpt struct {
	Strictness Strictness
	// MaxDepth limits container nesting. 0 selects DefaultMaxDepth and a
	// negative value disables the check.
	MaxDepth int
	// MaxBytes stops decoding once the source reports an offset past it (0 = unlimited).
	MaxBytes int64
	FailFast bool
}

func (o ParseOpt) effectiveMaxDepth() int {
	switch {
	case o.MaxDepth == 0:
		return DefaultMaxDepth
	case o.MaxDepth < 0:
		return 0
	default:
		return o.MaxDepth
	}
}

func lastOpt(opts []ParseOpt) ParseOpt {
	if len(opts) > 0 {
		return opts[len(opts)-1]
	}
	return ParseOpt{}
}

func toEngineDup(s Severity) eng.DuplicateStrictness {
	switch s {
	case Error:
		return eng.DupError
	case Warn:
		return eng.DupWarn
	default:
		return eng.DupIgnore
	}
}
