package schemadoc

import (
	"errors"
	"fmt"
	"strings"

	"github.com/reoring/schemadoc/i18n"
	eng "github.com/reoring/schemadoc/internal/engine"
)

// Issue codes (exported consts for IDE completion and type safety by convention)
const (
	CodeInvalidType    = "invalid_type"
	CodeParseError     = "parse_error"
	CodeDuplicateKey   = "duplicate_key"
	CodeTruncated      = "truncated"
	CodeMaxDepth       = "max_depth"
	CodeTooSmall       = "too_small"
	CodeNotInteger     = "not_integer"
	CodeUniqueness     = "uniqueness"
	CodeInvalidEnum    = "invalid_enum"
	CodeUnknownKeyword = "unknown_keyword"
	CodeConflict       = "conflict"
)

// Issue represents a single decoding or shape entry.
type Issue struct {
	Path    string // RFC 6901 JSON Pointer of the offending value (for example: /properties/a/type). "" is the root.
	Code    string // One of the codes listed above.
	Message string
	Hint    string // Optional: remediation hints, accepted values, etc.
	Cause   error  // Optional: underlying error.
	Offset  int64  // Byte offset in the input source (-1 when unknown).
	// Line and Column locate the issue in line-oriented inputs (0 when unknown).
	Line   int
	Column int
	// Params carries structured parameters (e.g., {"keyword":"items","got":"string"})
	// for i18n and tooling.
	Params map[string]any
	// Keyword names the schema keyword the issue belongs to, when there is one.
	Keyword string
}

// String renders the issue as "path: code: message", with the root path
// shown as "(root)".
func (i Issue) String() string {
	s := DisplayPointer(i.Path) + ": " + i.Code
	if i.Message != "" {
		s += ": " + i.Message
	}
	if i.Line > 0 {
		s += fmt.Sprintf(" (line %d, column %d)", i.Line, i.Column)
	}
	return s
}

// Issues is a collection of errors that implements error.
type Issues []Issue

// Error summarizes the first few issues.
func (iss Issues) Error() string {
	if len(iss) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	n := len(iss)
	lim := min(n, maxShown)
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		fmt.Fprintf(b, "%s at %s", iss[i].Code, DisplayPointer(iss[i].Path))
	}
	if n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
}

// AppendIssues appends issues to the destination, initializing the slice when
// needed.
func AppendIssues(dst Issues, more ...Issue) Issues {
	if dst == nil {
		dst = Issues{}
	}
	return append(dst, more...)
}

// AsIssues extracts Issues from an error using errors.As internally.
func AsIssues(err error) (Issues, bool) {
	if err == nil {
		return nil, false
	}
	var iss Issues
	if errors.As(err, &iss) {
		return iss, true
	}
	return nil, false
}

// NewIssue builds an Issue whose message is rendered by the current i18n
// Translator. params are passed to the translator as strings.
func NewIssue(path, code string, params map[string]any) Issue {
	data := make(map[string]string, len(params))
	for k, v := range params {
		data[k] = fmt.Sprint(v)
	}
	kw, _ := params["keyword"].(string)
	return Issue{Path: path, Code: code, Message: i18n.T(code, data), Offset: -1, Params: params, Keyword: kw}
}

func issueFromEngine(si eng.SimpleIssue) Issue {
	return Issue{Code: si.Code, Path: si.Path, Message: si.Message, Offset: si.Offset, Line: si.Line, Column: si.Column}
}

// toIssues maps decoder errors into Issues.
func toIssues(err error) Issues {
	if err == nil {
		return nil
	}
	if ii, ok := AsIssues(err); ok {
		return ii
	}
	var ie eng.IssueError
	if errors.As(err, &ie) {
		return AppendIssues(nil, issueFromEngine(ie.SimpleIssue))
	}
	is := Issue{Code: CodeParseError, Message: err.Error(), Cause: err, Offset: -1}
	var pe positioned
	if errors.As(err, &pe) {
		is.Line, is.Column = pe.Position()
	}
	return AppendIssues(nil, is)
}

// positioned is implemented by source errors that know their line and column.
type positioned interface {
	Position() (line, column int)
}
