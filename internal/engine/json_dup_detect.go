package engine

import (
	"errors"
	"io"
)

// DuplicateStrictness controls duplicate key handling in detection helpers.
type DuplicateStrictness int

const (
	DupIgnore DuplicateStrictness = iota
	DupWarn
	DupError
)

// SimpleIssue is a minimal issue representation used by internal helpers.
type SimpleIssue struct {
	Code    string
	Path    string
	Message string
	Offset  int64
	Line    int
	Column  int
}

// DetectDuplicateKeys drains src and reports every duplicated object key with
// its JSON Pointer. DupError stops at the first duplicate. maxIssues < 0 means
// unlimited; 0 disables reporting; >0 caps the list and appends a truncated
// marker.
func DetectDuplicateKeys(src TokenSource, onDup DuplicateStrictness, maxIssues int) ([]SimpleIssue, error) {
	if onDup == DupIgnore || maxIssues == 0 {
		return nil, nil
	}
	var issues []SimpleIssue
	full := false
	add := func(si SimpleIssue) {
		if full {
			return
		}
		issues = append(issues, si)
		if maxIssues > 0 && len(issues) >= maxIssues {
			issues = append(issues, SimpleIssue{Code: "truncated", Message: "max issues reached", Offset: -1})
			full = true
		}
	}
	mode := DupWarn
	if onDup == DupError {
		mode = DupError
	}
	enforced := WrapWithEnforcement(src, EnforceOptions{OnDuplicate: mode, IssueSink: add})
	depth := 0
	for {
		tok, err := enforced.NextToken()
		if err == nil {
			switch tok.Kind {
			case KindBeginObject, KindBeginArray:
				depth++
			case KindEndObject, KindEndArray:
				depth--
			}
			continue
		}
		if errors.Is(err, io.EOF) {
			if depth > 0 {
				add(SimpleIssue{Code: "parse_error", Message: "unexpected end of input", Offset: src.Location()})
			}
			return issues, nil
		}
		var ie IssueError
		if errors.As(err, &ie) {
			add(ie.SimpleIssue)
			return issues, nil
		}
		add(SimpleIssue{Code: "parse_error", Message: err.Error(), Offset: src.Location()})
		return issues, nil
	}
}
