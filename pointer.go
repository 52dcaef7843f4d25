package schemadoc

import (
	"fmt"
	"strconv"
	"strings"

	eng "github.com/reoring/schemadoc/internal/engine"
)

// Path builds JSON Pointers (RFC 6901) one reference token at a time. The
// zero Path is the document root.
type Path string

// Field appends an object member name, escaping '~' and '/'.
func (p Path) Field(name string) Path { return Path(eng.JoinPointer(string(p), name)) }

// Index appends an array position.
func (p Path) Index(i int) Path { return Path(string(p) + "/" + strconv.Itoa(i)) }

// Pointer renders the path for Issue.Path ("" for the root).
func (p Path) Pointer() string { return string(p) }

// DisplayPointer renders a pointer for people: the root, "", becomes "(root)".
func DisplayPointer(ptr string) string {
	if ptr == "" {
		return "(root)"
	}
	return ptr
}

// Issue creates an Issue located at p. Its message comes from the i18n
// Translator.
func (p Path) Issue(code string, params map[string]any) Issue {
	return NewIssue(p.Pointer(), code, params)
}

var pointerUnescaper = strings.NewReplacer("~1", "/", "~0", "~")

// ParsePointer splits a JSON Pointer into unescaped reference tokens. ""
// addresses the root and "/" the member with the empty name.
func ParsePointer(ptr string) ([]string, error) {
	if ptr == "" {
		return nil, nil
	}
	if !strings.HasPrefix(ptr, "/") {
		return nil, fmt.Errorf("json pointer %q must start with '/'", ptr)
	}
	parts := strings.Split(ptr[1:], "/")
	for i, p := range parts {
		for j := 0; j < len(p); j++ {
			if p[j] == '~' && (j+1 == len(p) || (p[j+1] != '0' && p[j+1] != '1')) {
				return nil, fmt.Errorf("json pointer %q has an invalid escape", ptr)
			}
		}
		parts[i] = pointerUnescaper.Replace(p)
	}
	return parts, nil
}
