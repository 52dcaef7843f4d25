package jsonschema

import (
	"regexp"
	"strconv"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/reoring/schemadoc"
)

const patternCacheSize = 512

type compiled struct {
	re  *regexp.Regexp
	err error
}

var patternCache, _ = lru.New[string, compiled](patternCacheSize)

// CompilePattern compiles a pattern or patternProperties key with Go's RE2
// syntax. Results, failures included, are cached. ECMA 262 features that RE2
// lacks (lookaround, backreferences) fail to compile.
func CompilePattern(pattern string) (*regexp.Regexp, error) {
	if c, ok := patternCache.Get(pattern); ok {
		return c.re, c.err
	}
	re, err := regexp.Compile(pattern)
	patternCache.Add(pattern, compiled{re: re, err: err})
	return re, err
}

// Lint reports advisory findings for a schema that already passed shape
// validation: unknown format values, patterns that do not compile, duplicate
// enum values, and additionalItems next to a single-schema items, where it
// has no effect. Findings never make a document invalid.
func Lint(root *Schema) schemadoc.Issues {
	var out schemadoc.Issues
	_ = Walk(root, func(ptr string, s *Schema) error {
		p := schemadoc.Path(ptr)
		if s.Format != nil && !s.Format.Known() {
			out = append(out, p.Field(KwFormat).Issue(CodeUnknownFormat, map[string]any{"keyword": KwFormat, "got": strconv.Quote(string(*s.Format))}))
		}
		if s.Pattern != nil {
			if _, err := CompilePattern(*s.Pattern); err != nil {
				out = append(out, patternIssue(p.Field(KwPattern), KwPattern, *s.Pattern, err))
			}
		}
		s.PatternProperties.Range(func(key string, _ *Schema) bool {
			if _, err := CompilePattern(key); err != nil {
				out = append(out, patternIssue(p.Field(KwPatternProperties).Field(key), KwPatternProperties, key, err))
			}
			return true
		})
		if s.Enum != nil {
			vals := s.Enum.Slice()
			for i := 1; i < len(vals); i++ {
				for j := 0; j < i; j++ {
					if schemadoc.Equal(vals[i], vals[j]) {
						out = append(out, p.Field(KwEnum).Index(i).Issue(CodeDuplicateEnum, map[string]any{"keyword": KwEnum, "got": enumText(vals[i])}))
						break
					}
				}
			}
		}
		if s.AdditionalItems != nil && s.Items != nil && !s.Items.IsTuple() {
			out = append(out, p.Field(KwAdditionalItems).Issue(CodeIgnoredKeyword, map[string]any{"keyword": KwAdditionalItems, "reason": "items is a single schema"}))
		}
		return nil
	})
	return out
}

func patternIssue(p schemadoc.Path, kw, pattern string, err error) schemadoc.Issue {
	is := p.Issue(CodeInvalidPattern, map[string]any{"keyword": kw, "got": strconv.Quote(pattern), "reason": err.Error()})
	is.Cause = err
	return is
}

func enumText(v schemadoc.Value) string {
	b, err := v.MarshalJSON()
	if err != nil {
		return v.Kind().String()
	}
	return string(b)
}
