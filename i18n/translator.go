package i18n

import (
	"strings"
	"sync"
)

// Translator retrieves localized messages for Issue codes.
// data provides optional metadata to embed in the message (for example,
// "keyword", "expected" or "got").
type Translator interface {
	Message(code string, data map[string]string) string
}

// dictTranslator is the built-in dictionary-based Translator. Templates use
// {name} placeholders filled from data.
type dictTranslator struct{ lang string }

var dictionaries = map[string]map[string]string{
	"en": {
		"invalid_type":    "{keyword}: expected {expected}, got {got}",
		"parse_error":     "parse error",
		"duplicate_key":   "duplicate key {key}",
		"truncated":       "truncated",
		"max_depth":       "max depth exceeded",
		"too_small":       "{keyword}: {reason}",
		"not_integer":     "{keyword}: expected an integer, got {got}",
		"uniqueness":      "{keyword}: duplicate entry {got}",
		"invalid_enum":    "{keyword}: unknown value {got}",
		"unknown_keyword": "unknown keyword {keyword}",
		"conflict":        "{keyword}: conflicts with {other}",
		"legacy_keyword":  "{keyword}: legacy spelling of {other}",
		"unknown_format":  "{keyword}: unknown format {got}",
		"invalid_pattern": "{keyword}: pattern {got} does not compile: {reason}",
		"duplicate_enum":  "{keyword}: duplicate value {got}",
		"ignored_keyword": "{keyword}: ignored because {reason}",
	},
	"ja": {
		"invalid_type":    "{keyword}: 型が不正です ({expected} が必要ですが {got} でした)",
		"parse_error":     "解析エラー",
		"duplicate_key":   "キーが重複しています: {key}",
		"truncated":       "打ち切られました",
		"max_depth":       "ネストが深すぎます",
		"too_small":       "{keyword}: {reason}",
		"not_integer":     "{keyword}: 整数が必要ですが {got} でした",
		"uniqueness":      "{keyword}: 重複した要素があります: {got}",
		"invalid_enum":    "{keyword}: 未知の値です: {got}",
		"unknown_keyword": "未知のキーワードです: {keyword}",
		"conflict":        "{keyword}: {other} と矛盾しています",
		"legacy_keyword":  "{keyword}: {other} の旧表記です",
		"unknown_format":  "{keyword}: 未知のフォーマットです: {got}",
		"invalid_pattern": "{keyword}: パターン {got} をコンパイルできません: {reason}",
		"duplicate_enum":  "{keyword}: 値が重複しています: {got}",
		"ignored_keyword": "{keyword}: 無視されます ({reason})",
	},
}

func (t dictTranslator) Message(code string, data map[string]string) string {
	tmpl, ok := dictionaries[t.lang][code]
	if !ok {
		return code
	}
	if len(data) == 0 || !strings.Contains(tmpl, "{") {
		return tmpl
	}
	pairs := make([]string, 0, len(data)*2)
	for k, v := range data {
		pairs = append(pairs, "{"+k+"}", v)
	}
	return strings.NewReplacer(pairs...).Replace(tmpl)
}

var (
	mu                sync.RWMutex
	currentTranslator Translator = dictTranslator{lang: "en"}
)

// SetLanguage switches the built-in Translator language ("en"/"ja").
func SetLanguage(lang string) {
	if lang != "ja" {
		lang = "en"
	}
	SetTranslator(dictTranslator{lang: lang})
}

// SetTranslator replaces the Translator implementation (not limited to the
// dictionary version). nil restores English.
func SetTranslator(tr Translator) {
	if tr == nil {
		tr = dictTranslator{lang: "en"}
	}
	mu.Lock()
	currentTranslator = tr
	mu.Unlock()
}

// T fetches a message for the given code using the current Translator.
func T(code string, data map[string]string) string {
	mu.RLock()
	tr := currentTranslator
	mu.RUnlock()
	return tr.Message(code, data)
}
