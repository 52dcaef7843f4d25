package schemadoc

import (
	"math/big"
	"strings"
)

// decimal is a number literal in normalized form. The value is
// 0.digits × 10^exp, digits has no leading or trailing zeros, and zero has no
// digits. Two literals denote the same number exactly when their decimals
// match, however large the exponent.
type decimal struct {
	neg    bool
	digits string
	exp    *big.Int
}

// parseDecimal normalizes a literal that already matches the JSON grammar.
func parseDecimal(lit string) decimal {
	var d decimal
	if strings.HasPrefix(lit, "-") {
		d.neg = true
		lit = lit[1:]
	}
	mant, expText := lit, ""
	if i := strings.IndexAny(lit, "eE"); i >= 0 {
		mant, expText = lit[:i], lit[i+1:]
	}
	intPart, frac, _ := strings.Cut(mant, ".")
	digits := intPart + frac
	trimmed := strings.TrimLeft(digits, "0")
	point := int64(len(intPart) - (len(digits) - len(trimmed)))
	d.digits = strings.TrimRight(trimmed, "0")
	if d.digits == "" {
		return decimal{}
	}
	d.exp = big.NewInt(point)
	if expText != "" {
		if e, ok := new(big.Int).SetString(expText, 10); ok {
			d.exp.Add(d.exp, e)
		}
	}
	return d
}

func (d decimal) sign() int {
	switch {
	case d.digits == "":
		return 0
	case d.neg:
		return -1
	}
	return 1
}

func (d decimal) equal(o decimal) bool {
	if d.digits == "" || o.digits == "" {
		return d.digits == o.digits
	}
	return d.neg == o.neg && d.digits == o.digits && d.exp.Cmp(o.exp) == 0
}

// NumberSign returns -1, 0 or +1 for a number. It is exact for every literal,
// including ones such as 1e-400 that float64 cannot hold.
func (v Value) NumberSign() (int, bool) {
	if v.kind != KindNumber {
		return 0, false
	}
	return parseDecimal(v.s).sign(), true
}

func numbersEqual(a, b string) bool {
	return a == b || parseDecimal(a).equal(parseDecimal(b))
}
