// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package scan

import (
	"math"

	"github.com/creachadair/sjson/internal/escape"
	"go4.org/mem"
)

// ParseBool parses the Boolean constant beginning at pos.
func ParseBool(src mem.RO, pos int) bool {
	if hasWord(src, pos, "true") {
		return true
	} else if hasWord(src, pos, "false") {
		return false
	}
	failf(src, pos, "invalid Boolean constant")
	panic("unreachable")
}

// ParseInt parses the number beginning at pos as an integer. A number with a
// fraction or exponent is truncated toward zero. It is a syntax error if the
// value does not fit in an int64.
func ParseInt(src mem.RO, pos int) int64 {
	end, isFloat := numberEnd(src, pos)
	tok := src.Slice(pos, end)
	if !isFloat {
		v, err := mem.ParseInt(tok, 10, 64)
		if err != nil {
			failf(src, pos, "invalid integer %q", tok.StringCopy())
		}
		return v
	}
	f, err := mem.ParseFloat(tok, 64)
	if err != nil || f < math.MinInt64 || f >= math.MaxInt64 {
		failf(src, pos, "integer value out of range: %q", tok.StringCopy())
	}
	return int64(f)
}

// ParseFloat parses the number beginning at pos as a floating-point value.
func ParseFloat(src mem.RO, pos int) float64 {
	end, _ := numberEnd(src, pos)
	tok := src.Slice(pos, end)
	f, err := mem.ParseFloat(tok, 64)
	if err != nil {
		failf(src, pos, "invalid number %q", tok.StringCopy())
	}
	return f
}

// ParseString parses and unescapes the quoted string beginning at pos.
func ParseString(src mem.RO, pos int) string {
	end := stringEnd(src, pos)
	dec, err := escape.Unquote(src.Slice(pos+1, end-1))
	if err != nil {
		failf(src, pos, "invalid string: %v", err)
	}
	return string(dec)
}

// stringEnd returns the offset just past the closing quote of the string
// beginning at pos.
func stringEnd(src mem.RO, pos int) int {
	if pos >= src.Len() || src.At(pos) != '"' {
		failf(src, pos, "expected string")
	}
	for i := pos + 1; i < src.Len(); i++ {
		switch ch := src.At(i); {
		case ch == '"':
			return i + 1
		case ch == '\\':
			i++ // skip the escaped byte; Unquote checks it
		case ch < ' ':
			failf(src, i, "unescaped control %q in string", ch)
		}
	}
	failf(src, pos, "unterminated string")
	panic("unreachable")
}

// numberEnd returns the offset just past the number beginning at pos, and
// reports whether it has a fraction or exponent.
//
// The grammar is that of JSON, except that the integer part may be omitted
// when a fraction is present (".5", "-.25").
func numberEnd(src mem.RO, pos int) (int, bool) {
	i := pos
	if i < src.Len() && src.At(i) == '-' {
		i++
	}
	nInt := digitsAt(src, i)
	if nInt > 1 && src.At(i) == '0' {
		failf(src, pos, "extra leading zeroes")
	}
	i += nInt

	var isFloat bool
	if i < src.Len() && src.At(i) == '.' {
		i++
		nFrac := digitsAt(src, i)
		if nFrac == 0 {
			failf(src, i, "no digits after decimal point")
		}
		i += nFrac
		isFloat = true
	} else if nInt == 0 {
		failf(src, pos, "missing digits in number")
	}

	if i < src.Len() && (src.At(i) == 'e' || src.At(i) == 'E') {
		i++
		if i < src.Len() && (src.At(i) == '+' || src.At(i) == '-') {
			i++
		}
		nExp := digitsAt(src, i)
		if nExp == 0 {
			failf(src, i, "missing exponent digits")
		}
		i += nExp
		isFloat = true
	}
	if i < src.Len() && !isDelim(src.At(i)) {
		failf(src, i, "unexpected %q after number", src.At(i))
	}
	return i, isFloat
}

func digitsAt(src mem.RO, pos int) int {
	n := 0
	for pos+n < src.Len() && isDigit(src.At(pos+n)) {
		n++
	}
	return n
}

// hasWord reports whether the constant w appears at pos, followed by a
// delimiter or the end of input.
func hasWord(src mem.RO, pos int, w string) bool {
	end := pos + len(w)
	if end > src.Len() || !src.Slice(pos, end).Equal(mem.S(w)) {
		return false
	}
	return end == src.Len() || isDelim(src.At(end))
}

func wordEnd(src mem.RO, pos int, w string) int {
	if !hasWord(src, pos, w) {
		failf(src, pos, "unknown constant, want %q", w)
	}
	return pos + len(w)
}
