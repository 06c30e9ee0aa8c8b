// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

// Package escape handles quoting and unquoting of SJSON strings.
package escape

import (
	"errors"
	"fmt"
	"unicode/utf16"
	"unicode/utf8"

	"go4.org/mem"
)

// Unquote decodes the body of an SJSON string. The input must have the
// enclosing double quotation marks already removed.
//
// Escape sequences are replaced with their unescaped equivalents, and a
// surrogate pair written as two \u escapes is combined into a single rune.
// Unlike a lenient decoder, Unquote reports an error for any escape outside
// the standard set, for malformed \u escapes, and for unescaped control bytes.
func Unquote(src mem.RO) ([]byte, error) {
	dec := make([]byte, 0, src.Len())
	putRune := func(r rune) { dec = utf8.AppendRune(dec, r) }

	for src.Len() != 0 {
		i := indexSpecial(src)
		if i < 0 {
			dec = mem.Append(dec, src)
			break
		}
		dec = mem.Append(dec, src.SliceTo(i))
		if c := src.At(i); c != '\\' {
			return nil, fmt.Errorf("unescaped control %q", c)
		}

		src = src.SliceFrom(i + 1)
		if src.Len() == 0 {
			return nil, errors.New("incomplete escape sequence")
		}
		c := src.At(0)
		src = src.SliceFrom(1)
		switch c {
		case '"', '\\', '/':
			dec = append(dec, c)
		case 'b':
			dec = append(dec, '\b')
		case 'f':
			dec = append(dec, '\f')
		case 'n':
			dec = append(dec, '\n')
		case 'r':
			dec = append(dec, '\r')
		case 't':
			dec = append(dec, '\t')
		case 'u':
			r, rest, err := decodeHex4(src)
			if err != nil {
				return nil, err
			}
			src = rest
			if utf16.IsSurrogate(r) && hasPrefixU(src) {
				if r2, rest2, err := decodeHex4(src.SliceFrom(2)); err == nil {
					if p := utf16.DecodeRune(r, r2); p != utf8.RuneError {
						putRune(p)
						src = rest2
						continue
					}
				}
			}
			putRune(r)
		default:
			return nil, fmt.Errorf("invalid %q after escape", c)
		}
	}
	return dec, nil
}

// indexSpecial returns the offset of the first backslash or control byte in
// src, or -1.
func indexSpecial(src mem.RO) int {
	for i := 0; i < src.Len(); i++ {
		if c := src.At(i); c == '\\' || c < ' ' {
			return i
		}
	}
	return -1
}

func hasPrefixU(src mem.RO) bool {
	return src.Len() >= 2 && src.At(0) == '\\' && src.At(1) == 'u'
}

func decodeHex4(src mem.RO) (rune, mem.RO, error) {
	if src.Len() < 4 {
		return 0, src, errors.New("incomplete Unicode escape")
	}
	v, err := parseHex(src.SliceTo(4))
	if err != nil {
		return 0, src, fmt.Errorf("invalid Unicode escape: %w", err)
	}
	return rune(v), src.SliceFrom(4), nil
}

func parseHex(data mem.RO) (int64, error) {
	var v int64
	for i := 0; i < data.Len(); i++ {
		b := data.At(i)
		v <<= 4
		if '0' <= b && b <= '9' {
			v += int64(b - '0')
		} else if 'a' <= b && b <= 'f' {
			v += int64(b - 'a' + 10)
		} else if 'A' <= b && b <= 'F' {
			v += int64(b - 'A' + 10)
		} else {
			return 0, fmt.Errorf("not a hex digit: %q", b)
		}
	}
	return v, nil
}
