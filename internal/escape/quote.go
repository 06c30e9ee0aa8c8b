// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package escape

import (
	"unicode/utf8"

	"go4.org/mem"
)

var controlEsc = [...]byte{
	'\b': 'b',
	'\f': 'f',
	'\n': 'n',
	'\r': 'r',
	'\t': 't',
	' ':  ' ', // sentinel
}

const hexDigit = "0123456789abcdef"

// Quote escapes src for inclusion in an SJSON string and adds the enclosing
// double quotation marks.
func Quote(src mem.RO) []byte {
	buf := make([]byte, 0, src.Len()+2)
	buf = append(buf, '"')
	for src.Len() != 0 {
		r, n := mem.DecodeRune(src)
		src = src.SliceFrom(max(n, 1))

		switch {
		case r == '\\' || r == '"':
			buf = append(buf, '\\', byte(r))
		case r < ' ':
			if b := controlEsc[r]; b != 0 {
				buf = append(buf, '\\', b)
			} else {
				buf = append(buf, '\\', 'u', '0', '0', hexDigit[r>>4], hexDigit[r&15])
			}
		case r == utf8.RuneError, r == '\u2028', r == '\u2029':
			buf = append(buf, '\\', 'u',
				hexDigit[(r>>12)&15], hexDigit[(r>>8)&15], hexDigit[(r>>4)&15], hexDigit[r&15])
		default:
			buf = utf8.AppendRune(buf, r)
		}
	}
	return append(buf, '"')
}
