// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package scan

import (
	"github.com/creachadair/sjson/internal/escape"
	"go4.org/mem"
)

// A Member is a single key-value pair of an object.
type Member struct {
	Key string // the decoded key text
	Pos int    // the offset of the first byte of the value
}

// ParseArray parses the array beginning at pos and returns the offsets of
// its elements, in order. Each offset identifies the first significant byte
// of an element.
func ParseArray(src mem.RO, pos int) []int {
	expect(src, pos, '[')
	var out []int
	i := SkipSpace(src, pos+1)
	if i < src.Len() && src.At(i) == ']' {
		return out
	}
	for {
		out = append(out, i)
		i = SkipSpace(src, End(src, i))
		if i >= src.Len() {
			failf(src, pos, "unterminated array")
		}
		switch ch := src.At(i); ch {
		case ',':
			i = SkipSpace(src, i+1)
		case ']':
			return out
		default:
			failf(src, i, `got %q, want "," or "]"`, ch)
		}
	}
}

// ParseObject parses the object beginning at pos and returns its members in
// the order they occur in the text. Duplicate keys are reported as written.
func ParseObject(src mem.RO, pos int) []Member {
	expect(src, pos, '{')
	var out []Member
	i := SkipSpace(src, pos+1)
	if i < src.Len() && src.At(i) == '}' {
		return out
	}
	for {
		if i >= src.Len() {
			failf(src, pos, "unterminated object")
		}
		key, next := parseKey(src, i)
		i = SkipSpace(src, next)
		if i >= src.Len() || src.At(i) != ':' {
			failf(src, i, "missing %q after key %q", ':', key)
		}
		i = SkipSpace(src, i+1)
		out = append(out, Member{Key: key, Pos: i})

		i = SkipSpace(src, End(src, i))
		if i >= src.Len() {
			failf(src, pos, "unterminated object")
		}
		switch ch := src.At(i); ch {
		case ',':
			i = SkipSpace(src, i+1)
		case '}':
			return out
		default:
			failf(src, i, `got %q, want "," or "}"`, ch)
		}
	}
}

// parseKey parses a quoted or unquoted object key at pos, and returns the key
// and the offset just past it.
func parseKey(src mem.RO, pos int) (string, int) {
	if src.At(pos) == '"' {
		end := stringEnd(src, pos)
		dec, err := escape.Unquote(src.Slice(pos+1, end-1))
		if err != nil {
			failf(src, pos, "invalid key: %v", err)
		}
		return string(dec), end
	}
	end := pos
	for end < src.Len() && isKeyByte(src.At(end)) {
		end++
	}
	if end == pos {
		failf(src, pos, "got %q, want object key", src.At(pos))
	}
	return src.Slice(pos, end).StringCopy(), end
}

func expect(src mem.RO, pos int, want byte) {
	if pos >= src.Len() {
		failf(src, pos, "got end of input, want %q", want)
	} else if ch := src.At(pos); ch != want {
		failf(src, pos, "got %q, want %q", ch, want)
	}
}
