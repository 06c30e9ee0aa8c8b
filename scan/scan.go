// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

// Package scan implements a stateless classifier for SJSON values.
//
// Every function in this package takes the complete text of a document and a
// byte offset (a "cursor") identifying the first significant byte of a value.
// Nothing is cached between calls: each call scans only as much text as it
// needs to answer the question asked. ParseArray and ParseObject report the
// offsets of the immediate children of a container without descending into
// their contents, beyond what is required to find where each child ends.
//
// SJSON extends JSON in two ways: object keys may be written without
// quotation marks, and C++ style comments (// line and /* block */) are
// treated as whitespace between tokens.
//
// Malformed input is a fatal error. A function that encounters a syntax
// error panics with a value of concrete type *SyntaxError.
package scan

import "go4.org/mem"

// Type is the type of an SJSON value.
type Type byte

// Constants defining the valid Type values.
const (
	Nil    Type = iota // null, or no value
	Bool               // true or false
	Number             // integer or floating-point number
	String             // quoted string
	Array              // [ ... ]
	Object             // { ... }
)

var typeStr = [...]string{
	Nil:    "nil",
	Bool:   "bool",
	Number: "number",
	String: "string",
	Array:  "array",
	Object: "object",
}

func (t Type) String() string {
	if int(t) >= len(typeStr) {
		return "invalid type"
	}
	return typeStr[t]
}

// TypeAt classifies the value beginning at offset pos of src, without
// consuming or validating it. An offset at or past the end of src is Nil.
func TypeAt(src mem.RO, pos int) Type {
	if pos < 0 || pos >= src.Len() {
		return Nil
	}
	switch ch := src.At(pos); ch {
	case '{':
		return Object
	case '[':
		return Array
	case '"':
		return String
	case 't', 'f':
		return Bool
	default:
		if isNumStart(ch) {
			return Number
		}
		return Nil
	}
}

// SkipSpace returns the offset of the first byte at or after pos that is not
// whitespace or part of a comment. Whitespace is any byte <= 0x20.
func SkipSpace(src mem.RO, pos int) int {
	for {
		for pos < src.Len() && isSpace(src.At(pos)) {
			pos++
		}
		end, ok := skipComment(src, pos)
		if !ok {
			return pos
		}
		pos = end
	}
}

// End returns the offset just past the end of the value beginning at pos.
// Strings and containers are checked for balance; the contents of a
// container are not otherwise validated.
func End(src mem.RO, pos int) int {
	if pos >= src.Len() {
		failf(src, pos, "unexpected end of input")
	}
	switch ch := src.At(pos); ch {
	case '"':
		return stringEnd(src, pos)
	case '[', '{':
		return containerEnd(src, pos)
	case 't':
		return wordEnd(src, pos, "true")
	case 'f':
		return wordEnd(src, pos, "false")
	case 'n':
		return wordEnd(src, pos, "null")
	default:
		if isNumStart(ch) {
			end, _ := numberEnd(src, pos)
			return end
		}
		failf(src, pos, "unexpected %q", ch)
	}
	panic("unreachable")
}

// Text returns the undecoded text of the value beginning at pos.
func Text(src mem.RO, pos int) mem.RO { return src.Slice(pos, End(src, pos)) }

// containerEnd returns the offset just past the array or object that begins
// at pos. Nested containers are matched with an explicit stack of closers.
func containerEnd(src mem.RO, pos int) int {
	stk := []byte{closerFor(src.At(pos))}
	i := pos + 1
	for len(stk) != 0 {
		if i >= src.Len() {
			failf(src, pos, "unterminated %s", TypeAt(src, pos))
		}
		switch ch := src.At(i); ch {
		case '"':
			i = stringEnd(src, i)
			continue
		case '/':
			end, ok := skipComment(src, i)
			if !ok {
				failf(src, i, "unexpected %q", ch)
			}
			i = end
			continue
		case '[', '{':
			stk = append(stk, closerFor(ch))
		case ']', '}':
			if top := stk[len(stk)-1]; ch != top {
				failf(src, i, "got %q, want %q", ch, top)
			}
			stk = stk[:len(stk)-1]
		}
		i++
	}
	return i
}

// skipComment reports whether a comment begins at pos and, if so, returns
// the offset just past its end. A line comment includes its newline.
func skipComment(src mem.RO, pos int) (int, bool) {
	if pos+1 >= src.Len() || src.At(pos) != '/' {
		return pos, false
	}
	body := src.SliceFrom(pos + 2)
	switch src.At(pos + 1) {
	case '/':
		if i := mem.IndexByte(body, '\n'); i >= 0 {
			return pos + 2 + i + 1, true
		}
		return src.Len(), true
	case '*':
		if i := mem.Index(body, mem.S("*/")); i >= 0 {
			return pos + 2 + i + 2, true
		}
		failf(src, pos, "unterminated block comment")
	}
	return pos, false
}

func closerFor(ch byte) byte {
	if ch == '[' {
		return ']'
	}
	return '}'
}

func isSpace(ch byte) bool    { return ch <= ' ' }
func isDigit(ch byte) bool    { return '0' <= ch && ch <= '9' }
func isNumStart(ch byte) bool { return ch == '-' || ch == '.' || isDigit(ch) }

// isDelim reports whether ch may directly follow a scalar value.
func isDelim(ch byte) bool {
	return isSpace(ch) || ch == ',' || ch == ']' || ch == '}' || ch == ':' || ch == '/'
}

// isKeyByte reports whether ch may appear in an unquoted object key.
func isKeyByte(ch byte) bool {
	return ('a' <= ch && ch <= 'z') || ('A' <= ch && ch <= 'Z') || isDigit(ch) ||
		ch == '_' || ch == '-' || ch == '.' || ch == '$'
}
