// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package sjson

import (
	"fmt"

	"github.com/creachadair/sjson/internal/escape"
	"github.com/creachadair/sjson/scan"
	"go4.org/mem"
)

// Quote returns s as a quoted SJSON string. Unquote(Quote(s)) == s for every
// valid UTF-8 string s.
func Quote(s string) string { return string(escape.Quote(mem.S(s))) }

// Unquote decodes s, which must consist of exactly one quoted SJSON string,
// as it would be written in a document. Unlike Element.ToString, Unquote
// reports malformed input as an error rather than panicking.
func Unquote(s string) (string, error) {
	var out string
	err := Catch(func() {
		src := mem.S(s)
		if scan.TypeAt(src, 0) != String || scan.End(src, 0) != src.Len() {
			panic(&AccessError{Op: "Unquote", Err: fmt.Errorf("%w: %q is not a quoted string", ErrWrongType, s)})
		}
		out = scan.ParseString(src, 0)
	})
	return out, err
}
