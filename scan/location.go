// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package scan

import (
	"fmt"

	"go4.org/mem"
)

// A LineCol describes the line number and column offset of a location in
// source text.
type LineCol struct {
	Line   int // line number, 1-based
	Column int // byte offset of column in line, 0-based
}

func (lc LineCol) String() string { return fmt.Sprintf("%d:%d", lc.Line, lc.Column) }

// Locate returns the line and column of offset pos in src.
func Locate(src mem.RO, pos int) LineCol {
	pos = min(max(pos, 0), src.Len())
	lc := LineCol{Line: 1}
	start := 0
	for {
		i := mem.IndexByte(src.Slice(start, pos), '\n')
		if i < 0 {
			break
		}
		lc.Line++
		start += i + 1
	}
	lc.Column = pos - start
	return lc
}

// SyntaxError is the concrete type of the panic value reported when
// malformed input is found.
type SyntaxError struct {
	Offset   int     // byte offset of the error, 0-based
	Location LineCol // line and column of the error
	Message  string
}

// Error satisfies the error interface.
func (s *SyntaxError) Error() string {
	return fmt.Sprintf("at %s: %s", s.Location, s.Message)
}

func failf(src mem.RO, pos int, msg string, args ...any) {
	panic(&SyntaxError{
		Offset:   pos,
		Location: Locate(src, pos),
		Message:  fmt.Sprintf(msg, args...),
	})
}
