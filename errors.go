// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package sjson

import (
	"errors"
	"fmt"

	"github.com/creachadair/sjson/scan"
)

// SyntaxError is the concrete type of the panic value reported for malformed
// document text.
type SyntaxError = scan.SyntaxError

// Errors wrapped by an *AccessError. Use errors.Is to distinguish them.
var (
	ErrIndexRange  = errors.New("index out of range")
	ErrKeyNotFound = errors.New("key not found")
	ErrWrongType   = errors.New("wrong value type")
	ErrNilInput    = errors.New("nil input")
	ErrInvalid     = errors.New("invalid value")
)

// AccessError is the concrete type of the panic value reported when an
// Element is used in a way its value does not support, for example indexing
// past the end of an array or coercing a string to a number.
type AccessError struct {
	Op       string       // the name of the failing method
	Location scan.LineCol // the location of the value; zero if absent
	Err      error        // one of the Err* values, possibly wrapped
}

// Error satisfies the error interface.
func (a *AccessError) Error() string {
	if a.Location.Line == 0 {
		return fmt.Sprintf("%s: %v", a.Op, a.Err)
	}
	return fmt.Sprintf("at %s: %s: %v", a.Location, a.Op, a.Err)
}

// Unwrap supports error wrapping.
func (a *AccessError) Unwrap() error { return a.Err }

// Catch calls f and returns nil if it completes normally. If f panics with a
// *SyntaxError or an *AccessError, Catch recovers and returns that error.
// Any other panic is propagated.
//
// The strict methods of Element and the functions of package scan report
// failures by panicking; Catch is the boundary at which a tool that reads
// many documents turns those into errors it can report:
//
//	if err := sjson.Catch(func() { compile(doc.Root()) }); err != nil {
//	   log.Fatalf("%s: %v", path, err)
//	}
func Catch(f func()) (err error) {
	defer func() {
		if v := recover(); v != nil {
			switch t := v.(type) {
			case *SyntaxError:
				err = t
			case *AccessError:
				err = t
			default:
				panic(v)
			}
		}
	}()
	f()
	return nil
}
