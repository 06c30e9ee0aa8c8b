// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package sjson

import (
	"fmt"
	"io"
	"os"

	"github.com/creachadair/sjson/scan"
	"go4.org/mem"
)

// A Document holds the text of an SJSON document and is the source of its
// root Element. The text is never modified once the Document is created, so
// a Document and its elements may be read concurrently.
type Document struct {
	text mem.RO
}

// New constructs a Document over text. The string is used as-is, not copied.
func New(text string) *Document { return &Document{text: mem.S(text)} }

// FromBytes constructs a Document that takes ownership of buf. The caller
// must not modify buf after this call. FromBytes panics with an
// *AccessError if buf == nil.
func FromBytes(buf []byte) *Document {
	if buf == nil {
		panic(&AccessError{Op: "FromBytes", Err: ErrNilInput})
	}
	return &Document{text: mem.B(buf)}
}

// Read reads r to completion and returns a Document holding its contents.
func Read(r io.Reader) (*Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read document: %w", err)
	}
	return &Document{text: mem.B(data)}, nil
}

// Open reads the named file and returns a Document holding its contents.
func Open(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return &Document{text: mem.B(data)}, nil
}

// Len reports the length of the document text in bytes.
func (d *Document) Len() int { return d.text.Len() }

// Root returns the element for the top-level value of d. Leading whitespace
// and comments are skipped. The root of an empty document is nil.
func (d *Document) Root() Element {
	return Element{doc: d, pos: scan.SkipSpace(d.text, 0)}
}

// Check reports whether d is well-formed. Unlike the methods of Element,
// which scan only as much text as they need, Check parses every nested value
// and verifies that nothing follows the top-level value other than
// whitespace and comments. An empty document is well-formed.
func (d *Document) Check() error {
	return Catch(func() {
		root := d.Root()
		if root.pos == d.text.Len() {
			return
		}
		end := root.check()
		if rest := scan.SkipSpace(d.text, end); rest != d.text.Len() {
			panic(&SyntaxError{
				Offset:   rest,
				Location: scan.Locate(d.text, rest),
				Message:  "extra input after value",
			})
		}
	})
}
