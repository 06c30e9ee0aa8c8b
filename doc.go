// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

// Package sjson implements lazy navigation of SJSON documents.
//
// SJSON is the JSON dialect used for engine resource descriptions. It extends
// JSON by allowing object keys without quotation marks, and by treating C++
// style comments (/* ... */ and // ...) as whitespace.
//
// # Documents
//
// A Document holds the text of one SJSON document. Construct one from a
// string, a byte slice, a reader, or a file, and call Root to get its
// top-level value:
//
//	doc, err := sjson.Open("units/soldier.unit")
//	if err != nil {
//	   log.Fatalf("Open: %v", err)
//	}
//	root := doc.Root()
//
// # Elements
//
// An Element is a cursor to one value in a document. No tree is built:
// each method on an Element scans the text it needs at the time it is
// called, and returns either a scalar or another Element.
//
//	name := root.Key("name").ToString("")
//	pos := root.KeyOrNil("position").ToVector3(vmath.Vector3{})
//
// Each navigation operation comes in two forms. The strict forms (Index, Key,
// HasKey, and the coercions applied to a value of the wrong type) treat a
// mismatch between the document and the caller's expectations as a
// programming error, and panic with an *AccessError. The lenient forms
// (IndexOrNil, KeyOrNil, and the coercions applied to a nil element) return a
// nil element or the caller's default instead.
//
// Malformed document text is reported by a panic with a *SyntaxError. Use
// Catch to convert either kind of panic into an error at the boundary of a
// tool that processes many documents:
//
//	err := sjson.Catch(func() {
//	   for _, key := range root.Keys() {
//	      process(key, root.Key(key))
//	   }
//	})
//
// To validate an entire document up front, call its Check method.
package sjson
