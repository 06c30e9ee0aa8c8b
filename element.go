// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package sjson

import (
	"fmt"
	"unicode/utf8"

	"github.com/creachadair/sjson/scan"
	"github.com/creachadair/sjson/strid"
	"github.com/creachadair/sjson/vmath"
)

// Type is the type of an SJSON value.
type Type = scan.Type

// Constants defining the valid Type values.
const (
	Nil    = scan.Nil
	Bool   = scan.Bool
	Number = scan.Number
	String = scan.String
	Array  = scan.Array
	Object = scan.Object
)

// An Element is a cursor to a single value in a Document. An Element is a
// small value and may be freely copied; it is valid only as long as the
// Document it came from.
//
// The zero Element is absent: it reports nil for every type predicate and
// returns the default for every coercion.
//
// No parse results are cached. Each method scans the text of the value
// afresh, so repeating a lookup repeats its cost but always yields the same
// result.
type Element struct {
	doc *Document
	pos int
}

// at returns an element of the same document at offset pos.
func (e Element) at(pos int) Element { return Element{doc: e.doc, pos: pos} }

// Type reports the type of the value at e. An absent element is Nil.
func (e Element) Type() Type {
	if e.doc == nil {
		return Nil
	}
	return scan.TypeAt(e.doc.text, e.pos)
}

// IsNil reports whether e is absent or its value is null.
func (e Element) IsNil() bool { return e.Type() == Nil }

// IsBool reports whether the value of e is true or false.
func (e Element) IsBool() bool { return e.Type() == Bool }

// IsNumber reports whether the value of e is a number.
func (e Element) IsNumber() bool { return e.Type() == Number }

// IsString reports whether the value of e is a string.
func (e Element) IsString() bool { return e.Type() == String }

// IsArray reports whether the value of e is an array.
func (e Element) IsArray() bool { return e.Type() == Array }

// IsObject reports whether the value of e is an object.
func (e Element) IsObject() bool { return e.Type() == Object }

// Raw returns the undecoded text of the value at e, or "" if e is absent.
func (e Element) Raw() string {
	if e.doc == nil || e.pos >= e.doc.text.Len() {
		return ""
	}
	return scan.Text(e.doc.text, e.pos).StringCopy()
}

// Index returns the element at offset i of the array at e. It panics with an
// *AccessError if e is not an array or i is out of range.
func (e Element) Index(i int) Element {
	elts := e.elements("Index")
	if i < 0 || i >= len(elts) {
		e.fail("Index", fmt.Errorf("%w: %d (n=%d)", ErrIndexRange, i, len(elts)))
	}
	return e.at(elts[i])
}

// IndexOrNil returns the element at offset i of the array at e, or an absent
// element if e is nil or i is out of range.
func (e Element) IndexOrNil(i int) Element {
	if e.IsNil() {
		return Element{}
	}
	elts := e.elements("IndexOrNil")
	if i < 0 || i >= len(elts) {
		return Element{}
	}
	return e.at(elts[i])
}

// Key returns the value of the member named key of the object at e. It
// panics with an *AccessError if e is not an object or has no such member.
// If key occurs more than once, the last occurrence is used.
func (e Element) Key(key string) Element {
	pos, ok := e.lookup("Key", key)
	if !ok {
		e.fail("Key", fmt.Errorf("%w: %q", ErrKeyNotFound, key))
	}
	return e.at(pos)
}

// KeyOrNil returns the value of the member named key of the object at e, or
// an absent element if e is nil or has no such member.
func (e Element) KeyOrNil(key string) Element {
	if e.IsNil() {
		return Element{}
	}
	if pos, ok := e.lookup("KeyOrNil", key); ok {
		return e.at(pos)
	}
	return Element{}
}

// HasKey reports whether the object at e has a member named key. It panics
// with an *AccessError if e is not an object.
func (e Element) HasKey(key string) bool {
	_, ok := e.lookup("HasKey", key)
	return ok
}

// Size reports the size of the value at e. Numbers, Booleans and null have
// size 1; a string has the number of Unicode code points it decodes to; an
// array has the number of its elements; and an object has the number of its
// distinct keys. An absent element has size 0.
func (e Element) Size() int {
	if e.doc == nil {
		return 0
	}
	switch t := e.Type(); t {
	case Nil, Bool, Number:
		return 1
	case String:
		return utf8.RuneCountInString(e.stringValue("Size"))
	case Array:
		return len(e.elements("Size"))
	case Object:
		return len(e.Keys())
	default:
		e.fail("Size", fmt.Errorf("%w: %v", ErrWrongType, t))
		panic("unreachable")
	}
}

// ToBool returns the Boolean value of e, or def if e is nil.
func (e Element) ToBool(def bool) bool {
	if e.IsNil() {
		return def
	}
	return e.boolValue("ToBool")
}

// ToInt returns the integer value of e, or def if e is nil. A number with a
// fractional part is truncated toward zero.
func (e Element) ToInt(def int) int {
	if e.IsNil() {
		return def
	}
	return int(e.intValue("ToInt"))
}

// ToFloat returns the numeric value of e, or def if e is nil.
func (e Element) ToFloat(def float64) float64 {
	if e.IsNil() {
		return def
	}
	return e.floatValue("ToFloat")
}

// ToString returns the decoded string value of e, or def if e is nil.
func (e Element) ToString(def string) string {
	if e.IsNil() {
		return def
	}
	return e.stringValue("ToString")
}

// ToStringID returns the identifier of the string value of e, or def if e
// is nil.
func (e Element) ToStringID(def strid.ID32) strid.ID32 {
	if e.IsNil() {
		return def
	}
	return strid.New(e.stringValue("ToStringID"))
}

// ToResourceID returns the identifier of the resource named by the string
// value of e, a path of the form "name.type". Unlike the other coercions,
// it has no default: it panics with an *AccessError if e is not a string or
// the path has no type.
func (e Element) ToResourceID() strid.ResourceID {
	id, err := strid.ParseResource(e.stringValue("ToResourceID"))
	if err != nil {
		e.fail("ToResourceID", fmt.Errorf("%w: %w", ErrInvalid, err))
	}
	return id
}

// ToVector2 returns the first two numbers of the array at e as a vector, or
// def if e is nil.
func (e Element) ToVector2(def vmath.Vector2) vmath.Vector2 {
	if e.IsNil() {
		return def
	}
	v := e.floats("ToVector2", 2)
	return vmath.Vector2{X: v[0], Y: v[1]}
}

// ToVector3 returns the first three numbers of the array at e as a vector,
// or def if e is nil.
func (e Element) ToVector3(def vmath.Vector3) vmath.Vector3 {
	if e.IsNil() {
		return def
	}
	v := e.floats("ToVector3", 3)
	return vmath.Vector3{X: v[0], Y: v[1], Z: v[2]}
}

// ToVector4 returns the first four numbers of the array at e as a vector, or
// def if e is nil.
func (e Element) ToVector4(def vmath.Vector4) vmath.Vector4 {
	if e.IsNil() {
		return def
	}
	v := e.floats("ToVector4", 4)
	return vmath.Vector4{X: v[0], Y: v[1], Z: v[2], W: v[3]}
}

// ToQuaternion returns the rotation described by the array at e, or def if e
// is nil. The array has the form [x, y, z, angle]: an axis followed by an
// angle in radians. It is not a literal quaternion.
func (e Element) ToQuaternion(def vmath.Quaternion) vmath.Quaternion {
	if e.IsNil() {
		return def
	}
	v := e.floats("ToQuaternion", 4)
	return vmath.QuaternionFromAxisAngle(vmath.Vector3{X: v[0], Y: v[1], Z: v[2]}, v[3])
}

// ToMatrix4x4 returns the matrix whose 16 elements, in row order, are the
// numbers of the array at e, or def if e is nil.
func (e Element) ToMatrix4x4(def vmath.Matrix4x4) vmath.Matrix4x4 {
	if e.IsNil() {
		return def
	}
	return vmath.Matrix4x4FromSlice(e.floats("ToMatrix4x4", 16))
}

// Keys returns the distinct keys of the object at e in the order of their
// first appearance.
func (e Element) Keys() []string { return e.AppendKeys(nil) }

// AppendKeys appends the distinct keys of the object at e to dst in the
// order of their first appearance, and returns the extended slice. The
// existing contents of dst are kept and are not considered when removing
// duplicates.
func (e Element) AppendKeys(dst []string) []string {
	mem := e.members("AppendKeys")
	seen := make(map[string]bool, len(mem))
	for _, m := range mem {
		if !seen[m.Key] {
			seen[m.Key] = true
			dst = append(dst, m.Key)
		}
	}
	return dst
}

// Path traverses a sequential path into the structure of e, where path
// elements are strings (denoting object keys) or integers (denoting offsets
// into arrays). Negative offsets count backward from the end of the array.
// If the path is valid, the element reached is returned; otherwise Path
// reports an error. Unlike Key and Index, Path does not panic for a path that
// does not match the document.
func (e Element) Path(path ...any) (Element, error) {
	cur := e
	err := Catch(func() {
		for _, elt := range path {
			switch t := elt.(type) {
			case string:
				if !cur.IsObject() {
					cur.fail("Path", fmt.Errorf("%w: cannot traverse %v with %q", ErrWrongType, cur.Type(), t))
				}
				cur = cur.Key(t)
			case int:
				if !cur.IsArray() {
					cur.fail("Path", fmt.Errorf("%w: cannot traverse %v with %d", ErrWrongType, cur.Type(), t))
				}
				i := t
				if i < 0 {
					i += len(cur.elements("Path"))
				}
				cur = cur.Index(i)
			default:
				panic(&AccessError{Op: "Path", Err: fmt.Errorf("invalid path element %T", elt)})
			}
		}
	})
	if err != nil {
		return Element{}, err
	}
	return cur, nil
}

func (e Element) boolValue(op string) bool {
	e.mustBe(op, Bool)
	return scan.ParseBool(e.doc.text, e.pos)
}

func (e Element) intValue(op string) int64 {
	e.mustBe(op, Number)
	return scan.ParseInt(e.doc.text, e.pos)
}

func (e Element) floatValue(op string) float64 {
	e.mustBe(op, Number)
	return scan.ParseFloat(e.doc.text, e.pos)
}

func (e Element) stringValue(op string) string {
	e.mustBe(op, String)
	return scan.ParseString(e.doc.text, e.pos)
}

// elements returns the offsets of the elements of the array at e.
func (e Element) elements(op string) []int {
	e.mustBe(op, Array)
	return scan.ParseArray(e.doc.text, e.pos)
}

// members returns the members of the object at e.
func (e Element) members(op string) []scan.Member {
	e.mustBe(op, Object)
	return scan.ParseObject(e.doc.text, e.pos)
}

// lookup returns the offset of the last member of the object at e named key.
func (e Element) lookup(op, key string) (int, bool) {
	mem := e.members(op)
	for i := len(mem) - 1; i >= 0; i-- {
		if mem[i].Key == key {
			return mem[i].Pos, true
		}
	}
	return 0, false
}

// floats returns the first n elements of the array at e as numbers.
func (e Element) floats(op string, n int) []float64 {
	elts := e.elements(op)
	if len(elts) < n {
		e.fail(op, fmt.Errorf("%w: want %d numbers, got %d", ErrIndexRange, n, len(elts)))
	}
	out := make([]float64, n)
	for i := range out {
		out[i] = e.at(elts[i]).floatValue(op)
	}
	return out
}

func (e Element) mustBe(op string, want Type) {
	if got := e.Type(); got != want {
		e.fail(op, fmt.Errorf("%w: got %v, want %v", ErrWrongType, got, want))
	}
}

func (e Element) fail(op string, err error) {
	aerr := &AccessError{Op: op, Err: err}
	if e.doc != nil {
		aerr.Location = scan.Locate(e.doc.text, e.pos)
	}
	panic(aerr)
}

// check validates the value at e and everything it contains, and returns the
// offset just past its end.
func (e Element) check() int {
	src := e.doc.text
	switch e.Type() {
	case Array:
		for _, pos := range scan.ParseArray(src, e.pos) {
			e.at(pos).check()
		}
	case Object:
		for _, m := range scan.ParseObject(src, e.pos) {
			e.at(m.Pos).check()
		}
	case Number:
		scan.ParseFloat(src, e.pos)
	case String:
		scan.ParseString(src, e.pos)
	case Bool:
		scan.ParseBool(src, e.pos)
	}
	return scan.End(src, e.pos) // for Nil, this requires "null"
}
