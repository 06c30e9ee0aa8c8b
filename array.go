// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package sjson

// Scalar is the set of element types supported by AppendArray.
type Scalar interface {
	bool | int16 | uint16 | int32 | uint32 | int | int64 | float32 | float64 | string
}

// AppendArray appends the elements of the array at e to dst, converted to
// type T, and returns the extended slice. Existing elements of dst are kept,
// so several arrays may be accumulated into one slice.
//
// Integer conversions follow the Go conversion rules and do not check for
// overflow of the target type. AppendArray panics with an *AccessError if e
// is not an array or an element does not have the type T requires.
func AppendArray[T Scalar](dst []T, e Element) []T {
	for _, pos := range e.elements("AppendArray") {
		elt := e.at(pos)
		var v T
		switch p := any(&v).(type) {
		case *bool:
			*p = elt.boolValue("AppendArray")
		case *int16:
			*p = int16(elt.intValue("AppendArray"))
		case *uint16:
			*p = uint16(elt.intValue("AppendArray"))
		case *int32:
			*p = int32(elt.intValue("AppendArray"))
		case *uint32:
			*p = uint32(elt.intValue("AppendArray"))
		case *int:
			*p = int(elt.intValue("AppendArray"))
		case *int64:
			*p = elt.intValue("AppendArray")
		case *float32:
			*p = float32(elt.floatValue("AppendArray"))
		case *float64:
			*p = elt.floatValue("AppendArray")
		case *string:
			*p = elt.stringValue("AppendArray")
		}
		dst = append(dst, v)
	}
	return dst
}
