// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

// Package strid computes the string identifiers used to name engine
// resources and properties.
//
// Property names are identified by a 32-bit MurmurHash2 (ID32). Resources are
// identified by a pair of 64-bit MurmurHash64A values (ID64), one for the
// resource type and one for its name, as given by a path "name.type":
//
//	units/soldier.unit  →  name "units/soldier", type "unit"
package strid

import (
	"errors"
	"fmt"
	"strings"

	murmur "github.com/aviddiviner/go-murmur"
)

// ID32 is a 32-bit string identifier. The zero value is the identifier of
// the empty string.
type ID32 uint32

// New returns the identifier of s, the 32-bit MurmurHash2 of its bytes with
// seed 0.
func New(s string) ID32 { return ID32(murmur.MurmurHash2([]byte(s), 0)) }

// String renders id as 8 lower-case hexadecimal digits.
func (id ID32) String() string { return fmt.Sprintf("%08x", uint32(id)) }

// ID64 is a 64-bit string identifier. The zero value is the identifier of
// the empty string.
type ID64 uint64

// New64 returns the identifier of s, the MurmurHash64A of its bytes with
// seed 0.
func New64(s string) ID64 { return ID64(murmur.MurmurHash64A([]byte(s), 0)) }

// String renders id as 16 lower-case hexadecimal digits.
func (id ID64) String() string { return fmt.Sprintf("%016x", uint64(id)) }

// A ResourceID identifies a resource by its type and name.
type ResourceID struct {
	Type ID64 // e.g., the identifier of "unit"
	Name ID64 // e.g., the identifier of "units/soldier"
}

// String renders id as "type-name" in hexadecimal.
func (id ResourceID) String() string { return id.Type.String() + "-" + id.Name.String() }

// ErrNoType is reported by ParseResource for a path without a type suffix.
var ErrNoType = errors.New("resource path has no type")

// NewResource returns the identifier of the resource with the given type and
// name.
func NewResource(typ, name string) ResourceID {
	return ResourceID{Type: New64(typ), Name: New64(name)}
}

// ParseResource returns the identifier of the resource at path, which has the
// form "name.type". The type is the text after the last period; the name is
// everything before it. Both must be non-empty.
func ParseResource(path string) (ResourceID, error) {
	i := strings.LastIndexByte(path, '.')
	if i <= 0 || i == len(path)-1 || strings.IndexByte(path[i:], '/') >= 0 {
		return ResourceID{}, fmt.Errorf("%w: %q", ErrNoType, path)
	}
	return NewResource(path[i+1:], path[:i]), nil
}
