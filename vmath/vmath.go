// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

// Package vmath defines the vector, quaternion and matrix types that SJSON
// values are coerced to. The 2- and 3-component vectors and the quaternion
// are the gonum types; the rest are defined here in the same style.
package vmath

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/num/quat"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

// Vector2 is a 2-component vector.
type Vector2 = r2.Vec

// Vector3 is a 3-component vector.
type Vector3 = r3.Vec

// Quaternion is a quaternion whose Real part is the scalar (w) component.
type Quaternion = quat.Number

// Vector4 is a 4-component vector.
type Vector4 struct {
	X, Y, Z, W float64
}

// QuaternionFromAxisAngle returns the rotation of angle radians about axis.
// The axis is used as given and is not normalized.
func QuaternionFromAxisAngle(axis Vector3, angle float64) Quaternion {
	s, c := math.Sincos(angle / 2)
	v := r3.Scale(s, axis)
	return Quaternion{Real: c, Imag: v.X, Jmag: v.Y, Kmag: v.Z}
}

// Matrix4x4 is a 4x4 matrix stored as four rows: the X, Y and Z axes and the
// translation T.
type Matrix4x4 struct {
	X, Y, Z, T Vector4
}

// Identity is the 4x4 identity matrix.
var Identity = Matrix4x4{
	X: Vector4{X: 1},
	Y: Vector4{Y: 1},
	Z: Vector4{Z: 1},
	T: Vector4{W: 1},
}

// Matrix4x4FromSlice constructs a matrix from the first 16 elements of v,
// taken four at a time as the rows X, Y, Z, T. It panics if len(v) < 16.
func Matrix4x4FromSlice(v []float64) Matrix4x4 {
	if len(v) < 16 {
		panic(fmt.Sprintf("vmath: matrix needs 16 elements, got %d", len(v)))
	}
	row := func(i int) Vector4 { return Vector4{v[i], v[i+1], v[i+2], v[i+3]} }
	return Matrix4x4{X: row(0), Y: row(4), Z: row(8), T: row(12)}
}

// Floats returns the elements of m in row order.
func (m Matrix4x4) Floats() [16]float64 {
	var out [16]float64
	for i, r := range [...]Vector4{m.X, m.Y, m.Z, m.T} {
		out[4*i], out[4*i+1], out[4*i+2], out[4*i+3] = r.X, r.Y, r.Z, r.W
	}
	return out
}

// Dense returns a copy of m as a gonum dense matrix.
func (m Matrix4x4) Dense() *mat.Dense {
	f := m.Floats()
	return mat.NewDense(4, 4, f[:])
}
