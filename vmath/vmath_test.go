// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package vmath_test

import (
	"math"
	"testing"

	"github.com/creachadair/mds/mtest"
	"github.com/creachadair/sjson/vmath"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/num/quat"
)

func TestQuaternionFromAxisAngle(t *testing.T) {
	q := vmath.QuaternionFromAxisAngle(vmath.Vector3{Z: 1}, math.Pi/2)
	want := vmath.Quaternion{Real: math.Sqrt2 / 2, Kmag: math.Sqrt2 / 2}
	if diff := cmp.Diff(want, q, cmpopts.EquateApprox(0, 1e-12)); diff != "" {
		t.Errorf("Quaternion (-want, +got):\n%s", diff)
	}
	if n := quat.Abs(q); math.Abs(n-1) > 1e-12 {
		t.Errorf("Norm: got %v, want 1", n)
	}

	// The zero angle is the identity rotation regardless of the axis.
	if got := vmath.QuaternionFromAxisAngle(vmath.Vector3{X: 3, Y: 4}, 0); got != (vmath.Quaternion{Real: 1}) {
		t.Errorf("Zero angle: got %v, want identity", got)
	}
}

func TestMatrix4x4(t *testing.T) {
	var in []float64
	for i := range 17 {
		in = append(in, float64(i))
	}
	m := vmath.Matrix4x4FromSlice(in)
	if got, want := m.T, (vmath.Vector4{X: 12, Y: 13, Z: 14, W: 15}); got != want {
		t.Errorf("Row T: got %v, want %v", got, want)
	}
	f := m.Floats()
	if diff := cmp.Diff(in[:16], f[:]); diff != "" {
		t.Errorf("Floats (-want, +got):\n%s", diff)
	}
	if got := m.Dense().At(2, 1); got != 9 {
		t.Errorf("Dense.At(2, 1): got %v, want 9", got)
	}
	if !mat.Equal(vmath.Identity.Dense(), mat.NewDiagDense(4, []float64{1, 1, 1, 1})) {
		t.Error("Identity is not the identity matrix")
	}

	mtest.MustPanic(t, func() { vmath.Matrix4x4FromSlice(in[:15]) })
}
