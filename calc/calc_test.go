// Copyright (c) 2025, The Spherebase Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package calc

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

const tol = 1.0e-5

func assertQuatEqual(t *testing.T, want, got mgl32.Quat) {
	t.Helper()
	assert.InDelta(t, want.W, got.W, tol)
	assert.InDelta(t, want.V.X(), got.V.X(), tol)
	assert.InDelta(t, want.V.Y(), got.V.Y(), tol)
	assert.InDelta(t, want.V.Z(), got.V.Z(), tol)
}

func assertVec3Equal(t *testing.T, want, got mgl32.Vec3) {
	t.Helper()
	assert.InDelta(t, want.X(), got.X(), tol)
	assert.InDelta(t, want.Y(), got.Y(), tol)
	assert.InDelta(t, want.Z(), got.Z(), tol)
}

func TestSlerpEndpoints(t *testing.T) {
	a := mgl32.QuatRotate(0.3, mgl32.Vec3{1, 0, 0})
	b := mgl32.QuatRotate(1.2, mgl32.Vec3{0, 1, 0})

	assertQuatEqual(t, a, Slerp(a, b, 0))
	assertQuatEqual(t, b, Slerp(a, b, 1))
}

func TestSlerpEqualEndpoints(t *testing.T) {
	q := mgl32.QuatRotate(0.7, mgl32.Vec3{0, 0, 1})
	for _, tv := range []float32{0, 0.25, 0.5, 0.75, 1} {
		assertQuatEqual(t, q, Slerp(q, q, tv))
	}
}

func TestSlerpMidpoint(t *testing.T) {
	a := mgl32.QuatIdent()
	b := mgl32.QuatRotate(math32.Pi/2, mgl32.Vec3{0, 1, 0})
	mid := Slerp(a, b, 0.5)

	want := mgl32.QuatRotate(math32.Pi/4, mgl32.Vec3{0, 1, 0})
	assertQuatEqual(t, want, mid)
	assert.InDelta(t, 1, mid.Len(), tol)
}

func TestSlerpShortestArc(t *testing.T) {
	a := mgl32.QuatIdent()
	b := mgl32.QuatRotate(math32.Pi/2, mgl32.Vec3{0, 1, 0}).Scale(-1)

	// b is the same rotation with flipped sign; the midpoint must still be
	// the quarter rotation, not a trip the long way around.
	mid := Slerp(a, b, 0.5)
	v := mid.Rotate(mgl32.Vec3{0, 0, 1})
	want := mgl32.QuatRotate(math32.Pi/4, mgl32.Vec3{0, 1, 0}).Rotate(mgl32.Vec3{0, 0, 1})
	assertVec3Equal(t, want, v)
}

func TestSlerpNormalized(t *testing.T) {
	a := mgl32.QuatRotate(0.1, mgl32.Vec3{1, 0, 0})
	b := mgl32.QuatRotate(2.9, mgl32.Vec3{0, 0, 1})
	for _, tv := range []float32{0.1, 0.3, 0.5, 0.9} {
		assert.InDelta(t, 1, Slerp(a, b, tv).Len(), tol)
	}
}

func TestCentralAngle(t *testing.T) {
	assert.InDelta(t, math32.Pi/2, CentralAngle(mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 1, 0}), tol)
	assert.InDelta(t, math32.Pi, CentralAngle(mgl32.Vec3{0, 0, 2}, mgl32.Vec3{0, 0, -2}), tol)
	assert.InDelta(t, 0, CentralAngle(mgl32.Vec3{1, 1, 1}, mgl32.Vec3{2, 2, 2}), tol)
	assert.Equal(t, float32(0), CentralAngle(mgl32.Vec3{}, mgl32.Vec3{0, 1, 0}))
}

func TestGreatCircleDistance(t *testing.T) {
	// quarter arc on a unit sphere, then scaled by radius
	assert.InDelta(t, math32.Pi/2, GreatCircleDistance(mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 0, 1}, 1), tol)
	assert.InDelta(t, 2*math32.Pi/2, GreatCircleDistance(mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 0, 1}, 2), tol)
}

func TestSurfacePosition(t *testing.T) {
	center := mgl32.Vec3{1, 2, 3}

	assertVec3Equal(t, mgl32.Vec3{1, 2, 5}, SurfacePosition(center, mgl32.QuatIdent(), 2))

	// a right-handed quarter turn about +X takes the +Z reference axis to -Y
	q := mgl32.QuatRotate(math32.Pi/2, mgl32.Vec3{1, 0, 0})
	got := SurfacePosition(center, q, 1)
	assertVec3Equal(t, mgl32.Vec3{1, 1, 3}, got)
}
