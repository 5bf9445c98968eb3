// Copyright (c) 2025, The Spherebase Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package calc provides the spherical geometry used to place items and
// draw edges on the surface of a sphere: quaternion SLERP, great-circle
// distances, and projection of orientation offsets to surface positions.
//
// Orientations are unit quaternions giving an item's rotation away from
// the sphere's reference axis; a surface position is the reference axis
// rotated by that offset and scaled by the sphere radius.
package calc

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// ReferenceAxis is the axis that orientation offsets rotate.
// An item with the identity orientation sits at center + radius * ReferenceAxis.
var ReferenceAxis = mgl32.Vec3{0, 0, 1}

// Slerp returns the spherical linear interpolation from a to b at t,
// taking the shortest arc. t=0 returns a and t=1 returns b exactly;
// nearly parallel endpoints fall back to a normalized lerp to avoid the
// vanishing sine denominator. The result is normalized.
func Slerp(a, b mgl32.Quat, t float32) mgl32.Quat {
	if t <= 0 {
		return a
	}
	if t >= 1 {
		return b
	}

	cosHalfTheta := a.Dot(b)
	end := b
	if cosHalfTheta < 0 {
		cosHalfTheta = -cosHalfTheta
		end = end.Scale(-1)
	}
	if cosHalfTheta >= 1 {
		return a
	}

	sqrSinHalfTheta := 1 - cosHalfTheta*cosHalfTheta
	if sqrSinHalfTheta < 0.001 {
		nq := mgl32.Quat{
			W: (1-t)*a.W + t*end.W,
			V: a.V.Mul(1 - t).Add(end.V.Mul(t)),
		}
		return nq.Normalize()
	}

	sinHalfTheta := math32.Sqrt(sqrSinHalfTheta)
	halfTheta := math32.Atan2(sinHalfTheta, cosHalfTheta)
	ra := math32.Sin((1-t)*halfTheta) / sinHalfTheta
	rb := math32.Sin(t*halfTheta) / sinHalfTheta

	return mgl32.Quat{
		W: a.W*ra + end.W*rb,
		V: a.V.Mul(ra).Add(end.V.Mul(rb)),
	}
}

// CentralAngle returns the angle in radians between two position vectors
// relative to the sphere center. Zero-length inputs yield 0.
func CentralAngle(a, b mgl32.Vec3) float32 {
	la := a.Len()
	lb := b.Len()
	if la == 0 || lb == 0 {
		return 0
	}
	cos := mgl32.Clamp(a.Dot(b)/(la*lb), -1, 1)
	return math32.Acos(cos)
}

// GreatCircleDistance returns the arc length between two points constrained
// to a sphere of the given radius. a and b are positions relative to the
// sphere center.
func GreatCircleDistance(a, b mgl32.Vec3, radius float32) float32 {
	return CentralAngle(a, b) * radius
}

// SurfacePosition projects an orientation offset onto the sphere surface:
// the reference axis rotated by orientation, scaled by radius, from center.
func SurfacePosition(center mgl32.Vec3, orientation mgl32.Quat, radius float32) mgl32.Vec3 {
	return center.Add(orientation.Rotate(ReferenceAxis.Mul(radius)))
}
