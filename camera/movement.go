// Copyright (c) 2025, The Spherebase Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package camera

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// maxYaw keeps the orbit away from the poles where the up vector flips.
const maxYaw = 89

// Movement holds the camera orbit state: the accumulated rotation and yaw
// angles (degrees) and the parameters for queued sphere transitions.
type Movement struct {

	// Rotation is the accumulated azimuth angle around the target.
	Rotation float32

	// Yaw is the accumulated elevation angle, clamped to +-maxYaw.
	Yaw float32

	// MinRadius is the closest allowed orbit distance.
	MinRadius float32

	// Steps is the number of frames a queued transition is spread over.
	Steps int
}

// Defaults resets angles and restores the default movement parameters.
func (mv *Movement) Defaults() {
	mv.Reset()
	mv.MinRadius = DefaultMinRadius
	mv.Steps = DefaultMovementSteps
}

// Reset clears the accumulated orbit angles.
func (mv *Movement) Reset() {
	mv.Rotation = 0
	mv.Yaw = 0
}

// OrbitAroundTarget accumulates the given angle deltas (degrees) and
// returns the new camera position on a sphere around center. The orbit
// radius is distance unless radius is non-zero; either way it is clamped
// to MinRadius.
func (mv *Movement) OrbitAroundTarget(center mgl32.Vec3, distance, rotation, angleUp, radius float32) mgl32.Vec3 {
	mv.Rotation += rotation
	mv.Yaw = mgl32.Clamp(mv.Yaw+angleUp, -maxYaw, maxYaw)

	r := distance
	if radius != 0 {
		r = radius
	}
	if r < mv.MinRadius {
		r = mv.MinRadius
	}

	yaw := mgl32.DegToRad(mv.Yaw)
	rot := mgl32.DegToRad(mv.Rotation)
	return mgl32.Vec3{
		center.X() + r*math32.Cos(yaw)*math32.Sin(rot),
		center.Y() + r*math32.Sin(yaw),
		center.Z() + r*math32.Cos(yaw)*math32.Cos(rot),
	}
}
