// Copyright (c) 2025, The Spherebase Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package camera implements the orbital camera used to navigate the
// universe of spheres. The camera orbits a target sphere at a fixed
// distance, driven by mouse deltas, and publishes its view matrix to a
// frame view slot before each draw pass. Discrete sphere-to-sphere
// transitions are queued as (position, target) waypoints that are applied
// one per frame by Draw.
package camera

import "github.com/go-gl/mathgl/mgl32"

const (
	// DefaultMouseSensitivity scales raw mouse deltas into orbit degrees.
	DefaultMouseSensitivity = 0.1

	// DefaultMinRadius is the closest the camera may orbit to a target center.
	DefaultMinRadius = 1.5

	// DefaultMovementSteps is the number of frames a queued transition
	// between spheres is spread over.
	DefaultMovementSteps = 25
)

// DefaultOffset is the camera position relative to its target when no
// explicit offset is given.
var DefaultOffset = mgl32.Vec3{0, 0, 3}

// Targeter is anything the camera can look at and orbit around.
type Targeter interface {
	Center() mgl32.Vec3
	Radius() float32
}

// ViewPublisher receives the freshly computed view matrix each time it is
// derived, before any draw call in the frame consumes it.
type ViewPublisher interface {
	PublishView(view mgl32.Mat4)
}

type waypoint struct {
	pos    mgl32.Vec3
	target mgl32.Vec3
}

// Camera is the single orbital camera of a session. It is re-targeted,
// never recreated, when the user switches focus between spheres.
// The distance to the target is always derived from Position and Target;
// the view matrix is recomputed before every use and never carried
// across frames.
type Camera struct {

	// Target is the point the camera looks at, normally a sphere center.
	Target mgl32.Vec3

	// Position is the camera location in world space.
	Position mgl32.Vec3

	// Up is the camera up vector, rederived on every view computation.
	Up mgl32.Vec3

	// MouseSensitivity scales mouse deltas before they become orbit angles.
	MouseSensitivity float32

	// Move holds the orbit angles and transition parameters.
	Move Movement

	queue []waypoint
	view  ViewPublisher
}

// New returns a camera with default pose publishing to the given view slot,
// which may be nil (e.g. in tests).
func New(view ViewPublisher) *Camera {
	cm := &Camera{view: view}
	cm.Defaults()
	cm.ViewMatrix()
	return cm
}

// Defaults resets the camera to the default pose at the origin.
func (cm *Camera) Defaults() {
	cm.Target = mgl32.Vec3{}
	cm.Position = DefaultOffset
	cm.Up = mgl32.Vec3{0, 1, 0}
	cm.MouseSensitivity = DefaultMouseSensitivity
	cm.Move.Defaults()
}

// DistanceToTarget is always recomputed from Position and Target.
func (cm *Camera) DistanceToTarget() float32 {
	return cm.Target.Sub(cm.Position).Len()
}

// setView rederives the camera direction and up vectors from the current
// position and target.
func (cm *Camera) setView() {
	dir := cm.Position.Sub(cm.Target)
	if dir.Len() == 0 {
		dir = mgl32.Vec3{0, 0, 1}
	}
	dir = dir.Normalize()

	right := mgl32.Vec3{0, 1, 0}.Cross(dir)
	if right.Len() == 0 {
		// looking straight down the world up axis
		right = mgl32.Vec3{1, 0, 0}
	} else {
		right = right.Normalize()
	}
	cm.Up = dir.Cross(right)
}

// ViewMatrix rederives the view vectors, builds the look-at matrix and
// publishes it to the view slot. Call before issuing any draws for a frame.
func (cm *Camera) ViewMatrix() mgl32.Mat4 {
	cm.setView()
	m := mgl32.LookAtV(cm.Position, cm.Target, cm.Up)
	if cm.view != nil {
		cm.view.PublishView(m)
	}
	return m
}

// ProcessMouseMovement scales both offsets by the mouse sensitivity and
// orbits the camera around the target sphere.
func (cm *Camera) ProcessMouseMovement(target Targeter, xOffset, yOffset float32) {
	xOffset *= cm.MouseSensitivity
	yOffset *= cm.MouseSensitivity
	cm.ProcessMovement(target, xOffset, yOffset, 0)
}

// ProcessMovement orbits the camera around the target sphere center by the
// given rotation and elevation angles (degrees). The orbit keeps the
// current distance to the target unless radius is non-zero, in which case
// the camera moves onto a sphere of that radius (clamped to the minimum).
// The view matrix is republished afterwards.
func (cm *Camera) ProcessMovement(target Targeter, rotation, angleUp, radius float32) {
	if target != nil {
		cm.Target = target.Center()
	}
	cm.Position = cm.Move.OrbitAroundTarget(cm.Target, cm.DistanceToTarget(), rotation, angleUp, radius)
	cm.ViewMatrix()
}

// ResetToDefaultView points the camera at the target sphere from the given
// offset with no rotation, clearing the smoothing angles. Used when
// deserializing and when the user resets the view.
func (cm *Camera) ResetToDefaultView(target Targeter, defaultOffset mgl32.Vec3) {
	if defaultOffset.Len() == 0 {
		defaultOffset = DefaultOffset
	}
	cm.Target = target.Center()
	cm.Position = cm.Target.Add(defaultOffset)
	cm.MoveToNewTarget(target)
	cm.Move.Reset()
	cm.ViewMatrix()
}

// MoveToNewTarget queues a smoothed flight from the current pose to the
// given sphere, spread over Move.Steps frames. Each queued waypoint is
// applied as a discrete jump by Draw.
func (cm *Camera) MoveToNewTarget(target Targeter) {
	steps := cm.Move.Steps
	if steps < 1 {
		steps = 1
	}
	startPos := cm.Position
	startTgt := cm.Target
	endTgt := target.Center()

	offset := startPos.Sub(startTgt)
	if offset.Len() == 0 {
		offset = DefaultOffset
	}
	endPos := endTgt.Add(offset)

	for i := 1; i <= steps; i++ {
		t := float32(i) / float32(steps)
		cm.queue = append(cm.queue, waypoint{
			pos:    startPos.Add(endPos.Sub(startPos).Mul(t)),
			target: startTgt.Add(endTgt.Sub(startTgt).Mul(t)),
		})
	}
}

// QueueMove appends one (position, target) pair to the movement queue.
func (cm *Camera) QueueMove(pos, target mgl32.Vec3) {
	cm.queue = append(cm.queue, waypoint{pos: pos, target: target})
}

// PendingMoves reports the number of queued transition waypoints.
func (cm *Camera) PendingMoves() int {
	return len(cm.queue)
}

// Draw is the per-frame hook: it applies at most one queued waypoint and
// republishes the view matrix. The destination of a transition is decided
// earlier in the frame than the point where shared view state may be
// mutated, hence the deferred apply.
func (cm *Camera) Draw() {
	if len(cm.queue) > 0 {
		wp := cm.queue[0]
		cm.queue = cm.queue[1:]
		cm.Position = wp.pos
		cm.Target = wp.target
	}
	cm.ViewMatrix()
}
