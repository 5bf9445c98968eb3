// Copyright (c) 2025, The Spherebase Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sphere

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rboltze/Sphere-Base/collision"
)

func TestFirstSphereBecomesTarget(t *testing.T) {
	uv := NewUniverse(nil, Options{})
	sp := uv.NewSphere(mgl32.Vec3{1, 0, 0}, 2)

	assert.Same(t, sp, uv.TargetSphere())

	// camera points at the new sphere from the default offset
	cm := uv.Camera()
	assert.Equal(t, sp.Center(), cm.Target)
}

func TestSetTargetSphereQueuesFlight(t *testing.T) {
	uv := NewUniverse(nil, Options{})
	a := uv.NewSphere(mgl32.Vec3{}, 1)
	b := uv.NewSphere(mgl32.Vec3{10, 0, 0}, 1)
	cm := uv.Camera()

	// drain the initial reset transition
	for cm.PendingMoves() > 0 {
		cm.Draw()
	}

	uv.SetTargetSphere(b)
	require.Same(t, b, uv.TargetSphere())
	require.Equal(t, cm.Move.Steps, cm.PendingMoves())

	// re-targeting the current target queues nothing
	uv.SetTargetSphere(b)
	assert.Equal(t, cm.Move.Steps, cm.PendingMoves())

	for cm.PendingMoves() > 0 {
		uv.Draw()
	}
	assert.Equal(t, b.Center(), cm.Target)

	uv.SetTargetSphere(a)
	assert.Same(t, a, uv.TargetSphere())
}

func TestItemByIDSearchesAllSpheres(t *testing.T) {
	uv := NewUniverse(nil, Options{})
	a := uv.NewSphere(mgl32.Vec3{}, 1)
	b := uv.NewSphere(mgl32.Vec3{5, 0, 0}, 1)

	nd := b.NewNode(mgl32.QuatIdent())
	item, ok := uv.ItemByID(nd.ID())
	require.True(t, ok)
	assert.Same(t, nd, item.(*Node))

	_, ok = a.ItemByID(nd.ID())
	assert.False(t, ok)

	_, ok = uv.ItemByID("unknown")
	assert.False(t, ok)
}

func TestPickAtHitsEdge(t *testing.T) {
	reg := collision.NewRegistry()
	uv := NewUniverse(nil, Options{Collision: reg})
	sp := uv.NewSphere(mgl32.Vec3{}, 1)

	// an edge straddling the +Z pole, facing the default camera at (0,0,3)
	start := sp.NewNode(mgl32.QuatRotate(-0.3, mgl32.Vec3{1, 0, 0}))
	end := sp.NewNode(mgl32.QuatRotate(0.3, mgl32.Vec3{1, 0, 0}))
	ed := sp.NewSurfaceEdge(start.Socket(), end.Socket())

	const width, height = 800, 600
	projection := mgl32.Perspective(mgl32.DegToRad(45), float32(width)/height, 0.1, 100)

	item, ok := uv.PickAt(width/2, height/2, width, height, projection)
	require.True(t, ok)
	assert.Same(t, ed, item.(*SurfaceEdge))

	// a ray through the window corner misses
	_, ok = uv.PickAt(10, 10, width, height, projection)
	assert.False(t, ok)
}

func TestPickAtWithoutCollision(t *testing.T) {
	uv := NewUniverse(nil, Options{})
	uv.NewSphere(mgl32.Vec3{}, 1)

	_, ok := uv.PickAt(0, 0, 100, 100, mgl32.Ident4())
	assert.False(t, ok)
}

func TestDrawLogsAndContinues(t *testing.T) {
	fs := &fakeShader{err: assert.AnError}
	uv := NewUniverse(nil, Options{Shader: fs})
	sp := uv.NewSphere(mgl32.Vec3{}, 1)
	start := nodeAt(sp, 0)
	end := nodeAt(sp, 1.0)
	sp.NewSurfaceEdge(start.Socket(), end.Socket())
	sp.NewSurfaceEdge(start.Socket(), end.Socket())

	// both edges fail to draw; the frame still completes
	uv.Draw()
	assert.Equal(t, 2, fs.calls)
}
