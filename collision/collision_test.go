// Copyright (c) 2025, The Spherebase Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package collision

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func line(y float32) []mgl32.Vec3 {
	return []mgl32.Vec3{{-1, y, 0}, {1, y, 0}}
}

func TestCreateReplaceDelete(t *testing.T) {
	rg := NewRegistry()
	rg.CreateCollisionObject("a", line(0))
	require.True(t, rg.Has("a"))
	assert.Equal(t, 1, rg.Len())

	// re-creating for the same id replaces, never duplicates
	rg.CreateCollisionObject("a", line(2))
	assert.Equal(t, 1, rg.Len())

	rg.DeleteCollisionObject("a")
	assert.False(t, rg.Has("a"))
	assert.Equal(t, 0, rg.Len())

	// deleting an unknown id is a no-op
	rg.DeleteCollisionObject("missing")
	assert.Equal(t, 0, rg.Len())
}

func TestRayPickHit(t *testing.T) {
	rg := NewRegistry()
	rg.CreateCollisionObject("edge1", line(0))

	// ray from above, straight down through the middle of the segment
	id, ok := rg.RayPick(mgl32.Vec3{0, 5, 0}, mgl32.Vec3{0, -1, 0})
	require.True(t, ok)
	assert.Equal(t, "edge1", id)
}

func TestRayPickMiss(t *testing.T) {
	rg := NewRegistry()
	rg.CreateCollisionObject("edge1", line(0))

	_, ok := rg.RayPick(mgl32.Vec3{0, 5, 1}, mgl32.Vec3{0, -1, 0})
	assert.False(t, ok)

	// pointing away from the polyline must not hit behind the origin
	_, ok = rg.RayPick(mgl32.Vec3{0, 5, 0}, mgl32.Vec3{0, 1, 0})
	assert.False(t, ok)
}

func TestRayPickNearest(t *testing.T) {
	rg := NewRegistry()
	rg.CreateCollisionObject("far", line(-3))
	rg.CreateCollisionObject("near", line(1))

	// the ray crosses both lines; the one closer along the ray wins
	id, ok := rg.RayPick(mgl32.Vec3{0, 5, 0}, mgl32.Vec3{0, -1, 0})
	require.True(t, ok)
	assert.Equal(t, "near", id)
}

func TestRayPickSegmentEnd(t *testing.T) {
	rg := NewRegistry()
	rg.PickRadius = 0.1
	rg.CreateCollisionObject("edge1", line(0))

	// just off the end of the segment, within the pick radius
	id, ok := rg.RayPick(mgl32.Vec3{1.05, 5, 0}, mgl32.Vec3{0, -1, 0})
	require.True(t, ok)
	assert.Equal(t, "edge1", id)

	_, ok = rg.RayPick(mgl32.Vec3{1.5, 5, 0}, mgl32.Vec3{0, -1, 0})
	assert.False(t, ok)
}
