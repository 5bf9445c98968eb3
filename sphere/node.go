// Copyright (c) 2025, The Spherebase Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sphere

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/google/uuid"

	"github.com/rboltze/Sphere-Base/calc"
)

// DefaultDiscRadius is the visual disc radius of a node, in world units.
// Edge polylines are clipped so they start at the disc rim, not the center.
const DefaultDiscRadius = 0.05

// Node is an item placed on the sphere surface with a visual disc and one
// socket where edges connect. Dragging a node moves its socket, which
// recomputes every attached edge.
type Node struct {
	id          string
	sphere      *Sphere
	orientation mgl32.Quat

	// DiscRadius is the radius of the node's visual disc.
	DiscRadius float32

	socket *Socket
}

// NewNode creates a node (and its socket) at the given orientation offset
// and registers both on the sphere.
func (sp *Sphere) NewNode(orientation mgl32.Quat) *Node {
	nd := &Node{
		id:          uuid.NewString(),
		sphere:      sp,
		orientation: orientation,
		DiscRadius:  DefaultDiscRadius,
	}
	nd.socket = &Socket{
		id:          uuid.NewString(),
		node:        nd,
		orientation: orientation,
	}
	sp.AddItem(nd)
	sp.AddItem(nd.socket)
	return nd
}

func (nd *Node) ID() string   { return nd.id }
func (nd *Node) Type() string { return "node" }

// Socket returns the node's socket.
func (nd *Node) Socket() *Socket { return nd.socket }

// Orientation is the node's orientation offset relative to the sphere
// center.
func (nd *Node) Orientation() mgl32.Quat { return nd.orientation }

// XYZ is the node's world position on the sphere surface.
func (nd *Node) XYZ() mgl32.Vec3 {
	return calc.SurfacePosition(nd.sphere.Center(), nd.orientation, nd.sphere.Radius())
}

// SetOrientation moves the node (and its socket) to a new orientation
// offset and recomputes every attached edge polyline. Called continuously
// while the user drags the node.
func (nd *Node) SetOrientation(orientation mgl32.Quat) {
	nd.orientation = orientation
	nd.socket.orientation = orientation
	for _, ed := range nd.socket.Edges() {
		ed.UpdatePosition()
	}
}

// Remove takes the node off the sphere, removing its attached edges first.
func (nd *Node) Remove() {
	for _, ed := range nd.socket.Edges() {
		ed.Remove()
	}
	nd.sphere.RemoveItem(nd.socket.id)
	nd.sphere.RemoveItem(nd.id)
}
