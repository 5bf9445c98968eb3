// Copyright (c) 2025, The Spherebase Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sphere

import (
	"slices"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/rboltze/Sphere-Base/calc"
)

// Socket is an attachment point on a node where edges connect. The socket
// keeps the back-reference list of edges attached to it; edges hold
// non-owning references back. Position is always derived from the
// orientation offset, never stored.
type Socket struct {
	id          string
	node        *Node
	orientation mgl32.Quat
	edges       []*SurfaceEdge
}

func (sk *Socket) ID() string   { return sk.id }
func (sk *Socket) Type() string { return "socket" }

// Node returns the owning node.
func (sk *Socket) Node() *Node { return sk.node }

// OrientationOffset is the socket's orientation relative to the sphere
// center.
func (sk *Socket) OrientationOffset() mgl32.Quat { return sk.orientation }

// XYZ is the socket's world position, derived from the orientation offset
// and the sphere radius.
func (sk *Socket) XYZ() mgl32.Vec3 {
	sp := sk.node.sphere
	return calc.SurfacePosition(sp.Center(), sk.orientation, sp.Radius())
}

// AddEdge records the edge as attached to this socket.
func (sk *Socket) AddEdge(ed *SurfaceEdge) {
	if !sk.HasEdge(ed) {
		sk.edges = append(sk.edges, ed)
	}
}

// RemoveEdge forgets the edge. Removing an unattached edge is a no-op.
func (sk *Socket) RemoveEdge(ed *SurfaceEdge) {
	for i, e := range sk.edges {
		if e == ed {
			sk.edges = append(sk.edges[:i], sk.edges[i+1:]...)
			return
		}
	}
}

// HasEdge reports whether the edge is attached to this socket.
func (sk *Socket) HasEdge(ed *SurfaceEdge) bool {
	return slices.Contains(sk.edges, ed)
}

// Edges returns a copy of the attached edge list.
func (sk *Socket) Edges() []*SurfaceEdge {
	return slices.Clone(sk.edges)
}
