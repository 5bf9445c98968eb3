// Copyright (c) 2025, The Spherebase Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sphere

import (
	"fmt"
	"log/slog"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/google/uuid"

	"github.com/rboltze/Sphere-Base/calc"
)

// minEdgePoints is the fewest points generated for a drawable edge: enough
// for one visible segment.
const minEdgePoints = 2

// DefaultEdgeColor is substituted when an edge's color is unset at draw
// time.
var DefaultEdgeColor = mgl32.Vec4{0, 0, 0, 0.5}

// SurfaceEdge is an edge drawn between two sockets over the surface of a
// sphere, following the great circle between them. SLERP against the
// sphere center gives the orientation of every point between start and
// end; the start is shortened by the node disc radius so the line begins
// at the rim of the start node's disc.
//
// Edges are undirected: start and end currently carry no significance.
// Edges do not own their sockets; each socket keeps the list of edges
// attached to it, maintained through [SurfaceEdge.SetStartSocket] and
// [SurfaceEdge.SetEndSocket].
type SurfaceEdge struct {
	id     string
	sphere *Sphere
	start  *Socket
	end    *Socket

	// radius is copied from the sphere at construction.
	radius float32

	// Points is the ordered polyline over the sphere surface.
	Points []mgl32.Vec3

	// Vertices is Points flattened to 3 floats per point, the shape the
	// line buffer uploads.
	Vertices []float32

	// Color is the draw color; the zero value is treated as unset and
	// normalized to DefaultEdgeColor before drawing.
	Color mgl32.Vec4

	// EdgeType is the serializable edge kind tag.
	EdgeType int

	// SceneDetail carries the opaque serialized detail-scene payload.
	SceneDetail string

	buffer       LineRenderer
	hasCollision bool
	dragging     bool
	selected     bool
	hovered      bool
}

// NewSurfaceEdge creates an edge on the sphere between the given sockets
// (either may be nil during interactive creation), registers it with the
// sphere and computes its initial polyline.
func (sp *Sphere) NewSurfaceEdge(start, end *Socket) *SurfaceEdge {
	ed := &SurfaceEdge{
		id:     uuid.NewString(),
		sphere: sp,
		radius: sp.Radius(),
		Color:  rgba(sp.settings.EdgeColor),
	}
	if sp.newLineBuffer != nil {
		buffer, err := sp.newLineBuffer()
		if err != nil {
			slog.Error("edge: line buffer unavailable", "edge", ed.id, "error", err)
		} else {
			ed.buffer = buffer
		}
	}
	ed.SetStartSocket(start)
	ed.SetEndSocket(end)
	sp.AddItem(ed)
	ed.UpdatePosition()
	return ed
}

func (ed *SurfaceEdge) ID() string   { return ed.id }
func (ed *SurfaceEdge) Type() string { return "edge" }

// StartSocket returns the start socket; nil while the edge is being
// created.
func (ed *SurfaceEdge) StartSocket() *Socket { return ed.start }

// EndSocket returns the end socket; nil while the edge is being created.
func (ed *SurfaceEdge) EndSocket() *Socket { return ed.end }

// SetStartSocket reassigns the start endpoint: detach from the previous
// socket, then attach to the new one. Passing nil just detaches.
func (ed *SurfaceEdge) SetStartSocket(sk *Socket) {
	ed.detach(ed.start)
	ed.start = sk
	ed.attach(sk)
}

// SetEndSocket reassigns the end endpoint: detach from the previous
// socket, then attach to the new one. Passing nil just detaches.
func (ed *SurfaceEdge) SetEndSocket(sk *Socket) {
	ed.detach(ed.end)
	ed.end = sk
	ed.attach(sk)
}

func (ed *SurfaceEdge) detach(sk *Socket) {
	if sk != nil {
		sk.RemoveEdge(ed)
	}
}

func (ed *SurfaceEdge) attach(sk *Socket) {
	if sk != nil {
		sk.AddEdge(ed)
	}
}

// PointCount is the polyline sizing policy: the number of points for an
// edge spanning the given arc length at the given target point density.
// It is monotonically non-decreasing in arc. Zero arc yields 0 (nothing
// to draw); any positive arc yields at least minEdgePoints.
func PointCount(arc, unitLength float32) int {
	if arc <= 0 {
		return 0
	}
	n := minEdgePoints
	if unitLength > 0 {
		n = int(math32.Ceil(arc / unitLength))
		if n < minEdgePoints {
			n = minEdgePoints
		}
	}
	return n
}

// UpdatePosition recomputes the edge polyline from the current socket
// positions, refreshes the collision object and uploads the vertex buffer.
// With fewer than two endpoints set it is a no-op: an edge with zero or
// one socket is a valid transient state during interactive creation.
func (ed *SurfaceEdge) UpdatePosition() {
	if ed.start == nil || ed.end == nil {
		return
	}

	center := ed.sphere.Center()
	arc := calc.GreatCircleDistance(ed.start.XYZ().Sub(center), ed.end.XYZ().Sub(center), ed.radius)
	n := PointCount(arc, ed.sphere.UnitLength())
	if n == 0 {
		ed.Points = ed.Points[:0]
		ed.Vertices = ed.Vertices[:0]
		return
	}

	step := float32(1)
	if n > 1 {
		step = 1 / float32(n-1)
	}

	start, end := ed.clippedOrientations(arc)
	ed.Points = ed.Points[:0]
	for i := 0; i < n; i++ {
		q := calc.Slerp(start, end, step*float32(i))
		ed.Points = append(ed.Points, calc.SurfacePosition(center, q, ed.radius))
	}

	if ed.sphere.collision != nil {
		ed.sphere.collision.CreateCollisionObject(ed.id, ed.Points)
		ed.hasCollision = true
	}

	ed.Vertices = flattenPoints(ed.Points, ed.Vertices[:0])
	if ed.buffer != nil {
		ed.buffer.SetPoints(ed.Vertices)
	}
}

// clippedOrientations returns the start and end orientations for the
// polyline, with the start advanced along the arc by the node disc radius
// so the line does not overlap the start node's disc.
func (ed *SurfaceEdge) clippedOrientations(arc float32) (start, end mgl32.Quat) {
	start = ed.start.OrientationOffset()
	end = ed.end.OrientationOffset()
	if arc <= 0 {
		return start, end
	}
	t := ed.start.Node().DiscRadius / arc
	if t > 0 {
		start = calc.Slerp(start, end, mgl32.Clamp(t, 0, 1))
	}
	return start, end
}

// flattenPoints appends the points to dst as tightly packed components,
// 3 per point.
func flattenPoints(points []mgl32.Vec3, dst []float32) []float32 {
	for _, p := range points {
		dst = append(dst, p.X(), p.Y(), p.Z())
	}
	return dst
}

// Dragging tracks the edge drag state. The first true starts a drag, the
// first false afterwards ends it and stores an undo entry; redundant
// signals are no-ops. Returns the current state.
func (ed *SurfaceEdge) Dragging(value bool) bool {
	switch {
	case ed.dragging == value:
		// already in the target state
	case value:
		ed.dragging = true
	default:
		ed.dragging = false
		ed.sphere.History().Store("edge moved", true)
	}
	return ed.dragging
}

// UpdateContent refreshes the edge's display content. A plain surface
// edge has no content beyond its geometry; edge kinds embedding
// SurfaceEdge shadow this with their own refresh.
func (ed *SurfaceEdge) UpdateContent() {}

// OnSelected sets the selection state and color.
func (ed *SurfaceEdge) OnSelected(selected bool) {
	ed.selected = selected
	ed.refreshColor()
}

// SetHovered sets the hover state and color.
func (ed *SurfaceEdge) SetHovered(hovered bool) {
	ed.hovered = hovered
	ed.refreshColor()
}

func (ed *SurfaceEdge) refreshColor() {
	st := ed.sphere.settings
	switch {
	case ed.hovered:
		ed.Color = rgba(st.EdgeColorHovered)
	case ed.selected:
		ed.Color = rgba(st.EdgeColorSelected)
	default:
		ed.Color = rgba(st.EdgeColor)
	}
}

// Remove destroys the edge: both sockets are unconditionally detached, the
// collision object is released, the sphere forgets the item and the GPU
// buffer is freed.
func (ed *SurfaceEdge) Remove() {
	ed.SetStartSocket(nil)
	ed.SetEndSocket(nil)
	ed.sphere.RemoveItem(ed.id)
	if ed.hasCollision && ed.sphere.collision != nil {
		ed.sphere.collision.DeleteCollisionObject(ed.id)
		ed.hasCollision = false
	}
	if ed.buffer != nil {
		ed.buffer.Release()
		ed.buffer = nil
	}
}

// Draw renders the edge: the fat-line shader pass over the point sequence,
// then the raw buffer pass. A zero vertex count skips drawing entirely.
// An unset color is normalized to the default before drawing.
func (ed *SurfaceEdge) Draw() error {
	if ed.Color == (mgl32.Vec4{}) {
		ed.Color = DefaultEdgeColor
	}
	if sh := ed.sphere.Shader(); sh != nil && len(ed.Points) > 0 {
		if err := sh.DrawEdge(ed.Points, ed.sphere.settings.EdgeWidth, ed.Color, false); err != nil {
			return fmt.Errorf("edge %s: shader pass: %w", ed.id, err)
		}
	}
	if len(ed.Vertices) == 0 || ed.buffer == nil {
		return nil
	}
	if err := ed.buffer.Draw(); err != nil {
		return fmt.Errorf("edge %s: buffer pass: %w", ed.id, err)
	}
	return nil
}

func rgba(c [4]float32) mgl32.Vec4 {
	return mgl32.Vec4{c[0], c[1], c[2], c[3]}
}
