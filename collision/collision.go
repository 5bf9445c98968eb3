// Copyright (c) 2025, The Spherebase Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package collision maintains pickable collision objects for mouse-ray hit
// testing. Each object tracks a polyline (an edge's point sequence) and is
// keyed by its owner's id; picking casts a ray and returns the owner of the
// nearest polyline within the pick radius.
package collision

import (
	"github.com/go-gl/mathgl/mgl32"
)

// DefaultPickRadius is the distance within which a ray counts as hitting
// a polyline, in world units.
const DefaultPickRadius = 0.05

// Object is one pickable shape: the polyline of the item that owns it.
type Object struct {
	ID     string
	Points []mgl32.Vec3
}

// Registry holds all collision objects of a universe. Creation replaces any
// existing object with the same id, so refreshing an edge's geometry is a
// single call. Not safe for concurrent use; everything runs on the frame
// thread.
type Registry struct {
	PickRadius float32

	objects map[string]*Object
	order   []string
}

// NewRegistry returns an empty registry with the default pick radius.
func NewRegistry() *Registry {
	return &Registry{
		PickRadius: DefaultPickRadius,
		objects:    map[string]*Object{},
	}
}

// CreateCollisionObject registers (or refreshes) the collision object for
// the given owner id, tracking the given polyline. The points are copied.
func (rg *Registry) CreateCollisionObject(id string, points []mgl32.Vec3) {
	ob, ok := rg.objects[id]
	if !ok {
		ob = &Object{ID: id}
		rg.objects[id] = ob
		rg.order = append(rg.order, id)
	}
	ob.Points = append(ob.Points[:0], points...)
}

// DeleteCollisionObject removes the owner's collision object, if any.
func (rg *Registry) DeleteCollisionObject(id string) {
	if _, ok := rg.objects[id]; !ok {
		return
	}
	delete(rg.objects, id)
	for i, oid := range rg.order {
		if oid == id {
			rg.order = append(rg.order[:i], rg.order[i+1:]...)
			break
		}
	}
}

// Has reports whether a collision object is registered for the id.
func (rg *Registry) Has(id string) bool {
	_, ok := rg.objects[id]
	return ok
}

// Len returns the number of registered objects.
func (rg *Registry) Len() int {
	return len(rg.objects)
}

// RayPick casts a ray from origin along dir (normalized) and returns the id
// of the owner whose polyline is hit closest to the origin, within the pick
// radius. Returns false when nothing is hit.
func (rg *Registry) RayPick(origin, dir mgl32.Vec3) (string, bool) {
	bestID := ""
	bestAlong := float32(0)
	found := false

	for _, id := range rg.order {
		ob := rg.objects[id]
		for i := 0; i+1 < len(ob.Points); i++ {
			dist, along := raySegmentDistance(origin, dir, ob.Points[i], ob.Points[i+1])
			if dist > rg.PickRadius {
				continue
			}
			if !found || along < bestAlong {
				bestID = id
				bestAlong = along
				found = true
			}
		}
	}
	return bestID, found
}

// raySegmentDistance returns the minimum distance between the ray
// origin + s*dir (s >= 0) and the segment a..b, plus the ray parameter s
// at the closest approach.
func raySegmentDistance(origin, dir, a, b mgl32.Vec3) (dist, along float32) {
	e := b.Sub(a)
	w0 := origin.Sub(a)

	da := dir.Dot(dir)
	db := dir.Dot(e)
	dc := e.Dot(e)
	dd := dir.Dot(w0)
	de := e.Dot(w0)

	var s, u float32
	denom := da*dc - db*db
	if denom > 0 {
		s = (db*de - dc*dd) / denom
		u = (da*de - db*dd) / denom
	} else {
		// degenerate segment or parallel ray: closest to endpoint a
		s = -dd
		if da > 0 {
			s /= da
		}
		u = 0
	}

	if s < 0 {
		s = 0
		u = de
		if dc > 0 {
			u /= dc
		}
	}
	u = mgl32.Clamp(u, 0, 1)
	// reproject the ray parameter against the clamped segment point
	sp := a.Add(e.Mul(u))
	s = sp.Sub(origin).Dot(dir)
	if da > 0 {
		s /= da
	}
	if s < 0 {
		s = 0
	}

	rp := origin.Add(dir.Mul(s))
	return rp.Sub(sp).Len(), s
}
