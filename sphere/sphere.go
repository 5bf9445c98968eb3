// Copyright (c) 2025, The Spherebase Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package sphere implements the scene model of the universe of spheres:
// spheres carrying nodes, sockets and surface edges, an ordered item
// registry, an undo history, and the per-frame draw pass. Edges are drawn
// between sockets over the sphere surface as great-circle polylines; see
// [SurfaceEdge].
//
// The package is single-threaded and frame-driven: geometry recomputation,
// buffer uploads and draw calls all happen synchronously on the thread
// owning the graphics context.
package sphere

import (
	"log/slog"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/google/uuid"

	"github.com/rboltze/Sphere-Base/config"
)

// LineRenderer is the GPU buffer an edge uploads its polyline into.
// Implemented by render.LineBuffer; faked in tests.
type LineRenderer interface {

	// SetPoints replaces the buffer with flat vertex data, 3 floats per point.
	SetPoints(vertices []float32)

	// Draw issues the raw line draw; zero uploaded points is a no-op.
	Draw() error

	// Release frees the GPU objects.
	Release()
}

// EdgeDrawer is the fat-line shader pass an edge delegates to.
// Implemented by render.EdgeShader.
type EdgeDrawer interface {
	DrawEdge(points []mgl32.Vec3, width float32, color mgl32.Vec4, dotted bool) error
}

// CollisionRegistry registers pickable collision shapes for mouse-ray hit
// testing. Implemented by collision.Registry.
type CollisionRegistry interface {
	CreateCollisionObject(id string, points []mgl32.Vec3)
	DeleteCollisionObject(id string)
	RayPick(origin, dir mgl32.Vec3) (string, bool)
}

// Drawer is implemented by items that render themselves each frame.
type Drawer interface {
	Draw() error
}

// Sphere is one sphere of the universe: a registry of the nodes, sockets
// and edges living on its surface, plus the shared drawing and collision
// collaborators handed down from the universe.
type Sphere struct {
	id       string
	center   mgl32.Vec3
	radius   float32
	items    Items
	history  *History
	settings *config.Settings

	shader        EdgeDrawer
	collision     CollisionRegistry
	newLineBuffer func() (LineRenderer, error)
}

func (sp *Sphere) ID() string   { return sp.id }
func (sp *Sphere) Type() string { return "sphere" }

// Center returns the sphere center in world space.
func (sp *Sphere) Center() mgl32.Vec3 { return sp.center }

// Radius returns the sphere radius.
func (sp *Sphere) Radius() float32 { return sp.radius }

// History returns the sphere's undo log.
func (sp *Sphere) History() *History { return sp.history }

// Settings returns the universe settings the sphere was created with.
func (sp *Sphere) Settings() *config.Settings { return sp.settings }

// Shader returns the fat-line draw delegate; nil when rendering is absent.
func (sp *Sphere) Shader() EdgeDrawer { return sp.shader }

// AddItem registers an item on the sphere.
func (sp *Sphere) AddItem(item Item) {
	sp.items.Add(item)
}

// RemoveItem forgets the item with the given id.
func (sp *Sphere) RemoveItem(id string) bool {
	return sp.items.Delete(id)
}

// ItemByID returns the registered item with the given id.
func (sp *Sphere) ItemByID(id string) (Item, bool) {
	return sp.items.ByID(id)
}

// Len returns the number of registered items.
func (sp *Sphere) Len() int { return sp.items.Len() }

// UnitLength is the target arc length per edge polyline segment.
func (sp *Sphere) UnitLength() float32 { return sp.settings.UnitLength }

// Draw renders all drawable items in registration order. A failing item is
// logged and skipped; the rest of the frame still draws.
func (sp *Sphere) Draw() {
	for i := 0; i < sp.items.Len(); i++ {
		dr, ok := sp.items.At(i).(Drawer)
		if !ok {
			continue
		}
		if err := dr.Draw(); err != nil {
			slog.Error("sphere: item draw failed", "sphere", sp.id, "item", sp.items.At(i).ID(), "error", err)
		}
	}
}

func newSphere(center mgl32.Vec3, radius float32, st *config.Settings) *Sphere {
	return &Sphere{
		id:       uuid.NewString(),
		center:   center,
		radius:   radius,
		history:  NewHistory(),
		settings: st,
	}
}
