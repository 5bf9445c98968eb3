// Copyright (c) 2025, The Spherebase Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sphere

import (
	"log/slog"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/rboltze/Sphere-Base/camera"
	"github.com/rboltze/Sphere-Base/config"
)

// Options are the collaborators a universe hands down to its spheres.
// Every field may be nil: a universe without rendering or collision still
// runs the full scene model (as the tests do).
type Options struct {

	// View receives the camera view matrix each time it is derived.
	View camera.ViewPublisher

	// Collision registers pickable shapes for mouse-ray hit testing.
	Collision CollisionRegistry

	// NewLineBuffer allocates the GPU buffer for a new edge.
	NewLineBuffer func() (LineRenderer, error)

	// Shader is the fat-line draw delegate for edges.
	Shader EdgeDrawer
}

// Universe owns the spheres, the single session camera and the shared
// drawing and collision collaborators. One sphere is the camera target at
// a time; switching targets queues a smoothed camera flight.
type Universe struct {
	settings  *config.Settings
	camera    *camera.Camera
	collision CollisionRegistry
	opts      Options

	spheres []*Sphere
	target  *Sphere
}

// NewUniverse creates an empty universe. A nil settings uses the defaults.
func NewUniverse(st *config.Settings, opts Options) *Universe {
	if st == nil {
		st = config.Defaults()
	}
	cm := camera.New(opts.View)
	cm.MouseSensitivity = st.MouseSensitivity
	cm.Move.MinRadius = st.MinRadius
	cm.Move.Steps = st.CamMovementSteps

	return &Universe{
		settings:  st,
		camera:    cm,
		collision: opts.Collision,
		opts:      opts,
	}
}

// Camera returns the session camera.
func (uv *Universe) Camera() *camera.Camera { return uv.camera }

// Settings returns the universe settings.
func (uv *Universe) Settings() *config.Settings { return uv.settings }

// NewSphere creates a sphere, wires it to the universe collaborators and
// registers it. The first sphere becomes the camera target.
func (uv *Universe) NewSphere(center mgl32.Vec3, radius float32) *Sphere {
	sp := newSphere(center, radius, uv.settings)
	sp.collision = uv.collision
	sp.shader = uv.opts.Shader
	sp.newLineBuffer = uv.opts.NewLineBuffer
	uv.spheres = append(uv.spheres, sp)
	if uv.target == nil {
		uv.target = sp
		uv.camera.ResetToDefaultView(sp, camera.DefaultOffset)
	}
	return sp
}

// Spheres returns the spheres in creation order.
func (uv *Universe) Spheres() []*Sphere { return uv.spheres }

// TargetSphere returns the sphere the camera is focused on.
func (uv *Universe) TargetSphere() *Sphere { return uv.target }

// SetTargetSphere re-targets the camera onto the given sphere, queuing a
// smoothed flight. Re-targeting the current target is a no-op.
func (uv *Universe) SetTargetSphere(sp *Sphere) {
	if sp == nil || sp == uv.target {
		return
	}
	uv.target = sp
	uv.camera.MoveToNewTarget(sp)
}

// ItemByID searches all spheres for the item with the given id.
func (uv *Universe) ItemByID(id string) (Item, bool) {
	for _, sp := range uv.spheres {
		if item, ok := sp.ItemByID(id); ok {
			return item, true
		}
	}
	return nil, false
}

// Draw runs one frame: the camera applies any pending transition and
// publishes the view matrix, then every sphere draws its items. The
// camera must complete before any item draw call in the same frame.
func (uv *Universe) Draw() {
	uv.camera.Draw()
	for _, sp := range uv.spheres {
		sp.Draw()
	}
}

// PickAt casts a mouse ray through the window point (winX, winY), with
// winY already flipped to OpenGL's bottom-left origin, and returns the
// picked item. The projection matrix must match the one used to render.
func (uv *Universe) PickAt(winX, winY float32, width, height int, projection mgl32.Mat4) (Item, bool) {
	if uv.collision == nil {
		return nil, false
	}
	view := uv.camera.ViewMatrix()
	near, err := mgl32.UnProject(mgl32.Vec3{winX, winY, 0}, view, projection, 0, 0, width, height)
	if err != nil {
		slog.Error("universe: unproject failed", "error", err)
		return nil, false
	}
	far, err := mgl32.UnProject(mgl32.Vec3{winX, winY, 1}, view, projection, 0, 0, width, height)
	if err != nil {
		slog.Error("universe: unproject failed", "error", err)
		return nil, false
	}
	dir := far.Sub(near)
	if dir.Len() == 0 {
		return nil, false
	}
	id, ok := uv.collision.RayPick(near, dir.Normalize())
	if !ok {
		return nil, false
	}
	return uv.ItemByID(id)
}
