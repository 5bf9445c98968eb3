// Copyright (c) 2025, The Spherebase Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"runtime"

	"github.com/fatih/color"
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/rboltze/Sphere-Base/camera"
	"github.com/rboltze/Sphere-Base/collision"
	"github.com/rboltze/Sphere-Base/config"
	"github.com/rboltze/Sphere-Base/render"
	"github.com/rboltze/Sphere-Base/sphere"
)

func init() {
	// glfw event handling must run on the main OS thread
	runtime.LockOSThread()
}

type session struct {
	universe *sphere.Universe
	view     *render.ViewState
	window   *glfw.Window
	width    int
	height   int
	lastX    float64
	lastY    float64
	orbiting bool
	selected *sphere.SurfaceEdge
}

func run(cfgPath string) error {
	st, err := config.Open(cfgPath)
	if err != nil {
		return err
	}

	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw: %w", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Samples, 4)

	window, err := glfw.CreateWindow(st.WinWidth, st.WinHeight, "spherebase", nil, nil)
	if err != nil {
		return fmt.Errorf("glfw: %w", err)
	}
	window.MakeContextCurrent()
	glfw.SwapInterval(1)

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl: %w", err)
	}

	view := render.NewViewState()
	shader, err := render.NewEdgeShader(view)
	if err != nil {
		return err
	}
	defer shader.Release()

	uv := sphere.NewUniverse(st, sphere.Options{
		View:      view,
		Collision: collision.NewRegistry(),
		Shader:    shader,
		NewLineBuffer: func() (sphere.LineRenderer, error) {
			lb, err := render.NewLineBuffer()
			if err != nil {
				return nil, err
			}
			return lb, nil
		},
	})
	demoScene(uv)

	ss := &session{
		universe: uv,
		view:     view,
		window:   window,
		width:    st.WinWidth,
		height:   st.WinHeight,
	}
	ss.resize(st.WinWidth, st.WinHeight)
	window.SetFramebufferSizeCallback(func(_ *glfw.Window, w, h int) { ss.resize(w, h) })
	window.SetCursorPosCallback(ss.onCursor)
	window.SetMouseButtonCallback(ss.onMouseButton)
	window.SetScrollCallback(ss.onScroll)

	color.Green("spherebase %s: universe with %d sphere(s)", version, len(uv.Spheres()))

	gl.Enable(gl.DEPTH_TEST)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.ClearColor(0.92, 0.92, 0.95, 1)

	for !window.ShouldClose() {
		glfw.PollEvents()
		gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
		uv.Draw()
		window.SwapBuffers()
	}
	return nil
}

// demoScene populates a starter universe: two spheres with a few connected
// nodes on the first.
func demoScene(uv *sphere.Universe) {
	sp := uv.NewSphere(mgl32.Vec3{}, 1)
	uv.NewSphere(mgl32.Vec3{4, 0, 0}, 1)

	a := sp.NewNode(mgl32.QuatRotate(-0.5, mgl32.Vec3{1, 0, 0}))
	b := sp.NewNode(mgl32.QuatRotate(0.7, mgl32.Vec3{0, 1, 0}))
	c := sp.NewNode(mgl32.QuatRotate(1.2, mgl32.Vec3{1, 1, 0}.Normalize()))
	sp.NewSurfaceEdge(a.Socket(), b.Socket())
	sp.NewSurfaceEdge(b.Socket(), c.Socket())
}

func (ss *session) resize(w, h int) {
	if w <= 0 || h <= 0 {
		return
	}
	ss.width, ss.height = w, h
	gl.Viewport(0, 0, int32(w), int32(h))
	proj := mgl32.Perspective(mgl32.DegToRad(45), float32(w)/float32(h), 0.1, 100)
	ss.view.SetProjection(proj)
}

func (ss *session) onCursor(_ *glfw.Window, x, y float64) {
	if ss.orbiting {
		dx := float32(x - ss.lastX)
		dy := float32(ss.lastY - y)
		ss.universe.Camera().ProcessMouseMovement(ss.universe.TargetSphere(), dx, dy)
	}
	ss.lastX, ss.lastY = x, y
}

func (ss *session) onMouseButton(_ *glfw.Window, button glfw.MouseButton, action glfw.Action, _ glfw.ModifierKey) {
	switch button {
	case glfw.MouseButtonLeft:
		ss.orbiting = action == glfw.Press
	case glfw.MouseButtonRight:
		if action == glfw.Press {
			ss.pick()
		}
	}
}

func (ss *session) onScroll(_ *glfw.Window, _, yoff float64) {
	cm := ss.universe.Camera()
	radius := cm.DistanceToTarget() - float32(yoff)*0.2
	cm.ProcessMovement(ss.universe.TargetSphere(), 0, 0, radius)
}

// pick casts a mouse ray at the cursor and toggles selection of the hit
// edge.
func (ss *session) pick() {
	winY := float32(ss.height) - float32(ss.lastY) // GL origin is bottom-left
	item, ok := ss.universe.PickAt(float32(ss.lastX), winY, ss.width, ss.height, ss.view.Projection())
	if ss.selected != nil {
		ss.selected.OnSelected(false)
		ss.selected = nil
	}
	if !ok {
		return
	}
	if ed, isEdge := item.(*sphere.SurfaceEdge); isEdge {
		ed.OnSelected(true)
		ss.selected = ed
	}
}
