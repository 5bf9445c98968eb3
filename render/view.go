// Copyright (c) 2025, The Spherebase Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import "github.com/go-gl/mathgl/mgl32"

// ViewState is the explicit per-frame publish/consume slot for the camera
// matrices. The camera publishes into it before any draw call of the frame;
// shaders read from it when drawing. It replaces a mutable global: the
// lifetime of a published matrix is exactly one frame's draw pass.
type ViewState struct {
	view       mgl32.Mat4
	projection mgl32.Mat4
}

// NewViewState returns a view state with identity matrices.
func NewViewState() *ViewState {
	return &ViewState{
		view:       mgl32.Ident4(),
		projection: mgl32.Ident4(),
	}
}

// PublishView stores the view matrix for the current frame.
func (vs *ViewState) PublishView(view mgl32.Mat4) {
	vs.view = view
}

// SetProjection stores the projection matrix; updated on resize.
func (vs *ViewState) SetProjection(projection mgl32.Mat4) {
	vs.projection = projection
}

// View returns the last published view matrix.
func (vs *ViewState) View() mgl32.Mat4 { return vs.view }

// Projection returns the current projection matrix.
func (vs *ViewState) Projection() mgl32.Mat4 { return vs.projection }
