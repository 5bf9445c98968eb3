// Copyright (c) 2025, The Spherebase Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package render owns the OpenGL side of edge drawing: vertex buffer
// lifecycle, the edge shader program, and the per-frame view state slot.
// Everything here must run on the thread owning the GL context.
package render

import (
	"errors"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// floatSize is the byte size of a float32 vertex component.
const floatSize = 4

// LineBuffer owns a vertex-array/vertex-buffer pair holding a polyline as
// tightly packed positions, 3 floats per point. Storage is fully
// reallocated on every geometry change; there are no partial updates.
type LineBuffer struct {
	vao   uint32
	vbo   uint32
	count int32
}

// NewLineBuffer creates the GL objects. Requires a current GL context.
func NewLineBuffer() (*LineBuffer, error) {
	lb := &LineBuffer{}
	gl.GenVertexArrays(1, &lb.vao)
	gl.GenBuffers(1, &lb.vbo)
	if lb.vao == 0 || lb.vbo == 0 {
		return nil, errors.New("render: could not allocate line buffer objects")
	}
	return lb, nil
}

// SetPoints replaces the buffer contents with the given flat vertex data
// (3 components per point, no padding) and resets the attribute layout.
func (lb *LineBuffer) SetPoints(vertices []float32) {
	lb.count = int32(len(vertices) / 3)
	if lb.count == 0 {
		return
	}

	gl.BindVertexArray(lb.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, lb.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*floatSize, gl.Ptr(vertices), gl.STATIC_DRAW)

	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, 3*floatSize, gl.PtrOffset(0))

	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)
}

// Draw issues a line-strip draw covering exactly the uploaded point count.
// A zero vertex count skips the draw entirely.
func (lb *LineBuffer) Draw() error {
	if lb.count == 0 {
		return nil
	}
	if lb.vao == 0 {
		return errors.New("render: draw on released line buffer")
	}
	gl.BindVertexArray(lb.vao)
	gl.DrawArrays(gl.LINE_STRIP, 0, lb.count)
	gl.BindVertexArray(0)
	return nil
}

// Release deletes the GL objects. The buffer must not be drawn afterwards.
func (lb *LineBuffer) Release() {
	if lb.vbo != 0 {
		gl.DeleteBuffers(1, &lb.vbo)
		lb.vbo = 0
	}
	if lb.vao != 0 {
		gl.DeleteVertexArrays(1, &lb.vao)
		lb.vao = 0
	}
	lb.count = 0
}
