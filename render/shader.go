// Copyright (c) 2025, The Spherebase Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

const edgeVertexSrc = `#version 410 core
layout (location = 0) in vec3 aPos;
uniform mat4 view;
uniform mat4 projection;
void main() {
	gl_Position = projection * view * vec4(aPos, 1.0);
}
` + "\x00"

const edgeFragmentSrc = `#version 410 core
uniform vec4 color;
uniform int dotted;
out vec4 fragColor;
void main() {
	if (dotted == 1) {
		int p = (int(gl_FragCoord.x) + int(gl_FragCoord.y)) / 4;
		if (p % 2 == 0) {
			discard;
		}
	}
	fragColor = color;
}
` + "\x00"

// EdgeShader draws edge polylines as width-adjustable, optionally dashed
// line strips, reading the camera matrices from the view state.
type EdgeShader struct {
	program uint32
	view    *ViewState
	scratch *LineBuffer

	locView       int32
	locProjection int32
	locColor      int32
	locDotted     int32
}

// NewEdgeShader compiles and links the edge program. Requires a current
// GL context.
func NewEdgeShader(view *ViewState) (*EdgeShader, error) {
	program, err := newProgram(edgeVertexSrc, edgeFragmentSrc)
	if err != nil {
		return nil, fmt.Errorf("render: edge shader: %w", err)
	}
	scratch, err := NewLineBuffer()
	if err != nil {
		gl.DeleteProgram(program)
		return nil, err
	}
	es := &EdgeShader{
		program:       program,
		view:          view,
		scratch:       scratch,
		locView:       gl.GetUniformLocation(program, gl.Str("view\x00")),
		locProjection: gl.GetUniformLocation(program, gl.Str("projection\x00")),
		locColor:      gl.GetUniformLocation(program, gl.Str("color\x00")),
		locDotted:     gl.GetUniformLocation(program, gl.Str("dotted\x00")),
	}
	return es, nil
}

// DrawEdge renders the point sequence as a fat line with the given width,
// color and dash flag. Fewer than two points is nothing to draw.
func (es *EdgeShader) DrawEdge(points []mgl32.Vec3, width float32, color mgl32.Vec4, dotted bool) error {
	if len(points) < 2 {
		return nil
	}
	if es.program == 0 {
		return fmt.Errorf("render: draw on released edge shader")
	}

	vertices := make([]float32, 0, len(points)*3)
	for _, p := range points {
		vertices = append(vertices, p.X(), p.Y(), p.Z())
	}
	es.scratch.SetPoints(vertices)

	gl.UseProgram(es.program)
	view := es.view.View()
	projection := es.view.Projection()
	gl.UniformMatrix4fv(es.locView, 1, false, &view[0])
	gl.UniformMatrix4fv(es.locProjection, 1, false, &projection[0])
	gl.Uniform4f(es.locColor, color.X(), color.Y(), color.Z(), color.W())
	if dotted {
		gl.Uniform1i(es.locDotted, 1)
	} else {
		gl.Uniform1i(es.locDotted, 0)
	}
	gl.LineWidth(width)

	err := es.scratch.Draw()
	gl.UseProgram(0)
	return err
}

// Release frees the program and scratch buffer.
func (es *EdgeShader) Release() {
	if es.scratch != nil {
		es.scratch.Release()
		es.scratch = nil
	}
	if es.program != 0 {
		gl.DeleteProgram(es.program)
		es.program = 0
	}
}

// newProgram compiles the vertex and fragment sources and links them.
func newProgram(vertexSrc, fragmentSrc string) (uint32, error) {
	vertex, err := compileShader(vertexSrc, gl.VERTEX_SHADER)
	if err != nil {
		return 0, err
	}
	fragment, err := compileShader(fragmentSrc, gl.FRAGMENT_SHADER)
	if err != nil {
		gl.DeleteShader(vertex)
		return 0, err
	}

	program := gl.CreateProgram()
	gl.AttachShader(program, vertex)
	gl.AttachShader(program, fragment)
	gl.LinkProgram(program)
	gl.DeleteShader(vertex)
	gl.DeleteShader(fragment)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLen)
		log := strings.Repeat("\x00", int(logLen+1))
		gl.GetProgramInfoLog(program, logLen, nil, gl.Str(log))
		gl.DeleteProgram(program)
		return 0, fmt.Errorf("link failed: %v", log)
	}
	return program, nil
}

func compileShader(src string, shaderType uint32) (uint32, error) {
	shader := gl.CreateShader(shaderType)
	csrc, free := gl.Strs(src)
	gl.ShaderSource(shader, 1, csrc, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLen)
		log := strings.Repeat("\x00", int(logLen+1))
		gl.GetShaderInfoLog(shader, logLen, nil, gl.Str(log))
		gl.DeleteShader(shader)
		return 0, fmt.Errorf("compile failed: %v", log)
	}
	return shader, nil
}
