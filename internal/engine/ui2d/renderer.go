// Package ui2d provides a simple 2D overlay rendering layer using OpenGL.
// Quads are batched per frame and drawn on top of the 3D scene.
package ui2d

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Faultbox/portfolio-room/internal/engine/shader"
)

// Renderer handles 2D overlay rendering with OpenGL.
type Renderer struct {
	screenWidth  int
	screenHeight int

	// Shader program for solid color quads
	solidShader *shader.Program
	uProjection int32

	// VAO/VBO for solid quad rendering
	solidVAO uint32
	solidVBO uint32

	// Current draw list
	solidVertices []float32
}

// New creates a new 2D renderer. width and height are in the same units as
// the coordinates passed to the draw calls.
func New(width, height int) (*Renderer, error) {
	r := &Renderer{
		screenWidth:   width,
		screenHeight:  height,
		solidVertices: make([]float32, 0, 1024),
	}

	var err error
	r.solidShader, err = shader.Compile(solidVertexShader, solidFragmentShader)
	if err != nil {
		return nil, fmt.Errorf("create solid shader: %w", err)
	}
	if err := r.solidShader.Require("uProjection"); err != nil {
		r.solidShader.Delete()
		return nil, fmt.Errorf("create solid shader: %w", err)
	}
	r.uProjection = r.solidShader.Uniform("uProjection")

	r.createSolidBuffers()
	return r, nil
}

// Resize updates the screen dimensions.
func (r *Renderer) Resize(width, height int) {
	r.screenWidth = width
	r.screenHeight = height
}

// Begin starts a new UI frame.
func (r *Renderer) Begin() {
	r.solidVertices = r.solidVertices[:0]
}

// End finishes the UI frame and renders all queued elements.
func (r *Renderer) End() {
	if len(r.solidVertices) == 0 {
		return
	}

	// Save OpenGL state
	var prevBlend, prevDepth, prevCull int32
	gl.GetIntegerv(gl.BLEND, &prevBlend)
	gl.GetIntegerv(gl.DEPTH_TEST, &prevDepth)
	gl.GetIntegerv(gl.CULL_FACE, &prevCull)

	// Setup state for 2D rendering
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.Disable(gl.DEPTH_TEST)
	gl.Disable(gl.CULL_FACE)

	proj := OrthoMatrix(0, float32(r.screenWidth), float32(r.screenHeight), 0, -1, 1)

	r.solidShader.Use()
	gl.UniformMatrix4fv(r.uProjection, 1, false, &proj[0])

	gl.BindVertexArray(r.solidVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.solidVBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(r.solidVertices)*4, unsafe.Pointer(&r.solidVertices[0]), gl.STREAM_DRAW)
	gl.DrawArrays(gl.TRIANGLES, 0, int32(len(r.solidVertices)/7)) // 7 floats per vertex

	// Restore state
	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.UseProgram(0)

	if prevBlend == gl.FALSE {
		gl.Disable(gl.BLEND)
	}
	if prevDepth == gl.TRUE {
		gl.Enable(gl.DEPTH_TEST)
	}
	if prevCull == gl.TRUE {
		gl.Enable(gl.CULL_FACE)
	}
}

// Close releases renderer resources.
func (r *Renderer) Close() {
	if r.solidVAO != 0 {
		gl.DeleteVertexArrays(1, &r.solidVAO)
	}
	if r.solidVBO != 0 {
		gl.DeleteBuffers(1, &r.solidVBO)
	}
	r.solidShader.Delete()
}

// DrawRect draws a filled rectangle.
func (r *Renderer) DrawRect(rect Rect, color Color) {
	r.solidVertices = appendQuad(r.solidVertices, rect.X, rect.Y, rect.W, rect.H, color)
}

// DrawRectOutline draws a rectangle outline.
func (r *Renderer) DrawRectOutline(rect Rect, thickness float32, color Color) {
	x, y, w, h := rect.X, rect.Y, rect.W, rect.H
	v := r.solidVertices
	// Top
	v = appendQuad(v, x, y, w, thickness, color)
	// Bottom
	v = appendQuad(v, x, y+h-thickness, w, thickness, color)
	// Left
	v = appendQuad(v, x, y+thickness, thickness, h-thickness*2, color)
	// Right
	v = appendQuad(v, x+w-thickness, y+thickness, thickness, h-thickness*2, color)
	r.solidVertices = v
}

// DrawPanel draws a panel with border.
func (r *Renderer) DrawPanel(rect Rect, bg, border Color) {
	r.DrawRect(rect, bg)
	r.DrawRectOutline(rect, 1, border)
}

// appendQuad adds two triangles forming a quad.
// Vertex format: x, y, z, r, g, b, a (7 floats)
func appendQuad(v []float32, x, y, w, h float32, c Color) []float32 {
	return append(v,
		// Triangle 1
		x, y, 0, c.R, c.G, c.B, c.A,
		x+w, y, 0, c.R, c.G, c.B, c.A,
		x+w, y+h, 0, c.R, c.G, c.B, c.A,
		// Triangle 2
		x, y, 0, c.R, c.G, c.B, c.A,
		x+w, y+h, 0, c.R, c.G, c.B, c.A,
		x, y+h, 0, c.R, c.G, c.B, c.A,
	)
}

// OrthoMatrix returns a column-major orthographic projection.
func OrthoMatrix(left, right, bottom, top, near, far float32) [16]float32 {
	return [16]float32{
		2 / (right - left), 0, 0, 0,
		0, 2 / (top - bottom), 0, 0,
		0, 0, -2 / (far - near), 0,
		-(right + left) / (right - left), -(top + bottom) / (top - bottom), -(far + near) / (far - near), 1,
	}
}

// createSolidBuffers creates VAO/VBO for solid color quad rendering.
func (r *Renderer) createSolidBuffers() {
	gl.GenVertexArrays(1, &r.solidVAO)
	gl.BindVertexArray(r.solidVAO)

	gl.GenBuffers(1, &r.solidVBO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.solidVBO)

	// Vertex format: pos(3) + color(4) = 7 floats, 28 bytes
	stride := int32(7 * 4)

	// Position attribute (location = 0): 3 floats
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, stride, 0)
	gl.EnableVertexAttribArray(0)

	// Color attribute (location = 1): 4 floats
	gl.VertexAttribPointerWithOffset(1, 4, gl.FLOAT, false, stride, 3*4)
	gl.EnableVertexAttribArray(1)

	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
}

const solidVertexShader = `
#version 410 core

layout (location = 0) in vec3 aPos;
layout (location = 1) in vec4 aColor;

uniform mat4 uProjection;

out vec4 vColor;

void main() {
	gl_Position = uProjection * vec4(aPos, 1.0);
	vColor = aColor;
}
`

const solidFragmentShader = `
#version 410 core

in vec4 vColor;
out vec4 FragColor;

void main() {
	FragColor = vColor;
}
`
