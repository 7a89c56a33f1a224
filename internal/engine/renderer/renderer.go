// Package renderer draws the room as lit, flat-colored boxes.
package renderer

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/portfolio-room/internal/engine/lighting"
	"github.com/Faultbox/portfolio-room/internal/engine/shader"
	"github.com/Faultbox/portfolio-room/internal/logger"
	"github.com/Faultbox/portfolio-room/pkg/math"
)

// Config holds renderer configuration.
type Config struct {
	Width  int
	Height int
}

// Box is one axis-aligned box to draw.
type Box struct {
	Center math.Vec3
	Size   math.Vec3
	Color  [3]float32
	// Highlight brightens the box, 0 for none and 1 for full.
	Highlight float32
}

// Renderer handles all OpenGL rendering.
type Renderer struct {
	config Config

	program    *shader.Program
	uMVP       int32
	uModel     int32
	uColor     int32
	uHighlight int32
	uLightDir  int32

	uPointPos   int32
	uPointColor int32
	uPointRange int32
	uPointCount int32

	lightDir math.Vec3
	lights   *lighting.PointLightBuffer

	cubeVAO uint32
	cubeVBO uint32
	lineVAO uint32
	lineVBO uint32

	log *zap.Logger
}

// New creates a new renderer.
// IMPORTANT: Must be called AFTER OpenGL context is created!
func New(cfg Config) (*Renderer, error) {
	r := &Renderer{
		config:   cfg,
		lightDir: lighting.Direction(30, 60),
		lights:   lighting.NewPointLightBuffer(),
		log:      logger.Named("renderer"),
	}

	// Initialize OpenGL
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	// Log OpenGL info
	r.log.Info("OpenGL initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
	)

	// Setup default OpenGL state
	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	gl.Enable(gl.CULL_FACE)
	gl.Enable(gl.MULTISAMPLE)
	gl.ClearColor(0.08, 0.07, 0.12, 1.0) // Night-time room
	gl.Viewport(0, 0, int32(cfg.Width), int32(cfg.Height))

	var err error
	r.program, err = shader.Compile(boxVertexShader, boxFragmentShader)
	if err != nil {
		return nil, fmt.Errorf("failed to create box shader: %w", err)
	}
	if err := r.program.Require("uMVP", "uModel", "uColor"); err != nil {
		r.program.Delete()
		return nil, fmt.Errorf("failed to create box shader: %w", err)
	}
	r.uMVP = r.program.Uniform("uMVP")
	r.uModel = r.program.Uniform("uModel")
	r.uColor = r.program.Uniform("uColor")
	r.uHighlight = r.program.Uniform("uHighlight")
	r.uLightDir = r.program.Uniform("uLightDir")
	r.uPointPos = r.program.Uniform("uPointPos[0]")
	r.uPointColor = r.program.Uniform("uPointColor[0]")
	r.uPointRange = r.program.Uniform("uPointRange[0]")
	r.uPointCount = r.program.Uniform("uPointCount")

	r.createCube()
	r.createLines()
	return r, nil
}

// Close cleans up renderer resources.
func (r *Renderer) Close() {
	r.log.Info("closing renderer")
	if r.cubeVAO != 0 {
		gl.DeleteVertexArrays(1, &r.cubeVAO)
	}
	if r.cubeVBO != 0 {
		gl.DeleteBuffers(1, &r.cubeVBO)
	}
	if r.lineVAO != 0 {
		gl.DeleteVertexArrays(1, &r.lineVAO)
	}
	if r.lineVBO != 0 {
		gl.DeleteBuffers(1, &r.lineVBO)
	}
	r.program.Delete()
}

// Resize handles window resize. width and height are in pixels.
func (r *Renderer) Resize(width, height int) {
	r.config.Width = width
	r.config.Height = height
	gl.Viewport(0, 0, int32(width), int32(height))
	r.log.Debug("renderer resized",
		zap.Int("width", width),
		zap.Int("height", height),
	)
}

// Aspect returns the viewport aspect ratio.
func (r *Renderer) Aspect() float32 {
	if r.config.Height == 0 {
		return 1
	}
	return float32(r.config.Width) / float32(r.config.Height)
}

// Begin starts a new frame.
func (r *Renderer) Begin() {
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
	r.program.Use()
	gl.BindVertexArray(r.cubeVAO)

	gl.Uniform3f(r.uLightDir, r.lightDir.X, r.lightDir.Y, r.lightDir.Z)

	pos, col, rng := r.lights.Positions(), r.lights.Colors(), r.lights.Ranges()
	gl.Uniform3fv(r.uPointPos, lighting.MaxPointLights, &pos[0])
	gl.Uniform3fv(r.uPointColor, lighting.MaxPointLights, &col[0])
	gl.Uniform1fv(r.uPointRange, lighting.MaxPointLights, &rng[0])
	gl.Uniform1i(r.uPointCount, int32(r.lights.Count()))
}

// SetLighting sets the directional light and the point lights.
func (r *Renderer) SetLighting(dir math.Vec3, lights []lighting.PointLight) {
	r.lightDir = dir.Normalize()
	r.lights.SetLights(lights)
	r.log.Debug("lighting updated", zap.Int("point_lights", r.lights.Count()))
}

// DrawBoxes draws boxes with the given view-projection matrix.
func (r *Renderer) DrawBoxes(viewProj math.Mat4, boxes []Box) {
	for _, b := range boxes {
		model := ModelMatrix(b)
		mvp := viewProj.Mul(model)
		gl.UniformMatrix4fv(r.uMVP, 1, false, mvp.Ptr())
		gl.UniformMatrix4fv(r.uModel, 1, false, model.Ptr())
		gl.Uniform3f(r.uColor, b.Color[0], b.Color[1], b.Color[2])
		gl.Uniform1f(r.uHighlight, b.Highlight)
		gl.DrawArrays(gl.TRIANGLES, 0, int32(len(cubeVertices)/6))
	}
}

// DrawLines draws a world-space line list (x, y, z per vertex) in a flat color.
func (r *Renderer) DrawLines(viewProj math.Mat4, vertices []float32, color [3]float32) {
	if len(vertices) < 6 {
		return
	}
	identity := math.Identity()
	gl.UniformMatrix4fv(r.uMVP, 1, false, viewProj.Ptr())
	gl.UniformMatrix4fv(r.uModel, 1, false, identity.Ptr())
	gl.Uniform3f(r.uColor, color[0], color[1], color[2])
	gl.Uniform1f(r.uHighlight, 1)

	gl.BindVertexArray(r.lineVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.lineVBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*4, unsafe.Pointer(&vertices[0]), gl.STREAM_DRAW)
	// Lines carry no normal; light them as if facing up
	gl.VertexAttrib3f(1, 0, 1, 0)
	gl.DrawArrays(gl.LINES, 0, int32(len(vertices)/3))
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(r.cubeVAO)
}

// ReadPixels returns the current framebuffer as bottom-up RGBA rows.
func (r *Renderer) ReadPixels() ([]byte, int, int) {
	w, h := r.config.Width, r.config.Height
	pixels := make([]byte, w*h*4)
	if len(pixels) == 0 {
		return pixels, w, h
	}
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadPixels(0, 0, int32(w), int32(h), gl.RGBA, gl.UNSIGNED_BYTE, unsafe.Pointer(&pixels[0]))
	return pixels, w, h
}

// End finishes the current frame.
func (r *Renderer) End() {
	gl.BindVertexArray(0)
	gl.UseProgram(0)
}

// ModelMatrix places the unit cube at the box's center and size.
func ModelMatrix(b Box) math.Mat4 {
	return math.TranslateScale(b.Center, b.Size)
}

func (r *Renderer) createCube() {
	gl.GenVertexArrays(1, &r.cubeVAO)
	gl.BindVertexArray(r.cubeVAO)

	gl.GenBuffers(1, &r.cubeVBO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.cubeVBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(cubeVertices)*4, unsafe.Pointer(&cubeVertices[0]), gl.STATIC_DRAW)

	// Position attribute (location = 0)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, 6*4, nil)
	gl.EnableVertexAttribArray(0)

	// Normal attribute (location = 1)
	gl.VertexAttribPointer(1, 3, gl.FLOAT, false, 6*4, unsafe.Pointer(uintptr(3*4)))
	gl.EnableVertexAttribArray(1)

	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)

	r.log.Debug("cube created",
		zap.Uint32("vao", r.cubeVAO),
		zap.Uint32("vbo", r.cubeVBO),
	)
}

func (r *Renderer) createLines() {
	gl.GenVertexArrays(1, &r.lineVAO)
	gl.BindVertexArray(r.lineVAO)

	gl.GenBuffers(1, &r.lineVBO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.lineVBO)

	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, 3*4, nil)
	gl.EnableVertexAttribArray(0)

	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)
}
