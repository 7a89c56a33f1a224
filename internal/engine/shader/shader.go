// Package shader compiles GLSL programs and resolves their uniforms.
package shader

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/multierr"
)

// Program is a linked GL program. Uniform locations are looked up once and
// cached by name.
type Program struct {
	ID uint32

	uniforms map[string]int32
	lookup   func(name string) int32
}

// Compile builds and links a program from vertex and fragment sources.
// Errors from both stages are reported together.
func Compile(vertexSrc, fragmentSrc string) (*Program, error) {
	vert, vertErr := compileStage(vertexSrc, gl.VERTEX_SHADER, "vertex")
	frag, fragErr := compileStage(fragmentSrc, gl.FRAGMENT_SHADER, "fragment")
	if err := multierr.Combine(vertErr, fragErr); err != nil {
		deleteShaders(vert, frag)
		return nil, err
	}
	defer deleteShaders(vert, frag)

	id := gl.CreateProgram()
	gl.AttachShader(id, vert)
	gl.AttachShader(id, frag)
	gl.LinkProgram(id)

	var status int32
	gl.GetProgramiv(id, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetProgramiv(id, gl.INFO_LOG_LENGTH, &logLen)
		buf := make([]byte, logLen+1)
		gl.GetProgramInfoLog(id, logLen, nil, &buf[0])
		gl.DeleteProgram(id)
		return nil, fmt.Errorf("link: %s", infoLog(buf))
	}

	return newProgram(id, func(name string) int32 {
		return gl.GetUniformLocation(id, gl.Str(name+"\x00"))
	}), nil
}

func newProgram(id uint32, lookup func(string) int32) *Program {
	return &Program{ID: id, uniforms: make(map[string]int32), lookup: lookup}
}

// Uniform returns the location of name, or -1 when the program does not use it.
func (p *Program) Uniform(name string) int32 {
	if loc, ok := p.uniforms[name]; ok {
		return loc
	}
	loc := p.lookup(name)
	p.uniforms[name] = loc
	return loc
}

// Require checks that every name is an active uniform.
func (p *Program) Require(names ...string) error {
	var errs error
	for _, name := range names {
		if p.Uniform(name) < 0 {
			errs = multierr.Append(errs, fmt.Errorf("uniform %q not found in program %d", name, p.ID))
		}
	}
	return errs
}

// Use binds the program for drawing.
func (p *Program) Use() {
	gl.UseProgram(p.ID)
}

// Delete frees the program. It is safe on a nil or already deleted program.
func (p *Program) Delete() {
	if p == nil || p.ID == 0 {
		return
	}
	gl.DeleteProgram(p.ID)
	p.ID = 0
}

func compileStage(source string, stage uint32, name string) (uint32, error) {
	id := gl.CreateShader(stage)
	csource, free := gl.Strs(source + "\x00")
	gl.ShaderSource(id, 1, csource, nil)
	free()
	gl.CompileShader(id)

	var status int32
	gl.GetShaderiv(id, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetShaderiv(id, gl.INFO_LOG_LENGTH, &logLen)
		buf := make([]byte, logLen+1)
		gl.GetShaderInfoLog(id, logLen, nil, &buf[0])
		gl.DeleteShader(id)
		return 0, fmt.Errorf("%s shader: %s", name, infoLog(buf))
	}
	return id, nil
}

func deleteShaders(ids ...uint32) {
	for _, id := range ids {
		if id != 0 {
			gl.DeleteShader(id)
		}
	}
}

// infoLog turns a NUL-terminated GL log into a single trimmed string.
func infoLog(buf []byte) string {
	s, _, _ := strings.Cut(string(buf), "\x00")
	return strings.TrimSpace(s)
}
