package glcore

import (
	"strings"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/pkg/errors"
)

// Shader is a compiled GL shader object.
//
type Shader uint32

// NewShader compiles a shader of the given type. On failure, the returned
// error carries the compiler log.
//
func NewShader(typ uint32, source string) (Shader, error) {
	s := gl.CreateShader(typ)
	if s == 0 {
		return 0, errors.New("glCreateShader failed")
	}
	csrc, free := gl.Strs(source + "\x00")
	gl.ShaderSource(s, 1, csrc, nil)
	free()
	gl.CompileShader(s)

	var status int32
	gl.GetShaderiv(s, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetShaderiv(s, gl.INFO_LOG_LENGTH, &logLen)
		msg := infoLog(logLen, func(buf *uint8) { gl.GetShaderInfoLog(s, logLen, nil, buf) })
		gl.DeleteShader(s)
		return 0, errors.Errorf("compile shader: %s", msg)
	}
	return Shader(s), nil
}

// Delete releases the shader object.
//
func (s Shader) Delete() {
	gl.DeleteShader(uint32(s))
}

// Program is a linked GL program object.
//
type Program uint32

// NewProgram links the given shaders into a program.
//
func NewProgram(shaders ...Shader) (Program, error) {
	p := gl.CreateProgram()
	if p == 0 {
		return 0, errors.New("glCreateProgram failed")
	}
	for _, s := range shaders {
		gl.AttachShader(p, uint32(s))
	}
	gl.LinkProgram(p)

	var status int32
	gl.GetProgramiv(p, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetProgramiv(p, gl.INFO_LOG_LENGTH, &logLen)
		msg := infoLog(logLen, func(buf *uint8) { gl.GetProgramInfoLog(p, logLen, nil, buf) })
		gl.DeleteProgram(p)
		return 0, errors.Errorf("link program: %s", msg)
	}
	return Program(p), nil
}

// NewTriangleProgram compiles and links the program used to render batches:
// position in normalized [0,1]² space (Y down) plus depth, and a flat RGBA
// colour per vertex.
//
func NewTriangleProgram() (Program, error) {
	vertex, err := NewShader(gl.VERTEX_SHADER, vertexShader)
	if err != nil {
		return 0, errors.Wrap(err, "vertex shader")
	}
	defer vertex.Delete()
	frag, err := NewShader(gl.FRAGMENT_SHADER, fragmentShader)
	if err != nil {
		return 0, errors.Wrap(err, "fragment shader")
	}
	defer frag.Delete()

	return NewProgram(vertex, frag)
}

// Use makes p the current program.
//
func (p Program) Use() {
	gl.UseProgram(uint32(p))
}

// Delete releases the program object.
//
func (p Program) Delete() {
	gl.DeleteProgram(uint32(p))
}

func infoLog(n int32, get func(*uint8)) string {
	if n <= 0 {
		return "unknown error"
	}
	buf := make([]uint8, n+1)
	get(&buf[0])
	return strings.TrimRight(string(buf), "\x00\n ")
}

// Setup sets the fixed-function state the triangle program expects:
// straight alpha blending and a depth test where larger depth values are
// closer to the viewer.
//
func Setup() {
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LEQUAL)
}

// Viewport sets the GL viewport in framebuffer pixels.
//
func Viewport(x, y, w, h int) {
	gl.Viewport(int32(x), int32(y), int32(w), int32(h))
}

// Clear clears the colour and depth buffers.
//
func Clear(r, g, b, a float32) {
	gl.ClearColor(r, g, b, a)
	gl.ClearDepth(1)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}
