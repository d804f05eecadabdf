// Package glcore implements gpu.Context with the OpenGL 3.3 core profile.
//
// Init must be called once a GL context has been made current on the calling
// thread, and before any other function of this package.
//
package glcore

import (
	"fmt"

	"github.com/db47h/tilebatch/gpu"
	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/pkg/errors"
)

// Init loads the OpenGL function pointers for the current context.
//
func Init() error {
	if err := gl.Init(); err != nil {
		return errors.Wrap(err, "init OpenGL bindings")
	}
	return nil
}

// Version returns the GL_VERSION string of the current context.
//
func Version() string {
	return gl.GoStr(gl.GetString(gl.VERSION))
}

// Vendor returns the GL_VENDOR string of the current context.
//
func Vendor() string {
	return gl.GoStr(gl.GetString(gl.VENDOR))
}

// Context is a gpu.Context backed by the current OpenGL context.
//
type Context struct{}

var _ gpu.Context = Context{}

// CreateBuffer implements gpu.Context.
//
func (Context) CreateBuffer() (gpu.Buffer, error) {
	var b uint32
	gl.GenBuffers(1, &b)
	if b == 0 {
		return 0, errors.Wrap(gpu.ErrResourceCreation, "glGenBuffers")
	}
	return gpu.Buffer(b), nil
}

// BindBuffer implements gpu.Context.
//
func (Context) BindBuffer(t gpu.Target, b gpu.Buffer) {
	gl.BindBuffer(target(t), uint32(b))
}

// DeleteBuffer implements gpu.Context.
//
func (Context) DeleteBuffer(b gpu.Buffer) {
	id := uint32(b)
	gl.DeleteBuffers(1, &id)
}

// CreateVertexArray implements gpu.Context.
//
func (Context) CreateVertexArray() (gpu.VertexArray, error) {
	var va uint32
	gl.GenVertexArrays(1, &va)
	if va == 0 {
		return 0, errors.Wrap(gpu.ErrResourceCreation, "glGenVertexArrays")
	}
	return gpu.VertexArray(va), nil
}

// BindVertexArray implements gpu.Context.
//
func (Context) BindVertexArray(va gpu.VertexArray) {
	gl.BindVertexArray(uint32(va))
}

// DeleteVertexArray implements gpu.Context.
//
func (Context) DeleteVertexArray(va gpu.VertexArray) {
	id := uint32(va)
	gl.DeleteVertexArrays(1, &id)
}

// VertexAttribPointer implements gpu.Context.
//
func (Context) VertexAttribPointer(index uint32, size int32, typ gpu.Type, normalized bool, stride int32, offset int) {
	gl.VertexAttribPointerWithOffset(index, size, componentType(typ), normalized, stride, uintptr(offset))
}

// EnableVertexAttribArray implements gpu.Context.
//
func (Context) EnableVertexAttribArray(index uint32) {
	gl.EnableVertexAttribArray(index)
}

// BufferData implements gpu.Context. An empty data slice allocates a zero
// sized store.
//
func (Context) BufferData(t gpu.Target, data []byte, u gpu.Usage) {
	if len(data) == 0 {
		gl.BufferData(target(t), 0, nil, usage(u))
		return
	}
	gl.BufferData(target(t), len(data), gl.Ptr(&data[0]), usage(u))
}

// DrawArrays implements gpu.Context.
//
func (Context) DrawArrays(m gpu.Mode, first, count int32) {
	gl.DrawArrays(mode(m), first, count)
}

// CheckError returns the oldest pending GL error, if any.
//
func CheckError() error {
	if e := gl.GetError(); e != gl.NO_ERROR {
		return glError(e)
	}
	return nil
}

type glError uint32

func (e glError) Error() string {
	switch uint32(e) {
	case gl.INVALID_ENUM:
		return "GL_INVALID_ENUM"
	case gl.INVALID_VALUE:
		return "GL_INVALID_VALUE"
	case gl.INVALID_OPERATION:
		return "GL_INVALID_OPERATION"
	case gl.INVALID_FRAMEBUFFER_OPERATION:
		return "GL_INVALID_FRAMEBUFFER_OPERATION"
	case gl.OUT_OF_MEMORY:
		return "GL_OUT_OF_MEMORY"
	}
	return fmt.Sprintf("GL error 0x%04x", uint32(e))
}

func target(t gpu.Target) uint32 {
	switch t {
	case gpu.ArrayBuffer:
		return gl.ARRAY_BUFFER
	}
	panic(errors.Errorf("glcore: invalid buffer target %d", t))
}

func usage(u gpu.Usage) uint32 {
	switch u {
	case gpu.StaticDraw:
		return gl.STATIC_DRAW
	case gpu.DynamicDraw:
		return gl.DYNAMIC_DRAW
	case gpu.StreamDraw:
		return gl.STREAM_DRAW
	}
	panic(errors.Errorf("glcore: invalid usage %d", u))
}

func componentType(t gpu.Type) uint32 {
	switch t {
	case gpu.Float:
		return gl.FLOAT
	}
	panic(errors.Errorf("glcore: invalid component type %d", t))
}

func mode(m gpu.Mode) uint32 {
	switch m {
	case gpu.Triangles:
		return gl.TRIANGLES
	}
	panic(errors.Errorf("glcore: invalid primitive mode %d", m))
}
