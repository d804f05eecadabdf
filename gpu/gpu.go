// Package gpu defines the GPU capability surface used by the batch renderer.
//
// It is a deliberately small subset of an OpenGL-style API: buffers, vertex
// arrays, vertex attribute descriptions, raw uploads and non-indexed draw
// calls. Package glcore implements it on top of OpenGL 3.3 core and package
// gputest provides a recording fake.
//
// A Context must only be used from the goroutine (and OS thread) that owns
// the underlying graphics context.
//
package gpu

import (
	"github.com/pkg/errors"
)

// ErrResourceCreation is returned (wrapped) when the GPU fails to allocate a
// buffer or vertex array.
//
var ErrResourceCreation = errors.New("gpu resource creation failed")

// Buffer is an opaque GPU buffer handle. The zero value is no buffer.
//
type Buffer uint32

// VertexArray is an opaque vertex array (vertex format descriptor) handle.
// The zero value is no vertex array.
//
type VertexArray uint32

// Target selects a buffer binding point.
//
type Target int

// Buffer targets.
const (
	ArrayBuffer Target = iota
)

// Usage is a hint about how often uploaded data changes.
//
type Usage int

// Usage hints.
const (
	StaticDraw  Usage = iota // uploaded once, drawn many times
	DynamicDraw              // updated now and then
	StreamDraw               // replaced every frame
)

func (u Usage) String() string {
	switch u {
	case StaticDraw:
		return "static"
	case DynamicDraw:
		return "dynamic"
	case StreamDraw:
		return "stream"
	}
	return "unknown"
}

// Type is the component type of a vertex attribute.
//
type Type int

// Attribute component types.
const (
	Float Type = iota
)

// Mode is a primitive mode for draw calls.
//
type Mode int

// Primitive modes.
const (
	Triangles Mode = iota
)

// Context is the set of GPU operations the renderer depends on.
//
type Context interface {
	CreateBuffer() (Buffer, error)
	BindBuffer(t Target, b Buffer)
	DeleteBuffer(b Buffer)

	CreateVertexArray() (VertexArray, error)
	BindVertexArray(va VertexArray)
	DeleteVertexArray(va VertexArray)

	// VertexAttribPointer describes attribute index of the currently bound
	// vertex array as size components of type typ, read from the currently
	// bound ArrayBuffer at the given byte offset and stride.
	VertexAttribPointer(index uint32, size int32, typ Type, normalized bool, stride int32, offset int)
	EnableVertexAttribArray(index uint32)

	// BufferData replaces the whole content of the buffer bound to t.
	BufferData(t Target, data []byte, usage Usage)

	// DrawArrays draws count vertices starting at first.
	DrawArrays(mode Mode, first int32, count int32)
}
