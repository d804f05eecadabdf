// Package gputest provides a recording gpu.Context for tests.
//
package gputest

import (
	"fmt"

	"github.com/db47h/tilebatch/gpu"
	"github.com/pkg/errors"
)

// Call is a single recorded gpu.Context call.
//
type Call struct {
	Op   string
	Args []interface{}
}

func (c Call) String() string {
	return fmt.Sprintf("%s%v", c.Op, c.Args)
}

// AttribPointer records a VertexAttribPointer call.
//
type AttribPointer struct {
	Index      uint32
	Size       int32
	Type       gpu.Type
	Normalized bool
	Stride     int32
	Offset     int
}

// Draw records a DrawArrays call.
//
type Draw struct {
	Mode  gpu.Mode
	First int32
	Count int32
}

// Recorder is a gpu.Context that records every call and keeps track of live
// resources. Handles are allocated sequentially starting at 1.
//
// Set FailBuffer or FailVertexArray to make the corresponding creation fail.
//
type Recorder struct {
	FailBuffer      bool
	FailVertexArray bool

	Calls    []Call
	Attribs  []AttribPointer
	Enabled  []uint32
	Draws    []Draw
	Uploads  [][]byte
	Usages   []gpu.Usage
	Buffers  map[gpu.Buffer]bool
	VAOs     map[gpu.VertexArray]bool
	BoundBuf gpu.Buffer
	BoundVAO gpu.VertexArray

	next uint32
}

var _ gpu.Context = (*Recorder)(nil)

// New returns a new Recorder.
//
func New() *Recorder {
	return &Recorder{
		Buffers: make(map[gpu.Buffer]bool),
		VAOs:    make(map[gpu.VertexArray]bool),
	}
}

func (r *Recorder) record(op string, args ...interface{}) {
	r.Calls = append(r.Calls, Call{Op: op, Args: args})
}

// CreateBuffer implements gpu.Context.
//
func (r *Recorder) CreateBuffer() (gpu.Buffer, error) {
	r.record("CreateBuffer")
	if r.FailBuffer {
		return 0, errors.Wrap(gpu.ErrResourceCreation, "gputest: buffer")
	}
	r.next++
	b := gpu.Buffer(r.next)
	r.Buffers[b] = true
	return b, nil
}

// BindBuffer implements gpu.Context.
//
func (r *Recorder) BindBuffer(t gpu.Target, b gpu.Buffer) {
	r.record("BindBuffer", t, b)
	r.BoundBuf = b
}

// DeleteBuffer implements gpu.Context.
//
func (r *Recorder) DeleteBuffer(b gpu.Buffer) {
	r.record("DeleteBuffer", b)
	delete(r.Buffers, b)
	if r.BoundBuf == b {
		r.BoundBuf = 0
	}
}

// CreateVertexArray implements gpu.Context.
//
func (r *Recorder) CreateVertexArray() (gpu.VertexArray, error) {
	r.record("CreateVertexArray")
	if r.FailVertexArray {
		return 0, errors.Wrap(gpu.ErrResourceCreation, "gputest: vertex array")
	}
	r.next++
	va := gpu.VertexArray(r.next)
	r.VAOs[va] = true
	return va, nil
}

// BindVertexArray implements gpu.Context.
//
func (r *Recorder) BindVertexArray(va gpu.VertexArray) {
	r.record("BindVertexArray", va)
	r.BoundVAO = va
}

// DeleteVertexArray implements gpu.Context.
//
func (r *Recorder) DeleteVertexArray(va gpu.VertexArray) {
	r.record("DeleteVertexArray", va)
	delete(r.VAOs, va)
	if r.BoundVAO == va {
		r.BoundVAO = 0
	}
}

// VertexAttribPointer implements gpu.Context.
//
func (r *Recorder) VertexAttribPointer(index uint32, size int32, typ gpu.Type, normalized bool, stride int32, offset int) {
	r.record("VertexAttribPointer", index, size, typ, normalized, stride, offset)
	r.Attribs = append(r.Attribs, AttribPointer{index, size, typ, normalized, stride, offset})
}

// EnableVertexAttribArray implements gpu.Context.
//
func (r *Recorder) EnableVertexAttribArray(index uint32) {
	r.record("EnableVertexAttribArray", index)
	r.Enabled = append(r.Enabled, index)
}

// BufferData records a copy of data.
//
func (r *Recorder) BufferData(t gpu.Target, data []byte, u gpu.Usage) {
	r.record("BufferData", t, len(data), u)
	r.Uploads = append(r.Uploads, append([]byte(nil), data...))
	r.Usages = append(r.Usages, u)
}

// DrawArrays implements gpu.Context.
//
func (r *Recorder) DrawArrays(m gpu.Mode, first, count int32) {
	r.record("DrawArrays", m, first, count)
	r.Draws = append(r.Draws, Draw{m, first, count})
}

// Ops returns the names of all recorded calls in order.
//
func (r *Recorder) Ops() []string {
	ops := make([]string, len(r.Calls))
	for i, c := range r.Calls {
		ops[i] = c.Op
	}
	return ops
}

// LastUpload returns the payload of the last BufferData call, or nil.
//
func (r *Recorder) LastUpload() []byte {
	if len(r.Uploads) == 0 {
		return nil
	}
	return r.Uploads[len(r.Uploads)-1]
}

// Live returns the number of buffers and vertex arrays not yet deleted.
//
func (r *Recorder) Live() int {
	return len(r.Buffers) + len(r.VAOs)
}

// Reset forgets all recorded calls but keeps track of live resources.
//
func (r *Recorder) Reset() {
	r.Calls = r.Calls[:0]
	r.Attribs = r.Attribs[:0]
	r.Enabled = r.Enabled[:0]
	r.Draws = r.Draws[:0]
	r.Uploads = r.Uploads[:0]
	r.Usages = r.Usages[:0]
}
