// Package batch implements an immediate-mode triangle batch renderer for flat
// rectangles and beveled tiles.
//
// Shapes are normalized through the current viewport window as they are
// added, accumulated in a single triangle list, and submitted to the GPU as
// one draw call by Present. A typical frame looks like:
//
//	b.Clear()
//	b.SetWindow(mainView)
//	b.DrawTile(...)
//	b.SetWindow(minimap)
//	b.DrawRect(...)
//	b.Present(ctx)
//
// Nothing enforces that order: calling Present without Clear redraws the
// accumulated triangles, and the batch keeps growing until the next Clear.
//
// A Batch is not safe for concurrent use. It must be used from the goroutine
// that owns the GPU context.
//
package batch

import (
	"github.com/db47h/tilebatch"
	"github.com/db47h/tilebatch/gpu"
	"github.com/pkg/errors"
)

// ErrDestroyed is the panic value when a Batch is used after Destroy.
//
var ErrDestroyed = errors.New("batch: use of destroyed batch")

// Vertex attribute indices.
const (
	attrPos    = 0
	attrColour = 1
)

// A Batch accumulates coloured triangles and draws them in a single call.
//
type Batch struct {
	vbo gpu.Buffer
	vao gpu.VertexArray

	triangles []Triangle
	win       tilebatch.Window
	aspect    float32
	usage     gpu.Usage
	buf       []byte
	destroyed bool
}

// New creates a new Batch. It allocates a vertex buffer and a vertex array on
// ctx and describes the vertex layout: attribute 0 is the position (3 floats)
// and attribute 1 the colour (4 floats), interleaved with a stride of
// VertexSize bytes.
//
// The viewport window is set to tilebatch.Identity().
//
// aspectRatio is stored for use by camera code, see AspectRatio. It does not
// take part in normalization.
//
// If any GPU resource cannot be created, New releases whatever it already
// acquired and returns an error wrapping gpu.ErrResourceCreation.
//
func New(ctx gpu.Context, aspectRatio float32, opts ...Option) (*Batch, error) {
	cfg := config{usage: gpu.StreamDraw}
	for _, o := range opts {
		o.set(&cfg)
	}

	vbo, err := ctx.CreateBuffer()
	if err != nil {
		return nil, errors.Wrap(err, "create vertex buffer")
	}
	ctx.BindBuffer(gpu.ArrayBuffer, vbo)

	vao, err := ctx.CreateVertexArray()
	if err != nil {
		ctx.DeleteBuffer(vbo)
		return nil, errors.Wrap(err, "create vertex array")
	}
	ctx.BindVertexArray(vao)

	ctx.VertexAttribPointer(attrPos, 3, gpu.Float, false, VertexSize, PosOffset)
	ctx.EnableVertexAttribArray(attrPos)
	ctx.VertexAttribPointer(attrColour, 4, gpu.Float, false, VertexSize, ColourOffset)
	ctx.EnableVertexAttribArray(attrColour)

	b := &Batch{
		vbo:       vbo,
		vao:       vao,
		triangles: make([]Triangle, 0, cfg.capacity),
		win:       tilebatch.Identity(),
		aspect:    aspectRatio,
		usage:     cfg.usage,
	}
	tilebatch.Logger().Info("batch created",
		"vbo", uint32(vbo), "vao", uint32(vao), "aspect", aspectRatio, "usage", cfg.usage)
	return b, nil
}

// MustNew is like New but panics if the batch cannot be created.
//
func MustNew(ctx gpu.Context, aspectRatio float32, opts ...Option) *Batch {
	b, err := New(ctx, aspectRatio, opts...)
	if err != nil {
		panic(err)
	}
	return b
}

// Destroy releases the GPU resources of the batch. It must be called exactly
// once, before the GPU context is destroyed. The batch must not be used
// afterwards.
//
func (b *Batch) Destroy(ctx gpu.Context) {
	b.mustBeAlive()
	ctx.DeleteBuffer(b.vbo)
	ctx.DeleteVertexArray(b.vao)
	tilebatch.Logger().Info("batch destroyed", "vbo", uint32(b.vbo), "vao", uint32(b.vao))
	b.vbo, b.vao = 0, 0
	b.triangles = nil
	b.buf = nil
	b.destroyed = true
}

func (b *Batch) mustBeAlive() {
	if b.destroyed {
		panic(ErrDestroyed)
	}
}

// AspectRatio returns the aspect ratio the batch was created with.
//
func (b *Batch) AspectRatio() float32 {
	return b.aspect
}

// SetWindow sets the viewport window that subsequently added shapes are
// mapped through. Triangles already in the batch are not affected.
//
// The window must have a non-zero width and height (see
// tilebatch.Window.Valid). This is not checked: a degenerate window produces
// infinite or NaN coordinates.
//
func (b *Batch) SetWindow(w tilebatch.Window) {
	b.win = w
}

// Window returns the current viewport window.
//
func (b *Batch) Window() tilebatch.Window {
	return b.win
}

// push normalizes t through the current window and appends it to the batch.
// Must be called exactly once per triangle.
//
func (b *Batch) push(t Triangle) {
	b.mustBeAlive()
	tl := b.win.TopLeft
	d := b.win.Dims()
	for _, v := range [...]*Vertex{&t.A, &t.B, &t.C} {
		v.Pos[0] = (v.Pos[0] - tl.X) / d.X
		v.Pos[1] = (v.Pos[1] - tl.Y) / d.Y
	}
	b.triangles = append(b.triangles, t)
}

// Len returns the number of triangles in the batch.
//
func (b *Batch) Len() int {
	return len(b.triangles)
}

// Triangles returns a copy of the (normalized) triangles in the batch, in
// insertion order.
//
func (b *Batch) Triangles() []Triangle {
	return append([]Triangle(nil), b.triangles...)
}

// Bytes returns the batch encoded as it is uploaded by Present.
//
func (b *Batch) Bytes() []byte {
	return EncodeTriangles(nil, b.triangles)
}

// Clear empties the batch. Allocated memory is kept for the next frame.
//
func (b *Batch) Clear() {
	b.triangles = b.triangles[:0]
}

// Present uploads the whole batch to the GPU buffer and issues a single
// triangle-list draw call covering all of it. It does not clear the batch.
//
// An empty batch results in an empty upload and a draw call for 0 vertices.
//
func (b *Batch) Present(ctx gpu.Context) {
	b.mustBeAlive()
	ctx.BindVertexArray(b.vao)
	ctx.BindBuffer(gpu.ArrayBuffer, b.vbo)
	b.buf = EncodeTriangles(b.buf[:0], b.triangles)
	ctx.BufferData(gpu.ArrayBuffer, b.buf, b.usage)
	ctx.DrawArrays(gpu.Triangles, 0, int32(3*len(b.triangles)))
	tilebatch.Logger().Debug("batch present", "triangles", len(b.triangles), "bytes", len(b.buf))
}
