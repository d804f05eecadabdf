package batch

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Vertex layout as seen by the GPU: 7 consecutive float32 values
//
//	[pos.x, pos.y, pos.z, colour.r, colour.g, colour.b, colour.a]
//
const (
	floatsPerVertex   = 7
	floatsPerTriangle = 3 * floatsPerVertex

	VertexSize   = floatsPerVertex * 4   // vertex stride in bytes
	TriangleSize = floatsPerTriangle * 4 // bytes per triangle
	PosOffset    = 0                     // byte offset of the position attribute
	ColourOffset = 3 * 4                 // byte offset of the colour attribute
)

// Vertex is a single coloured vertex.
//
type Vertex struct {
	Pos    mgl32.Vec3
	Colour mgl32.Vec4
}

// Triangle is three vertices. The winding order is up to the caller.
//
type Triangle struct {
	A, B, C Vertex
}

func (t Triangle) String() string {
	return fmt.Sprintf("pos: (%g,%g,%g), (%g,%g,%g), (%g,%g,%g) colour: (%g,%g,%g,%g)",
		t.A.Pos[0], t.A.Pos[1], t.A.Pos[2],
		t.B.Pos[0], t.B.Pos[1], t.B.Pos[2],
		t.C.Pos[0], t.C.Pos[1], t.C.Pos[2],
		t.A.Colour[0], t.A.Colour[1], t.A.Colour[2], t.A.Colour[3])
}

func appendVertex(dst []byte, v *Vertex) []byte {
	for _, f := range v.Pos {
		dst = binary.NativeEndian.AppendUint32(dst, math.Float32bits(f))
	}
	for _, f := range v.Colour {
		dst = binary.NativeEndian.AppendUint32(dst, math.Float32bits(f))
	}
	return dst
}

// EncodeTriangles appends the GPU representation of tris to dst and returns
// the extended buffer. Each triangle is written as its vertices A, B and C in
// that order, with no padding or header. Floats are encoded in the host byte
// order, which is what the GPU driver expects from client memory.
//
func EncodeTriangles(dst []byte, tris []Triangle) []byte {
	if n := len(dst) + len(tris)*TriangleSize; n > cap(dst) {
		buf := make([]byte, len(dst), n)
		copy(buf, dst)
		dst = buf
	}
	for i := range tris {
		t := &tris[i]
		dst = appendVertex(dst, &t.A)
		dst = appendVertex(dst, &t.B)
		dst = appendVertex(dst, &t.C)
	}
	return dst
}
