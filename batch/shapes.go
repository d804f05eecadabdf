package batch

import (
	"github.com/db47h/tilebatch"
	"github.com/go-gl/mathgl/mgl32"
)

// Bevel parameters for DrawTile and DrawTileReverseBevel.
const (
	// BevelThickness is the width of bevel strips, relative to the tile size.
	BevelThickness = 0.03
	// BevelDepth is added to the tile depth for bevel strips so that they sit
	// in front of the tile.
	BevelDepth = 0.05
)

// Bevel strip colours.
var (
	BevelHighlight = mgl32.Vec4{0.7, 0.7, 0.7, 0.5}
	BevelShadow    = mgl32.Vec4{0.3, 0.3, 0.3, 0.5}
)

// DrawRect adds the axis-aligned rectangle r at the given depth as two
// triangles of colour c.
//
func (b *Batch) DrawRect(r tilebatch.Rect, c mgl32.Vec4, depth float32) {
	v1 := Vertex{Pos: mgl32.Vec3{r.X, r.Y, depth}, Colour: c}
	v2 := Vertex{Pos: mgl32.Vec3{r.X, r.Y + r.H, depth}, Colour: c}
	v3 := Vertex{Pos: mgl32.Vec3{r.X + r.W, r.Y + r.H, depth}, Colour: c}
	v4 := Vertex{Pos: mgl32.Vec3{r.X + r.W, r.Y, depth}, Colour: c}
	b.push(Triangle{A: v1, B: v4, C: v3})
	b.push(Triangle{A: v1, B: v3, C: v2})
}

// DrawTile adds a raised tile: four triangles joining each edge of r to its
// center, coloured n, e, s and w (north is the top edge) with the given alpha,
// overlaid with bevel strips. The top and left strips use BevelHighlight, the
// bottom and right strips BevelShadow.
//
// A call adds 12 triangles: 4 for the pyramid and 2 per bevel strip.
//
func (b *Batch) DrawTile(r tilebatch.Rect, n, e, s, w mgl32.Vec3, depth, alpha float32) {
	b.pyramid(r, n, e, s, w, depth, alpha)
	b.bevel(r, BevelHighlight, BevelShadow, depth)
}

// DrawTileNoBevel adds the same four center triangles as DrawTile, without
// bevel strips. A call adds 4 triangles.
//
func (b *Batch) DrawTileNoBevel(r tilebatch.Rect, n, e, s, w mgl32.Vec3, depth, alpha float32) {
	b.pyramid(r, n, e, s, w, depth, alpha)
}

// DrawTileReverseBevel adds an inset tile. It is like DrawTile except that all
// four bevel strips use BevelShadow.
//
// A call adds 12 triangles: 4 for the pyramid and 2 per bevel strip.
//
func (b *Batch) DrawTileReverseBevel(r tilebatch.Rect, n, e, s, w mgl32.Vec3, depth, alpha float32) {
	b.pyramid(r, n, e, s, w, depth, alpha)
	b.bevel(r, BevelShadow, BevelShadow, depth)
}

func (b *Batch) pyramid(r tilebatch.Rect, n, e, s, w mgl32.Vec3, depth, alpha float32) {
	c := r.Corners(depth)
	ctr := r.Center()
	center := mgl32.Vec3{ctr.X, ctr.Y, depth}

	for i, col := range [...]mgl32.Vec3{n, e, s, w} {
		c4 := col.Vec4(alpha)
		b.push(Triangle{
			A: Vertex{Pos: c[i], Colour: c4},
			B: Vertex{Pos: c[(i+1)%4], Colour: c4},
			C: Vertex{Pos: center, Colour: c4},
		})
	}
}

func (b *Batch) bevel(r tilebatch.Rect, top, bottom mgl32.Vec4, depth float32) {
	const t = BevelThickness
	d := depth + BevelDepth
	b.DrawRect(r.Child(0, 0, 1, t), top, d)
	b.DrawRect(r.Child(0, 0, t, 1), top, d)
	b.DrawRect(r.Child(0, 1-t, 1, t), bottom, d)
	b.DrawRect(r.Child(1-t, 0, t, 1), bottom, d)
}
