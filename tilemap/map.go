// Package tilemap implements grids of four-coloured tiles and draws them with
// a batch renderer.
//
// Each tile has one colour per edge (north, east, south and west), given as
// indices into the map palette, and a bevel style. A map of width w and height
// h occupies the world rectangle (0, 0, w, h): each tile is one world unit
// wide and high.
//
package tilemap

import (
	"github.com/chewxy/math32"
	"github.com/db47h/tilebatch"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/pkg/errors"
)

// Edge indices.
const (
	North = iota
	East
	South
	West
)

// Tile is a single map cell.
//
type Tile struct {
	Edges [4]int // palette indices for the N, E, S and W edges
	Bevel Bevel
}

// TileDrawer is the subset of *batch.Batch used to draw maps.
//
type TileDrawer interface {
	DrawTile(r tilebatch.Rect, n, e, s, w mgl32.Vec3, depth, alpha float32)
	DrawTileNoBevel(r tilebatch.Rect, n, e, s, w mgl32.Vec3, depth, alpha float32)
	DrawTileReverseBevel(r tilebatch.Rect, n, e, s, w mgl32.Vec3, depth, alpha float32)
}

// MaxCells is the largest number of cells (width × height) a map may have.
//
const MaxCells = 1 << 20

// Map is a rectangular grid of tiles. Cells may be empty.
//
type Map struct {
	Name    string
	Palette []mgl32.Vec3

	w, h  int
	tiles []Tile
	set   []bool
}

// New returns an empty map of the given size. The map may not have more than
// MaxCells cells.
//
func New(name string, width, height int, palette []mgl32.Vec3) (*Map, error) {
	if width <= 0 || height <= 0 {
		return nil, errors.Errorf("invalid map size %dx%d", width, height)
	}
	if width > MaxCells || height > MaxCells/width {
		return nil, errors.Errorf("map size %dx%d exceeds %d cells", width, height, MaxCells)
	}
	if len(palette) == 0 {
		return nil, errors.New("empty palette")
	}
	return &Map{
		Name:    name,
		Palette: palette,
		w:       width,
		h:       height,
		tiles:   make([]Tile, width*height),
		set:     make([]bool, width*height),
	}, nil
}

// Size returns the map width and height in tiles.
//
func (m *Map) Size() (width, height int) {
	return m.w, m.h
}

// Bounds returns the world rectangle covered by the map.
//
func (m *Map) Bounds() tilebatch.Rect {
	return tilebatch.R(0, 0, float32(m.w), float32(m.h))
}

func (m *Map) in(x, y int) bool {
	return x >= 0 && x < m.w && y >= 0 && y < m.h
}

// Set sets the tile at (x, y).
//
func (m *Map) Set(x, y int, t Tile) error {
	if !m.in(x, y) {
		return errors.Errorf("tile (%d,%d) out of bounds", x, y)
	}
	for i, e := range t.Edges {
		if e < 0 || e >= len(m.Palette) {
			return errors.Errorf("tile (%d,%d): edge %d: palette index %d out of range", x, y, i, e)
		}
	}
	if t.Bevel < Raised || t.Bevel > Inset {
		return errors.Errorf("tile (%d,%d): invalid bevel %d", x, y, t.Bevel)
	}
	m.tiles[y*m.w+x] = t
	m.set[y*m.w+x] = true
	return nil
}

// Remove empties the cell at (x, y).
//
func (m *Map) Remove(x, y int) {
	if m.in(x, y) {
		m.tiles[y*m.w+x] = Tile{}
		m.set[y*m.w+x] = false
	}
}

// At returns the tile at (x, y). The boolean is false if the cell is empty or
// outside of the map.
//
func (m *Map) At(x, y int) (Tile, bool) {
	if !m.in(x, y) || !m.set[y*m.w+x] {
		return Tile{}, false
	}
	return m.tiles[y*m.w+x], true
}

// Len returns the number of non-empty cells.
//
func (m *Map) Len() int {
	n := 0
	for _, s := range m.set {
		if s {
			n++
		}
	}
	return n
}

// CellAt returns the coordinates of the cell containing the world point p.
//
func (m *Map) CellAt(p tilebatch.Point) (x, y int, ok bool) {
	x, y = int(math32.Floor(p.X)), int(math32.Floor(p.Y))
	return x, y, m.in(x, y)
}

// Rotate rotates the edge colours of the tile at (x, y) clockwise by one
// quarter turn. It reports whether there was a tile to rotate.
//
func (m *Map) Rotate(x, y int) bool {
	t, ok := m.At(x, y)
	if !ok {
		return false
	}
	e := t.Edges
	t.Edges = [4]int{e[West], e[North], e[East], e[South]}
	m.tiles[y*m.w+x] = t
	return true
}

// Draw draws every non-empty cell with d, in row-major order, and returns the
// number of tiles drawn. The variant depends on the tile bevel: Raised uses
// DrawTile, Flat DrawTileNoBevel and Inset DrawTileReverseBevel.
//
func (m *Map) Draw(d TileDrawer, depth, alpha float32) int {
	n := 0
	for y := 0; y < m.h; y++ {
		for x := 0; x < m.w; x++ {
			i := y*m.w + x
			if !m.set[i] {
				continue
			}
			t := &m.tiles[i]
			r := tilebatch.R(float32(x), float32(y), 1, 1)
			p := m.Palette
			cn, ce, cs, cw := p[t.Edges[North]], p[t.Edges[East]], p[t.Edges[South]], p[t.Edges[West]]
			switch t.Bevel {
			case Raised:
				d.DrawTile(r, cn, ce, cs, cw, depth, alpha)
			case Flat:
				d.DrawTileNoBevel(r, cn, ce, cs, cw, depth, alpha)
			case Inset:
				d.DrawTileReverseBevel(r, cn, ce, cs, cw, depth, alpha)
			}
			n++
		}
	}
	return n
}

// Matches returns the number of pairs of adjacent tiles whose touching edges
// share the same palette index.
//
func (m *Map) Matches() int {
	n := 0
	for y := 0; y < m.h; y++ {
		for x := 0; x < m.w; x++ {
			t, ok := m.At(x, y)
			if !ok {
				continue
			}
			if r, ok := m.At(x+1, y); ok && t.Edges[East] == r.Edges[West] {
				n++
			}
			if b, ok := m.At(x, y+1); ok && t.Edges[South] == b.Edges[North] {
				n++
			}
		}
	}
	return n
}
