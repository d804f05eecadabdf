package tilemap

import (
	"testing"

	"github.com/db47h/tilebatch"
	"github.com/db47h/tilebatch/batch"
	"github.com/db47h/tilebatch/gpu/gputest"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testPalette = []mgl32.Vec3{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}

func newTestMap(t *testing.T, w, h int) *Map {
	t.Helper()
	m, err := New("test", w, h, testPalette)
	require.NoError(t, err)
	return m
}

func TestNew(t *testing.T) {
	_, err := New("bad", 0, 2, testPalette)
	assert.Error(t, err)
	_, err = New("bad", 2, -1, testPalette)
	assert.Error(t, err)
	_, err = New("bad", 2, 2, nil)
	assert.Error(t, err)
	_, err = New("huge", MaxCells+1, 1, testPalette)
	assert.Error(t, err)
	_, err = New("huge", 1<<11, 1<<10, testPalette)
	assert.Error(t, err)
	_, err = New("max", 1<<10, 1<<10, testPalette)
	assert.NoError(t, err)

	m := newTestMap(t, 3, 2)
	w, h := m.Size()
	assert.Equal(t, 3, w)
	assert.Equal(t, 2, h)
	assert.Equal(t, tilebatch.R(0, 0, 3, 2), m.Bounds())
	assert.Zero(t, m.Len())
}

func TestSetAt(t *testing.T) {
	m := newTestMap(t, 2, 2)
	tile := Tile{Edges: [4]int{0, 1, 2, 1}, Bevel: Inset}

	require.NoError(t, m.Set(1, 0, tile))
	got, ok := m.At(1, 0)
	assert.True(t, ok)
	assert.Equal(t, tile, got)
	_, ok = m.At(0, 0)
	assert.False(t, ok)
	_, ok = m.At(5, 0)
	assert.False(t, ok)
	assert.Equal(t, 1, m.Len())

	assert.Error(t, m.Set(2, 0, tile), "out of bounds")
	assert.Error(t, m.Set(0, 0, Tile{Edges: [4]int{0, 3, 0, 0}}), "palette index")
	assert.Error(t, m.Set(0, 0, Tile{Edges: [4]int{-1, 0, 0, 0}}), "negative palette index")
	assert.Error(t, m.Set(0, 0, Tile{Bevel: Bevel(7)}), "bevel")
	assert.Equal(t, 1, m.Len())

	m.Remove(1, 0)
	m.Remove(-1, 0)
	_, ok = m.At(1, 0)
	assert.False(t, ok)
	assert.Zero(t, m.Len())
}

func TestCellAt(t *testing.T) {
	m := newTestMap(t, 4, 3)
	tests := []struct {
		p    tilebatch.Point
		x, y int
		ok   bool
	}{
		{tilebatch.Pt(0, 0), 0, 0, true},
		{tilebatch.Pt(3.99, 2.5), 3, 2, true},
		{tilebatch.Pt(4, 1), 4, 1, false},
		{tilebatch.Pt(-0.5, 1), -1, 1, false},
	}
	for _, tt := range tests {
		x, y, ok := m.CellAt(tt.p)
		assert.Equal(t, tt.x, x, "%v", tt.p)
		assert.Equal(t, tt.y, y, "%v", tt.p)
		assert.Equal(t, tt.ok, ok, "%v", tt.p)
	}
}

func TestRotate(t *testing.T) {
	m := newTestMap(t, 1, 1)
	assert.False(t, m.Rotate(0, 0))

	require.NoError(t, m.Set(0, 0, Tile{Edges: [4]int{0, 1, 2, 0}}))
	assert.True(t, m.Rotate(0, 0))
	got, _ := m.At(0, 0)
	assert.Equal(t, [4]int{0, 0, 1, 2}, got.Edges)

	for i := 0; i < 3; i++ {
		m.Rotate(0, 0)
	}
	got, _ = m.At(0, 0)
	assert.Equal(t, [4]int{0, 1, 2, 0}, got.Edges)
}

func TestMatches(t *testing.T) {
	m := newTestMap(t, 2, 2)
	require.NoError(t, m.Set(0, 0, Tile{Edges: [4]int{0, 1, 2, 0}}))
	require.NoError(t, m.Set(1, 0, Tile{Edges: [4]int{0, 0, 2, 1}}))
	require.NoError(t, m.Set(0, 1, Tile{Edges: [4]int{1, 0, 0, 0}}))
	// (0,0)-(1,0) match on 1, (0,0)-(0,1) do not (2 vs 1), (1,1) empty.
	assert.Equal(t, 1, m.Matches())

	require.NoError(t, m.Set(1, 1, Tile{Edges: [4]int{2, 0, 0, 0}}))
	// (1,0)-(1,1) match on 2, (0,1)-(1,1) match on 0.
	assert.Equal(t, 3, m.Matches())
}

type drawCall struct {
	kind  string
	r     tilebatch.Rect
	edges [4]mgl32.Vec3
}

type drawRecorder []drawCall

func (d *drawRecorder) add(kind string, r tilebatch.Rect, n, e, s, w mgl32.Vec3) {
	*d = append(*d, drawCall{kind, r, [4]mgl32.Vec3{n, e, s, w}})
}

func (d *drawRecorder) DrawTile(r tilebatch.Rect, n, e, s, w mgl32.Vec3, _, _ float32) {
	d.add("raised", r, n, e, s, w)
}

func (d *drawRecorder) DrawTileNoBevel(r tilebatch.Rect, n, e, s, w mgl32.Vec3, _, _ float32) {
	d.add("flat", r, n, e, s, w)
}

func (d *drawRecorder) DrawTileReverseBevel(r tilebatch.Rect, n, e, s, w mgl32.Vec3, _, _ float32) {
	d.add("inset", r, n, e, s, w)
}

func TestDrawOrder(t *testing.T) {
	m := newTestMap(t, 2, 2)
	require.NoError(t, m.Set(1, 1, Tile{Edges: [4]int{2, 2, 2, 2}, Bevel: Flat}))
	require.NoError(t, m.Set(1, 0, Tile{Edges: [4]int{0, 1, 2, 0}, Bevel: Raised}))
	require.NoError(t, m.Set(0, 1, Tile{Edges: [4]int{1, 1, 1, 1}, Bevel: Inset}))

	var d drawRecorder
	assert.Equal(t, 3, m.Draw(&d, 0, 1))
	assert.Equal(t, drawRecorder{
		{"raised", tilebatch.R(1, 0, 1, 1), [4]mgl32.Vec3{testPalette[0], testPalette[1], testPalette[2], testPalette[0]}},
		{"inset", tilebatch.R(0, 1, 1, 1), [4]mgl32.Vec3{testPalette[1], testPalette[1], testPalette[1], testPalette[1]}},
		{"flat", tilebatch.R(1, 1, 1, 1), [4]mgl32.Vec3{testPalette[2], testPalette[2], testPalette[2], testPalette[2]}},
	}, d)
}

func TestDrawBatch(t *testing.T) {
	rec := gputest.New()
	b, err := batch.New(rec, 1)
	require.NoError(t, err)

	m := newTestMap(t, 2, 1)
	require.NoError(t, m.Set(0, 0, Tile{Bevel: Raised}))
	require.NoError(t, m.Set(1, 0, Tile{Bevel: Flat}))
	b.SetWindow(tilebatch.Window{BotRight: tilebatch.Pt(2, 1)})

	assert.Equal(t, 2, m.Draw(b, 0, 1))
	assert.Equal(t, 16, b.Len())
	for _, tri := range b.Triangles() {
		for _, v := range []batch.Vertex{tri.A, tri.B, tri.C} {
			assert.True(t, v.Pos[0] >= 0 && v.Pos[0] <= 1, "x = %g", v.Pos[0])
			assert.True(t, v.Pos[1] >= 0 && v.Pos[1] <= 1, "y = %g", v.Pos[1])
		}
	}
	b.Present(rec)
	require.Len(t, rec.Draws, 1)
	assert.Equal(t, int32(48), rec.Draws[0].Count)
}
