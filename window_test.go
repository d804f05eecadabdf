package tilebatch

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"
)

func TestWindowNormalize(t *testing.T) {
	tests := []struct {
		w    Window
		in   Point
		want Point
	}{
		{Identity(), Pt(0.25, 0.75), Pt(0.25, 0.75)},
		{Window{Pt(10, 10), Pt(20, 30)}, Pt(10, 10), Pt(0, 0)},
		{Window{Pt(10, 10), Pt(20, 30)}, Pt(20, 30), Pt(1, 1)},
		{Window{Pt(10, 10), Pt(20, 30)}, Pt(15, 15), Pt(0.5, 0.25)},
		{Window{Pt(-2, -2), Pt(2, 2)}, Pt(0, 0), Pt(0.5, 0.5)},
		// reversed axes are allowed
		{Window{Pt(1, 1), Pt(0, 0)}, Pt(0.25, 0), Pt(0.75, 1)},
	}
	for _, tt := range tests {
		got := tt.w.Normalize(tt.in)
		assert.Equal(t, tt.want, got, "window %v, point %v", tt.w, tt.in)
		assert.Equal(t, tt.in, tt.w.Denormalize(got), "window %v, point %v", tt.w, tt.in)
	}
}

func TestWindowValid(t *testing.T) {
	assert.True(t, Identity().Valid())
	assert.True(t, Window{Pt(1, 1), Pt(0, 0)}.Valid())
	assert.False(t, Window{}.Valid())
	assert.False(t, Window{Pt(1, 0), Pt(1, 2)}.Valid())
	assert.False(t, Window{Pt(0, 3), Pt(1, 3)}.Valid())
	assert.False(t, Window{Pt(0, 0), Pt(math32.Inf(1), 1)}.Valid())
	assert.False(t, Window{Pt(0, 0), Pt(1, math32.NaN())}.Valid())

	// a degenerate window silently produces non-finite coordinates
	p := Window{Pt(1, 1), Pt(1, 2)}.Normalize(Pt(2, 2))
	assert.True(t, math32.IsInf(p.X, 1))
}

func TestCenteredWindow(t *testing.T) {
	w := CenteredWindow(Pt(8, 4), 1, 2)
	assert.Equal(t, Window{Pt(7, 3.5), Pt(9, 4.5)}, w)
	assert.Equal(t, Pt(0.5, 0.5), w.Normalize(Pt(8, 4)))

	w = CenteredWindow(Pt(0, 0), 0.25, 1)
	assert.Equal(t, Pt(4, 4), w.Dims())

	// invalid zoom falls back to 1
	assert.Equal(t, CenteredWindow(Pt(1, 1), 1, 1), CenteredWindow(Pt(1, 1), 0, 1))
	assert.Equal(t, CenteredWindow(Pt(1, 1), 1, 1), CenteredWindow(Pt(1, 1), -2, 1))
}

func TestPlacedWindow(t *testing.T) {
	world := R(0, 0, 16, 8)
	screen := R(0.75, 0.5, 0.25, 0.5)
	w := PlacedWindow(world, screen)

	assert.Equal(t, screen.Min(), w.Normalize(world.Min()))
	assert.Equal(t, screen.Max(), w.Normalize(world.Max()))
	assert.Equal(t, screen.Center(), w.Normalize(world.Center()))

	assert.Equal(t, Identity(), PlacedWindow(R(0, 0, 1, 1), R(0, 0, 1, 1)))
}

func TestWindowRect(t *testing.T) {
	w := Window{Pt(1, 2), Pt(4, 8)}
	assert.Equal(t, R(1, 2, 3, 6), w.Rect())
}
