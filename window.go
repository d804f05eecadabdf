package tilebatch

import (
	"github.com/chewxy/math32"
)

// Window is a viewport window: the world-space rectangle that gets mapped onto
// the normalized [0,1]² render target. Points at TopLeft map to (0,0) and
// points at BotRight map to (1,1).
//
// A Window is a plain value. The zero Window is degenerate; use Identity for
// the 1:1 mapping.
//
type Window struct {
	TopLeft  Point
	BotRight Point
}

// Identity returns the window mapping [0,1]² onto itself.
//
func Identity() Window {
	return Window{BotRight: Point{1, 1}}
}

// Dims returns the width and height of the window in world units.
//
func (w Window) Dims() Point {
	return w.BotRight.Sub(w.TopLeft)
}

// Valid reports whether the window has a finite, non-zero width and height.
// Normalizing through an invalid window yields infinite or NaN coordinates.
//
func (w Window) Valid() bool {
	d := w.Dims()
	for _, v := range [...]float32{d.X, d.Y} {
		if v == 0 || math32.IsNaN(v) || math32.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// Normalize maps the world-space point p into normalized window space.
//
func (w Window) Normalize(p Point) Point {
	d := w.Dims()
	return Point{
		X: (p.X - w.TopLeft.X) / d.X,
		Y: (p.Y - w.TopLeft.Y) / d.Y,
	}
}

// Denormalize is the inverse of Normalize: it maps a point in normalized
// window space back to world space.
//
func (w Window) Denormalize(p Point) Point {
	d := w.Dims()
	return Point{
		X: w.TopLeft.X + p.X*d.X,
		Y: w.TopLeft.Y + p.Y*d.Y,
	}
}

// Rect returns the window as a world-space rectangle.
//
func (w Window) Rect() Rect {
	d := w.Dims()
	return Rect{w.TopLeft.X, w.TopLeft.Y, d.X, d.Y}
}

// CenteredWindow returns a window centered on the world point center. At zoom
// 1, the window is one world unit high and aspect units wide. Higher zoom
// values shrink the window.
//
func CenteredWindow(center Point, zoom, aspect float32) Window {
	if zoom <= 0 || math32.IsNaN(zoom) {
		zoom = 1
	}
	half := Point{aspect / zoom, 1 / zoom}.Div(2)
	return Window{
		TopLeft:  center.Sub(half),
		BotRight: center.Add(half),
	}
}

// PlacedWindow returns the window under which the world rectangle lands
// exactly on screen, a rectangle in normalized [0,1]² space. This is typically
// used for insets like a minimap:
//
//	// map the whole 16x16 map onto the bottom-right fifth of the screen
//	w := PlacedWindow(R(0, 0, 16, 16), R(0.8, 0.8, 0.2, 0.2))
//
func PlacedWindow(world, screen Rect) Window {
	d := Point{world.W / screen.W, world.H / screen.H}
	tl := Point{world.X - screen.X*d.X, world.Y - screen.Y*d.Y}
	return Window{TopLeft: tl, BotRight: tl.Add(d)}
}
