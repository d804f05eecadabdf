package tilebatch

import (
	"image"
)

// Screen tracks the pixel size of the render target and converts between
// pixel coordinates and normalized [0,1]² coordinates. The size should be
// updated whenever the size of the associated framebuffer changes.
//
type Screen struct {
	size image.Point
}

// NewScreen returns a new screen of the requested size.
//
func NewScreen(sz image.Point) *Screen {
	return &Screen{size: sz}
}

// SetSize sets the Screen size to sz.
//
func (s *Screen) SetSize(sz image.Point) {
	s.size = sz
}

// Size returns the screen size.
//
func (s *Screen) Size() image.Point {
	return s.size
}

// AspectRatio returns the width/height ratio of the screen, or 1 if the
// screen has no height.
//
func (s *Screen) AspectRatio() float32 {
	if s.size.Y == 0 {
		return 1
	}
	return float32(s.size.X) / float32(s.size.Y)
}

// ToNorm converts pixel coordinates (origin at the top-left corner) to
// normalized [0,1]² coordinates.
//
func (s *Screen) ToNorm(p Point) Point {
	return Point{p.X / float32(s.size.X), p.Y / float32(s.size.Y)}
}

// ToPixel converts normalized [0,1]² coordinates to pixel coordinates.
//
func (s *Screen) ToPixel(p Point) Point {
	return Point{p.X * float32(s.size.X), p.Y * float32(s.size.Y)}
}

// NormToGL converts normalized [0,1]² coordinates (Y down) to GL clip
// coordinates in range [-1, 1] (Y up).
//
func NormToGL(p Point) Point {
	return Point{2*p.X - 1, 1 - 2*p.Y}
}

// GLToNorm converts GL clip coordinates in range [-1, 1] to normalized [0,1]²
// coordinates.
//
func GLToNorm(p Point) Point {
	return Point{(p.X + 1) / 2, (1 - p.Y) / 2}
}
