package tilebatch

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// Rect is an axis-aligned rectangle given by its top-left corner and size.
// The Y axis points down.
//
type Rect struct {
	X, Y float32
	W, H float32
}

// R is shorthand for Rect{x, y, w, h}.
//
func R(x, y, w, h float32) Rect { return Rect{x, y, w, h} }

// Min returns the top-left corner.
//
func (r Rect) Min() Point { return Point{r.X, r.Y} }

// Max returns the bottom-right corner.
//
func (r Rect) Max() Point { return Point{r.X + r.W, r.Y + r.H} }

// Center returns the center point of r.
//
func (r Rect) Center() Point { return Point{r.X + r.W/2, r.Y + r.H/2} }

// Child returns the sub-rectangle of r at relative offset (x, y) and relative
// size (w, h), all expressed as fractions of r's own size.
//
//	r.Child(0, 0, 1, 1) == r
//
func (r Rect) Child(x, y, w, h float32) Rect {
	return Rect{
		X: r.X + x*r.W,
		Y: r.Y + y*r.H,
		W: w * r.W,
		H: h * r.H,
	}
}

// Corners returns the four corners of r at depth z in clockwise order starting
// from the top-left corner (Y down).
//
func (r Rect) Corners(z float32) [4]mgl32.Vec3 {
	return [4]mgl32.Vec3{
		{r.X, r.Y, z},
		{r.X + r.W, r.Y, z},
		{r.X + r.W, r.Y + r.H, z},
		{r.X, r.Y + r.H, z},
	}
}

// Contains reports whether p is inside r. The right and bottom edges are
// exclusive.
//
func (r Rect) Contains(p Point) bool {
	return r.X <= p.X && p.X < r.X+r.W &&
		r.Y <= p.Y && p.Y < r.Y+r.H
}

func (r Rect) String() string {
	return fmt.Sprintf("[%.2f,%.2f %.2fx%.2f]", r.X, r.Y, r.W, r.H)
}
