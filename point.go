package tilebatch

import (
	"fmt"
	"image"

	"github.com/go-gl/mathgl/mgl32"
)

// Point is a 2D point in world or normalized space.
//
type Point struct {
	X float32
	Y float32
}

func PtPt(p image.Point) Point { return Point{float32(p.X), float32(p.Y)} }
func Pt(x, y float32) Point    { return Point{x, y} }
func PtI(x, y int) Point       { return Point{float32(x), float32(y)} }

func (p Point) Add(pt Point) Point  { return Point{p.X + pt.X, p.Y + pt.Y} }
func (p Point) Sub(pt Point) Point  { return Point{p.X - pt.X, p.Y - pt.Y} }
func (p Point) Div(k float32) Point { return Point{p.X / k, p.Y / k} }
func (p Point) Mul(k float32) Point { return Point{p.X * k, p.Y * k} }
func (p Point) Eq(pt Point) bool    { return p.X == pt.X && p.Y == pt.Y }

// Vec2 returns p as a mathgl vector.
//
func (p Point) Vec2() mgl32.Vec2 { return mgl32.Vec2{p.X, p.Y} }

func (p Point) String() string {
	return fmt.Sprintf("(%.2f,%.2f)", p.X, p.Y)
}
