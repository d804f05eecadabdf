package main

import (
	"github.com/chewxy/math32"
	"github.com/db47h/tilebatch"
)

const (
	minZoom   = 0.01
	maxZoom   = 2
	zoomStep  = 1.1
	panSpeed  = 0.8  // screen heights per second
	miniSize  = 0.25 // minimap height, in normalized screen units
	miniInset = 0.01
)

// view tracks the main map view: the world point at the center of the screen
// and the zoom level (1/zoom world units fit vertically on screen).
//
type view struct {
	center tilebatch.Point
	zoom   float32
}

// fitView returns a view that centers bounds on screen with a small margin.
//
func fitView(bounds tilebatch.Rect, aspect float32) view {
	h := math32.Max(bounds.H, bounds.W/aspect) * 1.1
	return view{center: bounds.Center(), zoom: clampZoom(1 / h)}
}

func clampZoom(z float32) float32 {
	return math32.Max(minZoom, math32.Min(maxZoom, z))
}

func (v view) window(aspect float32) tilebatch.Window {
	return tilebatch.CenteredWindow(v.center, v.zoom, aspect)
}

// scroll zooms by zoomStep per unit of dy, keeping the world point under the
// cursor p (normalized screen space) in place.
//
func (v *view) scroll(dy float32, p tilebatch.Point, aspect float32) {
	anchor := v.window(aspect).Denormalize(p)
	v.zoom = clampZoom(v.zoom * math32.Pow(zoomStep, dy))
	moved := v.window(aspect).Denormalize(p)
	v.center = v.center.Add(anchor.Sub(moved))
}

// drag pans the view so that the world point under from ends up under to.
//
func (v *view) drag(from, to tilebatch.Point, aspect float32) {
	w := v.window(aspect)
	v.center = v.center.Add(w.Denormalize(from).Sub(w.Denormalize(to)))
}

// pan moves the view by dir screen heights per second for dt seconds.
//
func (v *view) pan(dir tilebatch.Point, dt float32) {
	v.center = v.center.Add(dir.Mul(panSpeed * dt / v.zoom))
}

// minimapRect returns the normalized screen rectangle of the minimap in the
// bottom left corner, sized so that bounds keeps its proportions.
//
func minimapRect(bounds tilebatch.Rect, aspect float32) tilebatch.Rect {
	h := float32(miniSize)
	w := h * bounds.W / bounds.H / aspect
	if w > miniSize {
		w = miniSize
		h = w * bounds.H / bounds.W * aspect
	}
	return tilebatch.R(miniInset, 1-miniInset-h, w, h)
}

// outline returns the four thin rectangles making up the border of r, with the
// given thickness in world units.
//
func outline(r tilebatch.Rect, t float32) [4]tilebatch.Rect {
	return [4]tilebatch.Rect{
		tilebatch.R(r.X, r.Y, r.W, t),
		tilebatch.R(r.X, r.Y+r.H-t, r.W, t),
		tilebatch.R(r.X, r.Y, t, r.H),
		tilebatch.R(r.X+r.W-t, r.Y, t, r.H),
	}
}
