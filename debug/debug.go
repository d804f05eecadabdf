// Package debug provides a frame time tracker and an on-screen gauge that
// displays it.
//
package debug

import (
	"time"

	"github.com/chewxy/math32"
	"github.com/db47h/tilebatch"
	"github.com/go-gl/mathgl/mgl32"
)

// Samples is the number of frame times kept by a Timer.
const Samples = 32

// Timer keeps a rolling window of the last Samples frame times.
//
type Timer struct {
	times [Samples]time.Duration
	index int
}

// Add records a frame time.
//
func (t *Timer) Add(dt time.Duration) {
	t.times[t.index] = dt
	t.index = (t.index + 1) & (Samples - 1)
}

// Average returns the average frame time.
//
func (t *Timer) Average() time.Duration {
	var avg time.Duration
	for _, dt := range t.times {
		avg += dt
	}
	return avg / time.Duration(len(t.times))
}

// AveragePerSecond returns the average frame rate, or 0 if no time has been
// recorded.
//
func (t *Timer) AveragePerSecond() float64 {
	avg := t.Average()
	if avg == 0 {
		return 0
	}
	return float64(time.Second) / float64(avg)
}

// Max returns the longest recorded frame time.
//
func (t *Timer) Max() time.Duration {
	var m time.Duration
	for _, dt := range t.times {
		if dt > m {
			m = dt
		}
	}
	return m
}

// Each calls f for each sample, oldest first.
//
func (t *Timer) Each(f func(i int, dt time.Duration)) {
	for i := 0; i < Samples; i++ {
		f(i, t.times[(t.index+i)&(Samples-1)])
	}
}

// RectDrawer is implemented by *batch.Batch.
//
type RectDrawer interface {
	DrawRect(r tilebatch.Rect, c mgl32.Vec4, depth float32)
	SetWindow(w tilebatch.Window)
	Window() tilebatch.Window
}

// Gauge draws a Timer as a bar graph in a screen corner. Bars span twice the
// Target frame time; bars over target use the Over colour and a thin line
// marks the target.
//
type Gauge struct {
	Screen     tilebatch.Rect // normalized screen area
	Target     time.Duration
	Background mgl32.Vec4
	Bar        mgl32.Vec4
	Over       mgl32.Vec4
	Line       mgl32.Vec4
}

// DefaultGauge returns a gauge in the top right corner of the screen with a
// 60 FPS target.
//
func DefaultGauge() Gauge {
	return Gauge{
		Screen:     tilebatch.R(0.75, 0, 0.25, 0.1),
		Target:     time.Second / 60,
		Background: mgl32.Vec4{0, 0, 0, 0.6},
		Bar:        mgl32.Vec4{0.2, 0.8, 0.2, 0.9},
		Over:       mgl32.Vec4{0.9, 0.2, 0.2, 0.9},
		Line:       mgl32.Vec4{1, 1, 1, 0.7},
	}
}

// barHeight returns the bar height for dt in [0, 1].
//
func (g *Gauge) barHeight(dt time.Duration) float32 {
	if g.Target <= 0 {
		return 1
	}
	h := float32(dt) / float32(2*g.Target)
	return math32.Max(0, math32.Min(1, h))
}

// Draw draws t with d at the given depth. Gauge space is Samples units wide
// and 1 unit high, mapped onto g.Screen. The window of d is restored before
// returning.
//
// Draw adds 2*(Samples+2) triangles.
//
func (g *Gauge) Draw(d RectDrawer, t *Timer, depth float32) {
	prev := d.Window()
	defer d.SetWindow(prev)

	d.SetWindow(tilebatch.PlacedWindow(tilebatch.R(0, 0, Samples, 1), g.Screen))
	d.DrawRect(tilebatch.R(0, 0, Samples, 1), g.Background, depth)
	t.Each(func(i int, dt time.Duration) {
		h := g.barHeight(dt)
		c := g.Bar
		if dt > g.Target {
			c = g.Over
		}
		d.DrawRect(tilebatch.R(float32(i), 1-h, 1, h), c, depth+0.01)
	})
	d.DrawRect(tilebatch.R(0, 0.49, Samples, 0.02), g.Line, depth+0.02)
}
