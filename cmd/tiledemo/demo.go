package main

import (
	"time"

	"github.com/db47h/tilebatch"
	"github.com/db47h/tilebatch/app"
	"github.com/db47h/tilebatch/batch"
	"github.com/db47h/tilebatch/debug"
	"github.com/db47h/tilebatch/gpu/glcore"
	"github.com/db47h/tilebatch/tilemap"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/pkg/errors"
)

// Depth layers, back to front.
const (
	depthMap      = 0.1
	depthMiniBg   = 0.5
	depthMiniMap  = 0.55
	depthMiniView = 0.7
	depthStats    = 0.8
)

type demo struct {
	m     *tilemap.Map
	theme *tilemap.Theme

	ctx  glcore.Context
	prog glcore.Program
	b    *batch.Batch

	view     view
	pan      tilebatch.Point // keyboard pan direction
	dragging bool
	dragFrom tilebatch.Point

	timer     debug.Timer
	gauge     debug.Gauge
	showStats bool
}

func (d *demo) Init(w app.Window) error {
	var err error
	glcore.Setup()
	if d.prog, err = glcore.NewTriangleProgram(); err != nil {
		return errors.Wrap(err, "triangle program")
	}
	aspect := w.Screen().AspectRatio()
	if d.b, err = batch.New(d.ctx, aspect, batch.Capacity(1024)); err != nil {
		d.prog.Delete()
		return err
	}
	d.view = fitView(d.m.Bounds(), aspect)
	d.gauge = debug.DefaultGauge()
	d.showStats = true
	tilebatch.Logger().Info("demo ready", "map", d.m.Name, "tiles", d.m.Len(), "matches", d.m.Matches())
	return nil
}

func (d *demo) Terminate() error {
	d.b.Destroy(d.ctx)
	d.prog.Delete()
	return glcore.CheckError()
}

func (d *demo) Update(dt time.Duration) {
	if d.pan != (tilebatch.Point{}) {
		d.view.pan(d.pan, float32(dt.Seconds()))
	}
}

func (d *demo) Draw(w app.Window, ft time.Duration, _ float32) {
	d.timer.Add(ft)
	bg := d.theme.Background
	glcore.Clear(bg[0], bg[1], bg[2], bg[3])
	d.prog.Use()

	aspect := w.Screen().AspectRatio()
	bounds := d.m.Bounds()
	mainWin := d.view.window(aspect)

	d.b.Clear()
	d.b.SetWindow(mainWin)
	d.m.Draw(d.b, depthMap, d.theme.TileAlpha)

	// minimap: whole map plus an outline of the main view
	frame := tilebatch.R(bounds.X-0.5, bounds.Y-0.5, bounds.W+1, bounds.H+1)
	d.b.SetWindow(tilebatch.PlacedWindow(frame, minimapRect(frame, aspect)))
	d.b.DrawRect(frame, d.theme.Background.Mul(0.5), depthMiniBg)
	d.m.Draw(d.b, depthMiniMap, 1)
	for _, r := range outline(mainWin.Rect(), frame.H/100) {
		d.b.DrawRect(r, d.theme.Frame, depthMiniView)
	}

	if d.showStats {
		d.gauge.Draw(d.b, &d.timer, depthStats)
	}

	d.b.Present(d.ctx)
	if err := glcore.CheckError(); err != nil {
		tilebatch.Logger().Error("draw", "err", err)
	}
}

func (d *demo) OnKey(w app.Window, key app.Key, action app.Action, _ app.ModifierKey) {
	var dir tilebatch.Point
	switch key {
	case glfw.KeyLeft, glfw.KeyA:
		dir = tilebatch.Pt(-1, 0)
	case glfw.KeyRight, glfw.KeyD:
		dir = tilebatch.Pt(1, 0)
	case glfw.KeyUp, glfw.KeyW:
		dir = tilebatch.Pt(0, -1)
	case glfw.KeyDown, glfw.KeyS:
		dir = tilebatch.Pt(0, 1)
	}
	switch action {
	case glfw.Press:
		d.pan = d.pan.Add(dir)
	case glfw.Release:
		d.pan = d.pan.Sub(dir)
	}
	if action != glfw.Press {
		return
	}
	switch key {
	case glfw.KeyEscape:
		w.Close()
	case glfw.KeyF1:
		d.showStats = !d.showStats
	case glfw.KeyHome:
		d.view = fitView(d.m.Bounds(), w.Screen().AspectRatio())
	case glfw.KeyP:
		tilebatch.Logger().Info("stats",
			"avg", d.timer.Average(), "fps", d.timer.AveragePerSecond(), "max", d.timer.Max(),
			"triangles", d.b.Len(), "bytes", len(d.b.Bytes()))
	}
}

func (d *demo) OnMouseButton(w app.Window, button app.MouseButton, action app.Action, p tilebatch.Point) {
	aspect := w.Screen().AspectRatio()
	switch button {
	case glfw.MouseButtonLeft:
		if action != glfw.Press {
			return
		}
		wp := d.view.window(aspect).Denormalize(p)
		if x, y, ok := d.m.CellAt(wp); ok && d.m.Rotate(x, y) {
			tilebatch.Logger().Debug("rotate", "x", x, "y", y, "matches", d.m.Matches())
		}
	case glfw.MouseButtonRight:
		d.dragging = action == glfw.Press
		d.dragFrom = p
	}
}

func (d *demo) OnCursor(w app.Window, p tilebatch.Point) {
	if !d.dragging {
		return
	}
	d.view.drag(d.dragFrom, p, w.Screen().AspectRatio())
	d.dragFrom = p
}

func (d *demo) OnScroll(w app.Window, _, dy float32) {
	d.view.scroll(dy, w.Cursor(), w.Screen().AspectRatio())
}
