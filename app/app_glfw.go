package app

import (
	"image"
	"time"

	"github.com/db47h/tilebatch"
	"github.com/db47h/tilebatch/gpu/glcore"
	"github.com/db47h/tilebatch/loop"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/pkg/errors"
)

// Input types, aliased from glfw.
type (
	Key         = glfw.Key
	Action      = glfw.Action
	ModifierKey = glfw.ModifierKey
	MouseButton = glfw.MouseButton
)

// DriverVersion returns the GLFW and OpenGL version strings. It must be called
// after Main has created the window.
//
func DriverVersion() string {
	return "GLFW " + glfw.GetVersionString() + " - " + glcore.Vendor() + " " + glcore.Version()
}

var drv driver = new(glfwDriver)

type glfwDriver struct {
	w *window
}

func (d *glfwDriver) init(a Interface, opts ...WindowOption) error {
	if err := glfw.Init(); err != nil {
		return errors.Wrap(err, "glfw init")
	}
	glfw.WindowHint(glfw.ClientAPI, glfw.OpenGLAPI)
	glfw.WindowHint(glfw.ContextVersionMajor, 3)
	glfw.WindowHint(glfw.ContextVersionMinor, 3)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Samples, 4)

	if err := d.createWindow(a, newWinCfg(opts...)); err != nil {
		glfw.Terminate()
		return err
	}
	tilebatch.Logger().Info("window created", "driver", DriverVersion())
	return nil
}

func (d *glfwDriver) terminate() {
	if d.w != nil {
		d.w.glfw.Destroy()
		d.w = nil
	}
	glfw.Terminate()
}

func (d *glfwDriver) createWindow(a Interface, cfg winCfg) error {
	var (
		monitor *glfw.Monitor
		width   = cfg.w
		height  = cfg.h
	)
	if cfg.fullScreen {
		monitor = glfw.GetPrimaryMonitor()
		mode := monitor.GetVideoMode()
		glfw.WindowHint(glfw.RedBits, mode.RedBits)
		glfw.WindowHint(glfw.GreenBits, mode.GreenBits)
		glfw.WindowHint(glfw.BlueBits, mode.BlueBits)
		glfw.WindowHint(glfw.RefreshRate, mode.RefreshRate)
		width = mode.Width
		height = mode.Height
	}
	placed := !cfg.fullScreen && cfg.x >= 0 && cfg.y >= 0
	if cfg.hidden || placed {
		glfw.WindowHint(glfw.Visible, glfw.False)
	} else {
		glfw.WindowHint(glfw.Visible, glfw.True)
	}
	gw, err := glfw.CreateWindow(width, height, cfg.title, monitor, nil)
	if err != nil {
		return errors.Wrap(err, "create window")
	}
	if placed {
		gw.SetPos(cfg.x, cfg.y)
		if !cfg.hidden {
			gw.Show()
		}
	}

	gw.MakeContextCurrent()
	if err = glcore.Init(); err != nil {
		gw.Destroy()
		return err
	}
	glfw.SwapInterval(cfg.vsync)

	fw, fh := gw.GetFramebufferSize()
	w := &window{glfw: gw, screen: tilebatch.NewScreen(image.Pt(fw, fh)), resized: true}
	w.setCallbacks(a)
	d.w = w
	return nil
}

type eventPump struct {
	w *window
	a Interface
}

func (p eventPump) ProcessEvents() bool {
	p.w.glfw.SwapBuffers()
	glfw.PollEvents()
	return p.w.glfw.ShouldClose()
}

func (p eventPump) Update(dt time.Duration) {
	p.a.Update(dt)
}

func (p eventPump) Draw(ft time.Duration, alpha float32) {
	w := p.w
	if w.resized {
		sz := w.screen.Size()
		glcore.Viewport(0, 0, sz.X, sz.Y)
		w.resized = false
	}
	p.a.Draw(w, ft, alpha)
}

func (d *glfwDriver) run(a Interface) {
	glfw.PollEvents()
	var l loop.FixedStep
	l.Run(eventPump{d.w, a})
	tilebatch.Logger().Info("main loop exited", "frames", l.Frames(), "updates", l.Updates())
}

func (d *glfwDriver) window() Window {
	return d.w
}

type window struct {
	glfw    *glfw.Window
	screen  *tilebatch.Screen
	resized bool
}

func (w *window) NativeHandle() interface{} {
	return w.glfw
}

func (w *window) Screen() *tilebatch.Screen {
	return w.screen
}

func (w *window) Close() {
	w.glfw.SetShouldClose(true)
}

// normCursor converts window coordinates to normalized screen space. Window and
// framebuffer sizes differ on high DPI displays.
//
func (w *window) normCursor(x, y float64) tilebatch.Point {
	ww, wh := w.glfw.GetSize()
	if ww == 0 || wh == 0 {
		return tilebatch.Point{}
	}
	return tilebatch.Pt(float32(x/float64(ww)), float32(y/float64(wh)))
}

func (w *window) Cursor() tilebatch.Point {
	return w.normCursor(w.glfw.GetCursorPos())
}

func (w *window) setCallbacks(a Interface) {
	w.glfw.SetFramebufferSizeCallback(func(_ *glfw.Window, width, height int) {
		w.screen.SetSize(image.Pt(width, height))
		w.resized = true
		if h, ok := a.(FrameBufferSizeHandler); ok {
			h.OnFrameBufferSize(w, width, height)
		}
	})
	if h, ok := a.(KeyHandler); ok {
		w.glfw.SetKeyCallback(func(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, mods glfw.ModifierKey) {
			h.OnKey(w, key, action, mods)
		})
	}
	if h, ok := a.(MouseButtonHandler); ok {
		w.glfw.SetMouseButtonCallback(func(_ *glfw.Window, b glfw.MouseButton, action glfw.Action, _ glfw.ModifierKey) {
			h.OnMouseButton(w, b, action, w.Cursor())
		})
	}
	if h, ok := a.(CursorHandler); ok {
		w.glfw.SetCursorPosCallback(func(_ *glfw.Window, x, y float64) {
			h.OnCursor(w, w.normCursor(x, y))
		})
	}
	if h, ok := a.(ScrollHandler); ok {
		w.glfw.SetScrollCallback(func(_ *glfw.Window, dx, dy float64) {
			h.OnScroll(w, float32(dx), float32(dy))
		})
	}
}
