// Package app provides a minimal windowing driver for tilebatch programs. It
// opens a single window with an OpenGL 3.3 core context and runs a fixed
// timestep loop.
//
package app

import (
	"runtime"
	"time"

	"github.com/db47h/tilebatch"
)

func init() {
	// GLFW and OpenGL calls must be made from the main thread.
	runtime.LockOSThread()
}

// Main opens a window, calls a.Init, runs the frame loop until the window is
// closed, then calls a.Terminate.
//
func Main(a Interface, opts ...WindowOption) error {
	if err := drv.init(a, opts...); err != nil {
		return err
	}
	defer drv.terminate()
	if err := a.Init(drv.window()); err != nil {
		return err
	}
	drv.run(a)
	return a.Terminate()
}

// Window is the application window.
//
type Window interface {
	// NativeHandle returns the underlying *glfw.Window.
	NativeHandle() interface{}
	// Screen returns the framebuffer size tracker. It is updated before Draw
	// when the framebuffer is resized.
	Screen() *tilebatch.Screen
	// Cursor returns the mouse cursor position in normalized screen space.
	Cursor() tilebatch.Point
	// Close requests the window to close. The loop exits after the current
	// frame.
	Close()
}

type driver interface {
	init(Interface, ...WindowOption) error
	terminate()
	run(Interface)
	window() Window
}

// Interface is implemented by applications.
//
type Interface interface {
	Init(Window) error
	Terminate() error

	Update(dt time.Duration)
	Draw(w Window, frameTime time.Duration, alpha float32)
}

// FrameBufferSizeHandler is implemented by applications that want to be
// notified of framebuffer size changes.
//
type FrameBufferSizeHandler interface {
	OnFrameBufferSize(w Window, width, height int)
}

// Input event handlers. Applications implement the ones they need. Positions
// are in normalized screen space.
type (
	KeyHandler interface {
		OnKey(w Window, key Key, action Action, mods ModifierKey)
	}
	MouseButtonHandler interface {
		OnMouseButton(w Window, button MouseButton, action Action, p tilebatch.Point)
	}
	CursorHandler interface {
		OnCursor(w Window, p tilebatch.Point)
	}
	ScrollHandler interface {
		OnScroll(w Window, dx, dy float32)
	}
)

// WindowOption configures the window created by Main.
//
type WindowOption interface {
	set(*winCfg)
}

type winCfg struct {
	fullScreen bool
	hidden     bool
	vsync      int
	x, y, w, h int
	title      string
}

type winOption func(*winCfg)

func (f winOption) set(cfg *winCfg) {
	f(cfg)
}

// Title sets the window title.
//
func Title(title string) WindowOption {
	return winOption(func(cfg *winCfg) {
		cfg.title = title
	})
}

// Pos sets the window position.
//
func Pos(x, y int) WindowOption {
	return winOption(func(cfg *winCfg) {
		cfg.x, cfg.y = x, y
	})
}

// Size sets the window size in screen coordinates.
//
func Size(w, h int) WindowOption {
	return winOption(func(cfg *winCfg) {
		cfg.w, cfg.h = w, h
	})
}

// FullScreen opens the window full screen on the primary monitor.
//
func FullScreen() WindowOption {
	return winOption(func(cfg *winCfg) {
		cfg.fullScreen = true
	})
}

// Visible sets window visibility.
//
func Visible(b bool) WindowOption {
	return winOption(func(cfg *winCfg) {
		cfg.hidden = !b
	})
}

// VSync sets the swap interval. 0 disables vsync.
//
func VSync(interval int) WindowOption {
	return winOption(func(cfg *winCfg) {
		cfg.vsync = interval
	})
}

func newWinCfg(opts ...WindowOption) winCfg {
	cfg := winCfg{title: "tilebatch", x: -1, y: -1, w: 1280, h: 720, vsync: 1}
	for _, o := range opts {
		o.set(&cfg)
	}
	return cfg
}
