// Package loop provides a fixed-timestep frame loop.
//
package loop

import (
	"time"

	"github.com/db47h/tilebatch"
)

// Updater is implemented by applications driven by FixedStep.
//
// ProcessEvents is called once at the start of each frame. Graphical
// applications should swap their buffers there, before polling events.
//
// Update advances the simulation by exactly one timestep. It may be called zero
// or more times per frame.
//
// Draw renders the frame. frameTime is the (clamped) wall time since the
// previous frame, and alpha in [0, 1) is the fraction of a timestep left in
// the accumulator, for interpolation.
//
type Updater interface {
	ProcessEvents() (quit bool)
	Update(timestep time.Duration)
	Draw(frameTime time.Duration, alpha float32)
}

// FrameStarter is implemented by applications that want the time stamp at the
// beginning of each frame.
//
type FrameStarter interface {
	FrameStart(time.Time)
}

// Default timings for FixedStep.
const (
	DefaultDT    time.Duration = time.Second / 120
	DefaultMaxFT time.Duration = time.Second / 4
)

// FixedStep runs Update at a fixed rate, independently from the frame rate.
// The zero value is ready to use.
//
type FixedStep struct {
	DT    time.Duration // timestep
	MaxFT time.Duration // maximum frame time

	// Now returns the current time. Defaults to time.Now.
	Now func() time.Time

	frames  uint64
	updates uint64
}

// Frames returns the number of frames drawn by the last call to Run.
//
func (l *FixedStep) Frames() uint64 { return l.frames }

// Updates returns the number of timesteps run by the last call to Run.
//
func (l *FixedStep) Updates() uint64 { return l.updates }

// Run runs the loop until a.ProcessEvents returns true.
//
func (l *FixedStep) Run(a Updater) {
	if l.DT <= 0 {
		l.DT = DefaultDT
	}
	if l.MaxFT <= 0 {
		l.MaxFT = DefaultMaxFT
	}
	now := l.Now
	if now == nil {
		now = time.Now
	}
	fStart, _ := a.(FrameStarter)
	l.frames, l.updates = 0, 0

	var (
		tPrev = now()
		tAcc  time.Duration
	)
	for !a.ProcessEvents() {
		t := now()
		ft := t.Sub(tPrev)
		if ft > l.MaxFT {
			tilebatch.Logger().Debug("frame time clamped", "ft", ft, "max", l.MaxFT)
			ft = l.MaxFT
		}
		tPrev = t
		tAcc += ft
		if fStart != nil {
			fStart.FrameStart(t)
		}
		for ; tAcc >= l.DT; tAcc -= l.DT {
			a.Update(l.DT)
			l.updates++
		}
		a.Draw(ft, float32(tAcc)/float32(l.DT))
		l.frames++
	}
}
