package loop

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type fakeClock struct {
	t     time.Time
	steps []time.Duration
}

func (c *fakeClock) now() time.Time {
	if len(c.steps) > 0 {
		c.t = c.t.Add(c.steps[0])
		c.steps = c.steps[1:]
	}
	return c.t
}

type app struct {
	frames  int
	max     int
	updates []int
	fts     []time.Duration
	alphas  []float32
	starts  int
	pending int
}

func (a *app) ProcessEvents() bool {
	return a.frames >= a.max
}

func (a *app) FrameStart(time.Time) { a.starts++ }

func (a *app) Update(time.Duration) { a.pending++ }

func (a *app) Draw(ft time.Duration, alpha float32) {
	a.updates = append(a.updates, a.pending)
	a.fts = append(a.fts, ft)
	a.alphas = append(a.alphas, alpha)
	a.pending = 0
	a.frames++
}

func TestFixedStep(t *testing.T) {
	const dt = 10 * time.Millisecond
	clk := &fakeClock{steps: []time.Duration{
		0,                     // start
		25 * time.Millisecond, // 2 updates, 5ms left
		5 * time.Millisecond,  // 1 update, 0 left
		time.Second,           // clamped to 100ms: 10 updates
		3 * time.Millisecond,  // 0 updates
	}}
	l := FixedStep{DT: dt, MaxFT: 100 * time.Millisecond, Now: clk.now}
	a := &app{max: 4}
	l.Run(a)

	assert.Equal(t, []int{2, 1, 10, 0}, a.updates)
	assert.Equal(t, []time.Duration{25 * time.Millisecond, 5 * time.Millisecond, 100 * time.Millisecond, 3 * time.Millisecond}, a.fts)
	assert.InDeltaSlice(t, []float32{0.5, 0, 0, 0.3}, a.alphas, 1e-6)
	assert.Equal(t, 4, a.starts)
	assert.Equal(t, uint64(4), l.Frames())
	assert.Equal(t, uint64(13), l.Updates())
}

func TestFixedStepDefaults(t *testing.T) {
	var l FixedStep
	l.Run(&app{max: 0})
	assert.Equal(t, DefaultDT, l.DT)
	assert.Equal(t, DefaultMaxFT, l.MaxFT)
	assert.Zero(t, l.Frames())
}
