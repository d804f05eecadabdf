package main

import (
	"log/slog"
	"os"
	"strings"
	"testing"

	"github.com/chewxy/math32"
	"github.com/db47h/tilebatch"
	"github.com/db47h/tilebatch/tilemap"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertPt(t *testing.T, want, got tilebatch.Point) {
	t.Helper()
	const eps = 1e-4
	assert.True(t, math32.Abs(want.X-got.X) < eps && math32.Abs(want.Y-got.Y) < eps, "want %v, got %v", want, got)
}

func TestFitView(t *testing.T) {
	bounds := tilebatch.R(0, 0, 8, 6)
	v := fitView(bounds, 2)
	assert.Equal(t, tilebatch.Pt(4, 3), v.center)
	w := v.window(2).Rect()
	assert.True(t, w.W >= bounds.W && w.H >= bounds.H, "%v", w)

	// wide map on a square screen is limited by its width
	v = fitView(tilebatch.R(0, 0, 20, 2), 1)
	w = v.window(1).Rect()
	assert.True(t, w.W >= 20, "%v", w)
}

func TestScrollKeepsAnchor(t *testing.T) {
	v := view{center: tilebatch.Pt(4, 3), zoom: 0.2}
	p := tilebatch.Pt(0.25, 0.75)
	before := v.window(1.5).Denormalize(p)
	v.scroll(3, p, 1.5)
	assert.Greater(t, v.zoom, float32(0.2))
	assertPt(t, before, v.window(1.5).Denormalize(p))

	v.scroll(-1000, p, 1.5)
	assert.Equal(t, float32(minZoom), v.zoom)
}

func TestDrag(t *testing.T) {
	v := view{center: tilebatch.Pt(0, 0), zoom: 1}
	from, to := tilebatch.Pt(0.5, 0.5), tilebatch.Pt(0.75, 0.5)
	anchor := v.window(1).Denormalize(from)
	v.drag(from, to, 1)
	assertPt(t, anchor, v.window(1).Denormalize(to))
}

func TestPan(t *testing.T) {
	v := view{zoom: 0.5}
	v.pan(tilebatch.Pt(1, 0), 1)
	assertPt(t, tilebatch.Pt(panSpeed/0.5, 0), v.center)
}

func TestMinimapRect(t *testing.T) {
	r := minimapRect(tilebatch.R(0, 0, 8, 4), 2)
	assert.Equal(t, float32(miniSize), r.H)
	assert.Equal(t, float32(miniSize), r.W)
	assert.InDelta(t, 1-miniInset, r.Y+r.H, 1e-6)

	// very wide maps are limited in width
	r = minimapRect(tilebatch.R(0, 0, 100, 1), 1)
	assert.Equal(t, float32(miniSize), r.W)
	assert.InDelta(t, miniSize/100, r.H, 1e-6)
}

func TestOutline(t *testing.T) {
	o := outline(tilebatch.R(0, 0, 10, 5), 1)
	assert.Equal(t, [4]tilebatch.Rect{
		tilebatch.R(0, 0, 10, 1),
		tilebatch.R(0, 4, 10, 1),
		tilebatch.R(0, 0, 1, 5),
		tilebatch.R(9, 0, 1, 5),
	}, o)
}

func TestDecodeConfig(t *testing.T) {
	cfg := defaultConfig()
	require.NoError(t, decodeConfig(strings.NewReader(`
width = 640
log_level = "debug"
assets = ["a"]
`), &cfg))
	assert.Equal(t, 640, cfg.Width)
	assert.Equal(t, 720, cfg.Height)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
	assert.Equal(t, []string{"a"}, cfg.Assets)
	assert.Equal(t, "sample.toml", cfg.Map)

	cfg = defaultConfig()
	assert.Error(t, decodeConfig(strings.NewReader(`height = 0`), &cfg))
	cfg = defaultConfig()
	assert.Error(t, decodeConfig(strings.NewReader(`unknown = 1`), &cfg))
	cfg = defaultConfig()
	assert.Error(t, decodeConfig(strings.NewReader(`assets = []`), &cfg))

	f, err := os.Open("tiledemo.toml")
	require.NoError(t, err)
	defer f.Close()
	cfg = config{}
	require.NoError(t, decodeConfig(f, &cfg))
	assert.Equal(t, defaultConfig(), cfg)
}

func TestSampleAssets(t *testing.T) {
	f, err := os.Open("assets/maps/sample.toml")
	require.NoError(t, err)
	defer f.Close()
	m, err := tilemap.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, 46, m.Len())
	// every shared edge matches, minus the pairs around the two holes
	assert.Equal(t, 74, m.Matches())

	tf, err := os.Open("assets/themes/default.toml")
	require.NoError(t, err)
	defer tf.Close()
	_, err = tilemap.DecodeTheme(tf)
	require.NoError(t, err)
}
