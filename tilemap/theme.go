package tilemap

import (
	"io"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/pelletier/go-toml/v2"
	"github.com/pkg/errors"
)

// Theme holds the colours used around a map: the background rectangle drawn
// behind the tiles and the frame drawn around inset views.
//
type Theme struct {
	Background mgl32.Vec4
	Frame      mgl32.Vec4
	TileAlpha  float32
}

// DefaultTheme is used when no theme file is available.
//
var DefaultTheme = Theme{
	Background: mgl32.Vec4{0.1, 0.1, 0.15, 1},
	Frame:      mgl32.Vec4{1, 1, 1, 0.8},
	TileAlpha:  1,
}

type themeFile struct {
	Background string   `toml:"background"`
	Frame      string   `toml:"frame"`
	FrameAlpha *float32 `toml:"frame_alpha"`
	TileAlpha  *float32 `toml:"tile_alpha"`
}

// DecodeTheme reads a theme in TOML format from r. Missing entries keep their
// DefaultTheme value.
//
//	background = "#1a1a26"
//	frame = "white"
//	frame_alpha = 0.8
//	tile_alpha = 1.0
//
func DecodeTheme(r io.Reader) (*Theme, error) {
	var tf themeFile
	if err := toml.NewDecoder(r).Decode(&tf); err != nil {
		return nil, errors.Wrap(err, "decode theme")
	}
	t := DefaultTheme
	if tf.Background != "" {
		c, err := ParseColour(tf.Background)
		if err != nil {
			return nil, errors.Wrap(err, "theme background")
		}
		t.Background = c.Vec4(1)
	}
	if tf.Frame != "" {
		c, err := ParseColour(tf.Frame)
		if err != nil {
			return nil, errors.Wrap(err, "theme frame")
		}
		t.Frame = c.Vec4(t.Frame[3])
	}
	if tf.FrameAlpha != nil {
		t.Frame[3] = *tf.FrameAlpha
	}
	if tf.TileAlpha != nil {
		t.TileAlpha = *tf.TileAlpha
	}
	return &t, nil
}
