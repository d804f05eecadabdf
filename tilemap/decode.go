package tilemap

import (
	"io"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/pelletier/go-toml/v2"
	"github.com/pkg/errors"
)

// Bevel selects how a tile is decorated.
//
type Bevel int

// Bevel styles.
const (
	Raised Bevel = iota // highlight on top/left, shadow on bottom/right
	Flat                // no bevel
	Inset               // shadow on all edges
)

var bevelNames = [...]string{Raised: "raised", Flat: "flat", Inset: "inset"}

func (b Bevel) String() string {
	if b >= Raised && b <= Inset {
		return bevelNames[b]
	}
	return "unknown"
}

// MarshalText implements encoding.TextMarshaler.
//
func (b Bevel) MarshalText() ([]byte, error) {
	if b < Raised || b > Inset {
		return nil, errors.Errorf("invalid bevel %d", int(b))
	}
	return []byte(bevelNames[b]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
//
func (b *Bevel) UnmarshalText(text []byte) error {
	for i, n := range bevelNames {
		if n == string(text) {
			*b = Bevel(i)
			return nil
		}
	}
	return errors.Errorf("unknown bevel %q", text)
}

// File format:
//
//	name = "example"
//	width = 2
//	height = 1
//	palette = ["#d33", "gold", "#3a3"]
//
//	[[tile]]
//	x = 0
//	y = 0
//	edges = [0, 1, 2, 1]  # N E S W
//	bevel = "raised"      # raised (default), flat or inset
//
type mapFile struct {
	Name    string     `toml:"name"`
	Width   int        `toml:"width"`
	Height  int        `toml:"height"`
	Palette []string   `toml:"palette"`
	Tiles   []tileFile `toml:"tile"`
}

type tileFile struct {
	X     int   `toml:"x"`
	Y     int   `toml:"y"`
	Edges []int `toml:"edges"`
	Bevel Bevel `toml:"bevel"`
}

// Decode reads a map in TOML format from r.
//
func Decode(r io.Reader) (*Map, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "read map")
	}
	var mf mapFile
	if err = toml.Unmarshal(data, &mf); err != nil {
		return nil, errors.Wrap(err, "decode map")
	}

	palette := make([]mgl32.Vec3, len(mf.Palette))
	for i, s := range mf.Palette {
		if palette[i], err = ParseColour(s); err != nil {
			return nil, errors.Wrapf(err, "palette entry %d", i)
		}
	}
	m, err := New(mf.Name, mf.Width, mf.Height, palette)
	if err != nil {
		return nil, errors.Wrapf(err, "map %q", mf.Name)
	}
	for i, tf := range mf.Tiles {
		if len(tf.Edges) != 4 {
			return nil, errors.Errorf("map %q: tile %d: expected 4 edges, got %d", mf.Name, i, len(tf.Edges))
		}
		t := Tile{Bevel: tf.Bevel}
		copy(t.Edges[:], tf.Edges)
		if err = m.Set(tf.X, tf.Y, t); err != nil {
			return nil, errors.Wrapf(err, "map %q", mf.Name)
		}
	}
	return m, nil
}
