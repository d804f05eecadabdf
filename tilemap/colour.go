package tilemap

import (
	"strings"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/pkg/errors"
	"golang.org/x/image/colornames"
)

// ParseColour parses a colour given either as a hex triplet ("#rrggbb" or
// "#rgb") or as an SVG 1.1 colour name ("tomato", "SlateGray").
//
func ParseColour(s string) (mgl32.Vec3, error) {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "#") {
		c, err := colorful.Hex(s)
		if err != nil {
			return mgl32.Vec3{}, errors.Wrapf(err, "invalid colour %q", s)
		}
		return mgl32.Vec3{float32(c.R), float32(c.G), float32(c.B)}, nil
	}
	c, ok := colornames.Map[strings.ToLower(s)]
	if !ok {
		return mgl32.Vec3{}, errors.Errorf("unknown colour name %q", s)
	}
	return mgl32.Vec3{float32(c.R) / 255, float32(c.G) / 255, float32(c.B) / 255}, nil
}
