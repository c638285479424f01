package stellar

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

var (
	White = mgl32.Vec3{1, 1, 1}
	Black = mgl32.Vec3{}
)

// HexColor parses "rgb", "rrggbb" or either form prefixed with '#'.
// Malformed input yields black.
func HexColor(x string) mgl32.Vec3 {
	c, err := ParseHexColor(x)
	if err != nil {
		return Black
	}
	return c
}

// ParseHexColor is HexColor with error reporting.
func ParseHexColor(x string) (mgl32.Vec3, error) {
	s := strings.TrimPrefix(strings.TrimSpace(x), "#")
	if len(s) == 3 {
		s = string([]byte{s[0], s[0], s[1], s[1], s[2], s[2]})
	}
	if len(s) != 6 {
		return Black, fmt.Errorf("stellar: invalid hex color %q", x)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return Black, fmt.Errorf("stellar: invalid hex color %q: %w", x, err)
	}
	r := float32((v>>16)&0xff) / 255
	g := float32((v>>8)&0xff) / 255
	b := float32(v&0xff) / 255
	return mgl32.Vec3{r, g, b}, nil
}

// clampColor clamps every channel to [lo, hi].
func clampColor(c mgl32.Vec3, lo, hi float32) mgl32.Vec3 {
	return mgl32.Vec3{
		mgl32.Clamp(c[0], lo, hi),
		mgl32.Clamp(c[1], lo, hi),
		mgl32.Clamp(c[2], lo, hi),
	}
}

func luminance(c mgl32.Vec3) float32 {
	return 0.2126*c[0] + 0.7152*c[1] + 0.0722*c[2]
}

// toByte maps a [0,1] channel to 0..255, rounding to nearest.
func toByte(v float32) uint8 {
	if math32.IsNaN(v) {
		return 0
	}
	return uint8(mgl32.Clamp(v, 0, 1)*255 + 0.5)
}
