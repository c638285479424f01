package stellar

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
)

// SurfaceType selects the procedural coloring of a draw call.
type SurfaceType int

const (
	Rocky SurfaceType = iota
	GasGiant
	SciFi
	Ice
	Volcanic
	Ring
	Moon
	Sun
	Hull

	surfaceCount
)

// ErrUnknownSurface is returned when a surface name is not recognized.
var ErrUnknownSurface = errors.New("stellar: unknown surface type")

var surfaceNames = [surfaceCount]string{
	Rocky:    "rocky",
	GasGiant: "gas_giant",
	SciFi:    "sci_fi",
	Ice:      "ice",
	Volcanic: "volcanic",
	Ring:     "ring",
	Moon:     "moon",
	Sun:      "sun",
	Hull:     "hull",
}

// SurfaceTypes lists every surface in declaration order.
func SurfaceTypes() []SurfaceType {
	out := make([]SurfaceType, surfaceCount)
	for i := range out {
		out[i] = SurfaceType(i)
	}
	return out
}

func (s SurfaceType) String() string {
	if s < 0 || s >= surfaceCount {
		return fmt.Sprintf("SurfaceType(%d)", int(s))
	}
	return surfaceNames[s]
}

// ParseSurfaceType accepts the names printed by String, case-insensitively,
// with '_', '-' or nothing between words.
func ParseSurfaceType(name string) (SurfaceType, error) {
	key := strings.NewReplacer("_", "", "-", "", " ", "").Replace(strings.ToLower(strings.TrimSpace(name)))
	for i, n := range surfaceNames {
		if strings.ReplaceAll(n, "_", "") == key {
			return SurfaceType(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownSurface, name)
}

func (s SurfaceType) MarshalText() ([]byte, error) {
	if s < 0 || s >= surfaceCount {
		return nil, fmt.Errorf("%w: %d", ErrUnknownSurface, int(s))
	}
	return []byte(s.String()), nil
}

func (s *SurfaceType) UnmarshalText(text []byte) error {
	v, err := ParseSurfaceType(string(text))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

type shadeFunc func(f Fragment, time float32) mgl32.Vec3

var shaders = [surfaceCount]shadeFunc{
	Rocky:    shadeRocky,
	GasGiant: shadeGasGiant,
	SciFi:    shadeSciFi,
	Ice:      shadeIce,
	Volcanic: shadeVolcanic,
	Ring:     shadeRing,
	Moon:     shadeMoon,
	Sun:      shadeSun,
	Hull:     shadeHull,
}

// Shade computes the final color of a fragment for the given surface. It is
// a pure function of the fragment, the time and the surface. Unknown
// surfaces return the fragment's own color.
func Shade(f Fragment, time float32, s SurfaceType) mgl32.Vec3 {
	if s < 0 || s >= surfaceCount {
		return f.Color
	}
	return shaders[s](f, time)
}
