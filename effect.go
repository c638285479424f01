package stellar

import (
	"errors"
	"fmt"
	"strings"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Effect is an animated overlay applied to a body's lit color in place of
// its procedural surface.
type Effect int

const (
	NoEffect Effect = iota
	Flicker
	Stripes
	Waves
	Rainbow
	Ripples
	Breathing

	effectCount
)

// ErrUnknownEffect is returned when an effect name is not recognized.
var ErrUnknownEffect = errors.New("stellar: unknown effect")

var effectNames = [effectCount]string{
	NoEffect:  "none",
	Flicker:   "flicker",
	Stripes:   "stripes",
	Waves:     "waves",
	Rainbow:   "rainbow",
	Ripples:   "ripples",
	Breathing: "breathing",
}

func (e Effect) String() string {
	if e < 0 || e >= effectCount {
		return fmt.Sprintf("Effect(%d)", int(e))
	}
	return effectNames[e]
}

// ParseEffect accepts the names printed by String, case-insensitively. An
// empty name is NoEffect.
func ParseEffect(name string) (Effect, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if key == "" {
		return NoEffect, nil
	}
	for i, n := range effectNames {
		if n == key {
			return Effect(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownEffect, name)
}

func (e Effect) MarshalText() ([]byte, error) {
	if e < 0 || e >= effectCount {
		return nil, fmt.Errorf("%w: %d", ErrUnknownEffect, int(e))
	}
	return []byte(e.String()), nil
}

func (e *Effect) UnmarshalText(text []byte) error {
	v, err := ParseEffect(string(text))
	if err != nil {
		return err
	}
	*e = v
	return nil
}

var effects = [effectCount]shadeFunc{
	NoEffect:  func(f Fragment, _ float32) mgl32.Vec3 { return f.Color },
	Flicker:   effectFlicker,
	Stripes:   effectStripes,
	Waves:     effectWaves,
	Rainbow:   effectRainbow,
	Ripples:   effectRipples,
	Breathing: effectBreathing,
}

// Apply computes the effect color of f at time t. Like Shade it is pure;
// unknown effects return the fragment's own color.
func (e Effect) Apply(f Fragment, t float32) mgl32.Vec3 {
	if e < 0 || e >= effectCount {
		return f.Color
	}
	return clampColor(effects[e](f, t), 0, 1)
}

var (
	stripeWarm = mgl32.Vec3{1, 0.3, 0.1}
	stripeCool = mgl32.Vec3{0.1, 0.3, 1}
)

func effectFlicker(f Fragment, t float32) mgl32.Vec3 {
	p := f.WorldPosition
	r := fract(math32.Sin(p[0]*12.9898+p[1]*78.233+p[2]*45.164+t*3) * 43758.5453)
	c := mgl32.Vec3{
		unit(math32.Sin(r * 7)),
		unit(math32.Cos(r * 11)),
		unit(math32.Sin(r * 13)),
	}
	return mixVec(f.Color, c, 0.5)
}

// effectStripes scrolls one-unit bands upward at half a unit per second.
func effectStripes(f Fragment, t float32) mgl32.Vec3 {
	band := math32.Abs(math32.Mod(math32.Floor(f.WorldPosition[1]+t*0.5), 2))
	return mulVec(f.Color, mixVec(stripeCool, stripeWarm, band))
}

func effectWaves(f Fragment, t float32) mgl32.Vec3 {
	p := f.WorldPosition
	c := mgl32.Vec3{
		unit(math32.Sin(p[0]*3 + t*2)),
		unit(math32.Cos(p[1]*3 + t*1.5)),
		unit(math32.Sin(p[2]*3 + t*2.5)),
	}
	return mixVec(f.Color, c, 0.4)
}

// effectRainbow sweeps hue around the y axis, one turn per 2π seconds.
func effectRainbow(f Fragment, t float32) mgl32.Vec3 {
	p := f.WorldPosition
	hue := fract((math32.Atan2(p[0], p[2]) + t) / (2 * math32.Pi))
	c := mgl32.Vec3{
		math32.Abs(math32.Sin(hue * 6)),
		math32.Abs(math32.Sin(hue*6 + 2)),
		math32.Abs(math32.Sin(hue*6 + 4)),
	}
	return mixVec(f.Color, c, 0.5)
}

func effectRipples(f Fragment, t float32) mgl32.Vec3 {
	r := unit(math32.Sin(f.WorldPosition.Len()*2 - t*2))
	return mixVec(f.Color, mgl32.Vec3{r, 1 - r, r * 0.5}, 0.5)
}

func effectBreathing(f Fragment, t float32) mgl32.Vec3 {
	return f.Color.Mul(math32.Sin(t*2)*0.3 + 0.7)
}

func mulVec(a, b mgl32.Vec3) mgl32.Vec3 {
	return mgl32.Vec3{a[0] * b[0], a[1] * b[1], a[2] * b[2]}
}

// EffectShader draws a body's geometry like its surface would, but colors
// fragments with an animated effect.
type EffectShader struct {
	Surface SurfaceType
	Effect  Effect
}

func (s EffectShader) Vertex(v Vertex, u *Uniforms) Vertex {
	return SurfaceShader{Surface: s.Surface}.Vertex(v, u)
}

func (s EffectShader) Fragment(f Fragment, u *Uniforms) mgl32.Vec3 {
	return s.Effect.Apply(f, u.Time)
}
