package stellar

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

var sciFiStops = []mgl32.Vec3{
	{0.02, 0.03, 0.10},
	{0.08, 0.15, 0.30},
	{0.10, 0.40, 0.55},
	{0.15, 0.75, 0.85},
	{0.55, 0.95, 1.00},
	{0.90, 1.00, 1.00},
}

var circuitColor = mgl32.Vec3{0.2, 1.0, 0.9}

// shadeSciFi: averaged energy pulses blended with a slow phase, a thresholded
// circuit grid, directional energy lighting and a global glow pulse.
func shadeSciFi(f Fragment, time float32) mgl32.Vec3 {
	p := f.WorldPosition

	p1 := math32.Sin(p[0]*4 + time*2)
	p2 := math32.Sin(p[1]*4 + time*3)
	p3 := math32.Sin(p[2]*4 + time*1.5)
	pulse := unit((p1 + p2 + p3) / 3)
	phase := fract(time * 0.1)
	key := clamp01(pulse*0.7 + phase*0.3)

	grid := math32.Abs(math32.Sin(p[0]*20) * math32.Sin(p[1]*20) * math32.Sin(p[2]*20))
	var circuit float32
	switch {
	case grid > 0.9:
		circuit = 1
	case grid > 0.8:
		circuit = 0.5
	}

	energy := 0.4 + 0.6*facing(p, energyDirection)
	glow := 0.75 + 0.25*math32.Sin(time*4)

	c := ramp(sciFiStops, key).Mul(energy * glow)
	c = c.Add(circuitColor.Mul(circuit * glow))
	return clampColor(c, 0, 1)
}

var (
	ringDust = mgl32.Vec3{0.55, 0.48, 0.38}
	ringIce  = mgl32.Vec3{0.85, 0.83, 0.78}
)

// shadeRing: radial bands, density noise along the ring and a few gaps.
func shadeRing(f Fragment, time float32) mgl32.Vec3 {
	p := f.WorldPosition
	r := math32.Sqrt(p[0]*p[0] + p[2]*p[2])
	angle := math32.Atan2(p[2], p[0])

	bands := unit(math32.Sin(r * 40))
	density := unit(fbm(mgl32.Vec3{r * 10, angle * 3, time * 0.02}, 3))
	gap := float32(1)
	if fract(r*7) < 0.08 {
		gap = 0.2
	}

	lit := 0.35 + 0.65*luminance(f.Color)
	c := mixVec(ringDust, ringIce, bands).Mul((0.5 + 0.5*density) * gap * lit)
	return clampColor(c, 0, 1)
}

const craterScale = 8

// shadeMoon: gray regolith noise with hashed craters (dark floor, bright rim).
func shadeMoon(f Fragment, _ float32) mgl32.Vec3 {
	p := f.WorldPosition

	gray := 0.45 + 0.2*unit(fbm(p.Mul(5), 4))

	q := normalize(p).Mul(craterScale)
	cx, cy, cz := math32.Floor(q[0]), math32.Floor(q[1]), math32.Floor(q[2])
	h := hash3(cx, cy, cz)
	if h > 0.55 {
		local := mgl32.Vec3{q[0] - cx - 0.5, q[1] - cy - 0.5, q[2] - cz - 0.5}
		radius := 0.2 + 0.25*h
		if d := local.Len(); d < radius {
			gray *= mix(0.6, 1.15, smoothstep(0.6, 1, d/radius))
		}
	}

	lit := 0.15 + 0.85*luminance(f.Color)
	c := mgl32.Vec3{gray, gray * 0.98, gray * 0.95}.Mul(lit)
	return clampColor(c, 0, 1)
}

var hullGray = mgl32.Vec3{0.6, 0.62, 0.66}

const hullBoost = 1.4

// shadeHull is the lit fragment color tinted gray and brightened.
func shadeHull(f Fragment, _ float32) mgl32.Vec3 {
	c := mgl32.Vec3{
		f.Color[0] * hullGray[0],
		f.Color[1] * hullGray[1],
		f.Color[2] * hullGray[2],
	}
	return clampColor(c.Mul(hullBoost).Add(mgl32.Vec3{0.05, 0.05, 0.05}), 0, 1)
}
