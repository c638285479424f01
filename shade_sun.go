package stellar

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Blackbody-like ramp from cool to hot.
var sunStops = []mgl32.Vec3{
	{0.35, 0.05, 0.00},
	{0.85, 0.25, 0.02},
	{1.00, 0.55, 0.10},
	{1.00, 0.85, 0.40},
	{1.00, 1.00, 0.90},
}

// The sun is allowed to exceed 1 so a downstream bloom has something to
// work with.
const (
	sunMinIntensity = 0.05
	sunMaxIntensity = 3.0

	sunspotScale     = 6
	sunspotThreshold = 0.7
	sunspotDarkening = 0.4

	spikeThreshold = 0.75
	spikeGain      = 3 // up to 4x at the peak

	flareThreshold = 0.85
	flareGain      = 2 // up to 3x at the peak
)

func shadeSun(f Fragment, time float32) mgl32.Vec3 {
	p := f.WorldPosition

	turbulence := sunTurbulence(p, time)
	spot, darken := sunspots(p)
	plasma := sunPlasma(p, time)

	temperature := clamp01(turbulence*0.5 + plasma*0.35 + (1-spot)*0.15)
	c := ramp(sunStops, temperature)

	emission := 1 + 0.2*math32.Sin(time*2)
	spike := math32.Sin(p[0]*7+time*3) * math32.Sin(p[1]*7) * math32.Sin(p[2]*7+time)
	boost := float32(1)
	if spike > spikeThreshold {
		boost += (spike - spikeThreshold) / (1 - spikeThreshold) * spikeGain
	}

	align := math32.Abs(normalize(p).Dot(viewDirection))
	limb := 0.55 + 0.45*math32.Sqrt(align)
	corona := 1 + 0.15*(1-align)*math32.Pow(align+0.2, -1.5)

	lat, lon := sphericalAngles(p)
	flare := math32.Sin(lat*20+time) * math32.Cos(lon*15-time*1.5)
	flareBoost := float32(1)
	if flare > flareThreshold {
		flareBoost += (flare - flareThreshold) / (1 - flareThreshold) * flareGain * unit(math32.Sin(time*5))
	}

	c = c.Mul(emission * boost * limb * corona * flareBoost * darken)
	return clampColor(c, sunMinIntensity, sunMaxIntensity)
}

// sunTurbulence layers three fbm groups at doubling scale, halving weight
// and rising drift speed. The result is in [0,1].
func sunTurbulence(p mgl32.Vec3, time float32) float32 {
	var sum, norm float32
	weight := float32(1)
	scale := float32(2)
	for g := range 3 {
		drift := time * 0.1 * float32(g+1)
		q := p.Mul(scale).Add(mgl32.Vec3{drift, -drift * 0.5, drift * 0.3})
		sum += weight * fbm(q, 3)
		norm += weight
		weight *= 0.5
		scale *= 2
	}
	return unit(sum / norm)
}

// sunspots hashes the grid cell around p and weights it by the distance to
// the cell center. It returns the pattern value and the darkening factor to
// apply (1 outside spots).
func sunspots(p mgl32.Vec3) (spot, darken float32) {
	q := p.Mul(sunspotScale)
	cx, cy, cz := math32.Floor(q[0]), math32.Floor(q[1]), math32.Floor(q[2])
	h := hash3(cx, cy, cz)
	local := mgl32.Vec3{q[0] - cx - 0.5, q[1] - cy - 0.5, q[2] - cz - 0.5}
	spot = h * (1 - local.Len())
	if spot > sunspotThreshold {
		return spot, sunspotDarkening
	}
	return spot, 1
}

// sunPlasma is a two-frequency flow field, in [0,1].
func sunPlasma(p mgl32.Vec3, time float32) float32 {
	low := math32.Sin(p[0]*5+time) * math32.Cos(p[1]*5-time*0.7)
	high := math32.Sin(p[2]*11+time*1.3) * math32.Cos(p[0]*9-time*0.4)
	return unit(low*0.6 + high*0.4)
}
