package stellar

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Fixed light directions baked into the self-lit surfaces.
var (
	sunDirection    = mgl32.Vec3{1, 0.3, 0.5}.Normalize()
	energyDirection = mgl32.Vec3{-0.4, 0.8, 0.45}.Normalize()
	viewDirection   = mgl32.Vec3{0, 0, 1}
)

func fract(x float32) float32 {
	return x - math32.Floor(x)
}

func mix(a, b, t float32) float32 {
	return a + (b-a)*t
}

func mixVec(a, b mgl32.Vec3, t float32) mgl32.Vec3 {
	return a.Add(b.Sub(a).Mul(t))
}

func clamp01(x float32) float32 {
	return mgl32.Clamp(x, 0, 1)
}

func smoothstep(edge0, edge1, x float32) float32 {
	t := clamp01((x - edge0) / (edge1 - edge0))
	return t * t * (3 - 2*t)
}

// unit maps [-1,1] to [0,1].
func unit(x float32) float32 {
	return x*0.5 + 0.5
}

// hash3 maps a lattice cell to a pseudo-random value in [0,1).
func hash3(x, y, z float32) float32 {
	return fract(math32.Sin(x*12.9898+y*78.233+z*45.164) * 43758.5453)
}

// waveNoise is three crossed sinusoids, in [-1,1].
func waveNoise(p mgl32.Vec3) float32 {
	a := math32.Sin(p[0]*1.7 + p[2]*0.3)
	b := math32.Sin(p[1]*2.3 + p[0]*0.7)
	c := math32.Sin(p[2]*1.9 + p[1]*0.5)
	return (a + b + c) / 3
}

// fbm sums octaves of waveNoise, halving the amplitude and doubling the
// frequency each octave. The result is normalized to [-1,1].
func fbm(p mgl32.Vec3, octaves int) float32 {
	var sum, norm float32
	amp := float32(1)
	freq := float32(1)
	for range octaves {
		sum += amp * waveNoise(p.Mul(freq))
		norm += amp
		amp *= 0.5
		freq *= 2
	}
	if norm == 0 {
		return 0
	}
	return sum / norm
}

// latitude returns sin(latitude) of p: -1 at the south pole, 1 at the north.
func latitude(p mgl32.Vec3) float32 {
	r := p.Len()
	if r == 0 {
		return 0
	}
	return mgl32.Clamp(p[1]/r, -1, 1)
}

// ramp interpolates linearly between evenly spaced color stops. t is clamped
// to [0,1).
func ramp(stops []mgl32.Vec3, t float32) mgl32.Vec3 {
	switch len(stops) {
	case 0:
		return Black
	case 1:
		return stops[0]
	}
	t = mgl32.Clamp(t, 0, 0.9999)
	x := t * float32(len(stops)-1)
	i := int(x)
	return mixVec(stops[i], stops[i+1], x-float32(i))
}

// facing is the clamped dot product between the surface direction at p and
// a light direction.
func facing(p, dir mgl32.Vec3) float32 {
	return clamp01(normalize(p).Dot(dir))
}
