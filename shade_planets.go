package stellar

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

var rockyStops = []mgl32.Vec3{
	{0.05, 0.12, 0.35}, // deep ocean
	{0.12, 0.35, 0.55}, // shallows
	{0.22, 0.48, 0.20}, // lowland
	{0.45, 0.36, 0.24}, // highland
	{0.92, 0.93, 0.95}, // snow
}

// shadeRocky: terrain octaves, a polar altitude gradient, a day/night
// terminator that never goes fully black, and erosion streaks.
func shadeRocky(f Fragment, _ float32) mgl32.Vec3 {
	p := f.WorldPosition

	terrain := unit(fbm(p.Mul(3), 5))
	altitude := math32.Abs(latitude(p))
	height := clamp01(terrain*0.7 + altitude*0.3)

	day := facing(p, sunDirection)
	light := day*0.75 + 0.25

	erosion := 0.85 + 0.15*unit(math32.Sin(p[0]*11+p[2]*7)*math32.Cos(p[1]*9))

	c := ramp(rockyStops, height).Mul(erosion * light)
	return clampColor(c, 0, 1)
}

var gasGiantStops = []mgl32.Vec3{
	{0.55, 0.35, 0.20},
	{0.80, 0.62, 0.42},
	{0.95, 0.88, 0.72},
	{0.70, 0.45, 0.30},
	{0.40, 0.22, 0.15},
}

// vortex is the center of the storm on the gas giant, as a unit direction.
var vortex = mgl32.Vec3{0.6, -0.35, 0.72}.Normalize()

// shadeGasGiant: latitude bands drifting with time, three multiplied
// turbulence waves, an illumination falloff and a single storm vortex.
func shadeGasGiant(f Fragment, time float32) mgl32.Vec3 {
	p := f.WorldPosition
	lat := latitude(p)

	band := unit(math32.Sin(lat*12 + time*0.3))

	t1 := unit(math32.Sin(p[0]*3 + time*0.5))
	t2 := unit(math32.Sin(p[2]*4 - time*0.35))
	t3 := unit(math32.Sin((p[0]+p[2])*5 + lat*2))
	turbulence := (0.7 + 0.3*t1) * (0.7 + 0.3*t2) * (0.7 + 0.3*t3)

	depth := 0.55 + 0.45*facing(p, sunDirection)

	d := normalize(p).Sub(vortex).Len()
	swirl := math32.Exp(-d*d*10) * unit(math32.Sin(d*30-time*2))

	key := clamp01(band*turbulence + swirl*0.35)
	c := ramp(gasGiantStops, key).Mul(depth)
	return clampColor(c, 0, 1)
}

var iceStops = []mgl32.Vec3{
	{0.20, 0.35, 0.55},
	{0.45, 0.65, 0.82},
	{0.70, 0.85, 0.95},
	{0.88, 0.94, 0.99},
	{1.00, 1.00, 1.00},
}

// shadeIce: fractured crust, snow depth toward the poles, a specular glint
// and a frost sparkle threshold.
func shadeIce(f Fragment, time float32) mgl32.Vec3 {
	p := f.WorldPosition

	fracture := unit(fbm(p.Mul(6), 4))
	crack := 1 - smoothstep(0.02, 0.08, math32.Abs(fracture-0.5))

	snow := clamp01(math32.Abs(latitude(p))*0.6 + fracture*0.4)

	reflection := facing(p, sunDirection)
	specular := math32.Pow(reflection, 8)

	frost := math32.Sin(p[0]*40+time) * math32.Sin(p[1]*40) * math32.Sin(p[2]*40)
	var sparkle float32
	if frost > 0.7 {
		sparkle = 0.3
	}

	c := ramp(iceStops, snow).Mul(0.45 + 0.55*reflection)
	c = c.Add(White.Mul(specular*0.4 + sparkle))
	c = c.Sub(White.Mul(crack * 0.15))
	return clampColor(c, 0, 1)
}

var volcanicStops = []mgl32.Vec3{
	{0.08, 0.06, 0.06}, // cooled basalt
	{0.55, 0.10, 0.02}, // crust glow
	{1.00, 0.60, 0.10}, // molten
}

const lavaThreshold = 0.6

// shadeVolcanic: lava noise mixed with two flow waves, pulsing incandescence
// on molten areas and ash dampening elsewhere.
func shadeVolcanic(f Fragment, time float32) mgl32.Vec3 {
	p := f.WorldPosition

	lava := unit(fbm(p.Mul(4), 4))
	flow1 := unit(math32.Sin(p[0]*6 + time*0.8))
	flow2 := unit(math32.Sin(p[2]*5 - time*0.6))
	heat := clamp01(lava*0.6 + flow1*0.2 + flow2*0.2)

	incandescence := 0.8 + 0.2*math32.Sin(time*3+lava*6)

	drift := mgl32.Vec3{time * 0.05, 0, time * 0.03}
	smoke := unit(fbm(p.Mul(2).Add(drift), 3))

	c := ramp(volcanicStops, heat)
	if heat > lavaThreshold {
		c = c.Mul(1.5 * incandescence)
	} else {
		c = c.Mul(1 - smoke*0.3)
	}
	return clampColor(c, 0, 1)
}
