package stellar

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// TransformVertex runs one vertex through model, view and projection, the
// perspective divide and the viewport transform. A clip-space w of zero
// skips the divide. The normal is carried through untransformed.
func TransformVertex(v Vertex, u *Uniforms) Vertex {
	v.TransformedPosition = project(v.Position, u)
	v.TransformedNormal = v.Normal
	return v
}

// SunVertex displaces the vertex radially with animated waves and solar
// prominences before projecting it. The output keeps the undisplaced
// Position so the fragment stage shades the unperturbed surface.
func SunVertex(v Vertex, u *Uniforms) Vertex {
	v.TransformedPosition = project(sunDisplace(v.Position, u.Time), u)
	v.TransformedNormal = v.Normal
	return v
}

func project(p mgl32.Vec3, u *Uniforms) mgl32.Vec3 {
	world := transform(u.Model, p.Vec4(1))
	view := transform(u.View, world)
	clip := transform(u.Projection, view)

	var ndc mgl32.Vec3
	if w := clip.W(); w != 0 {
		ndc = mgl32.Vec3{clip.X() / w, clip.Y() / w, clip.Z() / w}
	} else {
		ndc = clip.Vec3()
	}

	screen := transform(u.Viewport, ndc.Vec4(1))
	return screen.Vec3()
}

const (
	sunWaveAmplitude       = 0.08
	sunProminenceThreshold = 0.85
	sunProminenceGain      = 3
	sunProminenceAmplitude = 0.15
)

func sunDisplace(p mgl32.Vec3, t float32) mgl32.Vec3 {
	distortion := math32.Sin(p[0]*4+t*2)*0.5 +
		math32.Sin(p[1]*5+t*1.5)*0.3 +
		math32.Sin(p[2]*3+t*2.5)*0.2

	dir := normalize(p)
	out := p.Add(dir.Mul(distortion * sunWaveAmplitude))

	lat, lon := sphericalAngles(p)
	pattern := math32.Sin(lat*6+t*0.7) * math32.Cos(lon*4-t*0.4)
	if a := math32.Abs(pattern); a > sunProminenceThreshold {
		lift := (a - sunProminenceThreshold) * sunProminenceGain * sunProminenceAmplitude
		out = out.Add(dir.Mul(lift))
	}
	return out
}
