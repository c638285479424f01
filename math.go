package stellar

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// normalize returns v scaled to unit length, or the zero vector when v has
// no length.
func normalize(v mgl32.Vec3) mgl32.Vec3 {
	l := v.Len()
	if l == 0 || math32.IsNaN(l) || math32.IsInf(l, 0) {
		return mgl32.Vec3{}
	}
	return v.Mul(1 / l)
}

// sphericalAngles returns latitude in [-π/2, π/2] and longitude in [-π, π]
// of p as seen from the origin. The origin itself has both angles zero.
func sphericalAngles(p mgl32.Vec3) (lat, lon float32) {
	r := p.Len()
	if r == 0 {
		return 0, 0
	}
	lat = math32.Asin(mgl32.Clamp(p[1]/r, -1, 1))
	lon = math32.Atan2(p[2], p[0])
	return lat, lon
}
