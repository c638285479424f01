package stellar

import (
	"image"
	"iter"
	"math"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// maxCoord bounds the scan box of triangles with wild screen coordinates.
const maxCoord = 1 << 24

// Rasterizer converts screen-space triangles into fragments.
type Rasterizer struct {
	// Clip limits the scan to a pixel rectangle. The zero rectangle scans
	// the whole bounding box of the triangle.
	Clip image.Rectangle
}

// Rasterize is Rasterizer{}.Triangle.
func Rasterize(v0, v1, v2 Vertex, light Light) iter.Seq[Fragment] {
	return Rasterizer{}.Triangle(v0, v1, v2, light)
}

type point2 struct {
	x, y float64
}

func screenPoint(v Vertex) point2 {
	return point2{float64(v.TransformedPosition[0]), float64(v.TransformedPosition[1])}
}

func (p point2) finite() bool {
	return !math.IsNaN(p.x) && !math.IsNaN(p.y) && !math.IsInf(p.x, 0) && !math.IsInf(p.y, 0)
}

// orient is twice the signed area of the triangle (a, b, p).
func orient(a, b, p point2) float64 {
	return (b.x-a.x)*(p.y-a.y) - (b.y-a.y)*(p.x-a.x)
}

// edgeFunc is orient with the edge endpoints taken in (y, x) order, so the
// two triangles on either side of an edge get exactly opposite values.
func edgeFunc(a, b, p point2) float64 {
	if b.y < a.y || (b.y == a.y && b.x < a.x) {
		return -orient(b, a, p)
	}
	return orient(a, b, p)
}

// edge is one side of a triangle after winding normalization.
type edge struct {
	a, b point2
	sign float64
	// owns reports whether samples exactly on the edge belong to this
	// triangle (top-left rule).
	owns bool
}

func newEdge(a, b point2, sign float64) edge {
	dx := (b.x - a.x) * sign
	dy := (b.y - a.y) * sign
	return edge{a: a, b: b, sign: sign, owns: dy < 0 || (dy == 0 && dx > 0)}
}

func (e edge) eval(p point2) float64 {
	return e.sign * edgeFunc(e.a, e.b, p)
}

func (e edge) covers(w float64) bool {
	return w > 0 || (w == 0 && e.owns)
}

// Triangle returns the fragments covered by the triangle. Pixels are sampled
// at their centers; a sample is covered when all three barycentric weights
// are non-negative, with samples lying exactly on an edge resolved by the
// top-left rule. Both windings are drawn. Depth, color and world position
// are interpolated linearly in screen space. The color is lit once per
// triangle by the light.
func (r Rasterizer) Triangle(v0, v1, v2 Vertex, light Light) iter.Seq[Fragment] {
	return func(yield func(Fragment) bool) {
		s0, s1, s2 := screenPoint(v0), screenPoint(v1), screenPoint(v2)
		if !s0.finite() || !s1.finite() || !s2.finite() {
			return
		}
		area := edgeFunc(s0, s1, s2)
		if area == 0 {
			return
		}
		sign := 1.0
		if area < 0 {
			sign = -1
			area = -area
		}
		e0 := newEdge(s1, s2, sign)
		e1 := newEdge(s2, s0, sign)
		e2 := newEdge(s0, s1, sign)

		x0, y0, x1, y1, ok := r.bounds(s0, s1, s2)
		if !ok {
			return
		}

		intensity := flatIntensity(v0, v1, v2, light)
		c0 := v0.Color.Mul(intensity)
		c1 := v1.Color.Mul(intensity)
		c2 := v2.Color.Mul(intensity)
		z0 := v0.TransformedPosition[2]
		z1 := v1.TransformedPosition[2]
		z2 := v2.TransformedPosition[2]

		for y := y0; y <= y1; y++ {
			for x := x0; x <= x1; x++ {
				p := point2{float64(x) + 0.5, float64(y) + 0.5}
				w0 := e0.eval(p)
				if !e0.covers(w0) {
					continue
				}
				w1 := e1.eval(p)
				if !e1.covers(w1) {
					continue
				}
				w2 := e2.eval(p)
				if !e2.covers(w2) {
					continue
				}

				b0 := float32(w0 / area)
				b1 := float32(w1 / area)
				b2 := float32(w2 / area)

				f := Fragment{
					Position:      mgl32.Vec2{float32(x), float32(y)},
					Color:         c0.Mul(b0).Add(c1.Mul(b1)).Add(c2.Mul(b2)),
					Depth:         b0*z0 + b1*z1 + b2*z2,
					WorldPosition: v0.Position.Mul(b0).Add(v1.Position.Mul(b1)).Add(v2.Position.Mul(b2)),
				}
				if !yield(f) {
					return
				}
			}
		}
	}
}

// bounds returns the inclusive pixel range to scan.
func (r Rasterizer) bounds(s0, s1, s2 point2) (x0, y0, x1, y1 int, ok bool) {
	minX := math.Floor(math.Min(s0.x, math.Min(s1.x, s2.x)))
	minY := math.Floor(math.Min(s0.y, math.Min(s1.y, s2.y)))
	maxX := math.Ceil(math.Max(s0.x, math.Max(s1.x, s2.x)))
	maxY := math.Ceil(math.Max(s0.y, math.Max(s1.y, s2.y)))

	x0 = int(clampCoord(minX))
	y0 = int(clampCoord(minY))
	x1 = int(clampCoord(maxX))
	y1 = int(clampCoord(maxY))

	if !r.Clip.Empty() {
		x0 = max(x0, r.Clip.Min.X)
		y0 = max(y0, r.Clip.Min.Y)
		x1 = min(x1, r.Clip.Max.X-1)
		y1 = min(y1, r.Clip.Max.Y-1)
	}
	return x0, y0, x1, y1, x0 <= x1 && y0 <= y1
}

func clampCoord(v float64) float64 {
	return math.Max(-maxCoord, math.Min(maxCoord, v))
}

// flatIntensity is the Lambert term of the triangle: the averaged vertex
// normal (or the face normal when the normals cancel out) against the
// direction from the triangle's centroid to the light, clamped at zero.
func flatIntensity(v0, v1, v2 Vertex, light Light) float32 {
	n := normalize(v0.TransformedNormal.Add(v1.TransformedNormal).Add(v2.TransformedNormal))
	if n == (mgl32.Vec3{}) {
		n = faceNormal(v0.Position, v1.Position, v2.Position)
	}
	centroid := v0.Position.Add(v1.Position).Add(v2.Position).Mul(1.0 / 3)
	l := normalize(light.Position.Sub(centroid))
	return math32.Max(0, n.Dot(l))
}
