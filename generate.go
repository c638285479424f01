package stellar

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// GenerateSphere tessellates a UV sphere centered on the origin. Normals
// point outward; texture coordinates run 0..1 around and down the sphere.
func GenerateSphere(radius float32, segments int) *Mesh {
	segments = max(segments, 3)
	grid := make([]Vertex, 0, (segments+1)*(segments+1))
	for i := 0; i <= segments; i++ {
		theta := math32.Pi * float32(i) / float32(segments)
		sinTheta, cosTheta := math32.Sin(theta), math32.Cos(theta)
		for j := 0; j <= segments; j++ {
			phi := 2 * math32.Pi * float32(j) / float32(segments)
			sinPhi, cosPhi := math32.Sin(phi), math32.Cos(phi)

			n := mgl32.Vec3{sinTheta * cosPhi, cosTheta, sinTheta * sinPhi}
			uv := mgl32.Vec2{float32(j) / float32(segments), float32(i) / float32(segments)}
			grid = append(grid, NewVertex(n.Mul(radius), n, uv))
		}
	}
	return NewMesh(expandGrid(grid, segments, segments))
}

// GenerateRings tessellates a flat annulus in the y=0 plane with an upward
// normal. U runs from the inner to the outer edge, V around the ring.
func GenerateRings(inner, outer float32, radial, angular int) *Mesh {
	radial = max(radial, 1)
	angular = max(angular, 3)
	up := mgl32.Vec3{0, 1, 0}
	grid := make([]Vertex, 0, (radial+1)*(angular+1))
	for i := 0; i <= radial; i++ {
		t := float32(i) / float32(radial)
		r := inner + (outer-inner)*t
		for j := 0; j <= angular; j++ {
			a := 2 * math32.Pi * float32(j) / float32(angular)
			p := mgl32.Vec3{r * math32.Cos(a), 0, r * math32.Sin(a)}
			grid = append(grid, NewVertex(p, up, mgl32.Vec2{t, float32(j) / float32(angular)}))
		}
	}
	return NewMesh(expandGrid(grid, radial, angular))
}

// expandGrid turns a (rows+1) x (cols+1) vertex grid into two triangles per
// cell, index-expanded.
func expandGrid(grid []Vertex, rows, cols int) []Vertex {
	out := make([]Vertex, 0, rows*cols*6)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			first := i*(cols+1) + j
			second := first + 1
			third := (i+1)*(cols+1) + j
			fourth := third + 1
			out = append(out,
				grid[first], grid[second], grid[third],
				grid[second], grid[fourth], grid[third],
			)
		}
	}
	return out
}
