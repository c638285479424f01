package stellar

import "github.com/go-gl/mathgl/mgl32"

// Vertex is one corner of a triangle. Position, Normal, TexCoords and Color
// come from the mesh producer; TransformedPosition and TransformedNormal are
// filled in by the vertex stage.
type Vertex struct {
	Position  mgl32.Vec3
	Normal    mgl32.Vec3
	TexCoords mgl32.Vec2
	Color     mgl32.Vec3

	TransformedPosition mgl32.Vec3 // screen space
	TransformedNormal   mgl32.Vec3
}

// NewVertex returns a white vertex. The transformed attributes start out as
// copies of the model-space ones.
func NewVertex(position, normal mgl32.Vec3, tex mgl32.Vec2) Vertex {
	return Vertex{
		Position:            position,
		Normal:              normal,
		TexCoords:           tex,
		Color:               White,
		TransformedPosition: position,
		TransformedNormal:   normal,
	}
}

// assemble groups a flat vertex list into triangles. A trailing partial
// triangle is dropped.
func assemble(vertices []Vertex) [][3]Vertex {
	n := len(vertices) / 3
	triangles := make([][3]Vertex, n)
	for i := range triangles {
		j := i * 3
		triangles[i] = [3]Vertex{vertices[j], vertices[j+1], vertices[j+2]}
	}
	return triangles
}
