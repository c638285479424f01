package stellar

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/fogleman/simplify"
	"github.com/go-gl/mathgl/mgl32"
)

// ErrUnsupportedFormat is returned for file extensions no loader or encoder
// handles.
var ErrUnsupportedFormat = errors.New("stellar: unsupported format")

// Mesh is an index-expanded triangle list: every three consecutive vertices
// form one triangle.
type Mesh struct {
	Vertices []Vertex
}

// NewMesh wraps a vertex list.
func NewMesh(vertices []Vertex) *Mesh {
	return &Mesh{Vertices: vertices}
}

// TriangleCount returns the number of complete triangles.
func (m *Mesh) TriangleCount() int {
	return len(m.Vertices) / 3
}

// SetColor sets the color of every vertex.
func (m *Mesh) SetColor(c mgl32.Vec3) {
	for i := range m.Vertices {
		m.Vertices[i].Color = c
	}
}

// Box is an axis-aligned bounding box.
type Box struct {
	Min, Max mgl32.Vec3
}

func (b Box) Center() mgl32.Vec3 {
	return b.Min.Add(b.Max).Mul(0.5)
}

func (b Box) Size() mgl32.Vec3 {
	return b.Max.Sub(b.Min)
}

// BoundingBox returns the bounds of all vertex positions. An empty mesh has
// the zero box.
func (m *Mesh) BoundingBox() Box {
	if len(m.Vertices) == 0 {
		return Box{}
	}
	lo := m.Vertices[0].Position
	hi := lo
	for _, v := range m.Vertices[1:] {
		for k := 0; k < 3; k++ {
			lo[k] = min(lo[k], v.Position[k])
			hi[k] = max(hi[k], v.Position[k])
		}
	}
	return Box{Min: lo, Max: hi}
}

// Simplify returns a copy reduced to roughly factor times the triangle
// count using quadric edge collapse. The result has flat face normals; it
// keeps the source color when every source vertex shares one, otherwise its
// vertices are white.
func (m *Mesh) Simplify(factor float64) *Mesh {
	triangles := make([]*simplify.Triangle, 0, m.TriangleCount())
	for i := 0; i+2 < len(m.Vertices); i += 3 {
		p1, p2, p3 := m.Vertices[i].Position, m.Vertices[i+1].Position, m.Vertices[i+2].Position
		if p2.Sub(p1).Cross(p3.Sub(p1)).Len() == 0 {
			continue // zero-area, e.g. at sphere poles
		}
		triangles = append(triangles, &simplify.Triangle{
			V1: toSimplifyVector(p1),
			V2: toSimplifyVector(p2),
			V3: toSimplifyVector(p3),
		})
	}
	reduced := simplify.NewMesh(triangles).Simplify(factor)

	vertices := make([]Vertex, 0, len(reduced.Triangles)*3)
	for _, t := range reduced.Triangles {
		vertices = append(vertices, faceVertices(
			fromSimplifyVector(t.V1),
			fromSimplifyVector(t.V2),
			fromSimplifyVector(t.V3),
		)...)
	}
	out := NewMesh(vertices)
	if c, ok := m.uniformColor(); ok {
		out.SetColor(c)
	}
	return out
}

func (m *Mesh) uniformColor() (mgl32.Vec3, bool) {
	if len(m.Vertices) == 0 {
		return mgl32.Vec3{}, false
	}
	c := m.Vertices[0].Color
	for _, v := range m.Vertices[1:] {
		if v.Color != c {
			return mgl32.Vec3{}, false
		}
	}
	return c, true
}

func toSimplifyVector(v mgl32.Vec3) simplify.Vector {
	return simplify.Vector{X: float64(v[0]), Y: float64(v[1]), Z: float64(v[2])}
}

func fromSimplifyVector(v simplify.Vector) mgl32.Vec3 {
	return mgl32.Vec3{float32(v.X), float32(v.Y), float32(v.Z)}
}

func faceNormal(p1, p2, p3 mgl32.Vec3) mgl32.Vec3 {
	return normalize(p2.Sub(p1).Cross(p3.Sub(p1)))
}

// faceVertices builds a triangle whose vertices all carry its face normal.
func faceVertices(p1, p2, p3 mgl32.Vec3) []Vertex {
	n := faceNormal(p1, p2, p3)
	return []Vertex{
		NewVertex(p1, n, mgl32.Vec2{}),
		NewVertex(p2, n, mgl32.Vec2{}),
		NewVertex(p3, n, mgl32.Vec2{}),
	}
}

// LoadMesh loads an OBJ, glTF or GLB file, chosen by extension.
func LoadMesh(path string) (*Mesh, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".obj":
		return LoadOBJ(path)
	case ".gltf", ".glb":
		return LoadGLTF(path)
	default:
		return nil, fmt.Errorf("%w: mesh %q", ErrUnsupportedFormat, path)
	}
}
