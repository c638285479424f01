package stellar

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
)

var errNoTriangles = errors.New("no triangles found in gltf")

// LoadGLTF loads the triangle primitives of a .gltf or .glb file into one
// mesh. Node transforms are not applied.
func LoadGLTF(path string) (*Mesh, error) {
	doc, err := gltf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("stellar: open gltf: %w", err)
	}

	var vertices []Vertex
	for _, mesh := range doc.Meshes {
		for _, primitive := range mesh.Primitives {
			if primitive.Mode != gltf.PrimitiveTriangles {
				continue
			}
			posIdx, ok := primitive.Attributes[gltf.POSITION]
			if !ok {
				continue
			}
			positions, err := modeler.ReadPosition(doc, doc.Accessors[posIdx], nil)
			if err != nil {
				return nil, fmt.Errorf("stellar: %s: positions: %w", path, err)
			}

			var normals [][3]float32
			if normIdx, ok := primitive.Attributes[gltf.NORMAL]; ok {
				normals, _ = modeler.ReadNormal(doc, doc.Accessors[normIdx], nil)
			}
			var texCoords [][2]float32
			if texIdx, ok := primitive.Attributes[gltf.TEXCOORD_0]; ok {
				texCoords, _ = modeler.ReadTextureCoord(doc, doc.Accessors[texIdx], nil)
			}

			var indices []uint32
			if primitive.Indices != nil {
				indices, err = modeler.ReadIndices(doc, doc.Accessors[*primitive.Indices], nil)
				if err != nil {
					return nil, fmt.Errorf("stellar: %s: indices: %w", path, err)
				}
			} else {
				indices = make([]uint32, len(positions))
				for k := range indices {
					indices[k] = uint32(k)
				}
			}

			for i := 0; i+2 < len(indices); i += 3 {
				var tri [3]Vertex
				for k := 0; k < 3; k++ {
					idx := int(indices[i+k])
					if idx >= len(positions) {
						return nil, fmt.Errorf("stellar: %s: index %d out of range", path, idx)
					}
					v := NewVertex(mgl32.Vec3(positions[idx]), mgl32.Vec3{}, mgl32.Vec2{})
					if idx < len(normals) {
						v.Normal = mgl32.Vec3(normals[idx])
						v.TransformedNormal = v.Normal
					}
					if idx < len(texCoords) {
						v.TexCoords = mgl32.Vec2(texCoords[idx])
					}
					tri[k] = v
				}
				if len(normals) == 0 {
					n := faceNormal(tri[0].Position, tri[1].Position, tri[2].Position)
					for k := range tri {
						tri[k].Normal = n
						tri[k].TransformedNormal = n
					}
				}
				vertices = append(vertices, tri[:]...)
			}
		}
	}

	if len(vertices) == 0 {
		return nil, fmt.Errorf("stellar: %s: %w", path, errNoTriangles)
	}
	return NewMesh(vertices), nil
}
