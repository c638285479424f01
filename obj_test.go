package stellar

import (
	"path/filepath"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadOBJCube(t *testing.T) {
	m, err := LoadOBJ(filepath.Join("testdata", "cube.obj"))
	require.NoError(t, err)
	require.Equal(t, 12, m.TriangleCount())

	// first face is the +z quad, fan triangulated from its first corner
	front := m.Vertices[:6]
	for _, v := range front {
		assert.Equal(t, mgl32.Vec3{0, 0, 1}, v.Normal)
		assert.Equal(t, float32(0.5), v.Position.Z())
	}
	assert.Equal(t, front[0].Position, front[3].Position)
	assert.Equal(t, mgl32.Vec2{1, 1}, front[2].TexCoords)
}

func TestLoadOBJFromBytes(t *testing.T) {
	tests := []struct {
		name      string
		src       string
		triangles int
		normal    mgl32.Vec3
	}{
		{
			name:      "face normal when none given",
			src:       "v 0 0 0\nv 1 0 0\nv 0 1 0\nf 1 2 3\n",
			triangles: 1,
			normal:    mgl32.Vec3{0, 0, 1},
		},
		{
			name:      "negative indices",
			src:       "v 0 0 0\nv 0 1 0\nv 1 0 0\nf -3 -2 -1\n",
			triangles: 1,
			normal:    mgl32.Vec3{0, 0, -1},
		},
		{
			name:      "texture indices without normals",
			src:       "v 0 0 0\nv 1 0 0\nv 0 1 0\nvt 0 0\nf 1/1 2/1 3/1\n",
			triangles: 1,
			normal:    mgl32.Vec3{0, 0, 1},
		},
		{
			name:      "pentagon fan",
			src:       "v 0 0 0\nv 2 0 0\nv 3 1 0\nv 1 2 0\nv -1 1 0\nf 1 2 3 4 5\n",
			triangles: 3,
			normal:    mgl32.Vec3{0, 0, 1},
		},
		{
			name:      "comments and unknown records",
			src:       "# hi\nmtllib x.mtl\no thing\ns off\nv 0 0 0\nv 1 0 0\nv 0 1 0\nusemtl y\nf 1 2 3\n",
			triangles: 1,
			normal:    mgl32.Vec3{0, 0, 1},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := LoadOBJFromBytes([]byte(tt.src))
			require.NoError(t, err)
			require.Equal(t, tt.triangles, m.TriangleCount())
			for _, v := range m.Vertices {
				assertVec3InDelta(t, tt.normal, v.Normal, 1e-6)
				assert.Equal(t, v.Normal, v.TransformedNormal)
			}
		})
	}
}

func TestLoadOBJErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{"index out of range", "v 0 0 0\nv 1 0 0\nf 1 2 9\n", "line 3: index out of range"},
		{"zero index", "v 0 0 0\nv 1 0 0\nv 0 1 0\nf 0 1 2\n", "index out of range"},
		{"bad number", "v 0 zero 0\n", "line 1"},
		{"short vertex", "v 1 2\n", "want 3 values"},
		{"short face", "v 0 0 0\nv 1 0 0\nf 1 2\n", "face with 2 vertices"},
		{"missing normal", "v 0 0 0\nv 1 0 0\nv 0 1 0\nf 1//1 2//1 3//1\n", "index out of range"},
		{"garbage index", "v 0 0 0\nv 1 0 0\nv 0 1 0\nf a 2 3\n", "index out of range"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadOBJFromBytes([]byte(tt.src))
			assert.ErrorContains(t, err, tt.want)
		})
	}

	_, err := LoadOBJ(filepath.Join("testdata", "missing.obj"))
	assert.ErrorContains(t, err, "open obj")
}
