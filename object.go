package stellar

import "github.com/go-gl/mathgl/mgl32"

// Object is a mesh placed in the world with a surface to shade it with.
type Object struct {
	Name        string
	Mesh        *Mesh
	Surface     SurfaceType
	Translation mgl32.Vec3
	Rotation    mgl32.Vec3
	Scale       float32
}

// NewObject returns an object at the origin with unit scale.
func NewObject(name string, mesh *Mesh, surface SurfaceType) *Object {
	return &Object{Name: name, Mesh: mesh, Surface: surface, Scale: 1}
}

// Matrix returns the model matrix of the object.
func (o *Object) Matrix() mgl32.Mat4 {
	return ModelMatrix(o.Translation, o.Scale, o.Rotation)
}

// LocalLight expresses a world-space light in the object's model space,
// where the rasterizer evaluates lighting.
func (o *Object) LocalLight(light Light) Light {
	inv := o.Matrix().Inv()
	return Light{Position: transform(inv, light.Position.Vec4(1)).Vec3()}
}
