package stellar

import "github.com/go-gl/mathgl/mgl32"

// Uniforms holds the per-draw constants shared by every vertex and fragment.
type Uniforms struct {
	Model      mgl32.Mat4
	View       mgl32.Mat4
	Projection mgl32.Mat4
	Viewport   mgl32.Mat4
	Time       float32
}

// NewUniforms builds a Uniforms value with all four matrices.
func NewUniforms(model, view, projection, viewport mgl32.Mat4, time float32) *Uniforms {
	return &Uniforms{
		Model:      model,
		View:       view,
		Projection: projection,
		Viewport:   viewport,
		Time:       time,
	}
}

// Light is a point light used for flat per-triangle shading.
type Light struct {
	Position mgl32.Vec3
}
