package stellar

import "github.com/go-gl/mathgl/mgl32"

// Shader is the programmable part of the pipeline: a vertex stage that fills
// in the transformed attributes and a fragment stage that produces the final
// color.
type Shader interface {
	Vertex(Vertex, *Uniforms) Vertex
	Fragment(Fragment, *Uniforms) mgl32.Vec3
}

// SurfaceShader shades with one of the procedural surfaces. Sun surfaces
// also get the animated vertex displacement.
type SurfaceShader struct {
	Surface SurfaceType
}

// NewSurfaceShader returns a shader for surface s.
func NewSurfaceShader(s SurfaceType) SurfaceShader {
	return SurfaceShader{Surface: s}
}

func (s SurfaceShader) Vertex(v Vertex, u *Uniforms) Vertex {
	if s.Surface == Sun {
		return SunVertex(v, u)
	}
	return TransformVertex(v, u)
}

func (s SurfaceShader) Fragment(f Fragment, u *Uniforms) mgl32.Vec3 {
	return Shade(f, u.Time, s.Surface)
}

// FlatShader colors every fragment with its lit vertex color.
type FlatShader struct{}

func (FlatShader) Vertex(v Vertex, u *Uniforms) Vertex {
	return TransformVertex(v, u)
}

func (FlatShader) Fragment(f Fragment, _ *Uniforms) mgl32.Vec3 {
	return f.Color
}
