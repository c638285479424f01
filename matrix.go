package stellar

import "github.com/go-gl/mathgl/mgl32"

// ModelMatrix places a model in the world: scale, then rotate about X, Y and
// Z (in that order), then translate.
func ModelMatrix(translation mgl32.Vec3, scale float32, rotation mgl32.Vec3) mgl32.Mat4 {
	t := mgl32.Translate3D(translation[0], translation[1], translation[2])
	r := mgl32.HomogRotate3DZ(rotation[2]).
		Mul4(mgl32.HomogRotate3DY(rotation[1])).
		Mul4(mgl32.HomogRotate3DX(rotation[0]))
	s := mgl32.Scale3D(scale, scale, scale)
	return t.Mul4(r).Mul4(s)
}

// ViewMatrix returns a right-handed look-at matrix.
func ViewMatrix(eye, target, up mgl32.Vec3) mgl32.Mat4 {
	return mgl32.LookAtV(eye, target, up)
}

// ProjectionMatrix returns an OpenGL style perspective projection. fovy is in
// radians.
func ProjectionMatrix(fovy, aspect, near, far float32) mgl32.Mat4 {
	return mgl32.Perspective(fovy, aspect, near, far)
}

// ViewportMatrix maps NDC to pixels inside the rectangle (x, y, width,
// height). Screen y grows downward; z passes through unchanged.
func ViewportMatrix(x, y, width, height float32) mgl32.Mat4 {
	hw := width / 2
	hh := height / 2
	return mgl32.Mat4{
		hw, 0, 0, 0,
		0, -hh, 0, 0,
		0, 0, 1, 0,
		x + hw, y + hh, 0, 1,
	}
}

func transform(m mgl32.Mat4, v mgl32.Vec4) mgl32.Vec4 {
	return m.Mul4x1(v)
}
