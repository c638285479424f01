package stellar

import "github.com/go-gl/mathgl/mgl32"

// Fragment is a candidate pixel produced by the rasterizer.
type Fragment struct {
	Position      mgl32.Vec2 // pixel coordinates, truncated on write
	Color         mgl32.Vec3 // interpolated vertex color with lighting applied
	Depth         float32
	WorldPosition mgl32.Vec3 // interpolated untransformed position
}

// Pixel returns the integer pixel the fragment lands on.
func (f Fragment) Pixel() (int, int) {
	return int(f.Position.X()), int(f.Position.Y())
}
