package stellar

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func TestNewCamera(t *testing.T) {
	c := NewCamera(mgl32.Vec3{0, 0, 10}, mgl32.Vec3{}, mgl32.Vec3{0, 1, 0})
	assert.InDelta(t, 10, c.Distance, 1e-6)
	assert.InDelta(t, 0, c.Pitch, 1e-6)
	assert.InDelta(t, math32.Pi/2, c.Yaw, 1e-6)

	// rebuilding the eye from the orbit parameters lands on the same spot
	c.updateEye()
	assertVec3InDelta(t, mgl32.Vec3{0, 0, 10}, c.Eye, 1e-5)

	target := transform(c.ViewMatrix(), mgl32.Vec4{0, 0, 0, 1}).Vec3()
	assertVec3InDelta(t, mgl32.Vec3{0, 0, -10}, target, 1e-5)
}

func TestCameraApply(t *testing.T) {
	t.Run("pitch is clamped", func(t *testing.T) {
		c := NewCamera(mgl32.Vec3{0, 0, 10}, mgl32.Vec3{}, mgl32.Vec3{0, 1, 0})
		for range 500 {
			c.Apply(Controls{Pitch: 1})
		}
		assert.InDelta(t, maxPitch, c.Pitch, 1e-6)
		for range 1000 {
			c.Apply(Controls{Pitch: -1})
		}
		assert.InDelta(t, -maxPitch, c.Pitch, 1e-6)
	})

	t.Run("zoom stops short of the target", func(t *testing.T) {
		c := NewCamera(mgl32.Vec3{0, 0, 10}, mgl32.Vec3{}, mgl32.Vec3{0, 1, 0})
		for range 200 {
			c.Apply(Controls{Zoom: 1})
		}
		assert.Equal(t, float32(minDistance), c.Distance)
		assert.InDelta(t, minDistance, c.Eye.Sub(c.Target).Len(), 1e-5)
	})

	t.Run("yaw orbits at constant distance", func(t *testing.T) {
		c := NewCamera(mgl32.Vec3{0, 3, 10}, mgl32.Vec3{}, mgl32.Vec3{0, 1, 0})
		d := c.Distance
		c.Apply(Controls{Yaw: 1})
		assert.InDelta(t, d, c.Eye.Len(), 1e-4)
		assert.InDelta(t, 3, c.Eye.Y(), 1e-4)
	})

	t.Run("panning moves eye and target together", func(t *testing.T) {
		c := NewCamera(mgl32.Vec3{0, 0, 10}, mgl32.Vec3{}, mgl32.Vec3{0, 1, 0})
		offset := c.Eye.Sub(c.Target)
		c.Apply(Controls{Strafe: 1, Forward: 1, Lift: 1})
		assert.NotEqual(t, mgl32.Vec3{}, c.Target)
		assertVec3InDelta(t, offset, c.Eye.Sub(c.Target), 1e-4)
		assert.Greater(t, c.Target.Y(), float32(0))
		assert.Less(t, c.Target.Z(), float32(0), "forward moves toward the view direction")
	})
}

func TestCameraWarp(t *testing.T) {
	c := NewCamera(mgl32.Vec3{0, 0, 10}, mgl32.Vec3{}, mgl32.Vec3{0, 1, 0})
	eye, target := mgl32.Vec3{10, 0, 10}, mgl32.Vec3{10, 0, 0}
	c.WarpTo(eye, target, 2)
	assert.True(t, c.Warping())
	assert.Equal(t, float32(0), c.WarpProgress())

	c.Apply(Controls{Yaw: 1, Strafe: 1})
	c.Track(mgl32.Vec3{100, 100, 100})
	assert.Equal(t, mgl32.Vec3{}, c.Target, "input is ignored while warping")

	c.Update(1)
	assert.InDelta(t, 0.5, c.WarpProgress(), 1e-6)
	assertVec3InDelta(t, mgl32.Vec3{5, 0, 10}, c.Eye, 1e-5)
	assertVec3InDelta(t, mgl32.Vec3{5, 0, 0}, c.Target, 1e-5)

	c.Update(1.5)
	assert.False(t, c.Warping())
	assert.Equal(t, float32(1), c.WarpProgress())
	assert.Equal(t, eye, c.Eye)
	assert.Equal(t, target, c.Target)
	assert.InDelta(t, 10, c.Distance, 1e-5)
}

func TestCameraWarpImmediate(t *testing.T) {
	c := NewCamera(mgl32.Vec3{0, 0, 10}, mgl32.Vec3{}, mgl32.Vec3{0, 1, 0})
	c.WarpTo(mgl32.Vec3{0, 4, 0}, mgl32.Vec3{1, 0, 0}, 0)
	assert.False(t, c.Warping())
	assert.Equal(t, mgl32.Vec3{0, 4, 0}, c.Eye)
	c.Update(1) // no-op without a warp
	assert.Equal(t, mgl32.Vec3{1, 0, 0}, c.Target)
}

func TestCameraTrack(t *testing.T) {
	c := NewCamera(mgl32.Vec3{0, 0, 10}, mgl32.Vec3{}, mgl32.Vec3{0, 1, 0})
	c.Track(mgl32.Vec3{10, 0, 0})
	assertVec3InDelta(t, mgl32.Vec3{1, 0, 0}, c.Target, 1e-5)
	assert.InDelta(t, 10, c.Eye.Sub(c.Target).Len(), 1e-4)
}
