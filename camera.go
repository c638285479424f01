package stellar

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

const (
	maxPitch       = math32.Pi/2 - 0.1
	minDistance    = 0.5
	trackSmoothing = 0.1
)

// Controls is one step of camera input. Every field is a signed amount,
// typically -1, 0 or 1.
type Controls struct {
	Yaw     float32
	Pitch   float32
	Zoom    float32
	Strafe  float32
	Forward float32
	Lift    float32
}

// Camera orbits a target point. Eye is derived from Target, Yaw, Pitch and
// Distance, except while a warp is in progress.
type Camera struct {
	Eye    mgl32.Vec3
	Target mgl32.Vec3
	Up     mgl32.Vec3

	Yaw      float32
	Pitch    float32
	Distance float32

	RotationSpeed float32
	ZoomSpeed     float32
	PanSpeed      float32

	warp *warp
}

type warp struct {
	fromEye, fromTarget mgl32.Vec3
	toEye, toTarget     mgl32.Vec3
	duration, elapsed   float32
}

// NewCamera places a camera at eye looking at target.
func NewCamera(eye, target, up mgl32.Vec3) *Camera {
	c := &Camera{
		Up:            up,
		RotationSpeed: 0.02,
		ZoomSpeed:     0.2,
		PanSpeed:      0.15,
	}
	c.lookFrom(eye, target)
	return c
}

// lookFrom sets eye and target and derives the orbit parameters from them.
func (c *Camera) lookFrom(eye, target mgl32.Vec3) {
	c.Eye = eye
	c.Target = target
	dir := eye.Sub(target)
	c.Distance = max(dir.Len(), minDistance)
	c.Pitch = math32.Asin(mgl32.Clamp(dir[1]/c.Distance, -1, 1))
	c.Yaw = math32.Atan2(dir[2], dir[0])
}

func (c *Camera) updateEye() {
	c.Pitch = mgl32.Clamp(c.Pitch, -maxPitch, maxPitch)
	c.Distance = max(c.Distance, minDistance)
	h := c.Distance * math32.Cos(c.Pitch)
	c.Eye = c.Target.Add(mgl32.Vec3{
		h * math32.Cos(c.Yaw),
		c.Distance * math32.Sin(c.Pitch),
		h * math32.Sin(c.Yaw),
	})
}

// ViewMatrix returns the look-at matrix for the current eye and target.
func (c *Camera) ViewMatrix() mgl32.Mat4 {
	return ViewMatrix(c.Eye, c.Target, c.Up)
}

// Apply moves the camera by one step of input. Input is ignored while
// warping.
func (c *Camera) Apply(ctl Controls) {
	if c.Warping() {
		return
	}
	c.Yaw += ctl.Yaw * c.RotationSpeed
	c.Pitch += ctl.Pitch * c.RotationSpeed
	c.Distance -= ctl.Zoom * c.ZoomSpeed

	forward := c.Target.Sub(c.Eye)
	forward[1] = 0
	forward = normalize(forward)
	right := normalize(forward.Cross(c.Up))
	up := normalize(c.Up)

	pan := right.Mul(ctl.Strafe).
		Add(forward.Mul(ctl.Forward)).
		Add(up.Mul(ctl.Lift)).
		Mul(c.PanSpeed)
	c.Target = c.Target.Add(pan)
	c.updateEye()
}

// Track eases the target toward position, keeping the orbit parameters.
func (c *Camera) Track(position mgl32.Vec3) {
	if c.Warping() {
		return
	}
	c.Target = c.Target.Add(position.Sub(c.Target).Mul(trackSmoothing))
	c.updateEye()
}

// WarpTo starts a smooth transition to a new eye and target over duration
// seconds. A non-positive duration jumps immediately.
func (c *Camera) WarpTo(eye, target mgl32.Vec3, duration float32) {
	if duration <= 0 {
		c.warp = nil
		c.lookFrom(eye, target)
		return
	}
	c.warp = &warp{
		fromEye:    c.Eye,
		fromTarget: c.Target,
		toEye:      eye,
		toTarget:   target,
		duration:   duration,
	}
}

// Update advances a running warp by dt seconds.
func (c *Camera) Update(dt float32) {
	w := c.warp
	if w == nil {
		return
	}
	w.elapsed += dt
	if w.elapsed >= w.duration {
		c.warp = nil
		c.lookFrom(w.toEye, w.toTarget)
		return
	}
	s := smoothstep(0, 1, w.elapsed/w.duration)
	c.Eye = mixVec(w.fromEye, w.toEye, s)
	c.Target = mixVec(w.fromTarget, w.toTarget, s)
}

// Warping reports whether a warp is in progress.
func (c *Camera) Warping() bool {
	return c.warp != nil
}

// WarpProgress is the linear progress of the current warp in [0,1]; 1 when
// idle.
func (c *Camera) WarpProgress() float32 {
	if c.warp == nil {
		return 1
	}
	return clamp01(c.warp.elapsed / c.warp.duration)
}
