package stellar

import (
	"fmt"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Body is a celestial body (or ship) following a circular orbit.
type Body struct {
	Name    string
	Surface SurfaceType
	Radius  float32

	OrbitRadius float32
	OrbitPeriod float32 // seconds per revolution, 0 keeps the body still
	Phase       float32 // radians at t=0
	Parent      string  // orbit center, empty for the origin

	SpinPeriod float32 // seconds per rotation, 0 disables spin
	Tilt       float32 // axial tilt in radians

	Rings  *Rings
	Effect Effect // replaces the surface coloring when set
}

// Rings describes a flat ring system in multiples of the body radius.
type Rings struct {
	Inner float32
	Outer float32
}

// BodyState is where a body is during one frame.
type BodyState struct {
	Name     string
	Surface  SurfaceType
	Position mgl32.Vec3
	Rotation mgl32.Vec3
	Scale    float32
	Effect   Effect
	HasRings bool
	// RingOuter is the outer ring radius in body radii.
	RingOuter float32
}

// Extent is the bounding radius of the body, rings included.
func (b BodyState) Extent() float32 {
	if b.HasRings {
		return b.Scale * max(1, b.RingOuter)
	}
	return b.Scale
}

// Object returns the body as a drawable object with the given mesh.
func (b BodyState) Object(mesh *Mesh) *Object {
	return &Object{
		Name:        b.Name,
		Mesh:        mesh,
		Surface:     b.Surface,
		Translation: b.Position,
		Rotation:    b.Rotation,
		Scale:       b.Scale,
	}
}

// FrameState is an immutable snapshot of the system at one instant. Draw
// calls read it; nothing writes to it after Snapshot returns.
type FrameState struct {
	Time   float32
	Bodies []BodyState
}

// Body looks up a body state by name.
func (f FrameState) Body(name string) (BodyState, bool) {
	for _, b := range f.Bodies {
		if b.Name == name {
			return b, true
		}
	}
	return BodyState{}, false
}

// LightPosition is the position of the first sun in the frame, or the
// origin when there is none.
func (f FrameState) LightPosition() mgl32.Vec3 {
	for _, b := range f.Bodies {
		if b.Surface == Sun {
			return b.Position
		}
	}
	return mgl32.Vec3{}
}

// System is a set of bodies with parent-relative orbits.
type System struct {
	bodies []Body
	order  []int // parents before children
}

// NewSystem validates the bodies and orders them so parents are positioned
// before their satellites.
func NewSystem(bodies []Body) (*System, error) {
	index := make(map[string]int, len(bodies))
	for i, b := range bodies {
		if b.Name == "" {
			return nil, fmt.Errorf("stellar: body %d has no name", i)
		}
		if _, dup := index[b.Name]; dup {
			return nil, fmt.Errorf("stellar: duplicate body %q", b.Name)
		}
		index[b.Name] = i
	}

	const (
		unvisited = iota
		visiting
		done
	)
	state := make([]int, len(bodies))
	order := make([]int, 0, len(bodies))
	var visit func(i int) error
	visit = func(i int) error {
		switch state[i] {
		case done:
			return nil
		case visiting:
			return fmt.Errorf("stellar: orbit cycle through %q", bodies[i].Name)
		}
		state[i] = visiting
		if p := bodies[i].Parent; p != "" {
			j, ok := index[p]
			if !ok {
				return fmt.Errorf("stellar: body %q orbits unknown parent %q", bodies[i].Name, p)
			}
			if err := visit(j); err != nil {
				return err
			}
		}
		state[i] = done
		order = append(order, i)
		return nil
	}
	for i := range bodies {
		if err := visit(i); err != nil {
			return nil, err
		}
	}

	return &System{
		bodies: append([]Body(nil), bodies...),
		order:  order,
	}, nil
}

// Bodies returns a copy of the configured bodies.
func (s *System) Bodies() []Body {
	return append([]Body(nil), s.bodies...)
}

// Snapshot computes every body's state at time t. The result is in the
// order the bodies were configured.
func (s *System) Snapshot(t float32) FrameState {
	states := make([]BodyState, len(s.bodies))
	positions := make(map[string]mgl32.Vec3, len(s.bodies))
	for _, i := range s.order {
		b := s.bodies[i]
		center := positions[b.Parent]
		pos := center.Add(orbitOffset(b, t))
		positions[b.Name] = pos
		states[i] = BodyState{
			Name:     b.Name,
			Surface:  b.Surface,
			Position: pos,
			Rotation: mgl32.Vec3{0, revolutions(t, b.SpinPeriod), b.Tilt},
			Scale:    b.Radius,
			Effect:   b.Effect,
			HasRings: b.Rings != nil,
		}
		if b.Rings != nil {
			states[i].RingOuter = b.Rings.Outer
		}
	}
	return FrameState{Time: t, Bodies: states}
}

func orbitOffset(b Body, t float32) mgl32.Vec3 {
	if b.OrbitRadius == 0 {
		return mgl32.Vec3{}
	}
	a := b.Phase + revolutions(t, b.OrbitPeriod)
	return mgl32.Vec3{b.OrbitRadius * math32.Cos(a), 0, b.OrbitRadius * math32.Sin(a)}
}

// revolutions converts elapsed time to an angle for a given period.
func revolutions(t, period float32) float32 {
	if period == 0 {
		return 0
	}
	return 2 * math32.Pi * t / period
}
