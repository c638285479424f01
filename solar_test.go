package stellar

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSystem(t *testing.T) *System {
	t.Helper()
	s, err := NewSystem([]Body{
		// satellites may be listed before their parents
		{Name: "moon", Surface: Moon, Radius: 0.2, Parent: "planet", OrbitRadius: 1, OrbitPeriod: 4},
		{Name: "star", Surface: Sun, Radius: 2, SpinPeriod: 10},
		{Name: "planet", Surface: Rocky, Radius: 0.5, OrbitRadius: 5, OrbitPeriod: 20, Phase: math32.Pi / 2, Tilt: 0.4},
	})
	require.NoError(t, err)
	return s
}

func TestSnapshotPositions(t *testing.T) {
	s := testSystem(t)
	tests := []struct {
		time         float32
		planet, moon mgl32.Vec3
	}{
		{0, mgl32.Vec3{0, 0, 5}, mgl32.Vec3{1, 0, 5}},
		{5, mgl32.Vec3{-5, 0, 0}, mgl32.Vec3{-5, 0, 1}},
		{1, mgl32.Vec3{-5 * math32.Sin(math32.Pi/10), 0, 5 * math32.Cos(math32.Pi/10)}, mgl32.Vec3{}},
	}
	for _, tt := range tests {
		state := s.Snapshot(tt.time)
		planet, ok := state.Body("planet")
		require.True(t, ok)
		assertVec3InDelta(t, tt.planet, planet.Position, 1e-4, "planet at t=%g", tt.time)

		moon, _ := state.Body("moon")
		// moon orbits relative to the planet
		offset := moon.Position.Sub(planet.Position)
		assert.InDelta(t, 1, offset.Len(), 1e-5)
		assert.InDelta(t, 0, offset.Y(), 1e-6)
		if tt.moon != (mgl32.Vec3{}) {
			assertVec3InDelta(t, tt.moon, moon.Position, 1e-4, "moon at t=%g", tt.time)
		}
	}
}

func TestSnapshotOrderAndState(t *testing.T) {
	state := testSystem(t).Snapshot(2.5)
	require.Len(t, state.Bodies, 3)
	assert.Equal(t, "moon", state.Bodies[0].Name)
	assert.Equal(t, "star", state.Bodies[1].Name)
	assert.Equal(t, "planet", state.Bodies[2].Name)
	assert.Equal(t, float32(2.5), state.Time)

	star := state.Bodies[1]
	assert.Equal(t, mgl32.Vec3{}, star.Position)
	assert.InDelta(t, 2*math32.Pi*0.25, star.Rotation.Y(), 1e-6)
	assert.Equal(t, float32(2), star.Scale)
	assert.Equal(t, float32(2), star.Extent())

	planet := state.Bodies[2]
	assert.Equal(t, float32(0), planet.Rotation.Y(), "no spin period means no spin")
	assert.Equal(t, float32(0.4), planet.Rotation.Z())

	_, ok := state.Body("pluto")
	assert.False(t, ok)
}

func TestLightPosition(t *testing.T) {
	state := FrameState{Bodies: []BodyState{
		{Name: "rock", Surface: Rocky, Position: mgl32.Vec3{1, 2, 3}},
		{Name: "star", Surface: Sun, Position: mgl32.Vec3{4, 5, 6}},
	}}
	assert.Equal(t, mgl32.Vec3{4, 5, 6}, state.LightPosition())
	assert.Equal(t, mgl32.Vec3{}, FrameState{}.LightPosition())
}

func TestNewSystemErrors(t *testing.T) {
	tests := []struct {
		name   string
		bodies []Body
		want   string
	}{
		{"unnamed", []Body{{}}, "has no name"},
		{"duplicate", []Body{{Name: "a"}, {Name: "a"}}, `duplicate body "a"`},
		{"unknown parent", []Body{{Name: "a", Parent: "b"}}, `unknown parent "b"`},
		{"self orbit", []Body{{Name: "a", Parent: "a"}}, "orbit cycle"},
		{"long cycle", []Body{{Name: "a", Parent: "c"}, {Name: "b", Parent: "a"}, {Name: "c", Parent: "b"}}, "orbit cycle"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewSystem(tt.bodies)
			assert.ErrorContains(t, err, tt.want)
		})
	}
}

func TestBodyStateExtent(t *testing.T) {
	tests := []struct {
		name string
		b    BodyState
		want float32
	}{
		{"plain", BodyState{Scale: 1.5}, 1.5},
		{"ringed", BodyState{Scale: 2, HasRings: true, RingOuter: 2.5}, 5},
		{"rings inside body", BodyState{Scale: 2, HasRings: true, RingOuter: 0.5}, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, tt.b.Extent(), 1e-6)
		})
	}
}

func TestBodyStateObject(t *testing.T) {
	mesh := GenerateSphere(1, 4)
	b := BodyState{Name: "x", Surface: Ice, Position: mgl32.Vec3{1, 0, 0}, Scale: 3}
	o := b.Object(mesh)
	assert.Same(t, mesh, o.Mesh)
	assert.Equal(t, Ice, o.Surface)

	p := transform(o.Matrix(), mgl32.Vec4{1, 0, 0, 1}).Vec3()
	assertVec3InDelta(t, mgl32.Vec3{4, 0, 0}, p, 1e-6)
}
