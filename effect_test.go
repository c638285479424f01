package stellar

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func allEffects() []Effect {
	out := make([]Effect, effectCount)
	for i := range out {
		out[i] = Effect(i)
	}
	return out
}

func TestEffectRanges(t *testing.T) {
	for _, e := range allEffects() {
		t.Run(e.String(), func(t *testing.T) {
			for _, f := range sampleFragments {
				for _, tm := range sampleTimes {
					c := e.Apply(f, tm)
					for k, v := range c {
						require.False(t, math.IsNaN(float64(v)), "channel %d NaN at %v t=%g", k, f.WorldPosition, tm)
						assert.GreaterOrEqual(t, v, float32(0))
						assert.LessOrEqual(t, v, float32(1))
					}
					assert.Equal(t, c, e.Apply(f, tm), "same inputs, same color")
				}
			}
		})
	}
}

func TestEffectAnimates(t *testing.T) {
	f := Fragment{WorldPosition: mgl32.Vec3{0.3, -0.8, 0.52}, Color: mgl32.Vec3{0.6, 0.6, 0.6}}
	for _, e := range allEffects()[1:] {
		t.Run(e.String(), func(t *testing.T) {
			a, b := e.Apply(f, 0), e.Apply(f, 2)
			assert.NotEqual(t, a, b)
		})
	}
	assert.Equal(t, f.Color, NoEffect.Apply(f, 3))
	assert.Equal(t, f.Color, Effect(99).Apply(f, 3))
}

func TestEffectValues(t *testing.T) {
	white := Fragment{Color: White}
	tests := []struct {
		name string
		e    Effect
		f    Fragment
		t    float32
		want mgl32.Vec3
	}{
		// sin(0)*0.3+0.7
		{"breathing at rest", Breathing, white, 0, mgl32.Vec3{0.7, 0.7, 0.7}},
		// floor(0.2) is even
		{"cool stripe", Stripes, Fragment{WorldPosition: mgl32.Vec3{0, 0.2, 0}, Color: White}, 0, stripeCool},
		{"warm stripe", Stripes, Fragment{WorldPosition: mgl32.Vec3{0, 1.2, 0}, Color: White}, 0, stripeWarm},
		{"stripes scroll", Stripes, Fragment{WorldPosition: mgl32.Vec3{0, 0.2, 0}, Color: White}, 2, stripeWarm},
		// distance 0 at t=0 gives sin(0), so r=0.5
		{"ripples at origin", Ripples, Fragment{Color: Black}, 0, mgl32.Vec3{0.25, 0.25, 0.125}},
		// hue 0 on the +z axis
		{"rainbow on z axis", Rainbow, Fragment{WorldPosition: mgl32.Vec3{0, 0, 1}, Color: Black}, 0,
			mgl32.Vec3{0, 0.5 * float32(math.Abs(math.Sin(2))), 0.5 * float32(math.Abs(math.Sin(4)))}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertVec3InDelta(t, tt.want, tt.e.Apply(tt.f, tt.t), 1e-5)
		})
	}
}

func TestParseEffect(t *testing.T) {
	tests := []struct {
		in   string
		want Effect
	}{
		{"", NoEffect},
		{"none", NoEffect},
		{"Rainbow", Rainbow},
		{" ripples ", Ripples},
		{"BREATHING", Breathing},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseEffect(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := ParseEffect("strobe")
	assert.ErrorIs(t, err, ErrUnknownEffect)
}

func TestEffectText(t *testing.T) {
	for _, e := range allEffects() {
		text, err := e.MarshalText()
		require.NoError(t, err)
		var back Effect
		require.NoError(t, back.UnmarshalText(text))
		assert.Equal(t, e, back)
	}
	assert.Equal(t, "Effect(9)", Effect(9).String())
	_, err := Effect(9).MarshalText()
	assert.ErrorIs(t, err, ErrUnknownEffect)
}

func TestEffectShader(t *testing.T) {
	u := NewUniforms(mgl32.Ident4(), mgl32.Ident4(), mgl32.Ident4(), mgl32.Ident4(), 1.5)
	v := NewVertex(mgl32.Vec3{0.3, -0.8, 0.52}, mgl32.Vec3{}, mgl32.Vec2{})

	sun := EffectShader{Surface: Sun, Effect: Waves}
	assert.Equal(t, SunVertex(v, u), sun.Vertex(v, u), "geometry follows the surface")
	rocky := EffectShader{Surface: Rocky, Effect: Waves}
	assert.Equal(t, TransformVertex(v, u), rocky.Vertex(v, u))

	f := Fragment{WorldPosition: v.Position, Color: White}
	assert.Equal(t, Waves.Apply(f, 1.5), rocky.Fragment(f, u))
}

func TestSceneDrawsEffects(t *testing.T) {
	s := loadTestScene(t)
	state := s.System.Snapshot(3)
	phobos, ok := state.Body("phobos")
	require.True(t, ok)
	assert.Equal(t, Rainbow, phobos.Effect)

	plain := loadTestScene(t)
	plainState := plain.System.Snapshot(3)
	for i := range plainState.Bodies {
		plainState.Bodies[i].Effect = NoEffect
	}
	a := s.RenderFrame(state)
	b := plain.RenderFrame(plainState)
	assert.Equal(t, a.Triangles, b.Triangles)
	assert.Equal(t, a.Fragments, b.Fragments)
}
