package stellar

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func TestNoiseRanges(t *testing.T) {
	for x := float32(-20); x <= 20; x += 1.37 {
		for y := float32(-5); y <= 5; y += 0.91 {
			p := mgl32.Vec3{x, y, x*0.3 - y}
			h := hash3(x, y, p[2])
			assert.GreaterOrEqual(t, h, float32(0))
			assert.Less(t, h, float32(1))

			n := fbm(p, 5)
			assert.GreaterOrEqual(t, n, float32(-1))
			assert.LessOrEqual(t, n, float32(1))

			fr := fract(x * y)
			assert.GreaterOrEqual(t, fr, float32(0))
			assert.Less(t, fr, float32(1))
		}
	}
	assert.Equal(t, float32(0), fbm(mgl32.Vec3{1, 2, 3}, 0))
}

func TestRamp(t *testing.T) {
	stops := []mgl32.Vec3{{0, 0, 0}, {1, 0, 0}, {1, 1, 1}}
	tests := []struct {
		name string
		t    float32
		want mgl32.Vec3
	}{
		{"start", 0, mgl32.Vec3{0, 0, 0}},
		{"below", -3, mgl32.Vec3{0, 0, 0}},
		{"middle stop", 0.5, mgl32.Vec3{1, 0, 0}},
		{"between", 0.25, mgl32.Vec3{0.5, 0, 0}},
		{"end", 1, mgl32.Vec3{1, 1, 1}},
		{"above", 9, mgl32.Vec3{1, 1, 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertVec3InDelta(t, tt.want, ramp(stops, tt.t), 1e-3)
		})
	}
	assert.Equal(t, Black, ramp(nil, 0.5))
	assert.Equal(t, White, ramp([]mgl32.Vec3{White}, 0.5))
}

func TestSmoothstep(t *testing.T) {
	assert.Equal(t, float32(0), smoothstep(0.2, 0.8, 0.1))
	assert.Equal(t, float32(1), smoothstep(0.2, 0.8, 0.9))
	assert.InDelta(t, 0.5, smoothstep(0.2, 0.8, 0.5), 1e-6)
}

func TestSphericalAngles(t *testing.T) {
	lat, lon := sphericalAngles(mgl32.Vec3{0, 2, 0})
	assert.InDelta(t, mgl32.DegToRad(90), lat, 1e-5)
	assert.InDelta(t, 0, lon, 1e-6)

	lat, lon = sphericalAngles(mgl32.Vec3{0, 0, 3})
	assert.InDelta(t, 0, lat, 1e-6)
	assert.InDelta(t, mgl32.DegToRad(90), lon, 1e-5)

	lat, lon = sphericalAngles(mgl32.Vec3{})
	assert.Zero(t, lat)
	assert.Zero(t, lon)
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, mgl32.Vec3{}, normalize(mgl32.Vec3{}))
	assert.InDelta(t, 1, normalize(mgl32.Vec3{3, -4, 12}).Len(), 1e-6)
}

func TestHexColor(t *testing.T) {
	tests := []struct {
		in   string
		want mgl32.Vec3
		ok   bool
	}{
		{"#ff0000", mgl32.Vec3{1, 0, 0}, true},
		{"00ff00", mgl32.Vec3{0, 1, 0}, true},
		{"#fff", mgl32.Vec3{1, 1, 1}, true},
		{"#333366", mgl32.Vec3{0.2, 0.2, 0.4}, true},
		{"#12345", Black, false},
		{"#gggggg", Black, false},
		{"", Black, false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			c, err := ParseHexColor(tt.in)
			if !tt.ok {
				assert.Error(t, err)
				assert.Equal(t, Black, HexColor(tt.in))
				return
			}
			assert.NoError(t, err)
			assertVec3InDelta(t, tt.want, c, 1e-6)
		})
	}
}
