package stellar

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

const (
	DefaultWidth          = 800
	DefaultHeight         = 600
	DefaultBackground     = "#333366"
	DefaultFOV            = 60
	DefaultNear           = 0.1
	DefaultFar            = 100
	DefaultSphereSegments = 32
	DefaultLODDistance    = 40
)

// Config describes a scene: output size, projection, camera and bodies.
type Config struct {
	Width      int    `yaml:"width" toml:"width"`
	Height     int    `yaml:"height" toml:"height"`
	Background string `yaml:"background" toml:"background"`

	FOV  float32 `yaml:"fov" toml:"fov"` // vertical, degrees
	Near float32 `yaml:"near" toml:"near"`
	Far  float32 `yaml:"far" toml:"far"`

	SphereSegments int     `yaml:"sphereSegments" toml:"sphereSegments"`
	LODDistance    float32 `yaml:"lodDistance" toml:"lodDistance"` // negative disables LOD
	Workers        int     `yaml:"workers,omitempty" toml:"workers,omitempty"`

	Camera CameraConfig `yaml:"camera" toml:"camera"`
	Bodies []BodyConfig `yaml:"bodies" toml:"bodies"`
}

type CameraConfig struct {
	Eye    [3]float32 `yaml:"eye" toml:"eye"`
	Target [3]float32 `yaml:"target" toml:"target"`
	Up     [3]float32 `yaml:"up" toml:"up"`
}

type BodyConfig struct {
	Name     string      `yaml:"name" toml:"name"`
	Surface  SurfaceType `yaml:"surface" toml:"surface"`
	Radius   float32     `yaml:"radius" toml:"radius"`
	Orbit    OrbitConfig `yaml:"orbit,omitempty" toml:"orbit,omitempty"`
	Spin     float32     `yaml:"spin,omitempty" toml:"spin,omitempty"` // seconds per rotation
	Tilt     float32     `yaml:"tilt,omitempty" toml:"tilt,omitempty"` // degrees
	Rings    *RingConfig `yaml:"rings,omitempty" toml:"rings,omitempty"`
	Mesh     string      `yaml:"mesh,omitempty" toml:"mesh,omitempty"`
	Segments int         `yaml:"segments,omitempty" toml:"segments,omitempty"`
	Color    string      `yaml:"color,omitempty" toml:"color,omitempty"`
	Effect   Effect      `yaml:"effect,omitempty" toml:"effect,omitempty"`
}

type OrbitConfig struct {
	Radius float32 `yaml:"radius" toml:"radius"`
	Period float32 `yaml:"period" toml:"period"`                   // seconds
	Phase  float32 `yaml:"phase,omitempty" toml:"phase,omitempty"` // degrees
	Parent string  `yaml:"parent,omitempty" toml:"parent,omitempty"`
}

type RingConfig struct {
	Inner float32 `yaml:"inner" toml:"inner"`
	Outer float32 `yaml:"outer" toml:"outer"`
}

// DefaultConfig returns the built-in solar system.
func DefaultConfig() *Config {
	c := &Config{
		Camera: CameraConfig{
			Eye:    [3]float32{0, 8, 28},
			Target: [3]float32{0, 0, 0},
			Up:     [3]float32{0, 1, 0},
		},
		Bodies: []BodyConfig{
			{Name: "sol", Surface: Sun, Radius: 2.5, Spin: 60},
			{Name: "vulcan", Surface: Volcanic, Radius: 0.5, Spin: 12, Orbit: OrbitConfig{Radius: 4, Period: 20, Phase: 30}},
			{Name: "terra", Surface: Rocky, Radius: 0.8, Spin: 10, Tilt: 23, Orbit: OrbitConfig{Radius: 6.5, Period: 40, Phase: 120}},
			{Name: "luna", Surface: Moon, Radius: 0.25, Spin: 8, Orbit: OrbitConfig{Radius: 1.4, Period: 8, Parent: "terra"}},
			{Name: "nexus", Surface: SciFi, Radius: 0.45, Spin: 6, Orbit: OrbitConfig{Radius: 9, Period: 55, Phase: 250}},
			{Name: "jove", Surface: GasGiant, Radius: 1.5, Spin: 7, Tilt: 12, Orbit: OrbitConfig{Radius: 13, Period: 90, Phase: 200}, Rings: &RingConfig{Inner: 1.4, Outer: 2.3}},
			{Name: "glacia", Surface: Ice, Radius: 0.7, Spin: 14, Orbit: OrbitConfig{Radius: 17, Period: 130, Phase: 300}},
			{Name: "ship", Surface: Hull, Radius: 0.15, Segments: 6, Orbit: OrbitConfig{Radius: 1.1, Period: 5, Parent: "terra"}},
		},
	}
	c.normalize()
	return c
}

// LoadConfig reads a YAML (.yaml, .yml) or TOML (.toml) scene file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("stellar: read config: %w", err)
	}
	var format string
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		format = "yaml"
	case ".toml":
		format = "toml"
	default:
		return nil, fmt.Errorf("%w: config %q", ErrUnsupportedFormat, path)
	}
	c, err := ParseConfig(data, format)
	if err != nil {
		return nil, fmt.Errorf("stellar: %s: %w", filepath.Base(path), err)
	}
	// mesh paths are relative to the config file
	dir := filepath.Dir(path)
	for i, b := range c.Bodies {
		if b.Mesh != "" && !filepath.IsAbs(b.Mesh) {
			c.Bodies[i].Mesh = filepath.Join(dir, b.Mesh)
		}
	}
	return c, nil
}

// ParseConfig decodes a "yaml" or "toml" document, fills in defaults and
// validates the result.
func ParseConfig(data []byte, format string) (*Config, error) {
	var c Config
	switch format {
	case "yaml":
		if err := yaml.Unmarshal(data, &c); err != nil {
			return nil, fmt.Errorf("decode yaml: %w", err)
		}
	case "toml":
		if err := toml.Unmarshal(data, &c); err != nil {
			return nil, fmt.Errorf("decode toml: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: config format %q", ErrUnsupportedFormat, format)
	}
	c.normalize()
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

func (c *Config) normalize() {
	if c.Width == 0 {
		c.Width = DefaultWidth
	}
	if c.Height == 0 {
		c.Height = DefaultHeight
	}
	if c.Background == "" {
		c.Background = DefaultBackground
	}
	if c.FOV == 0 {
		c.FOV = DefaultFOV
	}
	if c.Near == 0 {
		c.Near = DefaultNear
	}
	if c.Far == 0 {
		c.Far = DefaultFar
	}
	if c.SphereSegments == 0 {
		c.SphereSegments = DefaultSphereSegments
	}
	if c.LODDistance == 0 {
		c.LODDistance = DefaultLODDistance
	}
	if c.Camera.Up == ([3]float32{}) {
		c.Camera.Up = [3]float32{0, 1, 0}
	}
	if c.Camera.Eye == c.Camera.Target {
		c.Camera.Eye = [3]float32{c.Camera.Target[0], c.Camera.Target[1] + 8, c.Camera.Target[2] + 28}
	}
	for i := range c.Bodies {
		if c.Bodies[i].Radius == 0 {
			c.Bodies[i].Radius = 1
		}
	}
}

// Validate reports every problem with the configuration.
func (c *Config) Validate() error {
	var errs []error
	if c.Width <= 0 || c.Height <= 0 {
		errs = append(errs, fmt.Errorf("invalid size %dx%d", c.Width, c.Height))
	}
	if _, err := ParseHexColor(c.Background); err != nil {
		errs = append(errs, err)
	}
	if c.FOV <= 0 || c.FOV >= 180 {
		errs = append(errs, fmt.Errorf("fov %g out of range (0, 180)", c.FOV))
	}
	if c.Near <= 0 || c.Near >= c.Far {
		errs = append(errs, fmt.Errorf("invalid clip planes near=%g far=%g", c.Near, c.Far))
	}
	for _, b := range c.Bodies {
		if b.Radius < 0 {
			errs = append(errs, fmt.Errorf("body %q: negative radius", b.Name))
		}
		if b.Rings != nil && (b.Rings.Inner <= 0 || b.Rings.Inner >= b.Rings.Outer) {
			errs = append(errs, fmt.Errorf("body %q: invalid rings %g..%g", b.Name, b.Rings.Inner, b.Rings.Outer))
		}
		if b.Color != "" {
			if _, err := ParseHexColor(b.Color); err != nil {
				errs = append(errs, fmt.Errorf("body %q: %w", b.Name, err))
			}
		}
	}
	if _, err := c.System(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// System builds the orbital system described by the bodies.
func (c *Config) System() (*System, error) {
	bodies := make([]Body, len(c.Bodies))
	for i, b := range c.Bodies {
		bodies[i] = Body{
			Name:        b.Name,
			Surface:     b.Surface,
			Radius:      b.Radius,
			OrbitRadius: b.Orbit.Radius,
			OrbitPeriod: b.Orbit.Period,
			Phase:       mgl32.DegToRad(b.Orbit.Phase),
			Parent:      b.Orbit.Parent,
			SpinPeriod:  b.Spin,
			Tilt:        mgl32.DegToRad(b.Tilt),
			Effect:      b.Effect,
		}
		if b.Rings != nil {
			bodies[i].Rings = &Rings{Inner: b.Rings.Inner, Outer: b.Rings.Outer}
		}
	}
	return NewSystem(bodies)
}

// NewCamera builds the configured camera.
func (c *Config) NewCamera() *Camera {
	return NewCamera(mgl32.Vec3(c.Camera.Eye), mgl32.Vec3(c.Camera.Target), mgl32.Vec3(c.Camera.Up))
}
