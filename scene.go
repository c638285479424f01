package stellar

import (
	"fmt"
	"image"
	"io"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// lodFactor is the triangle ratio kept for distant bodies.
const lodFactor = 0.25

// minLODTriangles is the smallest mesh that gets a simplified copy.
const minLODTriangles = 64

// Scene renders a System through a Camera into a Context.
type Scene struct {
	Context *Context
	System  *System
	Camera  *Camera

	FOV         float32 // radians
	Near, Far   float32
	LODDistance float32

	meshes []bodyMeshes // parallel to System.Bodies()
}

type bodyMeshes struct {
	full  *Mesh
	lod   *Mesh // nil when the body has no distant variant
	rings *Mesh
}

// NewScene builds the system, camera and meshes described by c. Mesh paths
// are used as given; LoadConfig has already made them relative to the config
// file.
func NewScene(c *Config) (*Scene, error) {
	system, err := c.System()
	if err != nil {
		return nil, err
	}
	bg, err := ParseHexColor(c.Background)
	if err != nil {
		return nil, err
	}

	dc := NewContext(c.Width, c.Height)
	dc.SetBackground(bg)
	dc.Workers = c.Workers
	dc.Clear()

	s := &Scene{
		Context:     dc,
		System:      system,
		Camera:      c.NewCamera(),
		FOV:         mgl32.DegToRad(c.FOV),
		Near:        c.Near,
		Far:         c.Far,
		LODDistance: c.LODDistance,
		meshes:      make([]bodyMeshes, len(c.Bodies)),
	}

	spheres := map[int]*Mesh{}
	lods := map[*Mesh]*Mesh{}
	for i, b := range c.Bodies {
		var m bodyMeshes
		if b.Mesh != "" {
			m.full, err = LoadMesh(b.Mesh)
			if err != nil {
				return nil, fmt.Errorf("stellar: body %q: %w", b.Name, err)
			}
		} else {
			segments := b.Segments
			if segments == 0 {
				segments = c.SphereSegments
			}
			if spheres[segments] == nil {
				spheres[segments] = GenerateSphere(1, segments)
			}
			m.full = spheres[segments]
		}
		if b.Color != "" {
			m.full = &Mesh{Vertices: append([]Vertex(nil), m.full.Vertices...)}
			m.full.SetColor(HexColor(b.Color))
		}
		if c.LODDistance > 0 && b.Surface != Sun && m.full.TriangleCount() >= minLODTriangles {
			lod, ok := lods[m.full]
			if !ok {
				lod = m.full.Simplify(lodFactor)
				if lod.TriangleCount() == 0 {
					Logger().Warn("lod simplification produced no triangles", "body", b.Name)
					lod = nil
				}
				lods[m.full] = lod
			}
			m.lod = lod
		}
		if b.Rings != nil {
			m.rings = GenerateRings(b.Rings.Inner, b.Rings.Outer, 4, c.SphereSegments*2)
		}
		s.meshes[i] = m
	}
	Logger().Info("scene ready", "bodies", len(c.Bodies), "width", c.Width, "height", c.Height)
	return s, nil
}

// Projection returns the perspective matrix for the frame aspect ratio.
func (s *Scene) Projection() mgl32.Mat4 {
	aspect := float32(s.Context.Width) / float32(max(s.Context.Height, 1))
	return ProjectionMatrix(s.FOV, aspect, s.Near, s.Far)
}

// Viewport returns the viewport matrix covering the whole frame.
func (s *Scene) Viewport() mgl32.Mat4 {
	return ViewportMatrix(0, 0, float32(s.Context.Width), float32(s.Context.Height))
}

// Render snapshots the system at time t and renders it from the scene
// camera.
func (s *Scene) Render(t float32) DrawStats {
	return s.RenderFrame(s.System.Snapshot(t))
}

// RenderFrame clears the frame buffer and draws every body of state.
func (s *Scene) RenderFrame(state FrameState) DrawStats {
	dc := s.Context
	dc.Clear()

	view := s.Camera.ViewMatrix()
	projection := s.Projection()
	viewport := s.Viewport()
	light := Light{Position: state.LightPosition()}

	var stats DrawStats
	for i, b := range state.Bodies {
		m := s.meshes[i]
		mesh := m.full
		if m.lod != nil && b.Position.Sub(s.Camera.Eye).Len() > s.LODDistance {
			mesh = m.lod
		}
		o := b.Object(mesh)
		u := NewUniforms(o.Matrix(), view, projection, viewport, state.Time)
		local := o.LocalLight(light)
		var shader Shader = NewSurfaceShader(b.Surface)
		if b.Effect != NoEffect {
			shader = EffectShader{Surface: b.Surface, Effect: b.Effect}
		}
		stats = stats.Add(dc.Draw(mesh.Vertices, u, local, shader))
		if m.rings != nil {
			stats = stats.Add(dc.DrawSurface(m.rings.Vertices, u, local, Ring))
		}
	}
	Logger().Debug("frame rendered",
		"time", state.Time,
		"triangles", stats.Triangles,
		"fragments", stats.Fragments,
		"written", stats.Written)
	return stats
}

// Fit moves the camera back along its current direction until every body
// of state, rings included, is inside the field of view, with 5% padding.
func (s *Scene) Fit(state FrameState) {
	var extent float32
	for _, b := range state.Bodies {
		d := b.Position.Sub(s.Camera.Target).Len() + b.Extent()
		extent = max(extent, d)
	}
	if extent == 0 {
		return
	}
	aspect := float32(s.Context.Width) / float32(max(s.Context.Height, 1))
	half := s.FOV / 2
	halfX := math32.Atan(math32.Tan(half) * aspect)
	distance := extent / math32.Sin(min(half, halfX)) * 1.05
	s.Camera.Distance = min(distance, s.Far*0.9)
	s.Camera.updateEye()
}

// Image returns the current frame as an 8-bit image.
func (s *Scene) Image() *image.NRGBA {
	return s.Context.Frame.Image()
}

// Draw renders time t and saves it to path; the extension picks the format.
func (s *Scene) Draw(t float32, path string) error {
	s.Render(t)
	return SaveImage(path, s.Image())
}

// DrawToWriter renders time t and encodes it to w in the given format.
func (s *Scene) DrawToWriter(t float32, w io.Writer, format string) error {
	s.Render(t)
	return EncodeImage(w, s.Image(), format)
}

// GenerateScene loads the config at configPath (or the built-in system when
// empty), renders time t and writes the image to outPath.
func GenerateScene(configPath, outPath string, t float32) error {
	c := DefaultConfig()
	if configPath != "" {
		var err error
		c, err = LoadConfig(configPath)
		if err != nil {
			return err
		}
	}
	s, err := NewScene(c)
	if err != nil {
		return err
	}
	return s.Draw(t, outPath)
}
