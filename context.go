package stellar

import (
	"sync"

	"github.com/go-gl/mathgl/mgl32"
)

// Context drives the pipeline for one output image: vertex stage, triangle
// assembly, rasterization, fragment stage and depth-tested writes.
type Context struct {
	Width  int
	Height int
	Frame  *FrameBuffer

	// Workers is the number of goroutines rasterizing triangles of a single
	// draw. Zero or one draws sequentially.
	Workers int

	locks []sync.Mutex
}

// DrawStats counts the work done by draw calls.
type DrawStats struct {
	Triangles int // triangles assembled
	Fragments int // fragments produced by the rasterizer
	Written   int // fragments that passed the depth test
	Culled    int // triangles outside the near/far depth range
}

func (s DrawStats) Add(o DrawStats) DrawStats {
	return DrawStats{
		Triangles: s.Triangles + o.Triangles,
		Fragments: s.Fragments + o.Fragments,
		Written:   s.Written + o.Written,
		Culled:    s.Culled + o.Culled,
	}
}

// NewContext allocates a context with a frame buffer of the given size.
func NewContext(width, height int) *Context {
	return &Context{
		Width:  width,
		Height: height,
		Frame:  NewFrameBuffer(width, height),
		locks:  make([]sync.Mutex, 256),
	}
}

// SetBackground sets the frame buffer clear color.
func (dc *Context) SetBackground(c mgl32.Vec3) {
	dc.Frame.SetBackground(c)
}

// Clear resets the frame buffer. Call it once before the draws of a frame.
func (dc *Context) Clear() {
	dc.Frame.Clear()
}

// DrawSurface draws vertices with the procedural surface s.
func (dc *Context) DrawSurface(vertices []Vertex, u *Uniforms, light Light, s SurfaceType) DrawStats {
	return dc.Draw(vertices, u, light, NewSurfaceShader(s))
}

// Draw runs the full pipeline over a flat triangle list. A trailing partial
// triangle is dropped.
func (dc *Context) Draw(vertices []Vertex, u *Uniforms, light Light, shader Shader) DrawStats {
	if rem := len(vertices) % 3; rem != 0 {
		Logger().Warn("dropping trailing vertices", "count", rem, "total", len(vertices))
	}

	transformed := make([]Vertex, len(vertices))
	for i, v := range vertices {
		transformed[i] = shader.Vertex(v, u)
	}
	triangles := assemble(transformed)

	var stats DrawStats
	if dc.Workers <= 1 || len(triangles) < 2 {
		for _, t := range triangles {
			stats = stats.Add(dc.drawTriangle(t, u, light, shader, false))
		}
	} else {
		stats = dc.drawParallel(triangles, u, light, shader)
	}
	stats.Triangles = len(triangles)
	return stats
}

func (dc *Context) drawParallel(triangles [][3]Vertex, u *Uniforms, light Light, shader Shader) DrawStats {
	if len(dc.locks) == 0 {
		dc.locks = make([]sync.Mutex, 256)
	}
	wn := min(dc.Workers, len(triangles))
	results := make([]DrawStats, wn)

	var wg sync.WaitGroup
	wg.Add(wn)
	for wi := 0; wi < wn; wi++ {
		go func(wi int) {
			defer wg.Done()
			for i := wi; i < len(triangles); i += wn {
				results[wi] = results[wi].Add(dc.drawTriangle(triangles[i], u, light, shader, true))
			}
		}(wi)
	}
	wg.Wait()

	var stats DrawStats
	for _, r := range results {
		stats = stats.Add(r)
	}
	return stats
}

func (dc *Context) drawTriangle(t [3]Vertex, u *Uniforms, light Light, shader Shader, locked bool) DrawStats {
	var stats DrawStats
	if !inDepthRange(t) {
		stats.Culled++
		return stats
	}
	r := Rasterizer{Clip: dc.Frame.Bounds()}
	for f := range r.Triangle(t[0], t[1], t[2], light) {
		stats.Fragments++
		c := shader.Fragment(f, u)
		x, y := f.Pixel()
		if !locked {
			if dc.Frame.Point(x, y, c, f.Depth) {
				stats.Written++
			}
			continue
		}
		lock := &dc.locks[(x+y)&255]
		lock.Lock()
		if dc.Frame.Point(x, y, c, f.Depth) {
			stats.Written++
		}
		lock.Unlock()
	}
	return stats
}

// inDepthRange reports whether every vertex lies between the near and far
// planes. Points behind the eye divide by a negative w and land beyond the
// far plane, so they are rejected too. Triangles are culled whole.
func inDepthRange(t [3]Vertex) bool {
	for _, v := range t {
		if z := v.TransformedPosition.Z(); z < -1 || z > 1 {
			return false
		}
	}
	return true
}
