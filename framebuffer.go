package stellar

import (
	"image"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// FrameBuffer is a color plane with a matching depth plane. Both are
// row-major and sized once at construction.
type FrameBuffer struct {
	Width      int
	Height     int
	Background mgl32.Vec3

	color []mgl32.Vec3
	depth []float32
}

// NewFrameBuffer allocates a cleared frame buffer with a black background.
func NewFrameBuffer(width, height int) *FrameBuffer {
	width = max(width, 0)
	height = max(height, 0)
	fb := &FrameBuffer{
		Width:  width,
		Height: height,
		color:  make([]mgl32.Vec3, width*height),
		depth:  make([]float32, width*height),
	}
	fb.Clear()
	return fb
}

// SetBackground sets the color used by Clear.
func (fb *FrameBuffer) SetBackground(c mgl32.Vec3) {
	fb.Background = c
}

// Clear resets every pixel to the background color and infinite depth.
func (fb *FrameBuffer) Clear() {
	far := math32.Inf(1)
	for i := range fb.color {
		fb.color[i] = fb.Background
		fb.depth[i] = far
	}
}

// Bounds returns the pixel rectangle of the buffer.
func (fb *FrameBuffer) Bounds() image.Rectangle {
	return image.Rect(0, 0, fb.Width, fb.Height)
}

// Point writes color at (x, y) if depth is strictly nearer than what the
// pixel already holds. Writes outside the buffer are ignored. It reports
// whether the write was accepted.
func (fb *FrameBuffer) Point(x, y int, color mgl32.Vec3, depth float32) bool {
	if x < 0 || y < 0 || x >= fb.Width || y >= fb.Height {
		return false
	}
	i := y*fb.Width + x
	if !(depth < fb.depth[i]) {
		return false
	}
	fb.color[i] = color
	fb.depth[i] = depth
	return true
}

// ColorAt returns the stored color, or the background outside the buffer.
func (fb *FrameBuffer) ColorAt(x, y int) mgl32.Vec3 {
	if x < 0 || y < 0 || x >= fb.Width || y >= fb.Height {
		return fb.Background
	}
	return fb.color[y*fb.Width+x]
}

// DepthAt returns the stored depth, or +Inf outside the buffer.
func (fb *FrameBuffer) DepthAt(x, y int) float32 {
	if x < 0 || y < 0 || x >= fb.Width || y >= fb.Height {
		return math32.Inf(1)
	}
	return fb.depth[y*fb.Width+x]
}

// Image converts the color plane to 8-bit NRGBA. Channels above 1 saturate.
func (fb *FrameBuffer) Image() *image.NRGBA {
	im := image.NewNRGBA(fb.Bounds())
	fb.CopyTo(im.Pix)
	return im
}

// CopyTo writes the color plane into pix as 8-bit RGBA, 4 bytes per pixel,
// row-major. pix must hold at least Width*Height*4 bytes.
func (fb *FrameBuffer) CopyTo(pix []uint8) {
	for i, c := range fb.color {
		j := i * 4
		pix[j+0] = toByte(c[0])
		pix[j+1] = toByte(c[1])
		pix[j+2] = toByte(c[2])
		pix[j+3] = 0xff
	}
}
