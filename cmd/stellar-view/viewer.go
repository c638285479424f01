package main

import (
	"fmt"
	"sync"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/netisu/stellar"
)

const warpSeconds = 1.5

type viewer struct {
	scene  *stellar.Scene
	state  stellar.FrameState
	stats  stellar.DrawStats
	time   float32
	paused bool
	// tracked is the index of the followed body, -1 for none.
	tracked int

	homeEye, homeTarget mgl32.Vec3

	frame *ebiten.Image
	pix   []byte

	mu      sync.Mutex
	pending *stellar.Config
}

func newViewer(cfg *stellar.Config) (*viewer, error) {
	s, err := stellar.NewScene(cfg)
	if err != nil {
		return nil, err
	}
	return &viewer{
		scene:      s,
		tracked:    -1,
		homeEye:    s.Camera.Eye,
		homeTarget: s.Camera.Target,
	}, nil
}

// reload is called from the watcher goroutine; the swap happens in Update.
func (v *viewer) reload(cfg *stellar.Config) {
	v.mu.Lock()
	v.pending = cfg
	v.mu.Unlock()
}

func (v *viewer) applyPending() {
	v.mu.Lock()
	cfg := v.pending
	v.pending = nil
	v.mu.Unlock()
	if cfg == nil {
		return
	}
	s, err := stellar.NewScene(cfg)
	if err != nil {
		stellar.Logger().Warn("reload rejected", "err", err)
		return
	}
	v.homeEye, v.homeTarget = s.Camera.Eye, s.Camera.Target
	s.Camera = v.scene.Camera
	v.scene = s
	v.tracked = -1
	stellar.Logger().Info("scene reloaded", "bodies", len(cfg.Bodies))
}

func axis(neg, pos ebiten.Key) float32 {
	var a float32
	if ebiten.IsKeyPressed(neg) {
		a--
	}
	if ebiten.IsKeyPressed(pos) {
		a++
	}
	return a
}

func (v *viewer) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	v.applyPending()

	dt := 1 / float32(ebiten.TPS())
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		v.paused = !v.paused
	}
	if !v.paused {
		v.time += dt
	}
	v.state = v.scene.System.Snapshot(v.time)

	cam := v.scene.Camera
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyTab):
		v.warpTo((v.tracked + 1) % max(len(v.state.Bodies), 1))
	case inpututil.IsKeyJustPressed(ebiten.Key0):
		v.tracked = -1
		cam.WarpTo(v.homeEye, v.homeTarget, warpSeconds)
	}

	cam.Update(dt)
	cam.Apply(stellar.Controls{
		Yaw:     axis(ebiten.KeyD, ebiten.KeyA),
		Pitch:   axis(ebiten.KeyS, ebiten.KeyW),
		Zoom:    axis(ebiten.KeyX, ebiten.KeyZ),
		Strafe:  axis(ebiten.KeyArrowLeft, ebiten.KeyArrowRight) + axis(ebiten.KeyQ, ebiten.KeyE),
		Forward: axis(ebiten.KeyArrowDown, ebiten.KeyArrowUp),
		Lift:    axis(ebiten.KeyF, ebiten.KeyR),
	})
	if v.tracked >= 0 && v.tracked < len(v.state.Bodies) {
		cam.Track(v.state.Bodies[v.tracked].Position)
	}
	return nil
}

func (v *viewer) warpTo(i int) {
	if len(v.state.Bodies) == 0 {
		return
	}
	b := v.state.Bodies[i]
	v.tracked = i
	eye := b.Position.Add(mgl32.Vec3{0, b.Scale * 2, b.Scale * 6})
	v.scene.Camera.WarpTo(eye, b.Position, warpSeconds)
}

func (v *viewer) Draw(screen *ebiten.Image) {
	fb := v.scene.Context.Frame
	if v.frame == nil || v.frame.Bounds().Dx() != fb.Width || v.frame.Bounds().Dy() != fb.Height {
		if v.frame != nil {
			v.frame.Deallocate()
		}
		v.frame = ebiten.NewImage(fb.Width, fb.Height)
		v.pix = make([]byte, fb.Width*fb.Height*4)
	}

	v.stats = v.scene.RenderFrame(v.state)
	fb.CopyTo(v.pix)
	v.frame.WritePixels(v.pix)
	screen.DrawImage(v.frame, nil)

	name := "overview"
	if v.tracked >= 0 && v.tracked < len(v.state.Bodies) {
		name = v.state.Bodies[v.tracked].Name
	}
	ebitenutil.DebugPrint(screen, fmt.Sprintf("TPS %.0f  t=%.1fs  %s  tris %d  px %d",
		ebiten.ActualTPS(), v.time, name, v.stats.Triangles, v.stats.Written))
}

func (v *viewer) Layout(outsideWidth, outsideHeight int) (int, int) {
	fb := v.scene.Context.Frame
	return fb.Width, fb.Height
}

var _ ebiten.Game = (*viewer)(nil)
