// Command stellar-render renders frames of a solar system scene to image
// files without opening a window.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"runtime"
	"strings"

	"github.com/netisu/stellar"
	"github.com/schollz/progressbar/v3"
	"golang.org/x/sync/errgroup"
)

type options struct {
	configPath string
	frames     int
	fps        float64
	start      float64
	out        string
	workers    int
	thumb      int
	fit        bool
}

func main() {
	var (
		opts    options
		verbose bool
	)
	flag.StringVar(&opts.configPath, "config", "", "scene file (.yaml, .yml or .toml); built-in system when empty")
	flag.IntVar(&opts.frames, "frames", 1, "number of frames to render")
	flag.Float64Var(&opts.fps, "fps", 30, "frames per simulated second")
	flag.Float64Var(&opts.start, "start", 0, "simulation time of the first frame, in seconds")
	flag.StringVar(&opts.out, "out", "frame_%04d.png", "output path, printf pattern taking the frame number; extension picks png, bmp or tiff")
	flag.IntVar(&opts.workers, "workers", runtime.NumCPU(), "frames rendered concurrently")
	flag.IntVar(&opts.thumb, "thumb", 0, "scale frames down to fit this many pixels per side (0 keeps full size)")
	flag.BoolVar(&opts.fit, "fit", false, "pull the camera back until the whole system is visible")
	flag.BoolVar(&verbose, "v", false, "debug logging")
	flag.Parse()

	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	stellar.SetLogger(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, opts); err != nil {
		logger.Error("render failed", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, opts options) error {
	if opts.frames <= 0 {
		return fmt.Errorf("frames must be positive, got %d", opts.frames)
	}
	if opts.fps <= 0 {
		return fmt.Errorf("fps must be positive, got %g", opts.fps)
	}
	if _, err := stellar.FormatFromPath(opts.out); err != nil {
		return err
	}
	if opts.frames > 1 && !strings.Contains(opts.out, "%") {
		return errors.New("rendering several frames needs a %d style pattern in -out")
	}

	cfg := stellar.DefaultConfig()
	if opts.configPath != "" {
		var err error
		cfg, err = stellar.LoadConfig(opts.configPath)
		if err != nil {
			return err
		}
	}

	// One scene per concurrent frame: each owns its frame buffer.
	workers := max(1, min(opts.workers, opts.frames))
	pool := make(chan *stellar.Scene, workers)
	for range workers {
		s, err := stellar.NewScene(cfg)
		if err != nil {
			return err
		}
		if opts.fit {
			s.Fit(s.System.Snapshot(float32(opts.start)))
		}
		pool <- s
	}

	bar := progressbar.Default(int64(opts.frames), "rendering")
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i := 0; i < opts.frames; i++ {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			s := <-pool
			defer func() { pool <- s }()

			t := float32(opts.start + float64(i)/opts.fps)
			stats := s.Render(t)
			path := opts.out
			if strings.Contains(path, "%") {
				path = fmt.Sprintf(opts.out, i)
			}
			if err := stellar.SaveImage(path, stellar.Thumbnail(s.Image(), opts.thumb, opts.thumb)); err != nil {
				return err
			}
			stellar.Logger().Debug("frame saved", "path", path, "time", t, "written", stats.Written)
			return bar.Add(1)
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	return bar.Finish()
}
