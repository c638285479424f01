// Command stellar-view shows a solar system scene in a window.
//
// Keys: A/D yaw, W/S pitch, Z/X zoom, arrows and Q/E move, R/F lift,
// Tab warps to the next body, 0 returns to the overview, P pauses,
// Escape quits. The scene file is reloaded whenever it changes on disk.
package main

import (
	"flag"
	"log/slog"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/netisu/stellar"
)

func main() {
	var (
		configPath = flag.String("config", "", "scene file (.yaml, .yml or .toml); built-in system when empty")
		scale      = flag.Int("scale", 1, "window pixels per frame buffer pixel")
		verbose    = flag.Bool("v", false, "debug logging")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	stellar.SetLogger(logger)

	if err := run(*configPath, max(*scale, 1)); err != nil {
		logger.Error("viewer failed", "err", err)
		os.Exit(1)
	}
}

func run(configPath string, scale int) error {
	cfg := stellar.DefaultConfig()
	if configPath != "" {
		var err error
		cfg, err = stellar.LoadConfig(configPath)
		if err != nil {
			return err
		}
	}
	v, err := newViewer(cfg)
	if err != nil {
		return err
	}
	if configPath != "" {
		w, err := watchConfig(configPath, v.reload)
		if err != nil {
			return err
		}
		defer w.Close()
	}

	ebiten.SetWindowTitle("stellar")
	ebiten.SetWindowSize(cfg.Width*scale, cfg.Height*scale)
	ebiten.SetTPS(60)
	return ebiten.RunGame(v)
}
