package main

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/netisu/stellar"
)

var errNoConfig = errors.New("no config path to watch")

// watchConfig calls onChange with the freshly parsed config every time path
// is written or replaced. Parse errors are logged and skipped.
func watchConfig(path string, onChange func(*stellar.Config)) (*fsnotify.Watcher, error) {
	if path == "" {
		return nil, errNoConfig
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("watch config: %w", err)
	}
	// Watch the directory: editors often replace the file instead of
	// writing it in place.
	if err := w.Add(filepath.Dir(abs)); err != nil {
		w.Close()
		return nil, fmt.Errorf("watch config: %w", err)
	}

	go func() {
		for {
			select {
			case ev, ok := <-w.Events:
				if !ok {
					return
				}
				if ev.Name != abs || !(ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create)) {
					continue
				}
				cfg, err := stellar.LoadConfig(abs)
				if err != nil {
					stellar.Logger().Warn("config reload failed", "path", abs, "err", err)
					continue
				}
				onChange(cfg)
			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				stellar.Logger().Warn("config watcher", "err", err)
			}
		}
	}()
	return w, nil
}
