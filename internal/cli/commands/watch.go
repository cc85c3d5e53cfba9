package commands

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/leapstack-labs/cxxstd/internal/cli/output"
	"github.com/leapstack-labs/cxxstd/pkg/classify"
)

// runWatch classifies the inputs, then re-classifies the whole batch
// whenever one of them changes. Editors often replace files on save, so
// the parent directories are watched rather than the files themselves.
// Events are debounced to coalesce bursts of writes into one run.
func runWatch(ctx context.Context, paths []string, runner *classify.Runner, renderer *output.Renderer, floor, debounceMillis int) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("starting watcher: %w", err)
	}
	defer func() { _ = watcher.Close() }()

	watched := make(map[string]bool, len(paths))
	dirs := make(map[string]bool)
	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			return fmt.Errorf("resolving %s: %w", p, err)
		}
		watched[abs] = true
		dirs[filepath.Dir(abs)] = true
	}
	for dir := range dirs {
		if err := watcher.Add(dir); err != nil {
			return fmt.Errorf("watching %s: %w", dir, err)
		}
	}

	run := func() {
		batch, err := runner.Run(ctx, paths)
		if err != nil {
			renderer.RenderError("classification failed: %v", err)
			return
		}
		if err := renderer.RenderBatch(batch, floor); err != nil {
			renderer.RenderError("render failed: %v", err)
		}
	}
	run()

	if debounceMillis <= 0 {
		debounceMillis = 250
	}
	debounce := time.Duration(debounceMillis) * time.Millisecond

	// The timer is created stopped and re-armed on every relevant event.
	timer := time.NewTimer(debounce)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-timer.C:
			run()
		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
				continue
			}
			abs, err := filepath.Abs(ev.Name)
			if err != nil || !watched[abs] {
				continue
			}
			slog.Debug("change detected", "path", ev.Name, "op", ev.Op.String())
			if !timer.Stop() {
				select {
				case <-timer.C:
				default:
				}
			}
			timer.Reset(debounce)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			renderer.RenderError("watch error: %v", err)
		}
	}
}
