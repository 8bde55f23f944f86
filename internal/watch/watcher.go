// Package watch monitors the manifests directory and regenerates a document
// whenever its manifest changes. Regeneration stays strictly sequential: one
// loop drains events into per-manifest debounce timers and a single worker
// channel, so concurrent index updates cannot race each other.
package watch

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"git.home.luguber.info/inful/docforge/internal/generator"
	"git.home.luguber.info/inful/docforge/internal/logfields"
)

const manifestSuffix = "-manifest.yaml"

// Watcher regenerates documents on manifest changes.
type Watcher struct {
	Dir       string
	Generator *generator.Generator
	Logger    *slog.Logger
	// Debounce collapses editor write bursts into one regeneration.
	Debounce time.Duration

	mu     sync.Mutex
	timers map[string]*time.Timer
}

// New creates a Watcher over the given manifests directory.
func New(dir string, gen *generator.Generator, logger *slog.Logger) *Watcher {
	return &Watcher{
		Dir:       dir,
		Generator: gen,
		Logger:    logger,
		Debounce:  500 * time.Millisecond,
		timers:    make(map[string]*time.Timer),
	}
}

// Run watches until ctx is cancelled. Each changed or created manifest is
// regenerated once per debounce window; failures are logged and the loop
// keeps going.
func (w *Watcher) Run(ctx context.Context) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create file watcher: %w", err)
	}
	defer fw.Close()

	if err := fw.Add(w.Dir); err != nil {
		return fmt.Errorf("watch manifests directory %s: %w", w.Dir, err)
	}
	w.logger().Info("watching manifests directory", logfields.Path(w.Dir))

	// ready carries debounced manifest paths back into the single loop so
	// generation never runs concurrently with itself.
	ready := make(chan string)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case path := <-ready:
			w.regenerate(path)
		case event, ok := <-fw.Events:
			if !ok {
				return nil
			}
			w.handleEvent(ctx, event, ready)
		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			w.logger().Warn("file watcher error", logfields.Error(err))
		}
	}
}

func (w *Watcher) handleEvent(ctx context.Context, event fsnotify.Event, ready chan<- string) {
	if !strings.HasSuffix(filepath.Base(event.Name), manifestSuffix) {
		return
	}
	switch {
	case event.Op.Has(fsnotify.Write), event.Op.Has(fsnotify.Create):
		w.schedule(ctx, event.Name, ready)
	case event.Op.Has(fsnotify.Remove), event.Op.Has(fsnotify.Rename):
		w.logger().Info("manifest removed, leaving generated output in place",
			logfields.Manifest(event.Name))
	}
}

// schedule arms or resets the debounce timer for one manifest path.
func (w *Watcher) schedule(ctx context.Context, path string, ready chan<- string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if timer, ok := w.timers[path]; ok {
		timer.Reset(w.Debounce)
		return
	}
	w.timers[path] = time.AfterFunc(w.Debounce, func() {
		w.mu.Lock()
		delete(w.timers, path)
		w.mu.Unlock()
		select {
		case ready <- path:
		case <-ctx.Done():
		}
	})
}

func (w *Watcher) regenerate(manifestPath string) {
	vars, err := w.Generator.DefaultVariables(manifestPath)
	if err != nil {
		w.logger().Warn("skipping changed manifest", logfields.Manifest(manifestPath), logfields.Error(err))
		return
	}
	if _, err := w.Generator.GenerateFromManifest(manifestPath, vars); err != nil {
		w.logger().Warn("regeneration failed", logfields.Manifest(manifestPath), logfields.Error(err))
	}
}

func (w *Watcher) logger() *slog.Logger {
	if w.Logger != nil {
		return w.Logger
	}
	return slog.Default()
}
