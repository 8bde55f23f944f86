package watch

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/docforge/internal/config"
	"git.home.luguber.info/inful/docforge/internal/generator"
)

func newTestWatcher(t *testing.T) (*Watcher, string) {
	t.Helper()
	root := t.TempDir()
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
	gen := generator.New(config.Default(), root, logger)

	manifestsDir := filepath.Join(root, "manifests")
	require.NoError(t, os.MkdirAll(manifestsDir, 0o755))
	require.NoError(t, os.MkdirAll(filepath.Join(root, "templates"), 0o755))
	require.NoError(t, os.WriteFile(
		filepath.Join(root, "templates", "concept.md"),
		[]byte("# {CONCEPT_NAME}\n"), 0o644))

	w := New(manifestsDir, gen, logger)
	w.Debounce = 50 * time.Millisecond
	return w, root
}

func waitForFile(t *testing.T, path string, timeout time.Duration) bool {
	t.Helper()
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if _, err := os.Stat(path); err == nil {
			return true
		}
		time.Sleep(10 * time.Millisecond)
	}
	return false
}

func TestWatcherRegeneratesOnManifestCreate(t *testing.T) {
	w, root := newTestWatcher(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	// Give the watcher time to arm before writing.
	time.Sleep(100 * time.Millisecond)
	manifest := "base_template: concept.md\noutput_path_pattern: docs/{concept_name}.md\n"
	require.NoError(t, os.WriteFile(
		filepath.Join(w.Dir, "session-manifest.yaml"), []byte(manifest), 0o644))

	assert.True(t,
		waitForFile(t, filepath.Join(root, "docs", "ai", "session-ai.md"), 5*time.Second),
		"AI variant not generated after manifest create")

	cancel()
	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(2 * time.Second):
		t.Fatal("watcher did not stop on cancellation")
	}
}

func TestWatcherIgnoresNonManifestFiles(t *testing.T) {
	w, root := newTestWatcher(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = w.Run(ctx) }()

	time.Sleep(100 * time.Millisecond)
	require.NoError(t, os.WriteFile(filepath.Join(w.Dir, "notes.md"), []byte("x"), 0o644))

	time.Sleep(300 * time.Millisecond)
	entries, err := os.ReadDir(filepath.Join(root, "docs"))
	if err == nil {
		assert.Empty(t, entries, "non-manifest file triggered generation")
	}
}
