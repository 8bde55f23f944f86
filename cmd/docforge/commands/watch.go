package commands

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"git.home.luguber.info/inful/docforge/internal/config"
	"git.home.luguber.info/inful/docforge/internal/watch"
)

// WatchCmd implements the 'watch' command.
type WatchCmd struct {
	Dir string `short:"d" help:"Manifests directory to watch (defaults to the configured development directory)"`
}

func (w *WatchCmd) Run(global *Global, root *CLI) error {
	cfg, err := config.Load(root.Config)
	if err != nil {
		return err
	}
	gen, err := buildGenerator(root, global)
	if err != nil {
		return err
	}

	dir := w.Dir
	if dir == "" {
		dir = filepath.Join(root.Root, cfg.Manifests.Development)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err = watch.New(dir, gen, global.Logger).Run(ctx)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
