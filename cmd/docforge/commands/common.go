package commands

import (
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"git.home.luguber.info/inful/docforge/internal/config"
	"git.home.luguber.info/inful/docforge/internal/generator"
)

// Global context passed to subcommands if we need to share global state later.
type Global struct {
	Logger *slog.Logger
}

// CLI definition & global flags - used by commands that need access to root config.
type CLI struct {
	Config  string           `short:"c" help:"Configuration file path" default:"docforge.yaml"`
	Root    string           `short:"C" help:"Root directory all relative paths resolve against" default:"."`
	Verbose bool             `short:"v" help:"Enable verbose logging"`
	Version kong.VersionFlag `name:"version" help:"Show version and exit"`

	Generate    GenerateCmd    `cmd:"" help:"Generate human and AI document variants from one manifest"`
	GenerateAll GenerateAllCmd `cmd:"" help:"Generate documents for every discovered manifest"`
	Index       IndexCmd       `cmd:"" help:"Rebuild the master documentation index"`
	Init        InitCmd        `cmd:"" help:"Initialize configuration, example template, and example manifest"`
	Watch       WatchCmd       `cmd:"" help:"Watch the manifests directory and regenerate on change"`
}

// AfterApply runs after flag parsing; setup logging once.
// nolint:unparam // AfterApply currently never returns an error.
func (c *CLI) AfterApply() error {
	level := slog.LevelInfo
	if c.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	return nil
}

// buildGenerator loads configuration and wires the generation pipeline
// rooted at the --root directory.
func buildGenerator(root *CLI, g *Global) (*generator.Generator, error) {
	cfg, err := config.Load(root.Config)
	if err != nil {
		return nil, err
	}
	logger := g.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return generator.New(cfg, root.Root, logger), nil
}
