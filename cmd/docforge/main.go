package main

import (
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"git.home.luguber.info/inful/docforge/cmd/docforge/commands"
)

var version = "dev"

func main() {
	cli := &commands.CLI{}
	ctx := kong.Parse(cli,
		kong.Name("docforge"),
		kong.Description("Manifest-driven generator for paired human and AI documentation variants."),
		kong.Vars{"version": version},
	)

	global := &commands.Global{Logger: slog.Default()}
	if err := ctx.Run(global, cli); err != nil {
		slog.Error("Command failed", "error", err)
		os.Exit(1)
	}
}
