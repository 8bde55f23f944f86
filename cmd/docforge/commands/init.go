package commands

import (
	"fmt"
	"path/filepath"

	"git.home.luguber.info/inful/docforge/internal/config"
)

// InitCmd implements the 'init' command.
type InitCmd struct {
	Force  bool   `help:"Overwrite existing configuration file"`
	Output string `short:"o" name:"output" help:"Output directory for generated config file"`
}

func (i *InitCmd) Run(_ *Global, root *CLI) error {
	cfgPath := root.Config
	if i.Output != "" {
		cfgPath = filepath.Join(i.Output, "docforge.yaml")
	}
	fmt.Println("Initializing docforge project")
	fmt.Printf("Writing configuration to %s\n", cfgPath)
	if err := config.Init(cfgPath, i.Force); err != nil {
		fmt.Println("Initialization failed")
		return err
	}
	fmt.Println("initialized successfully")
	return nil
}
