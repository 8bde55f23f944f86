package commands

import (
	"fmt"
)

// GenerateCmd implements the 'generate' command.
type GenerateCmd struct {
	Manifest string            `arg:"" help:"Path to the generation manifest"`
	Var      map[string]string `short:"s" name:"var" help:"Template variables as name=value pairs"`
}

func (g *GenerateCmd) Run(global *Global, root *CLI) error {
	gen, err := buildGenerator(root, global)
	if err != nil {
		return err
	}

	vars := g.Var
	if len(vars) == 0 {
		vars, err = gen.DefaultVariables(g.Manifest)
		if err != nil {
			return err
		}
	}

	res, err := gen.GenerateFromManifest(g.Manifest, vars)
	if err != nil {
		return err
	}
	fmt.Printf("Generated %s\n", res.HumanPath)
	fmt.Printf("Generated %s (%d tokens)\n", res.AIPath, res.TokenCount)
	return nil
}
