package commands

import (
	"fmt"
)

// GenerateAllCmd implements the 'generate-all' command.
type GenerateAllCmd struct{}

func (g *GenerateAllCmd) Run(global *Global, root *CLI) error {
	gen, err := buildGenerator(root, global)
	if err != nil {
		return err
	}
	report, err := gen.GenerateAll()
	if err != nil {
		return err
	}

	fmt.Printf("Generated %d documents from %s\n", len(report.Generated), report.Dir)
	for _, skipped := range report.Skipped {
		fmt.Printf("Skipped %s: %v\n", skipped.Manifest, skipped.Err)
	}
	return nil
}
