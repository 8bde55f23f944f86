package commands

import (
	"fmt"
)

// IndexCmd implements the 'index' command: a standalone full rebuild of the
// master index from whatever AI variants exist on disk.
type IndexCmd struct{}

func (i *IndexCmd) Run(global *Global, root *CLI) error {
	gen, err := buildGenerator(root, global)
	if err != nil {
		return err
	}
	res, err := gen.Index.UpdateMasterIndex(nil)
	if err != nil {
		return err
	}
	fmt.Printf("Master index rebuilt: %s (%d documents)\n", res.IndexPath, res.TotalFiles)
	return nil
}
