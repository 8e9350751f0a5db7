package main

import (
	"fmt"

	"github.com/kwrobel/sitetree"
	"github.com/kwrobel/sitetree/export"
)

// Run executes the print command.
func (c *PrintCmd) Run(deps *Dependencies) error {
	root, _, err := deps.Exporter.BuildTree(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", sitetree.ErrorMessage(err))
		return err
	}

	fmt.Fprint(deps.Stdout, export.Outline(root))
	return nil
}
