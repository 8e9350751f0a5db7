package main

import (
	"fmt"

	"github.com/kwrobel/sitetree"
	"github.com/kwrobel/sitetree/export"
)

// Run executes the export command.
func (c *ExportCmd) Run(deps *Dependencies) error {
	result, err := deps.Exporter.Export(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", sitetree.ErrorMessage(err))
		return err
	}

	if result.Output == nil {
		fmt.Fprintf(deps.Stdout, "Dry run: %d pages included, %d excluded, %d unmarked\n",
			result.Included, result.Excluded, result.Unspecified)
		return nil
	}

	verb := "Wrote"
	if result.Output.Unchanged {
		verb = "Unchanged"
	}
	fmt.Fprintf(deps.Stdout, "%s %s (%d pages, %s)\n",
		verb, result.Output.Path, result.Included, export.FormatBytes(result.Output.Bytes))
	return nil
}
