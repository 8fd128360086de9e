package main

import (
	"fmt"
	"os"
	"text/tabwriter"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

type ToolsCmd struct{}

////////////////////////////////////////////////////////////////////////////////
// COMMANDS

func (cmd *ToolsCmd) Run(globals *Globals) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	for _, t := range globals.toolkit.Tools() {
		fmt.Fprintf(w, "%s\t%s\n", t.Name(), t.Description())
	}
	return w.Flush()
}
