package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/skelgen/cli/internal/layout"
	"github.com/skelgen/cli/internal/output"
	"github.com/skelgen/cli/internal/scaffold"
)

// NewLayoutsCmd creates the layouts command.
func NewLayoutsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "layouts",
		Short: "List built-in layouts",
		Args:  cobra.NoArgs,
		RunE:  runLayouts,
	}
}

func runLayouts(cmd *cobra.Command, args []string) error {
	for _, l := range layout.List() {
		name := l.Name
		if l.Default {
			name += " (default)"
		}

		dirs, files := scaffold.Count(l.Tree)

		output.Println(output.StyleNoun.Render(name))
		output.Println("  " + l.Description)
		output.Println("  " + output.StyleDim.Render(fmt.Sprintf("root: %s/  %d directories, %d files", l.Tree.Base, dirs, files)))
	}
	return nil
}
