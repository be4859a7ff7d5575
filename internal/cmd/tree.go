package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/skelgen/cli/internal/layout"
	"github.com/skelgen/cli/internal/output"
	"github.com/skelgen/cli/internal/scaffold"
)

// NewTreeCmd creates the tree command.
func NewTreeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tree <layout>",
		Short: "Preview a layout's file tree without writing anything",
		Long: `Print the directory tree a layout declares. Nothing is written to
the filesystem.

Examples:
  # Preview the admin panel skeleton
  skelgen tree admin-panel`,
		Args: cobra.ExactArgs(1),
		RunE: runTree,
	}
}

func runTree(cmd *cobra.Command, args []string) error {
	l, err := layout.Get(args[0])
	if err != nil {
		return WrapNotFound(err, "resolving layout")
	}

	output.Print(output.RenderTree(l.Tree.Base, scaffold.Paths(l.Tree)))

	dirs, files := scaffold.Count(l.Tree)
	output.Println(output.StyleDim.Render(fmt.Sprintf("%d directories, %d files", dirs, files)))

	return nil
}
