package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/skelgen/cli/internal/layout"
	"github.com/skelgen/cli/internal/output"
	"github.com/skelgen/cli/internal/scaffold"
)

var (
	genDir      string
	genAll      bool
	genShowTree bool
)

// NewGenCmd creates the gen command.
func NewGenCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gen [layout...]",
		Short: "Generate a project skeleton from a built-in layout",
		Long: `Generate a project skeleton: every directory and zero-byte file a
layout declares, under the output directory.

Layouts:
  flutter-app  Mobile app skeleton under lib/ (default)
  admin-panel  Web admin panel skeleton under admin-panel/

Existing directories are left in place. Existing files at declared
paths are truncated to zero bytes.

Examples:
  # Generate the default layout into the current directory
  skelgen gen

  # Generate a specific layout
  skelgen gen admin-panel

  # Generate every built-in layout into ./out
  skelgen gen --all --dir ./out`,
		Args: cobra.ArbitraryArgs,
		RunE: runGen,
	}

	cmd.Flags().StringVarP(&genDir, "dir", "d", "",
		"Parent directory for the generated skeleton (default: config outputDir)")
	cmd.Flags().BoolVar(&genAll, "all", false,
		"Generate every built-in layout")
	cmd.Flags().BoolVar(&genShowTree, "tree", false,
		"Print the generated file tree")

	return cmd
}

func runGen(cmd *cobra.Command, args []string) error {
	cfg := GetConfig()

	names := args
	switch {
	case genAll && len(args) > 0:
		return WrapValidation(fmt.Errorf("--all and layout arguments are mutually exclusive"), "resolving layouts")
	case genAll:
		names = layout.Names()
	case len(names) == 0:
		names = []string{cfg.Layout}
	}

	dir := genDir
	if dir == "" {
		dir = cfg.OutputDir
	}

	// Resolve every layout before touching the filesystem.
	selected := make([]layout.Layout, 0, len(names))
	for _, name := range names {
		l, err := layout.Get(name)
		if err != nil {
			return WrapNotFound(err, "resolving layout")
		}
		selected = append(selected, l)
	}

	for _, l := range selected {
		if err := generate(cmd, l, dir); err != nil {
			return err
		}
	}

	return nil
}

func generate(cmd *cobra.Command, l layout.Layout, dir string) error {
	tree := l.Tree
	tree.Base = filepath.Join(dir, tree.Base)

	dirs, files := scaffold.Count(l.Tree)
	output.Debug("generating skeleton",
		"layout", l.Name,
		"base", tree.Base,
		"dirs", dirs,
		"files", files,
	)

	var res *scaffold.Result
	err := output.RunWithSpinner(cmd.Context(), func() error {
		var realizeErr error
		res, realizeErr = scaffold.Realize(tree, scaffold.Options{})
		return realizeErr
	}, output.WithTitle("Generating "+l.Name+"..."))
	if err != nil {
		return fmt.Errorf("generating %s: %w", l.Name, err)
	}

	output.Println(l.Message)

	if genShowTree {
		output.Print(output.RenderTree(l.Tree.Base, scaffold.Paths(l.Tree)))
	}

	output.Debug("skeleton generated",
		"layout", l.Name,
		"dirs", len(res.Dirs),
		"files", len(res.Files),
	)

	return nil
}
