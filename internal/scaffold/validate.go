package scaffold

import (
	"fmt"
	"strings"
)

// Validate checks a tree description before any filesystem operation.
// It rejects empty or dotted path segments, segments containing path
// separators, and duplicate sibling names.
func Validate(tree Tree) error {
	if strings.TrimSpace(tree.Base) == "" {
		return fmt.Errorf("%w: empty base path", ErrInvalidTree)
	}
	return validateNodes(tree.Base, tree.Nodes)
}

func validateNodes(parent string, nodes []Node) error {
	seen := make(map[string]bool, len(nodes))
	for _, n := range nodes {
		if err := validateName(parent, n.Name); err != nil {
			return err
		}
		if seen[n.Name] {
			return fmt.Errorf("%w: duplicate entry %q under %s", ErrInvalidTree, n.Name, parent)
		}
		seen[n.Name] = true

		if !n.IsDir && len(n.Children) > 0 {
			return fmt.Errorf("%w: file %q under %s has children", ErrInvalidTree, n.Name, parent)
		}
		if n.IsDir {
			if err := validateNodes(parent+"/"+n.Name, n.Children); err != nil {
				return err
			}
		}
	}
	return nil
}

func validateName(parent, name string) error {
	switch {
	case name == "":
		return fmt.Errorf("%w: empty entry name under %s", ErrInvalidTree, parent)
	case name == "." || name == "..":
		return fmt.Errorf("%w: entry %q under %s", ErrInvalidTree, name, parent)
	case strings.ContainsAny(name, `/\`):
		return fmt.Errorf("%w: entry %q under %s contains a path separator", ErrInvalidTree, name, parent)
	}
	return nil
}
