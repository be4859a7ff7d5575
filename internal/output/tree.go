package output

import (
	"strings"
)

const (
	// Tree characters
	treeEdge  = "├── "
	treeLast  = "└── "
	treeVert  = "│   "
	treeSpace = "    "
)

// TreeNode represents a node in the rendered file tree.
type TreeNode struct {
	Name     string
	IsDir    bool
	Children []*TreeNode
}

// RenderTree renders a file tree rooted at rootName from a list of
// relative slash-separated paths. Directory paths carry a trailing
// slash. Sibling order follows the order paths were declared in; no
// sorting is applied, so the output is deterministic for a fixed
// input.
func RenderTree(rootName string, paths []string) string {
	root := &TreeNode{
		Name:  rootName,
		IsDir: true,
	}

	for _, path := range paths {
		isDir := strings.HasSuffix(path, "/")
		parts := strings.Split(strings.TrimSuffix(path, "/"), "/")
		current := root

		for i, part := range parts {
			isLast := i == len(parts)-1

			var child *TreeNode
			for _, c := range current.Children {
				if c.Name == part {
					child = c
					break
				}
			}

			if child == nil {
				child = &TreeNode{
					Name:  part,
					IsDir: !isLast || isDir,
				}
				current.Children = append(current.Children, child)
			}

			current = child
		}
	}

	var sb strings.Builder
	renderNode(&sb, root, "", true, true)
	return sb.String()
}

// renderNode recursively renders a tree node with proper indentation and styling.
func renderNode(sb *strings.Builder, node *TreeNode, prefix string, isRoot, isLast bool) {
	if isRoot {
		sb.WriteString(StyleBold.Render(node.Name + "/"))
		sb.WriteString("\n")
	} else {
		connector := treeEdge
		if isLast {
			connector = treeLast
		}

		name := node.Name
		if node.IsDir {
			name += "/"
		}

		sb.WriteString(prefix + connector + name)
		sb.WriteString("\n")
	}

	for i, child := range node.Children {
		childIsLast := i == len(node.Children)-1

		var childPrefix string
		if isRoot {
			childPrefix = ""
		} else {
			if isLast {
				childPrefix = prefix + treeSpace
			} else {
				childPrefix = prefix + treeVert
			}
		}

		renderNode(sb, child, childPrefix, false, childIsLast)
	}
}
