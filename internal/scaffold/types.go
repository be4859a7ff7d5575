// Package scaffold realizes declarative directory trees as empty
// directories and zero-byte files on a filesystem.
package scaffold

import "io/fs"

// Node is one entry in a scaffold tree: a file leaf or a directory
// branch with ordered children. Declaration order is traversal order.
type Node struct {
	// Name is the path segment for this entry. It must not contain
	// path separators.
	Name string

	// IsDir marks the node as a directory branch.
	IsDir bool

	// Children are the branch's entries, in declaration order.
	// Always empty for file leaves.
	Children []Node
}

// File returns a leaf node for an empty file.
func File(name string) Node {
	return Node{Name: name}
}

// Dir returns a branch node with the given children.
func Dir(name string, children ...Node) Node {
	return Node{Name: name, IsDir: true, Children: children}
}

// Files returns leaf nodes for a list of filenames, preserving order.
func Files(names ...string) []Node {
	nodes := make([]Node, 0, len(names))
	for _, n := range names {
		nodes = append(nodes, File(n))
	}
	return nodes
}

// Tree is a complete scaffold description: a base directory plus its
// ordered top-level entries. A Tree is built once from static literals
// and never mutated after Realize starts.
type Tree struct {
	// Base is the root directory the tree is realized under. Created
	// if absent, together with any missing ancestors.
	Base string

	// Nodes are the entries directly under Base.
	Nodes []Node
}

// Default permissions for created entries.
const (
	DefaultDirPerm  fs.FileMode = 0o755
	DefaultFilePerm fs.FileMode = 0o644
)

// Options configures a Realize run.
type Options struct {
	// DirPerm is the mode for created directories (default 0755).
	DirPerm fs.FileMode

	// FilePerm is the mode for created files (default 0644).
	FilePerm fs.FileMode
}

func (o Options) withDefaults() Options {
	if o.DirPerm == 0 {
		o.DirPerm = DefaultDirPerm
	}
	if o.FilePerm == 0 {
		o.FilePerm = DefaultFilePerm
	}
	return o
}

// Result lists what a successful Realize run created, as paths
// relative to the tree base, in creation order. The base directory
// itself is not listed.
type Result struct {
	// Dirs are the created (or already present) directories.
	Dirs []string

	// Files are the touched zero-byte files.
	Files []string
}
