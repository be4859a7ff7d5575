package scaffold

import (
	"os"
	"path/filepath"

	"github.com/skelgen/cli/internal/output"
)

// Realize walks the tree depth-first in declaration order and creates
// each directory before touching its files and before descending into
// child branches. Directories are create-if-absent; files are touched
// with a truncating open, so a pre-existing file at a leaf path is
// emptied. The first failure aborts the walk: entries already created
// stay on disk, later entries are never attempted.
func Realize(tree Tree, opts Options) (*Result, error) {
	if err := Validate(tree); err != nil {
		return nil, err
	}
	opts = opts.withDefaults()

	if err := os.MkdirAll(tree.Base, opts.DirPerm); err != nil {
		return nil, &IOError{Op: "mkdir", Path: tree.Base, Err: err}
	}
	output.Debug("created base directory", "path", tree.Base)

	res := &Result{}
	if err := realizeNodes(tree.Base, "", tree.Nodes, opts, res); err != nil {
		return nil, err
	}
	return res, nil
}

func realizeNodes(base, rel string, nodes []Node, opts Options, res *Result) error {
	for _, n := range nodes {
		nodeRel := filepath.Join(rel, n.Name)
		target := filepath.Join(base, nodeRel)

		if n.IsDir {
			if err := os.MkdirAll(target, opts.DirPerm); err != nil {
				return &IOError{Op: "mkdir", Path: target, Err: err}
			}
			res.Dirs = append(res.Dirs, nodeRel)
			output.Debug("created directory", "path", target)

			if err := realizeNodes(base, nodeRel, n.Children, opts, res); err != nil {
				return err
			}
			continue
		}

		if err := touch(target, opts.FilePerm); err != nil {
			return err
		}
		res.Files = append(res.Files, nodeRel)
	}
	return nil
}

// touch creates path as a zero-byte file, truncating any existing
// content.
func touch(path string, perm os.FileMode) error {
	if info, err := os.Stat(path); err == nil && !info.IsDir() && info.Size() > 0 {
		output.Debug("truncating existing file", "path", path, "size", info.Size())
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, perm)
	if err != nil {
		return &IOError{Op: "touch", Path: path, Err: err}
	}
	if err := f.Close(); err != nil {
		return &IOError{Op: "touch", Path: path, Err: err}
	}
	output.Debug("touched file", "path", path)
	return nil
}

// Paths returns every path the tree declares, relative to the base and
// in traversal order. Directory paths carry a trailing slash. Used for
// previews; no filesystem access happens.
func Paths(tree Tree) []string {
	var paths []string
	collectPaths("", tree.Nodes, &paths)
	return paths
}

func collectPaths(rel string, nodes []Node, paths *[]string) {
	for _, n := range nodes {
		nodeRel := n.Name
		if rel != "" {
			nodeRel = rel + "/" + n.Name
		}
		if n.IsDir {
			*paths = append(*paths, nodeRel+"/")
			collectPaths(nodeRel, n.Children, paths)
			continue
		}
		*paths = append(*paths, nodeRel)
	}
}

// Count returns the number of directories and files a tree declares,
// excluding the base directory.
func Count(tree Tree) (dirs, files int) {
	var walk func(nodes []Node)
	walk = func(nodes []Node) {
		for _, n := range nodes {
			if n.IsDir {
				dirs++
				walk(n.Children)
			} else {
				files++
			}
		}
	}
	walk(tree.Nodes)
	return dirs, files
}
