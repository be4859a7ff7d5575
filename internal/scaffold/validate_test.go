package scaffold

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate_OK(t *testing.T) {
	tree := Tree{
		Base: "lib",
		Nodes: []Node{
			File("main.dart"),
			Dir("core",
				Dir("theme", File("colors.dart")),
			),
		},
	}

	assert.NoError(t, Validate(tree))
}

func TestValidate_Rejects(t *testing.T) {
	tests := []struct {
		name string
		tree Tree
		want string
	}{
		{
			name: "empty base",
			tree: Tree{Base: "  ", Nodes: []Node{File("x")}},
			want: "empty base path",
		},
		{
			name: "empty entry name",
			tree: Tree{Base: "out", Nodes: []Node{File("")}},
			want: "empty entry name",
		},
		{
			name: "dot entry",
			tree: Tree{Base: "out", Nodes: []Node{Dir("..")}},
			want: `".."`,
		},
		{
			name: "path separator in name",
			tree: Tree{Base: "out", Nodes: []Node{File("a/b.txt")}},
			want: "path separator",
		},
		{
			name: "duplicate siblings",
			tree: Tree{Base: "out", Nodes: []Node{File("x.txt"), File("x.txt")}},
			want: "duplicate entry",
		},
		{
			name: "duplicate dir and file siblings",
			tree: Tree{Base: "out", Nodes: []Node{Dir("x"), File("x")}},
			want: "duplicate entry",
		},
		{
			name: "duplicate in nested branch",
			tree: Tree{Base: "out", Nodes: []Node{
				Dir("a", Dir("b", File("x"), File("x"))),
			}},
			want: "duplicate entry",
		},
		{
			name: "file with children",
			tree: Tree{Base: "out", Nodes: []Node{
				{Name: "f.txt", Children: []Node{File("x")}},
			}},
			want: "has children",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.tree)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidTree)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}
