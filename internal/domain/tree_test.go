package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleForest() []TreeNode {
	return []TreeNode{
		{
			Name:  "a",
			Path:  "a",
			IsDir: true,
			Children: []TreeNode{
				{Name: "b.txt", Path: "a/b.txt"},
				{
					Name:  "c",
					Path:  "a/c",
					IsDir: true,
					Children: []TreeNode{
						{Name: "d.py", Path: "a/c/d.py"},
					},
				},
			},
		},
		{Name: "main.py", Path: "main.py"},
	}
}

func rowPaths(rows []TreeRow) []string {
	paths := make([]string, len(rows))
	for i, r := range rows {
		paths[i] = r.Path
	}
	return paths
}

func TestPathDepth(t *testing.T) {
	tests := []struct {
		path     string
		expected int
	}{
		{".", 0},
		{"", 0},
		{"a", 1},
		{"a/b.txt", 2},
		{"a/c/d.py", 3},
		{"/a/b/", 2},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.expected, PathDepth(tt.path))
		})
	}
}

func TestTreeModel_CollapsedByDefault(t *testing.T) {
	tree := NewTreeModel()
	tree.SetTree([]TreeNode{
		{Name: "a", Path: "a", IsDir: true, Children: []TreeNode{{Name: "b.txt", Path: "a/b.txt"}}},
	})

	assert.Equal(t, []string{"a"}, rowPaths(tree.Render()))

	tree.Toggle("a")
	rows := tree.Render()
	assert.Equal(t, []string{"a", "a/b.txt"}, rowPaths(rows))
	assert.Equal(t, 1, rows[0].Depth)
	assert.True(t, rows[0].Expanded)
	assert.Equal(t, 2, rows[1].Depth)
	assert.False(t, rows[1].IsDir)
}

func TestTreeModel_CollapsedRootYieldsOneRow(t *testing.T) {
	forests := map[string][]TreeNode{
		"empty":  nil,
		"sample": sampleForest(),
		"flat":   {{Name: "x", Path: "x"}, {Name: "y", Path: "y"}},
	}

	for name, forest := range forests {
		t.Run(name, func(t *testing.T) {
			tree := NewTreeModel()
			tree.SetTree(forest)
			tree.ExpandAll()
			tree.Toggle(RootPath)

			rows := tree.Render()
			require.Len(t, rows, 1)
			assert.Equal(t, RootPath, rows[0].Path)
			assert.Equal(t, 0, rows[0].Depth)
		})
	}
}

func TestTreeModel_IsExpandedDefaults(t *testing.T) {
	tree := NewTreeModel()
	tree.SetTree(sampleForest())

	assert.True(t, tree.IsExpanded(RootPath))
	for _, path := range []string{"a", "a/c", "main.py", "never/listed"} {
		assert.False(t, tree.IsExpanded(path), path)
	}
}

func TestTreeModel_ToggleIsInvolution(t *testing.T) {
	for _, path := range []string{RootPath, "a", "a/c", "ghost"} {
		t.Run(path, func(t *testing.T) {
			tree := NewTreeModel()
			tree.SetTree(sampleForest())
			before := tree.IsExpanded(path)

			tree.Toggle(path)
			assert.NotEqual(t, before, tree.IsExpanded(path))
			tree.Toggle(path)
			assert.Equal(t, before, tree.IsExpanded(path))
		})
	}
}

func TestTreeModel_ToggleDoesNotCascade(t *testing.T) {
	tree := NewTreeModel()
	tree.SetTree(sampleForest())

	tree.Toggle("a/c")
	assert.False(t, tree.IsExpanded("a"))
	assert.True(t, tree.IsExpanded("a/c"))

	// parent collapsed prunes the expanded child
	assert.Equal(t, []string{"a", "main.py"}, rowPaths(tree.Render()))

	tree.Toggle("a")
	assert.Equal(t, []string{"a", "a/b.txt", "a/c", "a/c/d.py", "main.py"}, rowPaths(tree.Render()))
}

func TestTreeModel_ExpansionSurvivesSetTree(t *testing.T) {
	tree := NewTreeModel()
	tree.SetTree(sampleForest())
	tree.Toggle("a")

	tree.SetTree([]TreeNode{
		{Name: "a", Path: "a", IsDir: true, Children: []TreeNode{{Name: "new.go", Path: "a/new.go"}}},
	})

	assert.True(t, tree.IsExpanded("a"))
	assert.Equal(t, []string{"a", "a/new.go"}, rowPaths(tree.Render()))
	// stale entries are harmless
	assert.False(t, tree.Contains("a/c"))
}

func TestTreeModel_ActiveRow(t *testing.T) {
	tree := NewTreeModel()
	tree.SetTree(sampleForest())
	tree.SetActive("main.py")

	for _, row := range tree.Render() {
		assert.Equal(t, row.Path == "main.py", row.Active, row.Path)
	}
}

func TestTreeModel_RenderFiltered(t *testing.T) {
	tree := NewTreeModel()
	tree.SetTree(sampleForest())
	tree.ExpandAll()

	hideDirC := func(path string, isDir bool) bool { return isDir && path == "a/c" }
	assert.Equal(t, []string{"a", "a/b.txt", "main.py"}, rowPaths(tree.RenderFiltered(hideDirC)))

	hidePython := func(path string, isDir bool) bool { return !isDir && len(path) > 3 && path[len(path)-3:] == ".py" }
	assert.Equal(t, []string{"a", "a/b.txt", "a/c"}, rowPaths(tree.RenderFiltered(hidePython)))
}

func TestTreeModel_FindAndSize(t *testing.T) {
	tree := NewTreeModel()
	tree.SetTree(sampleForest())

	assert.Equal(t, 5, tree.Size())
	node := tree.Find("a/c/d.py")
	require.NotNil(t, node)
	assert.Equal(t, "d.py", node.Name)
	assert.Nil(t, tree.Find("a/zzz"))
}

func TestTreeModel_RestoreExpansion(t *testing.T) {
	tree := NewTreeModel()
	tree.RestoreExpansion(ExpansionState{"a": true, RootPath: true})
	tree.SetTree(sampleForest())

	assert.Equal(t, []string{"a", "a/b.txt", "a/c", "main.py"}, rowPaths(tree.Render()))

	snapshot := tree.Expansion()
	snapshot["a"] = false
	assert.True(t, tree.IsExpanded("a"), "Expansion must return a copy")
}
