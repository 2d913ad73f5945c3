package domain

import "strings"

// RootPath is the designated root of the remote file tree
const RootPath = "."

// TreeNode is one entry of the remote file listing
type TreeNode struct {
	Children []TreeNode
	IsDir    bool
	Name     string
	Path     string
}

// Depth returns the number of path segments ("." has depth 0)
func (n TreeNode) Depth() int {
	return PathDepth(n.Path)
}

// PathDepth returns the number of slash-delimited segments in path
func PathDepth(path string) int {
	path = strings.Trim(path, "/")
	if path == "" || path == RootPath {
		return 0
	}
	return strings.Count(path, "/") + 1
}

// ExpansionState maps a path to its expanded flag.
// Entries survive tree refreshes; a missing entry means collapsed, except for the root.
type ExpansionState map[string]bool

// TreeRow is one visible line of the explorer
type TreeRow struct {
	Active   bool
	Depth    int
	Expanded bool
	IsDir    bool
	Name     string
	Path     string
}

// TreeModel holds the remote listing and the per-path expansion flags
type TreeModel struct {
	activePath string
	expansion  ExpansionState
	nodes      []TreeNode
	size       int
}

// NewTreeModel creates an empty tree with only the root expanded
func NewTreeModel() *TreeModel {
	return &TreeModel{
		expansion: ExpansionState{RootPath: true},
	}
}

// SetTree replaces the whole forest. Expansion flags are kept.
func (t *TreeModel) SetTree(nodes []TreeNode) {
	t.nodes = nodes
	t.size = countNodes(nodes)
}

// Nodes returns the current forest
func (t *TreeModel) Nodes() []TreeNode {
	return t.nodes
}

// Size returns the number of nodes in the forest
func (t *TreeModel) Size() int {
	return t.size
}

// Toggle flips the expansion flag of exactly one path
func (t *TreeModel) Toggle(path string) {
	t.expansion[path] = !t.IsExpanded(path)
}

// SetExpanded sets the expansion flag of path
func (t *TreeModel) SetExpanded(path string, expanded bool) {
	t.expansion[path] = expanded
}

// IsExpanded reports whether path is expanded
func (t *TreeModel) IsExpanded(path string) bool {
	if expanded, ok := t.expansion[path]; ok {
		return expanded
	}
	return path == RootPath
}

// Expansion returns a copy of the expansion flags
func (t *TreeModel) Expansion() ExpansionState {
	out := make(ExpansionState, len(t.expansion))
	for path, expanded := range t.expansion {
		out[path] = expanded
	}
	return out
}

// RestoreExpansion merges persisted flags into the current state
func (t *TreeModel) RestoreExpansion(state ExpansionState) {
	for path, expanded := range state {
		t.expansion[path] = expanded
	}
}

// SetActive marks path as the active (open) file
func (t *TreeModel) SetActive(path string) {
	t.activePath = path
}

// Contains reports whether path is present in the current forest
func (t *TreeModel) Contains(path string) bool {
	return findNode(t.nodes, path) != nil
}

// Find returns the node for path or nil
func (t *TreeModel) Find(path string) *TreeNode {
	return findNode(t.nodes, path)
}

// Render returns the visible rows in depth-first pre-order.
// A collapsed root yields a single row for the root itself.
func (t *TreeModel) Render() []TreeRow {
	return t.RenderFiltered(nil)
}

// RenderFiltered is Render with rows for which hidden returns true removed.
// A hidden directory removes its whole subtree.
func (t *TreeModel) RenderFiltered(hidden func(path string, isDir bool) bool) []TreeRow {
	if !t.IsExpanded(RootPath) {
		return []TreeRow{{
			Active: t.activePath == RootPath,
			Depth:  0,
			IsDir:  true,
			Name:   RootPath,
			Path:   RootPath,
		}}
	}

	rows := make([]TreeRow, 0, t.size)
	var walk func(nodes []TreeNode)
	walk = func(nodes []TreeNode) {
		for _, node := range nodes {
			if hidden != nil && hidden(node.Path, node.IsDir) {
				continue
			}
			expanded := node.IsDir && t.IsExpanded(node.Path)
			rows = append(rows, TreeRow{
				Active:   node.Path == t.activePath,
				Depth:    node.Depth(),
				Expanded: expanded,
				IsDir:    node.IsDir,
				Name:     node.Name,
				Path:     node.Path,
			})
			if expanded {
				walk(node.Children)
			}
		}
	}
	walk(t.nodes)
	return rows
}

// ExpandAll marks every directory in the forest as expanded
func (t *TreeModel) ExpandAll() {
	var walk func(nodes []TreeNode)
	walk = func(nodes []TreeNode) {
		for _, node := range nodes {
			if node.IsDir {
				t.expansion[node.Path] = true
				walk(node.Children)
			}
		}
	}
	t.expansion[RootPath] = true
	walk(t.nodes)
}

func countNodes(nodes []TreeNode) int {
	count := 0
	for _, node := range nodes {
		count += 1 + countNodes(node.Children)
	}
	return count
}

func findNode(nodes []TreeNode, path string) *TreeNode {
	for i := range nodes {
		if nodes[i].Path == path {
			return &nodes[i]
		}
		if nodes[i].IsDir && strings.HasPrefix(path, nodes[i].Path+"/") {
			return findNode(nodes[i].Children, path)
		}
	}
	return nil
}
