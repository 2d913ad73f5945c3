package cmd

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/aura-ide/aura/internal/domain"
	"github.com/aura-ide/aura/internal/logging"
)

// TreeCmd prints the remote file tree
type TreeCmd struct {
	All    bool   `help:"Expand every directory instead of using the saved explorer state"`
	Format string `help:"Output format: table, json or yaml" enum:"table,json,yaml" default:"table"`
}

type treeRowOutput struct {
	Depth int    `json:"depth" yaml:"depth"`
	IsDir bool   `json:"is_dir" yaml:"is_dir"`
	Path  string `json:"path" yaml:"path"`
}

// Run executes the tree command
func (t *TreeCmd) Run(cli *CLI) error {
	ctx := context.Background()
	container := cli.Container

	nodes, err := container.RemoteService.ListTree(ctx)
	if err != nil {
		return err
	}

	tree := domain.NewTreeModel()
	if !t.All {
		state, err := container.NewWorkspaceService().LoadExpansion(ctx)
		if err != nil {
			logging.Logger.Warn("Using default expansion", "error", err)
		} else {
			tree.RestoreExpansion(state)
		}
	}
	tree.SetTree(nodes)
	if t.All {
		tree.ExpandAll()
	}

	rows := tree.RenderFiltered(container.Filter.Hidden)

	if t.Format == formatTable {
		writeTreeTable(stdout, rows)
		return nil
	}

	output := make([]treeRowOutput, len(rows))
	for i, row := range rows {
		output[i] = treeRowOutput{Depth: row.Depth, IsDir: row.IsDir, Path: row.Path}
	}
	return printStructured(stdout, t.Format, output)
}

func writeTreeTable(w io.Writer, rows []domain.TreeRow) {
	if len(rows) == 0 {
		fmt.Fprintln(w, "No files yet.")
		return
	}
	for _, row := range rows {
		indent := strings.Repeat("  ", max(row.Depth-1, 0))
		name := row.Name
		if row.IsDir {
			name += "/"
		}
		fmt.Fprintf(w, "%s%s\n", indent, name)
	}
}
