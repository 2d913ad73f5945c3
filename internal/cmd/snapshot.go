package cmd

import (
	"context"
	"fmt"

	"github.com/aura-ide/aura/internal/domain"
)

// SnapshotCmd fetches the tree and the status concurrently
type SnapshotCmd struct {
	Format string `help:"Output format: table, json or yaml" enum:"table,json,yaml" default:"table"`
}

type snapshotOutput struct {
	Files       []string      `json:"files" yaml:"files"`
	Status      *statusOutput `json:"status,omitempty" yaml:"status,omitempty"`
	StatusError string        `json:"status_error,omitempty" yaml:"status_error,omitempty"`
	TreeError   string        `json:"tree_error,omitempty" yaml:"tree_error,omitempty"`
}

// Run executes the snapshot command
func (s *SnapshotCmd) Run(cli *CLI) error {
	snapshot := cli.Container.RemoteService.Snapshot(context.Background())
	if snapshot.TreeErr != nil && snapshot.StatusErr != nil {
		return fmt.Errorf("build service unreachable: %w", snapshot.StatusErr)
	}

	output := snapshotOutput{Files: filePaths(snapshot.Tree)}
	if snapshot.TreeErr != nil {
		output.TreeError = snapshot.TreeErr.Error()
	}
	if snapshot.StatusErr != nil {
		output.StatusError = snapshot.StatusErr.Error()
	} else if snapshot.Status != nil {
		status := newStatusOutput(snapshot.Status)
		output.Status = &status
	}

	if s.Format != formatTable {
		return printStructured(stdout, s.Format, output)
	}

	if output.TreeError != "" {
		fmt.Fprintf(stdout, "⚠ tree unavailable: %s\n", output.TreeError)
	} else {
		fmt.Fprintf(stdout, "Files: %d\n", len(output.Files))
		for _, path := range output.Files {
			fmt.Fprintf(stdout, "  %s\n", path)
		}
	}
	fmt.Fprintln(stdout)
	if output.StatusError != "" {
		fmt.Fprintf(stdout, "⚠ status unavailable: %s\n", output.StatusError)
	} else if snapshot.Status != nil {
		writeStatusTable(stdout, snapshot.Status)
	}
	return nil
}

// filePaths lists every file in the forest in pre-order
func filePaths(nodes []domain.TreeNode) []string {
	var paths []string
	var walk func([]domain.TreeNode)
	walk = func(nodes []domain.TreeNode) {
		for _, node := range nodes {
			if node.IsDir {
				walk(node.Children)
				continue
			}
			paths = append(paths, node.Path)
		}
	}
	walk(nodes)
	return paths
}
