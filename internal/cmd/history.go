package cmd

import (
	"context"
	"fmt"
	"text/tabwriter"

	"github.com/aura-ide/aura/internal/theme"
)

// LogCmd prints the persisted terminal journal
type LogCmd struct {
	Limit int `help:"Number of most recent lines to show" default:"100" short:"n"`
}

// Run executes the log command
func (l *LogCmd) Run(cli *CLI) error {
	entries, err := cli.Container.NewWorkspaceService().History(context.Background(), l.Limit)
	if err != nil {
		return err
	}

	if len(entries) == 0 {
		fmt.Fprintln(stdout, "Journal is empty.")
		return nil
	}

	for _, entry := range entries {
		fmt.Fprintf(stdout, "%s  %s\n", entry.At.Local().Format("2006-01-02 15:04:05"), theme.SeverityStyle(entry.Severity).Render(entry.Text))
	}
	return nil
}

// RunsCmd prints the pipeline run history
type RunsCmd struct {
	Format string `help:"Output format: table, json or yaml" enum:"table,json,yaml" default:"table"`
	Limit  int    `help:"Number of most recent runs to show" default:"20" short:"n"`
}

type runOutput struct {
	Accepted    bool   `json:"accepted" yaml:"accepted"`
	CreatedAt   string `json:"created_at" yaml:"created_at"`
	Description string `json:"description" yaml:"description"`
	Error       string `json:"error,omitempty" yaml:"error,omitempty"`
	HasImage    bool   `json:"has_image" yaml:"has_image"`
	ID          string `json:"id" yaml:"id"`
	ModelID     string `json:"model_id" yaml:"model_id"`
}

// Run executes the runs command
func (r *RunsCmd) Run(cli *CLI) error {
	runs, err := cli.Container.NewWorkspaceService().Runs(context.Background(), r.Limit)
	if err != nil {
		return err
	}

	if r.Format != formatTable {
		output := make([]runOutput, len(runs))
		for i, run := range runs {
			output[i] = runOutput{
				Accepted:    run.Accepted,
				CreatedAt:   run.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
				Description: run.Description,
				Error:       run.Error,
				HasImage:    run.HasImage,
				ID:          run.ID,
				ModelID:     run.ModelID,
			}
		}
		return printStructured(stdout, r.Format, output)
	}

	if len(runs) == 0 {
		fmt.Fprintln(stdout, "No runs recorded yet.")
		return nil
	}

	w := tabwriter.NewWriter(stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "STARTED\tMODEL\tACCEPTED\tDESCRIPTION")
	for _, run := range runs {
		accepted := "yes"
		if !run.Accepted {
			accepted = "no: " + run.Error
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
			run.CreatedAt.Local().Format("2006-01-02 15:04"),
			run.ModelID,
			accepted,
			truncate(run.Description, 60))
	}
	return w.Flush()
}

func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit-1]) + "…"
}
