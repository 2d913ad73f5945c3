package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"text/tabwriter"
	"time"

	"github.com/aura-ide/aura/internal/application"
	"github.com/aura-ide/aura/internal/config"
	"github.com/aura-ide/aura/internal/domain"
	"github.com/aura-ide/aura/internal/logging"
	"github.com/aura-ide/aura/internal/services"
)

// StatusCmd displays the pipeline status
type StatusCmd struct {
	Format       string `help:"Output format: table, json or yaml" enum:"table,json,yaml" default:"table"`
	PollInterval int    `help:"Milliseconds between polls in watch mode" default:"2000"`
	Watch        bool   `help:"Keep polling and print phase changes until the pipeline goes idle" short:"w"`
}

type phaseOutput struct {
	Name  string `json:"name" yaml:"name"`
	State string `json:"state" yaml:"state"`
}

type statusOutput struct {
	FilesCreated []string      `json:"files_created,omitempty" yaml:"files_created,omitempty"`
	IsRunning    bool          `json:"is_running" yaml:"is_running"`
	Logs         []string      `json:"logs,omitempty" yaml:"logs,omitempty"`
	Phases       []phaseOutput `json:"phases" yaml:"phases"`
	Progress     int           `json:"progress" yaml:"progress"`
	StatusLabel  string        `json:"status_label" yaml:"status_label"`
}

func newStatusOutput(status *domain.PipelineStatus) statusOutput {
	output := statusOutput{
		IsRunning:   status.IsRunning,
		Logs:        status.Logs,
		Phases:      make([]phaseOutput, len(status.Phases)),
		Progress:    status.Progress,
		StatusLabel: status.StatusLabel,
	}
	for i, phase := range status.Phases {
		output.Phases[i] = phaseOutput{Name: phase.Name, State: string(phase.State)}
	}
	if status.Artifacts != nil {
		output.FilesCreated = status.Artifacts.FilesCreated
	}
	return output
}

// Run executes the status command
func (s *StatusCmd) Run(cli *CLI) error {
	if s.Watch {
		if s.PollInterval == config.DefaultPollIntervalMs && cli.settings != nil && cli.settings.PollIntervalMs != nil {
			s.PollInterval = *cli.settings.PollIntervalMs
		}
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		return watchStatus(ctx, stdout, cli.Container.RemoteService, time.Duration(s.PollInterval)*time.Millisecond)
	}

	status, err := cli.Container.RemoteService.FetchStatus(context.Background())
	if err != nil {
		return err
	}
	return s.print(stdout, status)
}

func (s *StatusCmd) print(w io.Writer, status *domain.PipelineStatus) error {
	if s.Format != formatTable {
		return printStructured(w, s.Format, newStatusOutput(status))
	}
	writeStatusTable(w, status)
	return nil
}

func writeStatusTable(w io.Writer, status *domain.PipelineStatus) {
	state := "idle"
	if status.IsRunning {
		state = "running"
	}
	fmt.Fprintf(w, "Status: %s (%s, %d%%)\n\n", status.StatusLabel, state, status.Progress)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "PHASE\tSTATE")
	for _, phase := range status.Phases {
		fmt.Fprintf(tw, "%s\t%s\n", phase.Name, phase.State)
	}
	tw.Flush()

	if len(status.Logs) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Logs:")
		for _, line := range status.Logs {
			fmt.Fprintf(w, "  %s\n", line)
		}
	}
}

// watchStatus polls through a StatusReconciler and prints each transition.
// It returns once a running pipeline goes idle, or at once when nothing runs.
func watchStatus(ctx context.Context, w io.Writer, remote *services.RemoteService, interval time.Duration) error {
	reconciler := application.NewStatusReconciler(interval)
	ticker := time.NewTicker(reconciler.Interval())
	defer ticker.Stop()

	printed := false
	for {
		if reconciler.BeginPoll() {
			status, err := remote.FetchStatus(ctx)
			switch {
			case err != nil:
				reconciler.Fail(err)
				logging.Logger.Debug("Status poll failed", "failures", reconciler.ConsecutiveFailures(), "error", err)
			case !printed:
				reconciler.Complete(status)
				writeStatusTable(w, status)
				printed = true
				if !status.IsRunning {
					return nil
				}
			default:
				result := reconciler.Complete(status)
				for _, phase := range result.Changed {
					fmt.Fprintf(w, "%s  %s → %s\n", time.Now().Format("15:04:05"), phase.Name, phase.State)
				}
				if result.Finished {
					fmt.Fprintf(w, "✔ PIPELINE FINISHED: %s\n", status.StatusLabel)
					return nil
				}
			}
		}

		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}
