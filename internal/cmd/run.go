package cmd

import (
	"context"
	"errors"

	"github.com/aura-ide/aura/internal/domain"
	"github.com/aura-ide/aura/internal/logging"
	"github.com/aura-ide/aura/internal/services"
)

// RunCmd starts a pipeline run
type RunCmd struct {
	Description  string `help:"What to build" name:"desc" required:""`
	Image        string `help:"Sketch image to attach" type:"existingfile"`
	Model        string `help:"Model identifier" env:"AURA_MODEL_ID"`
	Requirements string `help:"Technical requirements" name:"reqs"`
}

// Run executes the run command
func (r *RunCmd) Run(cli *CLI) error {
	ctx := context.Background()
	container := cli.Container
	console := container.newConsole(stdout)

	if r.Model == "" && cli.settings != nil {
		r.Model = cli.settings.ModelID
	}

	// Refuse while a run is in progress, as the control panel does
	status, err := container.RemoteService.FetchStatus(ctx)
	if err != nil {
		logging.Logger.Warn("Could not check pipeline state before run", "error", err)
	}
	console.ApplyStatus(status, err)

	if _, err := console.BeginRun(domain.RunRequest{ModelID: r.Model}); err != nil {
		return err
	}

	req, err := container.RemoteService.StartRun(ctx, services.StartRunParams{
		Description:  r.Description,
		ImagePath:    r.Image,
		ModelID:      r.Model,
		Requirements: r.Requirements,
	})
	record := console.ApplyRun(req, err)
	if recordErr := container.NewWorkspaceService().RecordRun(ctx, record); recordErr != nil {
		logging.Logger.Warn("Run not recorded", "error", recordErr)
	}
	if err != nil {
		return &ExitError{Code: 1}
	}
	return nil
}

// ExecCmd runs a shell command on the build service
type ExecCmd struct {
	Command string `arg:"" help:"Command line, sent verbatim"`
}

// Run executes the exec command
func (e *ExecCmd) Run(cli *CLI) error {
	console := cli.Container.newConsole(stdout)

	console.BeginCommand(e.Command)
	result, err := cli.Container.RemoteService.RunCommand(context.Background(), e.Command)
	console.ApplyCommand(result, err)

	switch {
	case err != nil:
		return &ExitError{Code: 1}
	case result != nil && result.ExitCode != 0:
		return &ExitError{Code: result.ExitCode}
	}
	return nil
}

// ToolCmd invokes an automation tool
type ToolCmd struct {
	Name   string `arg:"" help:"Tool name, e.g. auto_doc, test_oracle or ci_cd"`
	Target string `help:"File the tool operates on" short:"t"`
}

// Run executes the tool command
func (t *ToolCmd) Run(cli *CLI) error {
	console := cli.Container.newConsole(stdout)

	console.BeginTool(t.Name)
	result, err := cli.Container.RemoteService.InvokeTool(context.Background(), t.Name, t.Target)
	effects := console.ApplyTool(t.Name, result, err)
	if effects.RefreshTree {
		logging.Logger.Debug("Tool may have changed remote files", "tool", t.Name)
	}

	if err != nil || lastFailed(console) {
		return &ExitError{Code: 1}
	}
	return nil
}

// IsExitError reports whether err only carries an exit code
func IsExitError(err error) (int, bool) {
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code, true
	}
	return 0, false
}
