package application

import (
	"fmt"
	"strings"
	"time"

	"github.com/aura-ide/aura/internal/domain"
)

// BeginCommand echoes a shell command before it is sent.
// The text is passed through unescaped; the service interprets it.
func (w *Workspace) BeginCommand(command string) {
	w.info("$ " + command)
}

// ApplyCommand folds the result of a shell command
func (w *Workspace) ApplyCommand(result *domain.CommandResult, err error) {
	if err != nil {
		w.fail(describeFailure("Execution Error", err))
		return
	}
	if result == nil {
		return
	}

	output := strings.TrimRight(result.Output, "\n")
	if output == "" {
		output = strings.TrimRight(result.Stdout+result.Stderr, "\n")
	}
	switch {
	case result.ExitCode != 0 && output != "":
		w.fail(output)
	case result.ExitCode != 0:
		w.fail(fmt.Sprintf("exit status %d", result.ExitCode))
	case output != "":
		w.info(output)
	}
}

// OpenFileCommand builds the command that runs the open file
func (w *Workspace) OpenFileCommand() (string, error) {
	session := w.Editor.Session()
	if !session.HasOpen() {
		return "", domain.ErrNothingOpen
	}
	if strings.HasSuffix(session.OpenPath, ".py") {
		return fmt.Sprintf("python %q", session.OpenPath), nil
	}
	return fmt.Sprintf("cat %q", session.OpenPath), nil
}

// BeginTool echoes an automation tool invocation
func (w *Workspace) BeginTool(tool string) {
	w.info(fmt.Sprintf("⚙ TRIGGERING %s AUTOMATION...", strings.ToUpper(tool)))
}

// ApplyTool folds a tool result. Mutating tools refresh the tree unless the
// request itself failed.
func (w *Workspace) ApplyTool(tool string, result *domain.ToolResult, err error) Effects {
	if err != nil {
		w.fail(describeFailure("Automation Error", err))
		return Effects{}
	}
	if result != nil {
		if output := strings.TrimRight(result.Output, "\n"); output != "" {
			w.info(output)
		}
		if result.Error != "" {
			w.fail("Error: " + result.Error)
		}
	}
	return Effects{RefreshTree: w.isMutating(tool)}
}

// BeginRun validates a pipeline start
func (w *Workspace) BeginRun(req domain.RunRequest) (domain.RunRequest, error) {
	if w.Status.IsRunning() {
		return req, domain.ErrRunInFlight
	}
	if strings.TrimSpace(req.ModelID) == "" {
		req.ModelID = domain.DefaultModelID
	}
	return req, nil
}

// ApplyRun folds the acknowledgement of a pipeline start and returns the
// record to keep in the run history
func (w *Workspace) ApplyRun(req domain.RunRequest, err error) domain.RunRecord {
	record := domain.RunRecord{
		Accepted:     err == nil,
		CreatedAt:    time.Now().UTC(),
		Description:  req.Description,
		HasImage:     req.ImageData != "",
		ModelID:      req.ModelID,
		Requirements: req.Requirements,
	}
	if err != nil {
		record.Error = err.Error()
		w.fail("⚠ ERROR: " + err.Error())
		return record
	}
	w.info("🚀 INITIATING MULTI-AGENT ORCHESTRATION...")
	return record
}
