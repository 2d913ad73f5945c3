package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/aura-ide/aura/internal/application"
	"github.com/aura-ide/aura/internal/domain"
)

// ExitError carries a process exit code for a failure already printed
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("exit status %d", e.Code)
}

// newConsole returns a workspace whose terminal lines are printed to w and
// journaled like the control panel's
func (c *Container) newConsole(w io.Writer) *application.Workspace {
	ws := application.NewWorkspace(application.WorkspaceOptions{
		IsMutating: c.Options.Tools.IsMutating,
	})
	journal := c.NewWorkspaceService()
	ws.OnAppend(func(entry domain.EventLogEntry) {
		fmt.Fprintln(w, entry.Text)
		journal.Journal(context.Background(), entry)
	})
	return ws
}

// lastFailed reports whether the newest terminal line is an error
func lastFailed(ws *application.Workspace) bool {
	entry, ok := ws.Log.Last()
	return ok && entry.Severity == domain.SeverityError
}
