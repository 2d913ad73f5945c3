package ui

import (
	"context"
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/aura-ide/aura/internal/application"
	"github.com/aura-ide/aura/internal/domain"
	"github.com/aura-ide/aura/internal/logging"
	"github.com/aura-ide/aura/internal/services"
)

// remoteCmds builds the tea.Cmds that talk to the build server.
// Every call gets its own deadline; results come back as messages.
type remoteCmds struct {
	remote  *services.RemoteService
	timeout time.Duration
}

func (r remoteCmds) context() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), r.timeout)
}

func (r remoteCmds) fetchTree() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := r.context()
		defer cancel()

		nodes, err := r.remote.ListTree(ctx)
		if err != nil {
			logging.Logger.Warn("Failed to fetch tree", "error", err)
		}
		return treeLoadedMsg{nodes: nodes, err: err}
	}
}

func (r remoteCmds) pollStatus() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := r.context()
		defer cancel()

		status, err := r.remote.FetchStatus(ctx)
		if err != nil {
			logging.Logger.Debug("Status poll failed", "error", err)
		}
		return statusPolledMsg{status: status, err: err}
	}
}

// schedulePoll waits interval then fires the next tick. Each tick schedules
// its successor, so exactly one tick is outstanding whatever the poll does.
func schedulePoll(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(time.Time) tea.Msg {
		return pollTickMsg{}
	})
}

func (r remoteCmds) openFile(ticket application.OpenTicket) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := r.context()
		defer cancel()

		content, err := r.remote.ReadFile(ctx, ticket.Path)
		return fileOpenedMsg{ticket: ticket, content: content, err: err}
	}
}

func (r remoteCmds) saveFile(path, content string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := r.context()
		defer cancel()

		err := r.remote.WriteFile(ctx, path, content)
		return fileSavedMsg{path: path, content: content, err: err}
	}
}

func (r remoteCmds) createFile(path string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := r.context()
		defer cancel()

		err := r.remote.WriteFile(ctx, path, application.DefaultNewFileContent)
		return fileCreatedMsg{path: path, err: err}
	}
}

func (r remoteCmds) deleteFile(path string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := r.context()
		defer cancel()

		err := r.remote.DeleteFile(ctx, path)
		return fileDeletedMsg{path: path, err: err}
	}
}

func (r remoteCmds) runCommand(command string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := r.context()
		defer cancel()

		result, err := r.remote.RunCommand(ctx, command)
		return commandFinishedMsg{result: result, err: err}
	}
}

func (r remoteCmds) invokeTool(tool, target string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := r.context()
		defer cancel()

		result, err := r.remote.InvokeTool(ctx, tool, target)
		return toolFinishedMsg{tool: tool, result: result, err: err}
	}
}

func (r remoteCmds) startRun(params services.StartRunParams) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := r.context()
		defer cancel()

		req, err := r.remote.StartRun(ctx, params)
		return runStartedMsg{request: req, err: err}
	}
}

func loadExpansion(workspace *services.WorkspaceService) tea.Cmd {
	return func() tea.Msg {
		state, err := workspace.LoadExpansion(context.Background())
		return expansionLoadedMsg{state: state, err: err}
	}
}

// storeWrite is one queued persistence call
type storeWrite func(ctx context.Context, workspace *services.WorkspaceService)

func runStoreWrite(workspace *services.WorkspaceService, w storeWrite) tea.Cmd {
	return func() tea.Msg {
		w(context.Background(), workspace)
		return storeWrittenMsg{}
	}
}

func journalEntries(entries []domain.EventLogEntry) storeWrite {
	return func(ctx context.Context, workspace *services.WorkspaceService) {
		for _, entry := range entries {
			workspace.Journal(ctx, entry)
		}
	}
}

func saveExpansion(state domain.ExpansionState) storeWrite {
	return func(ctx context.Context, workspace *services.WorkspaceService) {
		for path, expanded := range state {
			if err := workspace.SaveExpansion(ctx, path, expanded); err != nil {
				logging.Logger.Warn("Failed to persist folder expansion", "path", path, "error", err)
			}
		}
	}
}

func recordRun(record domain.RunRecord) storeWrite {
	return func(ctx context.Context, workspace *services.WorkspaceService) {
		if err := workspace.RecordRun(ctx, record); err != nil {
			logging.Logger.Warn("Failed to record run", "error", err)
		}
	}
}

func copyToClipboard(path string) tea.Cmd {
	return func() tea.Msg {
		return clipboardMsg{path: path, err: clipboard.WriteAll(path)}
	}
}
