package ui

import (
	"github.com/aura-ide/aura/internal/application"
	"github.com/aura-ide/aura/internal/domain"
)

// Action messages. Each represents something the user asked for,
// either through a key binding or the command palette.

// QuitMsg requests quitting the application
type QuitMsg struct{}

// ShowHelpMsg requests showing the help screen
type ShowHelpMsg struct{}

// ClearTerminalMsg requests wiping the terminal history
type ClearTerminalMsg struct{}

// CopyPathMsg requests copying the selected explorer path to the clipboard
type CopyPathMsg struct{}

// DeleteFileMsg requests the delete confirmation for the selected file
type DeleteFileMsg struct{}

// ExpandAllMsg requests expanding every folder of the explorer
type ExpandAllMsg struct{}

// NewFileMsg requests showing the new file dialog
type NewFileMsg struct{}

// RefreshTreeMsg requests re-fetching the file tree
type RefreshTreeMsg struct{}

// RunCommandMsg requests showing the shell command dialog
type RunCommandMsg struct{}

// RunOpenFileMsg requests running the open file on the build server
type RunOpenFileMsg struct{}

// RunPipelineMsg requests showing the pipeline run dialog
type RunPipelineMsg struct{}

// RunToolMsg requests showing the automation tool picker
type RunToolMsg struct{}

// SaveFileMsg requests saving the open file
type SaveFileMsg struct{}

// ToggleArtifactsMsg requests switching the pipeline pane to the reports view
type ToggleArtifactsMsg struct{}

// Completion messages. Remote calls finish on their own goroutine and
// report back through these; Update folds them into the workspace.

// treeLoadedMsg carries a finished tree fetch
type treeLoadedMsg struct {
	err   error
	nodes []domain.TreeNode
}

// statusPolledMsg carries a finished status poll
type statusPolledMsg struct {
	err    error
	status *domain.PipelineStatus
}

// pollTickMsg fires when the next status poll is due
type pollTickMsg struct{}

// storeWrittenMsg reports that the running store write finished
type storeWrittenMsg struct{}

// fileOpenedMsg carries a finished file read
type fileOpenedMsg struct {
	content string
	err     error
	ticket  application.OpenTicket
}

// fileSavedMsg carries a finished save of the open file
type fileSavedMsg struct {
	content string
	err     error
	path    string
}

// fileCreatedMsg carries a finished file creation
type fileCreatedMsg struct {
	err  error
	path string
}

// fileDeletedMsg carries a finished file deletion
type fileDeletedMsg struct {
	err  error
	path string
}

// commandFinishedMsg carries a finished shell command
type commandFinishedMsg struct {
	err    error
	result *domain.CommandResult
}

// toolFinishedMsg carries a finished automation tool run
type toolFinishedMsg struct {
	err    error
	result *domain.ToolResult
	tool   string
}

// runStartedMsg carries the acknowledgement of a pipeline start
type runStartedMsg struct {
	err     error
	request domain.RunRequest
}

// expansionLoadedMsg carries the persisted folder expansion
type expansionLoadedMsg struct {
	err   error
	state domain.ExpansionState
}

// clipboardMsg reports the outcome of a copy
type clipboardMsg struct {
	err  error
	path string
}
