package domain

import "time"

// DefaultModelID is the model requested when the user does not pick one
const DefaultModelID = "gemini-2.0-flash"

// RunRequest starts a pipeline run
type RunRequest struct {
	Description  string
	ImageData    string // data URL, empty when no sketch is attached
	ModelID      string
	Requirements string
}

// CommandResult is the outcome of a remote shell command
type CommandResult struct {
	ExitCode int
	Output   string
	Stderr   string
	Stdout   string
}

// ToolResult is the outcome of an automation tool invocation
type ToolResult struct {
	Error  string
	Output string
}

// RunRecord is a locally recorded pipeline start
type RunRecord struct {
	Accepted     bool
	CreatedAt    time.Time
	Description  string
	Error        string
	HasImage     bool
	ID           string
	ModelID      string
	Requirements string
}
