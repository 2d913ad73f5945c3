package ports

import (
	"context"

	"github.com/aura-ide/aura/internal/domain"
)

// TreeLister lists the remote file tree
type TreeLister interface {
	ListTree(ctx context.Context) ([]domain.TreeNode, error)
}

// FileReader reads remote files
type FileReader interface {
	ReadFile(ctx context.Context, path string) (string, error)
}

// FileWriter creates, updates, and deletes remote files.
// WriteFile is used for both create and update.
type FileWriter interface {
	DeleteFile(ctx context.Context, path string) error
	WriteFile(ctx context.Context, path, content string) error
}

// StatusFetcher pulls pipeline status snapshots
type StatusFetcher interface {
	FetchStatus(ctx context.Context) (*domain.PipelineStatus, error)
}

// PipelineStarter starts a pipeline run. The reply is an acknowledgement only.
type PipelineStarter interface {
	StartRun(ctx context.Context, req domain.RunRequest) error
}

// AutomationRunner runs shell commands and automation tools remotely.
// Command and tool text is passed through verbatim.
type AutomationRunner interface {
	InvokeTool(ctx context.Context, toolName, targetPath string) (*domain.ToolResult, error)
	RunCommand(ctx context.Context, command string) (*domain.CommandResult, error)
}

// RemoteGateway is the composite interface
type RemoteGateway interface {
	TreeLister
	FileReader
	FileWriter
	StatusFetcher
	PipelineStarter
	AutomationRunner
}
