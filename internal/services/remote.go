package services

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/aura-ide/aura/internal/domain"
	"github.com/aura-ide/aura/internal/logging"
	"github.com/aura-ide/aura/internal/ports"
)

// RemoteService provides build service operations for the UI and the CLI
type RemoteService struct {
	gateway ports.RemoteGateway
}

// NewRemoteService creates a new RemoteService
func NewRemoteService(gateway ports.RemoteGateway) *RemoteService {
	return &RemoteService{
		gateway: gateway,
	}
}

// ListTree fetches the full file listing
func (s *RemoteService) ListTree(ctx context.Context) ([]domain.TreeNode, error) {
	nodes, err := s.gateway.ListTree(ctx)
	if err != nil {
		logging.Logger.Debug("Failed to list tree", "error", err)
		return nil, fmt.Errorf("failed to list tree: %w", err)
	}
	logging.Logger.Debug("Tree listed", "roots", len(nodes))
	return nodes, nil
}

// ReadFile reads a remote file
func (s *RemoteService) ReadFile(ctx context.Context, path string) (string, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return "", domain.ErrEmptyPath
	}
	logging.Logger.Debug("Reading file", "path", path)

	content, err := s.gateway.ReadFile(ctx, path)
	if err != nil {
		logging.Logger.Warn("Failed to read file", "path", path, "error", err)
		return "", err
	}
	return content, nil
}

// WriteFile creates or updates a remote file
func (s *RemoteService) WriteFile(ctx context.Context, path, content string) error {
	path = strings.TrimSpace(path)
	if path == "" {
		return domain.ErrEmptyPath
	}
	logging.Logger.Info("Writing file", "path", path, "bytes", len(content))

	if err := s.gateway.WriteFile(ctx, path, content); err != nil {
		logging.Logger.Error("Failed to write file", "path", path, "error", err)
		return err
	}
	return nil
}

// DeleteFile removes a remote file
func (s *RemoteService) DeleteFile(ctx context.Context, path string) error {
	path = strings.TrimSpace(path)
	if path == "" {
		return domain.ErrEmptyPath
	}
	logging.Logger.Info("Deleting file", "path", path)

	if err := s.gateway.DeleteFile(ctx, path); err != nil {
		logging.Logger.Error("Failed to delete file", "path", path, "error", err)
		return err
	}
	return nil
}

// FetchStatus pulls one pipeline status snapshot
func (s *RemoteService) FetchStatus(ctx context.Context) (*domain.PipelineStatus, error) {
	status, err := s.gateway.FetchStatus(ctx)
	if err != nil {
		logging.Logger.Debug("Status poll failed", "error", err)
		return nil, err
	}
	return status, nil
}

// StartRun starts the pipeline. An image path is sent as a data URL.
func (s *RemoteService) StartRun(ctx context.Context, params StartRunParams) (domain.RunRequest, error) {
	req := domain.RunRequest{
		Description:  params.Description,
		ModelID:      strings.TrimSpace(params.ModelID),
		Requirements: params.Requirements,
	}
	if req.ModelID == "" {
		req.ModelID = domain.DefaultModelID
	}

	if params.ImagePath != "" {
		data, err := LoadImageDataURL(params.ImagePath)
		if err != nil {
			return req, err
		}
		req.ImageData = data
	}

	logging.Logger.Info("Starting pipeline run",
		"model", req.ModelID,
		"hasImage", req.ImageData != "",
		"descriptionLength", len(req.Description))

	if err := s.gateway.StartRun(ctx, req); err != nil {
		logging.Logger.Error("Failed to start pipeline run", "error", err)
		return req, err
	}
	return req, nil
}

// RunCommand runs command on the service host. The text is sent verbatim.
func (s *RemoteService) RunCommand(ctx context.Context, command string) (*domain.CommandResult, error) {
	logging.Logger.Info("Running remote command", "command", command)

	result, err := s.gateway.RunCommand(ctx, command)
	if err != nil {
		logging.Logger.Warn("Remote command failed", "command", command, "error", err)
		return nil, err
	}
	logging.Logger.Debug("Remote command finished", "exitCode", result.ExitCode)
	return result, nil
}

// InvokeTool runs an automation tool against target, which may be empty
func (s *RemoteService) InvokeTool(ctx context.Context, tool, target string) (*domain.ToolResult, error) {
	tool = strings.TrimSpace(tool)
	if tool == "" {
		return nil, fmt.Errorf("tool name must not be empty")
	}
	logging.Logger.Info("Invoking automation tool", "tool", tool, "target", target)

	result, err := s.gateway.InvokeTool(ctx, tool, target)
	if err != nil {
		logging.Logger.Warn("Automation tool failed", "tool", tool, "error", err)
		return nil, err
	}
	return result, nil
}

// Snapshot fetches the tree and the status concurrently.
// A failure of one half does not cancel the other.
func (s *RemoteService) Snapshot(ctx context.Context) *Snapshot {
	snapshot := &Snapshot{}

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		nodes, err := s.ListTree(ctx)
		snapshot.Tree = nodes
		snapshot.TreeErr = err
		return nil
	})

	g.Go(func() error {
		status, err := s.FetchStatus(ctx)
		snapshot.Status = status
		snapshot.StatusErr = err
		return nil
	})

	_ = g.Wait()

	logging.Logger.Debug("Snapshot fetched",
		"treeError", snapshot.TreeErr,
		"statusError", snapshot.StatusErr)
	return snapshot
}
