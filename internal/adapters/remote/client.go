package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/aura-ide/aura/internal/domain"
	"github.com/aura-ide/aura/internal/logging"
	"github.com/aura-ide/aura/internal/ports"
)

const defaultUnaryTimeout = 30 * time.Second

// Client implements ports.RemoteGateway over the build service HTTP API
type Client struct {
	baseURL      string
	client       *http.Client
	phaseOrder   []string
	unaryTimeout time.Duration
}

// Verify interface compliance at compile time
var _ ports.RemoteGateway = (*Client)(nil)

// New creates a Client for baseURL using a default http.Client
func New(baseURL string) *Client {
	return NewWithClient(baseURL, &http.Client{})
}

// NewWithClient creates a Client using the given http.Client
func NewWithClient(baseURL string, client *http.Client) *Client {
	if client == nil {
		client = &http.Client{}
	}
	return &Client{
		baseURL:      strings.TrimRight(baseURL, "/"),
		client:       client,
		phaseOrder:   domain.DefaultPhases,
		unaryTimeout: defaultUnaryTimeout,
	}
}

// WithUnaryTimeout returns a copy using timeout for each request
func (c *Client) WithUnaryTimeout(timeout time.Duration) *Client {
	clone := *c
	clone.unaryTimeout = timeout
	return &clone
}

// WithPhaseOrder returns a copy that orders status phases by phases
func (c *Client) WithPhaseOrder(phases []string) *Client {
	clone := *c
	if len(phases) > 0 {
		clone.phaseOrder = phases
	}
	return &clone
}

// BaseURL returns the service root
func (c *Client) BaseURL() string {
	return c.baseURL
}

// ListTree fetches the full file forest
func (c *Client) ListTree(ctx context.Context) ([]domain.TreeNode, error) {
	body, err := c.request(ctx, http.MethodGet, "/api/files/tree", nil, nil)
	if err != nil {
		return nil, err
	}
	var nodes []treeNodeDTO
	if err := json.Unmarshal(body, &nodes); err != nil {
		return nil, fmt.Errorf("decode tree: %w", err)
	}
	return toTreeNodes(nodes), nil
}

// ReadFile fetches the content of path
func (c *Client) ReadFile(ctx context.Context, path string) (string, error) {
	query := url.Values{}
	query.Set("path", path)
	body, err := c.request(ctx, http.MethodGet, "/api/file", query, nil)
	if err != nil {
		return "", err
	}
	var resp fileContentDTO
	if err := json.Unmarshal(body, &resp); err != nil {
		return "", fmt.Errorf("decode file: %w", err)
	}
	return resp.Content, nil
}

// WriteFile creates or replaces path with content
func (c *Client) WriteFile(ctx context.Context, path, content string) error {
	_, err := c.request(ctx, http.MethodPost, "/api/file", nil, writeFileDTO{Path: path, Content: content})
	return err
}

// DeleteFile removes path (a file or a whole directory)
func (c *Client) DeleteFile(ctx context.Context, path string) error {
	query := url.Values{}
	query.Set("path", path)
	_, err := c.request(ctx, http.MethodDelete, "/api/file", query, nil)
	return err
}

// FetchStatus pulls one pipeline snapshot
func (c *Client) FetchStatus(ctx context.Context) (*domain.PipelineStatus, error) {
	body, err := c.request(ctx, http.MethodGet, "/api/status", nil, nil)
	if err != nil {
		return nil, err
	}
	var resp statusDTO
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("decode status: %w", err)
	}
	return resp.toDomain(c.phaseOrder), nil
}

// StartRun asks the service to start the pipeline
func (c *Client) StartRun(ctx context.Context, req domain.RunRequest) error {
	payload := runRequestDTO{
		UserDesc:  req.Description,
		VoiceReqs: req.Requirements,
		ModelID:   req.ModelID,
	}
	if req.ImageData != "" {
		payload.ImageData = &req.ImageData
	}
	_, err := c.request(ctx, http.MethodPost, "/api/run", nil, payload)
	return err
}

// RunCommand executes command on the service host. The text is not escaped.
func (c *Client) RunCommand(ctx context.Context, command string) (*domain.CommandResult, error) {
	query := url.Values{}
	query.Set("command", command)
	body, err := c.request(ctx, http.MethodGet, "/api/terminal/run", query, nil)
	if err != nil {
		return nil, err
	}
	var resp commandResultDTO
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("decode command result: %w", err)
	}
	if resp.Error != "" {
		return nil, &RemoteError{Operation: "run command", Message: resp.Error}
	}
	return resp.toDomain(), nil
}

// InvokeTool runs an automation tool, optionally against targetPath.
// A remote-reported failure is returned in ToolResult.Error, not as an error.
func (c *Client) InvokeTool(ctx context.Context, toolName, targetPath string) (*domain.ToolResult, error) {
	query := url.Values{}
	query.Set("tool_name", toolName)
	if targetPath != "" {
		query.Set("target_file", targetPath)
	}
	body, err := c.request(ctx, http.MethodPost, "/api/automation/run", query, nil)
	if err != nil {
		return nil, err
	}
	var resp toolResultDTO
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("decode tool result: %w", err)
	}
	return &domain.ToolResult{Output: resp.Output, Error: resp.Error}, nil
}

func (c *Client) request(ctx context.Context, method, path string, query url.Values, body any) ([]byte, error) {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	reqCtx := ctx
	if c.unaryTimeout > 0 {
		if deadline, ok := ctx.Deadline(); !ok || time.Until(deadline) > c.unaryTimeout {
			var cancel context.CancelFunc
			reqCtx, cancel = context.WithTimeout(ctx, c.unaryTimeout)
			defer cancel()
		}
	}
	var reqBody io.Reader
	if body != nil {
		buf := &bytes.Buffer{}
		if err := json.NewEncoder(buf).Encode(body); err != nil {
			return nil, fmt.Errorf("encode request body: %w", err)
		}
		reqBody = buf
	}
	req, err := http.NewRequestWithContext(reqCtx, method, u, reqBody)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.client.Do(req)
	if err != nil {
		logging.Logger.Debug("Request failed", "method", method, "path", path, "error", err)
		return nil, err
	}
	defer resp.Body.Close() //nolint:errcheck

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	logging.Logger.Debug("Request completed",
		"method", method,
		"path", path,
		"status", resp.StatusCode,
		"duration", time.Since(start))

	if resp.StatusCode >= 400 {
		return nil, newRequestError(resp.StatusCode, payload)
	}
	return payload, nil
}
