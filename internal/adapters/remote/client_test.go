package remote

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aura-ide/aura/internal/domain"
)

func newTestClient(t *testing.T, mux *http.ServeMux) *Client {
	t.Helper()
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return NewWithClient(srv.URL+"/", srv.Client())
}

func TestListTree(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/files/tree", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		_, _ = io.WriteString(w, `[
			{"name":"a","path":"a","isDir":true,"children":[{"name":"b.txt","path":"a/b.txt","isDir":false}]},
			{"name":"main.py","path":"main.py","isDir":false}
		]`)
	})
	client := newTestClient(t, mux)

	nodes, err := client.ListTree(context.Background())
	require.NoError(t, err)
	require.Len(t, nodes, 2)
	assert.True(t, nodes[0].IsDir)
	require.Len(t, nodes[0].Children, 1)
	assert.Equal(t, "a/b.txt", nodes[0].Children[0].Path)
	assert.Equal(t, "main.py", nodes[1].Name)
}

func TestListTree_NullBody(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/files/tree", func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `null`)
	})
	client := newTestClient(t, mux)

	nodes, err := client.ListTree(context.Background())
	require.NoError(t, err)
	assert.Empty(t, nodes)
}

func TestReadFile(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/file", func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Query().Get("path") {
		case "x.py":
			_, _ = io.WriteString(w, `{"content":"print(1)"}`)
		default:
			w.WriteHeader(http.StatusNotFound)
			_, _ = io.WriteString(w, `{"detail":"File not found"}`)
		}
	})
	client := newTestClient(t, mux)

	content, err := client.ReadFile(context.Background(), "x.py")
	require.NoError(t, err)
	assert.Equal(t, "print(1)", content)

	_, err = client.ReadFile(context.Background(), "missing.py")
	var reqErr *RequestError
	require.True(t, errors.As(err, &reqErr))
	assert.Equal(t, http.StatusNotFound, reqErr.StatusCode)
	assert.Equal(t, "http 404: File not found", reqErr.Error())
}

func TestWriteAndDeleteFile(t *testing.T) {
	var written writeFileDTO
	var deleted string
	mux := http.NewServeMux()
	mux.HandleFunc("/api/file", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPost:
			assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
			require.NoError(t, json.NewDecoder(r.Body).Decode(&written))
		case http.MethodDelete:
			deleted = r.URL.Query().Get("path")
		default:
			t.Errorf("unexpected method %s", r.Method)
		}
		_, _ = io.WriteString(w, `{"status":"success"}`)
	})
	client := newTestClient(t, mux)

	require.NoError(t, client.WriteFile(context.Background(), "dir/new.py", "pass"))
	assert.Equal(t, writeFileDTO{Path: "dir/new.py", Content: "pass"}, written)

	require.NoError(t, client.DeleteFile(context.Background(), "dir"))
	assert.Equal(t, "dir", deleted)
}

func TestFetchStatus(t *testing.T) {
	tests := []struct {
		name          string
		body          string
		wantRunning   bool
		wantProgress  int
		wantPhases    []domain.PhaseStatus
		wantArtifacts *domain.Artifacts
	}{
		{
			name:         "running hides artifacts",
			body:         `{"status":"Developer: writing","progress":40,"is_running":true,"logs":["a"],"phases":{"Developer":"running","Vision":"complete"},"vision":"draft"}`,
			wantRunning:  true,
			wantProgress: 40,
			wantPhases: []domain.PhaseStatus{
				{Name: "Vision", State: domain.PhaseComplete},
				{Name: "Developer", State: domain.PhaseRunning},
			},
		},
		{
			name:         "idle exposes artifacts",
			body:         `{"status":"Done","progress":100,"is_running":false,"logs":[],"phases":{"Vision":"complete"},"vision":"v","files_created":["main.py"],"audit":"green"}`,
			wantProgress: 100,
			wantPhases:   []domain.PhaseStatus{{Name: "Vision", State: domain.PhaseComplete}},
			wantArtifacts: &domain.Artifacts{
				Vision:              "v",
				FilesCreated:        []string{"main.py"},
				SustainabilityAudit: "green",
			},
		},
		{
			name:         "progress is clamped",
			body:         `{"status":"Idle","progress":250,"is_running":false,"logs":[],"phases":{}}`,
			wantProgress: 100,
			wantPhases:   []domain.PhaseStatus{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mux := http.NewServeMux()
			mux.HandleFunc("/api/status", func(w http.ResponseWriter, r *http.Request) {
				_, _ = io.WriteString(w, tt.body)
			})
			client := newTestClient(t, mux)

			status, err := client.FetchStatus(context.Background())
			require.NoError(t, err)
			assert.Equal(t, tt.wantRunning, status.IsRunning)
			assert.Equal(t, tt.wantProgress, status.Progress)
			assert.Equal(t, tt.wantPhases, status.Phases)
			assert.Equal(t, tt.wantArtifacts, status.Artifacts)
		})
	}
}

func TestStartRun(t *testing.T) {
	var got map[string]any
	mux := http.NewServeMux()
	mux.HandleFunc("/api/run", func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		if got["user_desc"] == "busy" {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = io.WriteString(w, `{"detail":"Flow already running"}`)
			return
		}
		_, _ = io.WriteString(w, `{"status":"started"}`)
	})
	client := newTestClient(t, mux)

	err := client.StartRun(context.Background(), domain.RunRequest{
		Description:  "todo app",
		Requirements: "dark mode",
		ModelID:      domain.DefaultModelID,
	})
	require.NoError(t, err)
	assert.Equal(t, "todo app", got["user_desc"])
	assert.Equal(t, "dark mode", got["voice_reqs"])
	assert.Equal(t, domain.DefaultModelID, got["model_id"])
	assert.NotContains(t, got, "image_data")

	err = client.StartRun(context.Background(), domain.RunRequest{Description: "busy"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Flow already running")
}

func TestRunCommand(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/terminal/run", func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Query().Get("command") {
		case `python "main.py"`:
			_, _ = io.WriteString(w, `{"stdout":"hi\n","stderr":"","exit_code":0,"full_output":"hi\n"}`)
		default:
			_, _ = io.WriteString(w, `{"error":"boom"}`)
		}
	})
	client := newTestClient(t, mux)

	result, err := client.RunCommand(context.Background(), `python "main.py"`)
	require.NoError(t, err)
	assert.Equal(t, "hi\n", result.Output)
	assert.Equal(t, 0, result.ExitCode)

	_, err = client.RunCommand(context.Background(), "bad")
	var remoteErr *RemoteError
	require.True(t, errors.As(err, &remoteErr))
	assert.Equal(t, "boom", remoteErr.Message)
	assert.ErrorIs(t, err, domain.ErrRemoteReported)
}

func TestInvokeTool(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/automation/run", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		if r.URL.Query().Get("tool_name") != "auto_doc" {
			_, _ = io.WriteString(w, `{"error":"Tool not found"}`)
			return
		}
		assert.Equal(t, "main.py", r.URL.Query().Get("target_file"))
		_, _ = io.WriteString(w, `{"output":"docs written"}`)
	})
	client := newTestClient(t, mux)

	result, err := client.InvokeTool(context.Background(), "auto_doc", "main.py")
	require.NoError(t, err)
	assert.Equal(t, &domain.ToolResult{Output: "docs written"}, result)

	result, err = client.InvokeTool(context.Background(), "nope", "")
	require.NoError(t, err)
	assert.Equal(t, "Tool not found", result.Error)
}

func TestRequest_ServerErrorKeepsBody(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/status", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = io.WriteString(w, "upstream down")
	})
	client := newTestClient(t, mux)

	_, err := client.FetchStatus(context.Background())
	var reqErr *RequestError
	require.True(t, errors.As(err, &reqErr))
	assert.Equal(t, http.StatusBadGateway, reqErr.StatusCode)
	assert.Equal(t, "upstream down", reqErr.Message)
}

func TestRequest_UnaryTimeout(t *testing.T) {
	release := make(chan struct{})
	mux := http.NewServeMux()
	mux.HandleFunc("/api/status", func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	})
	client := newTestClient(t, mux).WithUnaryTimeout(50 * time.Millisecond)
	defer close(release)

	_, err := client.FetchStatus(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
