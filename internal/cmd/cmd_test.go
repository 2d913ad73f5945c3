package cmd

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"reflect"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aura-ide/aura/internal/config"
	"github.com/aura-ide/aura/internal/domain"
)

const treeBody = `[
	{"name":"src","path":"src","isDir":true,"children":[{"name":"app.py","path":"src/app.py","isDir":false}]},
	{"name":"README.md","path":"README.md","isDir":false}
]`

func newTestCLI(t *testing.T, mux *http.ServeMux) *CLI {
	t.Helper()
	t.Setenv("AURA_HOME", t.TempDir())

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	cli := &CLI{APIURL: srv.URL}
	cli.SetSettings(&config.Settings{})
	opts := cli.resolveOptions()
	opts.DBPath = filepath.Join(t.TempDir(), "workspace.db")

	container, err := NewContainer(opts)
	require.NoError(t, err)
	cli.Container = container
	t.Cleanup(func() { _ = container.Close() })
	return cli
}

func captureOutput(t *testing.T) *bytes.Buffer {
	t.Helper()
	buf := &bytes.Buffer{}
	previous := stdout
	stdout = buf
	t.Cleanup(func() { stdout = previous })
	return buf
}

func TestResolveOptions_Precedence(t *testing.T) {
	timeout := 7
	persist := false

	tests := []struct {
		name        string
		flagURL     string
		settings    *config.Settings
		wantURL     string
		wantTimeout time.Duration
		wantPersist bool
	}{
		{
			name:        "defaults",
			settings:    &config.Settings{},
			wantURL:     config.DefaultAPIURL,
			wantTimeout: config.DefaultRequestTimeoutSeconds * time.Second,
			wantPersist: true,
		},
		{
			name:        "settings file",
			settings:    &config.Settings{APIURL: "http://build:9000/", RequestTimeoutSeconds: &timeout, PersistExpansion: &persist},
			wantURL:     "http://build:9000",
			wantTimeout: 7 * time.Second,
			wantPersist: false,
		},
		{
			name:        "flag wins over settings",
			flagURL:     "http://flag:1",
			settings:    &config.Settings{APIURL: "http://build:9000"},
			wantURL:     "http://flag:1",
			wantTimeout: config.DefaultRequestTimeoutSeconds * time.Second,
			wantPersist: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cli := &CLI{APIURL: tt.flagURL}
			cli.SetSettings(tt.settings)

			opts := cli.resolveOptions()

			assert.Equal(t, tt.wantURL, opts.APIURL)
			assert.Equal(t, tt.wantTimeout, opts.RequestTimeout)
			assert.Equal(t, tt.wantPersist, opts.PersistExpansion)
			assert.Equal(t, domain.DefaultPhases, opts.Phases.Phases)
		})
	}
}

func TestTreeCmd(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/files/tree", func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, treeBody)
	})
	cli := newTestCLI(t, mux)

	t.Run("collapsed by default", func(t *testing.T) {
		out := captureOutput(t)
		require.NoError(t, (&TreeCmd{Format: formatTable}).Run(cli))
		assert.Equal(t, "src/\nREADME.md\n", out.String())
	})

	t.Run("all expanded", func(t *testing.T) {
		out := captureOutput(t)
		require.NoError(t, (&TreeCmd{All: true, Format: formatTable}).Run(cli))
		assert.Equal(t, "src/\n  app.py\nREADME.md\n", out.String())
	})

	t.Run("json", func(t *testing.T) {
		out := captureOutput(t)
		require.NoError(t, (&TreeCmd{All: true, Format: formatJSON}).Run(cli))

		var rows []treeRowOutput
		require.NoError(t, json.Unmarshal(out.Bytes(), &rows))
		require.Len(t, rows, 3)
		assert.Equal(t, treeRowOutput{Depth: 2, Path: "src/app.py"}, rows[1])
	})
}

func TestPutCmd_ReadContent(t *testing.T) {
	local := filepath.Join(t.TempDir(), "local.py")
	require.NoError(t, writeFile(local, "print('file')"))

	fromFile, err := (&PutCmd{File: local, Path: "x.py"}).readContent(strings.NewReader("ignored"))
	require.NoError(t, err)
	assert.Equal(t, "print('file')", fromFile)

	fromStdin, err := (&PutCmd{Path: "x.py"}).readContent(strings.NewReader("print('stdin')"))
	require.NoError(t, err)
	assert.Equal(t, "print('stdin')", fromStdin)
}

func TestExecCmd_ExitCodeAndJournal(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/terminal/run", func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"stdout":"","stderr":"bad\n","exit_code":2,"full_output":"bad\n"}`)
	})
	cli := newTestCLI(t, mux)
	out := captureOutput(t)

	err := (&ExecCmd{Command: "make test"}).Run(cli)

	code, ok := IsExitError(err)
	require.True(t, ok)
	assert.Equal(t, 2, code)
	assert.Equal(t, "$ make test\nbad\n", out.String())

	out.Reset()
	require.NoError(t, (&LogCmd{Limit: 10}).Run(cli))
	assert.Contains(t, out.String(), "$ make test")
	assert.Contains(t, out.String(), "bad")
}

func TestToolCmd_RemoteError(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/automation/run", func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"error":"Tool not found"}`)
	})
	cli := newTestCLI(t, mux)
	out := captureOutput(t)

	err := (&ToolCmd{Name: "lint"}).Run(cli)

	_, ok := IsExitError(err)
	assert.True(t, ok)
	assert.Contains(t, out.String(), "⚙ TRIGGERING LINT AUTOMATION...")
	assert.Contains(t, out.String(), "Error: Tool not found")
}

func TestRunCmd(t *testing.T) {
	var running atomic.Bool
	var started atomic.Int32
	mux := http.NewServeMux()
	mux.HandleFunc("/api/status", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{
			"status": "Idle", "progress": 0, "is_running": running.Load(), "logs": []string{}, "phases": map[string]string{},
		})
	})
	mux.HandleFunc("/api/run", func(w http.ResponseWriter, r *http.Request) {
		started.Add(1)
		_, _ = io.WriteString(w, `{"status":"started"}`)
	})
	cli := newTestCLI(t, mux)

	t.Run("refused while running", func(t *testing.T) {
		running.Store(true)
		captureOutput(t)

		err := (&RunCmd{Description: "todo app"}).Run(cli)

		assert.ErrorIs(t, err, domain.ErrRunInFlight)
		assert.Equal(t, int32(0), started.Load())
	})

	t.Run("accepted and recorded", func(t *testing.T) {
		running.Store(false)
		out := captureOutput(t)

		require.NoError(t, (&RunCmd{Description: "todo app", Requirements: "dark mode"}).Run(cli))
		assert.Equal(t, int32(1), started.Load())
		assert.Contains(t, out.String(), "🚀 INITIATING MULTI-AGENT ORCHESTRATION...")

		out.Reset()
		require.NoError(t, (&RunsCmd{Format: formatJSON, Limit: 5}).Run(cli))
		var runs []runOutput
		require.NoError(t, json.Unmarshal(out.Bytes(), &runs))
		require.Len(t, runs, 1)
		assert.True(t, runs[0].Accepted)
		assert.Equal(t, "todo app", runs[0].Description)
		assert.Equal(t, domain.DefaultModelID, runs[0].ModelID)
		assert.NotEmpty(t, runs[0].ID)
	})
}

func TestWatchStatus_StopsWhenPipelineGoesIdle(t *testing.T) {
	bodies := []string{
		`{"status":"Developer: coding","progress":40,"is_running":true,"logs":[],"phases":{"Vision":"complete","Developer":"running"}}`,
		`{"status":"Developer: coding","progress":60,"is_running":true,"logs":[],"phases":{"Vision":"complete","Developer":"complete"}}`,
		`{"status":"Done","progress":100,"is_running":false,"logs":[],"phases":{"Vision":"complete","Developer":"complete"}}`,
	}
	var calls atomic.Int32
	mux := http.NewServeMux()
	mux.HandleFunc("/api/status", func(w http.ResponseWriter, r *http.Request) {
		i := int(calls.Add(1)) - 1
		if i >= len(bodies) {
			i = len(bodies) - 1
		}
		_, _ = io.WriteString(w, bodies[i])
	})
	cli := newTestCLI(t, mux)
	out := &bytes.Buffer{}

	require.NoError(t, watchStatus(t.Context(), out, cli.Container.RemoteService, time.Millisecond))

	assert.Contains(t, out.String(), "Status: Developer: coding (running, 40%)")
	assert.Contains(t, out.String(), "Developer → complete")
	assert.True(t, strings.HasSuffix(out.String(), "✔ PIPELINE FINISHED: Done\n"))
	assert.Equal(t, int32(3), calls.Load())
}

func TestWatchStatus_IdleReturnsAfterFirstPoll(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/status", func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"status":"Idle","progress":0,"is_running":false,"logs":["ready"],"phases":{}}`)
	})
	cli := newTestCLI(t, mux)
	out := &bytes.Buffer{}

	require.NoError(t, watchStatus(t.Context(), out, cli.Container.RemoteService, time.Millisecond))

	assert.Contains(t, out.String(), "Status: Idle (idle, 0%)")
	assert.Contains(t, out.String(), "  ready\n")
}

func TestSnapshotCmd_PartialFailure(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/files/tree", func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, treeBody)
	})
	mux.HandleFunc("/api/status", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})
	cli := newTestCLI(t, mux)
	out := captureOutput(t)

	require.NoError(t, (&SnapshotCmd{Format: formatYAML}).Run(cli))

	assert.Contains(t, out.String(), "- src/app.py")
	assert.Contains(t, out.String(), "status_error:")
	assert.NotContains(t, out.String(), "tree_error")
}

func TestPrintStructured_UnsupportedFormat(t *testing.T) {
	err := printStructured(&bytes.Buffer{}, "xml", struct{}{})
	assert.Error(t, err)
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "abcd…", truncate("abcdefgh", 5))
}

func TestToolCmd_HelpNamesConfiguredTools(t *testing.T) {
	field, ok := reflect.TypeOf(ToolCmd{}).FieldByName("Name")
	require.True(t, ok)
	help := field.Tag.Get("help")

	for _, tool := range config.DefaultTools {
		assert.Contains(t, help, tool)
	}
}
