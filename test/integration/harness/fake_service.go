package harness

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sort"
	"strings"
	"sync"
	"testing"
)

// CommandReply is what the fake service answers to a terminal command
type CommandReply struct {
	ExitCode int
	Output   string
}

// FakeService is an in-memory stand-in for the build service HTTP API.
type FakeService struct {
	mu       sync.Mutex
	commands map[string]CommandReply
	files    map[string]string
	running  bool
	runs     []map[string]any
	server   *httptest.Server
	status   map[string]any
	tools    map[string]string
}

// NewFakeService starts a fake build service that stops with the test.
func NewFakeService(tb testing.TB) *FakeService {
	tb.Helper()

	s := &FakeService{
		commands: make(map[string]CommandReply),
		files:    make(map[string]string),
		status: map[string]any{
			"status":   "Idle",
			"progress": 0,
			"logs":     []string{},
			"phases":   map[string]string{},
		},
		tools: make(map[string]string),
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/files/tree", s.handleTree)
	mux.HandleFunc("GET /api/file", s.handleRead)
	mux.HandleFunc("POST /api/file", s.handleWrite)
	mux.HandleFunc("DELETE /api/file", s.handleDelete)
	mux.HandleFunc("GET /api/status", s.handleStatus)
	mux.HandleFunc("POST /api/run", s.handleRun)
	mux.HandleFunc("GET /api/terminal/run", s.handleCommand)
	mux.HandleFunc("POST /api/automation/run", s.handleTool)

	s.server = httptest.NewServer(mux)
	tb.Cleanup(s.server.Close)
	return s
}

// URL returns the service base URL.
func (s *FakeService) URL() string {
	return s.server.URL
}

// SetFile stores a file.
func (s *FakeService) SetFile(path, content string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.files[path] = content
}

// File returns a stored file.
func (s *FakeService) File(path string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	content, ok := s.files[path]
	return content, ok
}

// SetRunning sets the pipeline running flag reported by /api/status.
func (s *FakeService) SetRunning(running bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.running = running
}

// SetPhases sets the phase map reported by /api/status.
func (s *FakeService) SetPhases(phases map[string]string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.status["phases"] = phases
}

// OnCommand registers the reply for a terminal command.
func (s *FakeService) OnCommand(command string, reply CommandReply) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.commands[command] = reply
}

// OnTool registers the output of an automation tool.
func (s *FakeService) OnTool(name, output string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tools[name] = output
}

// Runs returns the run requests received so far.
func (s *FakeService) Runs() []map[string]any {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]map[string]any(nil), s.runs...)
}

type treeNode struct {
	Children []*treeNode `json:"children,omitempty"`
	IsDir    bool        `json:"isDir"`
	Name     string      `json:"name"`
	Path     string      `json:"path"`
}

func (s *FakeService) handleTree(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	paths := make([]string, 0, len(s.files))
	for path := range s.files {
		paths = append(paths, path)
	}
	s.mu.Unlock()
	sort.Strings(paths)

	root := &treeNode{}
	dirs := map[string]*treeNode{"": root}
	for _, path := range paths {
		parent := root
		segments := strings.Split(path, "/")
		for i, name := range segments {
			full := strings.Join(segments[:i+1], "/")
			if i == len(segments)-1 {
				parent.Children = append(parent.Children, &treeNode{Name: name, Path: full})
				break
			}
			dir, ok := dirs[full]
			if !ok {
				dir = &treeNode{Name: name, Path: full, IsDir: true}
				dirs[full] = dir
				parent.Children = append(parent.Children, dir)
			}
			parent = dir
		}
	}

	writeJSON(w, http.StatusOK, root.Children)
}

func (s *FakeService) handleRead(w http.ResponseWriter, r *http.Request) {
	content, ok := s.File(r.URL.Query().Get("path"))
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{"detail": "File not found"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"content": content})
}

func (s *FakeService) handleWrite(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Content string `json:"content"`
		Path    string `json:"path"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"detail": err.Error()})
		return
	}
	s.SetFile(body.Path, body.Content)
	writeJSON(w, http.StatusOK, map[string]string{"status": "saved"})
}

func (s *FakeService) handleDelete(w http.ResponseWriter, r *http.Request) {
	path := r.URL.Query().Get("path")
	s.mu.Lock()
	_, ok := s.files[path]
	delete(s.files, path)
	s.mu.Unlock()
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{"detail": "File not found"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

func (s *FakeService) handleStatus(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	status := make(map[string]any, len(s.status)+1)
	for k, v := range s.status {
		status[k] = v
	}
	status["is_running"] = s.running
	s.mu.Unlock()
	writeJSON(w, http.StatusOK, status)
}

func (s *FakeService) handleRun(w http.ResponseWriter, r *http.Request) {
	var body map[string]any
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"detail": err.Error()})
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.running {
		writeJSON(w, http.StatusBadRequest, map[string]string{"detail": "Flow already running"})
		return
	}
	s.runs = append(s.runs, body)
	writeJSON(w, http.StatusOK, map[string]string{"status": "started"})
}

func (s *FakeService) handleCommand(w http.ResponseWriter, r *http.Request) {
	command := r.URL.Query().Get("command")
	s.mu.Lock()
	reply, ok := s.commands[command]
	s.mu.Unlock()
	if !ok {
		writeJSON(w, http.StatusOK, map[string]string{"error": "command not allowed: " + command})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"exit_code":   reply.ExitCode,
		"full_output": reply.Output,
		"stderr":      "",
		"stdout":      reply.Output,
	})
}

func (s *FakeService) handleTool(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("tool_name")
	s.mu.Lock()
	output, ok := s.tools[name]
	s.mu.Unlock()
	if !ok {
		writeJSON(w, http.StatusOK, map[string]string{"error": "Tool not found"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"output": output})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
