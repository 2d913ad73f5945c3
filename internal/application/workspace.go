package application

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/aura-ide/aura/internal/domain"
)

const (
	// Banner is the first terminal line of a session
	Banner = "⚡ AURA-IDE TERMINAL V1.0"
	// ClearedBanner replaces the terminal history on clear
	ClearedBanner = "⚡ TERMINAL CLEARED"
	// DefaultNewFileContent seeds files created from the explorer
	DefaultNewFileContent = "# Aura-Dev Generated File"
)

// Effects are follow-up actions the caller must issue after a fold
type Effects struct {
	RefreshTree bool
}

// Merge combines two effect sets
func (e Effects) Merge(other Effects) Effects {
	return Effects{RefreshTree: e.RefreshTree || other.RefreshTree}
}

// WorkspaceOptions configures a Workspace
type WorkspaceOptions struct {
	IsMutating   func(tool string) bool
	PollInterval time.Duration
}

// Workspace is the application state of one control panel session.
// Every remote completion is folded in through a method here, on one goroutine.
type Workspace struct {
	Editor *EditorController
	Log    *domain.EventLog
	Status *StatusReconciler
	Tree   *domain.TreeModel

	isMutating func(tool string) bool
	listeners  []func(domain.EventLogEntry)
	treeErr    error
	treeLoaded bool
}

// NewWorkspace creates an empty workspace with the session banner logged
func NewWorkspace(opts WorkspaceOptions) *Workspace {
	isMutating := opts.IsMutating
	if isMutating == nil {
		isMutating = func(string) bool { return true }
	}
	return &Workspace{
		Editor:     NewEditorController(),
		Log:        domain.NewEventLog(Banner),
		Status:     NewStatusReconciler(opts.PollInterval),
		Tree:       domain.NewTreeModel(),
		isMutating: isMutating,
	}
}

// OnAppend registers fn to observe every entry appended from now on
func (w *Workspace) OnAppend(fn func(domain.EventLogEntry)) {
	w.listeners = append(w.listeners, fn)
}

func (w *Workspace) appendLog(text string, severity domain.Severity) {
	entry := w.Log.Append(text, severity)
	for _, fn := range w.listeners {
		fn(entry)
	}
}

func (w *Workspace) info(text string)    { w.appendLog(text, domain.SeverityInfo) }
func (w *Workspace) success(text string) { w.appendLog(text, domain.SeveritySuccess) }
func (w *Workspace) fail(text string)    { w.appendLog(text, domain.SeverityError) }

// ClearLog replaces the terminal history with the cleared banner
func (w *Workspace) ClearLog() {
	entry := w.Log.Clear(ClearedBanner)
	for _, fn := range w.listeners {
		fn(entry)
	}
}

// ApplyTree folds a tree fetch. Failures keep the previous tree and are not logged.
func (w *Workspace) ApplyTree(nodes []domain.TreeNode, err error) {
	if err != nil {
		w.treeErr = err
		return
	}
	w.treeErr = nil
	w.treeLoaded = true
	w.Tree.SetTree(nodes)
}

// TreeError returns the error of the last tree fetch
func (w *Workspace) TreeError() error {
	return w.treeErr
}

// TreeLoaded reports whether any tree fetch has succeeded
func (w *Workspace) TreeLoaded() bool {
	return w.treeLoaded
}

// ApplyStatus folds a status poll
func (w *Workspace) ApplyStatus(snapshot *domain.PipelineStatus, err error) Effects {
	if err != nil {
		w.Status.Fail(err)
		return Effects{}
	}
	result := w.Status.Complete(snapshot)
	if result.Finished {
		label := strings.TrimSpace(snapshot.StatusLabel)
		if label == "" {
			label = "done"
		}
		w.success("✔ PIPELINE FINISHED: " + label)
	}
	return Effects{RefreshTree: result.RefreshTree}
}

// BeginOpen issues a ticket for reading path
func (w *Workspace) BeginOpen(path string) (OpenTicket, error) {
	return w.Editor.BeginOpen(path)
}

// ApplyOpen folds a file read. Responses for superseded opens are dropped.
func (w *Workspace) ApplyOpen(ticket OpenTicket, content string, err error) bool {
	if !w.Editor.IsCurrent(ticket) {
		return false
	}
	if err != nil {
		w.fail(fmt.Sprintf("✘ ERROR OPENING: %s: %s", ticket.Path, err))
		return false
	}
	w.Editor.CompleteOpen(ticket, content)
	w.Tree.SetActive(ticket.Path)
	return true
}

// Edit updates the buffer of the open file
func (w *Workspace) Edit(content string) {
	w.Editor.Edit(content)
}

// BeginSave returns what to write. ok is false when nothing is open.
func (w *Workspace) BeginSave() (path, content string, ok bool) {
	path, content, err := w.Editor.PrepareSave()
	return path, content, err == nil
}

// ApplySave folds a write of the open buffer
func (w *Workspace) ApplySave(path, content string, err error) Effects {
	if err != nil {
		w.fail("✘ ERROR SAVING: " + err.Error())
		return Effects{}
	}
	w.Editor.CompleteSave(path, content)
	w.success("✔ SAVED: " + path)
	return Effects{RefreshTree: true}
}

// BeginCreate validates a new file path before any request is issued
func (w *Workspace) BeginCreate(path string) (string, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return "", domain.ErrEmptyPath
	}
	return path, nil
}

// ApplyCreate folds the write of a new file
func (w *Workspace) ApplyCreate(path string, err error) Effects {
	if err != nil {
		w.fail(fmt.Sprintf("✘ ERROR CREATING: %s: %s", path, err))
		return Effects{}
	}
	w.success("✚ CREATED: " + path)
	return Effects{RefreshTree: true}
}

// ApplyDelete folds a file deletion. Deleting the open file closes it.
func (w *Workspace) ApplyDelete(path string, err error) Effects {
	if err != nil {
		w.fail(fmt.Sprintf("✘ ERROR DELETING: %s: %s", path, err))
		return Effects{}
	}
	if w.Editor.Session().OpenPath == path {
		w.Editor.Close()
		w.Tree.SetActive("")
	}
	w.success("✔ DELETED: " + path)
	return Effects{RefreshTree: true}
}

// describeFailure renders remote-reported failures without a prefix
func describeFailure(prefix string, err error) string {
	if errors.Is(err, domain.ErrRemoteReported) {
		return err.Error()
	}
	return prefix + ": " + err.Error()
}
