package ui

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aura-ide/aura/internal/adapters/storage"
	"github.com/aura-ide/aura/internal/application"
	"github.com/aura-ide/aura/internal/domain"
	portsmocks "github.com/aura-ide/aura/internal/ports/mocks"
	"github.com/aura-ide/aura/internal/services"
)

func newTestModel(t *testing.T) *Model {
	t.Helper()
	gateway := portsmocks.NewMockRemoteGateway(t)
	m := NewModel(ModelConfig{PollInterval: time.Second}, services.NewRemoteService(gateway), nil)
	m.Update(tea.WindowSizeMsg{Width: 160, Height: 48})
	return m
}

func sendKey(m *Model, keys string) tea.Cmd {
	var msg tea.KeyMsg
	switch keys {
	case "enter":
		msg = tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		msg = tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		msg = tea.KeyMsg{Type: tea.KeyTab}
	case "down":
		msg = tea.KeyMsg{Type: tea.KeyDown}
	case "ctrl+s":
		msg = tea.KeyMsg{Type: tea.KeyCtrlS}
	default:
		msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(keys)}
	}
	_, cmd := m.Update(msg)
	return cmd
}

func lastLog(m *Model) domain.EventLogEntry {
	entry, _ := m.Workspace().Log.Last()
	return entry
}

func sampleTree() []domain.TreeNode {
	return []domain.TreeNode{
		{Name: "src", Path: "src", IsDir: true, Children: []domain.TreeNode{
			{Name: "app.py", Path: "src/app.py"},
		}},
		{Name: "README.md", Path: "README.md"},
	}
}

func TestModel_TreeLoadBuildsExplorer(t *testing.T) {
	m := newTestModel(t)

	m.Update(treeLoadedMsg{nodes: sampleTree()})

	var paths []string
	for _, row := range m.explorer.Rows() {
		paths = append(paths, row.Path)
	}
	assert.Equal(t, []string{domain.RootPath, "src", "README.md"}, paths)
	assert.True(t, m.Workspace().TreeLoaded())
}

func TestModel_TreeFailureIsSilent(t *testing.T) {
	m := newTestModel(t)
	before := m.Workspace().Log.Len()

	m.Update(treeLoadedMsg{err: errors.New("connection refused")})

	assert.Equal(t, before, m.Workspace().Log.Len())
	assert.Error(t, m.Workspace().TreeError())
	assert.Contains(t, m.View(), "tree unavailable")
}

func TestModel_EnterTogglesFolder(t *testing.T) {
	m := newTestModel(t)
	m.Update(treeLoadedMsg{nodes: sampleTree()})

	sendKey(m, "down")
	require.Equal(t, "src", m.explorer.SelectedPath())
	sendKey(m, "enter")

	assert.True(t, m.Workspace().Tree.IsExpanded("src"))
	assert.Len(t, m.explorer.Rows(), 4)
}

func TestModel_StaleOpenIsDropped(t *testing.T) {
	m := newTestModel(t)

	first, err := m.Workspace().BeginOpen("a.py")
	require.NoError(t, err)
	second, err := m.Workspace().BeginOpen("b.py")
	require.NoError(t, err)

	m.Update(fileOpenedMsg{ticket: second, content: "print('b')"})
	m.Update(fileOpenedMsg{ticket: first, content: "print('a')"})

	assert.Equal(t, "b.py", m.editor.Path())
	assert.Equal(t, "print('b')", m.editor.Value())
}

func TestModel_EditingMarksDirty(t *testing.T) {
	m := newTestModel(t)
	ticket, err := m.Workspace().BeginOpen("main.py")
	require.NoError(t, err)
	m.Update(fileOpenedMsg{ticket: ticket, content: "x = 1\n"})

	sendKey(m, "tab")
	require.Equal(t, paneEditor, m.focus)
	sendKey(m, "q")

	assert.True(t, m.Workspace().Editor.Dirty(), "typing q in the editor must not quit")
	assert.True(t, m.editor.Focused())

	cmd := sendKey(m, "ctrl+s")
	assert.NotNil(t, cmd)
}

func TestModel_SaveWithoutFileShowsError(t *testing.T) {
	m := newTestModel(t)

	m.Update(SaveFileMsg{})

	require.True(t, m.errorManager.HasError())
	assert.ErrorIs(t, m.errorManager.GetError(), domain.ErrNothingOpen)
}

func TestModel_PollTicksAtFixedPeriod(t *testing.T) {
	gateway := portsmocks.NewMockRemoteGateway(t)
	m := NewModel(ModelConfig{PollInterval: 5 * time.Millisecond}, services.NewRemoteService(gateway), nil)

	// a poll is still in flight when the tick fires
	require.True(t, m.Workspace().Status.BeginPoll())
	_, cmd := m.Update(pollTickMsg{})
	require.NotNil(t, cmd)
	assert.IsType(t, pollTickMsg{}, cmd(), "skipped tick only schedules the next one")
	assert.True(t, m.Workspace().Status.InFlight())

	// completing the poll does not schedule a tick of its own
	_, cmd = m.Update(statusPolledMsg{status: &domain.PipelineStatus{}})
	assert.Nil(t, cmd)
	assert.False(t, m.Workspace().Status.InFlight())

	// the following tick polls and schedules its successor
	_, cmd = m.Update(pollTickMsg{})
	require.NotNil(t, cmd)
	batch, ok := cmd().(tea.BatchMsg)
	require.True(t, ok)
	assert.Len(t, batch, 2)
	assert.True(t, m.Workspace().Status.InFlight())
}

func TestModel_StoreWritesRunInOrder(t *testing.T) {
	store, err := storage.NewSQLiteStore(filepath.Join(t.TempDir(), "workspace.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	workspace := services.NewWorkspaceService(store, true)

	gateway := portsmocks.NewMockRemoteGateway(t)
	m := NewModel(ModelConfig{PollInterval: time.Second}, services.NewRemoteService(gateway), workspace)

	_, first := m.Update(commandFinishedMsg{result: &domain.CommandResult{Output: "A"}})
	require.NotNil(t, first)
	_, second := m.Update(commandFinishedMsg{result: &domain.CommandResult{Output: "B"}})
	assert.Nil(t, second, "no write starts while another is running")

	cmd := first
	for cmd != nil {
		msg := cmd()
		require.IsType(t, storeWrittenMsg{}, msg)
		_, cmd = m.Update(msg)
	}

	live := m.Workspace().Log.Entries()
	journal, err := workspace.History(context.Background(), 0)
	require.NoError(t, err)
	require.Len(t, journal, len(live))
	for i := range live {
		assert.Equal(t, live[i].Text, journal[i].Text, "entry %d", i)
	}
	assert.Equal(t, "B", journal[len(journal)-1].Text)
}

func TestModel_PipelineFinishRefreshesTree(t *testing.T) {
	m := newTestModel(t)

	running := &domain.PipelineStatus{IsRunning: true, Progress: 40, StatusLabel: "Developer"}
	m.Workspace().Status.BeginPoll()
	m.Update(statusPolledMsg{status: running})
	assert.True(t, m.Workspace().Status.IsRunning())

	idle := &domain.PipelineStatus{
		Progress:    100,
		StatusLabel: "Complete",
		Artifacts:   &domain.Artifacts{Vision: "A todo app"},
	}
	m.Workspace().Status.BeginPoll()
	_, cmd := m.Update(statusPolledMsg{status: idle})

	assert.NotNil(t, cmd)
	assert.Equal(t, "✔ PIPELINE FINISHED: Complete", lastLog(m).Text)
	assert.True(t, m.artifacts.HasContent())
}

func TestModel_RunPipelineRefusedWhileRunning(t *testing.T) {
	m := newTestModel(t)
	m.Workspace().Status.BeginPoll()
	m.Update(statusPolledMsg{status: &domain.PipelineStatus{IsRunning: true}})

	m.Update(RunPipelineMsg{})

	assert.Equal(t, stateMain, m.state)
	assert.ErrorIs(t, m.errorManager.GetError(), domain.ErrRunInFlight)
}

func TestModel_DeleteAsksForConfirmation(t *testing.T) {
	m := newTestModel(t)
	m.Update(treeLoadedMsg{nodes: sampleTree()})
	sendKey(m, "down")
	sendKey(m, "down")
	require.Equal(t, "README.md", m.explorer.SelectedPath())

	sendKey(m, "x")

	assert.Equal(t, stateConfirmingDelete, m.state)
	assert.Equal(t, "README.md", m.deleteTarget)

	sendKey(m, "esc")
	assert.Equal(t, stateMain, m.state)
	assert.Empty(t, m.deleteTarget)
}

func TestModel_DeletingOpenFileResetsEditor(t *testing.T) {
	m := newTestModel(t)
	ticket, err := m.Workspace().BeginOpen("README.md")
	require.NoError(t, err)
	m.Update(fileOpenedMsg{ticket: ticket, content: "# hi"})

	_, cmd := m.Update(fileDeletedMsg{path: "README.md"})

	assert.NotNil(t, cmd)
	assert.Empty(t, m.editor.Path())
	assert.False(t, m.Workspace().Editor.HasOpen())
	assert.Equal(t, "✔ DELETED: README.md", lastLog(m).Text)
}

func TestModel_ToolNeedsOpenFile(t *testing.T) {
	m := newTestModel(t)

	m.Update(RunToolMsg{})

	assert.Equal(t, stateMain, m.state)
	assert.ErrorIs(t, m.errorManager.GetError(), domain.ErrNothingOpen)
}

func TestModel_ClearTerminal(t *testing.T) {
	m := newTestModel(t)
	m.Update(commandFinishedMsg{result: &domain.CommandResult{Output: "hello"}})

	m.Update(ClearTerminalMsg{})

	require.Equal(t, 1, m.Workspace().Log.Len())
	assert.Equal(t, application.ClearedBanner, lastLog(m).Text)
}

func TestModel_CommandPaletteDispatchesAction(t *testing.T) {
	m := newTestModel(t)

	m.Update(tea.KeyMsg{Type: tea.KeyCtrlP})
	require.Equal(t, stateCommandPalette, m.state)

	for _, r := range "clear terminal" {
		m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	require.NotNil(t, cmd)
	assert.Equal(t, stateMain, m.state)
	assert.IsType(t, ClearTerminalMsg{}, cmd())
}

func TestModel_ViewShowsBanner(t *testing.T) {
	m := newTestModel(t)

	view := m.View()

	assert.Contains(t, view, "AURA")
	assert.True(t, strings.Contains(view, "TERMINAL"))
}
