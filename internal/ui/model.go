package ui

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/aura-ide/aura/internal/application"
	"github.com/aura-ide/aura/internal/config"
	"github.com/aura-ide/aura/internal/domain"
	"github.com/aura-ide/aura/internal/logging"
	"github.com/aura-ide/aura/internal/ports"
	"github.com/aura-ide/aura/internal/services"
	"github.com/aura-ide/aura/internal/theme"
)

type uiState int

const (
	stateMain uiState = iota
	stateCommandPalette
	stateConfirmingDelete
	stateCreatingFile
	stateHelp
	stateRunningCommand
	stateRunningPipeline
	stateRunningTool
)

type pane int

const (
	paneExplorer pane = iota
	paneEditor
	paneTerminal
	paneCount
)

// ModelConfig carries the settings the UI needs
type ModelConfig struct {
	DevMode         bool
	ErrorClearDelay time.Duration
	Filter          ports.PathFilter
	Keys            config.KeyBindingsConfig
	MarkdownStyle   string
	ModelID         string
	Phases          *config.PhaseConfig
	PollInterval    time.Duration
	RequestTimeout  time.Duration
	RootLabel       string
	Tools           *config.ToolConfig
}

// Model is the root Bubble Tea model of the control panel.
// Update runs on one goroutine; remote calls report back as messages.
type Model struct {
	artifacts      *ArtifactsView
	commandPalette *CommandPalette
	deleteTarget   string
	devMode        bool
	dialog         *Dialog // Active form dialog, nil in stateMain
	editor         *EditorPane
	errorManager   *ErrorManager
	explorer       *Explorer
	focus          pane
	height         int
	help           help.Model
	helpScreen     *Dialog
	keys           KeyMap
	modelID        string
	pendingJournal []domain.EventLogEntry
	pendingWrites  []storeWrite
	pipeline       *PipelinePanel
	remote         remoteCmds
	showArtifacts  bool
	state          uiState
	store          *services.WorkspaceService // nil when persistence is disabled
	storeBusy      bool
	terminal       *Terminal
	tip            string
	tools          *config.ToolConfig
	width          int
	workspace      *application.Workspace
}

// NewModel creates the control panel. store may be nil.
func NewModel(cfg ModelConfig, remote *services.RemoteService, store *services.WorkspaceService) *Model {
	if cfg.Phases == nil {
		cfg.Phases = config.NewPhaseConfig("", "")
	}
	if cfg.Tools == nil {
		cfg.Tools = config.NewToolConfig("", "")
	}
	if cfg.RootLabel == "" {
		cfg.RootLabel = config.DefaultRootLabel
	}
	if cfg.MarkdownStyle == "" {
		cfg.MarkdownStyle = config.DefaultMarkdownStyle
	}
	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = config.DefaultRequestTimeoutSeconds * time.Second
	}
	if cfg.ErrorClearDelay <= 0 {
		cfg.ErrorClearDelay = 5 * time.Second
	}

	workspace := application.NewWorkspace(application.WorkspaceOptions{
		IsMutating:   cfg.Tools.IsMutating,
		PollInterval: cfg.PollInterval,
	})

	m := &Model{
		artifacts:    NewArtifactsView(cfg.MarkdownStyle),
		devMode:      cfg.DevMode,
		editor:       NewEditorPane(),
		errorManager: NewErrorManager(cfg.ErrorClearDelay),
		explorer:     NewExplorer(workspace.Tree, cfg.Filter, cfg.RootLabel),
		help:         help.New(),
		keys:         NewKeyMap(cfg.Keys),
		modelID:      cfg.ModelID,
		pipeline:     NewPipelinePanel(cfg.Phases),
		remote:       remoteCmds{remote: remote, timeout: cfg.RequestTimeout},
		store:        store,
		terminal:     NewTerminal(),
		tools:        cfg.Tools,
		workspace:    workspace,
	}

	if tips := GetTips(); len(tips) > 0 {
		m.tip = RenderTip(tips[rand.IntN(len(tips))])
	}

	if store != nil {
		workspace.OnAppend(func(entry domain.EventLogEntry) {
			m.pendingJournal = append(m.pendingJournal, entry)
		})
		if first, ok := workspace.Log.Last(); ok {
			m.pendingJournal = append(m.pendingJournal, first)
		}
	}
	m.terminal.Sync(workspace.Log)

	return m
}

// Workspace exposes the application state, mainly for tests
func (m *Model) Workspace() *application.Workspace {
	return m.workspace
}

func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{
		m.remote.fetchTree(),
		m.pipeline.Tick(),
		m.flushJournal(),
	}
	if m.store != nil {
		cmds = append(cmds, loadExpansion(m.store))
	}
	if m.workspace.Status.BeginPoll() {
		cmds = append(cmds, m.remote.pollStatus())
	}
	cmds = append(cmds, schedulePoll(m.workspace.Status.Interval()))
	return tea.Batch(cmds...)
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmd := m.update(msg)
	m.terminal.Sync(m.workspace.Log)
	return m, tea.Batch(cmd, m.flushJournal())
}

func (m *Model) update(msg tea.Msg) tea.Cmd {
	// Completions are folded in whatever dialog is open
	if cmd, handled := m.handleBackground(msg); handled {
		return cmd
	}

	switch m.state {
	case stateCommandPalette:
		return m.updateCommandPalette(msg)
	case stateHelp:
		return m.updateHelp(msg)
	case stateConfirmingDelete, stateCreatingFile, stateRunningCommand, stateRunningPipeline, stateRunningTool:
		return m.updateDialog(msg)
	}
	return m.updateMain(msg)
}

// handleBackground folds completion, timer and resize messages
func (m *Model) handleBackground(msg tea.Msg) (tea.Cmd, bool) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		return m.forwardSize(msg), true

	case clearErrorMsg:
		m.errorManager.handleClear(msg)
		return nil, true

	case pollTickMsg:
		next := schedulePoll(m.workspace.Status.Interval())
		if !m.workspace.Status.BeginPoll() {
			return next, true
		}
		return tea.Batch(m.remote.pollStatus(), next), true

	case statusPolledMsg:
		effects := m.workspace.ApplyStatus(msg.status, msg.err)
		if latest := m.workspace.Status.Latest(); latest != nil && !latest.IsRunning {
			m.artifacts.SetArtifacts(latest.Artifacts)
		}
		return m.applyEffects(effects), true

	case treeLoadedMsg:
		m.workspace.ApplyTree(msg.nodes, msg.err)
		m.explorer.Rebuild()
		return nil, true

	case expansionLoadedMsg:
		if msg.err != nil {
			logging.Logger.Warn("Failed to load folder expansion", "error", msg.err)
			return nil, true
		}
		m.workspace.Tree.RestoreExpansion(msg.state)
		m.explorer.Rebuild()
		return nil, true

	case fileOpenedMsg:
		if m.workspace.ApplyOpen(msg.ticket, msg.content, msg.err) {
			m.editor.Load(msg.ticket.Path, msg.content)
			m.explorer.Rebuild()
		}
		return nil, true

	case fileSavedMsg:
		return m.applyEffects(m.workspace.ApplySave(msg.path, msg.content, msg.err)), true

	case fileCreatedMsg:
		return m.applyEffects(m.workspace.ApplyCreate(msg.path, msg.err)), true

	case fileDeletedMsg:
		effects := m.workspace.ApplyDelete(msg.path, msg.err)
		if !m.workspace.Editor.HasOpen() && m.editor.Path() != "" {
			m.editor.Reset()
			m.editor.Blur()
			if m.focus == paneEditor {
				m.focus = paneExplorer
			}
		}
		return m.applyEffects(effects), true

	case commandFinishedMsg:
		m.workspace.ApplyCommand(msg.result, msg.err)
		return nil, true

	case toolFinishedMsg:
		return m.applyEffects(m.workspace.ApplyTool(msg.tool, msg.result, msg.err)), true

	case runStartedMsg:
		record := m.workspace.ApplyRun(msg.request, msg.err)
		return m.enqueueWrite(recordRun(record)), true

	case storeWrittenMsg:
		m.storeBusy = false
		return m.nextWrite(), true

	case clipboardMsg:
		if msg.err != nil {
			return m.errorManager.SetError(fmt.Errorf("failed to copy path: %w", msg.err)), true
		}
		logging.Logger.Debug("Copied path to clipboard", "path", msg.path)
		return nil, true
	}

	// The spinner keeps ticking behind dialogs
	if cmd := m.pipeline.Update(msg); cmd != nil {
		return cmd, true
	}
	return nil, false
}

func (m *Model) updateMain(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.MouseMsg:
		return m.forwardToFocused(msg)
	}

	if cmd, ok := m.handleAction(msg); ok {
		return cmd
	}
	return nil
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Application.ForceQuit.Binding):
		return tea.Quit
	case key.Matches(msg, m.keys.Application.FocusNext.Binding):
		return m.setFocus((m.focus + 1) % paneCount)
	case key.Matches(msg, m.keys.Application.FocusPrev.Binding):
		return m.setFocus((m.focus + paneCount - 1) % paneCount)
	}

	if m.focus == paneEditor {
		return m.handleEditorKey(msg)
	}

	if key.Matches(msg, m.keys.Application.CommandPalette.Binding) {
		return m.openCommandPalette()
	}

	if m.focus == paneExplorer {
		switch {
		case key.Matches(msg, m.keys.Explorer.Up.Binding):
			m.explorer.MoveUp()
			return nil
		case key.Matches(msg, m.keys.Explorer.Down.Binding):
			m.explorer.MoveDown()
			return nil
		case key.Matches(msg, m.keys.Explorer.Open.Binding):
			return m.openSelected()
		}
	}

	if cmd, ok := m.dispatchKey(msg, false); ok {
		return cmd
	}

	if m.focus == paneTerminal {
		return m.forwardToFocused(msg)
	}
	return nil
}

// handleEditorKey sends typing to the buffer. Only non-printable bindings
// trigger actions while the editor has focus.
func (m *Model) handleEditorKey(msg tea.KeyMsg) tea.Cmd {
	if key.Matches(msg, m.keys.Editor.Leave.Binding) {
		return m.setFocus(paneExplorer)
	}

	if msg.Type != tea.KeyRunes && msg.Type != tea.KeySpace {
		if key.Matches(msg, m.keys.Application.CommandPalette.Binding) {
			return m.openCommandPalette()
		}
		if cmd, ok := m.dispatchKey(msg, true); ok {
			return cmd
		}
	}

	if !m.workspace.Editor.HasOpen() {
		return nil
	}
	changed, cmd := m.editor.Update(msg)
	if changed {
		m.workspace.Edit(m.editor.Value())
	}
	return cmd
}

// dispatchKey runs the action bound to msg. In the editor only the
// bindings without printable keys are considered.
func (m *Model) dispatchKey(msg tea.KeyMsg, editing bool) (tea.Cmd, bool) {
	for _, def := range AllKeyDefinitions {
		if def.Msg == nil {
			continue
		}
		binding, ok := m.keys.Binding(def.Name)
		if !ok || !key.Matches(msg, binding) {
			continue
		}
		if editing && msg.Type == tea.KeyEnter {
			continue
		}
		return m.handleAction(def.Msg)
	}
	return nil, false
}

// handleAction performs a palette or key action
func (m *Model) handleAction(msg tea.Msg) (tea.Cmd, bool) {
	switch msg.(type) {
	case QuitMsg:
		return tea.Quit, true

	case ShowHelpMsg:
		m.helpScreen = NewDialog("Keyboard Shortcuts", "", NewHelpScreen(&m.keys), m.devMode)
		m.state = stateHelp
		initCmd := m.helpScreen.Init()
		_, sizeCmd := m.helpScreen.Update(tea.WindowSizeMsg{Width: m.width, Height: m.height})
		return tea.Batch(initCmd, sizeCmd), true

	case ClearTerminalMsg:
		m.workspace.ClearLog()
		return nil, true

	case CopyPathMsg:
		path := m.explorer.SelectedPath()
		if path == "" || path == domain.RootPath {
			return nil, true
		}
		return copyToClipboard(path), true

	case DeleteFileMsg:
		row, ok := m.explorer.Selected()
		if !ok || row.IsDir {
			return m.errorManager.SetError(errors.New("select a file to delete")), true
		}
		m.deleteTarget = row.Path
		return m.openDialog(stateConfirmingDelete, "Delete File", row.Path,
			NewConfirmForm("Delete "+row.Path+"?", "The file is removed from the build server.")), true

	case ExpandAllMsg:
		m.workspace.Tree.ExpandAll()
		m.explorer.Rebuild()
		return m.persistExpansion(m.workspace.Tree.Expansion()), true

	case NewFileMsg:
		return m.openDialog(stateCreatingFile, "New File", m.explorer.SelectedDir(), NewNewFileForm(m.explorer.SelectedDir())), true

	case RefreshTreeMsg:
		return m.remote.fetchTree(), true

	case RunCommandMsg:
		return m.openDialog(stateRunningCommand, "Run Command", "", NewCommandForm()), true

	case RunOpenFileMsg:
		command, err := m.workspace.OpenFileCommand()
		if err != nil {
			return m.errorManager.SetError(err), true
		}
		m.workspace.BeginCommand(command)
		return m.remote.runCommand(command), true

	case RunPipelineMsg:
		if m.workspace.Status.IsRunning() {
			return m.errorManager.SetError(domain.ErrRunInFlight), true
		}
		return m.openDialog(stateRunningPipeline, "Run Pipeline", "", NewRunForm(m.modelID)), true

	case RunToolMsg:
		if !m.workspace.Editor.HasOpen() {
			return m.errorManager.SetError(fmt.Errorf("open a file first: %w", domain.ErrNothingOpen)), true
		}
		target := m.workspace.Editor.Session().OpenPath
		return m.openDialog(stateRunningTool, "Automation", target, NewToolForm(m.tools.Tools, target)), true

	case SaveFileMsg:
		path, content, ok := m.workspace.BeginSave()
		if !ok {
			return m.errorManager.SetError(domain.ErrNothingOpen), true
		}
		return m.remote.saveFile(path, content), true

	case ToggleArtifactsMsg:
		m.showArtifacts = !m.showArtifacts
		return nil, true
	}
	return nil, false
}

// openSelected toggles a folder or opens a file
func (m *Model) openSelected() tea.Cmd {
	row, ok := m.explorer.Selected()
	if !ok {
		return nil
	}

	if row.IsDir {
		m.workspace.Tree.Toggle(row.Path)
		m.explorer.Rebuild()
		return m.persistExpansion(domain.ExpansionState{row.Path: m.workspace.Tree.IsExpanded(row.Path)})
	}

	ticket, err := m.workspace.BeginOpen(row.Path)
	if err != nil {
		return m.errorManager.SetError(err)
	}
	return m.remote.openFile(ticket)
}

func (m *Model) persistExpansion(state domain.ExpansionState) tea.Cmd {
	if m.store == nil {
		return nil
	}
	return m.enqueueWrite(saveExpansion(state))
}

func (m *Model) setFocus(p pane) tea.Cmd {
	m.focus = p
	if p == paneEditor && m.workspace.Editor.HasOpen() {
		return m.editor.Focus()
	}
	m.editor.Blur()
	return nil
}

func (m *Model) forwardToFocused(msg tea.Msg) tea.Cmd {
	if m.focus != paneTerminal {
		return nil
	}
	if m.showArtifacts {
		return m.artifacts.Update(msg)
	}
	return m.terminal.Update(msg)
}

func (m *Model) openCommandPalette() tea.Cmd {
	label := m.workspace.Editor.Session().OpenPath
	if label == "" {
		label = m.explorer.SelectedPath()
	}
	m.commandPalette = NewCommandPalette(label, m.keys, m.width)
	m.state = stateCommandPalette
	return m.commandPalette.Init()
}

func (m *Model) updateCommandPalette(msg tea.Msg) tea.Cmd {
	_, cmd := m.commandPalette.Update(msg)
	if !m.commandPalette.Completed {
		return cmd
	}

	result := m.commandPalette.Result
	m.commandPalette = nil
	m.state = stateMain
	if result.Cancelled || result.Action == nil || result.Action.Msg == nil {
		return nil
	}
	action := result.Action.Msg
	return func() tea.Msg { return action }
}

func (m *Model) updateHelp(msg tea.Msg) tea.Cmd {
	_, cmd := m.helpScreen.Update(msg)
	if content, ok := m.helpScreen.Content().(*HelpScreen); ok && content.Completed {
		m.helpScreen = nil
		m.state = stateMain
		return nil
	}
	return cmd
}

func (m *Model) openDialog(state uiState, title, target string, form tea.Model) tea.Cmd {
	m.dialog = NewDialog(title, target, form, m.devMode)
	m.state = state
	m.editor.Blur()
	return m.dialog.Init()
}

func (m *Model) updateDialog(msg tea.Msg) tea.Cmd {
	_, cmd := m.dialog.Update(msg)

	var cmds []tea.Cmd
	switch form := m.dialog.Content().(type) {
	case *ConfirmForm:
		if !form.Completed {
			return cmd
		}
		if form.Confirmed() && m.deleteTarget != "" {
			cmds = append(cmds, m.remote.deleteFile(m.deleteTarget))
		}
		m.deleteTarget = ""

	case *NewFileForm:
		if !form.Completed {
			return cmd
		}
		if !form.Cancelled {
			path, err := m.workspace.BeginCreate(form.Path())
			if err != nil {
				cmds = append(cmds, m.errorManager.SetError(err))
			} else {
				cmds = append(cmds, m.remote.createFile(path))
			}
		}

	case *CommandForm:
		if !form.Completed {
			return cmd
		}
		if !form.Cancelled {
			m.workspace.BeginCommand(form.Command())
			cmds = append(cmds, m.remote.runCommand(form.Command()))
		}

	case *ToolForm:
		if !form.Completed {
			return cmd
		}
		if !form.Cancelled && form.Tool() != "" {
			target := m.workspace.Editor.Session().OpenPath
			m.workspace.BeginTool(form.Tool())
			cmds = append(cmds, m.remote.invokeTool(form.Tool(), target))
		}

	case *RunForm:
		if !form.Completed {
			return cmd
		}
		if !form.Cancelled {
			cmds = append(cmds, m.beginRun(form.Params()))
		}

	default:
		return cmd
	}

	m.dialog = nil
	m.state = stateMain
	if m.focus == paneEditor {
		cmds = append(cmds, m.editor.Focus())
	}
	return tea.Batch(cmds...)
}

func (m *Model) beginRun(params services.StartRunParams) tea.Cmd {
	_, err := m.workspace.BeginRun(domain.RunRequest{
		Description:  params.Description,
		ModelID:      params.ModelID,
		Requirements: params.Requirements,
	})
	if err != nil {
		return m.errorManager.SetError(err)
	}
	return m.remote.startRun(params)
}

func (m *Model) applyEffects(effects application.Effects) tea.Cmd {
	if effects.RefreshTree {
		return m.remote.fetchTree()
	}
	return nil
}

// flushJournal queues the entries appended since the last call
func (m *Model) flushJournal() tea.Cmd {
	if len(m.pendingJournal) == 0 {
		return nil
	}
	entries := m.pendingJournal
	m.pendingJournal = nil
	return m.enqueueWrite(journalEntries(entries))
}

// enqueueWrite adds w to the store queue. Writes run one at a time in the
// order they were queued.
func (m *Model) enqueueWrite(w storeWrite) tea.Cmd {
	if m.store == nil {
		return nil
	}
	m.pendingWrites = append(m.pendingWrites, w)
	return m.nextWrite()
}

// nextWrite starts the oldest queued write unless one is running
func (m *Model) nextWrite() tea.Cmd {
	if m.storeBusy || len(m.pendingWrites) == 0 {
		return nil
	}
	w := m.pendingWrites[0]
	m.pendingWrites = m.pendingWrites[1:]
	m.storeBusy = true
	return runStoreWrite(m.store, w)
}

func (m *Model) forwardSize(msg tea.WindowSizeMsg) tea.Cmd {
	switch {
	case m.state == stateHelp && m.helpScreen != nil:
		_, cmd := m.helpScreen.Update(msg)
		return cmd
	case m.state == stateCommandPalette && m.commandPalette != nil:
		_, cmd := m.commandPalette.Update(msg)
		return cmd
	case m.dialog != nil:
		_, cmd := m.dialog.Update(msg)
		return cmd
	}
	return nil
}

// layout holds the outer sizes of the panes, borders included
type layout struct {
	editorWidth   int
	explorerWidth int
	mainHeight    int
	rightWidth    int
	terminalH     int
}

const (
	headerHeight = 1
	footerHeight = 2
)

func (m *Model) computeLayout() layout {
	explorerWidth := clamp(m.width/4, 22, 40)
	rightWidth := clamp(m.width/3, 30, 60)
	terminalH := clamp(m.height/4, 6, 14)
	return layout{
		editorWidth:   max(m.width-explorerWidth-rightWidth, 20),
		explorerWidth: explorerWidth,
		mainHeight:    max(m.height-headerHeight-footerHeight-terminalH, 6),
		rightWidth:    rightWidth,
		terminalH:     terminalH,
	}
}

func (m *Model) resize() {
	l := m.computeLayout()
	// border (2) + padding (2) horizontally, border (2) + title (1) vertically
	m.explorer.SetSize(l.explorerWidth-4, l.mainHeight-4)
	m.editor.SetSize(l.editorWidth-4, l.mainHeight-3)
	m.pipeline.SetWidth(l.rightWidth - 4)
	m.artifacts.SetSize(l.rightWidth-4, l.mainHeight-3)
	m.terminal.SetSize(m.width-4, l.terminalH-3)
	m.help.Width = m.width
}

func clamp(v, lo, hi int) int {
	return min(max(v, lo), hi)
}

func (m *Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	switch m.state {
	case stateHelp:
		return m.helpScreen.View()
	case stateConfirmingDelete, stateCreatingFile, stateRunningCommand, stateRunningPipeline, stateRunningTool:
		return compositeOverlay(m.mainView(), theme.PaneStyle.Render(m.dialog.View()), m.width, m.height)
	case stateCommandPalette:
		return bottomAnchoredOverlay(m.mainView(), m.commandPalette.View(), m.width, m.height)
	}
	return m.mainView()
}

func (m *Model) mainView() string {
	l := m.computeLayout()

	explorer := renderPane(
		theme.PaneTitleStyle.Render("EXPLORER"),
		m.explorer.View(m.workspace.TreeError(), m.workspace.TreeLoaded()),
		l.explorerWidth, l.mainHeight, m.focus == paneExplorer)

	editor := renderPane(
		m.editor.Title(m.workspace.Editor.Dirty(), m.workspace.Editor.DiffStats()),
		m.editor.View(),
		l.editorWidth, l.mainHeight, m.focus == paneEditor)

	rightTitle, rightBody := "PIPELINE", m.pipeline.View(m.workspace.Status)
	if m.showArtifacts {
		rightTitle, rightBody = "REPORTS", m.artifacts.View()
	}
	right := renderPane(theme.PaneTitleStyle.Render(rightTitle), rightBody,
		l.rightWidth, l.mainHeight, m.focus == paneTerminal && m.showArtifacts)

	terminal := renderPane(m.terminalTitle(), m.terminal.View(),
		m.width, l.terminalH, m.focus == paneTerminal && !m.showArtifacts)

	return lipgloss.JoinVertical(lipgloss.Left,
		m.headerView(),
		lipgloss.JoinHorizontal(lipgloss.Top, explorer, editor, right),
		terminal,
		m.footerView(),
	)
}

func (m *Model) headerView() string {
	title := theme.AppNameStyle.Render("⚡ AURA")
	if latest := m.workspace.Status.Latest(); latest != nil && latest.StatusLabel != "" {
		title += "  " + theme.MutedStyle.Render(latest.StatusLabel)
	}
	return title
}

// terminalTitle shows the pipeline status label and progress next to the pane name
func (m *Model) terminalTitle() string {
	title := theme.PaneTitleStyle.Render("TERMINAL")
	latest := m.workspace.Status.Latest()
	if latest == nil {
		return title
	}
	if label := strings.TrimSpace(latest.StatusLabel); label != "" {
		title += theme.MutedStyle.Render(" › " + label)
	}
	return title + theme.MutedStyle.Render(fmt.Sprintf("  %d%%", latest.Progress))
}

func (m *Model) footerView() string {
	if m.errorManager.HasError() {
		return theme.ErrorStyle.Render(formatErrorForDisplay(m.errorManager.GetError(), m.width))
	}
	lines := []string{m.help.ShortHelpView(m.keys.ShortHelp())}
	if m.tip != "" {
		lines = append(lines, m.tip)
	}
	return strings.Join(lines, "\n")
}

// renderPane draws a bordered pane of the given outer size
func renderPane(title, body string, width, height int, focused bool) string {
	style := theme.PaneStyle
	if focused {
		style = theme.FocusedPaneStyle
	}
	return style.
		Width(max(width-2, 1)).
		Height(max(height-2, 1)).
		MaxHeight(height).
		Render(title + "\n" + body)
}
