package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/aura-ide/aura/internal/domain"
	"github.com/aura-ide/aura/internal/theme"
)

// HelpScreen displays keyboard shortcuts organized by pane
type HelpScreen struct {
	Completed   bool
	content     string
	initialized bool // viewport has been sized
	keys        *KeyMap
	viewport    viewport.Model
}

func renderShortcut(key, description string) string {
	return theme.HelpKeyStyle.Render(key) + theme.HelpDescStyle.Render(description) + "\n"
}

func renderBinding(binding key.Binding) string {
	help := binding.Help()
	return renderShortcut(help.Key, help.Desc)
}

func renderGroup(sb *strings.Builder, title string, bindings ...KeyWithTip) {
	if sb.Len() > 0 {
		sb.WriteString("\n")
	}
	sb.WriteString(theme.HelpGroupStyle.Render(title) + "\n")
	for _, b := range bindings {
		sb.WriteString(renderBinding(b.Binding))
	}
}

// buildHelpContent builds the help text from the active key bindings
func buildHelpContent(keys *KeyMap) string {
	var sb strings.Builder

	renderGroup(&sb, "Explorer",
		keys.Explorer.Up, keys.Explorer.Down, keys.Explorer.Open,
		keys.Explorer.ExpandAll, keys.Explorer.Refresh,
		keys.Explorer.NewFile, keys.Explorer.Delete, keys.Explorer.CopyPath)

	renderGroup(&sb, "Editor", keys.Editor.Save, keys.Editor.Leave)

	renderGroup(&sb, "Pipeline & Terminal",
		keys.Pipeline.RunPipeline, keys.Pipeline.RunCommand, keys.Pipeline.RunFile,
		keys.Pipeline.RunTool, keys.Pipeline.ToggleArtifacts, keys.Pipeline.ClearTerminal)

	renderGroup(&sb, "Application",
		keys.Application.FocusNext, keys.Application.FocusPrev,
		keys.Application.CommandPalette, keys.Application.Help,
		keys.Application.Quit, keys.Application.ForceQuit)

	sb.WriteString("\n" + theme.HelpGroupStyle.Render("Phase Indicators (read-only)") + "\n")
	for _, state := range []domain.PhaseState{domain.PhasePending, domain.PhaseRunning, domain.PhaseComplete, domain.PhaseFailed} {
		sb.WriteString(renderShortcut(theme.PhaseStateIcon(state), "phase is "+string(state)))
	}
	sb.WriteString(renderShortcut("●", "open file has unsaved edits (next to the file name)"))
	sb.WriteString(renderShortcut("⚠ offline", "status polls are failing"))

	return sb.String()
}

func NewHelpScreen(keys *KeyMap) *HelpScreen {
	return &HelpScreen{
		content:  buildHelpContent(keys),
		keys:     keys,
		viewport: viewport.New(0, 0),
	}
}

func (h *HelpScreen) Init() tea.Cmd {
	h.viewport.KeyMap.Up.SetKeys("up", "k")
	h.viewport.KeyMap.Down.SetKeys("down", "j")
	return nil
}

func (h *HelpScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		// Dialog header: 4 lines, Footer: 2 lines
		h.viewport.Width = msg.Width
		h.viewport.Height = max(msg.Height-6, 5)
		h.viewport.SetContent(h.content)
		h.initialized = true
		return h, nil

	case tea.KeyMsg:
		if msg.String() == "esc" || key.Matches(msg, h.keys.Application.Quit.Binding, h.keys.Application.Help.Binding) {
			h.Completed = true
			return h, nil
		}
	}

	var cmd tea.Cmd
	h.viewport, cmd = h.viewport.Update(msg)
	return h, cmd
}

func (h *HelpScreen) View() string {
	if !h.initialized {
		return "Loading help..."
	}

	footer := theme.HelpStyle.Render("Press esc, q, or ? to close • ↑↓/jk/PgUp/PgDn to scroll")
	return h.viewport.View() + "\n\n" + footer
}
