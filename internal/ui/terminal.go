package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/aura-ide/aura/internal/domain"
	"github.com/aura-ide/aura/internal/theme"
)

// Terminal shows the event log, newest entry at the bottom
type Terminal struct {
	lastSeq       int64
	renderedWidth int
	viewport      viewport.Model
}

func NewTerminal() *Terminal {
	return &Terminal{viewport: viewport.New(80, 8)}
}

func (t *Terminal) SetSize(width, height int) {
	t.viewport.Width = max(width, 10)
	t.viewport.Height = max(height, 1)
}

// Sync re-renders the log and jumps to the bottom when an entry was added
func (t *Terminal) Sync(log *domain.EventLog) {
	var last int64
	if entry, ok := log.Last(); ok {
		last = entry.Seq
	}
	if last == t.lastSeq && t.renderedWidth == t.viewport.Width {
		return
	}

	entries := log.Entries()

	lines := make([]string, 0, len(entries))
	for _, entry := range entries {
		style := theme.SeverityStyle(entry.Severity)
		text := lipgloss.NewStyle().Width(t.viewport.Width).Render(entry.Text)
		lines = append(lines, style.Render(text))
	}
	t.viewport.SetContent(strings.Join(lines, "\n"))
	t.renderedWidth = t.viewport.Width

	if last != t.lastSeq {
		t.viewport.GotoBottom()
	}
	t.lastSeq = last
}

func (t *Terminal) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	t.viewport, cmd = t.viewport.Update(msg)
	return cmd
}

func (t *Terminal) View() string {
	return t.viewport.View()
}
