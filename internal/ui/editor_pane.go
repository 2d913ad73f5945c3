package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/aura-ide/aura/internal/application"
	"github.com/aura-ide/aura/internal/theme"
)

// maxBufferSize bounds the characters the code buffer accepts
const maxBufferSize = 1 << 20

// EditorPane is the code buffer of the open file
type EditorPane struct {
	area textarea.Model
	path string
}

// NewEditorPane creates an empty, blurred buffer
func NewEditorPane() *EditorPane {
	area := textarea.New()
	area.Prompt = ""
	area.CharLimit = maxBufferSize
	area.ShowLineNumbers = true
	area.Placeholder = "Select a file in the explorer to open it"
	area.Blur()
	return &EditorPane{area: area}
}

// Load replaces the buffer with the contents of path
func (p *EditorPane) Load(path, content string) {
	p.path = path
	p.area.SetValue(content)
	p.area.CursorStart()
}

// Reset empties the buffer after the open file went away
func (p *EditorPane) Reset() {
	p.path = ""
	p.area.Reset()
}

func (p *EditorPane) Path() string {
	return p.path
}

func (p *EditorPane) Value() string {
	return p.area.Value()
}

func (p *EditorPane) Focus() tea.Cmd {
	return p.area.Focus()
}

func (p *EditorPane) Blur() {
	p.area.Blur()
}

func (p *EditorPane) Focused() bool {
	return p.area.Focused()
}

func (p *EditorPane) SetSize(width, height int) {
	p.area.SetWidth(max(width, 10))
	p.area.SetHeight(max(height, 1))
}

// Update forwards input to the buffer and reports whether the text changed
func (p *EditorPane) Update(msg tea.Msg) (bool, tea.Cmd) {
	before := p.area.Value()
	var cmd tea.Cmd
	p.area, cmd = p.area.Update(msg)
	return p.area.Value() != before, cmd
}

// Title renders the pane title with the dirty marker and diff stats
func (p *EditorPane) Title(dirty bool, stats application.DiffStats) string {
	if p.path == "" {
		return theme.PaneTitleStyle.Render("EDITOR")
	}

	var sb strings.Builder
	sb.WriteString(theme.PaneTitleStyle.Render(p.path))
	if dirty {
		sb.WriteString(theme.DirtyMarkerStyle.Render(" ●"))
	}
	if !stats.IsZero() {
		sb.WriteString(" ")
		sb.WriteString(theme.AdditionsStyle.Render(fmt.Sprintf("+%d", stats.Added)))
		sb.WriteString(" ")
		sb.WriteString(theme.DeletionsStyle.Render(fmt.Sprintf("-%d", stats.Removed)))
	}
	return sb.String()
}

func (p *EditorPane) View() string {
	return p.area.View()
}
