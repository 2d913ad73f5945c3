package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/aura-ide/aura/internal/theme"
)

// maxVisibleItems is the number of palette rows shown at once
const maxVisibleItems = 6

// CommandPalette is a searchable action palette overlay.
type CommandPalette struct {
	actions       []KeyDefinition // Filtered actions
	allActions    []KeyDefinition
	Completed     bool
	context       string // Open file or selected path, shown in the header
	filterInput   textinput.Model
	keys          KeyMap
	lastQuery     string
	Result        CommandPaletteResult
	selectedIndex int
	width         int
}

// CommandPaletteResult contains the result of the command palette interaction.
type CommandPaletteResult struct {
	Action    *KeyDefinition
	Cancelled bool
}

// NewCommandPalette creates a palette over all palette actions.
// context is a short label shown next to the title and may be empty.
func NewCommandPalette(context string, keys KeyMap, width int) *CommandPalette {
	actions := GetPaletteActions()

	ti := textinput.New()
	ti.Prompt = "Filter: "
	ti.PromptStyle = theme.FilterPromptStyle
	ti.Cursor.Style = theme.FilterCursorStyle
	ti.Placeholder = "type to filter"
	ti.PlaceholderStyle = theme.DimmedStyle
	ti.Focus()
	ti.CharLimit = 50
	ti.Width = 40

	return &CommandPalette{
		actions:     actions,
		allActions:  actions,
		context:     context,
		filterInput: ti,
		keys:        keys,
		width:       width,
	}
}

func (cp *CommandPalette) Init() tea.Cmd {
	return textinput.Blink
}

func (cp *CommandPalette) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		cp.width = msg.Width
		return cp, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, cp.keys.Editor.Leave.Binding) ||
			key.Matches(msg, cp.keys.Application.ForceQuit.Binding):
			cp.Completed = true
			cp.Result.Cancelled = true
			return cp, nil

		case msg.Type == tea.KeyEnter:
			if cp.selectedIndex < len(cp.actions) {
				cp.Completed = true
				cp.Result.Action = &cp.actions[cp.selectedIndex]
			}
			return cp, nil

		case msg.Type == tea.KeyUp:
			if cp.selectedIndex > 0 {
				cp.selectedIndex--
			}
			return cp, nil

		case msg.Type == tea.KeyDown:
			if cp.selectedIndex < len(cp.actions)-1 {
				cp.selectedIndex++
			}
			return cp, nil
		}
	}

	var cmd tea.Cmd
	cp.filterInput, cmd = cp.filterInput.Update(msg)
	cp.filterActions()

	return cp, cmd
}

// View renders the palette as a full-width bottom panel.
func (cp *CommandPalette) View() string {
	header := theme.PaletteTitleStyle.Render("⌘ Command Palette")
	if cp.context != "" {
		header += " " + theme.DimmedStyle.Render("("+cp.context+")")
	}

	var items []string
	maxHelpLen := cp.maxHelpLen()
	start, end := cp.visibleRange()
	hasMoreAbove := start > 0
	hasMoreBelow := end < len(cp.actions)

	for i := start; i < end; i++ {
		def := cp.actions[i]
		prefix := "  "
		switch {
		case i == cp.selectedIndex:
			prefix = "> "
		case i == start && hasMoreAbove:
			prefix = theme.ScrollIndicatorStyle.Render("↑ ")
		case i == end-1 && hasMoreBelow:
			prefix = theme.ScrollIndicatorStyle.Render("↓ ")
		}

		items = append(items, prefix+
			theme.PaletteItemStyle.Render(padRight(capitalizeFirst(def.Help), maxHelpLen))+
			theme.PaletteShortcutStyle.Render("  "+cp.shortcut(def)))
	}

	if len(items) == 0 {
		items = append(items, theme.PaletteDescStyle.Render("  No matching actions"))
	}
	for len(items) < maxVisibleItems {
		items = append(items, "")
	}

	inner := header + "\n\n" + cp.filterInput.View() + "\n\n" + strings.Join(items, "\n")
	return theme.PaletteBorderStyle.Width(cp.paletteWidth() - 2).Render(inner)
}

// shortcut shows the first active key, which may be a user override
func (cp *CommandPalette) shortcut(def KeyDefinition) string {
	keys := def.Defaults
	if b, ok := cp.keys.Binding(def.Name); ok && len(b.Keys()) > 0 {
		keys = b.Keys()
	}
	if len(keys) == 0 {
		return ""
	}
	return displayKeys(keys)[0]
}

func (cp *CommandPalette) filterActions() {
	query := strings.ToLower(cp.filterInput.Value())
	if query == cp.lastQuery {
		return
	}
	cp.lastQuery = query

	if query == "" {
		cp.actions = cp.allActions
		cp.selectedIndex = 0
		return
	}

	var filtered []KeyDefinition
	for _, def := range cp.allActions {
		if fuzzyMatch(query, def.Help) {
			filtered = append(filtered, def)
		}
	}
	cp.actions = filtered

	if cp.selectedIndex >= len(cp.actions) {
		cp.selectedIndex = 0
	}
}

// fuzzyMatch checks if all characters in query appear in order in target.
func fuzzyMatch(query, target string) bool {
	target = strings.ToLower(target)
	queryRunes := []rune(query)
	qi := 0
	for _, c := range target {
		if qi < len(queryRunes) && c == queryRunes[qi] {
			qi++
		}
	}
	return qi == len(queryRunes)
}

// maxHelpLen uses allActions so alignment stays stable while filtering
func (cp *CommandPalette) maxHelpLen() int {
	maxLen := 0
	for _, def := range cp.allActions {
		maxLen = max(maxLen, len(def.Help))
	}
	return maxLen
}

func (cp *CommandPalette) paletteWidth() int {
	if cp.width > 0 {
		return cp.width
	}
	return 80
}

// visibleRange keeps the selected item visible with some context
func (cp *CommandPalette) visibleRange() (int, int) {
	total := len(cp.actions)
	if total <= maxVisibleItems {
		return 0, total
	}

	start := max(cp.selectedIndex-maxVisibleItems/2, 0)
	end := start + maxVisibleItems
	if end > total {
		end = total
		start = end - maxVisibleItems
	}
	return start, end
}

func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}

func capitalizeFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
