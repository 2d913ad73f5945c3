package ui

import (
	"sort"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
)

// KeyDefinition defines the metadata for a configurable key binding.
// All key bindings are defined here as the single source of truth.
type KeyDefinition struct {
	Defaults        []string
	Help            string
	IsPaletteAction bool    // If true, this key appears in command palette
	Msg             tea.Msg // Prototype message for dispatch (nil if not dispatchable)
	Name            string
	TipFormat       string
}

// AllKeyDefinitions contains all configurable key bindings.
// If IsPaletteAction is true, the key appears in the command palette.
var AllKeyDefinitions = []KeyDefinition{
	// Application keys
	{Name: "command_palette", Defaults: []string{"P", "ctrl+p"}, Help: "command palette", TipFormat: "press %s to open the command palette"},
	{Name: "focus_next", Defaults: []string{"tab"}, Help: "focus next pane"},
	{Name: "focus_prev", Defaults: []string{"shift+tab"}, Help: "focus previous pane"},
	{Name: "force_quit", Defaults: []string{"ctrl+c"}, Help: "force quit"},
	{Name: "help", Defaults: []string{"?"}, Help: "show keyboard shortcuts", IsPaletteAction: true, Msg: ShowHelpMsg{}, TipFormat: "press %s to see all shortcuts"},
	{Name: "quit", Defaults: []string{"q"}, Help: "exit application", IsPaletteAction: true, Msg: QuitMsg{}},

	// Explorer keys
	{Name: "copy_path", Defaults: []string{"y"}, Help: "copy path to clipboard", IsPaletteAction: true, Msg: CopyPathMsg{}, TipFormat: "press %s to copy the selected path"},
	{Name: "delete_file", Defaults: []string{"x"}, Help: "delete file", IsPaletteAction: true, Msg: DeleteFileMsg{}},
	{Name: "down", Defaults: []string{"down", "j"}, Help: "select next row"},
	{Name: "expand_all", Defaults: []string{"E"}, Help: "expand all folders", IsPaletteAction: true, Msg: ExpandAllMsg{}},
	{Name: "new_file", Defaults: []string{"n"}, Help: "create new file", IsPaletteAction: true, Msg: NewFileMsg{}, TipFormat: "press %s to create a file on the build server"},
	{Name: "open", Defaults: []string{"enter", " "}, Help: "open file / toggle folder"},
	{Name: "refresh", Defaults: []string{"r"}, Help: "refresh file tree", IsPaletteAction: true, Msg: RefreshTreeMsg{}, TipFormat: "press %s to re-fetch the file tree"},
	{Name: "up", Defaults: []string{"up", "k"}, Help: "select previous row"},

	// Editor keys
	{Name: "leave_editor", Defaults: []string{"esc"}, Help: "leave editor"},
	{Name: "save", Defaults: []string{"ctrl+s"}, Help: "save file", IsPaletteAction: true, Msg: SaveFileMsg{}, TipFormat: "press %s to save the open file"},

	// Pipeline keys
	{Name: "clear_terminal", Defaults: []string{"ctrl+l"}, Help: "clear terminal", IsPaletteAction: true, Msg: ClearTerminalMsg{}},
	{Name: "run_command", Defaults: []string{":"}, Help: "run shell command", IsPaletteAction: true, Msg: RunCommandMsg{}, TipFormat: "press %s to run a command on the build server"},
	{Name: "run_file", Defaults: []string{"ctrl+r"}, Help: "run open file", IsPaletteAction: true, Msg: RunOpenFileMsg{}, TipFormat: "press %s to run the open file"},
	{Name: "run_pipeline", Defaults: []string{"R"}, Help: "run build pipeline", IsPaletteAction: true, Msg: RunPipelineMsg{}, TipFormat: "press %s to start the multi-agent pipeline"},
	{Name: "run_tool", Defaults: []string{"t"}, Help: "run automation tool", IsPaletteAction: true, Msg: RunToolMsg{}, TipFormat: "press %s to run an automation tool on the open file"},
	{Name: "toggle_artifacts", Defaults: []string{"a"}, Help: "toggle reports view", IsPaletteAction: true, Msg: ToggleArtifactsMsg{}, TipFormat: "press %s to read the pipeline reports"},
}

var (
	defaultBindingsCache map[string][]string
	defaultBindingsOnce  sync.Once

	keyDefinitionsMap     map[string]KeyDefinition
	keyDefinitionsMapOnce sync.Once

	validKeyNames     []string
	validKeyNamesOnce sync.Once
)

// GetDefaultKeyBindings returns the default key bindings as a map.
// The result is cached after the first call.
func GetDefaultKeyBindings() map[string][]string {
	defaultBindingsOnce.Do(func() {
		defaultBindingsCache = make(map[string][]string, len(AllKeyDefinitions))
		for _, def := range AllKeyDefinitions {
			defaultBindingsCache[def.Name] = def.Defaults
		}
	})
	return defaultBindingsCache
}

// GetKeyDefinition returns the definition for a key by name.
// Returns nil if not found.
func GetKeyDefinition(name string) *KeyDefinition {
	keyDefinitionsMapOnce.Do(func() {
		keyDefinitionsMap = make(map[string]KeyDefinition, len(AllKeyDefinitions))
		for _, def := range AllKeyDefinitions {
			keyDefinitionsMap[def.Name] = def
		}
	})
	if def, ok := keyDefinitionsMap[name]; ok {
		return &def
	}
	return nil
}

// GetValidKeyNames returns all valid key binding names in sorted order.
// The result is cached after the first call.
func GetValidKeyNames() []string {
	validKeyNamesOnce.Do(func() {
		validKeyNames = make([]string, len(AllKeyDefinitions))
		for i, def := range AllKeyDefinitions {
			validKeyNames[i] = def.Name
		}
		sort.Strings(validKeyNames)
	})
	return validKeyNames
}

// IsValidKeyName checks if a name is a valid key binding name.
func IsValidKeyName(name string) bool {
	return GetKeyDefinition(name) != nil
}

// GetPaletteActions returns key definitions that should appear in the command palette.
func GetPaletteActions() []KeyDefinition {
	var actions []KeyDefinition
	for _, def := range AllKeyDefinitions {
		if !def.IsPaletteAction {
			continue
		}
		actions = append(actions, def)
	}
	return actions
}
