package ui

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/aura-ide/aura/internal/config"
)

// KeyMap contains all keyboard shortcuts organized by context
type KeyMap struct {
	Application ApplicationKeys
	Editor      EditorKeys
	Explorer    ExplorerKeys
	Pipeline    PipelineKeys
}

// NewKeyMap creates a new KeyMap with all key bindings initialized.
// Pass nil for customKeys to use default bindings.
func NewKeyMap(customKeys config.KeyBindingsConfig) KeyMap {
	defaults := GetDefaultKeyBindings()
	return KeyMap{
		Application: newApplicationKeys(defaults, customKeys),
		Editor:      newEditorKeys(defaults, customKeys),
		Explorer:    newExplorerKeys(defaults, customKeys),
		Pipeline:    newPipelineKeys(defaults, customKeys),
	}
}

// ShortHelp returns a curated list of key bindings for the bottom bar
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{
		k.Explorer.Open.Binding,
		k.Editor.Save.Binding,
		k.Pipeline.RunPipeline.Binding,
		k.Pipeline.RunCommand.Binding,
		k.Pipeline.RunTool.Binding,
		k.Application.FocusNext.Binding,
		k.Application.Help.Binding,
		k.Application.Quit.Binding,
	}
}

// FullHelp returns all bindings grouped by context
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Explorer.Up.Binding, k.Explorer.Down.Binding, k.Explorer.Open.Binding, k.Explorer.Refresh.Binding},
		{k.Editor.Save.Binding, k.Editor.Leave.Binding},
		{k.Pipeline.RunPipeline.Binding, k.Pipeline.RunCommand.Binding, k.Pipeline.RunTool.Binding, k.Pipeline.RunFile.Binding},
		{k.Application.Help.Binding, k.Application.Quit.Binding},
	}
}

// Binding returns the active binding for a key definition name
func (k KeyMap) Binding(name string) (key.Binding, bool) {
	bindings := map[string]KeyWithTip{
		"clear_terminal":   k.Pipeline.ClearTerminal,
		"command_palette":  k.Application.CommandPalette,
		"copy_path":        k.Explorer.CopyPath,
		"delete_file":      k.Explorer.Delete,
		"down":             k.Explorer.Down,
		"expand_all":       k.Explorer.ExpandAll,
		"focus_next":       k.Application.FocusNext,
		"focus_prev":       k.Application.FocusPrev,
		"force_quit":       k.Application.ForceQuit,
		"help":             k.Application.Help,
		"leave_editor":     k.Editor.Leave,
		"new_file":         k.Explorer.NewFile,
		"open":             k.Explorer.Open,
		"quit":             k.Application.Quit,
		"refresh":          k.Explorer.Refresh,
		"run_command":      k.Pipeline.RunCommand,
		"run_file":         k.Pipeline.RunFile,
		"run_pipeline":     k.Pipeline.RunPipeline,
		"run_tool":         k.Pipeline.RunTool,
		"save":             k.Editor.Save,
		"toggle_artifacts": k.Pipeline.ToggleArtifacts,
		"up":               k.Explorer.Up,
	}
	b, ok := bindings[name]
	return b.Binding, ok
}
