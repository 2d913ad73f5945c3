package ui

import (
	"github.com/aura-ide/aura/internal/config"
)

// ExplorerKeys defines key bindings for the file explorer
type ExplorerKeys struct {
	CopyPath  KeyWithTip
	Delete    KeyWithTip
	Down      KeyWithTip
	ExpandAll KeyWithTip
	NewFile   KeyWithTip
	Open      KeyWithTip
	Refresh   KeyWithTip
	Up        KeyWithTip
}

// newExplorerKeys creates explorer key bindings
func newExplorerKeys(defaults map[string][]string, customKeys config.KeyBindingsConfig) ExplorerKeys {
	return ExplorerKeys{
		CopyPath:  buildBinding("copy_path", defaults, customKeys),
		Delete:    buildBinding("delete_file", defaults, customKeys),
		Down:      buildBinding("down", defaults, customKeys),
		ExpandAll: buildBinding("expand_all", defaults, customKeys),
		NewFile:   buildBinding("new_file", defaults, customKeys),
		Open:      buildBinding("open", defaults, customKeys),
		Refresh:   buildBinding("refresh", defaults, customKeys),
		Up:        buildBinding("up", defaults, customKeys),
	}
}

// EditorKeys defines key bindings for the code buffer
type EditorKeys struct {
	Leave KeyWithTip
	Save  KeyWithTip
}

// newEditorKeys creates editor key bindings
func newEditorKeys(defaults map[string][]string, customKeys config.KeyBindingsConfig) EditorKeys {
	return EditorKeys{
		Leave: buildBinding("leave_editor", defaults, customKeys),
		Save:  buildBinding("save", defaults, customKeys),
	}
}
