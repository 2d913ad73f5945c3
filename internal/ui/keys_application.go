package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"

	"github.com/aura-ide/aura/internal/config"
)

// ApplicationKeys defines key bindings for application-level actions
type ApplicationKeys struct {
	CommandPalette KeyWithTip
	FocusNext      KeyWithTip
	FocusPrev      KeyWithTip
	ForceQuit      KeyWithTip
	Help           KeyWithTip
	Quit           KeyWithTip
}

// newApplicationKeys creates application key bindings
func newApplicationKeys(defaults map[string][]string, customKeys config.KeyBindingsConfig) ApplicationKeys {
	return ApplicationKeys{
		CommandPalette: buildBinding("command_palette", defaults, customKeys),
		FocusNext:      buildBinding("focus_next", defaults, customKeys),
		FocusPrev:      buildBinding("focus_prev", defaults, customKeys),
		ForceQuit:      buildBinding("force_quit", defaults, customKeys),
		Help:           buildBinding("help", defaults, customKeys),
		Quit:           buildBinding("quit", defaults, customKeys),
	}
}

// buildBinding creates a KeyWithTip from the key definition, using custom keys if provided.
func buildBinding(name string, defaults map[string][]string, customKeys config.KeyBindingsConfig) KeyWithTip {
	def := GetKeyDefinition(name)
	if def == nil {
		panic("unknown key definition: " + name)
	}

	keys := defaults[name]
	if custom, ok := customKeys[name]; ok && len(custom) > 0 {
		keys = custom
	}
	helpKeys := strings.Join(displayKeys(keys), "/")

	result := KeyWithTip{
		Binding: key.NewBinding(
			key.WithKeys(keys...),
			key.WithHelp(helpKeys, def.Help),
		),
	}

	if def.TipFormat != "" && len(keys) > 0 {
		result.Tip = newTip(def.TipFormat, displayKeys(keys)[0])
	}

	return result
}

// displayKeys renames keys that print as whitespace
func displayKeys(keys []string) []string {
	out := make([]string, len(keys))
	for i, k := range keys {
		if k == " " {
			k = "space"
		}
		out[i] = k
	}
	return out
}
