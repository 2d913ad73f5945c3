package cmd

import (
	"errors"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/aura-ide/aura/internal/config"
	"github.com/aura-ide/aura/internal/logging"
	"github.com/aura-ide/aura/internal/ui"
)

// SettingsKeysCmd manages keyboard shortcuts
type SettingsKeysCmd struct {
	List  SettingsKeysListCmd  `cmd:"list" help:"List all key bindings (defaults and custom)" default:"1"`
	Reset SettingsKeysResetCmd `cmd:"reset" help:"Remove a custom key binding"`
	Set   SettingsKeysSetCmd   `cmd:"set" help:"Set a key binding"`
}

// SettingsKeysListCmd lists all key bindings
type SettingsKeysListCmd struct {
	Format string `help:"Output format: table, json or yaml" enum:"table,json,yaml" default:"table"`
}

// SettingsKeysResetCmd drops a custom binding so the default applies again
type SettingsKeysResetCmd struct {
	Key string `arg:"" help:"Key name (e.g., save, run_pipeline, quit)"`
}

// SettingsKeysSetCmd sets a key binding
type SettingsKeysSetCmd struct {
	Key   string `arg:"" help:"Key name (e.g., save, run_pipeline, quit)"`
	Value string `arg:"" help:"Key binding (e.g., a, ctrl+s, or comma-separated for multiple: up,k)"`
}

type keyBindingOutput struct {
	Custom  []string `json:"custom,omitempty" yaml:"custom,omitempty"`
	Default []string `json:"default" yaml:"default"`
	Help    string   `json:"help" yaml:"help"`
}

// Run executes the list command
func (s *SettingsKeysListCmd) Run(cli *CLI) error {
	var custom config.KeyBindingsConfig
	if cli.settings != nil {
		custom = cli.settings.Keys
	}
	names := ui.GetValidKeyNames()
	bindings := keyBindings(names, custom)

	if s.Format != formatTable {
		return printStructured(stdout, s.Format, bindings)
	}

	fmt.Fprintf(stdout, "Key Bindings (settings file: %s)\n\n", config.GetSettingsPath())
	w := tabwriter.NewWriter(stdout, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "Name\tDefault\tCustom\tHelp")
	fmt.Fprintln(w, "────\t───────\t──────\t────")
	for _, name := range names {
		b := bindings[name]
		customStr := "-"
		if len(b.Custom) > 0 {
			customStr = strings.Join(b.Custom, ", ")
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", name, strings.Join(b.Default, ", "), customStr, b.Help)
	}
	w.Flush()

	fmt.Fprintln(stdout)
	fmt.Fprintln(stdout, "Use 'aura settings keys set <name> <value>' to customize.")
	return nil
}

func keyBindings(names []string, custom config.KeyBindingsConfig) map[string]keyBindingOutput {
	defaults := ui.GetDefaultKeyBindings()
	result := make(map[string]keyBindingOutput, len(names))
	for _, name := range names {
		b := keyBindingOutput{Default: defaults[name]}
		if keys := custom[name]; len(keys) > 0 {
			b.Custom = keys
		}
		if def := ui.GetKeyDefinition(name); def != nil {
			b.Help = def.Help
		}
		result[name] = b
	}
	return result
}

// Run executes the set command
func (s *SettingsKeysSetCmd) Run(cli *CLI) error {
	if err := validateKeyName(s.Key); err != nil {
		return err
	}
	values := parseKeyValues(s.Value)
	if len(values) == 0 {
		return errors.New("value cannot be empty")
	}

	logging.Logger.Debug("Setting key binding", "key", s.Key, "values", values)

	err := updateKeyBindings(func(keys config.KeyBindingsConfig) error {
		keys[s.Key] = values
		if err := keys.Validate(ui.GetValidKeyNames()); err != nil {
			return fmt.Errorf("conflict: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(stdout, "Set '%s' to: %s\n", s.Key, strings.Join(values, ", "))
	return nil
}

// Run executes the reset command
func (s *SettingsKeysResetCmd) Run(cli *CLI) error {
	if err := validateKeyName(s.Key); err != nil {
		return err
	}

	logging.Logger.Debug("Resetting key binding", "key", s.Key)

	err := updateKeyBindings(func(keys config.KeyBindingsConfig) error {
		delete(keys, s.Key)
		return nil
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(stdout, "Reset '%s' to: %s\n", s.Key, strings.Join(ui.GetDefaultKeyBindings()[s.Key], ", "))
	return nil
}

func validateKeyName(name string) error {
	if !ui.IsValidKeyName(name) {
		return fmt.Errorf("unknown key '%s'. Valid keys: %s",
			name, strings.Join(ui.GetValidKeyNames(), ", "))
	}
	return nil
}

// updateKeyBindings loads the settings file, applies fn to its key map and
// saves the result
func updateKeyBindings(fn func(config.KeyBindingsConfig) error) error {
	settings, err := config.LoadSettings()
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}
	if settings.Keys == nil {
		settings.Keys = make(config.KeyBindingsConfig)
	}
	if err := fn(settings.Keys); err != nil {
		return err
	}
	if err := config.SaveSettings(settings); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}
	return nil
}

// parseKeyValues parses comma-separated key values
func parseKeyValues(value string) []string {
	parts := strings.Split(value, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}
