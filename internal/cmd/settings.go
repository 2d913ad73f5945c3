package cmd

import (
	"encoding/json"
	"fmt"
	"sort"
	"text/tabwriter"

	"github.com/aura-ide/aura/internal/config"
)

// SettingsCmd manages settings
type SettingsCmd struct {
	Keys SettingsKeysCmd `cmd:"keys" help:"Manage keyboard shortcuts"`
	Meta SettingsMetaCmd `cmd:"meta" help:"Show available options with example values"`
	Path SettingsPathCmd `cmd:"path" help:"Print the settings file location"`
	Show SettingsShowCmd `cmd:"show" help:"Show the effective settings" default:"1"`
}

// SettingsShowCmd prints the settings after flags and env vars are applied
type SettingsShowCmd struct {
	Format string `help:"Output format: table, json or yaml" enum:"table,json,yaml" default:"table"`
}

type effectiveSettings struct {
	APIURL           string   `json:"api_url" yaml:"api_url"`
	DBPath           string   `json:"db_path" yaml:"db_path"`
	HiddenPatterns   []string `json:"hidden_patterns" yaml:"hidden_patterns"`
	MutatingTools    []string `json:"mutating_tools" yaml:"mutating_tools"`
	PersistExpansion bool     `json:"persist_expansion" yaml:"persist_expansion"`
	PhaseColors      []string `json:"phase_colors" yaml:"phase_colors"`
	Phases           []string `json:"phases" yaml:"phases"`
	RequestTimeout   string   `json:"request_timeout" yaml:"request_timeout"`
	SettingsFile     string   `json:"settings_file" yaml:"settings_file"`
	Tools            []string `json:"tools" yaml:"tools"`
}

// Run executes the show command
func (s *SettingsShowCmd) Run(cli *CLI) error {
	opts := cli.Container.Options
	effective := effectiveSettings{
		APIURL:           opts.APIURL,
		DBPath:           opts.DBPath,
		HiddenPatterns:   opts.HiddenPatterns,
		MutatingTools:    opts.Tools.Mutating,
		PersistExpansion: opts.PersistExpansion,
		PhaseColors:      opts.Phases.Colors,
		Phases:           opts.Phases.Phases,
		RequestTimeout:   opts.RequestTimeout.String(),
		SettingsFile:     config.GetSettingsPath(),
		Tools:            opts.Tools.Tools,
	}

	if s.Format != formatTable {
		return printStructured(stdout, s.Format, effective)
	}

	w := tabwriter.NewWriter(stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "settings_file\t%s\n", effective.SettingsFile)
	fmt.Fprintf(w, "api_url\t%s\n", effective.APIURL)
	fmt.Fprintf(w, "db_path\t%s\n", effective.DBPath)
	fmt.Fprintf(w, "request_timeout\t%s\n", effective.RequestTimeout)
	fmt.Fprintf(w, "persist_expansion\t%t\n", effective.PersistExpansion)
	fmt.Fprintf(w, "phases\t%v\n", effective.Phases)
	fmt.Fprintf(w, "phase_colors\t%v\n", effective.PhaseColors)
	fmt.Fprintf(w, "tools\t%v\n", effective.Tools)
	fmt.Fprintf(w, "mutating_tools\t%v\n", effective.MutatingTools)
	fmt.Fprintf(w, "hidden_patterns\t%v\n", effective.HiddenPatterns)
	return w.Flush()
}

// SettingsPathCmd prints the settings file location
type SettingsPathCmd struct{}

// Run executes the path command
func (s *SettingsPathCmd) Run() error {
	fmt.Fprintln(stdout, config.GetSettingsPath())
	return nil
}

// SettingsMetaCmd displays settings metadata
type SettingsMetaCmd struct {
	Format string `help:"Output format: table or json" enum:"table,json" default:"table"`
}

// Run executes the meta command
func (s *SettingsMetaCmd) Run() error {
	settingsFile := config.GetSettingsPath()
	example := config.GetSettingsExample()

	if s.Format == formatJSON {
		return printStructured(stdout, formatJSON, map[string]any{
			"settings_file": settingsFile,
			"format":        example,
		})
	}

	fmt.Fprintf(stdout, "Settings file: %s\n\n", settingsFile)
	fmt.Fprintln(stdout, "Example settings.json:")
	fmt.Fprintln(stdout)

	keys := make([]string, 0, len(example))
	for key := range example {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	w := tabwriter.NewWriter(stdout, 0, 0, 2, ' ', 0)
	for _, key := range keys {
		var valueStr string
		switch v := example[key].(type) {
		case []string, map[string]any:
			data, _ := json.Marshal(v)
			valueStr = string(data)
		default:
			valueStr = fmt.Sprintf("%v", v)
		}
		fmt.Fprintf(w, "%s\t%s\n", key, valueStr)
	}
	w.Flush()

	fmt.Fprintln(stdout)
	fmt.Fprintln(stdout, "Create or edit this file to configure aura.")
	fmt.Fprintln(stdout, "All settings are optional and have sensible defaults.")
	return nil
}
