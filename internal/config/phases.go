package config

import (
	"strings"

	"github.com/aura-ide/aura/internal/domain"
	"github.com/aura-ide/aura/internal/theme"
)

// PhaseConfig holds the known pipeline phases and their display colors
type PhaseConfig struct {
	Colors []string
	Phases []string
}

// NewPhaseConfig creates a PhaseConfig from comma-separated strings
func NewPhaseConfig(phases, colors string) *PhaseConfig {
	config := &PhaseConfig{
		Phases: parseList(phases),
		Colors: parseList(colors),
	}

	if len(config.Phases) == 0 {
		config.Phases = append([]string(nil), domain.DefaultPhases...)
	}

	if len(config.Colors) == 0 {
		config.Colors = append([]string(nil), theme.DefaultPhaseColors...)
	}

	return config
}

// GetColor returns the color of a phase based on its position.
// Colors cycle when there are more phases than colors.
func (c *PhaseConfig) GetColor(phase string) string {
	for i, p := range c.Phases {
		if p == phase {
			return c.Colors[i%len(c.Colors)]
		}
	}

	if len(c.Colors) > 0 {
		return c.Colors[0]
	}
	return "141"
}

// ToolConfig holds the automation tools offered in the UI
type ToolConfig struct {
	Mutating []string
	Tools    []string
}

// DefaultTools are the automation tools exposed by the build service
var DefaultTools = []string{"auto_doc", "test_oracle", "ci_cd"}

// NewToolConfig creates a ToolConfig from comma-separated strings.
// Every tool is treated as mutating unless mutating is given.
func NewToolConfig(tools, mutating string) *ToolConfig {
	config := &ToolConfig{
		Tools:    parseList(tools),
		Mutating: parseList(mutating),
	}
	if len(config.Tools) == 0 {
		config.Tools = append([]string(nil), DefaultTools...)
	}
	if len(config.Mutating) == 0 {
		config.Mutating = append([]string(nil), config.Tools...)
	}
	return config
}

// IsMutating reports whether invoking tool changes remote files
func (c *ToolConfig) IsMutating(tool string) bool {
	for _, t := range c.Mutating {
		if t == tool {
			return true
		}
	}
	return false
}

// parseList splits a comma-separated string into a list, trimming whitespace
func parseList(input string) []string {
	if input == "" {
		return []string{}
	}

	parts := strings.Split(input, ",")
	result := make([]string, 0, len(parts))

	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}

	return result
}
