package config

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aura-ide/aura/internal/domain"
)

func TestNewPhaseConfig_Defaults(t *testing.T) {
	cfg := NewPhaseConfig("", "")

	assert.Equal(t, domain.DefaultPhases, cfg.Phases)
	assert.NotEmpty(t, cfg.Colors)
}

func TestPhaseConfig_GetColor(t *testing.T) {
	cfg := NewPhaseConfig("A,B,C", "1,2")

	assert.Equal(t, "1", cfg.GetColor("A"))
	assert.Equal(t, "2", cfg.GetColor("B"))
	assert.Equal(t, "1", cfg.GetColor("C"), "colors cycle")
	assert.Equal(t, "1", cfg.GetColor("unknown"))
}

func TestToolConfig_IsMutating(t *testing.T) {
	tests := []struct {
		name     string
		tools    string
		mutating string
		tool     string
		expected bool
	}{
		{"defaults mutate", "", "", "auto_doc", true},
		{"unknown tool", "", "", "lint", false},
		{"explicit subset", "auto_doc,ci_cd", "ci_cd", "auto_doc", false},
		{"explicit subset member", "auto_doc,ci_cd", "ci_cd", "ci_cd", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewToolConfig(tt.tools, tt.mutating)
			assert.Equal(t, tt.expected, cfg.IsMutating(tt.tool))
		})
	}
}

func TestExpandPath(t *testing.T) {
	t.Setenv("HOME", "/home/tester")

	assert.Equal(t, "/home/tester", ExpandPath("~"))
	assert.Equal(t, "/home/tester/.aura", ExpandPath("~/.aura"))
	assert.Equal(t, "/abs", ExpandPath("/abs"))
}
