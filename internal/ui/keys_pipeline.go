package ui

import (
	"github.com/aura-ide/aura/internal/config"
)

// PipelineKeys defines key bindings for the pipeline and terminal
type PipelineKeys struct {
	ClearTerminal   KeyWithTip
	RunCommand      KeyWithTip
	RunFile         KeyWithTip
	RunPipeline     KeyWithTip
	RunTool         KeyWithTip
	ToggleArtifacts KeyWithTip
}

// newPipelineKeys creates pipeline key bindings
func newPipelineKeys(defaults map[string][]string, customKeys config.KeyBindingsConfig) PipelineKeys {
	return PipelineKeys{
		ClearTerminal:   buildBinding("clear_terminal", defaults, customKeys),
		RunCommand:      buildBinding("run_command", defaults, customKeys),
		RunFile:         buildBinding("run_file", defaults, customKeys),
		RunPipeline:     buildBinding("run_pipeline", defaults, customKeys),
		RunTool:         buildBinding("run_tool", defaults, customKeys),
		ToggleArtifacts: buildBinding("toggle_artifacts", defaults, customKeys),
	}
}
