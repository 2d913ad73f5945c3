package integration_test

import (
	"encoding/json"
	"testing"

	"github.com/aura-ide/aura/test/integration/harness"
)

func TestSettingsKeysList(t *testing.T) {
	tests := []struct {
		name         string
		setup        func(t *testing.T, env *harness.TestEnvironment)
		args         []string
		wantExitCode int
		validate     func(t *testing.T, env *harness.TestEnvironment, result harness.CommandResult)
	}{
		{
			name:         "list shows defaults when no settings",
			args:         []string{"settings", "keys", "list"},
			wantExitCode: 0,
			validate: func(t *testing.T, env *harness.TestEnvironment, result harness.CommandResult) {
				harness.AssertStdoutContains(t, result, "save")
				harness.AssertStdoutContains(t, result, "ctrl+s") // default key
				harness.AssertStdoutContains(t, result, "command_palette")
				harness.AssertStdoutContains(t, result, "P, ctrl+p") // default keys
			},
		},
		{
			name: "list shows custom key when configured",
			setup: func(t *testing.T, env *harness.TestEnvironment) {
				result := harness.RunCommand(t, env, "settings", "keys", "set", "save", "A")
				harness.AssertSuccess(t, result)
			},
			args:         []string{"settings", "keys", "list"},
			wantExitCode: 0,
			validate: func(t *testing.T, env *harness.TestEnvironment, result harness.CommandResult) {
				harness.AssertStdoutContains(t, result, "save")
				harness.AssertStdoutContains(t, result, "A")
			},
		},
		{
			name:         "list JSON format",
			args:         []string{"settings", "keys", "list", "--format", "json"},
			wantExitCode: 0,
			validate: func(t *testing.T, env *harness.TestEnvironment, result harness.CommandResult) {
				var keys map[string]any
				harness.AssertValidJSON(t, result, &keys)
				// Verify save key has default
				if saveData, ok := keys["save"].(map[string]any); ok {
					if _, hasDefault := saveData["default"]; !hasDefault {
						t.Error("Expected 'save' to have 'default' field")
					}
				} else {
					t.Error("Expected 'save' key in output")
				}
			},
		},
		{
			name: "list JSON format with custom keys",
			setup: func(t *testing.T, env *harness.TestEnvironment) {
				result := harness.RunCommand(t, env, "settings", "keys", "set", "help", "H")
				harness.AssertSuccess(t, result)
			},
			args:         []string{"settings", "keys", "list", "--format", "json"},
			wantExitCode: 0,
			validate: func(t *testing.T, env *harness.TestEnvironment, result harness.CommandResult) {
				var keys map[string]any
				harness.AssertValidJSON(t, result, &keys)
				// Verify help key has custom binding
				if helpData, ok := keys["help"].(map[string]any); ok {
					if custom, hasCustom := helpData["custom"]; hasCustom {
						if customArr, ok := custom.([]any); ok {
							if len(customArr) != 1 || customArr[0] != "H" {
								t.Errorf("Expected custom to be ['H'], got %v", customArr)
							}
						}
					} else {
						t.Error("Expected 'help' to have 'custom' field")
					}
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := harness.NewTestEnvironment(t)

			if tt.setup != nil {
				tt.setup(t, env)
			}

			result := harness.RunCommand(t, env, tt.args...)

			if tt.wantExitCode == 0 {
				harness.AssertSuccess(t, result)
			} else {
				harness.AssertFailure(t, result)
			}

			if tt.validate != nil {
				tt.validate(t, env, result)
			}
		})
	}
}

func TestSettingsKeysSet(t *testing.T) {
	tests := []struct {
		name         string
		setup        func(t *testing.T, env *harness.TestEnvironment)
		args         []string
		wantExitCode int
		validate     func(t *testing.T, env *harness.TestEnvironment, result harness.CommandResult)
	}{
		{
			name:         "set valid key",
			args:         []string{"settings", "keys", "set", "save", "A"},
			wantExitCode: 0,
			validate: func(t *testing.T, env *harness.TestEnvironment, result harness.CommandResult) {
				harness.AssertStdoutContains(t, result, "Set 'save' to: A")
				// Verify settings file was created/updated
				listResult := harness.RunCommand(t, env, "settings", "keys", "list")
				harness.AssertStdoutContains(t, listResult, "A")
			},
		},
		{
			name:         "set invalid key name",
			args:         []string{"settings", "keys", "set", "invalid_key", "a"},
			wantExitCode: 1,
			validate: func(t *testing.T, env *harness.TestEnvironment, result harness.CommandResult) {
				harness.AssertStderrContains(t, result, "unknown key")
			},
		},
		{
			name: "set conflicting key fails",
			setup: func(t *testing.T, env *harness.TestEnvironment) {
				result := harness.RunCommand(t, env, "settings", "keys", "set", "save", "z")
				harness.AssertSuccess(t, result)
			},
			args:         []string{"settings", "keys", "set", "refresh", "z"},
			wantExitCode: 1,
			validate: func(t *testing.T, env *harness.TestEnvironment, result harness.CommandResult) {
				harness.AssertStderrContains(t, result, "conflict")
			},
		},
		{
			name:         "set multiple keys with comma",
			args:         []string{"settings", "keys", "set", "up", "up,k,w"},
			wantExitCode: 0,
			validate: func(t *testing.T, env *harness.TestEnvironment, result harness.CommandResult) {
				harness.AssertStdoutContains(t, result, "Set 'up' to: up, k, w")
				// Verify via list command
				listResult := harness.RunCommand(t, env, "settings", "keys", "list", "--format", "json")
				var keys map[string]any
				harness.AssertValidJSON(t, listResult, &keys)
				if upData, ok := keys["up"].(map[string]any); ok {
					if custom, ok := upData["custom"].([]any); ok {
						if len(custom) != 3 {
							t.Errorf("Expected 3 custom keys, got %d", len(custom))
						}
					}
				}
			},
		},
		{
			name:         "set empty value fails",
			args:         []string{"settings", "keys", "set", "save", ""},
			wantExitCode: 1,
			validate: func(t *testing.T, env *harness.TestEnvironment, result harness.CommandResult) {
				harness.AssertStderrContains(t, result, "cannot be empty")
			},
		},
		{
			name: "override existing custom key",
			setup: func(t *testing.T, env *harness.TestEnvironment) {
				result := harness.RunCommand(t, env, "settings", "keys", "set", "save", "A")
				harness.AssertSuccess(t, result)
			},
			args:         []string{"settings", "keys", "set", "save", "Z"},
			wantExitCode: 0,
			validate: func(t *testing.T, env *harness.TestEnvironment, result harness.CommandResult) {
				harness.AssertStdoutContains(t, result, "Set 'save' to: Z")
				// Verify the new value
				listResult := harness.RunCommand(t, env, "settings", "keys", "list", "--format", "json")
				var keys map[string]any
				err := json.Unmarshal([]byte(listResult.Stdout), &keys)
				if err != nil {
					t.Fatalf("Failed to parse JSON: %v", err)
				}
				if saveData, ok := keys["save"].(map[string]any); ok {
					if custom, ok := saveData["custom"].([]any); ok {
						if len(custom) != 1 || custom[0] != "Z" {
							t.Errorf("Expected custom to be ['Z'], got %v", custom)
						}
					}
				}
			},
		},
		{
			name: "reset removes custom key",
			setup: func(t *testing.T, env *harness.TestEnvironment) {
				result := harness.RunCommand(t, env, "settings", "keys", "set", "save", "A")
				harness.AssertSuccess(t, result)
			},
			args:         []string{"settings", "keys", "reset", "save"},
			wantExitCode: 0,
			validate: func(t *testing.T, env *harness.TestEnvironment, result harness.CommandResult) {
				harness.AssertStdoutContains(t, result, "Reset 'save' to: ctrl+s")
				listResult := harness.RunCommand(t, env, "settings", "keys", "list", "--format", "json")
				var keys map[string]map[string]any
				if err := json.Unmarshal([]byte(listResult.Stdout), &keys); err != nil {
					t.Fatalf("Failed to parse JSON: %v", err)
				}
				if _, hasCustom := keys["save"]["custom"]; hasCustom {
					t.Error("Expected 'save' to have no custom binding after reset")
				}
			},
		},
		{
			name:         "list YAML includes help text",
			args:         []string{"settings", "keys", "list", "--format", "yaml"},
			wantExitCode: 0,
			validate: func(t *testing.T, env *harness.TestEnvironment, result harness.CommandResult) {
				harness.AssertStdoutContains(t, result, "save:")
				harness.AssertStdoutContains(t, result, "help:")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := harness.NewTestEnvironment(t)

			if tt.setup != nil {
				tt.setup(t, env)
			}

			result := harness.RunCommand(t, env, tt.args...)

			if tt.wantExitCode == 0 {
				harness.AssertSuccess(t, result)
			} else {
				harness.AssertFailure(t, result)
			}

			if tt.validate != nil {
				tt.validate(t, env, result)
			}
		})
	}
}
