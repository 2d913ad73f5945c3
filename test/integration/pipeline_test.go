package integration_test

import (
	"testing"

	"github.com/aura-ide/aura/test/integration/harness"
)

func TestPipeline(t *testing.T) {
	tests := []struct {
		name         string
		setup        func(t *testing.T, env *harness.TestEnvironment)
		args         []string
		wantExitCode int
		validate     func(t *testing.T, env *harness.TestEnvironment, result harness.CommandResult)
	}{
		{
			name: "status json orders phases",
			setup: func(t *testing.T, env *harness.TestEnvironment) {
				env.Service.SetRunning(true)
				env.Service.SetPhases(map[string]string{"Developer": "running", "Vision": "complete"})
			},
			args:         []string{"status", "--format", "json"},
			wantExitCode: 0,
			validate: func(t *testing.T, env *harness.TestEnvironment, result harness.CommandResult) {
				var status struct {
					IsRunning bool `json:"is_running"`
					Phases    []struct {
						Name  string `json:"name"`
						State string `json:"state"`
					} `json:"phases"`
				}
				harness.AssertValidJSON(t, result, &status)
				if !status.IsRunning {
					t.Error("expected running pipeline")
				}
				if len(status.Phases) != 2 || status.Phases[0].Name != "Vision" || status.Phases[1].State != "running" {
					t.Errorf("unexpected phases %+v", status.Phases)
				}
			},
		},
		{
			name:         "watch returns when idle",
			args:         []string{"status", "--watch"},
			wantExitCode: 0,
			validate: func(t *testing.T, env *harness.TestEnvironment, result harness.CommandResult) {
				harness.AssertStdoutContains(t, result, "Status: Idle (idle, 0%)")
			},
		},
		{
			name:         "run starts pipeline and records it",
			args:         []string{"run", "--desc", "todo app", "--reqs", "dark mode"},
			wantExitCode: 0,
			validate: func(t *testing.T, env *harness.TestEnvironment, result harness.CommandResult) {
				harness.AssertStdoutContains(t, result, "🚀 INITIATING MULTI-AGENT ORCHESTRATION...")
				runs := env.Service.Runs()
				if len(runs) != 1 || runs[0]["user_desc"] != "todo app" || runs[0]["voice_reqs"] != "dark mode" {
					t.Errorf("unexpected run requests %v", runs)
				}

				history := harness.RunCommand(t, env, "runs", "--format", "json")
				harness.AssertSuccess(t, history)
				var records []map[string]any
				harness.AssertValidJSON(t, history, &records)
				if len(records) != 1 || records[0]["accepted"] != true {
					t.Errorf("unexpected run history %v", records)
				}
			},
		},
		{
			name: "run refused while pipeline is running",
			setup: func(t *testing.T, env *harness.TestEnvironment) {
				env.Service.SetRunning(true)
			},
			args:         []string{"run", "--desc", "second"},
			wantExitCode: 1,
			validate: func(t *testing.T, env *harness.TestEnvironment, result harness.CommandResult) {
				harness.AssertStderrContains(t, result, "pipeline is already running")
				if len(env.Service.Runs()) != 0 {
					t.Error("expected no run request")
				}
			},
		},
		{
			name: "snapshot yaml",
			setup: func(t *testing.T, env *harness.TestEnvironment) {
				env.Service.SetFile("main.py", "")
			},
			args:         []string{"snapshot", "--format", "yaml"},
			wantExitCode: 0,
			validate: func(t *testing.T, env *harness.TestEnvironment, result harness.CommandResult) {
				harness.AssertStdoutContains(t, result, "- main.py")
				harness.AssertStdoutContains(t, result, "status_label: Idle")
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

			harness.AssertExitCode(t, result, tt.wantExitCode)

			if tt.validate != nil {
				tt.validate(t, env, result)
			}
		})
	}
}
