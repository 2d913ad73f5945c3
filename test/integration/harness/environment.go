package harness

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// TestEnvironment provides an isolated test environment with its own AURA_HOME.
type TestEnvironment struct {
	AuraHome string
	Service  *FakeService
	// Stdin is fed to the next command when non-empty
	Stdin string

	extraEnv map[string]string
	tb       testing.TB
}

// NewTestEnvironment creates an isolated test environment with a temp AURA_HOME
// and a fresh fake build service.
// The temp directory is automatically cleaned up when the test completes.
func NewTestEnvironment(tb testing.TB) *TestEnvironment {
	tb.Helper()

	return &TestEnvironment{
		AuraHome: tb.TempDir(),
		Service:  NewFakeService(tb),
		extraEnv: make(map[string]string),
		tb:       tb,
	}
}

// Environ returns environment variables configured for test isolation.
// It filters out AURA_* variables and sets:
//   - AURA_HOME to the temp directory
//   - AURA_DEBUG to empty string (disables debug logging)
//   - AURA_API_URL to the fake build service
func (e *TestEnvironment) Environ() []string {
	env := make([]string, 0, len(os.Environ())+3+len(e.extraEnv))

	overrideKeys := make(map[string]bool)
	for k := range e.extraEnv {
		overrideKeys[k] = true
	}

	for _, kv := range os.Environ() {
		key, _, _ := strings.Cut(kv, "=")
		if strings.HasPrefix(key, "AURA_") || overrideKeys[key] {
			continue
		}
		env = append(env, kv)
	}

	env = append(env,
		"AURA_HOME="+e.AuraHome,
		"AURA_DEBUG=",
		"AURA_API_URL="+e.Service.URL(),
	)

	for k, v := range e.extraEnv {
		env = append(env, k+"="+v)
	}

	return env
}

// DBPath returns the path to the test database.
func (e *TestEnvironment) DBPath() string {
	return filepath.Join(e.AuraHome, "workspace.db")
}

// SettingsPath returns the path to the test settings file.
func (e *TestEnvironment) SettingsPath() string {
	return filepath.Join(e.AuraHome, "settings.json")
}

// WriteSettings writes raw settings.json content.
func (e *TestEnvironment) WriteSettings(content string) {
	e.tb.Helper()
	if err := os.WriteFile(e.SettingsPath(), []byte(content), 0644); err != nil {
		e.tb.Fatalf("Failed to write settings: %v", err)
	}
}

// SetEnv sets an additional environment variable for this test environment.
func (e *TestEnvironment) SetEnv(key, value string) {
	if e.extraEnv == nil {
		e.extraEnv = make(map[string]string)
	}
	e.extraEnv[key] = value
}
