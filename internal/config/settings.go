package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// KeyBindingValue supports "a" or ["up", "k"] in JSON
type KeyBindingValue []string

// UnmarshalJSON implements custom unmarshaling for KeyBindingValue
func (kv *KeyBindingValue) UnmarshalJSON(data []byte) error {
	// Try array format first
	var arr []string
	if err := json.Unmarshal(data, &arr); err == nil {
		*kv = arr
		return nil
	}

	// Fall back to single string
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	if str != "" {
		*kv = []string{str}
	}
	return nil
}

// MarshalJSON implements custom marshaling for KeyBindingValue
func (kv KeyBindingValue) MarshalJSON() ([]byte, error) {
	if len(kv) == 1 {
		return json.Marshal(kv[0])
	}
	return json.Marshal([]string(kv))
}

// KeyBindingsConfig holds custom key binding overrides as a map.
// Keys are binding names (e.g., "save", "help"), values are the key sequences.
type KeyBindingsConfig map[string]KeyBindingValue

// Validate checks for configuration errors in key bindings.
// The validNames parameter should come from ui.GetValidKeyNames().
func (k KeyBindingsConfig) Validate(validNames []string) error {
	if k == nil {
		return nil
	}

	// Build set of valid names for quick lookup
	validSet := make(map[string]bool, len(validNames))
	for _, name := range validNames {
		validSet[name] = true
	}

	// Track all keys to detect duplicates
	keyToAction := make(map[string]string)

	// Validate each configured binding
	for name, keys := range k {
		// Check if the key name is valid
		if !validSet[name] {
			return fmt.Errorf("unknown key binding '%s'", name)
		}

		// Check for empty values and duplicates
		if len(keys) == 0 {
			continue // Not configured, will use default
		}

		for _, key := range keys {
			if key == "" {
				return fmt.Errorf("key binding for '%s' contains empty value", name)
			}
			if existing, found := keyToAction[key]; found {
				return fmt.Errorf("key '%s' is assigned to both '%s' and '%s'", key, existing, name)
			}
			keyToAction[key] = name
		}
	}

	return nil
}

// Defaults shared by the CLI flags and the settings file
const (
	DefaultAPIURL                = "http://localhost:8000"
	DefaultMarkdownStyle         = "dark"
	DefaultPollIntervalMs        = 2000
	DefaultRequestTimeoutSeconds = 30
	DefaultRootLabel             = "generated_project"
)

// Settings represents the structure of ~/.aura/settings.json
type Settings struct {
	APIURL                string            `json:"api_url,omitempty"`
	Debug                 *bool             `json:"debug,omitempty"`
	ErrorClearDelay       *int              `json:"error_clear_delay,omitempty"`
	HiddenPatterns        StringArray       `json:"hidden_patterns,omitempty"`
	Keys                  KeyBindingsConfig `json:"keys,omitempty"`
	MarkdownStyle         string            `json:"markdown_style,omitempty"`
	MaxLogFiles           *int              `json:"max_log_files,omitempty"`
	ModelID               string            `json:"model_id,omitempty"`
	MutatingTools         StringArray       `json:"mutating_tools,omitempty"`
	PersistExpansion      *bool             `json:"persist_expansion,omitempty"`
	PhaseColors           StringArray       `json:"phase_colors,omitempty"`
	Phases                StringArray       `json:"phases,omitempty"`
	PollIntervalMs        *int              `json:"poll_interval_ms,omitempty"`
	RequestTimeoutSeconds *int              `json:"request_timeout_seconds,omitempty"`
	RootLabel             string            `json:"root_label,omitempty"`
	SSHHost               string            `json:"ssh_host,omitempty"`
	SSHPort               string            `json:"ssh_port,omitempty"`
	Tools                 StringArray       `json:"tools,omitempty"`
}

// StringArray supports both JSON arrays and comma-separated strings
type StringArray []string

// UnmarshalJSON implements custom unmarshaling for StringArray
func (sa *StringArray) UnmarshalJSON(data []byte) error {
	// Try array format first
	var arr []string
	if err := json.Unmarshal(data, &arr); err == nil {
		*sa = arr
		return nil
	}

	// Fall back to comma-separated string
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	*sa = parseList(str)
	return nil
}

// LoadSettings loads settings from $AURA_HOME/settings.json (or ~/.aura/settings.json if not set)
// Returns empty Settings if file doesn't exist (not an error)
func LoadSettings() (*Settings, error) {
	path := GetSettingsPath()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Settings{}, nil // Not an error, use defaults
		}
		return nil, fmt.Errorf("failed to read settings file: %w", err)
	}

	var settings Settings
	if err := json.Unmarshal(data, &settings); err != nil {
		return nil, fmt.Errorf("invalid settings.json: %w", err)
	}

	if settings.APIURL != "" {
		settings.APIURL = strings.TrimRight(settings.APIURL, "/")
	}

	return &settings, nil
}

// SaveSettings saves settings to $AURA_HOME/settings.json
func SaveSettings(settings *Settings) error {
	path := GetSettingsPath()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create settings directory: %w", err)
	}

	data, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write settings file: %w", err)
	}

	return nil
}
