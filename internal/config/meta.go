package config

import (
	"reflect"
	"strings"
)

// GetSettingsExample uses reflection to generate example settings
// This automatically stays in sync when new fields are added to Settings
func GetSettingsExample() map[string]any {
	var s Settings
	t := reflect.TypeOf(s)
	example := make(map[string]any)

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		jsonTag := field.Tag.Get("json")
		if jsonTag == "" {
			continue
		}

		// Extract the JSON field name (before comma)
		jsonName := strings.Split(jsonTag, ",")[0]

		// Generate example value based on field type
		example[jsonName] = generateExampleValue(field.Type, jsonName)
	}

	return example
}

// generateExampleValue creates appropriate example values based on type and field name
func generateExampleValue(t reflect.Type, fieldName string) any {
	if t.Kind() == reflect.Ptr {
		switch t.Elem().Kind() {
		case reflect.Bool:
			return fieldName == "debug" || fieldName == "persist_expansion"
		case reflect.Int:
			switch fieldName {
			case "error_clear_delay":
				return 10
			case "max_log_files":
				return 1000
			case "poll_interval_ms":
				return DefaultPollIntervalMs
			case "request_timeout_seconds":
				return DefaultRequestTimeoutSeconds
			}
			return 10
		}
	}

	if t.Name() == "KeyBindingsConfig" {
		return map[string]any{
			"save": "ctrl+s",
			"help": []string{"?", "f1"},
		}
	}

	switch t.Kind() {
	case reflect.String:
		switch fieldName {
		case "api_url":
			return DefaultAPIURL
		case "markdown_style":
			return DefaultMarkdownStyle
		case "model_id":
			return "gemini-2.0-flash"
		case "root_label":
			return DefaultRootLabel
		case "ssh_host":
			return "localhost"
		case "ssh_port":
			return "23234"
		default:
			return "example"
		}
	case reflect.Slice:
		if t.Elem().Kind() == reflect.String {
			switch fieldName {
			case "hidden_patterns":
				return []string{"__pycache__/", "*.pyc"}
			case "mutating_tools", "tools":
				return []string{"auto_doc", "test_oracle", "ci_cd"}
			case "phase_colors":
				return []string{"141", "33", "214"}
			case "phases":
				return []string{"Vision", "Architect", "Developer"}
			default:
				return []string{"example1", "example2"}
			}
		}
	}

	return nil
}
