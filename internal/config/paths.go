package config

import (
	"os"
	"path/filepath"
)

// GetAuraHome returns AURA_HOME or ~/.aura
func GetAuraHome() string {
	auraHome := os.Getenv("AURA_HOME")
	if auraHome == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return ".aura"
		}
		return filepath.Join(homeDir, ".aura")
	}
	return ExpandPath(auraHome)
}

// GetDBPath returns $AURA_HOME/workspace.db
func GetDBPath() string {
	return filepath.Join(GetAuraHome(), "workspace.db")
}

// GetSettingsPath returns $AURA_HOME/settings.json
func GetSettingsPath() string {
	return filepath.Join(GetAuraHome(), "settings.json")
}

// GetSSHDir returns $AURA_HOME/ssh
func GetSSHDir() string {
	return filepath.Join(GetAuraHome(), "ssh")
}

// ExpandPath expands ~ to home directory
func ExpandPath(path string) string {
	if len(path) > 0 && path[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err == nil {
			if len(path) == 1 {
				return homeDir
			}
			return filepath.Join(homeDir, path[1:])
		}
	}
	return path
}
