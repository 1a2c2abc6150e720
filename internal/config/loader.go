package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load reads the shell configuration.
// Search order: customPath -> ~/.mmheroes/config.yaml -> ./mmheroes.yaml -> embedded default
func Load(customPath string) (Options, error) {
	var opts Options

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return opts, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &opts); err != nil {
			return opts, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return opts, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("config.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &opts); err == nil {
				return opts, nil
			}
		}
	}

	// Try local config file
	if data, err := os.ReadFile("mmheroes.yaml"); err == nil {
		if err := yaml.Unmarshal(data, &opts); err == nil {
			return opts, nil
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultOptionsYAML, &opts); err != nil {
		return DefaultOptions(), nil // Fallback to hardcoded if embed fails
	}
	return opts, nil
}

// userConfigPath returns the path to a user config file, or empty if
// home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".mmheroes", filename)
}

// ExpandHome replaces a leading ~ with the user's home directory.
func ExpandHome(path string) (string, error) {
	if path == "" || path[0] != '~' {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("config: cannot expand home directory: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}
