package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Source names where a loaded configuration came from.
const (
	SourceEmbedded = "embedded"
	SourceBuiltin  = "builtin"
)

// Load loads the editor configuration.
// Search order: customPath -> ~/.sketchpad/config.yaml -> ./configs/sketchpad.yaml -> embedded default
func Load(customPath string) (EditorConfig, error) {
	cfg, _, err := Resolve(customPath)
	return cfg, err
}

// Resolve is Load that also reports which file the configuration came from.
// Keys missing from a file keep their default values.
func Resolve(customPath string) (EditorConfig, string, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return EditorConfig{}, "", fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := parse(data)
		if err != nil {
			return EditorConfig{}, "", fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return EditorConfig{}, "", fmt.Errorf("config %s: %w", customPath, err)
		}
		return cfg, customPath, nil
	}

	// Try user config directory, then local configs directory
	for _, path := range []string{userConfigPath("config.yaml"), filepath.Join("configs", "sketchpad.yaml")} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if cfg, err := parse(data); err == nil && cfg.Validate() == nil {
			return cfg, path, nil
		}
	}

	// Use embedded default YAML
	cfg, err := parse(defaultEditorYAML)
	if err != nil || cfg.Validate() != nil {
		return DefaultEditorConfig(), SourceBuiltin, nil // Fallback to hardcoded if embed fails
	}
	return cfg, SourceEmbedded, nil
}

func parse(data []byte) (EditorConfig, error) {
	cfg := DefaultEditorConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return EditorConfig{}, err
	}
	return cfg, nil
}

// Marshal renders the configuration as YAML.
func Marshal(cfg EditorConfig) ([]byte, error) {
	return yaml.Marshal(cfg)
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".sketchpad", filename)
}
