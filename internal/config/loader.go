package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadHexMerge loads Hex Merge configuration.
// Search order: customPath -> ~/.hexthree/configs/hexmerge.yaml -> ./configs/hexmerge.yaml -> embedded default
//
// Keys missing from a file keep their default values.
func LoadHexMerge(customPath string) (HexMergeConfig, error) {
	cfg := DefaultHexMergeConfig()

	// A custom path must exist and parse.
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	for _, path := range []string{userConfigPath("hexmerge.yaml"), filepath.Join("configs", "hexmerge.yaml")} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		loaded := cfg
		if err := yaml.Unmarshal(data, &loaded); err == nil {
			return loaded, nil
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultHexMergeYAML, &cfg); err != nil {
		return DefaultHexMergeConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".hexthree", "configs", filename)
}
