package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ConfigFile is the file name searched for in the config directories.
const ConfigFile = "pipes.yaml"

// LoadPipes loads the puzzle configuration.
// Search order: customPath -> ~/.tui-pipes/configs/pipes.yaml -> ./configs/pipes.yaml -> embedded default.
// Keys missing from a file keep their default values. A custom path that
// cannot be read or parsed is an error; the other locations are skipped.
func LoadPipes(customPath string) (PipesConfig, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return PipesConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := parse(data)
		if err != nil {
			return PipesConfig{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	if userCfgPath := userConfigPath(ConfigFile); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	if data, err := os.ReadFile(filepath.Join("configs", ConfigFile)); err == nil {
		if cfg, err := parse(data); err == nil {
			return cfg, nil
		}
	}

	cfg, err := parse(defaultPipesYAML)
	if err != nil {
		return DefaultPipesConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// parse decodes YAML over the defaults and validates the result.
func parse(data []byte) (PipesConfig, error) {
	cfg := DefaultPipesConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return PipesConfig{}, err
	}
	if err := cfg.Validate(); err != nil {
		return PipesConfig{}, err
	}
	return cfg, nil
}

// Marshal renders a configuration as YAML.
func Marshal(cfg PipesConfig) ([]byte, error) {
	return yaml.Marshal(cfg)
}

// userConfigPath returns the path to a file in ~/.tui-pipes/configs/.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".tui-pipes", "configs", filename)
}
