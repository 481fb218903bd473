package config

import (
	_ "embed"
)

//go:embed defaults/pipes.yaml
var defaultPipesYAML []byte

// DefaultPipesConfig returns the hardcoded configuration used when no YAML
// source is available.
func DefaultPipesConfig() PipesConfig {
	return PipesConfig{
		Display: DisplayConfig{
			Theme:     "default",
			CellWidth: 3,
		},
		Play: PlayConfig{
			TickRate: 30,
		},
		Storage: StorageConfig{
			DBPath: "~/.tui-pipes/solves.db",
		},
		Server: ServerConfig{
			Address:            ":23234",
			IdleTimeoutMinutes: 30,
		},
	}
}
