package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-pipes/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration after the config file and flags are applied,
as YAML. The output can be saved as ~/.tui-pipes/configs/pipes.yaml.

Examples:
  pipes config
  pipes config --theme neon > ~/.tui-pipes/configs/pipes.yaml`,
	Run: runConfig,
}

func runConfig(cmd *cobra.Command, _ []string) {
	cfg := loadSettings(cmd)
	data, err := config.Marshal(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	os.Stdout.Write(data)
}
