package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-pipes/internal/config"
	"github.com/vovakirdan/tui-pipes/internal/core"
	"github.com/vovakirdan/tui-pipes/internal/games/pipes/levels"
	"github.com/vovakirdan/tui-pipes/internal/platform/tui"
	"github.com/vovakirdan/tui-pipes/internal/storage"
)

// loadSettings reads the config file and applies the global flags the user
// set explicitly. It exits on invalid configuration.
func loadSettings(cmd *cobra.Command) config.PipesConfig {
	cfg, err := config.LoadPipes(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	flags := cmd.Flags()
	if flags.Changed("levels") {
		cfg.Levels.Dir = flagLevels
	}
	if flags.Changed("db") {
		cfg.Storage.DBPath = flagDBPath
	}
	if flags.Changed("fps") {
		cfg.Play.TickRate = flagFPS
	}
	if flags.Changed("theme") {
		cfg.Display.Theme = flagTheme
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	theme, _ := tui.ThemeByName(cfg.Display.Theme)
	tui.SetTheme(theme)

	logger.Debug("configuration loaded",
		"levels", cfg.Levels.Dir,
		"db", cfg.Storage.DBPath,
		"theme", cfg.Display.Theme,
	)
	return cfg
}

// runtimeConfig builds the game configuration for the current terminal.
func runtimeConfig(cfg config.PipesConfig) core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return core.RuntimeConfig{
		ScreenW:   width,
		ScreenH:   height,
		TickRate:  cfg.Play.TickRate,
		LevelsDir: cfg.Levels.Dir,
		Level:     cfg.Play.StartLevel,
		CellWidth: cfg.Display.CellWidth,
	}
}

// openStore opens the solves database. Play works without one, so a
// failure is only a warning.
func openStore(cfg config.PipesConfig) *storage.Store {
	store, err := storage.Open(cfg.Storage.DBPath)
	if err != nil {
		logger.Warn("could not open solves database", "path", cfg.Storage.DBPath, "error", err)
		return nil
	}
	return store
}

// loadLevels loads every level or exits.
func loadLevels(cfg config.PipesConfig) []levels.Level {
	all, err := levels.NewLoader(cfg.Levels.Dir).WithLogger(logger).LoadAll()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading levels: %v\n", err)
		os.Exit(1)
	}
	if len(all) == 0 {
		fmt.Fprintln(os.Stderr, "Error: no levels found.")
		os.Exit(1)
	}
	return all
}

// findLevel returns the level with the given ID argument or exits.
func findLevel(cfg config.PipesConfig, arg string) levels.Level {
	var id int
	if _, err := fmt.Sscan(arg, &id); err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid level %q\n", arg)
		os.Exit(1)
	}
	lvl, err := levels.NewLoader(cfg.Levels.Dir).WithLogger(logger).LoadByID(id)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintln(os.Stderr, "Run 'pipes list' to see available levels.")
		os.Exit(1)
	}
	return lvl
}
