package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-pipes/internal/games/pipes"
	"github.com/vovakirdan/tui-pipes/internal/platform/tui"
	"github.com/vovakirdan/tui-pipes/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with the level picker",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a level, Tab for the
scoreboard. Leaving a solved or paused level with B returns to the menu.

Examples:
  pipes menu
  pipes menu --theme pastel
  pipes menu --db ./solves.db`,
	Run: runMenu,
}

func runMenu(cmd *cobra.Command, _ []string) {
	cfg := loadSettings(cmd)
	rc := runtimeConfig(cfg)

	store := openStore(cfg)
	if store != nil {
		defer store.Close()
	}

	for {
		selection, err := tui.RunLevelSelector(store, rc)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return
		}
		if selection == nil {
			return
		}

		if selection.Scoreboard {
			goBack, sbErr := tui.RunScoreboard(store, rc)
			if sbErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", sbErr)
			}
			if goBack {
				continue
			}
			return
		}

		game, err := registry.Create(pipes.GameID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
			return
		}

		gameCfg := rc
		gameCfg.Level = selection.Level
		if err := tui.Run(game, store, gameCfg); err != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		}
	}
}
