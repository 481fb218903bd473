package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-pipes/internal/games/pipes"
	"github.com/vovakirdan/tui-pipes/internal/platform/tui"
	"github.com/vovakirdan/tui-pipes/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play [level]",
	Short: "Play the puzzle",
	Long: `Start playing at the given level, or at the configured start level.

Controls:
  Arrows/WASD/hjkl - Move cursor
  Enter/Space      - Pick up, put down or drop the selected stock pipe
  X/Backspace      - Return the pipe under the cursor to the stock
  Tab              - Switch between board and stock
  U/Y              - Undo/Redo
  R                - Reset level
  N                - Next level (once solved)
  P/Esc            - Pause
  Ctrl+S           - Save screenshot
  Q/Ctrl+C         - Quit

Examples:
  pipes play
  pipes play 4
  pipes play --levels ./my-levels 12`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func runPlay(cmd *cobra.Command, args []string) {
	cfg := loadSettings(cmd)
	rc := runtimeConfig(cfg)
	if len(args) == 1 {
		rc.Level = findLevel(cfg, args[0]).ID()
	}

	game, err := registry.Create(pipes.GameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	store := openStore(cfg)
	runErr := tui.Run(game, store, rc)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
