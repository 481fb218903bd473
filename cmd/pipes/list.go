package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-pipes/internal/games/pipes"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all levels",
	Long:  `Shows every level of the level directory with its size, stock and best solve.`,
	Run:   runList,
}

func runList(cmd *cobra.Command, _ []string) {
	cfg := loadSettings(cmd)
	all := loadLevels(cfg)

	best := map[int]int{}
	if store := openStore(cfg); store != nil {
		rows, err := store.BestByLevel(pipes.GameID)
		if err != nil {
			logger.Warn("could not read solves", "error", err)
		}
		for _, r := range rows {
			best[r.LevelID] = r.BestMoves
		}
		store.Close()
	}

	// Calculate column widths
	maxNameLen := 4 // "Name" header
	for _, lvl := range all {
		if len(lvl.Name()) > maxNameLen {
			maxNameLen = len(lvl.Name())
		}
	}

	fmt.Println("Levels:")
	fmt.Println()
	fmt.Printf("  %4s  %-*s  %-5s  %-5s  %-4s  %s\n", "ID", maxNameLen, "Name", "Size", "Stock", "Best", "File")
	fmt.Printf("  %4s  %-*s  %-5s  %-5s  %-4s  %s\n", "--", maxNameLen, "----", "----", "-----", "----", "----")

	for _, lvl := range all {
		size := fmt.Sprintf("%dx%d", lvl.Def.Grid.H, lvl.Def.Grid.W)
		bestStr := "-"
		if b, ok := best[lvl.ID()]; ok {
			bestStr = fmt.Sprintf("%d", b)
		}
		fmt.Printf("  %4d  %-*s  %-5s  %-5d  %-4s  %s\n",
			lvl.ID(), maxNameLen, lvl.Name(), size, lvl.Def.Stock.Total(), bestStr, filepath.Base(lvl.FilePath))
	}

	fmt.Println()
	fmt.Println("Run 'pipes play <id>' to play a level.")
}
