package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-pipes/internal/games/pipes/core"
)

var showCmd = &cobra.Command{
	Use:   "show <level>",
	Short: "Print a level as text",
	Long: `Print the starting board of a level with its stock, using one letter
per pipe kind and the rotation digit.

Examples:
  pipes show 1
  pipes show 12 --levels ./my-levels`,
	Args: cobra.ExactArgs(1),
	Run:  runShow,
}

func runShow(cmd *cobra.Command, args []string) {
	cfg := loadSettings(cmd)
	lvl := findLevel(cfg, args[0])
	board := core.NewBoard(lvl.Def)

	fmt.Printf("Level %d: %s (%dx%d)\n\n", lvl.ID(), lvl.Name(), board.Height(), board.Width())
	fmt.Println(core.RenderASCII(board))

	stock := board.Stock()
	fmt.Printf("Stock (%d):", stock.Total())
	for _, k := range stock.Keys() {
		fmt.Printf(" %c%dx%d", core.KindCode(k.Kind), k.Rotation, stock.Quantity(k.Kind, k.Rotation))
	}
	fmt.Println()
}
