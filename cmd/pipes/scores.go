package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-pipes/internal/games/pipes"
	"github.com/vovakirdan/tui-pipes/internal/storage"
)

var flagClearScores bool

var scoresCmd = &cobra.Command{
	Use:   "scores [level]",
	Short: "Show best solves",
	Long: `Without a level, shows the best solve of every solved level.
With a level, shows its top 10 solves.

Examples:
  pipes scores
  pipes scores 3
  pipes scores --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagClearScores, "clear", false, "Delete every recorded solve")
}

func runScores(cmd *cobra.Command, args []string) {
	cfg := loadSettings(cmd)

	store := openStore(cfg)
	if store == nil {
		os.Exit(1)
	}
	defer store.Close()

	if flagClearScores {
		if err := store.ClearSolves(pipes.GameID); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing solves: %v\n", err)
			return
		}
		fmt.Println("All solves deleted.")
		return
	}

	if len(args) == 0 {
		printBestByLevel(store)
		return
	}

	lvl := findLevel(cfg, args[0])
	solves, err := store.TopSolves(pipes.GameID, lvl.ID(), 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving solves: %v\n", err)
		return
	}

	fmt.Printf("Best Solves - Level %d: %s\n", lvl.ID(), lvl.Name())
	fmt.Println()

	if len(solves) == 0 {
		fmt.Println("No solves recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'pipes play %d' to set the first record!\n", lvl.ID())
		return
	}

	fmt.Printf("  %-4s  %-5s  %-12s  %s\n", "Rank", "Moves", "Player", "Date")
	fmt.Printf("  %-4s  %-5s  %-12s  %s\n", "----", "-----", "------", "----")
	for i, s := range solves {
		fmt.Printf("  %-4d  %-5d  %-12s  %s\n", i+1, s.Moves, s.Player, s.CreatedAt.Format("2006-01-02 15:04"))
	}
}

// printBestByLevel prints one line per solved level.
func printBestByLevel(store *storage.Store) {
	rows, err := store.BestByLevel(pipes.GameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving solves: %v\n", err)
		return
	}

	fmt.Println("Best Solves")
	fmt.Println()

	if len(rows) == 0 {
		fmt.Println("No solves recorded yet.")
		fmt.Println()
		fmt.Println("Play 'pipes play' to set the first record!")
		return
	}

	fmt.Printf("  %-5s  %-5s  %-6s  %s\n", "Level", "Best", "Solves", "Last")
	fmt.Printf("  %-5s  %-5s  %-6s  %s\n", "-----", "----", "------", "----")
	for _, r := range rows {
		fmt.Printf("  %-5d  %-5d  %-6d  %s\n", r.LevelID, r.BestMoves, r.Solves, r.LastSolve.Format("2006-01-02 15:04"))
	}
}
