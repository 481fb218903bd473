// pipes is a pipe-connection puzzle for the terminal.
//
// Usage:
//
//	pipes play [level]     - Play, starting at a level
//	pipes menu             - Level picker and scoreboard
//	pipes list             - List levels
//	pipes show <level>     - Print a level as text
//	pipes scores [level]   - Show best solves
//	pipes serve            - Start SSH server for remote play
//	pipes config           - Print the effective configuration
//
// Global flags:
//
//	--config <path>  - Config file (default: search ~/.tui-pipes/configs and ./configs)
//	--levels <dir>   - Level directory (default: built-in levels)
//	--db <path>      - Solves database (default: ~/.tui-pipes/solves.db)
//	--fps <rate>     - Tick rate of the UI
//	--theme <name>   - Color theme
//	--verbose        - Debug logging
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-pipes/internal/games/pipes"
)

var (
	// Global flags
	flagConfig  string
	flagLevels  string
	flagDBPath  string
	flagFPS     int
	flagTheme   string
	flagVerbose bool
)

var logger = log.NewWithOptions(os.Stderr, log.Options{Prefix: "pipes"})

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "pipes",
	Short: "Pipes - connect the colored sources in your terminal",
	Long: `Pipes is a terminal puzzle: place pipes from the stock so that every
colored source is connected to the sources of the same color, with no open
ends and no mixed networks.

Available commands:
  play     - Play, optionally starting at a given level
  menu     - Pick levels and browse the scoreboard
  list     - Show all levels
  show     - Print a level as text
  scores   - View best solves
  serve    - Start SSH server for remote play
  config   - Print the effective configuration

Examples:
  pipes play
  pipes play 3
  pipes menu --theme neon
  pipes list --levels ./my-levels
  pipes serve --ssh :2222`,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		if flagVerbose {
			logger.SetLevel(log.DebugLevel)
			logger.SetReportTimestamp(true)
		}
		log.SetDefault(logger)
		pipes.SetLogger(logger)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to pipes.yaml")
	rootCmd.PersistentFlags().StringVar(&flagLevels, "levels", "", "Directory of level files (empty = built-in levels)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to solves database")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().StringVar(&flagTheme, "theme", "", "Color theme: default, neon, pastel, monochrome")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}
