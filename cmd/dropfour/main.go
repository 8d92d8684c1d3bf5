// dropfour is a two-player hot-seat Connect Four game for the terminal.
//
// Usage:
//
//	dropfour                 - Start a game
//	dropfour play            - Same as above
//	dropfour stats           - Show round history and outcome tallies
//	dropfour serve           - Start SSH server for remote play
//
// Global flags:
//
//	--seed <value>  - Set RNG seed for reproducible starting turns
//	--db <path>     - Set database path (default: ~/.dropfour/rounds.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagSeed   int64
	flagDBPath string
	flagConfig string
	flagDelay  int
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "dropfour",
	Short: "Connect Four in your terminal",
	Long: `dropfour is a two-player hot-seat Connect Four game played in the
terminal. Running it with no arguments starts a game immediately.

Available commands:
  play     - Start a game (same as running with no arguments)
  stats    - Show round history and outcome tallies
  serve    - Start SSH server for remote play

Examples:
  dropfour
  dropfour play --config ./my-theme.yaml
  dropfour stats
  dropfour serve --ssh :2222`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to rounds database (default from config)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().IntVar(&flagDelay, "delay", 0, "Animation frame delay in milliseconds (0 = use config)")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(serveCmd)
}
