package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"dropfour/internal/config"
	"dropfour/internal/core"
	"dropfour/internal/game"
	"dropfour/internal/platform/tui"
	"dropfour/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start a game",
	Long: `Start a two-player hot-seat Connect Four game.

Controls:
  Left/Right or A/D   - Move the column selector
  Return/Space        - Drop a token
  Space (after win)   - Play another round
  Q/Ctrl+C            - Quit

Examples:
  dropfour play
  dropfour play --config ./my-theme.yaml
  dropfour play --seed 42`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(cmd *cobra.Command, args []string) {
	// Load config (embedded defaults if no file found)
	conf, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	// Get terminal size early so the first frame is laid out correctly
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:    width,
		ScreenH:    height,
		FrameDelay: frameDelay(conf),
		Seed:       flagSeed,
	}

	// Open round storage; an empty path disables persistence
	var store *storage.Store
	if path := roundsDBPath(conf); path != "" {
		store, err = storage.Open(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not open rounds database: %v\n", err)
			// Continue without storage - the game still works
			store = nil
		}
	}

	theme := tui.Theme{Red: conf.Theme.Red, Yellow: conf.Theme.Yellow}
	runErr := tui.Run(game.New(), store, cfg, theme)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// roundsDBPath resolves the database path, with the --db flag taking
// priority over the config file.
func roundsDBPath(conf config.Config) string {
	if flagDBPath != "" {
		return flagDBPath
	}
	return conf.Database.Path
}

// frameDelay resolves the animation frame delay, with the --delay flag
// taking priority over the config file.
func frameDelay(conf config.Config) time.Duration {
	if flagDelay > 0 {
		return time.Duration(flagDelay) * time.Millisecond
	}
	return conf.FrameDelay()
}
