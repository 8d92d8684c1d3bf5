package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"dropfour/internal/config"
	"dropfour/internal/platform/tui"
	"dropfour/internal/storage"
)

var (
	flagPlainStats  bool
	flagClearRounds bool
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show round history and outcome tallies",
	Long: `Display the outcome tally and recent round history.

By default this opens an interactive table view. Use --plain for plain
text output suitable for piping.

Examples:
  dropfour stats
  dropfour stats --plain
  dropfour stats --clear
  dropfour stats --db ./rounds.db`,
	Args: cobra.NoArgs,
	Run:  runStats,
}

func init() {
	statsCmd.Flags().BoolVar(&flagPlainStats, "plain", false, "Print stats as plain text instead of the interactive view")
	statsCmd.Flags().BoolVar(&flagClearRounds, "clear", false, "Delete all recorded rounds and exit")
}

func runStats(cmd *cobra.Command, args []string) {
	conf, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	dbPath := roundsDBPath(conf)
	if dbPath == "" {
		fmt.Fprintln(os.Stderr, "Round persistence is disabled (empty database path).")
		os.Exit(1)
	}

	store, err := storage.Open(dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening rounds database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagClearRounds {
		if err := store.ClearRounds(); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing rounds: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Round history cleared.")
		return
	}

	if flagPlainStats {
		printPlainStats(store)
		return
	}

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	if err := tui.RunStats(store, width, height); err != nil {
		fmt.Fprintf(os.Stderr, "Error showing stats: %v\n", err)
		os.Exit(1)
	}
}

func printPlainStats(store *storage.Store) {
	tally, err := store.OutcomeTally()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving tally: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Round Outcomes")
	fmt.Println()
	fmt.Printf("  Red wins:    %d\n", tally.RedWins)
	fmt.Printf("  Yellow wins: %d\n", tally.YellowWins)
	fmt.Printf("  Draws:       %d\n", tally.Draws)
	fmt.Printf("  Total:       %d\n", tally.Total())

	rounds, err := store.RecentRounds(10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving rounds: %v\n", err)
		os.Exit(1)
	}

	fmt.Println()

	if len(rounds) == 0 {
		fmt.Println("No rounds recorded yet.")
		fmt.Println()
		fmt.Println("Play 'dropfour' to record the first round!")
		return
	}

	// Print header
	fmt.Printf("  %-12s  %-6s  %-8s  %s\n", "Outcome", "Moves", "Duration", "Date")
	fmt.Printf("  %-12s  %-6s  %-8s  %s\n", "-------", "-----", "--------", "----")

	for _, entry := range rounds {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-12s  %-6d  %-8s  %s\n",
			entry.Outcome, entry.Moves, formatDuration(entry.DurationSecs), dateStr)
	}
}

func formatDuration(secs int) string {
	if secs < 60 {
		return fmt.Sprintf("%ds", secs)
	}
	return fmt.Sprintf("%dm%02ds", secs/60, secs%60)
}
