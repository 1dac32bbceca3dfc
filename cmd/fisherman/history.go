package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-fisherman/internal/storage"
)

var (
	flagLimit int
	flagTop   bool
	flagClear bool
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recorded sessions",
	Long: `Display recorded sessions from the history database, most recent first.
With --top, sessions are ranked by score instead. --clear deletes the whole
history; the flat score file is left alone.

Examples:
  fisherman history
  fisherman history --limit 20
  fisherman history --top
  fisherman history --clear`,
	Args: cobra.NoArgs,
	Run:  runHistory,
}

func init() {
	historyCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of sessions to show")
	historyCmd.Flags().BoolVar(&flagTop, "top", false, "Rank by score instead of date")
	historyCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete every recorded session")
}

func runHistory(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening history database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearScores(); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing history: %v\n", err)
			return
		}
		fmt.Println("Session history cleared.")
		return
	}

	var sessions []storage.SessionEntry
	if flagTop {
		sessions, err = store.TopScores(flagLimit)
	} else {
		sessions, err = store.RecentSessions(flagLimit)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving sessions: %v\n", err)
		return
	}

	if len(sessions) == 0 {
		fmt.Println("No sessions recorded yet.")
		return
	}

	// Print header
	fmt.Printf("  %-4s  %-20s  %-5s  %-6s  %-4s  %-13s  %s\n", "#", "Player", "Fish", "Passed", "Bait", "Ended by", "Date")
	fmt.Printf("  %-4s  %-20s  %-5s  %-6s  %-4s  %-13s  %s\n", "-", "------", "----", "------", "----", "--------", "----")

	for i, s := range sessions {
		fmt.Printf("  %-4d  %-20s  %-5d  %-6d  %-4d  %-13s  %s\n",
			i+1, s.Player, s.Score, s.Passed, s.BaitLeft, s.Reason, s.CreatedAt.Format("2006-01-02 15:04"))
	}
}
