package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-fisherman/internal/storage"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show aggregate statistics",
	Long:  `Shows totals across every recorded session, plus a player's best when --player is set.`,
	Args:  cobra.NoArgs,
	Run:   runStats,
}

var flagPlayer string

func init() {
	statsCmd.Flags().StringVar(&flagPlayer, "player", "", "Also show this player's best score")
}

func runStats(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening history database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	stats, err := store.Stats()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error computing stats: %v\n", err)
		return
	}

	fmt.Println("Fisherman statistics")
	fmt.Println()
	fmt.Printf("  Sessions:     %d\n", stats.Sessions)
	fmt.Printf("  Players:      %d\n", stats.Players)
	fmt.Printf("  Fish caught:  %d\n", stats.TotalFish)
	fmt.Printf("  Fish passed:  %d\n", stats.TotalPass)
	fmt.Printf("  Average:      %.1f\n", stats.AvgScore)
	if stats.Sessions > 0 {
		fmt.Printf("  Best:         %d (%s)\n", stats.BestScore, stats.BestPlayer)
	}

	if flagPlayer != "" {
		best, err := store.PlayerBest(flagPlayer)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error retrieving best for %s: %v\n", flagPlayer, err)
			return
		}
		fmt.Printf("\n  Best for %s: %d\n", flagPlayer, best)
	}
}
