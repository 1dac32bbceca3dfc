package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-fisherman/internal/storage"
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the latest scores",
	Long: `Display the score file, newest result first.

Examples:
  fisherman scores
  fisherman scores --scores ./score.txt`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func runScores(cmd *cobra.Command, args []string) {
	scores, err := storage.NewScoreFile(flagScoresPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening score file: %v\n", err)
		os.Exit(1)
	}

	records, err := scores.LoadScores()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading scores: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Latest scores")
	fmt.Println()

	if len(records) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'fisherman play' to set the first score!")
		return
	}

	for _, r := range records {
		fmt.Printf("  %s\n", r)
	}
}
