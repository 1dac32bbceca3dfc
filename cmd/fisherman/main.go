// fisherman is a terminal fishing game: steer the boat, cast the rod and
// catch as many fish as you can in sixty seconds.
//
// Usage:
//
//	fisherman play           - Play locally
//	fisherman serve          - Start SSH server for remote play
//	fisherman scores         - Show the latest scores, newest first
//	fisherman history        - Show or clear recorded sessions
//	fisherman stats          - Show aggregate statistics
//	fisherman list           - List available games
//
// Global flags:
//
//	--seed <value>    - Set the water animation seed
//	--db <path>       - Set history database path (default: ~/.fisherman/history.db)
//	--scores <path>   - Set score file path (default: ~/.fisherman/score.txt)
//	--log <path>      - Set log file path (default: ~/.fisherman/fisherman.log)
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-fisherman/internal/storage"
)

var (
	// Global flags
	flagSeed       int64
	flagDBPath     string
	flagScoresPath string
	flagLogPath    string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "fisherman",
	Short: "Fisherman - catch fish in your terminal",
	Long: `Fisherman is a terminal fishing game. Move the boat, cast the rod
and catch fish before the time or the bait runs out.

Available commands:
  play     - Play locally
  serve    - Start SSH server for remote play
  scores   - Show the latest scores
  history  - Show recorded sessions
  stats    - Show aggregate statistics
  list     - Show all available games

Examples:
  fisherman play
  fisherman play --name Alice --difficulty hard
  fisherman serve --ssh :2222
  fisherman history --limit 20`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "Water animation seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.fisherman/history.db", "Path to session history database")
	rootCmd.PersistentFlags().StringVar(&flagScoresPath, "scores", "~/.fisherman/score.txt", "Path to score file")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", "~/.fisherman/fisherman.log", "Path to log file for local play")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(statsCmd)
}

// openRecorder opens both persistence sinks. A sink that cannot be opened is
// reported and left out; play continues without it.
func openRecorder(logger *log.Logger) (*storage.Recorder, func()) {
	scores, err := storage.NewScoreFile(flagScoresPath)
	if err != nil {
		logger.Warn("score file unavailable", "path", flagScoresPath, "error", err)
		scores = nil
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("session history unavailable", "path", flagDBPath, "error", err)
		store = nil
	}

	closeFn := func() {
		if store != nil {
			store.Close()
		}
	}
	return storage.NewRecorder(scores, store, logger), closeFn
}

// openFileLogger returns a logger writing to path. The alt screen owns the
// terminal during local play, so logs must not go to stderr.
func openFileLogger(path string) (*log.Logger, io.Closer) {
	if strings.HasPrefix(path, "~") {
		if home, err := os.UserHomeDir(); err == nil {
			path = filepath.Join(home, path[1:])
		}
	}

	var out io.Writer = io.Discard
	var closer io.Closer = io.NopCloser(nil)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err == nil {
		if f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644); err == nil {
			out = f
			closer = f
		}
	}

	return log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          "fisherman",
	}), closer
}
