package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-fisherman/internal/audio"
	"github.com/vovakirdan/tui-fisherman/internal/config"
	"github.com/vovakirdan/tui-fisherman/internal/core"
	"github.com/vovakirdan/tui-fisherman/internal/games/fishing"
	"github.com/vovakirdan/tui-fisherman/internal/platform/tui"
	"github.com/vovakirdan/tui-fisherman/internal/registry"
)

var (
	flagName       string
	flagConfig     string
	flagDifficulty string
	flagMute       bool
	flagVolume     float64
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the fishing game",
	Long: `Start the game on the name entry screen.

Controls:
  Left/A, Right/D  - Move the boat (reels the bait back in)
  Space/Down/S     - Cast the rod
  P                - Pause
  R                - Restart
  Enter            - Back to the start screen (after game over)
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - Fish speed up every 15 seconds
  normal - Fish speed up every 10 seconds
  hard   - Fish speed up faster every 7.5 seconds
  fixed  - Fish keep their starting speed

Examples:
  fisherman play
  fisherman play --name Alice
  fisherman play --difficulty hard
  fisherman play --config ./my-fishing.yaml --mute`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagName, "name", "", "Prefill the player name")
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound")
	playCmd.Flags().Float64Var(&flagVolume, "volume", 0.6, "Master volume (0..1)")
}

// configureGame resolves the game config once, hands it to the fishing game
// and returns the registered factory along with the tick rate the driver must
// run at for the session clock to keep wall-clock time.
func configureGame(customPath, difficulty string) (registry.Factory, int, error) {
	preset, err := config.ParsePreset(difficulty)
	if err != nil {
		return nil, 0, err
	}

	cfg, err := config.LoadFishing(customPath)
	if err != nil {
		return nil, 0, err
	}
	config.ApplyFishingPreset(&cfg, preset)
	fishing.SetConfig(cfg)

	newGame, err := registry.Lookup(fishing.GameID)
	if err != nil {
		return nil, 0, err
	}
	return newGame, cfg.Session.TickRate(), nil
}

func runPlay(cmd *cobra.Command, args []string) {
	newGame, tickRate, err := configureGame(flagConfig, flagDifficulty)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger, logCloser := openFileLogger(flagLogPath)
	defer logCloser.Close()

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: tickRate,
		Seed:     flagSeed,
		Player:   flagName,
	}

	recorder, closeRecorder := openRecorder(logger)
	defer closeRecorder()

	var cues tui.CuePlayer = audio.Silent{}
	if !flagMute {
		player := audio.NewPlayer(flagVolume, logger)
		if initErr := player.Init(); initErr != nil {
			logger.Warn("audio disabled", "error", initErr)
		} else {
			defer player.Close()
			cues = player
		}
	}

	deps := tui.SessionDeps{
		NewGame:  newGame,
		Recorder: recorder,
		Cues:     cues,
		Logger:   logger,
	}

	if runErr := tui.Run(deps, cfg); runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
