package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-fisherman/internal/config"
	"github.com/vovakirdan/tui-fisherman/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List available games and their rules",
	Long: `Shows the registered games and the rules the resolved config sets up:
session length, bait, fish lanes and the speed ramp.

Examples:
  fisherman list
  fisherman list --config ./my-fishing.yaml --difficulty hard`,
	Args: cobra.NoArgs,
	Run:  runList,
}

func init() {
	listCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	listCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

var listHeaderStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
var listCellStyle = lipgloss.NewStyle().Padding(0, 1)

func runList(cmd *cobra.Command, args []string) {
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	cfg, err := config.LoadFishing(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	config.ApplyFishingPreset(&cfg, preset)

	games := table.New().
		Border(lipgloss.RoundedBorder()).
		Headers("ID", "Title").
		StyleFunc(listStyle)
	for _, g := range registry.List() {
		games.Row(g.ID, g.Title)
	}
	fmt.Println(games)

	rules := table.New().
		Border(lipgloss.RoundedBorder()).
		Headers("Rule", "Value").
		StyleFunc(listStyle).
		Row("Session", cfg.Session.Duration().String()).
		Row("Tick", cfg.Session.Tick().String()).
		Row("Bait", strconv.Itoa(cfg.Bait.Count)).
		Row("Speed ramp", rampLabel(cfg.Difficulty, cfg.Session.TickRate()))
	for i, lane := range cfg.Fish.Lanes {
		rules.Row(fmt.Sprintf("Lane %d", i+1), fmt.Sprintf("depth %d, speed %g", lane.Y, lane.Velocity))
	}
	fmt.Println(rules)
}

func listStyle(row, _ int) lipgloss.Style {
	if row == table.HeaderRow {
		return listHeaderStyle
	}
	return listCellStyle
}

func rampLabel(d config.DifficultyConfig, tickRate int) string {
	if !d.Enabled || d.RampEvery <= 0 {
		return "off"
	}
	label := fmt.Sprintf("+%g every %gs", d.RampIncrement, float64(d.RampEvery)/float64(tickRate))
	if d.MaxVelocity > 0 {
		label += fmt.Sprintf(", max %g", d.MaxVelocity)
	}
	return label
}
