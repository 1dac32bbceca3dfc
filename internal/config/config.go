// Package config provides YAML-based game configuration loading and the
// difficulty ramp for the fishing game.
package config

import (
	"errors"
	"fmt"
	"time"
)

// FishingConfig contains all configuration for the fishing game.
type FishingConfig struct {
	World      World            `yaml:"world"`
	Boat       BoatConfig       `yaml:"boat"`
	Bait       BaitConfig       `yaml:"bait"`
	Fish       FishConfig       `yaml:"fish"`
	Session    SessionConfig    `yaml:"session"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// World defines the logical play area.
type World struct {
	Width         int     `yaml:"width"`
	Height        int     `yaml:"height"`
	HUDHeight     int     `yaml:"hud_height"`
	WaterLine     int     `yaml:"water_line"`
	PassMargin    int     `yaml:"pass_margin"` // Distance past the right edge before a fish counts as passed
	WaveAmplitude float64 `yaml:"wave_amplitude"`
	WaveFrequency float64 `yaml:"wave_frequency"`
}

// BoatConfig defines the boat footprint and movement.
type BoatConfig struct {
	X         int `yaml:"x"`
	Y         int `yaml:"y"`
	Width     int `yaml:"width"`
	Height    int `yaml:"height"`
	Step      int `yaml:"step"`
	RodInset  int `yaml:"rod_inset"`  // Horizontal distance of the rod from the boat edge
	RodOffset int `yaml:"rod_offset"` // Vertical distance of the line anchor below the boat top
}

// BaitConfig defines the casting line.
type BaitConfig struct {
	Count     int `yaml:"count"`
	Speed     int `yaml:"speed"`
	MaxDepth  int `yaml:"max_depth"`
	TipWidth  int `yaml:"tip_width"`
	TipHeight int `yaml:"tip_height"`
}

// FishConfig defines the fish footprint and the lanes they swim in.
type FishConfig struct {
	Width  int          `yaml:"width"`
	Height int          `yaml:"height"`
	StartX int          `yaml:"start_x"`
	ResetX int          `yaml:"reset_x"`
	Lanes  []LaneConfig `yaml:"lanes"`
}

// LaneConfig defines one lane: its fixed y and the fish's initial velocity.
type LaneConfig struct {
	Y        int     `yaml:"y"`
	Velocity float64 `yaml:"velocity"`
}

// SessionConfig defines the session clock.
type SessionConfig struct {
	DurationMS int `yaml:"duration_ms"`
	TickMS     int `yaml:"tick_ms"`
}

// Duration returns the total session length.
func (s SessionConfig) Duration() time.Duration {
	return time.Duration(s.DurationMS) * time.Millisecond
}

// Tick returns the simulated time consumed by one tick.
func (s SessionConfig) Tick() time.Duration {
	return time.Duration(s.TickMS) * time.Millisecond
}

// TickRate returns how many ticks make up one second of play. The tick driver
// runs at this rate so the session clock keeps wall-clock time.
func (s SessionConfig) TickRate() int {
	if s.TickMS <= 0 {
		return 40
	}
	return 1000 / s.TickMS
}

// DifficultyConfig defines the fish speed ramp.
type DifficultyConfig struct {
	Enabled       bool    `yaml:"enabled"`
	RampEvery     int     `yaml:"ramp_every"`     // Ticks between velocity increases
	RampIncrement float64 `yaml:"ramp_increment"` // Added to every fish velocity per ramp
	MaxVelocity   float64 `yaml:"max_velocity"`   // 0 disables the cap
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset validates a preset name. Empty input means "keep config as is".
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", s)
	}
}

// Validate reports every setting that would make the simulation meaningless.
func (c FishingConfig) Validate() error {
	var errs []error
	if c.World.Width <= 0 || c.World.Height <= 0 {
		errs = append(errs, fmt.Errorf("world size must be positive, got %dx%d", c.World.Width, c.World.Height))
	}
	if c.Boat.Width <= 0 || c.Boat.Width > c.World.Width {
		errs = append(errs, fmt.Errorf("boat width %d does not fit world width %d", c.Boat.Width, c.World.Width))
	}
	if c.Boat.Step <= 0 {
		errs = append(errs, fmt.Errorf("boat step must be positive, got %d", c.Boat.Step))
	}
	if c.Bait.Count <= 0 {
		errs = append(errs, fmt.Errorf("bait count must be positive, got %d", c.Bait.Count))
	}
	if c.Bait.Speed <= 0 {
		errs = append(errs, fmt.Errorf("bait speed must be positive, got %d", c.Bait.Speed))
	}
	if c.Bait.MaxDepth <= c.Boat.Y+c.Boat.RodOffset {
		errs = append(errs, fmt.Errorf("bait max depth %d is above the rod anchor", c.Bait.MaxDepth))
	}
	if c.Fish.Width <= 0 || c.Fish.Height <= 0 {
		errs = append(errs, fmt.Errorf("fish size must be positive, got %dx%d", c.Fish.Width, c.Fish.Height))
	}
	if len(c.Fish.Lanes) == 0 {
		errs = append(errs, errors.New("at least one fish lane is required"))
	}
	for i := 1; i < len(c.Fish.Lanes); i++ {
		if c.Fish.Lanes[i].Y <= c.Fish.Lanes[i-1].Y {
			errs = append(errs, fmt.Errorf("lane %d must be below lane %d", i+1, i))
		}
	}
	if c.Session.DurationMS <= 0 || c.Session.TickMS <= 0 {
		errs = append(errs, fmt.Errorf("session duration and tick must be positive, got %d/%d ms", c.Session.DurationMS, c.Session.TickMS))
	} else if 1000%c.Session.TickMS != 0 {
		errs = append(errs, fmt.Errorf("session tick_ms %d must divide one second evenly", c.Session.TickMS))
	}
	if c.Difficulty.Enabled && c.Difficulty.RampEvery <= 0 {
		errs = append(errs, fmt.Errorf("ramp_every must be positive when difficulty is enabled, got %d", c.Difficulty.RampEvery))
	}
	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("config: invalid fishing config: %w", errors.Join(errs...))
}
