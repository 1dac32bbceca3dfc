package config

import (
	_ "embed"
)

//go:embed defaults/fishing.yaml
var defaultFishingYAML []byte

// DefaultFishingConfig returns the built-in configuration. It mirrors
// defaults/fishing.yaml and is used if the embedded copy cannot be parsed.
func DefaultFishingConfig() FishingConfig {
	return FishingConfig{
		World: World{
			Width:         1280,
			Height:        920,
			HUDHeight:     75,
			WaterLine:     440,
			PassMargin:    100,
			WaveAmplitude: 15,
			WaveFrequency: 0.03,
		},
		Boat: BoatConfig{
			X:         550,
			Y:         325,
			Width:     200,
			Height:    150,
			Step:      50,
			RodInset:  10,
			RodOffset: 30,
		},
		Bait: BaitConfig{
			Count:     5,
			Speed:     15,
			MaxDepth:  940,
			TipWidth:  1,
			TipHeight: 1,
		},
		Fish: FishConfig{
			Width:  100,
			Height: 80,
			StartX: 0,
			ResetX: -150,
			Lanes: []LaneConfig{
				{Y: 520, Velocity: 4},
				{Y: 640, Velocity: 3},
				{Y: 760, Velocity: 2},
			},
		},
		Session: SessionConfig{
			DurationMS: 60000,
			TickMS:     25,
		},
		Difficulty: DifficultyConfig{
			Enabled:       true,
			RampEvery:     400,
			RampIncrement: 1,
			MaxVelocity:   0,
		},
	}
}
