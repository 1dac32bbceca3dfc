package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const fishingConfigFile = "fishing.yaml"

// LoadFishing loads the fishing game configuration.
// Search order: customPath -> ~/.fisherman/configs/fishing.yaml -> ./configs/fishing.yaml -> embedded default
//
// Only a custom path reports read and parse errors; the implicit locations fall
// through to the next candidate. The returned config is always validated.
func LoadFishing(customPath string) (FishingConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return FishingConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := parseFishing(data)
		if err != nil {
			return FishingConfig{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, cfg.Validate()
	}

	// Try user config directory
	if userCfgPath := userConfigPath(fishingConfigFile); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parseFishing(data); err == nil && cfg.Validate() == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", fishingConfigFile)); err == nil {
		if cfg, err := parseFishing(data); err == nil && cfg.Validate() == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := parseFishing(defaultFishingYAML)
	if err != nil {
		return DefaultFishingConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// parseFishing decodes data on top of the built-in defaults, so a partial
// file only overrides the keys it names.
func parseFishing(data []byte) (FishingConfig, error) {
	cfg := DefaultFishingConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return FishingConfig{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".fisherman", "configs", filename)
}

// ApplyFishingPreset modifies the config based on a difficulty preset.
// An empty preset leaves the config untouched.
func ApplyFishingPreset(cfg *FishingConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyFixed:
		cfg.Difficulty.Enabled = false
	case DifficultyEasy:
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.RampEvery = 600
		cfg.Difficulty.RampIncrement = 1
	case DifficultyNormal:
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.RampEvery = 400
		cfg.Difficulty.RampIncrement = 1
	case DifficultyHard:
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.RampEvery = 300
		cfg.Difficulty.RampIncrement = 1.5
	}
}
