package config

import (
	"fmt"
	"strings"
)

// DifficultyConfig scales a game's tuning without touching its formulas.
// Zero values mean 1.
type DifficultyConfig struct {
	SpeedScale float64 `yaml:"speed_scale"` // Multiplies every entity speed
	SpawnScale float64 `yaml:"spawn_scale"` // Multiplies every spawn interval
}

// Speed scales an entity speed.
func (d DifficultyConfig) Speed(base float64) float64 {
	return base * orOne(d.SpeedScale)
}

// Interval scales a spawn interval.
func (d DifficultyConfig) Interval(base float64) float64 {
	return base * orOne(d.SpawnScale)
}

func orOne(v float64) float64 {
	if v <= 0 {
		return 1
	}
	return v
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset validates a preset name. The empty string keeps the config's values.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(strings.ToLower(strings.TrimSpace(s))); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal or hard)", s)
	}
}

// ScalingForPreset returns the difficulty scaling for a preset.
func ScalingForPreset(preset DifficultyPreset) DifficultyConfig {
	switch preset {
	case DifficultyEasy:
		return DifficultyConfig{SpeedScale: 0.8, SpawnScale: 1.25}
	case DifficultyHard:
		return DifficultyConfig{SpeedScale: 1.25, SpawnScale: 0.8}
	default:
		return DifficultyConfig{SpeedScale: 1, SpawnScale: 1}
	}
}

// ApplyNeonStrikePreset modifies the config based on a difficulty preset.
func ApplyNeonStrikePreset(cfg *NeonStrikeConfig, preset DifficultyPreset) {
	if preset == "" {
		return
	}
	cfg.Difficulty = ScalingForPreset(preset)

	switch preset {
	case DifficultyEasy:
		cfg.PowerUps.DropChance = 0.25
	case DifficultyHard:
		cfg.PowerUps.DropChance = 0.1
	}
}

// ApplyVoidRunnerPreset modifies the config based on a difficulty preset.
func ApplyVoidRunnerPreset(cfg *VoidRunnerConfig, preset DifficultyPreset) {
	if preset == "" {
		return
	}
	cfg.Difficulty = ScalingForPreset(preset)

	switch preset {
	case DifficultyEasy:
		cfg.Walls.EdgeBias = 0.6
	case DifficultyHard:
		cfg.Walls.EdgeBias = 0.9
	}
}
