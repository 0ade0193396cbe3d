package config

import (
	"fmt"
	"strings"
)

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// Difficulties lists the presets in display order.
func Difficulties() []DifficultyPreset {
	return []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed}
}

// ParseDifficulty resolves a preset name. An empty name means normal.
func ParseDifficulty(name string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(strings.ToLower(strings.TrimSpace(name))); p {
	case "":
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", name)
	}
}

// IsFixedPreset returns true if the preset disables level progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

// ApplyDifficulty modifies cfg based on a difficulty preset.
// Normal leaves the loaded values untouched.
func ApplyDifficulty(cfg *Config, preset DifficultyPreset) {
	if IsFixedPreset(preset) {
		cfg.Scoring.FixedLevel = true
	}

	switch preset {
	case DifficultyEasy:
		cfg.Board.Colors = 3
		cfg.Timing.FallingInterval = 150
		cfg.Timing.PlacementDelay = 8
		cfg.Scoring.PopsPerLevel = 60
	case DifficultyHard:
		cfg.Board.Colors = MaxColors
		cfg.Timing.FallingInterval = 70
		cfg.Timing.PlacementDelay = 4
		cfg.Scoring.PopsPerLevel = 40
	}
}
