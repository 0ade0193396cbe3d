package config

import (
	_ "embed"
)

//go:embed defaults/jellyblocker.yaml
var defaultYAML []byte

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Board: BoardConfig{
			Width:        6,
			Height:       13,
			Colors:       4,
			GroupSizes:   []int{2},
			PopThreshold: 4,
		},
		Timing: TimingConfig{
			PlacementDelay:     5,
			GravityInterval:    20,
			FallingInterval:    100,
			FastDropMultiplier: 5,
			TickMS:             10,
		},
		Scoring: ScoringConfig{
			PopsPerLevel: 50,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
