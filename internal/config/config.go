// Package config provides YAML/TOML game configuration loading, validation
// and difficulty presets.
package config

import "time"

// Config is the full, immutable-after-validation game configuration.
type Config struct {
	Board   BoardConfig   `yaml:"board" toml:"board"`
	Timing  TimingConfig  `yaml:"timing" toml:"timing"`
	Scoring ScoringConfig `yaml:"scoring" toml:"scoring"`
}

// BoardConfig defines the grid and the falling groups.
type BoardConfig struct {
	Width        int   `yaml:"width" toml:"width"`
	Height       int   `yaml:"height" toml:"height"` // includes the hidden spawn row
	Colors       int   `yaml:"colors" toml:"colors"`
	GroupSizes   []int `yaml:"group_sizes" toml:"group_sizes"`
	PopThreshold int   `yaml:"pop_threshold" toml:"pop_threshold"`
}

// TimingConfig defines tick-based pacing. Every interval is measured in ticks.
type TimingConfig struct {
	PlacementDelay     int `yaml:"placement_delay" toml:"placement_delay"`
	GravityInterval    int `yaml:"gravity_interval" toml:"gravity_interval"`
	FallingInterval    int `yaml:"falling_interval" toml:"falling_interval"`
	FastDropMultiplier int `yaml:"fast_drop_multiplier" toml:"fast_drop_multiplier"`
	TickMS             int `yaml:"tick_ms" toml:"tick_ms"`
}

// ScoringConfig defines level progression.
type ScoringConfig struct {
	PopsPerLevel int  `yaml:"pops_per_level" toml:"pops_per_level"`
	FixedLevel   bool `yaml:"fixed_level" toml:"fixed_level"` // never level up
}

// TickDuration returns the wall-clock length of one tick.
func (c Config) TickDuration() time.Duration {
	return time.Duration(c.Timing.TickMS) * time.Millisecond
}

// Clone returns a deep copy of c.
func (c Config) Clone() Config {
	out := c
	out.Board.GroupSizes = append([]int(nil), c.Board.GroupSizes...)
	return out
}
