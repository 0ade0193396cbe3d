package config

import (
	"errors"
	"fmt"
)

// MaxColors is the number of playable jelly colors.
const MaxColors = 5

// ValidationError describes one invalid configuration field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("config: %s: %s", e.Field, e.Message)
}

// Validate checks every field and returns all problems joined, or nil.
func Validate(cfg Config) error {
	var errs []error
	add := func(field, format string, args ...any) {
		errs = append(errs, &ValidationError{Field: field, Message: fmt.Sprintf(format, args...)})
	}

	b := cfg.Board
	if b.Width < 1 {
		add("board.width", "must be at least 1, got %d", b.Width)
	}
	if b.Height < 2 {
		add("board.height", "must be at least 2 (spawn row plus one), got %d", b.Height)
	}
	if b.Colors < 1 || b.Colors > MaxColors {
		add("board.colors", "must be between 1 and %d, got %d", MaxColors, b.Colors)
	}
	if len(b.GroupSizes) == 0 {
		add("board.group_sizes", "must not be empty")
	}
	for _, size := range b.GroupSizes {
		if size < 1 || size > 2 {
			add("board.group_sizes", "size %d has no rotation rules, use 1 or 2", size)
		}
	}
	if b.PopThreshold < 1 {
		add("board.pop_threshold", "must be at least 1, got %d", b.PopThreshold)
	}

	t := cfg.Timing
	if t.PlacementDelay < 2 {
		add("timing.placement_delay", "must be at least 2, got %d", t.PlacementDelay)
	}
	if t.GravityInterval < 1 {
		add("timing.gravity_interval", "must be at least 1, got %d", t.GravityInterval)
	}
	if t.FallingInterval < 1 {
		add("timing.falling_interval", "must be at least 1, got %d", t.FallingInterval)
	}
	if t.FastDropMultiplier < 1 {
		add("timing.fast_drop_multiplier", "must be at least 1, got %d", t.FastDropMultiplier)
	}
	if t.TickMS < 1 {
		add("timing.tick_ms", "must be at least 1, got %d", t.TickMS)
	}

	if cfg.Scoring.PopsPerLevel < 1 {
		add("scoring.pops_per_level", "must be at least 1, got %d", cfg.Scoring.PopsPerLevel)
	}

	return errors.Join(errs...)
}
