package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/jellyblocker/internal/platform/tui"
)

var (
	flagConfig     string
	flagDifficulty string
	flagPreset     string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game",
	Long: `Start JellyBlocker.

Controls:
  Left/Right  - Move the falling pair
  Z / X       - Rotate left / right
  Down        - Fast drop (hold)
  Space       - Hard drop
  Enter       - Start a game
  1           - View controls
  Esc         - Leave the game
  Q/Ctrl+C    - Quit

Difficulty options:
  easy   - 3 colors, slow fall, long placement grace
  normal - 4 colors
  hard   - 5 colors, fast fall, short placement grace
  fixed  - normal pace, the level never rises

Examples:
  jellyblocker play
  jellyblocker play --difficulty hard
  jellyblocker play --preset garbage-floor
  jellyblocker play --config ./my-jellyblocker.toml --seed 42`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom config (YAML or TOML)")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().StringVar(&flagPreset, "preset", "", "Starting board ID (see 'jellyblocker presets')")
}

func runPlay(cmd *cobra.Command, _ []string) error {
	logger, closeLog, err := newLogger()
	if err != nil {
		return err
	}
	defer closeLog()

	cfg, difficulty, err := loadConfig(logger, flagConfig, flagDifficulty)
	if err != nil {
		return err
	}
	preset, err := findPreset(flagPreset)
	if err != nil {
		return err
	}

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	width, height := terminalSize()
	return tui.Run(cmd.Context(), cfg, tui.Options{
		Mode:   tui.ModeName(difficulty, preset),
		Seed:   flagSeed,
		Store:  store,
		Logger: logger,
		Preset: preset,
		Width:  width,
		Height: height,
	})
}
