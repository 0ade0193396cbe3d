package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/jellyblocker/internal/config"
	"github.com/vovakirdan/jellyblocker/internal/platform/tui"
	"github.com/vovakirdan/jellyblocker/internal/presets"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick difficulty and starting board, then play",
	Long: `Start JellyBlocker in interactive menu mode.

Use Up/Down to pick a difficulty and Left/Right to pick a starting board.
When you quit a game you return to the menu.

Controls:
  Up/Down/j/k     - Difficulty
  Left/Right/h/l  - Starting board
  Enter/Space     - Play
  Tab             - High scores
  Q/Esc           - Quit

Examples:
  jellyblocker menu
  jellyblocker menu --config ./my-jellyblocker.yaml
  jellyblocker menu --db ./scores.db`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func init() {
	menuCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom config (YAML or TOML)")
	menuCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Preselected difficulty")
}

func runMenu(cmd *cobra.Command, _ []string) error {
	logger, closeLog, err := newLogger()
	if err != nil {
		return err
	}
	defer closeLog()

	boards, err := presets.All(expandHome(flagPresetsDir))
	if err != nil {
		return err
	}
	// fail on a bad config or difficulty before entering the menu
	_, difficulty, err := loadConfig(logger, flagConfig, flagDifficulty)
	if err != nil {
		return err
	}

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	width, height := terminalSize()
	lastMode := ""
	for {
		result, err := tui.RunMenu(boards, difficulty, width, height)
		if err != nil {
			return err
		}
		width, height = result.Width, result.Height

		if result.Quit {
			return nil
		}

		if result.WantsScoreboard {
			goBack, err := tui.RunScoreboard(store, lastMode, width, height)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			}
			if goBack {
				continue
			}
			return nil
		}

		var cfg config.Config
		cfg, difficulty, err = loadConfig(logger, flagConfig, string(result.Difficulty))
		if err != nil {
			return err
		}

		seed := flagSeed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		lastMode = tui.ModeName(difficulty, result.Preset)

		if err := tui.Run(cmd.Context(), cfg, tui.Options{
			Mode:   lastMode,
			Seed:   seed,
			Store:  store,
			Logger: logger,
			Preset: result.Preset,
			Width:  width,
			Height: height,
		}); err != nil {
			return err
		}
		if cmd.Context().Err() != nil {
			return nil
		}
	}
}
