package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/jellyblocker/internal/config"
)

var flagConfigFormat string

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Loads the configuration the way 'play' does, applies the difficulty
preset and prints the result. Redirect it to a file to start a custom config.

Search order:
  --config <path>
  ~/.jellyblocker/config.yaml (or .toml)
  ./configs/jellyblocker.yaml (or .toml)
  built-in defaults

Examples:
  jellyblocker config
  jellyblocker config --difficulty hard --format toml > ~/.jellyblocker/config.toml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom config (YAML or TOML)")
	configCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	configCmd.Flags().StringVar(&flagConfigFormat, "format", "yaml", "Output format: yaml or toml")
}

func runConfig(cmd *cobra.Command, _ []string) error {
	var format config.Format
	switch flagConfigFormat {
	case "yaml", "yml":
		format = config.FormatYAML
	case "toml":
		format = config.FormatTOML
	default:
		return fmt.Errorf("unknown format %q (want yaml or toml)", flagConfigFormat)
	}

	logger, closeLog, err := newLogger()
	if err != nil {
		return err
	}
	defer closeLog()

	cfg, _, err := loadConfig(logger, flagConfig, flagDifficulty)
	if err != nil {
		return err
	}

	data, err := config.Encode(cfg, format)
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}
