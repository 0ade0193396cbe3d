// jellyblocker is a falling-block jelly puzzle for the terminal.
//
// Usage:
//
//	jellyblocker play            - Play a game
//	jellyblocker menu            - Pick difficulty and starting board interactively
//	jellyblocker scores [mode]   - Show high scores
//	jellyblocker presets         - List starting boards
//	jellyblocker config          - Print the effective configuration
//
// Global flags:
//
//	--seed <value>       - Set RNG seed for reproducible games
//	--db <path>          - Set database path (default: ~/.jellyblocker/scores.db)
//	--log-level <level>  - debug, info, warn or error
//	--log-file <path>    - Where logs go while the TUI owns the terminal
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/jellyblocker/internal/config"
	"github.com/vovakirdan/jellyblocker/internal/presets"
	"github.com/vovakirdan/jellyblocker/internal/storage"
)

var (
	// Global flags
	flagSeed     int64
	flagDBPath   string
	flagLogLevel string
	flagLogFile  string

	flagPresetsDir string
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "jellyblocker",
	Short: "JellyBlocker - pop jellies in your terminal",
	Long: `JellyBlocker is a falling-block puzzle: steer pairs of colored jellies
onto the board and pop groups of four or more of the same color.
Every pop lets the jellies above fall and may set off a chain.

Available commands:
  play     - Play a game
  menu     - Pick difficulty and starting board
  scores   - View high scores
  presets  - List starting boards
  config   - Print the effective configuration

Examples:
  jellyblocker play
  jellyblocker play --difficulty hard --preset setup
  jellyblocker menu
  jellyblocker scores normal`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	defaultLog := filepath.Join(config.UserDir(), "jellyblocker.log")

	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", storage.DefaultPath, "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", defaultLog, "Log file path (\"-\" = stderr)")
	rootCmd.PersistentFlags().StringVar(&flagPresetsDir, "presets-dir", filepath.Join(config.UserDir(), "presets"),
		"Directory with extra starting boards (YAML or TOML)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(presetsCmd)
	rootCmd.AddCommand(configCmd)
}

// newLogger opens the log destination. The returned func closes it.
func newLogger() (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level: %w", err)
	}

	opts := log.Options{
		ReportTimestamp: true,
		Prefix:          "jellyblocker",
		Level:           level,
	}

	if flagLogFile == "-" {
		return log.NewWithOptions(os.Stderr, opts), func() {}, nil
	}

	path := expandHome(flagLogFile)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	return log.NewWithOptions(f, opts), func() { _ = f.Close() }, nil
}

// openStore opens the score database. The game works without one, so
// failures are only logged.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "path", flagDBPath, "error", err)
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		return nil
	}
	return store
}

// loadConfig loads the configuration and applies the difficulty preset.
func loadConfig(logger *log.Logger, path, difficulty string) (config.Config, config.DifficultyPreset, error) {
	preset, err := config.ParseDifficulty(difficulty)
	if err != nil {
		return config.Config{}, "", err
	}

	cfg, source, err := config.Load(path)
	if err != nil {
		return config.Config{}, "", err
	}
	config.ApplyDifficulty(&cfg, preset)
	logger.Debug("config loaded", "source", source, "difficulty", preset)
	return cfg, preset, nil
}

// findPreset resolves a starting board by ID. Empty means none.
func findPreset(id string) (*presets.Preset, error) {
	if id == "" {
		return nil, nil
	}
	p, err := presets.Find(id, expandHome(flagPresetsDir))
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// terminalSize returns the terminal size, or 80x24 when it is unknown.
func terminalSize() (int, int) {
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		return w, h
	}
	return 80, 24
}

func expandHome(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, strings.TrimPrefix(path, "~"))
		}
	}
	return path
}
