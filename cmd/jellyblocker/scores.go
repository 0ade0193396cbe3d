package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/jellyblocker/internal/platform/tui"
)

var flagClearScores bool

var scoresCmd = &cobra.Command{
	Use:   "scores [mode]",
	Short: "Show high scores",
	Long: `Display the top 10 high scores for a mode, or open the interactive
scoreboard when no mode is given.

A mode is the difficulty a game was played on, followed by the starting
board if one was used.

Examples:
  jellyblocker scores
  jellyblocker scores normal
  jellyblocker scores hard/garbage-floor
  jellyblocker scores easy --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagClearScores, "clear", false, "Delete all scores for the mode")
}

func runScores(cmd *cobra.Command, args []string) error {
	logger, closeLog, err := newLogger()
	if err != nil {
		return err
	}
	defer closeLog()

	store := openStore(logger)
	if store == nil {
		return fmt.Errorf("no scores database at %s", flagDBPath)
	}
	defer store.Close()

	if len(args) == 0 {
		if flagClearScores {
			return fmt.Errorf("--clear needs a mode")
		}
		width, height := terminalSize()
		_, err := tui.RunScoreboard(store, "", width, height)
		return err
	}

	mode := args[0]
	out := cmd.OutOrStdout()

	if flagClearScores {
		if err := store.ClearScores(mode); err != nil {
			return err
		}
		logger.Info("scores cleared", "mode", mode)
		fmt.Fprintf(out, "Cleared scores for %s\n", mode)
		return nil
	}

	scores, err := store.TopScores(mode, 10)
	if err != nil {
		return fmt.Errorf("retrieve scores: %w", err)
	}

	fmt.Fprintf(out, "High Scores - %s\n\n", mode)

	if len(scores) == 0 {
		fmt.Fprintln(out, "No scores recorded yet.")
		fmt.Fprintln(out)
		modes, err := store.Modes()
		if err == nil && len(modes) > 0 {
			fmt.Fprintf(out, "Recorded modes: %v\n", modes)
		}
		return nil
	}

	fmt.Fprintf(out, "  %-4s  %-8s  %-5s  %-6s  %-8s  %s\n", "Rank", "Score", "Level", "Popped", "Time", "Date")
	fmt.Fprintf(out, "  %-4s  %-8s  %-5s  %-6s  %-8s  %s\n", "----", "-----", "-----", "------", "----", "----")

	for i, e := range scores {
		fmt.Fprintf(out, "  %-4d  %-8d  %-5d  %-6d  %-8s  %s\n",
			i+1, e.Score, e.Level, e.JelliesPopped, tui.FormatElapsed(e.Duration), e.CreatedAt.Format("2006-01-02 15:04"))
	}

	fmt.Fprintln(out)
	if high, err := store.HighScore(mode); err == nil {
		fmt.Fprintf(out, "Best: %d\n", high)
	}
	return nil
}
