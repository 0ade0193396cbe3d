// Package tui provides the Bubble Tea front end for JellyBlocker.
// It maps keys to session commands, draws session snapshots and stores scores.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/jellyblocker/internal/session"
)

// DefaultFastDropHold is how long fast drop stays engaged after the last
// down-key press. Terminals only report presses, so holding the key is seen
// as a stream of repeats that keep re-arming the window.
const DefaultFastDropHold = 150 * time.Millisecond

// snapshotMsg carries a render from the session goroutine.
type snapshotMsg session.Snapshot

// gameOverMsg carries the final score of a finished game.
type gameOverMsg int

// fastDropReleaseMsg ends a fast-drop hold window unless a newer press
// re-armed it.
type fastDropReleaseMsg struct {
	seq int
}

// waitForSnapshot blocks until the surface has a new snapshot.
func waitForSnapshot(s *Surface) tea.Cmd {
	return func() tea.Msg {
		return snapshotMsg(<-s.snapshots)
	}
}

// waitForGameOver blocks until the surface reports a finished game.
func waitForGameOver(s *Surface) tea.Cmd {
	return func() tea.Msg {
		return gameOverMsg(<-s.gameOvers)
	}
}

// releaseFastDropCmd fires once the hold window has passed.
func releaseFastDropCmd(seq int, hold time.Duration) tea.Cmd {
	return tea.Tick(hold, func(time.Time) tea.Msg {
		return fastDropReleaseMsg{seq: seq}
	})
}
