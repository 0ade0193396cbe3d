package tui

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/jellyblocker/internal/board"
	"github.com/vovakirdan/jellyblocker/internal/config"
	"github.com/vovakirdan/jellyblocker/internal/core"
	"github.com/vovakirdan/jellyblocker/internal/presets"
	"github.com/vovakirdan/jellyblocker/internal/session"
	"github.com/vovakirdan/jellyblocker/internal/storage"
)

// Options configures a TUI game.
type Options struct {
	Mode          string // score table the games are saved under
	Seed          int64  // 0 = time based
	Store         *storage.Store
	Logger        *log.Logger
	Preset        *presets.Preset
	FastDropHold  time.Duration
	Width, Height int
}

// Model is the Bubble Tea model for JellyBlocker.
type Model struct {
	ctx     context.Context
	runner  *session.Runner
	surface *Surface
	store   *storage.Store
	logger  *log.Logger
	mode    string

	keys   KeyMap
	help   help.Model
	screen *core.Screen
	title  []board.Color

	snap         session.Snapshot
	started      bool // a game has been started at least once
	showControls bool
	finalScore   int
	fastDropSeq  int
	fastDropHold time.Duration
	quitting     bool
}

// NewModel creates a model driving runner. surface must be the Surface the
// runner's sessions render to.
func NewModel(ctx context.Context, runner *session.Runner, surface *Surface, opts Options) Model {
	if opts.Width <= 0 || opts.Height <= 0 {
		opts.Width, opts.Height = 80, 24
	}
	if opts.FastDropHold <= 0 {
		opts.FastDropHold = DefaultFastDropHold
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}

	// four distinct jellies for the welcome line
	playable := board.PlayableColors()
	rng := rand.New(rand.NewSource(opts.Seed))
	title := make([]board.Color, 0, 4)
	for _, i := range rng.Perm(len(playable))[:4] {
		title = append(title, playable[i])
	}

	h := help.New()
	h.Width = opts.Width

	return Model{
		ctx:          ctx,
		runner:       runner,
		surface:      surface,
		store:        opts.Store,
		logger:       opts.Logger,
		mode:         opts.Mode,
		keys:         DefaultKeyMap(),
		help:         h,
		screen:       core.NewScreen(opts.Width, max(1, opts.Height-1)),
		title:        title,
		snap:         runner.Snapshot(),
		fastDropHold: opts.FastDropHold,
	}
}

// Init starts listening to the session surface.
func (m Model) Init() tea.Cmd {
	return tea.Batch(waitForSnapshot(m.surface), waitForGameOver(m.surface))
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.screen.Resize(msg.Width, max(1, msg.Height-1))
		m.help.Width = msg.Width
		return m, nil

	case snapshotMsg:
		m.snap = session.Snapshot(msg)
		return m, waitForSnapshot(m.surface)

	case gameOverMsg:
		m.finalScore = int(msg)
		m.showControls = false
		m.saveScore()
		return m, waitForGameOver(m.surface)

	case fastDropReleaseMsg:
		if msg.seq == m.fastDropSeq {
			m.runner.Submit(core.CommandFastDropOff)
		}
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.runner.Stop()
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()
		return m, nil
	case key.Matches(msg, m.keys.Controls):
		if !m.runner.Running() {
			m.showControls = !m.showControls
		}
		return m, nil
	}

	cmd := m.keys.Command(msg)
	switch cmd {
	case core.CommandNone:
		return m, nil

	case core.CommandStart:
		if m.runner.Start(m.ctx) {
			m.started = true
			m.showControls = false
			m.fastDropSeq++
			m.snap = m.runner.Snapshot()
		}
		return m, nil

	case core.CommandLeave:
		if m.runner.Running() {
			m.runner.Stop()
			m.snap = m.runner.Snapshot()
			return m, nil
		}
		m.quitting = true
		return m, tea.Quit

	case core.CommandFastDropOn:
		// every repeat of a held key re-arms the release
		m.runner.Submit(cmd)
		m.fastDropSeq++
		return m, releaseFastDropCmd(m.fastDropSeq, m.fastDropHold)
	}

	m.runner.Submit(cmd)
	return m, nil
}

// saveScore records the finished game. Storage errors are logged; the
// program carries on without them.
func (m Model) saveScore() {
	if m.store == nil || m.finalScore <= 0 {
		return
	}

	entry := storage.ScoreEntry{Mode: m.mode, Score: m.finalScore}
	if snap := m.runner.Snapshot(); snap.Phase == session.PhaseGameOver {
		entry.Level = snap.Level
		entry.JelliesPopped = snap.JelliesPopped
		entry.Seed = snap.Seed
		entry.Duration = snap.Elapsed
	}
	if _, err := m.store.SaveScore(entry); err != nil {
		m.logger.Error("save score", "mode", m.mode, "score", m.finalScore, "err", err)
		return
	}
	m.logger.Info("score saved", "mode", m.mode, "score", m.finalScore)
}

// saveScreenshot writes the current screen as plain text under the user dir.
func (m Model) saveScreenshot() {
	m.draw()

	dir := filepath.Join(config.UserDir(), "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot", "err", err)
		return
	}

	name := fmt.Sprintf("jellyblocker_%s.txt", time.Now().Format("20060102_150405"))
	if err := os.WriteFile(filepath.Join(dir, name), []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot", "err", err)
	}
}

// draw renders the current state into the screen buffer.
func (m Model) draw() {
	s := m.screen
	s.Clear()

	if !m.started {
		DrawTitle(s, 1, m.title)
		y := DrawBindings(s, 3, m.keys.ShortHelp())
		if m.showControls {
			DrawBindings(s, y+1, m.keys.GameHelp())
		}
		return
	}

	switch m.snap.Phase {
	case session.PhaseGameOver, session.PhaseStopped:
		DrawTitle(s, 1, m.title)
		result := fmt.Sprintf("Game Over! You scored %d points.", m.snap.Points)
		if m.snap.Phase == session.PhaseStopped {
			result = fmt.Sprintf("You left the game with %d points.", m.snap.Points)
		}
		s.DrawTextCentered(3, result, core.ColorYellow)
		s.DrawTextCentered(4, fmt.Sprintf("Level %d  ·  %d jellies popped  ·  %s s",
			m.snap.Level, m.snap.JelliesPopped, FormatElapsed(m.snap.Elapsed)), core.ColorGray)
		y := DrawBindings(s, 6, m.keys.GameHelp())
		DrawBindings(s, y+1, m.keys.ShortHelp())
	default:
		DrawGame(s, m.snap)
	}
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.draw()
	footer := m.help.View(m.keys)
	if m.snap.Running {
		footer = m.help.ShortHelpView(m.keys.GameHelp())
	}
	return RenderScreen(m.screen) + "\n" + footer
}

// Run plays JellyBlocker in the terminal until the player quits.
func Run(ctx context.Context, cfg config.Config, opts Options) error {
	if opts.Seed == 0 {
		opts.Seed = time.Now().UnixNano()
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}

	surface := NewSurface()
	runner, err := session.NewRunner(cfg, opts.Seed,
		session.WithSurface(surface),
		session.WithLogger(opts.Logger),
		session.WithPreset(opts.Preset),
	)
	if err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	defer runner.Stop()

	p := tea.NewProgram(
		NewModel(ctx, runner, surface, opts),
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}
