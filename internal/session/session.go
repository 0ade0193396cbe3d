// Package session runs one game of JellyBlocker: the tick-driven state machine
// that spawns, drops and locks falling groups and resolves gravity, pops and
// chain scoring. A Session is deterministic for a given seed and never reads
// the wall clock; Runner adds the real-time ticker and the locking.
package session

import (
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/jellyblocker/internal/board"
	"github.com/vovakirdan/jellyblocker/internal/config"
	"github.com/vovakirdan/jellyblocker/internal/core"
	"github.com/vovakirdan/jellyblocker/internal/presets"
)

// Phase is the session's position in its state machine.
type Phase int

const (
	PhaseIdle      Phase = iota // waiting for Start
	PhaseFalling                // a group is under player control
	PhaseResolving              // gravity and pops are settling the board
	PhaseGameOver               // the next group could not spawn
	PhaseStopped                // left by the player
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "Idle"
	case PhaseFalling:
		return "Falling"
	case PhaseResolving:
		return "Resolving"
	case PhaseGameOver:
		return "GameOver"
	case PhaseStopped:
		return "Stopped"
	default:
		return "Unknown"
	}
}

// Session is one game. It is not safe for concurrent use; see Runner.
type Session struct {
	cfg     config.Config
	seed    int64
	grid    *board.Grid
	gen     *board.Generator
	surface Surface
	logger  *log.Logger
	preset  *presets.Preset

	phase    Phase
	running  bool
	tick     int
	points   int
	level    int
	popped   int
	fastDrop bool

	current board.Group
	next    board.Group

	// landing counters, in fall steps
	noDown   int
	noChange int
	prev     board.Coord

	// in-flight resolve
	chain         int
	resolvePopped int
	nextResolve   int
}

// Option configures a Session.
type Option func(*Session)

// WithSeed sets the RNG seed for the palette and group generation.
func WithSeed(seed int64) Option {
	return func(s *Session) {
		s.seed = seed
	}
}

// WithSurface sets where renders and the game-over notification go.
func WithSurface(surface Surface) Option {
	return func(s *Session) {
		if surface != nil {
			s.surface = surface
		}
	}
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(logger *log.Logger) Option {
	return func(s *Session) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithPreset lays out a starting board before the first group spawns.
func WithPreset(p *presets.Preset) Option {
	return func(s *Session) {
		s.preset = p
	}
}

// New validates cfg and creates an idle session.
func New(cfg config.Config, opts ...Option) (*Session, error) {
	if err := config.Validate(cfg); err != nil {
		return nil, err
	}

	s := &Session{
		cfg:     cfg.Clone(),
		surface: nopSurface{},
		logger:  log.New(io.Discard),
		level:   1,
	}
	for _, opt := range opts {
		opt(s)
	}

	s.grid = board.New(cfg.Board.Width, cfg.Board.Height)
	if s.preset != nil {
		if err := s.preset.Apply(s.grid); err != nil {
			return nil, err
		}
	}

	rng := rand.New(rand.NewSource(s.seed))
	s.gen = board.NewGenerator(rng, cfg.Board.Colors, cfg.Board.GroupSizes)
	return s, nil
}

// Start begins the game. Only valid from Idle; returns whether it started.
// If the first group cannot spawn the session goes straight to GameOver.
func (s *Session) Start() bool {
	if s.phase != PhaseIdle {
		return false
	}

	s.running = true
	s.phase = PhaseFalling
	s.current = s.gen.Next()
	s.next = s.gen.Next()
	s.logger.Info("game started", "seed", s.seed, "palette", s.gen.Palette())

	if !s.grid.Spawn(s.current) {
		s.gameOver()
		return true
	}
	s.prev = s.grid.Falling()[0]
	s.render()
	return true
}

// Tick advances the simulation by one tick. No-op unless running.
func (s *Session) Tick() {
	if !s.running {
		return
	}

	switch s.phase {
	case PhaseFalling:
		if s.tick%s.FallingSpeed() == 0 {
			s.fallStep()
		}
	case PhaseResolving:
		if s.tick >= s.nextResolve {
			s.resolveStep()
		}
	}
	s.tick++
}

// FallingSpeed returns the number of ticks between fall steps.
func (s *Session) FallingSpeed() int {
	speed := s.cfg.Timing.FallingInterval / s.level
	if s.fastDrop {
		speed /= s.cfg.Timing.FastDropMultiplier
	}
	return max(1, speed)
}

// fallStep moves the group down once and locks it when it has rested long
// enough: no position change for placement_delay/2 steps, or no downward
// progress for placement_delay steps.
func (s *Session) fallStep() {
	if s.grid.MoveDown() {
		s.noDown = 0
	} else {
		s.noDown++
	}

	head := s.grid.Falling()[0]
	if head == s.prev {
		s.noChange++
	} else {
		s.noChange = 0
	}
	s.prev = head

	delay := s.cfg.Timing.PlacementDelay
	if s.noChange >= delay/2 || s.noDown >= delay {
		s.lockAndCycle()
		return
	}
	s.render()
}

// lockAndCycle makes the falling group static, spawns the next one and
// starts resolving. A failed spawn ends the game.
func (s *Session) lockAndCycle() {
	s.grid.Lock()
	s.logger.Debug("group locked", "tick", s.tick)

	s.current = s.next
	s.next = s.gen.Next()
	if !s.grid.Spawn(s.current) {
		s.gameOver()
		return
	}
	s.render()
	s.beginResolve()
}

// gameOver ends the session and fires the notification exactly once.
func (s *Session) gameOver() {
	if s.phase == PhaseGameOver {
		return
	}
	s.running = false
	s.phase = PhaseGameOver
	s.logger.Info("game over", "points", s.points, "level", s.level, "popped", s.popped, "tick", s.tick)
	s.render()
	s.surface.NotifyGameOver(s.points)
}

// Apply executes a player command and returns whether it had an effect.
func (s *Session) Apply(cmd core.Command) bool {
	switch cmd {
	case core.CommandStart:
		return s.Start()
	case core.CommandLeave:
		return s.Stop()
	case core.CommandFastDropOn:
		return s.SetFastDrop(true)
	case core.CommandFastDropOff:
		return s.SetFastDrop(false)
	case core.CommandHardDrop:
		return s.HardDrop()
	}

	if !s.running || !cmd.IsMovement() || !s.grid.HasGroup() {
		return false
	}

	var moved bool
	switch cmd {
	case core.CommandMoveLeft:
		moved = s.grid.MoveLeft()
	case core.CommandMoveRight:
		moved = s.grid.MoveRight()
	case core.CommandRotateLeft:
		moved = s.grid.RotateLeft()
	case core.CommandRotateRight:
		moved = s.grid.RotateRight()
	}
	if moved {
		s.render()
	}
	return moved
}

// SetFastDrop engages or releases fast drop. Returns whether the flag changed.
func (s *Session) SetFastDrop(on bool) bool {
	if !s.running || s.fastDrop == on {
		return false
	}
	s.fastDrop = on
	return true
}

// HardDrop drops the group until it is blocked and locks it at once.
// Only valid while falling.
func (s *Session) HardDrop() bool {
	if !s.running || s.phase != PhaseFalling || !s.grid.HasGroup() {
		return false
	}
	rows := s.grid.HardDrop()
	s.logger.Debug("hard drop", "rows", rows)
	s.lockAndCycle()
	return true
}

// Stop halts the session. A resolve in progress is finished first so the
// board is never left half-settled. Returns false if it was not running.
func (s *Session) Stop() bool {
	if !s.running {
		return false
	}
	s.running = false
	for s.phase == PhaseResolving {
		s.resolveStep()
	}
	s.phase = PhaseStopped
	s.logger.Info("game stopped", "points", s.points, "tick", s.tick)
	s.render()
	return true
}

// Running reports whether the session still accepts ticks.
func (s *Session) Running() bool {
	return s.running
}

// Phase returns the current phase.
func (s *Session) Phase() Phase {
	return s.phase
}

// Seed returns the RNG seed this session was built with.
func (s *Session) Seed() int64 {
	return s.seed
}

func (s *Session) render() {
	s.surface.Render(s.Snapshot())
}

// Snapshot is a deep copy of the session state.
type Snapshot struct {
	Phase         Phase
	Running       bool
	Tick          int
	Elapsed       time.Duration
	Points        int
	Level         int
	JelliesPopped int
	Chain         int // multiplier of the last pop round while resolving, else 0
	FastDrop      bool
	Seed          int64

	Width   int
	Height  int
	Cells   [][]board.Color // row-major, row 0 is the hidden spawn row
	Falling []board.Coord
	Next    []board.Color
	Palette []board.Color
}

// Snapshot copies the current state.
func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{
		Phase:         s.phase,
		Running:       s.running,
		Tick:          s.tick,
		Elapsed:       time.Duration(s.tick) * s.cfg.TickDuration(),
		Points:        s.points,
		Level:         s.level,
		JelliesPopped: s.popped,
		FastDrop:      s.fastDrop,
		Seed:          s.seed,
		Width:         s.grid.Width(),
		Height:        s.grid.Height(),
		Cells:         s.grid.Colors(),
		Falling:       s.grid.Falling(),
		Palette:       s.gen.Palette(),
	}
	if s.phase == PhaseResolving && s.chain > 0 {
		snap.Chain = s.chain
	}
	if s.next != nil {
		snap.Next = s.next.Colors()
	}
	return snap
}
