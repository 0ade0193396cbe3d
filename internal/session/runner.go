package session

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"github.com/vovakirdan/jellyblocker/internal/config"
	"github.com/vovakirdan/jellyblocker/internal/core"
)

// Runner drives sessions in real time. A ticker goroutine advances the
// current session every tick_ms while commands arrive from the host through
// Submit; both go through the same mutex.
type Runner struct {
	cfg   config.Config
	opts  []Option
	seeds *rand.Rand

	mu      sync.Mutex
	session *Session
	cancel  context.CancelFunc
	done    chan struct{}
}

// NewRunner validates cfg and prepares an idle session. Each game gets its own
// seed drawn from seed, so a run of games is reproducible as a whole.
// opts apply to every session; WithSeed is overridden.
func NewRunner(cfg config.Config, seed int64, opts ...Option) (*Runner, error) {
	r := &Runner{
		cfg:   cfg.Clone(),
		opts:  opts,
		seeds: rand.New(rand.NewSource(seed)),
	}
	s, err := r.newSession()
	if err != nil {
		return nil, err
	}
	r.session = s
	return r, nil
}

func (r *Runner) newSession() (*Session, error) {
	opts := append(append([]Option(nil), r.opts...), WithSeed(r.seeds.Int63()))
	return New(r.cfg, opts...)
}

// Start begins a new game unless one is already running.
// The game runs until it ends, Stop is called, or ctx is cancelled.
func (r *Runner) Start(ctx context.Context) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.session.Running() {
		return false
	}
	if r.session.Phase() != PhaseIdle {
		s, err := r.newSession()
		if err != nil {
			return false
		}
		r.session = s
	}
	if !r.session.Start() {
		return false
	}
	if r.cancel != nil {
		// the previous loop has already seen its game end
		r.cancel()
	}
	if !r.session.Running() {
		// the first group could not spawn
		r.cancel, r.done = nil, nil
		return true
	}

	ctx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	r.cancel = cancel
	r.done = done
	go r.loop(ctx, r.session, done)
	return true
}

// loop ticks s until it stops running or ctx is done.
func (r *Runner) loop(ctx context.Context, s *Session, done chan struct{}) {
	defer close(done)

	ticker := time.NewTicker(r.cfg.TickDuration())
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			r.mu.Lock()
			s.Tick()
			running := s.Running()
			r.mu.Unlock()
			if !running {
				return
			}
		}
	}
}

// Submit applies a movement or fast-drop command to the current game.
// Start and Leave belong to the host and go through Start and Stop.
func (r *Runner) Submit(cmd core.Command) bool {
	if cmd == core.CommandStart || cmd == core.CommandLeave {
		return false
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.session.Apply(cmd)
}

// Stop halts the ticker and stops the current game, finishing any resolve in
// progress. Safe to call when nothing is running.
func (r *Runner) Stop() {
	r.mu.Lock()
	cancel, done := r.cancel, r.done
	r.cancel, r.done = nil, nil
	r.mu.Unlock()

	if cancel != nil {
		cancel()
		<-done
	}

	r.mu.Lock()
	r.session.Stop()
	r.mu.Unlock()
}

// Running reports whether a game is in progress.
func (r *Runner) Running() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.session.Running()
}

// Snapshot copies the current game state.
func (r *Runner) Snapshot() Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.session.Snapshot()
}
