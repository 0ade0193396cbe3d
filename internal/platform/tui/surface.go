package tui

import "github.com/vovakirdan/jellyblocker/internal/session"

// Surface hands session output to the Bubble Tea program.
// Renders are coalesced: only the newest snapshot waits for the model.
type Surface struct {
	snapshots chan session.Snapshot
	gameOvers chan int
}

// NewSurface creates an empty surface.
func NewSurface() *Surface {
	return &Surface{
		snapshots: make(chan session.Snapshot, 1),
		gameOvers: make(chan int, 1),
	}
}

// Render replaces any snapshot the model has not picked up yet.
func (s *Surface) Render(snap session.Snapshot) {
	for {
		select {
		case s.snapshots <- snap:
			return
		default:
		}
		select {
		case <-s.snapshots:
		default:
		}
	}
}

// NotifyGameOver queues the final score. A second notification before the
// first is read is dropped.
func (s *Surface) NotifyGameOver(finalScore int) {
	select {
	case s.gameOvers <- finalScore:
	default:
	}
}
