package session

// beginResolve starts the gravity/pop cycle after a lock. The first step runs
// immediately; later steps run every gravity_interval ticks.
func (s *Session) beginResolve() {
	s.phase = PhaseResolving
	s.chain = -1
	s.resolvePopped = 0
	s.resolveStep()
}

// resolveStep advances the board by one gravity row-step, or, once nothing
// falls any more, runs one pop round.
//
// Each pop round raises the chain multiplier by two (1, 3, 5, ...) and awards
// every cell popped so far in this resolve times the multiplier. A round that
// pops nothing ends the resolve.
func (s *Session) resolveStep() {
	s.nextResolve = s.tick + s.cfg.Timing.GravityInterval

	if s.grid.ApplyGravity() {
		s.render()
		return
	}

	popped := s.grid.Pop(s.cfg.Board.PopThreshold)
	if popped == 0 {
		s.endResolve()
		return
	}

	s.chain += 2
	s.resolvePopped += popped
	s.popped += popped
	s.levelUp()
	s.points += s.resolvePopped * s.chain
	s.logger.Debug("pop round", "popped", popped, "chain", s.chain, "points", s.points)
	s.render()
}

// levelUp raises the level once for every threshold the all-time pop count
// has crossed.
func (s *Session) levelUp() {
	if s.cfg.Scoring.FixedLevel {
		return
	}
	for s.popped >= s.cfg.Scoring.PopsPerLevel*s.level {
		s.level++
		s.logger.Info("level up", "level", s.level, "popped", s.popped)
	}
}

// endResolve hands control back to the falling group with fresh landing
// counters.
func (s *Session) endResolve() {
	if s.chain > 1 {
		s.logger.Info("chain", "rounds", (s.chain+1)/2, "popped", s.resolvePopped)
	}
	s.phase = PhaseFalling
	s.chain = 0
	s.resolvePopped = 0
	s.noDown = 0
	s.noChange = 0
	if s.grid.HasGroup() {
		s.prev = s.grid.Falling()[0]
	}
	s.render()
}
