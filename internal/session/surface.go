package session

// Surface is where a session reports its state. Implementations are called
// while the session is locked: they must return quickly and must not call back
// into the session or its Runner.
type Surface interface {
	// Render is called whenever the board or the counters changed.
	Render(Snapshot)
	// NotifyGameOver is called exactly once, when the next group cannot spawn.
	NotifyGameOver(finalScore int)
}

// SurfaceFuncs adapts plain callbacks to a Surface. Nil fields are skipped.
type SurfaceFuncs struct {
	OnRender   func()
	OnGameOver func()
}

// Render calls OnRender.
func (f SurfaceFuncs) Render(Snapshot) {
	if f.OnRender != nil {
		f.OnRender()
	}
}

// NotifyGameOver calls OnGameOver.
func (f SurfaceFuncs) NotifyGameOver(int) {
	if f.OnGameOver != nil {
		f.OnGameOver()
	}
}

type nopSurface struct{}

func (nopSurface) Render(Snapshot)    {}
func (nopSurface) NotifyGameOver(int) {}
