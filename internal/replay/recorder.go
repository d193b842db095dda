package replay

import (
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

// Recorder wraps a game and notes every steering event with the tick it
// preceded. It forwards everything else unchanged, so frontends can drive it
// in place of the game.
type Recorder struct {
	game   *snake.Game
	steers []Steer
}

// NewRecorder starts recording a freshly constructed game.
func NewRecorder(g *snake.Game) *Recorder {
	return &Recorder{game: g}
}

// Steer records h and forwards it.
func (r *Recorder) Steer(h core.Heading) {
	if !h.Valid() {
		return
	}
	r.steers = append(r.steers, Steer{Tick: r.game.State().Tick, Heading: h})
	r.game.Steer(h)
}

// Step records a non-empty request as a steer, then steps.
func (r *Recorder) Step(requested core.Heading) core.StepResult {
	r.Steer(requested)
	return r.game.Step(core.HeadingNone)
}

// Render draws the wrapped game.
func (r *Recorder) Render(dst *core.Screen) {
	r.game.Render(dst)
}

// Fits reports whether the wrapped game fits a screen of the given size.
func (r *Recorder) Fits(w, h int) bool {
	return r.game.Fits(w, h)
}

// State returns the wrapped game's counters.
func (r *Recorder) State() core.GameState {
	return r.game.State()
}

// Journal seals the recording with the current digest.
func (r *Recorder) Journal() Journal {
	cfg := r.game.Config()
	steers := make([]Steer, len(r.steers))
	copy(steers, r.steers)
	return Journal{
		Seed:      cfg.Seed,
		Grid:      cfg.Grid,
		CellSize:  cfg.CellSize,
		TickRate:  cfg.TickRate,
		QueueSize: cfg.QueueSize,
		Ticks:     r.game.State().Tick,
		Steers:    steers,
		Digest:    r.game.Digest(),
	}
}
