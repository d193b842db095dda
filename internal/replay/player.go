package replay

import (
	"fmt"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

// Player plays a journal back one tick per Step. Live steering is ignored.
type Player struct {
	journal Journal
	game    *snake.Game
	next    int
}

// NewPlayer prepares a journal for playback.
func NewPlayer(j Journal) (*Player, error) {
	g, err := snake.New(j.Runtime())
	if err != nil {
		return nil, fmt.Errorf("replay: %w", err)
	}
	p := &Player{journal: j, game: g}
	p.finish()
	return p, nil
}

// finish applies the steers made after the last tick once playback ends.
func (p *Player) finish() {
	if p.Done() {
		p.next = applySteers(p.game, p.journal.Steers, p.next, p.journal.Ticks)
	}
}

// Done reports whether every recorded tick has been played.
func (p *Player) Done() bool {
	return p.game.State().Tick >= p.journal.Ticks
}

// Steer is a no-op during playback.
func (p *Player) Steer(core.Heading) {}

// Step applies the steers recorded for this tick and advances. Once the
// journal is exhausted it returns the final state without stepping.
func (p *Player) Step(core.Heading) core.StepResult {
	if p.Done() {
		return core.StepResult{State: p.State(), Frame: p.game.Frame()}
	}
	p.next = applySteers(p.game, p.journal.Steers, p.next, p.game.State().Tick)
	res := p.game.Step(core.HeadingNone)
	p.finish()
	res.State.Done = p.Done()
	return res
}

// Render draws the game, with a banner once playback has finished.
func (p *Player) Render(dst *core.Screen) {
	p.game.Render(dst)
	if p.Done() && p.game.Fits(dst.Width(), dst.Height()) {
		status := "digest ok"
		if p.game.Digest() != p.journal.Digest {
			status = "digest MISMATCH"
		}
		snake.RenderOverlay(dst, "Replay finished", status)
	}
}

// Fits reports whether the board fits a screen of the given size.
func (p *Player) Fits(w, h int) bool {
	return p.game.Fits(w, h)
}

// State returns the playback counters.
func (p *Player) State() core.GameState {
	st := p.game.State()
	st.Done = p.Done()
	return st
}
