// Package snake implements the snake simulation: a snake on a wrapping grid
// that grows by eating food and starts over when it bites itself.
//
// The package is pure. It performs no I/O and keeps no clock; a frontend
// calls Steer on key events and Step once per tick.
package snake

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// hudHeight is the number of screen rows above the board.
const hudHeight = 1

// Game owns the snake, the food and the RNG they share.
type Game struct {
	cfg   core.RuntimeConfig
	rng   *rand.Rand
	snake *Snake
	food  *Food

	tick   uint64
	eaten  int
	resets int

	// turns buffers steering when cfg.QueueSize > 0.
	turns []core.Heading
}

// New validates cfg and builds a game with a one-cell snake at the centre
// heading right and food placed elsewhere.
func New(cfg core.RuntimeConfig) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("snake: invalid config: %w", err)
	}
	g := &Game{
		cfg: cfg,
		rng: rand.New(rand.NewSource(cfg.Seed)),
	}
	g.snake = NewSnake(cfg.Grid, g.rng, core.HeadingRight)
	g.food = NewFood(cfg.Grid, g.rng, g.snake.Occupied())
	return g, nil
}

// Config returns the configuration the game was built with.
func (g *Game) Config() core.RuntimeConfig {
	return g.cfg
}

// Snake returns the snake for read-only inspection.
func (g *Game) Snake() *Snake {
	return g.snake
}

// Food returns the food for read-only inspection.
func (g *Game) Food() *Food {
	return g.food
}

// Steer requests a heading change ahead of the next Step. With the default
// single-slot input a later call overwrites an earlier one. With a turn queue
// configured, turns are buffered and applied one per Step; turns beyond the
// queue size are dropped.
func (g *Game) Steer(h core.Heading) {
	if !h.Valid() {
		return
	}
	if g.cfg.QueueSize == 0 {
		g.snake.SetHeading(h)
		return
	}
	if len(g.turns) > 0 && g.turns[len(g.turns)-1] == h {
		return
	}
	if len(g.turns) < g.cfg.QueueSize {
		g.turns = append(g.turns, h)
	}
}

// Step advances the simulation by one tick.
func (g *Game) Step(requested core.Heading) core.StepResult {
	g.Steer(requested)
	if len(g.turns) > 0 {
		g.snake.SetHeading(g.turns[0])
		g.turns = g.turns[1:]
	}

	g.tick++
	g.snake.Advance()

	var ev core.Events
	switch {
	case g.snake.Collided():
		g.resets++
		g.eaten = 0
		g.turns = g.turns[:0]
		g.snake.Reset()
		g.food.Place(g.snake.Occupied())
		ev.Collided = true
	case g.snake.Head() == g.food.Position():
		g.eaten++
		g.snake.Grow()
		g.food.Place(g.snake.Occupied())
		ev.Ate = true
	}

	return core.StepResult{State: g.State(), Events: ev, Frame: g.Frame()}
}

// State returns the HUD counters.
func (g *Game) State() core.GameState {
	return core.GameState{
		Tick:   g.tick,
		Length: g.snake.Len(),
		Eaten:  g.eaten,
		Resets: g.resets,
	}
}

// Frame returns the visual state in grid coordinates.
func (g *Game) Frame() core.Frame {
	return core.Frame{
		Body:    g.snake.Body(),
		Food:    g.food.Position(),
		Heading: g.snake.Heading(),
	}
}

// BoardSize returns the screen size needed to draw the board and HUD.
func (g *Game) BoardSize() (w, h int) {
	return g.cfg.Grid.W*cellColumns + 2, g.cfg.Grid.H + 2 + hudHeight
}

// Fits reports whether a screen of the given size can show the whole board.
func (g *Game) Fits(w, h int) bool {
	bw, bh := g.BoardSize()
	return w >= bw && h >= bh
}

// Render draws the HUD, the board frame, the food and the snake, centred on dst.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if !g.Fits(dst.Width(), dst.Height()) {
		bw, bh := g.BoardSize()
		RenderOverlay(dst, "Window too small", fmt.Sprintf("Need %dx%d", bw, bh))
		return
	}

	bw, bh := g.BoardSize()
	left := (dst.Width() - bw) / 2
	top := (dst.Height() - bh) / 2

	st := g.State()
	hud := fmt.Sprintf(" Snake — Length: %d  Eaten: %d  Resets: %d", st.Length, st.Eaten, st.Resets)
	dst.DrawText(left, top, hud, core.ColorHUD)

	box := core.NewRect(left, top+hudHeight, bw, bh-hudHeight)
	dst.DrawBox(box, core.ColorBorder)

	v := Viewport{OriginX: box.X + 1, OriginY: box.Y + 1}
	for _, d := range []Drawable{g.food, g.snake} {
		d.Draw(dst, v)
	}
}

// RenderOverlay draws a centred two-line message box.
func RenderOverlay(dst *core.Screen, line1, line2 string) {
	w := max(len([]rune(line1)), len([]rune(line2))) + 4
	h := 5
	r := core.NewRect((dst.Width()-w)/2, (dst.Height()-h)/2, w, h)

	dst.FillRect(r, ' ', core.ColorDefault)
	dst.DrawBox(r, core.ColorOverlay)
	dst.DrawTextCentered(r.Y+1, line1, core.ColorOverlay)
	dst.DrawTextCentered(r.Y+3, line2, core.ColorOverlay)
}
