// Package term runs the snake game directly on a tcell screen.
// It is an alternative to the Bubble Tea frontend with the same controls.
package term

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

// Game is what the driver steps and draws.
type Game interface {
	Steer(h core.Heading)
	Step(requested core.Heading) core.StepResult
	Render(dst *core.Screen)
	Fits(w, h int) bool
	State() core.GameState
}

// Chimer plays feedback sounds for game events.
type Chimer interface {
	Eat()
	Reset()
}

// Options configures a Driver.
type Options struct {
	TickRate int
	Logger   *log.Logger
	Chime    Chimer
}

const (
	shortHelp = " p pause • ? more keys • q quit"
	fullHelp  = " arrows/wasd/hjkl steer • p/space pause • ? fewer keys • q/esc/ctrl+c quit"
)

var styles = map[core.Color]tcell.Style{
	core.ColorDefault:   tcell.StyleDefault,
	core.ColorBorder:    tcell.StyleDefault.Foreground(tcell.ColorGray),
	core.ColorHUD:       tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true),
	core.ColorSnakeHead: tcell.StyleDefault.Foreground(tcell.ColorLime),
	core.ColorSnakeBody: tcell.StyleDefault.Foreground(tcell.ColorGreen),
	core.ColorFood:      tcell.StyleDefault.Foreground(tcell.ColorRed),
	core.ColorOverlay:   tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorPurple),
}

var helpStyle = tcell.StyleDefault.Foreground(tcell.ColorGray)

// Driver owns the clock and the screen for one game.
type Driver struct {
	screen   tcell.Screen
	game     Game
	opts     Options
	logger   *log.Logger
	buf      *core.Screen
	paused   bool
	showHelp bool
}

// New creates a driver on an initialised screen.
func New(screen tcell.Screen, game Game, opts Options) *Driver {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if opts.TickRate <= 0 {
		opts.TickRate = 1
	}
	return &Driver{
		screen: screen,
		game:   game,
		opts:   opts,
		logger: logger,
		buf:    core.NewScreen(0, 0),
	}
}

// Run opens the terminal, plays until quit or ctx is done, and restores it.
func Run(ctx context.Context, game Game, opts Options) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("term: cannot create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("term: cannot initialise screen: %w", err)
	}
	defer screen.Fini()

	return New(screen, game, opts).Run(ctx)
}

// Run is the event loop. It returns nil on quit or when ctx is done.
func (d *Driver) Run(ctx context.Context) error {
	events := make(chan tcell.Event, 100)
	stop := make(chan struct{})
	defer close(stop)
	go func() {
		for {
			ev := d.screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			select {
			case events <- ev:
			case <-stop:
				return
			}
		}
	}()

	ticker := time.NewTicker(time.Second / time.Duration(d.opts.TickRate))
	defer ticker.Stop()

	d.Draw()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			d.Tick()
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if d.HandleEvent(ev) {
				return nil
			}
		}
		d.Draw()
	}
}

// HandleEvent applies one terminal event and reports whether to quit.
func (d *Driver) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		d.screen.Sync()
	case *tcell.EventKey:
		switch action := mapKey(ev); action {
		case core.ActionQuit:
			return true
		case core.ActionPause:
			d.paused = !d.paused
		case core.ActionHelp:
			d.showHelp = !d.showHelp
		case core.ActionUp, core.ActionDown, core.ActionLeft, core.ActionRight:
			if !d.paused {
				d.game.Steer(action.Heading())
			}
		}
	}
	return false
}

// Tick steps the game unless stepping is suspended.
func (d *Driver) Tick() {
	w, h := d.boardArea()
	if d.paused || d.game.State().Done || !d.game.Fits(w, h) {
		return
	}

	res := d.game.Step(core.HeadingNone)
	switch {
	case res.Events.Collided:
		d.logger.Debug("self collision", "tick", res.State.Tick, "resets", res.State.Resets)
		if d.opts.Chime != nil {
			d.opts.Chime.Reset()
		}
	case res.Events.Ate:
		d.logger.Debug("food eaten", "tick", res.State.Tick, "length", res.State.Length)
		if d.opts.Chime != nil {
			d.opts.Chime.Eat()
		}
	}
}

// Paused reports whether stepping is paused.
func (d *Driver) Paused() bool {
	return d.paused
}

// boardArea leaves the bottom line for help.
func (d *Driver) boardArea() (w, h int) {
	w, h = d.screen.Size()
	return w, h - 1
}

// Draw renders the game into the buffer and blits it.
func (d *Driver) Draw() {
	w, h := d.boardArea()
	d.buf.Resize(w, h)
	d.game.Render(d.buf)
	if d.paused && d.game.Fits(w, h) {
		snake.RenderOverlay(d.buf, "Paused", "press p to resume")
	}

	d.screen.Clear()
	for y := range d.buf.Height() {
		for x := range d.buf.Width() {
			g := d.buf.Glyph(x, y)
			style, ok := styles[g.Color]
			if !ok {
				style = tcell.StyleDefault
			}
			d.screen.SetContent(x, y, g.Rune, nil, style)
		}
	}

	text := shortHelp
	if d.showHelp {
		text = fullHelp
	}
	x := 0
	for _, r := range text {
		if x >= w {
			break
		}
		d.screen.SetContent(x, h, r, nil, helpStyle)
		x++
	}
	d.screen.Show()
}

// mapKey translates a tcell key event to a game action.
func mapKey(ev *tcell.EventKey) core.Action {
	switch ev.Key() {
	case tcell.KeyUp:
		return core.ActionUp
	case tcell.KeyDown:
		return core.ActionDown
	case tcell.KeyLeft:
		return core.ActionLeft
	case tcell.KeyRight:
		return core.ActionRight
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return core.ActionQuit
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'w', 'k':
			return core.ActionUp
		case 's', 'j':
			return core.ActionDown
		case 'a', 'h':
			return core.ActionLeft
		case 'd', 'l':
			return core.ActionRight
		case 'p', ' ':
			return core.ActionPause
		case '?':
			return core.ActionHelp
		case 'q':
			return core.ActionQuit
		}
	}
	return core.ActionNone
}
