package tui

import (
	"io"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

// Game is what the model drives: a live game, a recorder, or a playback.
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

// Options configures a Model.
type Options struct {
	TickRate int
	Logger   *log.Logger // Discarded when nil
	Chime    Chimer      // Silent when nil
}

// Model is the Bubble Tea model for running the snake game.
type Model struct {
	game     Game
	screen   *core.Screen
	keys     KeyMap
	help     help.Model
	opts     Options
	logger   *log.Logger
	width    int
	height   int
	paused   bool
	quitting bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game Game, opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return Model{
		game:   game,
		screen: core.NewScreen(0, 0),
		keys:   DefaultKeyMap(),
		help:   help.New(),
		opts:   opts,
		logger: logger,
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.opts.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey steers immediately; the heading is committed on the next tick.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch action := m.keys.Action(msg); action {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionPause:
		m.paused = !m.paused
	case core.ActionHelp:
		m.help.ShowAll = !m.help.ShowAll
	case core.ActionUp, core.ActionDown, core.ActionLeft, core.ActionRight:
		if !m.paused {
			m.game.Steer(action.Heading())
		}
	}
	return m, nil
}

// handleTick steps the game unless stepping is suspended.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.quitting {
		return m, nil
	}
	w, h := m.boardArea()
	if m.paused || m.game.State().Done || !m.game.Fits(w, h) {
		return m, tickCmd(m.opts.TickRate)
	}

	res := m.game.Step(core.HeadingNone)
	switch {
	case res.Events.Collided:
		m.logger.Debug("self collision", "tick", res.State.Tick, "resets", res.State.Resets)
		if m.opts.Chime != nil {
			m.opts.Chime.Reset()
		}
	case res.Events.Ate:
		m.logger.Debug("food eaten", "tick", res.State.Tick, "length", res.State.Length)
		if m.opts.Chime != nil {
			m.opts.Chime.Eat()
		}
	}

	return m, tickCmd(m.opts.TickRate)
}

// boardArea is the space left for the game above the help bar.
func (m Model) boardArea() (w, h int) {
	return m.width, m.height - lipgloss.Height(m.help.View(m.keys))
}

// Paused reports whether stepping is paused.
func (m Model) Paused() bool {
	return m.paused
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	w, h := m.boardArea()
	m.screen.Resize(w, h)
	m.game.Render(m.screen)
	if m.paused && m.game.Fits(w, h) {
		snake.RenderOverlay(m.screen, "Paused", "press p to resume")
	}

	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys)
}

// Run starts the Bubble Tea program for the given game.
func Run(game Game, opts Options) error {
	p := tea.NewProgram(
		NewModel(game, opts),
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
