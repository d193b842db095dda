package core

// Action is a semantic input intent, abstracted from physical key presses.
// Frontends map raw key events to actions; the game only sees headings.
type Action int

const (
	ActionNone  Action = iota
	ActionUp           // W, K, Up arrow
	ActionDown         // S, J, Down arrow
	ActionLeft         // A, H, Left arrow
	ActionRight        // D, L, Right arrow
	ActionPause        // P - driver stops stepping
	ActionHelp         // ? - toggle full help
	ActionQuit         // Q, Esc, Ctrl+C
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionPause:
		return "Pause"
	case ActionHelp:
		return "Help"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Heading returns the heading requested by a movement action.
// Non-movement actions return HeadingNone.
func (a Action) Heading() Heading {
	switch a {
	case ActionUp:
		return HeadingUp
	case ActionDown:
		return HeadingDown
	case ActionLeft:
		return HeadingLeft
	case ActionRight:
		return HeadingRight
	default:
		return HeadingNone
	}
}
