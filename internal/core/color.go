package core

// Color is a foreground colour for a screen glyph.
// Frontends translate it to their own palette.
type Color uint8

// Palette used by the board. The names describe what is drawn, not the hue,
// so each frontend can pick hues that read well on its terminal.
const (
	ColorDefault Color = iota
	ColorBorder
	ColorHUD
	ColorSnakeHead
	ColorSnakeBody
	ColorFood
	ColorOverlay
)
