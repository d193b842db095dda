package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:   lipgloss.NewStyle(),
	core.ColorBorder:    lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	core.ColorHUD:       lipgloss.NewStyle().Foreground(lipgloss.Color("229")).Bold(true),
	core.ColorSnakeHead: lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	core.ColorSnakeBody: lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorFood:      lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	core.ColorOverlay:   lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Background(lipgloss.Color("57")),
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			color := s.Glyph(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				g := s.Glyph(x, y)
				if g.Color != color {
					break
				}
				run.WriteRune(g.Rune)
				x++
			}

			style, ok := colorStyles[color]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
