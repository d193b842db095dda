package snake

import "github.com/vovakirdan/tui-snake/internal/core"

// cellColumns is how many terminal columns one grid cell spans. Terminal
// glyphs are roughly twice as tall as wide, so two columns keep cells square.
const cellColumns = 2

// Viewport maps grid cells onto screen coordinates.
type Viewport struct {
	OriginX, OriginY int // Screen position of cell (0,0)
}

// Rect returns the screen area covered by cell c.
func (v Viewport) Rect(c core.Cell) core.Rect {
	return core.NewRect(v.OriginX+c.X*cellColumns, v.OriginY+c.Y, cellColumns, 1)
}

// Drawable is anything on the board that can report where it is and draw
// itself into a screen buffer.
type Drawable interface {
	Position() core.Cell
	Draw(dst *core.Screen, v Viewport)
}

var (
	_ Drawable = (*Snake)(nil)
	_ Drawable = (*Food)(nil)
)

// Draw paints the body tail first so the head always ends up on top.
func (s *Snake) Draw(dst *core.Screen, v Viewport) {
	for i := len(s.body) - 1; i >= 0; i-- {
		r, c := '▓', core.ColorSnakeBody
		if i == 0 {
			r, c = '█', core.ColorSnakeHead
		}
		dst.FillRect(v.Rect(s.body[i]), r, c)
	}
}

// Draw paints the food cell.
func (f *Food) Draw(dst *core.Screen, v Viewport) {
	r := v.Rect(f.cell)
	dst.Put(r.X, r.Y, '(', core.ColorFood)
	dst.Put(r.X+1, r.Y, ')', core.ColorFood)
}
