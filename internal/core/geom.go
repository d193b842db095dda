// Package core provides fundamental types and utilities for the snake game.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

import "fmt"

// Cell is one discrete grid position.
type Cell struct {
	X, Y int
}

// String returns the cell as "(x,y)".
func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Heading is a direction of travel expressed as a unit vector.
// The zero value is HeadingNone and means "no change requested".
type Heading struct {
	DX, DY int
}

// The four cardinal headings. Each is the negation of its opposite.
var (
	HeadingNone  = Heading{}
	HeadingUp    = Heading{DX: 0, DY: -1}
	HeadingDown  = Heading{DX: 0, DY: 1}
	HeadingLeft  = Heading{DX: -1, DY: 0}
	HeadingRight = Heading{DX: 1, DY: 0}
)

// Headings lists the four valid headings in a fixed order.
// Code that picks a heading at random indexes into this slice so that runs
// stay reproducible for a given seed.
var Headings = [4]Heading{HeadingUp, HeadingDown, HeadingLeft, HeadingRight}

// Opposite returns the negated heading.
func (h Heading) Opposite() Heading {
	return Heading{DX: -h.DX, DY: -h.DY}
}

// Valid reports whether h is one of the four cardinal headings.
func (h Heading) Valid() bool {
	for _, v := range Headings {
		if h == v {
			return true
		}
	}
	return false
}

// Letter returns the single-letter code used in replay journals.
func (h Heading) Letter() byte {
	switch h {
	case HeadingUp:
		return 'U'
	case HeadingDown:
		return 'D'
	case HeadingLeft:
		return 'L'
	case HeadingRight:
		return 'R'
	default:
		return '.'
	}
}

// HeadingFromLetter is the inverse of Letter.
func HeadingFromLetter(b byte) (Heading, bool) {
	switch b {
	case 'U':
		return HeadingUp, true
	case 'D':
		return HeadingDown, true
	case 'L':
		return HeadingLeft, true
	case 'R':
		return HeadingRight, true
	}
	return HeadingNone, false
}

func (h Heading) String() string {
	switch h {
	case HeadingUp:
		return "up"
	case HeadingDown:
		return "down"
	case HeadingLeft:
		return "left"
	case HeadingRight:
		return "right"
	case HeadingNone:
		return "none"
	default:
		return fmt.Sprintf("heading(%d,%d)", h.DX, h.DY)
	}
}

// Grid is a toroidal board measured in cells.
type Grid struct {
	W, H int
}

// Center returns the middle cell (integer division on both axes).
func (g Grid) Center() Cell {
	return Cell{X: g.W / 2, Y: g.H / 2}
}

// Contains reports whether c lies within the grid bounds.
func (g Grid) Contains(c Cell) bool {
	return c.X >= 0 && c.X < g.W && c.Y >= 0 && c.Y < g.H
}

// Capacity returns the total number of cells.
func (g Grid) Capacity() int {
	return g.W * g.H
}

// Wrap folds an arbitrary cell back into the grid on both axes.
func (g Grid) Wrap(c Cell) Cell {
	return Cell{X: mod(c.X, g.W), Y: mod(c.Y, g.H)}
}

// Step returns the cell one unit from c along h, wrapping at the edges.
func (g Grid) Step(c Cell, h Heading) Cell {
	return g.Wrap(Cell{X: c.X + h.DX, Y: c.Y + h.DY})
}

// mod is a modulo that is always non-negative for positive n.
func mod(v, n int) int {
	r := v % n
	if r < 0 {
		r += n
	}
	return r
}

// CellSet is a set of occupied cells.
type CellSet map[Cell]struct{}

// NewCellSet builds a set from the given cells.
func NewCellSet(cells ...Cell) CellSet {
	s := make(CellSet, len(cells))
	for _, c := range cells {
		s[c] = struct{}{}
	}
	return s
}

// Has reports whether c is in the set. A nil set contains nothing.
func (s CellSet) Has(c Cell) bool {
	_, ok := s[c]
	return ok
}

// Add inserts c.
func (s CellSet) Add(c Cell) {
	s[c] = struct{}{}
}

// Rect is an axis-aligned box in screen coordinates.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate one past the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate one past the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}
