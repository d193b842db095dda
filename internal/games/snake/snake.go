package snake

import (
	"math/rand"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// neckLength is how many leading segments (head included) are skipped by the
// self-collision test. Bodies this short or shorter can never collide.
const neckLength = 3

// Snake is an ordered run of cells, head first, plus a heading.
type Snake struct {
	grid    core.Grid
	rng     *rand.Rand
	body    []core.Cell // Head at index 0, never empty
	heading core.Heading
	pending core.Heading // Applied on the next Advance

	growth  int       // Deferred growth units not yet applied
	vacated core.Cell // Tail cell dropped by the last Advance
	hasTail bool      // Whether vacated is valid for this tick
}

// NewSnake creates a one-cell snake at the grid centre facing h.
func NewSnake(grid core.Grid, rng *rand.Rand, h core.Heading) *Snake {
	s := &Snake{grid: grid, rng: rng}
	s.place(h)
	return s
}

func (s *Snake) place(h core.Heading) {
	s.body = append(s.body[:0], s.grid.Center())
	s.heading = h
	s.pending = h
	s.growth = 0
	s.hasTail = false
}

// Head returns the current head cell.
func (s *Snake) Head() core.Cell {
	return s.body[0]
}

// Position is the head cell; it satisfies Drawable.
func (s *Snake) Position() core.Cell {
	return s.Head()
}

// Body returns a copy of the body cells, head first.
func (s *Snake) Body() []core.Cell {
	out := make([]core.Cell, len(s.body))
	copy(out, s.body)
	return out
}

// Occupied returns the body as a set, for food placement.
func (s *Snake) Occupied() core.CellSet {
	return core.NewCellSet(s.body...)
}

// Len returns the number of body cells.
func (s *Snake) Len() int {
	return len(s.body)
}

// Heading returns the heading committed by the last Advance.
func (s *Snake) Heading() core.Heading {
	return s.heading
}

// Pending returns the heading the next Advance will use.
func (s *Snake) Pending() core.Heading {
	return s.pending
}

// SetHeading overwrites the pending heading. Reversing onto the current
// heading, or passing anything that is not a cardinal heading, is ignored.
// Only the last accepted call before an Advance has any effect.
func (s *Snake) SetHeading(h core.Heading) {
	if !h.Valid() || h == s.heading.Opposite() {
		return
	}
	s.pending = h
}

// Advance moves the head one cell along the pending heading, wrapping at the
// edges, and drops the tail unless growth is owed.
func (s *Snake) Advance() {
	s.heading = s.pending
	head := s.grid.Step(s.body[0], s.heading)

	s.body = append(s.body, core.Cell{})
	copy(s.body[1:], s.body)
	s.body[0] = head

	if s.growth > 0 {
		s.growth--
		s.hasTail = false
		return
	}
	last := len(s.body) - 1
	s.vacated = s.body[last]
	s.hasTail = true
	s.body = s.body[:last]
}

// Grow adds exactly one segment per call. The tail cell released by this
// tick's Advance is kept; if none was released the next Advance keeps its tail.
func (s *Snake) Grow() {
	if s.hasTail {
		s.body = append(s.body, s.vacated)
		s.hasTail = false
		return
	}
	s.growth++
}

// Collided reports whether the head overlaps the body past the neck.
func (s *Snake) Collided() bool {
	if len(s.body) <= neckLength {
		return false
	}
	head := s.body[0]
	for _, c := range s.body[neckLength:] {
		if c == head {
			return true
		}
	}
	return false
}

// Reset shrinks the snake to one cell at the grid centre with a random
// heading. The caller is responsible for re-placing food.
func (s *Snake) Reset() {
	s.place(core.Headings[s.rng.Intn(len(core.Headings))])
}
