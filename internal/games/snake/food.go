package snake

import (
	"math/rand"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Food is the single food item on the board.
type Food struct {
	grid core.Grid
	rng  *rand.Rand
	cell core.Cell
}

// NewFood creates food and places it away from the excluded cells.
func NewFood(grid core.Grid, rng *rand.Rand, excluded core.CellSet) *Food {
	f := &Food{grid: grid, rng: rng}
	f.Place(excluded)
	return f
}

// Position returns the food cell; it satisfies Drawable.
func (f *Food) Position() core.Cell {
	return f.cell
}

// Place draws a cell uniformly over the whole grid, redrawing while the cell
// is excluded. It does not terminate if every cell is excluded.
func (f *Food) Place(excluded core.CellSet) {
	for {
		c := core.Cell{
			X: f.rng.Intn(f.grid.W),
			Y: f.rng.Intn(f.grid.H),
		}
		if !excluded.Has(c) {
			f.cell = c
			return
		}
	}
}
