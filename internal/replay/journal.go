// Package replay records steering against a seeded game and re-runs it.
//
// Because the simulation is deterministic, a seed, the board settings and
// the sequence of steering events reproduce a session exactly. The final
// state digest is stored alongside so a re-run can be checked.
package replay

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

// Steer is one steering event, applied before step number Tick.
type Steer struct {
	Tick    uint64
	Heading core.Heading
}

// Journal is everything needed to reproduce a session.
type Journal struct {
	Seed      int64
	Grid      core.Grid
	CellSize  int
	TickRate  int
	QueueSize int
	Ticks     uint64  // Steps taken
	Steers    []Steer // Ordered by Tick
	Digest    string  // Final state digest
}

// Runtime returns the game configuration recorded in the journal.
func (j Journal) Runtime() core.RuntimeConfig {
	return core.RuntimeConfig{
		Grid:      j.Grid,
		CellSize:  j.CellSize,
		TickRate:  j.TickRate,
		Seed:      j.Seed,
		QueueSize: j.QueueSize,
	}
}

// EncodeSteers renders steering as space-separated "tick:letter" pairs,
// e.g. "12:U 15:L".
func EncodeSteers(steers []Steer) string {
	var sb strings.Builder
	for i, s := range steers {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(strconv.FormatUint(s.Tick, 10))
		sb.WriteByte(':')
		sb.WriteByte(s.Heading.Letter())
	}
	return sb.String()
}

// DecodeSteers parses the EncodeSteers format.
func DecodeSteers(text string) ([]Steer, error) {
	fields := strings.Fields(text)
	steers := make([]Steer, 0, len(fields))
	var last uint64
	for _, f := range fields {
		tickStr, letter, ok := strings.Cut(f, ":")
		if !ok || len(letter) != 1 {
			return nil, fmt.Errorf("replay: malformed steer %q", f)
		}
		tick, err := strconv.ParseUint(tickStr, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("replay: bad tick in %q: %w", f, err)
		}
		h, ok := core.HeadingFromLetter(letter[0])
		if !ok {
			return nil, fmt.Errorf("replay: unknown heading %q", letter)
		}
		if tick < last {
			return nil, fmt.Errorf("replay: steer %q is out of order", f)
		}
		last = tick
		steers = append(steers, Steer{Tick: tick, Heading: h})
	}
	return steers, nil
}

// Run replays the journal headlessly and returns the resulting game.
func Run(j Journal) (*snake.Game, error) {
	g, err := snake.New(j.Runtime())
	if err != nil {
		return nil, fmt.Errorf("replay: %w", err)
	}
	next := 0
	for tick := uint64(0); tick < j.Ticks; tick++ {
		next = applySteers(g, j.Steers, next, tick)
		g.Step(core.HeadingNone)
	}
	// Steers made after the last tick still sit in the pending state.
	applySteers(g, j.Steers, next, j.Ticks)
	return g, nil
}

// applySteers forwards the steers recorded for tick, starting at index next,
// and returns the index of the first steer not applied.
func applySteers(g *snake.Game, steers []Steer, next int, tick uint64) int {
	for next < len(steers) && steers[next].Tick == tick {
		g.Steer(steers[next].Heading)
		next++
	}
	return next
}

// MismatchError is returned by Verify when a re-run diverges.
type MismatchError struct {
	Want, Got string
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("replay: digest mismatch: recorded %s, replayed %s", e.Want, e.Got)
}

// Verify re-runs the journal and compares the final digest.
func Verify(j Journal) error {
	g, err := Run(j)
	if err != nil {
		return err
	}
	if got := g.Digest(); got != j.Digest {
		return &MismatchError{Want: j.Digest, Got: got}
	}
	return nil
}
