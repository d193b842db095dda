package snake

import (
	"encoding/binary"
	"fmt"
	"hash/fnv"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick     uint64
	SnakeLen int
	HeadX    int
	HeadY    int
	Dir      core.Heading
	Pending  core.Heading
	Queued   string // Buffered turns as journal letters, oldest first
	FoodX    int
	FoodY    int
	Eaten    int
	Resets   int
	BodyHash uint64
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	head := g.snake.Head()
	food := g.food.Position()
	return Snapshot{
		Tick:     g.tick,
		SnakeLen: g.snake.Len(),
		HeadX:    head.X,
		HeadY:    head.Y,
		Dir:      g.snake.Heading(),
		Pending:  g.snake.Pending(),
		Queued:   letters(g.turns),
		FoodX:    food.X,
		FoodY:    food.Y,
		Eaten:    g.eaten,
		Resets:   g.resets,
		BodyHash: hashCells(g.snake.body),
	}
}

// Digest is a compact fingerprint of the snapshot. Two runs with the same
// seed and steering produce the same digest.
func (s Snapshot) Digest() string {
	return fmt.Sprintf("t%d-l%d-h%d.%d-f%d.%d-d%c-p%c%s-e%d-r%d-%016x",
		s.Tick, s.SnakeLen, s.HeadX, s.HeadY, s.FoodX, s.FoodY,
		s.Dir.Letter(), s.Pending.Letter(), s.Queued, s.Eaten, s.Resets, s.BodyHash)
}

// Digest fingerprints the current state.
func (g *Game) Digest() string {
	return g.Snapshot().Digest()
}

func letters(turns []core.Heading) string {
	b := make([]byte, len(turns))
	for i, h := range turns {
		b[i] = h.Letter()
	}
	return string(b)
}

func hashCells(cells []core.Cell) uint64 {
	h := fnv.New64a()
	var buf [16]byte
	for _, c := range cells {
		binary.LittleEndian.PutUint64(buf[:8], uint64(int64(c.X)))
		binary.LittleEndian.PutUint64(buf[8:], uint64(int64(c.Y)))
		h.Write(buf[:])
	}
	return h.Sum64()
}
