package core

import "testing"

func TestHeadingOpposite(t *testing.T) {
	tests := []struct {
		h, want Heading
	}{
		{HeadingUp, HeadingDown},
		{HeadingDown, HeadingUp},
		{HeadingLeft, HeadingRight},
		{HeadingRight, HeadingLeft},
	}

	for _, tc := range tests {
		t.Run(tc.h.String(), func(t *testing.T) {
			if got := tc.h.Opposite(); got != tc.want {
				t.Errorf("%v.Opposite() = %v, expected %v", tc.h, got, tc.want)
			}
			if tc.h.Opposite().Opposite() != tc.h {
				t.Errorf("double negation of %v should be identity", tc.h)
			}
		})
	}
}

func TestHeadingValid(t *testing.T) {
	for _, h := range Headings {
		if !h.Valid() {
			t.Errorf("%v should be valid", h)
		}
	}
	if HeadingNone.Valid() {
		t.Error("HeadingNone should not be valid")
	}
	if (Heading{DX: 1, DY: 1}).Valid() {
		t.Error("diagonal should not be valid")
	}
}

func TestHeadingLetterRoundTrip(t *testing.T) {
	for _, h := range Headings {
		got, ok := HeadingFromLetter(h.Letter())
		if !ok || got != h {
			t.Errorf("HeadingFromLetter(%q) = %v, %v; expected %v", h.Letter(), got, ok, h)
		}
	}
	if _, ok := HeadingFromLetter('x'); ok {
		t.Error("unknown letter should not decode")
	}
}

func TestGridWrap(t *testing.T) {
	g := Grid{W: 32, H: 24}

	tests := []struct {
		name string
		from Cell
		h    Heading
		want Cell
	}{
		{"right edge", Cell{X: 31, Y: 5}, HeadingRight, Cell{X: 0, Y: 5}},
		{"left edge", Cell{X: 0, Y: 5}, HeadingLeft, Cell{X: 31, Y: 5}},
		{"top edge", Cell{X: 7, Y: 0}, HeadingUp, Cell{X: 7, Y: 23}},
		{"bottom edge", Cell{X: 7, Y: 23}, HeadingDown, Cell{X: 7, Y: 0}},
		{"interior", Cell{X: 16, Y: 12}, HeadingRight, Cell{X: 17, Y: 12}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := g.Step(tc.from, tc.h)
			if got != tc.want {
				t.Errorf("Step(%v, %v) = %v, expected %v", tc.from, tc.h, got, tc.want)
			}
			if !g.Contains(got) {
				t.Errorf("Step result %v is outside the grid", got)
			}
		})
	}
}

func TestGridCenter(t *testing.T) {
	g := Grid{W: 32, H: 24}
	if c := g.Center(); c != (Cell{X: 16, Y: 12}) {
		t.Errorf("Center() = %v, expected (16,12)", c)
	}
	if g.Capacity() != 768 {
		t.Errorf("Capacity() = %d, expected 768", g.Capacity())
	}
}

func TestCellSet(t *testing.T) {
	s := NewCellSet(Cell{X: 1, Y: 1}, Cell{X: 2, Y: 1})
	if !s.Has(Cell{X: 1, Y: 1}) {
		t.Error("set should contain (1,1)")
	}
	if s.Has(Cell{X: 3, Y: 1}) {
		t.Error("set should not contain (3,1)")
	}
	s.Add(Cell{X: 3, Y: 1})
	if !s.Has(Cell{X: 3, Y: 1}) {
		t.Error("set should contain (3,1) after Add")
	}

	var empty CellSet
	if empty.Has(Cell{}) {
		t.Error("nil set should be empty")
	}
}

func TestRuntimeConfigValidate(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("default config should be valid: %v", err)
	}

	tests := []struct {
		name   string
		mutate func(*RuntimeConfig)
	}{
		{"zero width", func(c *RuntimeConfig) { c.Grid.W = 0 }},
		{"negative height", func(c *RuntimeConfig) { c.Grid.H = -1 }},
		{"single cell", func(c *RuntimeConfig) { c.Grid = Grid{W: 1, H: 1} }},
		{"zero cell size", func(c *RuntimeConfig) { c.CellSize = 0 }},
		{"zero tick rate", func(c *RuntimeConfig) { c.TickRate = 0 }},
		{"negative queue", func(c *RuntimeConfig) { c.QueueSize = -2 }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("Validate() should fail")
			}
		})
	}

	cfg := DefaultConfig()
	cfg.Grid = Grid{W: 2, H: 1}
	if err := cfg.Validate(); err != nil {
		t.Errorf("2x1 grid should be valid: %v", err)
	}
}

func TestActionHeading(t *testing.T) {
	tests := []struct {
		a    Action
		want Heading
	}{
		{ActionUp, HeadingUp},
		{ActionDown, HeadingDown},
		{ActionLeft, HeadingLeft},
		{ActionRight, HeadingRight},
		{ActionPause, HeadingNone},
		{ActionNone, HeadingNone},
	}
	for _, tc := range tests {
		if got := tc.a.Heading(); got != tc.want {
			t.Errorf("%v.Heading() = %v, expected %v", tc.a, got, tc.want)
		}
	}
}
