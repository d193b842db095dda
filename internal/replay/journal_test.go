package replay

import (
	"errors"
	"math/rand"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

func testConfig(seed int64) core.RuntimeConfig {
	cfg := core.DefaultConfig()
	cfg.Grid = core.Grid{W: 12, H: 10}
	cfg.Seed = seed
	return cfg
}

// record drives a recorded game with pseudo-random steering.
func record(t *testing.T, cfg core.RuntimeConfig, ticks int) Journal {
	t.Helper()
	g, err := snake.New(cfg)
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	rec := NewRecorder(g)
	input := rand.New(rand.NewSource(99))
	for i := 0; i < ticks; i++ {
		if input.Intn(3) == 0 {
			rec.Steer(core.Headings[input.Intn(4)])
		}
		if input.Intn(7) == 0 {
			rec.Steer(core.Headings[input.Intn(4)])
		}
		rec.Step(core.HeadingNone)
	}
	return rec.Journal()
}

func TestEncodeDecodeSteers(t *testing.T) {
	steers := []Steer{
		{Tick: 0, Heading: core.HeadingUp},
		{Tick: 12, Heading: core.HeadingLeft},
		{Tick: 12, Heading: core.HeadingDown},
		{Tick: 40, Heading: core.HeadingRight},
	}
	text := EncodeSteers(steers)
	if text != "0:U 12:L 12:D 40:R" {
		t.Errorf("EncodeSteers() = %q", text)
	}

	got, err := DecodeSteers(text)
	if err != nil {
		t.Fatalf("DecodeSteers() failed: %v", err)
	}
	if len(got) != len(steers) {
		t.Fatalf("decoded %d steers, expected %d", len(got), len(steers))
	}
	for i := range steers {
		if got[i] != steers[i] {
			t.Errorf("steer %d = %+v, expected %+v", i, got[i], steers[i])
		}
	}
}

func TestDecodeSteersEmpty(t *testing.T) {
	got, err := DecodeSteers("  ")
	if err != nil {
		t.Fatalf("DecodeSteers() failed: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("expected no steers, got %v", got)
	}
}

func TestDecodeSteersErrors(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"missing colon", "12U"},
		{"long letter", "12:UP"},
		{"bad tick", "x:U"},
		{"negative tick", "-1:U"},
		{"unknown letter", "3:Q"},
		{"out of order", "5:U 4:L"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := DecodeSteers(tc.text); err == nil {
				t.Errorf("DecodeSteers(%q) should fail", tc.text)
			}
		})
	}
}

func TestRecordThenVerify(t *testing.T) {
	for _, queue := range []int{0, 3} {
		cfg := testConfig(2024)
		cfg.QueueSize = queue
		j := record(t, cfg, 800)

		if j.Ticks != 800 {
			t.Errorf("queue %d: Ticks = %d, expected 800", queue, j.Ticks)
		}
		if len(j.Steers) == 0 {
			t.Fatalf("queue %d: nothing recorded", queue)
		}
		if err := Verify(j); err != nil {
			t.Errorf("queue %d: Verify() = %v", queue, err)
		}
	}
}

func TestVerifySurvivesEncoding(t *testing.T) {
	j := record(t, testConfig(5), 300)
	steers, err := DecodeSteers(EncodeSteers(j.Steers))
	if err != nil {
		t.Fatalf("DecodeSteers() failed: %v", err)
	}
	j.Steers = steers
	if err := Verify(j); err != nil {
		t.Errorf("Verify() after encoding = %v", err)
	}
}

func TestVerifyDetectsMismatch(t *testing.T) {
	j := record(t, testConfig(7), 200)
	j.Seed++

	err := Verify(j)
	var mismatch *MismatchError
	if !errors.As(err, &mismatch) {
		t.Fatalf("Verify() = %v, expected MismatchError", err)
	}
	if mismatch.Want != j.Digest {
		t.Errorf("Want = %q, expected %q", mismatch.Want, j.Digest)
	}
}

func TestVerifyCoversTrailingSteer(t *testing.T) {
	for _, queue := range []int{0, 2} {
		cfg := testConfig(21)
		cfg.QueueSize = queue
		g, err := snake.New(cfg)
		if err != nil {
			t.Fatalf("New() failed: %v", err)
		}
		rec := NewRecorder(g)
		for i := 0; i < 30; i++ {
			rec.Step(core.HeadingNone)
		}
		turn := core.HeadingUp
		if h := g.Snake().Heading(); h == core.HeadingUp || h == core.HeadingDown {
			turn = core.HeadingLeft
		}
		rec.Steer(turn)

		j := rec.Journal()
		if last := j.Steers[len(j.Steers)-1]; last.Tick != j.Ticks {
			t.Fatalf("queue %d: trailing steer at tick %d, expected %d", queue, last.Tick, j.Ticks)
		}
		if err := Verify(j); err != nil {
			t.Errorf("queue %d: Verify() = %v", queue, err)
		}

		p, err := NewPlayer(j)
		if err != nil {
			t.Fatalf("NewPlayer() failed: %v", err)
		}
		for !p.Done() {
			p.Step(core.HeadingNone)
		}
		if got := p.game.Digest(); got != j.Digest {
			t.Errorf("queue %d: playback digest %s, expected %s", queue, got, j.Digest)
		}

		j.Steers = j.Steers[:len(j.Steers)-1]
		var mismatch *MismatchError
		if err := Verify(j); !errors.As(err, &mismatch) {
			t.Errorf("queue %d: dropping the trailing steer should diverge, got %v", queue, err)
		}
	}
}

func TestRunRejectsBadConfig(t *testing.T) {
	j := record(t, testConfig(1), 10)
	j.TickRate = 0
	if _, err := Run(j); err == nil {
		t.Error("Run() should fail for an invalid journal config")
	}
}

func TestRecorderStepRequest(t *testing.T) {
	g, err := snake.New(testConfig(3))
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	rec := NewRecorder(g)
	rec.Step(core.HeadingUp)
	rec.Step(core.HeadingNone)

	j := rec.Journal()
	if len(j.Steers) != 1 || j.Steers[0] != (Steer{Tick: 0, Heading: core.HeadingUp}) {
		t.Errorf("steers = %+v, expected one Up at tick 0", j.Steers)
	}
	if err := Verify(j); err != nil {
		t.Errorf("Verify() = %v", err)
	}
}

func TestPlayerMatchesRecording(t *testing.T) {
	j := record(t, testConfig(11), 250)

	p, err := NewPlayer(j)
	if err != nil {
		t.Fatalf("NewPlayer() failed: %v", err)
	}
	steps := 0
	for !p.State().Done {
		p.Steer(core.HeadingDown) // ignored
		p.Step(core.HeadingLeft)  // request ignored too
		steps++
		if steps > 1000 {
			t.Fatal("playback did not finish")
		}
	}
	if steps != 250 {
		t.Errorf("played %d steps, expected 250", steps)
	}
	if got := p.game.Digest(); got != j.Digest {
		t.Errorf("playback digest %s, expected %s", got, j.Digest)
	}

	// Further steps are no-ops.
	p.Step(core.HeadingNone)
	if p.State().Tick != 250 {
		t.Errorf("tick advanced past the journal: %d", p.State().Tick)
	}
}

func TestPlayerRenderFinished(t *testing.T) {
	j := record(t, testConfig(4), 5)
	p, err := NewPlayer(j)
	if err != nil {
		t.Fatalf("NewPlayer() failed: %v", err)
	}
	for !p.Done() {
		p.Step(core.HeadingNone)
	}

	screen := core.NewScreen(80, 30)
	p.Render(screen)
	if !containsText(screen, "Replay finished") || !containsText(screen, "digest ok") {
		t.Errorf("expected finished banner, got:\n%s", screen.String())
	}
}

func containsText(s *core.Screen, text string) bool {
	return strings.Contains(s.String(), text)
}
