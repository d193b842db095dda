package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/platform/audio"
	sterm "github.com/vovakirdan/tui-snake/internal/platform/term"
	"github.com/vovakirdan/tui-snake/internal/platform/tui"
	"github.com/vovakirdan/tui-snake/internal/replay"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

var (
	flagFPS       int
	flagSeed      int64
	flagFrontend  string
	flagSound     bool
	flagNoRecord  bool
	flagQueueSize int
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a session",
	Long: `Start a snake session.

Controls:
  Arrows/WASD/HJKL - Steer
  P/Space          - Pause
  ?                - Show all keys
  Q/Esc/Ctrl+C     - Quit

The board wraps at every edge. Biting yourself starts the snake over from
the centre. The session is saved as a replay unless --no-record is given.

Examples:
  snake play
  snake play --fps 10 --seed 42
  snake play --frontend tcell --sound
  snake play --queue-size 3`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().IntVar(&flagFPS, "fps", 0, "Tick rate (0 = from config)")
	playCmd.Flags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	playCmd.Flags().StringVar(&flagFrontend, "frontend", "tui", "Frontend: tui or tcell")
	playCmd.Flags().BoolVar(&flagSound, "sound", false, "Play sounds (overrides config)")
	playCmd.Flags().BoolVar(&flagNoRecord, "no-record", false, "Do not save a replay")
	playCmd.Flags().IntVar(&flagQueueSize, "queue-size", 0, "Buffer up to N turns between ticks (0 = single pending heading)")
}

func runPlay(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("fps") {
		cfg.TickRate = flagFPS
	}
	if flags.Changed("seed") {
		cfg.Seed = flagSeed
	}
	if flags.Changed("sound") {
		cfg.Sound = flagSound
	}
	if flags.Changed("queue-size") {
		cfg.Input.QueueSize = flagQueueSize
	}
	if flagNoRecord {
		cfg.Record = false
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	if flagFrontend != "tui" && flagFrontend != "tcell" {
		return fmt.Errorf("unknown frontend %q (want tui or tcell)", flagFrontend)
	}

	rt := cfg.Runtime()
	if rt.Seed == 0 {
		rt.Seed = time.Now().UnixNano()
	}

	game, err := snake.New(rt)
	if err != nil {
		return err
	}

	// Warn early; both frontends wait for a large enough window.
	bw, bh := game.BoardSize()
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil && (w < bw || h < bh+1) {
		fmt.Fprintf(os.Stderr, "Warning: terminal is %dx%d but the board needs %dx%d; resize to play.\n",
			w, h, bw, bh+1)
	}

	logger, closeLog, err := newLogger(true)
	if err != nil {
		return err
	}
	defer closeLog()

	chime := audio.NewChime(cfg.Sound, logger)
	defer chime.Close()

	rec := replay.NewRecorder(game)
	logger.Info("session started", "seed", rt.Seed, "grid", fmt.Sprintf("%dx%d", rt.Grid.W, rt.Grid.H), "tick_rate", rt.TickRate,
		"frontend", flagFrontend)

	if runErr := runFrontend(rec, rt.TickRate, logger, chime); runErr != nil {
		return fmt.Errorf("running game: %w", runErr)
	}

	st := rec.State()
	logger.Info("session ended", "ticks", st.Tick, "length", st.Length, "resets", st.Resets)

	if cfg.Record {
		saveJournal(rec.Journal(), logger)
	}
	return nil
}

func runFrontend(game *replay.Recorder, tickRate int, logger *log.Logger, chime *audio.Chime) error {
	if flagFrontend == "tcell" {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		return sterm.Run(ctx, game, sterm.Options{TickRate: tickRate, Logger: logger, Chime: chime})
	}
	return tui.Run(game, tui.Options{TickRate: tickRate, Logger: logger, Chime: chime})
}

// saveJournal stores the session. Failure is reported but not fatal.
func saveJournal(j replay.Journal, logger *log.Logger) {
	if j.Ticks == 0 {
		return
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open replay database", "error", err)
		fmt.Fprintf(os.Stderr, "Warning: replay not saved: %v\n", err)
		return
	}
	defer store.Close()

	id, err := store.SaveReplay(j)
	if err != nil {
		logger.Warn("could not save replay", "error", err)
		fmt.Fprintf(os.Stderr, "Warning: replay not saved: %v\n", err)
		return
	}
	fmt.Printf("Saved replay #%d (seed %d, %d ticks). Watch it with 'snake replay %d --watch'.\n",
		id, j.Seed, j.Ticks, id)
}
