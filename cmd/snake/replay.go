package main

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/platform/tui"
	"github.com/vovakirdan/tui-snake/internal/replay"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

var (
	flagWatch  bool
	flagDelete bool
)

var replayCmd = &cobra.Command{
	Use:   "replay <id>",
	Short: "Verify or watch a recorded session",
	Long: `Re-run a replay journal headlessly and check that it ends in the
recorded state. The simulation is deterministic, so any difference means the
journal or the game logic has changed.

Examples:
  snake replay 3
  snake replay 3 --watch
  snake replay 3 --delete`,
	Args: cobra.ExactArgs(1),
	RunE: runReplay,
}

func init() {
	replayCmd.Flags().BoolVar(&flagWatch, "watch", false, "Play the replay back in the terminal")
	replayCmd.Flags().BoolVar(&flagDelete, "delete", false, "Delete the replay")
}

func runReplay(cmd *cobra.Command, args []string) error {
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil || id <= 0 {
		return fmt.Errorf("invalid replay id %q", args[0])
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening replay database: %w", err)
	}
	defer store.Close()

	entry, err := store.Replay(id)
	if err != nil {
		return err
	}
	if entry == nil {
		return fmt.Errorf("no replay #%d; run 'snake replays' to list them", id)
	}

	switch {
	case flagDelete:
		if err := store.DeleteReplay(id); err != nil {
			return err
		}
		fmt.Printf("Deleted replay #%d.\n", id)
		return nil
	case flagWatch:
		return watchReplay(*entry)
	default:
		return verifyReplay(*entry)
	}
}

func verifyReplay(e storage.Entry) error {
	logger, closeLog, err := newLogger(false)
	if err != nil {
		return err
	}
	defer closeLog()

	logger.Debug("verifying replay", "id", e.ID, "ticks", e.Journal.Ticks, "steers", len(e.Journal.Steers))
	err = replay.Verify(e.Journal)
	var mismatch *replay.MismatchError
	switch {
	case errors.As(err, &mismatch):
		return fmt.Errorf("replay #%d diverged:\n  recorded %s\n  replayed %s", e.ID, mismatch.Want, mismatch.Got)
	case err != nil:
		return err
	}
	fmt.Printf("Replay #%d verified: %d ticks, digest %s\n", e.ID, e.Journal.Ticks, e.Journal.Digest)
	return nil
}

func watchReplay(e storage.Entry) error {
	logger, closeLog, err := newLogger(true)
	if err != nil {
		return err
	}
	defer closeLog()

	player, err := replay.NewPlayer(e.Journal)
	if err != nil {
		return err
	}
	logger.Info("watching replay", "id", e.ID, "ticks", e.Journal.Ticks)
	if err := tui.Run(player, tui.Options{TickRate: e.Journal.TickRate, Logger: logger}); err != nil {
		return fmt.Errorf("running replay: %w", err)
	}
	return nil
}
