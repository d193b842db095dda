package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-snake/internal/platform/tui"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

var (
	flagLimit  int
	flagBrowse bool
)

var replaysCmd = &cobra.Command{
	Use:   "replays",
	Short: "List recorded sessions",
	Long: `List the most recent replay journals, newest first.

With --browse, pick one in an interactive table and watch it.

Examples:
  snake replays
  snake replays --limit 50
  snake replays --browse`,
	Args: cobra.NoArgs,
	RunE: runReplays,
}

func init() {
	replaysCmd.Flags().IntVar(&flagLimit, "limit", 20, "Maximum number of replays to list")
	replaysCmd.Flags().BoolVar(&flagBrowse, "browse", false, "Pick a replay interactively")
}

func runReplays(cmd *cobra.Command, args []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening replay database: %w", err)
	}
	defer store.Close()

	entries, err := store.RecentReplays(flagLimit)
	if err != nil {
		return fmt.Errorf("retrieving replays: %w", err)
	}

	if flagBrowse {
		width, height := 80, 24 // Defaults
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		id, err := tui.RunBrowser(entries, width, height)
		if err != nil {
			return err
		}
		if id == 0 {
			return nil
		}
		for _, e := range entries {
			if e.ID == id {
				return watchReplay(e)
			}
		}
		return nil
	}

	total, err := store.CountReplays()
	if err != nil {
		return fmt.Errorf("counting replays: %w", err)
	}

	fmt.Printf("Replays (%d of %d)\n", len(entries), total)
	fmt.Println()
	if len(entries) == 0 {
		fmt.Println("No replays recorded yet.")
		fmt.Println()
		fmt.Println("Play 'snake play' to record one!")
		return nil
	}
	for _, e := range entries {
		fmt.Printf("  %s\n", e.Summary())
	}
	return nil
}
