package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/neon-arcade/internal/host"
	"github.com/vovakirdan/neon-arcade/internal/registry"
	"github.com/vovakirdan/neon-arcade/internal/storage"
)

var flagResetHistory bool

var resetCmd = &cobra.Command{
	Use:   "reset <game>",
	Short: "Clear saved progress and high score for a game",
	Long: `Forget the saved stage and the stored high score of a game, so the
next session starts from stage 1.

With --history the score history and recorded runs are deleted too.

Examples:
  arcade reset voidrunner
  arcade reset neonstrike --history`,
	Args: cobra.ExactArgs(1),
	RunE: runReset,
}

func init() {
	resetCmd.Flags().BoolVar(&flagResetHistory, "history", false, "Also delete score history and recorded runs")
}

func runReset(_ *cobra.Command, args []string) error {
	gameID := args[0]
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q, run 'arcade list' to see available games", gameID)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	for _, key := range []string{host.StageKey(gameID), host.HighScoreKey(gameID)} {
		if err := store.Delete(key); err != nil {
			return err
		}
	}
	if flagResetHistory {
		if err := store.ClearScores(gameID); err != nil {
			return err
		}
	}

	fmt.Printf("Reset %s.\n", gameID)
	return nil
}
