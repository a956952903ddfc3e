package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/neon-arcade/internal/host"
	"github.com/vovakirdan/neon-arcade/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start the arcade with a game picker menu",
	Long: `Start the arcade in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a game.
Esc during a game returns to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select game
  Tab          - Scoreboard
  Q            - Quit

Examples:
  arcade menu
  arcade menu --fps 30
  arcade menu --difficulty hard
  arcade menu --db ./scores.db`,
	RunE: runMenu,
}

func init() {
	menuCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
}

func runMenu(_ *cobra.Command, _ []string) error {
	logger, closeLog, err := newLogger(io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	configureGames("", "", flagDifficulty)

	store, closeStore := openBackend(logger)
	defer closeStore()

	cfg := runtimeConfig()
	h := host.New(host.Options{
		Runtime: cfg,
		Store:   store,
		Logger:  logger,
	})

	if err := tui.Run(h, store, cfg); err != nil {
		return fmt.Errorf("running menu: %w", err)
	}
	return nil
}
