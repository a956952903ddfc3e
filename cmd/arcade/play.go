package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/neon-arcade/internal/host"
	"github.com/vovakirdan/neon-arcade/internal/platform/tui"
	"github.com/vovakirdan/neon-arcade/internal/registry"
)

var (
	flagConfig     string
	flagDifficulty string
	flagStage      int
)

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game",
	Long: `Start playing the specified game.

Controls:
  Arrows/WASD   - Move (Void Runner), aim (Neon Strike)
  Z/X           - Rotate aim (Neon Strike)
  Space/Click   - Fire (Neon Strike)
  Mouse         - Aim (Neon Strike), seek while held (Void Runner)
  Enter         - Start / next stage
  P             - Pause
  R             - Reboot after game over
  Esc           - Back to menu
  Q/Ctrl+C      - Quit

Difficulty options:
  easy   - Slower enemies and walls, longer spawn intervals
  normal - Config values as-is
  hard   - Faster enemies and walls, shorter spawn intervals

Examples:
  arcade play neonstrike
  arcade play voidrunner --difficulty easy
  arcade play voidrunner --stage 3
  arcade play neonstrike --config ./my-neonstrike.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	playCmd.Flags().IntVar(&flagStage, "stage", 0, "Start at this stage (0 = resume saved progress)")
}

func runPlay(cmd *cobra.Command, args []string) error {
	gameID := args[0]

	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q, run 'arcade list' to see available games", gameID)
	}

	logger, closeLog, err := newLogger(io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	configureGames(gameID, flagConfig, flagDifficulty)

	store, closeStore := openBackend(logger)
	defer closeStore()

	if flagStage > 0 {
		if err := store.Set(host.StageKey(gameID), strconv.Itoa(flagStage)); err != nil {
			logger.Warn("could not store start stage", "stage", flagStage, "err", err)
		}
	}

	cfg := runtimeConfig()
	h := host.New(host.Options{
		Runtime: cfg,
		Store:   store,
		Logger:  logger,
	})
	if err := h.Select(gameID); err != nil {
		return err
	}

	if err := tui.Run(h, store, cfg); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
