package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/neon-arcade/internal/host"
	"github.com/vovakirdan/neon-arcade/internal/registry"
	"github.com/vovakirdan/neon-arcade/internal/storage"
)

var (
	flagRecent    int
	flagAllScores bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [game]",
	Short: "Show high scores and recent runs",
	Long: `Display the top 10 high scores and the most recent runs for the
specified game. Without a game, print a summary of every game played.

Examples:
  arcade scores
  arcade scores neonstrike
  arcade scores neonstrike --all
  arcade scores voidrunner --recent 10`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagRecent, "recent", 5, "Number of recent runs to show")
	scoresCmd.Flags().BoolVar(&flagAllScores, "all", false, "List every recorded score instead of the top 10")
}

func runScores(_ *cobra.Command, args []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	if len(args) == 0 {
		return printSummary(store)
	}
	gameID := args[0]

	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("%w, run 'arcade list' to see available games", err)
	}

	var scores []storage.ScoreEntry
	if flagAllScores {
		scores, err = store.AllScores(gameID)
	} else {
		scores, err = store.TopScores(gameID, 10)
	}
	if err != nil {
		return fmt.Errorf("retrieving scores: %w", err)
	}

	fmt.Printf("High Scores - %s\n", game.Title())
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'arcade play %s' to set the first high score!\n", gameID)
		return nil
	}

	fmt.Printf("  %-4s  %-10s  %s\n", "Rank", "Score", "Date")
	fmt.Printf("  %-4s  %-10s  %s\n", "----", "-----", "----")
	for i, entry := range scores {
		fmt.Printf("  %-4d  %-10d  %s\n", i+1, entry.Score, entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	if stats, err := store.GetGameStats(gameID); err == nil {
		fmt.Println()
		fmt.Printf("Best: %d   Runs: %d   Average: %.0f\n", stats.HighScore, stats.GamesCount, stats.AvgScore)
	}

	if stage, ok, err := store.Get(host.StageKey(gameID)); err == nil && ok {
		fmt.Printf("Saved progress: stage %s of %d\n", stage, game.MaxStage())
	}

	recent, err := store.RecentSessions(gameID, flagRecent)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not load recent runs: %v\n", err)
		return nil
	}
	if len(recent) == 0 {
		return nil
	}

	fmt.Println()
	fmt.Println("Recent runs:")
	fmt.Printf("  %-16s  %-10s  %-8s  %s\n", "Ended", "Score", "Result", "Duration")
	for _, s := range recent {
		result := fmt.Sprintf("stage %d", s.Stage)
		if s.Won {
			result = "cleared"
		}
		fmt.Printf("  %-16s  %-10d  %-8s  %s\n",
			s.EndedAt.Local().Format("2006-01-02 15:04"), s.Score, result, s.Duration().Round(time.Second))
	}
	return nil
}

// printSummary lists runs, best and average score of every registered game.
func printSummary(store *storage.Store) error {
	stats, err := store.GetAllGamesStats()
	if err != nil {
		return fmt.Errorf("retrieving stats: %w", err)
	}

	fmt.Printf("  %-12s  %-6s  %-10s  %-8s  %s\n", "Game", "Runs", "Best", "Average", "Last played")
	fmt.Printf("  %-12s  %-6s  %-10s  %-8s  %s\n", "----", "----", "----", "-------", "-----------")
	for _, info := range registry.List() {
		st, ok := stats[info.ID]
		if !ok {
			fmt.Printf("  %-12s  %-6d  %-10s  %-8s  %s\n", info.ID, 0, "-", "-", "never")
			continue
		}
		fmt.Printf("  %-12s  %-6d  %-10d  %-8.0f  %s\n",
			info.ID, st.GamesCount, st.HighScore, st.AvgScore, st.LastPlayed.Local().Format("2006-01-02 15:04"))
	}
	return nil
}
