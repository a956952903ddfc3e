package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/neon-arcade/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available games",
	Long:  `Shows a list of all games registered in the arcade.`,
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	games := registry.List()

	if len(games) == 0 {
		fmt.Println("No games available.")
		return
	}

	fmt.Println("Available games:")
	fmt.Println()

	maxIDLen := 2 // "ID" header
	for _, g := range games {
		maxIDLen = max(maxIDLen, len(g.ID))
	}

	fmt.Printf("  %-*s  %-12s  %s\n", maxIDLen, "ID", "Title", "Stages")
	fmt.Printf("  %-*s  %-12s  %s\n", maxIDLen, "--", "-----", "------")

	for _, g := range games {
		stages := "-"
		if game, err := registry.Create(g.ID); err == nil {
			stages = fmt.Sprintf("%d", game.MaxStage())
		}
		fmt.Printf("  %-*s  %-12s  %s\n", maxIDLen, g.ID, g.Title, stages)
	}

	fmt.Println()
	fmt.Println("Run 'arcade play <id>' to play a game.")
}
