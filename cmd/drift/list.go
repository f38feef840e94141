package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/drift-arcade/internal/registry"
	"github.com/vovakirdan/drift-arcade/internal/storage"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available games",
	Long:  `Shows a list of all games registered in the arcade, with play counts.`,
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	games := registry.List()

	if len(games) == 0 {
		fmt.Println("No games available.")
		return
	}

	// Play counts are decoration; a missing database just leaves them blank
	stats := map[string]*storage.GameStats{}
	if store, err := storage.Open(flagDBPath); err == nil {
		if s, err := store.GetAllGamesStats(); err == nil {
			stats = s
		}
		store.Close()
	}

	fmt.Println("Available games:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, g := range games {
		if len(g.ID) > maxIDLen {
			maxIDLen = len(g.ID)
		}
	}

	// Print header
	fmt.Printf("  %-*s  %-20s  %s\n", maxIDLen, "ID", "Title", "Plays")
	fmt.Printf("  %-*s  %-20s  %s\n", maxIDLen, "--", "-----", "-----")

	// Print games
	for _, g := range games {
		plays := ""
		if st, ok := stats[g.ID]; ok {
			plays = fmt.Sprintf("%d", st.GamesCount)
		}
		fmt.Printf("  %-*s  %-20s  %s\n", maxIDLen, g.ID, g.Title, plays)
	}

	fmt.Println()
	fmt.Println("Run 'drift play <id>' to play a game.")
}
