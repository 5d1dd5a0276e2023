package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/advanced-snake/internal/storage"
	"github.com/vovakirdan/advanced-snake/internal/theme"
)

var themesCmd = &cobra.Command{
	Use:   "themes",
	Short: "List themes and unlock progress",
	Long: `List every theme with its unlock requirement and status.

Examples:
  snake themes
  snake play --theme neon`,
	Run: runThemes,
}

func runThemes(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening runs database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	// Pick up any threshold crossed since the last check.
	if _, err := store.UpdateUnlocks(); err != nil {
		fmt.Fprintf(os.Stderr, "Error updating unlocks: %v\n", err)
		os.Exit(1)
	}

	ids, err := store.UnlockedThemes()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving unlocks: %v\n", err)
		os.Exit(1)
	}
	unlocked := make(map[string]bool, len(ids))
	for _, id := range ids {
		unlocked[id] = true
	}

	fmt.Println("Themes")
	fmt.Println()
	for _, t := range theme.All() {
		status := "locked"
		if unlocked[t.ID] {
			status = "unlocked"
		}
		fmt.Printf("  %-10s %-9s %s\n", t.Name, status, theme.RequirementFor(t.ID).Description)
	}
}
