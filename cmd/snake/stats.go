package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/advanced-snake/internal/storage"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show lifetime statistics",
	Long: `Display lifetime aggregates across all recorded runs.

Examples:
  snake stats`,
	Run: runStats,
}

func runStats(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening runs database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	stats, err := store.Stats()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving stats: %v\n", err)
		os.Exit(1)
	}

	played := time.Duration(stats.TotalPlaySecs * float64(time.Second)).Round(time.Second)

	fmt.Println("Lifetime Statistics")
	fmt.Println()
	fmt.Printf("  Best score:     %d\n", stats.BestScore)
	fmt.Printf("  Longest snake:  %d segments\n", stats.LongestSnake)
	fmt.Printf("  Total food:     %d\n", stats.TotalFood)
	fmt.Printf("  Power-ups:      %d\n", stats.TotalPowerUps)
	fmt.Printf("  Runs played:    %d\n", stats.TotalRuns)
	fmt.Printf("  Average score:  %.1f\n", stats.AverageScore())
	fmt.Printf("  Time played:    %s\n", played)
}
