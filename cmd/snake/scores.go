package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/advanced-snake/internal/platform/tui"
	"github.com/vovakirdan/advanced-snake/internal/storage"
)

var flagPlainScores bool

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the top runs",
	Long: `Display the top 10 runs as an interactive table.

Examples:
  snake scores
  snake scores --plain`,
	Run: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagPlainScores, "plain", false, "Print a plain table instead of the interactive view")
}

func runScores(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening runs database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if !flagPlainScores {
		if err := tui.RunScoreboard(store); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	runs, err := store.TopRuns(10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		os.Exit(1)
	}

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'snake play' to set the first score!")
		return
	}

	fmt.Printf("  %-4s  %-7s  %-5s  %-6s  %-5s  %s\n", "Rank", "Score", "Level", "Length", "Food", "Date")
	fmt.Printf("  %-4s  %-7s  %-5s  %-6s  %-5s  %s\n", "----", "-----", "-----", "------", "----", "----")
	for i, r := range runs {
		fmt.Printf("  %-4d  %-7d  %-5d  %-6d  %-5d  %s\n",
			i+1, r.Score, r.Level, r.MaxLength, r.FoodEaten,
			r.CreatedAt.Format("2006-01-02 15:04"))
	}
}
