// snake is a terminal snake game with procedural hazards, power-ups, and
// a difficulty curve driven by score and survival time.
//
// Usage:
//
//	snake play               - Play in the current terminal
//	snake scores             - Show the top runs
//	snake stats              - Show lifetime statistics
//	snake themes             - List themes and unlock progress
//	snake serve              - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>    - Set frame rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible runs
//	--db <path>     - Set database path (default: ~/.advsnake/snake.db)
//	--config <path> - Path to custom game config YAML
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
	flagConfig string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snake",
	Short: "Advanced Snake - survive the hazard field in your terminal",
	Long: `Advanced Snake is a terminal snake game where the board fights back:
static obstacle clusters, patrolling hazards, timed gates, and crumbling
tiles scale up as you level, with a boss layout every few levels.

Available commands:
  play     - Play in the current terminal
  scores   - View the top runs
  stats    - View lifetime statistics
  themes   - List themes and unlock progress
  serve    - Start SSH server for remote play

Examples:
  snake play
  snake play --seed 42
  snake scores
  snake serve --ssh :2222`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Frame rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.advsnake/snake.db", "Path to runs database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(themesCmd)
	rootCmd.AddCommand(serveCmd)
}
