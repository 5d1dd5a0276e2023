package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/advanced-snake/internal/config"
	"github.com/vovakirdan/advanced-snake/internal/core"
	"github.com/vovakirdan/advanced-snake/internal/game"
	"github.com/vovakirdan/advanced-snake/internal/platform/tui"
	"github.com/vovakirdan/advanced-snake/internal/storage"
	"github.com/vovakirdan/advanced-snake/internal/theme"
)

var flagTheme string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the current terminal",
	Long: `Start a run in the current terminal.

Controls:
  WASD/Arrows - Steer
  P/Esc       - Pause
  R           - Restart (after game over)
  Q/Ctrl+C    - Quit

Examples:
  snake play
  snake play --seed 42
  snake play --theme neon
  snake play --config ./my-snake.yaml`,
	Run: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagTheme, "theme", "", "Theme to play with (must be unlocked)")
}

func runPlay(_ *cobra.Command, _ []string) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Get terminal size for the screen buffer
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	rc := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: playing without persistence: %v\n", err)
		store = nil
	} else {
		defer store.Close()
	}

	th := pickTheme(store, flagTheme)

	if err := tui.Run(game.New(cfg), store, th, rc); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// pickTheme resolves the requested theme against the unlocked set,
// falling back to classic. An explicit unlocked choice is remembered;
// with no flag the last remembered choice is used.
func pickTheme(store *storage.Store, id string) theme.Theme {
	if store == nil {
		if id == "" {
			id = "classic"
		}
		return theme.ByID(id)
	}

	if id == "" {
		if saved, err := store.SelectedTheme(); err == nil {
			id = saved
		} else {
			id = "classic"
		}
	}

	ids, err := store.UnlockedThemes()
	if err != nil {
		return theme.ByID("classic")
	}
	for _, unlocked := range ids {
		if unlocked == id {
			store.SetSelectedTheme(id)
			return theme.ByID(id)
		}
	}

	req := theme.RequirementFor(id)
	fmt.Fprintf(os.Stderr, "Theme %q is locked: %s. Playing classic.\n", id, req.Description)
	return theme.ByID("classic")
}
