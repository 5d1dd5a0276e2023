package tui

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/advanced-snake/internal/core"
	"github.com/vovakirdan/advanced-snake/internal/game"
	"github.com/vovakirdan/advanced-snake/internal/storage"
	"github.com/vovakirdan/advanced-snake/internal/theme"
)

// Model is the Bubble Tea model for a play session.
type Model struct {
	game       *game.Game
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	keys       *KeyMapper
	inputFrame core.InputFrame
	gameState  core.GameState

	quitting bool
	runSaved bool // run persisted for the current game over
	newBest  bool
	unlocked []string // theme ids unlocked by the last run
}

// NewModel creates a play model for the given game and theme.
func NewModel(g *game.Game, store *storage.Store, th theme.Theme, cfg core.RuntimeConfig) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	g.SetPalette(game.Palette{Snake: th.Snake, Food: th.Food, Walls: th.Walls, Text: th.Text})

	return Model{
		game:       g,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		config:     cfg,
		keys:       NewKeyMapper(),
		inputFrame: core.NewInputFrame(),
	}
}

// Init initializes the model and starts the frame loop.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return frameCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case FrameMsg:
		return m.handleFrame()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.keys.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	return m, nil
}

// handleFrame advances the simulation by one frame.
func (m Model) handleFrame() (tea.Model, tea.Cmd) {
	// A restart begins a fresh run on a fresh seed.
	if m.inputFrame.Has(core.ActionRestart) && m.gameState.GameOver {
		m.config.Seed = time.Now().UnixNano()
		m.game.Reset(m.config)
		m.gameState = m.game.State()
		m.runSaved = false
		m.newBest = false
		m.unlocked = nil
		m.inputFrame.Clear()
		return m, frameCmd(m.config.TickRate)
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	if m.gameState.GameOver && !m.runSaved {
		m.saveRun()
	}

	m.inputFrame.Clear()
	return m, frameCmd(m.config.TickRate)
}

// saveRun persists the finished run and checks theme unlocks. Best-effort:
// a storage failure never interrupts play.
func (m *Model) saveRun() {
	m.runSaved = true
	if m.store == nil {
		return
	}

	sum := m.game.Summary()
	newBest, err := m.store.RecordRun(storage.RunSummary{
		Score:     sum.Score,
		Level:     sum.Level,
		MaxLength: sum.MaxLength,
		FoodEaten: sum.FoodEaten,
		PowerUps:  sum.TotalPowerUps(),
		Duration:  sum.Duration,
		Seed:      sum.Seed,
	})
	if err != nil {
		return
	}
	m.newBest = newBest

	if fresh, err := m.store.UpdateUnlocks(); err == nil {
		m.unlocked = fresh
	}
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)

	if m.gameState.GameOver {
		m.drawGameOverFooter()
	}

	return RenderScreen(m.screen)
}

// drawGameOverFooter adds the persistence outcome under the overlay.
func (m Model) drawGameOverFooter() {
	var notes []string
	if m.newBest {
		notes = append(notes, "New personal best!")
	}
	for _, id := range m.unlocked {
		notes = append(notes, "Unlocked theme: "+theme.ByID(id).Name)
	}
	if len(notes) == 0 {
		return
	}
	m.screen.DrawTextCentered(m.screen.Height()-2, strings.Join(notes, "   "))
}

// Run starts the Bubble Tea program for a local play session.
func Run(g *game.Game, store *storage.Store, th theme.Theme, cfg core.RuntimeConfig) error {
	model := NewModel(g, store, th, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
