package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/advanced-snake/internal/storage"
)

const maxScoreRows = 10

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up   key.Binding
	Down key.Binding
	Quit key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down}, {k.Quit}}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ScoreboardModel is the Bubble Tea model for the high-score table.
type ScoreboardModel struct {
	table    table.Model
	help     help.Model
	keys     ScoreboardKeyMap
	quitting bool
}

var scoreboardTitle = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color("10")).
	MarginBottom(1)

// NewScoreboardModel builds a scoreboard from the stored top runs.
func NewScoreboardModel(store *storage.Store) (ScoreboardModel, error) {
	runs, err := store.TopRuns(maxScoreRows)
	if err != nil {
		return ScoreboardModel{}, err
	}

	columns := []table.Column{
		{Title: "#", Width: 3},
		{Title: "Score", Width: 7},
		{Title: "Level", Width: 6},
		{Title: "Length", Width: 7},
		{Title: "Food", Width: 5},
		{Title: "Time", Width: 7},
		{Title: "When", Width: 16},
	}

	rows := make([]table.Row, 0, len(runs))
	for i, r := range runs {
		rows = append(rows, table.Row{
			fmt.Sprintf("%d", i+1),
			fmt.Sprintf("%d", r.Score),
			fmt.Sprintf("%d", r.Level),
			fmt.Sprintf("%d", r.MaxLength),
			fmt.Sprintf("%d", r.FoodEaten),
			formatDuration(r.Duration),
			r.CreatedAt.Format("2006-01-02 15:04"),
		})
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(maxScoreRows+1),
	)

	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true).
		Bold(true)
	styles.Selected = styles.Selected.
		Foreground(lipgloss.Color("0")).
		Background(lipgloss.Color("10"))
	t.SetStyles(styles)

	return ScoreboardModel{
		table: t,
		help:  help.New(),
		keys:  DefaultScoreboardKeyMap(),
	}, nil
}

func formatDuration(secs float64) string {
	d := time.Duration(secs * float64(time.Second)).Round(time.Second)
	return d.String()
}

// Init implements tea.Model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles scoreboard input.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			m.quitting = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the table with a title and help line.
func (m ScoreboardModel) View() string {
	if m.quitting {
		return ""
	}
	return scoreboardTitle.Render("Advanced Snake - Top Runs") + "\n" +
		m.table.View() + "\n\n" +
		m.help.View(m.keys) + "\n"
}

// RunScoreboard shows the interactive high-score table.
func RunScoreboard(store *storage.Store) error {
	model, err := NewScoreboardModel(store)
	if err != nil {
		return err
	}
	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err = p.Run()
	return err
}
