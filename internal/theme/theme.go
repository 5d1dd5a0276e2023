// Package theme defines the unlockable color themes and the lifetime-stat
// thresholds that unlock them.
package theme

import "github.com/vovakirdan/advanced-snake/internal/core"

// Theme is a named palette for the playfield.
type Theme struct {
	ID    string
	Name  string
	Snake core.Color
	Food  core.Color
	Walls core.Color
	Text  core.Color
}

// Requirement describes what a player must reach to unlock a theme.
// Zero-valued requirements are unlocked from the start.
type Requirement struct {
	BestScore    int
	LongestSnake int
	TotalFood    int
	Description  string
}

// Stats are the lifetime aggregates requirements are checked against.
type Stats struct {
	BestScore    int
	LongestSnake int
	TotalFood    int
}

// Met reports whether the stats satisfy the requirement.
func (r Requirement) Met(s Stats) bool {
	return s.BestScore >= r.BestScore &&
		s.LongestSnake >= r.LongestSnake &&
		s.TotalFood >= r.TotalFood
}

var themes = []Theme{
	{ID: "classic", Name: "Classic", Snake: core.ColorBrightGreen, Food: core.ColorBrightRed, Walls: core.ColorGray, Text: core.ColorWhite},
	{ID: "neon", Name: "Neon", Snake: core.ColorBrightMagenta, Food: core.ColorBrightCyan, Walls: core.ColorMagenta, Text: core.ColorBrightWhite},
	{ID: "glacier", Name: "Glacier", Snake: core.ColorBrightCyan, Food: core.ColorBrightWhite, Walls: core.ColorBlue, Text: core.ColorBrightBlue},
	{ID: "desert", Name: "Desert", Snake: core.ColorYellow, Food: core.ColorBrightRed, Walls: core.ColorOrange, Text: core.ColorBrightYellow},
}

var requirements = map[string]Requirement{
	"classic": {Description: "Available from the start"},
	"neon":    {BestScore: 250, Description: "Reach a score of 250"},
	"glacier": {LongestSnake: 18, Description: "Grow the snake to 18 segments"},
	"desert":  {TotalFood: 180, Description: "Eat 180 food in total"},
}

// All returns every theme in display order.
func All() []Theme {
	out := make([]Theme, len(themes))
	copy(out, themes)
	return out
}

// ByID returns the theme with the given id, falling back to classic.
func ByID(id string) Theme {
	for _, t := range themes {
		if t.ID == id {
			return t
		}
	}
	return themes[0]
}

// RequirementFor returns the unlock requirement for a theme id.
func RequirementFor(id string) Requirement {
	return requirements[id]
}

// Unlocked returns the ids of every theme the stats unlock, in display
// order.
func Unlocked(s Stats) []string {
	var ids []string
	for _, t := range themes {
		if requirements[t.ID].Met(s) {
			ids = append(ids, t.ID)
		}
	}
	return ids
}
