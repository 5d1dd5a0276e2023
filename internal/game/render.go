package game

import (
	"fmt"
	"math"
	"strings"

	"github.com/vovakirdan/advanced-snake/internal/core"
)

// Palette holds the colors a theme assigns to the main playfield elements.
type Palette struct {
	Snake core.Color
	Food  core.Color
	Walls core.Color
	Text  core.Color
}

// DefaultPalette returns the classic colors.
func DefaultPalette() Palette {
	return Palette{
		Snake: core.ColorBrightGreen,
		Food:  core.ColorBrightRed,
		Walls: core.ColorGray,
		Text:  core.ColorWhite,
	}
}

// SetPalette changes the rendering colors. Safe to call at any time.
func (g *Game) SetPalette(p Palette) {
	g.palette = p
}

// Render draws the current frame into the screen buffer. The snake is
// drawn at interpolated positions so motion looks smooth between ticks;
// everything else sits on whole cells.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	g.renderHUD(dst)

	offX, offY := g.mapOffset(dst)

	g.renderHazards(dst, offX, offY)
	g.renderItems(dst, offX, offY)
	g.renderSnake(dst, offX, offY)

	// Playfield border sits one cell outside the grid.
	dst.DrawBox(core.Rect{X: offX - 1, Y: offY - 1, W: g.grid.Width + 2, H: g.grid.Height + 2}, g.palette.Walls)

	switch {
	case g.status == StatusEnded:
		g.renderOverlay(dst, "Game Over", fmt.Sprintf("Score: %d - press R to restart", g.score))
	case g.status == StatusPaused:
		g.renderOverlay(dst, "Paused", "Press P to continue")
	case g.clock < g.levelIntroOver:
		title := fmt.Sprintf("Level %d", g.levels.Level())
		sub := ""
		if g.levelCfg.Boss {
			sub = "Boss level!"
		}
		g.renderOverlay(dst, title, sub)
	}
}

// mapOffset centers the playfield under the HUD.
func (g *Game) mapOffset(dst *core.Screen) (int, int) {
	offX := (dst.Width() - g.grid.Width) / 2
	offY := 2 + (dst.Height()-2-g.grid.Height)/2
	if offX < 1 {
		offX = 1
	}
	if offY < 3 {
		offY = 3
	}
	return offX, offY
}

func (g *Game) renderHUD(dst *core.Screen) {
	hud := fmt.Sprintf(" Snake | Score: %d  Level: %d  Len: %d", g.score, g.levels.Level(), g.snake.Len())
	if g.levelCfg.Boss {
		hud += "  [BOSS]"
	}
	if g.streak > 1 {
		hud += fmt.Sprintf("  Streak x%d", g.streak)
	}
	if effects := g.effectTags(); effects != "" {
		hud += "  " + effects
	}
	dst.DrawTextColored(0, 0, hud, g.palette.Text)
	dst.DrawHLine(0, 1, dst.Width(), '─')
}

// effectTags formats the running effects with their remaining seconds.
func (g *Game) effectTags() string {
	kinds := g.effects.ActiveKinds(g.clock)
	if len(kinds) == 0 {
		return ""
	}
	tags := make([]string, 0, len(kinds))
	for _, k := range kinds {
		tags = append(tags, fmt.Sprintf("%s:%.0fs", k, g.effects.Remaining(k, g.clock)))
	}
	return strings.Join(tags, " ")
}

func (g *Game) renderHazards(dst *core.Screen, offX, offY int) {
	for p := range g.obstacles.Static() {
		dst.SetColored(offX+p.X, offY+p.Y, '█', core.ColorGray)
	}
	for p := range g.obstacles.BossCore() {
		dst.SetColored(offX+p.X, offY+p.Y, '▓', core.ColorBrightMagenta)
	}
	for p := range g.obstacles.Crumbling() {
		dst.SetColored(offX+p.X, offY+p.Y, '░', core.ColorOrange)
	}
	for _, gate := range g.obstacles.Gates() {
		r, c := '┄', core.ColorGray
		if gate.Active {
			r, c = '═', core.ColorBrightRed
		}
		dst.SetColored(offX+gate.Pos.X, offY+gate.Pos.Y, r, c)
	}
	for _, mv := range g.obstacles.Moving() {
		dst.SetColored(offX+mv.Pos.X, offY+mv.Pos.Y, '◆', core.ColorBrightYellow)
	}
}

func (g *Game) renderItems(dst *core.Screen, offX, offY int) {
	if g.food != nil {
		dst.SetColored(offX+g.food.Pos.X, offY+g.food.Pos.Y, '●', g.palette.Food)
	}
	if g.powerUp != nil {
		r, c := powerUpGlyph(g.powerUp.Kind)
		dst.SetColored(offX+g.powerUp.Pos.X, offY+g.powerUp.Pos.Y, r, c)
	}
}

func powerUpGlyph(kind PowerUpKind) (rune, core.Color) {
	switch kind {
	case PowerUpSpeed:
		return '»', core.ColorBrightCyan
	case PowerUpShrink:
		return '‡', core.ColorBrightGreen
	case PowerUpFreeze:
		return '❄', core.ColorBrightBlue
	case PowerUpShield:
		return '◉', core.ColorBrightWhite
	default:
		return '?', core.ColorDefault
	}
}

func (g *Game) renderSnake(dst *core.Screen, offX, offY int) {
	color := g.palette.Snake
	if g.effects.FrozenAt(g.clock) {
		color = core.ColorBrightBlue
	}

	positions := g.snake.RenderPositions(g.Alpha())
	for i := len(positions) - 1; i >= 0; i-- {
		x := offX + int(math.Round(positions[i].X))
		y := offY + int(math.Round(positions[i].Y))
		r := '▒'
		if i == 0 {
			r = headRune(g.snake.Direction())
		}
		dst.SetColored(x, y, r, color)
	}
}

func headRune(d core.Direction) rune {
	switch d {
	case core.DirUp:
		return '▲'
	case core.DirDown:
		return '▼'
	case core.DirLeft:
		return '◀'
	default:
		return '▶'
	}
}

// renderOverlay draws a centered two-line message box over the playfield.
func (g *Game) renderOverlay(dst *core.Screen, title, subtitle string) {
	w := core.Max(len(title), len(subtitle)) + 6
	if w > dst.Width() {
		w = dst.Width()
	}
	h := 5
	x := (dst.Width() - w) / 2
	y := (dst.Height() - h) / 2

	box := core.Rect{X: x, Y: y, W: w, H: h}
	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorBrightWhite)
	dst.DrawTextCentered(y+1, title)
	if subtitle != "" {
		dst.DrawTextCentered(y+3, subtitle)
	}
}
