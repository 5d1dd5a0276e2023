// Package game implements the snake simulation: movement and collision
// resolution, level progression, procedural hazards, and safe spawning.
// It is pure logic with no terminal, audio, or storage dependencies; the
// platform layer feeds it input frames and reads snapshots back.
package game

import "github.com/vovakirdan/advanced-snake/internal/core"

// Grid is the playfield coordinate space.
type Grid struct {
	Width  int
	Height int
}

// InBounds returns true if the position is within the grid.
func (g Grid) InBounds(p core.Position) bool {
	return p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height
}

// Center returns the cell at the middle of the grid.
func (g Grid) Center() core.Position {
	return core.Position{X: g.Width / 2, Y: g.Height / 2}
}

// Cells returns every grid cell in row-major order. The stable order
// matters: the spawner draws uniformly from this list, and a shuffled
// enumeration would break seeded reproducibility.
func (g Grid) Cells() []core.Position {
	cells := make([]core.Position, 0, g.Width*g.Height)
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			cells = append(cells, core.Position{X: x, Y: y})
		}
	}
	return cells
}
