// Package core provides fundamental types and utilities for the game:
// grid geometry, the screen buffer, input frames, and the seedable RNG.
// It contains no external dependencies (especially no Bubble Tea) to keep
// game logic pure and testable.
package core

// Position is a grid-cell coordinate. Copied by value everywhere.
type Position struct {
	X, Y int
}

// Add returns the position translated by a direction.
func (p Position) Add(d Direction) Position {
	return Position{X: p.X + d.DX, Y: p.Y + d.DY}
}

// Manhattan returns the Manhattan distance between two grid positions.
func Manhattan(a, b Position) int {
	return Abs(a.X-b.X) + Abs(a.Y-b.Y)
}

// Direction is one of the four axis-aligned unit vectors.
type Direction struct {
	DX, DY int
}

var (
	DirUp    = Direction{0, -1}
	DirDown  = Direction{0, 1}
	DirLeft  = Direction{-1, 0}
	DirRight = Direction{1, 0}
)

// Directions lists all four directions in a stable order.
var Directions = []Direction{DirUp, DirDown, DirLeft, DirRight}

// Opposite reports whether d is the exact reverse of other.
func (d Direction) Opposite(other Direction) bool {
	return d.DX == -other.DX && d.DY == -other.DY
}

// Reversed returns the direction pointing the opposite way.
func (d Direction) Reversed() Direction {
	return Direction{DX: -d.DX, DY: -d.DY}
}

// String returns a human-readable name for the direction.
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// Rect represents an axis-aligned box of cells.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Lerp linearly interpolates between a and b by t.
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Abs returns the absolute value of an integer.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
